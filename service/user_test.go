package service

import (
	"context"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/qa_service/models/dto"
	"github.com/Xushengqwer/qa_service/models/enums"
	"github.com/Xushengqwer/qa_service/myErrors"
)

func TestUserService_GetProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.mustCreateUser(t, "u1", enums.RoleUser, false)
	f.mustCreateUser(t, "asker", enums.RoleUser, false)

	question, err := f.questionSvc.CreateQuestion(ctx, "u1", &dto.CreateQuestionRequest{Title: "t", Description: "d", Tags: []string{"go"}})
	require.NoError(t, err)
	otherQuestion, err := f.questionSvc.CreateQuestion(ctx, "asker", &dto.CreateQuestionRequest{Title: "t2", Description: "d", Tags: []string{"go"}})
	require.NoError(t, err)
	_, err = f.answerSvc.CreateAnswer(ctx, "u1", &dto.CreateAnswerRequest{QuestionID: otherQuestion.ID, Content: "c"})
	require.NoError(t, err)

	profile, err := f.userSvc.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "user-u1", profile.User.Username)
	require.Len(t, profile.Questions, 1)
	assert.Equal(t, question.ID, profile.Questions[0].ID)
	require.Len(t, profile.Answers, 1)

	_, err = f.userSvc.GetProfile(ctx, "missing")
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestUserService_GetStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.mustCreateUser(t, "u1", enums.RoleUser, false)
	f.mustCreateUser(t, "asker", enums.RoleUser, false)
	f.mustCreateUser(t, "voter", enums.RoleUser, false)

	// u1 提一个问题并拿 2 票
	question, err := f.questionSvc.CreateQuestion(ctx, "u1", &dto.CreateQuestionRequest{Title: "t", Description: "d", Tags: []string{"go"}})
	require.NoError(t, err)
	_, err = f.questionSvc.VoteQuestion(ctx, "voter", question.ID, 1)
	require.NoError(t, err)
	_, err = f.questionSvc.VoteQuestion(ctx, "asker", question.ID, 1)
	require.NoError(t, err)

	// u1 回答别人的问题，拿 1 票并被采纳
	otherQuestion, err := f.questionSvc.CreateQuestion(ctx, "asker", &dto.CreateQuestionRequest{Title: "t2", Description: "d", Tags: []string{"go"}})
	require.NoError(t, err)
	answer, err := f.answerSvc.CreateAnswer(ctx, "u1", &dto.CreateAnswerRequest{QuestionID: otherQuestion.ID, Content: "c"})
	require.NoError(t, err)
	_, err = f.answerSvc.VoteAnswer(ctx, "voter", answer.ID, 1)
	require.NoError(t, err)
	_, err = f.questionSvc.AcceptAnswer(ctx, "asker", otherQuestion.ID, answer.ID)
	require.NoError(t, err)

	// 声望由外部事件增减
	require.NoError(t, f.userSvc.ApplyReputationChange(ctx, "u1", 15))

	stats, err := f.userSvc.GetStats(ctx, "u1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.QuestionsCount)
	assert.EqualValues(t, 1, stats.AnswersCount)
	assert.EqualValues(t, 1, stats.AcceptedAnswersCount)
	assert.EqualValues(t, 3, stats.TotalVotes) // 问题 2 票 + 回答 1 票
	assert.EqualValues(t, 15, stats.Reputation)
	assert.False(t, stats.MemberSince.IsZero())
}

func TestUserService_SetBanStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.mustCreateUser(t, "u1", enums.RoleUser, false)
	f.mustCreateUser(t, "admin", enums.RoleAdmin, false)

	banned, err := f.userSvc.SetBanStatus(ctx, "u1", true)
	require.NoError(t, err)
	assert.True(t, banned.Banned)

	// 管理员账号不可被封禁
	_, err = f.userSvc.SetBanStatus(ctx, "admin", true)
	assert.ErrorIs(t, err, myErrors.ErrAdminNotBannable)

	// 解封是幂等的
	unbanned, err := f.userSvc.SetBanStatus(ctx, "u1", false)
	require.NoError(t, err)
	assert.False(t, unbanned.Banned)
	unbanned, err = f.userSvc.SetBanStatus(ctx, "u1", false)
	require.NoError(t, err)
	assert.False(t, unbanned.Banned)

	_, err = f.userSvc.SetBanStatus(ctx, "missing", true)
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestUserService_ApplyReputationChange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.mustCreateUser(t, "u1", enums.RoleUser, false)

	require.NoError(t, f.userSvc.ApplyReputationChange(ctx, "u1", 10))
	require.NoError(t, f.userSvc.ApplyReputationChange(ctx, "u1", -4))
	// 零增量是无操作
	require.NoError(t, f.userSvc.ApplyReputationChange(ctx, "u1", 0))

	stats, err := f.userSvc.GetStats(ctx, "u1")
	require.NoError(t, err)
	assert.EqualValues(t, 6, stats.Reputation)

	err = f.userSvc.ApplyReputationChange(ctx, "missing", 1)
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestUserService_ListUsers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.mustCreateUser(t, "u1", enums.RoleUser, false)
	f.mustCreateUser(t, "u2", enums.RoleAdmin, false)

	list, err := f.userSvc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, list.Users, 2)
}
