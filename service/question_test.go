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

func TestQuestionService_CreateQuestion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.mustCreateUser(t, "author-1", enums.RoleUser, false)

	question, err := f.questionSvc.CreateQuestion(ctx, "author-1", &dto.CreateQuestionRequest{
		Title:       "如何优雅地关闭 HTTP 服务",
		Description: "graceful shutdown 的正确姿势",
		Tags:        []string{"go", "http"},
	})
	require.NoError(t, err)
	assert.NotZero(t, question.ID)
	// 作者用户名从用户表冗余落库
	assert.Equal(t, "user-author-1", question.AuthorUsername)
	assert.Equal(t, []string{"go", "http"}, question.Tags)
	assert.Zero(t, question.Votes)
	assert.Zero(t, question.AnswerCount)
}

func TestQuestionService_CreateQuestion_BannedUser(t *testing.T) {
	f := newFixture(t)
	f.mustCreateUser(t, "banned-1", enums.RoleUser, true)

	_, err := f.questionSvc.CreateQuestion(context.Background(), "banned-1", &dto.CreateQuestionRequest{
		Title: "t", Description: "d", Tags: []string{"go"},
	})
	assert.ErrorIs(t, err, myErrors.ErrUserBanned)
}

func TestQuestionService_UpdateQuestion_Permissions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.mustCreateUser(t, "author-1", enums.RoleUser, false)
	f.mustCreateUser(t, "stranger", enums.RoleUser, false)

	question, err := f.questionSvc.CreateQuestion(ctx, "author-1", &dto.CreateQuestionRequest{
		Title: "旧标题", Description: "d", Tags: []string{"go"},
	})
	require.NoError(t, err)

	// 非作者的普通用户被拒绝
	newTitle := "新标题"
	_, err = f.questionSvc.UpdateQuestion(ctx, "stranger", enums.RoleUser, question.ID, &dto.UpdateQuestionRequest{Title: &newTitle})
	assert.ErrorIs(t, err, myErrors.ErrForbidden)

	// 作者本人可以编辑，标签整体替换
	newTags := []string{"kafka", "redis"}
	updated, err := f.questionSvc.UpdateQuestion(ctx, "author-1", enums.RoleUser, question.ID, &dto.UpdateQuestionRequest{
		Title: &newTitle,
		Tags:  &newTags,
	})
	require.NoError(t, err)
	assert.Equal(t, "新标题", updated.Title)
	assert.Equal(t, "d", updated.Description)
	assert.Equal(t, []string{"kafka", "redis"}, updated.Tags)

	// 管理员可以编辑任何问题
	adminTitle := "管理员改的标题"
	updated, err = f.questionSvc.UpdateQuestion(ctx, "stranger", enums.RoleAdmin, question.ID, &dto.UpdateQuestionRequest{Title: &adminTitle})
	require.NoError(t, err)
	assert.Equal(t, "管理员改的标题", updated.Title)
}

func TestQuestionService_DeleteQuestion_CascadesAnswers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.mustCreateUser(t, "author-1", enums.RoleUser, false)
	f.mustCreateUser(t, "answerer", enums.RoleUser, false)

	question, err := f.questionSvc.CreateQuestion(ctx, "author-1", &dto.CreateQuestionRequest{
		Title: "t", Description: "d", Tags: []string{"go"},
	})
	require.NoError(t, err)

	answer, err := f.answerSvc.CreateAnswer(ctx, "answerer", &dto.CreateAnswerRequest{
		QuestionID: question.ID, Content: "c",
	})
	require.NoError(t, err)

	require.NoError(t, f.questionSvc.DeleteQuestion(ctx, "author-1", enums.RoleUser, question.ID))

	_, err = f.questionSvc.GetQuestionByID(ctx, question.ID)
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
	// 回答在同一事务内被级联删除
	_, err = f.answerSvc.GetAnswerByID(ctx, answer.ID)
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestQuestionService_DeleteQuestion_Forbidden(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.mustCreateUser(t, "author-1", enums.RoleUser, false)
	f.mustCreateUser(t, "stranger", enums.RoleUser, false)

	question, err := f.questionSvc.CreateQuestion(ctx, "author-1", &dto.CreateQuestionRequest{
		Title: "t", Description: "d", Tags: []string{"go"},
	})
	require.NoError(t, err)

	err = f.questionSvc.DeleteQuestion(ctx, "stranger", enums.RoleUser, question.ID)
	assert.ErrorIs(t, err, myErrors.ErrForbidden)

	// 问题仍然存在
	_, err = f.questionSvc.GetQuestionByID(ctx, question.ID)
	require.NoError(t, err)
}

func TestQuestionService_VoteQuestion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.mustCreateUser(t, "author-1", enums.RoleUser, false)
	f.mustCreateUser(t, "voter", enums.RoleUser, false)

	question, err := f.questionSvc.CreateQuestion(ctx, "author-1", &dto.CreateQuestionRequest{
		Title: "t", Description: "d", Tags: []string{"go"},
	})
	require.NoError(t, err)

	// 不允许给自己的问题投票，票数不变
	_, err = f.questionSvc.VoteQuestion(ctx, "author-1", question.ID, 1)
	assert.ErrorIs(t, err, myErrors.ErrSelfVote)

	got, err := f.questionSvc.GetQuestionByID(ctx, question.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Votes)

	// 他人投票被累计，重复投票不去重
	result, err := f.questionSvc.VoteQuestion(ctx, "voter", question.ID, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.Votes)

	result, err = f.questionSvc.VoteQuestion(ctx, "voter", question.ID, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, result.Votes)

	result, err = f.questionSvc.VoteQuestion(ctx, "voter", question.ID, -1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.Votes)
}

func TestQuestionService_AcceptAnswer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.mustCreateUser(t, "asker", enums.RoleUser, false)
	f.mustCreateUser(t, "answerer-1", enums.RoleUser, false)
	f.mustCreateUser(t, "answerer-2", enums.RoleUser, false)

	question, err := f.questionSvc.CreateQuestion(ctx, "asker", &dto.CreateQuestionRequest{
		Title: "t", Description: "d", Tags: []string{"go"},
	})
	require.NoError(t, err)

	answer1, err := f.answerSvc.CreateAnswer(ctx, "answerer-1", &dto.CreateAnswerRequest{QuestionID: question.ID, Content: "c1"})
	require.NoError(t, err)
	answer2, err := f.answerSvc.CreateAnswer(ctx, "answerer-2", &dto.CreateAnswerRequest{QuestionID: question.ID, Content: "c2"})
	require.NoError(t, err)

	// 非作者（包括管理员）不能采纳
	_, err = f.questionSvc.AcceptAnswer(ctx, "answerer-1", question.ID, answer1.ID)
	assert.ErrorIs(t, err, myErrors.ErrForbidden)

	// 采纳第一条回答
	got, err := f.questionSvc.AcceptAnswer(ctx, "asker", question.ID, answer1.ID)
	require.NoError(t, err)
	require.NotNil(t, got.AcceptedAnswerID)
	assert.Equal(t, answer1.ID, *got.AcceptedAnswerID)

	acceptedAnswer, err := f.answerSvc.GetAnswerByID(ctx, answer1.ID)
	require.NoError(t, err)
	assert.True(t, acceptedAnswer.IsAccepted)

	// 回答作者收到采纳通知
	unread, err := f.notificationSvc.UnreadCount(ctx, "answerer-1")
	require.NoError(t, err)
	// 不低于 1: 创建回答不给自己发通知，采纳一定产生一条
	assert.GreaterOrEqual(t, unread.UnreadCount, int64(1))

	// 换选第二条回答：旧的采纳标记被撤销
	got, err = f.questionSvc.AcceptAnswer(ctx, "asker", question.ID, answer2.ID)
	require.NoError(t, err)
	require.NotNil(t, got.AcceptedAnswerID)
	assert.Equal(t, answer2.ID, *got.AcceptedAnswerID)

	oldAnswer, err := f.answerSvc.GetAnswerByID(ctx, answer1.ID)
	require.NoError(t, err)
	assert.False(t, oldAnswer.IsAccepted)

	// 重复采纳同一条回答是幂等的，不重复发通知
	before, err := f.notificationSvc.UnreadCount(ctx, "answerer-2")
	require.NoError(t, err)
	got, err = f.questionSvc.AcceptAnswer(ctx, "asker", question.ID, answer2.ID)
	require.NoError(t, err)
	assert.Equal(t, answer2.ID, *got.AcceptedAnswerID)
	after, err := f.notificationSvc.UnreadCount(ctx, "answerer-2")
	require.NoError(t, err)
	assert.Equal(t, before.UnreadCount, after.UnreadCount)
}

func TestQuestionService_AcceptAnswer_Mismatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.mustCreateUser(t, "asker", enums.RoleUser, false)
	f.mustCreateUser(t, "answerer", enums.RoleUser, false)

	q1, err := f.questionSvc.CreateQuestion(ctx, "asker", &dto.CreateQuestionRequest{Title: "q1", Description: "d", Tags: []string{"go"}})
	require.NoError(t, err)
	q2, err := f.questionSvc.CreateQuestion(ctx, "asker", &dto.CreateQuestionRequest{Title: "q2", Description: "d", Tags: []string{"go"}})
	require.NoError(t, err)

	otherAnswer, err := f.answerSvc.CreateAnswer(ctx, "answerer", &dto.CreateAnswerRequest{QuestionID: q2.ID, Content: "c"})
	require.NoError(t, err)

	// 回答属于另一个问题
	_, err = f.questionSvc.AcceptAnswer(ctx, "asker", q1.ID, otherAnswer.ID)
	assert.ErrorIs(t, err, myErrors.ErrAnswerMismatch)
}
