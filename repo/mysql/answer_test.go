package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/qa_service/models/entities"
)

func TestAnswerRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewAnswerRepository(db, newTestLogger(t))
	ctx := context.Background()

	answer := &entities.Answer{
		QuestionID:     1,
		Content:        "用 db.Transaction 包住所有写操作",
		AuthorID:       "author-1",
		AuthorUsername: "bob",
	}
	require.NoError(t, repo.CreateAnswer(ctx, db, answer))
	require.NotZero(t, answer.ID)

	got, err := repo.GetAnswerByID(ctx, answer.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.AuthorUsername)
	assert.EqualValues(t, 1, got.QuestionID)
	assert.False(t, got.IsAccepted)

	_, err = repo.GetAnswerByID(ctx, 9999)
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestAnswerRepository_UpdateContent(t *testing.T) {
	db := newTestDB(t)
	repo := NewAnswerRepository(db, newTestLogger(t))
	ctx := context.Background()

	answer := &entities.Answer{QuestionID: 1, Content: "旧内容", AuthorID: "a", AuthorUsername: "a"}
	require.NoError(t, repo.CreateAnswer(ctx, db, answer))

	require.NoError(t, repo.UpdateContent(ctx, answer.ID, "新内容"))

	got, err := repo.GetAnswerByID(ctx, answer.ID)
	require.NoError(t, err)
	assert.Equal(t, "新内容", got.Content)

	assert.ErrorIs(t, repo.UpdateContent(ctx, 9999, "x"), commonerrors.ErrRepoNotFound)
}

func TestAnswerRepository_ListByQuestionID_Order(t *testing.T) {
	db := newTestDB(t)
	repo := NewAnswerRepository(db, newTestLogger(t))
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)

	// 高票但未采纳
	highVotes := &entities.Answer{QuestionID: 7, Content: "high", AuthorID: "a", AuthorUsername: "a", Votes: 10}
	highVotes.CreatedAt = base
	// 低票但被采纳，应排第一
	accepted := &entities.Answer{QuestionID: 7, Content: "accepted", AuthorID: "b", AuthorUsername: "b", Votes: 1, IsAccepted: true}
	accepted.CreatedAt = base.Add(time.Minute)
	// 同票数时较新的在前
	newer := &entities.Answer{QuestionID: 7, Content: "newer", AuthorID: "c", AuthorUsername: "c", Votes: 10}
	newer.CreatedAt = base.Add(2 * time.Minute)
	// 其他问题的回答不应出现
	other := &entities.Answer{QuestionID: 8, Content: "other", AuthorID: "d", AuthorUsername: "d"}

	for _, a := range []*entities.Answer{highVotes, accepted, newer, other} {
		require.NoError(t, repo.CreateAnswer(ctx, db, a))
	}

	list, err := repo.ListByQuestionID(ctx, 7)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "accepted", list[0].Content)
	assert.Equal(t, "newer", list[1].Content)
	assert.Equal(t, "high", list[2].Content)
}

func TestAnswerRepository_DeleteByQuestionID(t *testing.T) {
	db := newTestDB(t)
	repo := NewAnswerRepository(db, newTestLogger(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.CreateAnswer(ctx, db, &entities.Answer{QuestionID: 5, Content: "c", AuthorID: "a", AuthorUsername: "a"}))
	}
	keep := &entities.Answer{QuestionID: 6, Content: "keep", AuthorID: "a", AuthorUsername: "a"}
	require.NoError(t, repo.CreateAnswer(ctx, db, keep))

	affected, err := repo.DeleteByQuestionID(ctx, db, 5)
	require.NoError(t, err)
	assert.EqualValues(t, 3, affected)

	list, err := repo.ListByQuestionID(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, list)

	// 其他问题的回答不受影响
	_, err = repo.GetAnswerByID(ctx, keep.ID)
	require.NoError(t, err)
}

func TestAnswerRepository_VotesAndAccepted(t *testing.T) {
	db := newTestDB(t)
	repo := NewAnswerRepository(db, newTestLogger(t))
	ctx := context.Background()

	answer := &entities.Answer{QuestionID: 1, Content: "c", AuthorID: "a", AuthorUsername: "a"}
	require.NoError(t, repo.CreateAnswer(ctx, db, answer))

	votes, err := repo.IncrementVotes(ctx, answer.ID, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, votes)

	votes, err = repo.IncrementVotes(ctx, answer.ID, -1)
	require.NoError(t, err)
	assert.EqualValues(t, 0, votes)

	_, err = repo.IncrementVotes(ctx, 9999, 1)
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)

	require.NoError(t, repo.SetAccepted(ctx, db, answer.ID, true))
	got, err := repo.GetAnswerByID(ctx, answer.ID)
	require.NoError(t, err)
	assert.True(t, got.IsAccepted)

	require.NoError(t, repo.SetAccepted(ctx, db, answer.ID, false))
	got, err = repo.GetAnswerByID(ctx, answer.ID)
	require.NoError(t, err)
	assert.False(t, got.IsAccepted)
}

func TestAnswerRepository_AuthorAggregates(t *testing.T) {
	db := newTestDB(t)
	repo := NewAnswerRepository(db, newTestLogger(t))
	ctx := context.Background()

	a1 := &entities.Answer{QuestionID: 1, Content: "c", AuthorID: "author-1", AuthorUsername: "a", Votes: 4, IsAccepted: true}
	a2 := &entities.Answer{QuestionID: 2, Content: "c", AuthorID: "author-1", AuthorUsername: "a", Votes: -2}
	a3 := &entities.Answer{QuestionID: 3, Content: "c", AuthorID: "author-2", AuthorUsername: "b", Votes: 9}
	for _, a := range []*entities.Answer{a1, a2, a3} {
		require.NoError(t, repo.CreateAnswer(ctx, db, a))
	}

	count, err := repo.CountByAuthor(ctx, "author-1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	acceptedCount, err := repo.CountAcceptedByAuthor(ctx, "author-1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, acceptedCount)

	total, err := repo.SumVotesByAuthor(ctx, "author-1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	list, err := repo.ListAnswersByAuthor(ctx, "author-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
}
