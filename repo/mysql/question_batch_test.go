package mysql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/qa_service/models/entities"
)

func TestQuestionBatchRepository_GetTopQuestionsByVotes(t *testing.T) {
	db := newTestDB(t)
	logger := newTestLogger(t)
	repo := NewQuestionRepository(db, logger)
	batchRepo := NewQuestionBatchRepository(db, logger)
	ctx := context.Background()

	votes := []int64{3, 9, 1, 9}
	var created []*entities.Question
	for _, v := range votes {
		q := &entities.Question{Title: "t", Description: "d", AuthorID: "a", AuthorUsername: "a", Votes: v, Tags: newTags("go")}
		require.NoError(t, repo.CreateQuestion(ctx, db, q))
		created = append(created, q)
	}

	top, err := batchRepo.GetTopQuestionsByVotes(ctx, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	// 票数降序，同票时 ID 升序
	assert.Equal(t, created[1].ID, top[0].ID)
	assert.Equal(t, created[3].ID, top[1].ID)
	assert.Equal(t, created[0].ID, top[2].ID)
	// 标签被预加载
	require.Len(t, top[0].Tags, 1)
	assert.Equal(t, "go", top[0].Tags[0].TagName)

	// limit 非法时返回空列表
	top, err = batchRepo.GetTopQuestionsByVotes(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestQuestionBatchRepository_GetQuestionsByIDs(t *testing.T) {
	db := newTestDB(t)
	logger := newTestLogger(t)
	repo := NewQuestionRepository(db, logger)
	batchRepo := NewQuestionBatchRepository(db, logger)
	ctx := context.Background()

	q1 := &entities.Question{Title: "t1", Description: "d", AuthorID: "a", AuthorUsername: "a"}
	q2 := &entities.Question{Title: "t2", Description: "d", AuthorID: "a", AuthorUsername: "a"}
	require.NoError(t, repo.CreateQuestion(ctx, db, q1))
	require.NoError(t, repo.CreateQuestion(ctx, db, q2))

	list, err := batchRepo.GetQuestionsByIDs(ctx, []uint64{q1.ID, q2.ID, 9999})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	// 软删除的问题被自动排除
	require.NoError(t, repo.DeleteQuestion(ctx, db, q1.ID))
	list, err = batchRepo.GetQuestionsByIDs(ctx, []uint64{q1.ID, q2.ID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, q2.ID, list[0].ID)

	// 空 ID 列表是无操作
	list, err = batchRepo.GetQuestionsByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, list)
}
