package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/qa_service/models/dto"
	"github.com/Xushengqwer/qa_service/models/entities"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestQuestionRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuestionRepository(db, newTestLogger(t))
	ctx := context.Background()

	question := &entities.Question{
		Title:          "如何在 GORM 中使用事务",
		Description:    "多个写操作需要原子提交",
		AuthorID:       "author-1",
		AuthorUsername: "alice",
		Tags:           newTags("go", "gorm", "mysql"),
	}
	require.NoError(t, repo.CreateQuestion(ctx, db, question))
	require.NotZero(t, question.ID)

	got, err := repo.GetQuestionByID(ctx, question.ID)
	require.NoError(t, err)
	assert.Equal(t, "如何在 GORM 中使用事务", got.Title)
	assert.Equal(t, "alice", got.AuthorUsername)
	require.Len(t, got.Tags, 3)
	// 标签按 position 升序返回
	assert.Equal(t, "go", got.Tags[0].TagName)
	assert.Equal(t, "gorm", got.Tags[1].TagName)
	assert.Equal(t, "mysql", got.Tags[2].TagName)
}

func TestQuestionRepository_GetQuestionByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuestionRepository(db, newTestLogger(t))

	_, err := repo.GetQuestionByID(context.Background(), 9999)
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestQuestionRepository_UpdateQuestion(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuestionRepository(db, newTestLogger(t))
	ctx := context.Background()

	question := &entities.Question{Title: "旧标题", Description: "旧描述", AuthorID: "a", AuthorUsername: "a"}
	require.NoError(t, repo.CreateQuestion(ctx, db, question))

	// 只更新标题，描述保持不变
	require.NoError(t, repo.UpdateQuestion(ctx, db, question.ID, strPtr("新标题"), nil))

	got, err := repo.GetQuestionByID(ctx, question.ID)
	require.NoError(t, err)
	assert.Equal(t, "新标题", got.Title)
	assert.Equal(t, "旧描述", got.Description)

	// 两个参数都为 nil 时是无操作
	require.NoError(t, repo.UpdateQuestion(ctx, db, question.ID, nil, nil))

	// 不存在的问题返回 ErrRepoNotFound
	err = repo.UpdateQuestion(ctx, db, 9999, strPtr("x"), nil)
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestQuestionRepository_ReplaceTags(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuestionRepository(db, newTestLogger(t))
	ctx := context.Background()

	question := &entities.Question{Title: "t", Description: "d", AuthorID: "a", AuthorUsername: "a", Tags: newTags("go", "redis")}
	require.NoError(t, repo.CreateQuestion(ctx, db, question))

	require.NoError(t, repo.ReplaceTags(ctx, db, question.ID, []string{"kafka", "docker", "linux"}))

	got, err := repo.GetQuestionByID(ctx, question.ID)
	require.NoError(t, err)
	require.Len(t, got.Tags, 3)
	assert.Equal(t, "kafka", got.Tags[0].TagName)
	assert.Equal(t, "docker", got.Tags[1].TagName)
	assert.Equal(t, "linux", got.Tags[2].TagName)
}

func TestQuestionRepository_DeleteQuestion(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuestionRepository(db, newTestLogger(t))
	ctx := context.Background()

	question := &entities.Question{Title: "t", Description: "d", AuthorID: "a", AuthorUsername: "a", Tags: newTags("go")}
	require.NoError(t, repo.CreateQuestion(ctx, db, question))

	require.NoError(t, repo.DeleteQuestion(ctx, db, question.ID))

	_, err := repo.GetQuestionByID(ctx, question.ID)
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)

	// 标签被硬删除，不再计入热门标签聚合
	rows, err := repo.PopularTags(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, rows)

	// 重复删除返回 ErrRepoNotFound
	err = repo.DeleteQuestion(ctx, db, question.ID)
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestQuestionRepository_ListQuestions_Filters(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuestionRepository(db, newTestLogger(t))
	ctx := context.Background()

	q1 := &entities.Question{Title: "Kafka consumer rebalancing", Description: "group coordination", AuthorID: "a", AuthorUsername: "a", Tags: newTags("kafka")}
	q2 := &entities.Question{Title: "GORM preload", Description: "NESTED associations", AuthorID: "a", AuthorUsername: "a", Tags: newTags("go", "gorm")}
	q3 := &entities.Question{Title: "Redis pipeline", Description: "batching commands", AuthorID: "b", AuthorUsername: "b", Tags: newTags("redis"), AnswerCount: 2}
	for _, q := range []*entities.Question{q1, q2, q3} {
		require.NoError(t, repo.CreateQuestion(ctx, db, q))
	}

	// 标签等值筛选
	list, total, err := repo.ListQuestions(ctx, &dto.ListQuestionsRequest{Tag: strPtr("gorm")})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, q2.ID, list[0].ID)

	// 搜索大小写不敏感，描述命中也算
	list, total, err = repo.ListQuestions(ctx, &dto.ListQuestionsRequest{Search: strPtr("nested")})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, q2.ID, list[0].ID)

	// answered=true 只返回有回答的问题
	list, total, err = repo.ListQuestions(ctx, &dto.ListQuestionsRequest{Answered: boolPtr(true)})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, q3.ID, list[0].ID)

	// answered=false 返回零回答的问题
	_, total, err = repo.ListQuestions(ctx, &dto.ListQuestionsRequest{Answered: boolPtr(false)})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	// 没有命中时总数为 0
	list, total, err = repo.ListQuestions(ctx, &dto.ListQuestionsRequest{Search: strPtr("不存在的关键字")})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, list)
}

func TestQuestionRepository_ListQuestions_SortAndPagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuestionRepository(db, newTestLogger(t))
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	titles := []string{"q1", "q2", "q3", "q4", "q5"}
	for i, title := range titles {
		q := &entities.Question{Title: title, Description: "d", AuthorID: "a", AuthorUsername: "a"}
		q.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.CreateQuestion(ctx, db, q))
	}

	// 默认 newest: 最新的在前
	list, total, err := repo.ListQuestions(ctx, &dto.ListQuestionsRequest{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, list, 2)
	assert.Equal(t, "q5", list[0].Title)
	assert.Equal(t, "q4", list[1].Title)

	// oldest 第二页
	list, total, err = repo.ListQuestions(ctx, &dto.ListQuestionsRequest{Page: 2, Limit: 2, Sort: "oldest"})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, list, 2)
	assert.Equal(t, "q3", list[0].Title)
	assert.Equal(t, "q4", list[1].Title)

	// 越界页码返回空列表但总数不变
	list, total, err = repo.ListQuestions(ctx, &dto.ListQuestionsRequest{Page: 10, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Empty(t, list)
}

func TestQuestionRepository_IncrementVotes(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuestionRepository(db, newTestLogger(t))
	ctx := context.Background()

	question := &entities.Question{Title: "t", Description: "d", AuthorID: "a", AuthorUsername: "a"}
	require.NoError(t, repo.CreateQuestion(ctx, db, question))

	votes, err := repo.IncrementVotes(ctx, question.ID, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, votes)

	votes, err = repo.IncrementVotes(ctx, question.ID, -1)
	require.NoError(t, err)
	assert.EqualValues(t, 0, votes)

	// 票数可以为负
	votes, err = repo.IncrementVotes(ctx, question.ID, -1)
	require.NoError(t, err)
	assert.EqualValues(t, -1, votes)

	_, err = repo.IncrementVotes(ctx, 9999, 1)
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestQuestionRepository_AnswerCountAndAcceptedAnswer(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuestionRepository(db, newTestLogger(t))
	ctx := context.Background()

	question := &entities.Question{Title: "t", Description: "d", AuthorID: "a", AuthorUsername: "a"}
	require.NoError(t, repo.CreateQuestion(ctx, db, question))

	require.NoError(t, repo.AdjustAnswerCount(ctx, db, question.ID, 1))
	require.NoError(t, repo.AdjustAnswerCount(ctx, db, question.ID, 1))
	require.NoError(t, repo.AdjustAnswerCount(ctx, db, question.ID, -1))

	got, err := repo.GetQuestionByID(ctx, question.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, got.AnswerCount)

	answerID := uint64(42)
	require.NoError(t, repo.SetAcceptedAnswer(ctx, db, question.ID, &answerID))
	got, err = repo.GetQuestionByID(ctx, question.ID)
	require.NoError(t, err)
	require.NotNil(t, got.AcceptedAnswerID)
	assert.EqualValues(t, 42, *got.AcceptedAnswerID)

	// 清空被采纳回答指针
	require.NoError(t, repo.SetAcceptedAnswer(ctx, db, question.ID, nil))
	got, err = repo.GetQuestionByID(ctx, question.ID)
	require.NoError(t, err)
	assert.Nil(t, got.AcceptedAnswerID)

	assert.ErrorIs(t, repo.AdjustAnswerCount(ctx, db, 9999, 1), commonerrors.ErrRepoNotFound)
	assert.ErrorIs(t, repo.SetAcceptedAnswer(ctx, db, 9999, nil), commonerrors.ErrRepoNotFound)
}

func TestQuestionRepository_PopularTags(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuestionRepository(db, newTestLogger(t))
	ctx := context.Background()

	// go x3, redis x2, kafka x2 (kafka 在 redis 之前首次出现), docker x1
	questions := [][]string{
		{"go", "kafka"},
		{"go", "redis"},
		{"go", "kafka"},
		{"redis", "docker"},
	}
	for _, tags := range questions {
		q := &entities.Question{Title: "t", Description: "d", AuthorID: "a", AuthorUsername: "a", Tags: newTags(tags...)}
		require.NoError(t, repo.CreateQuestion(ctx, db, q))
	}

	rows, err := repo.PopularTags(ctx, 10)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "go", rows[0].TagName)
	assert.EqualValues(t, 3, rows[0].Count)
	// 次数相同时先出现的标签在前
	assert.Equal(t, "kafka", rows[1].TagName)
	assert.EqualValues(t, 2, rows[1].Count)
	assert.Equal(t, "redis", rows[2].TagName)
	assert.EqualValues(t, 2, rows[2].Count)
	assert.Equal(t, "docker", rows[3].TagName)
	assert.EqualValues(t, 1, rows[3].Count)

	// limit 截断
	rows, err = repo.PopularTags(ctx, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "go", rows[0].TagName)
	assert.Equal(t, "kafka", rows[1].TagName)
}

func TestQuestionRepository_AuthorAggregates(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuestionRepository(db, newTestLogger(t))
	ctx := context.Background()

	q1 := &entities.Question{Title: "t1", Description: "d", AuthorID: "author-1", AuthorUsername: "a", Votes: 3}
	q2 := &entities.Question{Title: "t2", Description: "d", AuthorID: "author-1", AuthorUsername: "a", Votes: -1}
	q3 := &entities.Question{Title: "t3", Description: "d", AuthorID: "author-2", AuthorUsername: "b", Votes: 7}
	for _, q := range []*entities.Question{q1, q2, q3} {
		require.NoError(t, repo.CreateQuestion(ctx, db, q))
	}

	count, err := repo.CountByAuthor(ctx, "author-1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	total, err := repo.SumVotesByAuthor(ctx, "author-1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	// 没有问题的作者返回 0
	total, err = repo.SumVotesByAuthor(ctx, "nobody")
	require.NoError(t, err)
	assert.Zero(t, total)

	list, err := repo.ListQuestionsByAuthor(ctx, "author-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
}
