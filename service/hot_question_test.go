package service

import (
	"context"
	"errors"
	"testing"

	commonConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/qa_service/config"
	"github.com/Xushengqwer/qa_service/models/dto"
	"github.com/Xushengqwer/qa_service/models/enums"
	"github.com/Xushengqwer/qa_service/models/vo"
	"github.com/Xushengqwer/qa_service/myErrors"
	"github.com/Xushengqwer/qa_service/repo/mysql"
)

// stubHotCache 以固定返回值替代 Redis 缓存层。
type stubHotCache struct {
	questions []*vo.QuestionResponse
	err       error
}

func (s *stubHotCache) RebuildHotList(ctx context.Context, n int) error { return nil }

func (s *stubHotCache) GetHotQuestions(ctx context.Context) ([]*vo.QuestionResponse, error) {
	return s.questions, s.err
}

func newHotFixture(t *testing.T, cacheErr error, cached []*vo.QuestionResponse) (*fixture, HotQuestionService) {
	t.Helper()
	f := newFixture(t)
	logger, err := core.NewZapLogger(commonConfig.ZapConfig{})
	require.NoError(t, err)

	batchRepo := mysql.NewQuestionBatchRepository(f.db, logger)
	svc := NewHotQuestionService(
		&stubHotCache{questions: cached, err: cacheErr},
		batchRepo,
		config.HotQuestionConfig{ListSize: 10},
		logger,
	)
	return f, svc
}

func TestHotQuestionService_CacheHit(t *testing.T) {
	cached := []*vo.QuestionResponse{
		{ID: 2, Title: "second", Votes: 9},
		{ID: 1, Title: "first", Votes: 3},
	}
	_, svc := newHotFixture(t, nil, cached)

	result, err := svc.GetHotQuestions(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Questions, 2)
	assert.EqualValues(t, 2, result.Questions[0].ID)
}

func TestHotQuestionService_CacheMissFallsBackToDB(t *testing.T) {
	f, svc := newHotFixture(t, myErrors.ErrCacheMiss, nil)
	ctx := context.Background()
	f.mustCreateUser(t, "author", enums.RoleUser, false)
	f.mustCreateUser(t, "voter", enums.RoleUser, false)

	low, err := f.questionSvc.CreateQuestion(ctx, "author", &dto.CreateQuestionRequest{Title: "low", Description: "d", Tags: []string{"go"}})
	require.NoError(t, err)
	high, err := f.questionSvc.CreateQuestion(ctx, "author", &dto.CreateQuestionRequest{Title: "high", Description: "d", Tags: []string{"go"}})
	require.NoError(t, err)

	_, err = f.questionSvc.VoteQuestion(ctx, "voter", high.ID, 1)
	require.NoError(t, err)

	result, err := svc.GetHotQuestions(ctx)
	require.NoError(t, err)
	require.Len(t, result.Questions, 2)
	// 回源结果按票数降序
	assert.Equal(t, "high", result.Questions[0].Title)
	assert.Equal(t, "low", result.Questions[1].Title)
	_ = low
}

func TestHotQuestionService_RedisErrorFallsBackToDB(t *testing.T) {
	f, svc := newHotFixture(t, errors.New("redis: connection refused"), nil)
	ctx := context.Background()
	f.mustCreateUser(t, "author", enums.RoleUser, false)

	_, err := f.questionSvc.CreateQuestion(ctx, "author", &dto.CreateQuestionRequest{Title: "only", Description: "d", Tags: []string{"go"}})
	require.NoError(t, err)

	result, err := svc.GetHotQuestions(ctx)
	require.NoError(t, err)
	require.Len(t, result.Questions, 1)
	assert.Equal(t, "only", result.Questions[0].Title)
}
