package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/qa_service/models/dto"
	"github.com/Xushengqwer/qa_service/models/enums"
)

func TestQuestionListService_Pagination(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.mustCreateUser(t, "author", enums.RoleUser, false)

	for i := 0; i < 7; i++ {
		_, err := f.questionSvc.CreateQuestion(ctx, "author", &dto.CreateQuestionRequest{
			Title: "t", Description: "d", Tags: []string{"go"},
		})
		require.NoError(t, err)
	}

	page, err := f.questionListSvc.ListQuestions(ctx, &dto.ListQuestionsRequest{Page: 1, Limit: 3})
	require.NoError(t, err)
	assert.EqualValues(t, 7, page.Total)
	assert.Equal(t, 1, page.Page)
	// totalPages = ceil(7/3) = 3
	assert.EqualValues(t, 3, page.TotalPages)
	assert.Len(t, page.Questions, 3)

	// 页码与每页数量缺省为 1/10
	page, err = f.questionListSvc.ListQuestions(ctx, &dto.ListQuestionsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.EqualValues(t, 1, page.TotalPages)
	assert.Len(t, page.Questions, 7)
}

func TestQuestionListService_PopularTags(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.mustCreateUser(t, "author", enums.RoleUser, false)

	tagSets := [][]string{
		{"go", "redis"},
		{"go"},
		{"redis", "kafka"},
		{"go"},
	}
	for _, tags := range tagSets {
		_, err := f.questionSvc.CreateQuestion(ctx, "author", &dto.CreateQuestionRequest{
			Title: "t", Description: "d", Tags: tags,
		})
		require.NoError(t, err)
	}

	result, err := f.questionListSvc.PopularTags(ctx, 10)
	require.NoError(t, err)
	require.Len(t, result.Tags, 3)
	assert.Equal(t, "go", result.Tags[0].Tag)
	assert.EqualValues(t, 3, result.Tags[0].Count)
	assert.Equal(t, "redis", result.Tags[1].Tag)
	assert.EqualValues(t, 2, result.Tags[1].Count)
	assert.Equal(t, "kafka", result.Tags[2].Tag)
	assert.EqualValues(t, 1, result.Tags[2].Count)
}
