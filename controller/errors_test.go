package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Xushengqwer/qa_service/myErrors"
)

func doErrorRequest(err error, fallbackMsg string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/probe", func(c *gin.Context) {
		respondServiceError(c, err, fallbackMsg)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
	return w
}

func TestRespondServiceError_StatusMapping(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
	}{
		{commonerrors.ErrRepoNotFound, http.StatusNotFound},
		{myErrors.ErrForbidden, http.StatusForbidden},
		{myErrors.ErrUserBanned, http.StatusForbidden},
		{myErrors.ErrSelfVote, http.StatusBadRequest},
		{myErrors.ErrAnswerMismatch, http.StatusBadRequest},
		{myErrors.ErrAdminNotBannable, http.StatusBadRequest},
		{errors.New("unexpected"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		w := doErrorRequest(tc.err, "操作失败")
		assert.Equal(t, tc.wantStatus, w.Code, "错误 %v 的状态码映射不符", tc.err)
	}
}

func TestRespondServiceError_InternalDetailNotLeaked(t *testing.T) {
	// 存储层错误里常带有内部地址等敏感细节，500 响应必须只返回通用文案
	internal := errors.New("dial tcp 127.0.0.1:3306: connect: connection refused")
	w := doErrorRequest(internal, "获取问题列表失败")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := w.Body.String()
	assert.NotContains(t, body, internal.Error())
	assert.NotContains(t, body, "127.0.0.1")
	assert.NotContains(t, body, "dial tcp")

	var resp struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "获取问题列表失败", resp.Message)
	assert.False(t, strings.Contains(resp.Message, ":"), "通用文案不应拼接底层错误")
}
