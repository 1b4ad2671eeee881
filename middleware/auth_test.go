package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Xushengqwer/qa_service/constant"
	"github.com/Xushengqwer/qa_service/models/enums"
)

func doRequest(handlers []gin.HandlerFunc, headers map[string]string) (*httptest.ResponseRecorder, *gin.Context) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	var captured *gin.Context
	all := append([]gin.HandlerFunc{}, handlers...)
	all = append(all, func(c *gin.Context) {
		captured = c
		c.Status(http.StatusOK)
	})
	router.GET("/probe", all...)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w, captured
}

func TestIdentityContext(t *testing.T) {
	// 携带完整身份头
	w, c := doRequest([]gin.HandlerFunc{IdentityContext()}, map[string]string{
		constant.HeaderUserID:   "user-1",
		constant.HeaderUserRole: "admin",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	userID, ok := UserIDFromContext(c)
	assert.True(t, ok)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, enums.RoleAdmin, RoleFromContext(c))

	// 非法角色回落为游客
	w, c = doRequest([]gin.HandlerFunc{IdentityContext()}, map[string]string{
		constant.HeaderUserID:   "user-1",
		constant.HeaderUserRole: "superuser",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, enums.RoleGuest, RoleFromContext(c))

	// 无身份头按游客处理
	w, c = doRequest([]gin.HandlerFunc{IdentityContext()}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	_, ok = UserIDFromContext(c)
	assert.False(t, ok)
	assert.Equal(t, enums.RoleGuest, RoleFromContext(c))
}

func TestRequireAuth(t *testing.T) {
	// 未登录返回 401
	w, _ := doRequest([]gin.HandlerFunc{IdentityContext(), RequireAuth()}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 已登录放行
	w, _ = doRequest([]gin.HandlerFunc{IdentityContext(), RequireAuth()}, map[string]string{
		constant.HeaderUserID:   "user-1",
		constant.HeaderUserRole: "user",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	// 未登录返回 401
	w, _ := doRequest([]gin.HandlerFunc{IdentityContext(), RequireAdmin()}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 普通用户返回 403
	w, _ = doRequest([]gin.HandlerFunc{IdentityContext(), RequireAdmin()}, map[string]string{
		constant.HeaderUserID:   "user-1",
		constant.HeaderUserRole: "user",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 管理员放行
	w, _ = doRequest([]gin.HandlerFunc{IdentityContext(), RequireAdmin()}, map[string]string{
		constant.HeaderUserID:   "admin-1",
		constant.HeaderUserRole: "admin",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}
