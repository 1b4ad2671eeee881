package middleware

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/qa_service/constant"
	"github.com/Xushengqwer/qa_service/models/enums"
)

// IdentityContext 从网关透传的请求头中提取用户身份并写入 gin.Context。
// - 网关负责令牌校验，这里对 X-User-ID / X-User-Role 的内容无条件信任。
// - 未携带身份头的请求按游客处理，由各路由上的守卫决定是否放行。
func IdentityContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(constant.HeaderUserID)
		role := enums.UserRole(c.GetHeader(constant.HeaderUserRole))
		if !role.Valid() {
			role = enums.RoleGuest
		}

		if userID != "" {
			c.Set(constant.CtxUserIDKey, userID)
		}
		c.Set(constant.CtxUserRoleKey, role)
		c.Next()
	}
}

// RequireAuth 要求请求携带有效的用户身份，否则返回 401。
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := UserIDFromContext(c); !ok {
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "需要登录")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin 要求请求者具备管理员角色，否则返回 403。
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := UserIDFromContext(c); !ok {
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "需要登录")
			c.Abort()
			return
		}
		if RoleFromContext(c) != enums.RoleAdmin {
			response.RespondError(c, http.StatusForbidden, response.ErrCodeClientUnauthorized, "需要管理员权限")
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserIDFromContext 取出当前请求的用户 ID。第二个返回值表示是否已登录。
func UserIDFromContext(c *gin.Context) (string, bool) {
	v, exists := c.Get(constant.CtxUserIDKey)
	if !exists {
		return "", false
	}
	userID, ok := v.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// RoleFromContext 取出当前请求的角色，缺省为游客。
func RoleFromContext(c *gin.Context) enums.UserRole {
	v, exists := c.Get(constant.CtxUserRoleKey)
	if !exists {
		return enums.RoleGuest
	}
	role, ok := v.(enums.UserRole)
	if !ok {
		return enums.RoleGuest
	}
	return role
}
