package controller

import (
	"errors"
	"net/http"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/qa_service/myErrors"
)

// respondServiceError 将服务层的哨兵错误统一映射为 HTTP 响应。
// - 未识别的错误一律按 500 处理，避免把内部细节直接暴露给客户端。
func respondServiceError(c *gin.Context, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, commonerrors.ErrRepoNotFound):
		response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "资源不存在")
	case errors.Is(err, myErrors.ErrForbidden):
		response.RespondError(c, http.StatusForbidden, response.ErrCodeClientUnauthorized, "没有权限执行该操作")
	case errors.Is(err, myErrors.ErrUserBanned):
		response.RespondError(c, http.StatusForbidden, response.ErrCodeClientUnauthorized, "账号已被封禁，无法发布内容")
	case errors.Is(err, myErrors.ErrSelfVote):
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "不能给自己的内容投票")
	case errors.Is(err, myErrors.ErrAnswerMismatch):
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "回答不属于该问题")
	case errors.Is(err, myErrors.ErrAdminNotBannable):
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "不能封禁管理员账号")
	default:
		// 原始错误只进日志链路，响应体保持通用文案，不向客户端透出存储层细节。
		_ = c.Error(err)
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, fallbackMsg)
	}
}
