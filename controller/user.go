package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/qa_service/middleware"
	"github.com/Xushengqwer/qa_service/service"
)

// UserController 定义用户控制器的结构体
// - 个人主页与统计公开；用户列表与封禁管理是管理员专属。
type UserController struct {
	userService service.UserService
}

// NewUserController 构造函数，用于创建 UserController 实例
func NewUserController(userService service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetProfile 获取个人主页
// @Summary      获取指定用户的个人主页 (公开)
// @Description  返回用户资料（不含密码）及其全部问题与回答列表。
// @Tags         users (用户)
// @Accept       json
// @Produce      json
// @Param        user_id path string true "用户 ID (UUID)"
// @Success      200 {object} vo.UserProfileResponseWrapper "个人主页获取成功"
// @Failure      404 {object} vo.BaseResponseWrapper "用户不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/qa/users/{user_id} [get]
func (ctrl *UserController) GetProfile(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "用户 ID 是必需的")
		return
	}

	profileVO, err := ctrl.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "获取个人主页失败")
		return
	}
	response.RespondSuccess(c, profileVO, "个人主页获取成功")
}

// GetStats 获取用户统计
// @Summary      获取指定用户的贡献统计 (公开)
// @Description  返回提问数、回答数、被采纳数、票数合计、声望与注册时间。
// @Tags         users (用户)
// @Accept       json
// @Produce      json
// @Param        user_id path string true "用户 ID (UUID)"
// @Success      200 {object} vo.UserStatsResponseWrapper "用户统计获取成功"
// @Failure      404 {object} vo.BaseResponseWrapper "用户不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/qa/users/{user_id}/stats [get]
func (ctrl *UserController) GetStats(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "用户 ID 是必需的")
		return
	}

	statsVO, err := ctrl.userService.GetStats(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "获取用户统计失败")
		return
	}
	response.RespondSuccess(c, statsVO, "用户统计获取成功")
}

// ListUsers 获取用户列表 (管理员)
// @Summary      获取全部用户列表 (管理员)
// @Tags         users (用户)
// @Accept       json
// @Produce      json
// @Success      200 {object} vo.UserListResponseWrapper "用户列表获取成功"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未登录"
// @Failure      403 {object} vo.BaseResponseWrapper "需要管理员权限"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/qa/users [get]
func (ctrl *UserController) ListUsers(c *gin.Context) {
	listVO, err := ctrl.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "获取用户列表失败")
		return
	}
	response.RespondSuccess(c, listVO, "用户列表获取成功")
}

// BanUser 封禁用户 (管理员)
// @Summary      封禁指定用户 (管理员)
// @Description  封禁后用户不能发布问题/回答，浏览与投票不受影响。管理员账号不可被封禁。
// @Tags         users (用户)
// @Accept       json
// @Produce      json
// @Param        user_id path string true "用户 ID (UUID)"
// @Success      200 {object} vo.UserResponseWrapper "封禁成功，返回更新后的用户"
// @Failure      400 {object} vo.BaseResponseWrapper "不能封禁管理员账号"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未登录"
// @Failure      403 {object} vo.BaseResponseWrapper "需要管理员权限"
// @Failure      404 {object} vo.BaseResponseWrapper "用户不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/qa/users/{user_id}/ban [put]
func (ctrl *UserController) BanUser(c *gin.Context) {
	ctrl.setBanStatus(c, true, "用户封禁成功")
}

// UnbanUser 解封用户 (管理员)
// @Summary      解封指定用户 (管理员)
// @Tags         users (用户)
// @Accept       json
// @Produce      json
// @Param        user_id path string true "用户 ID (UUID)"
// @Success      200 {object} vo.UserResponseWrapper "解封成功，返回更新后的用户"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未登录"
// @Failure      403 {object} vo.BaseResponseWrapper "需要管理员权限"
// @Failure      404 {object} vo.BaseResponseWrapper "用户不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/qa/users/{user_id}/unban [put]
func (ctrl *UserController) UnbanUser(c *gin.Context) {
	ctrl.setBanStatus(c, false, "用户解封成功")
}

func (ctrl *UserController) setBanStatus(c *gin.Context, banned bool, successMsg string) {
	userID := c.Param("user_id")
	if userID == "" {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "用户 ID 是必需的")
		return
	}

	userVO, err := ctrl.userService.SetBanStatus(c.Request.Context(), userID, banned)
	if err != nil {
		respondServiceError(c, err, "更新用户封禁状态失败")
		return
	}
	response.RespondSuccess(c, userVO, successMsg)
}

// RegisterRoutes 注册 UserController 的路由
func (ctrl *UserController) RegisterRoutes(group *gin.RouterGroup) {
	users := group.Group("/users")
	{
		users.GET("/:user_id", ctrl.GetProfile)     // GET /api/v1/qa/users/:user_id
		users.GET("/:user_id/stats", ctrl.GetStats)     // GET /api/v1/qa/users/:user_id/stats

		admin := users.Group("", middleware.RequireAdmin())
		{
			admin.GET("", ctrl.ListUsers)                 // GET /api/v1/qa/users
			admin.PUT("/:user_id/ban", ctrl.BanUser)      // PUT /api/v1/qa/users/:user_id/ban
			admin.PUT("/:user_id/unban", ctrl.UnbanUser)  // PUT /api/v1/qa/users/:user_id/unban
		}
	}
}
