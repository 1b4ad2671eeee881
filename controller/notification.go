package controller

import (
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/qa_service/middleware"
	"github.com/Xushengqwer/qa_service/models/dto"
	"github.com/Xushengqwer/qa_service/service"
)

// NotificationController 定义通知控制器的结构体
// - 全部接口都需要登录；广播需要管理员权限。
type NotificationController struct {
	notificationService service.NotificationService
}

// NewNotificationController 构造函数，用于创建 NotificationController 实例
func NewNotificationController(notificationService service.NotificationService) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
	}
}

// ListNotifications 获取我的通知列表
// @Summary      获取当前用户的通知列表
// @Description  按创建时间倒序返回当前登录用户的全部通知。
// @Tags         notifications (通知)
// @Accept       json
// @Produce      json
// @Success      200 {object} vo.NotificationListResponseWrapper "通知列表获取成功"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未登录"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/qa/notifications [get]
func (ctrl *NotificationController) ListNotifications(c *gin.Context) {
	userID, _ := middleware.UserIDFromContext(c)

	listVO, err := ctrl.notificationService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "获取通知列表失败")
		return
	}
	response.RespondSuccess(c, listVO, "通知列表获取成功")
}

// UnreadCount 获取未读通知数
// @Summary      获取当前用户的未读通知数
// @Tags         notifications (通知)
// @Accept       json
// @Produce      json
// @Success      200 {object} vo.UnreadCountResponseWrapper "未读数获取成功"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未登录"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/qa/notifications/unread-count [get]
func (ctrl *NotificationController) UnreadCount(c *gin.Context) {
	userID, _ := middleware.UserIDFromContext(c)

	countVO, err := ctrl.notificationService.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "获取未读通知数失败")
		return
	}
	response.RespondSuccess(c, countVO, "未读数获取成功")
}

// MarkRead 标记单条通知为已读
// @Summary      标记指定通知为已读
// @Description  只有收件人本人可以操作；重复标记是幂等的。
// @Tags         notifications (通知)
// @Accept       json
// @Produce      json
// @Param        notification_id path uint64 true "通知 ID" Format(uint64)
// @Success      200 {object} vo.BaseResponseWrapper "标记成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的通知 ID 格式"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未登录"
// @Failure      403 {object} vo.BaseResponseWrapper "不能操作他人的通知"
// @Failure      404 {object} vo.BaseResponseWrapper "通知不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/qa/notifications/{notification_id}/read [put]
func (ctrl *NotificationController) MarkRead(c *gin.Context) {
	notificationID, err := strconv.ParseUint(c.Param("notification_id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的通知 ID 格式")
		return
	}

	userID, _ := middleware.UserIDFromContext(c)
	if err := ctrl.notificationService.MarkRead(c.Request.Context(), userID, notificationID); err != nil {
		respondServiceError(c, err, "标记通知已读失败")
		return
	}
	response.RespondSuccess[any](c, nil, "标记成功")
}

// MarkAllRead 标记全部通知为已读
// @Summary      标记当前用户的全部通知为已读
// @Tags         notifications (通知)
// @Accept       json
// @Produce      json
// @Success      200 {object} vo.BaseResponseWrapper "标记成功"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未登录"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/qa/notifications/mark-all-read [put]
func (ctrl *NotificationController) MarkAllRead(c *gin.Context) {
	userID, _ := middleware.UserIDFromContext(c)

	if err := ctrl.notificationService.MarkAllRead(c.Request.Context(), userID); err != nil {
		respondServiceError(c, err, "批量标记通知已读失败")
		return
	}
	response.RespondSuccess[any](c, nil, "标记成功")
}

// DeleteNotification 删除通知
// @Summary      删除指定通知
// @Description  只有收件人本人可以操作。
// @Tags         notifications (通知)
// @Accept       json
// @Produce      json
// @Param        notification_id path uint64 true "通知 ID" Format(uint64)
// @Success      200 {object} vo.BaseResponseWrapper "删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的通知 ID 格式"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未登录"
// @Failure      403 {object} vo.BaseResponseWrapper "不能操作他人的通知"
// @Failure      404 {object} vo.BaseResponseWrapper "通知不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/qa/notifications/{notification_id} [delete]
func (ctrl *NotificationController) DeleteNotification(c *gin.Context) {
	notificationID, err := strconv.ParseUint(c.Param("notification_id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的通知 ID 格式")
		return
	}

	userID, _ := middleware.UserIDFromContext(c)
	if err := ctrl.notificationService.Delete(c.Request.Context(), userID, notificationID); err != nil {
		respondServiceError(c, err, "删除通知失败")
		return
	}
	response.RespondSuccess[any](c, nil, "删除成功")
}

// Broadcast 平台广播 (管理员)
// @Summary      向全体用户广播通知 (管理员)
// @Description  向全部非管理员用户各创建一条通知，单次批量写入。
// @Tags         notifications (通知)
// @Accept       json
// @Produce      json
// @Param        request body dto.BroadcastRequest true "广播内容"
// @Success      200 {object} vo.BaseResponseWrapper "广播成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未登录"
// @Failure      403 {object} vo.BaseResponseWrapper "需要管理员权限"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/qa/notifications/broadcast [post]
func (ctrl *NotificationController) Broadcast(c *gin.Context) {
	var req dto.BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	count, err := ctrl.notificationService.Broadcast(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "平台广播失败")
		return
	}
	response.RespondSuccess(c, gin.H{"recipientCount": count}, "广播成功")
}

// RegisterRoutes 注册 NotificationController 的路由
func (ctrl *NotificationController) RegisterRoutes(group *gin.RouterGroup) {
	notifications := group.Group("/notifications", middleware.RequireAuth())
	{
		notifications.GET("", ctrl.ListNotifications)                  // GET    /api/v1/qa/notifications
		notifications.GET("/unread-count", ctrl.UnreadCount)           // GET    /api/v1/qa/notifications/unread-count
		notifications.PUT("/mark-all-read", ctrl.MarkAllRead)          // PUT    /api/v1/qa/notifications/mark-all-read
		notifications.PUT("/:notification_id/read", ctrl.MarkRead)     // PUT    /api/v1/qa/notifications/:notification_id/read
		notifications.DELETE("/:notification_id", ctrl.DeleteNotification) // DELETE /api/v1/qa/notifications/:notification_id

		notifications.POST("/broadcast", middleware.RequireAdmin(), ctrl.Broadcast) // POST /api/v1/qa/notifications/broadcast
	}
}
