package controller

import (
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/qa_service/service"
)

// HotQuestionController 定义热门问题控制器的结构体
type HotQuestionController struct {
	hotQuestionService service.HotQuestionService
}

// NewHotQuestionController 构造函数，用于创建 HotQuestionController 实例
func NewHotQuestionController(hotQuestionService service.HotQuestionService) *HotQuestionController {
	return &HotQuestionController{
		hotQuestionService: hotQuestionService,
	}
}

// GetHotQuestions 获取热门问题榜单
// @Summary      获取热门问题榜单 (公开)
// @Description  按票数从高到低返回热门问题列表。数据来自定时重建的 Redis 快照，缓存未命中时回源数据库。
// @Tags         questions (问题)
// @Accept       json
// @Produce      json
// @Success      200 {object} vo.HotQuestionsResponseWrapper "热门问题获取成功"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/qa/questions/hot [get]
func (ctrl *HotQuestionController) GetHotQuestions(c *gin.Context) {
	hotVO, err := ctrl.hotQuestionService.GetHotQuestions(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "获取热门问题失败")
		return
	}
	response.RespondSuccess(c, hotVO, "热门问题获取成功")
}

// RegisterRoutes 注册 HotQuestionController 的路由
func (ctrl *HotQuestionController) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/questions/hot", ctrl.GetHotQuestions) // GET /api/v1/qa/questions/hot
}
