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

// AnswerController 定义回答控制器的结构体
type AnswerController struct {
	answerService service.AnswerService
}

// NewAnswerController 构造函数，用于创建 AnswerController 实例
func NewAnswerController(answerService service.AnswerService) *AnswerController {
	return &AnswerController{
		answerService: answerService,
	}
}

// CreateAnswer 发布回答
// @Summary      发布回答
// @Description  对指定问题发布一条回答，问题作者会收到通知（自问自答除外）。被封禁用户不能发布。
// @Tags         answers (回答)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateAnswerRequest true "回答内容"
// @Success      200 {object} vo.AnswerResponseWrapper "回答创建成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未登录"
// @Failure      403 {object} vo.BaseResponseWrapper "账号已被封禁"
// @Failure      404 {object} vo.BaseResponseWrapper "问题不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/qa/answers [post]
func (ctrl *AnswerController) CreateAnswer(c *gin.Context) {
	var req dto.CreateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	userID, _ := middleware.UserIDFromContext(c)
	answerVO, err := ctrl.answerService.CreateAnswer(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err, "创建回答失败")
		return
	}
	response.RespondSuccess(c, answerVO, "回答创建成功")
}

// ListAnswersByQuestion 获取问题下的回答列表
// @Summary      获取指定问题下的回答列表 (公开)
// @Description  返回问题下的全部回答：被采纳的在前，其后按票数降序、创建时间降序。
// @Tags         answers (回答)
// @Accept       json
// @Produce      json
// @Param        question_id path uint64 true "问题 ID" Format(uint64)
// @Success      200 {object} vo.AnswerListResponseWrapper "回答列表获取成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的问题 ID 格式"
// @Failure      404 {object} vo.BaseResponseWrapper "问题不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/qa/answers/question/{question_id} [get]
func (ctrl *AnswerController) ListAnswersByQuestion(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("question_id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的问题 ID 格式")
		return
	}

	listVO, err := ctrl.answerService.ListByQuestion(c.Request.Context(), questionID)
	if err != nil {
		respondServiceError(c, err, "获取回答列表失败")
		return
	}
	response.RespondSuccess(c, listVO, "回答列表获取成功")
}

// GetAnswerByID 获取回答详情
// @Summary      获取指定ID的回答 (公开)
// @Tags         answers (回答)
// @Accept       json
// @Produce      json
// @Param        answer_id path uint64 true "回答 ID" Format(uint64)
// @Success      200 {object} vo.AnswerResponseWrapper "回答检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的回答 ID 格式"
// @Failure      404 {object} vo.BaseResponseWrapper "回答不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/qa/answers/{answer_id} [get]
func (ctrl *AnswerController) GetAnswerByID(c *gin.Context) {
	answerID, err := strconv.ParseUint(c.Param("answer_id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的回答 ID 格式")
		return
	}

	answerVO, err := ctrl.answerService.GetAnswerByID(c.Request.Context(), answerID)
	if err != nil {
		respondServiceError(c, err, "检索回答失败")
		return
	}
	response.RespondSuccess(c, answerVO, "回答检索成功")
}

// UpdateAnswer 编辑回答
// @Summary      编辑指定ID的回答
// @Description  更新回答内容。仅回答作者本人可操作。
// @Tags         answers (回答)
// @Accept       json
// @Produce      json
// @Param        answer_id path uint64 true "回答 ID" Format(uint64)
// @Param        request body dto.UpdateAnswerRequest true "新的回答内容"
// @Success      200 {object} vo.AnswerResponseWrapper "回答更新成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未登录"
// @Failure      403 {object} vo.BaseResponseWrapper "没有权限"
// @Failure      404 {object} vo.BaseResponseWrapper "回答不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/qa/answers/{answer_id} [put]
func (ctrl *AnswerController) UpdateAnswer(c *gin.Context) {
	answerID, err := strconv.ParseUint(c.Param("answer_id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的回答 ID 格式")
		return
	}

	var req dto.UpdateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	userID, _ := middleware.UserIDFromContext(c)
	answerVO, err := ctrl.answerService.UpdateAnswer(c.Request.Context(), userID, answerID, &req)
	if err != nil {
		respondServiceError(c, err, "编辑回答失败")
		return
	}
	response.RespondSuccess(c, answerVO, "回答更新成功")
}

// DeleteAnswer 删除回答
// @Summary      删除指定ID的回答
// @Description  软删除回答并回扣问题的回答计数；被采纳的回答删除时同时清空问题上的采纳标记。仅回答作者本人可操作。
// @Tags         answers (回答)
// @Accept       json
// @Produce      json
// @Param        answer_id path uint64 true "回答 ID" Format(uint64)
// @Success      200 {object} vo.BaseResponseWrapper "回答删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的回答 ID 格式"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未登录"
// @Failure      403 {object} vo.BaseResponseWrapper "没有权限"
// @Failure      404 {object} vo.BaseResponseWrapper "回答不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/qa/answers/{answer_id} [delete]
func (ctrl *AnswerController) DeleteAnswer(c *gin.Context) {
	answerID, err := strconv.ParseUint(c.Param("answer_id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的回答 ID 格式")
		return
	}

	userID, _ := middleware.UserIDFromContext(c)
	if err := ctrl.answerService.DeleteAnswer(c.Request.Context(), userID, answerID); err != nil {
		respondServiceError(c, err, "删除回答失败")
		return
	}
	response.RespondSuccess[any](c, nil, "回答删除成功")
}

// VoteAnswer 对回答投票
// @Summary      对指定回答投票
// @Description  对回答投 +1 或 -1，返回最新票数。不能给自己的回答投票。
// @Tags         answers (回答)
// @Accept       json
// @Produce      json
// @Param        answer_id path uint64 true "回答 ID" Format(uint64)
// @Param        request body dto.VoteRequest true "投票方向 (+1/-1)"
// @Success      200 {object} vo.VoteResultResponseWrapper "投票成功，返回最新票数"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数或给自己投票"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未登录"
// @Failure      404 {object} vo.BaseResponseWrapper "回答不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/qa/answers/{answer_id}/vote [post]
func (ctrl *AnswerController) VoteAnswer(c *gin.Context) {
	answerID, err := strconv.ParseUint(c.Param("answer_id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的回答 ID 格式")
		return
	}

	var req dto.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	userID, _ := middleware.UserIDFromContext(c)
	resultVO, err := ctrl.answerService.VoteAnswer(c.Request.Context(), userID, answerID, int64(req.Vote))
	if err != nil {
		respondServiceError(c, err, "回答投票失败")
		return
	}
	response.RespondSuccess(c, resultVO, "投票成功")
}

// RegisterRoutes 注册 AnswerController 的路由
func (ctrl *AnswerController) RegisterRoutes(group *gin.RouterGroup) {
	answers := group.Group("/answers")
	{
		answers.GET("/question/:question_id", ctrl.ListAnswersByQuestion) // GET /api/v1/qa/answers/question/:question_id
		answers.GET("/:answer_id", ctrl.GetAnswerByID)                    // GET /api/v1/qa/answers/:answer_id

		authed := answers.Group("", middleware.RequireAuth())
		{
			authed.POST("", ctrl.CreateAnswer)               // POST   /api/v1/qa/answers
			authed.PUT("/:answer_id", ctrl.UpdateAnswer)     // PUT    /api/v1/qa/answers/:answer_id
			authed.DELETE("/:answer_id", ctrl.DeleteAnswer)  // DELETE /api/v1/qa/answers/:answer_id
			authed.POST("/:answer_id/vote", ctrl.VoteAnswer) // POST   /api/v1/qa/answers/:answer_id/vote
		}
	}
}
