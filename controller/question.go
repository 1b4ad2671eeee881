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

// QuestionController 定义问题控制器的结构体
type QuestionController struct {
	questionService     service.QuestionService
	questionListService service.QuestionListService
}

// NewQuestionController 构造函数，用于创建 QuestionController 实例
func NewQuestionController(questionService service.QuestionService, questionListService service.QuestionListService) *QuestionController {
	return &QuestionController{
		questionService:     questionService,
		questionListService: questionListService,
	}
}

// ListQuestions 获取问题列表 (分页)
// @Summary      获取问题列表 (公开)
// @Description  按条件分页获取问题列表，支持标签筛选、关键词搜索（标题/描述，大小写不敏感）与是否已有回答筛选。
// @Tags         questions (问题)
// @Accept       json
// @Produce      json
// @Param        page query int false "页码 (从1开始)" format(int32) minimum(1) default(1)
// @Param        limit query int false "每页数量" format(int32) minimum(1) maximum(100) default(10)
// @Param        tag query string false "标签等值筛选 (最大长度 50)" maxLength(50)
// @Param        search query string false "标题/描述搜索关键词 (最大长度 255)" maxLength(255)
// @Param        sort query string false "排序方式" Enums(newest,oldest) default(newest)
// @Param        answered query bool false "true=已有回答, false=零回答, 缺省=不筛选"
// @Success      200 {object} vo.QuestionPageResponseWrapper "成功响应，包含问题列表与分页信息"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/qa/questions [get]
func (ctrl *QuestionController) ListQuestions(c *gin.Context) {
	var req dto.ListQuestionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	pageVO, err := ctrl.questionListService.ListQuestions(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "获取问题列表失败")
		return
	}
	response.RespondSuccess(c, pageVO, "问题列表获取成功")
}

// CreateQuestion 发布新问题
// @Summary      发布新问题
// @Description  创建一个新问题，标签至少1个至多5个，按提交顺序保存。被封禁用户不能发布。
// @Tags         questions (问题)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateQuestionRequest true "问题内容"
// @Success      200 {object} vo.QuestionResponseWrapper "问题创建成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未登录"
// @Failure      403 {object} vo.BaseResponseWrapper "账号已被封禁"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/qa/questions [post]
func (ctrl *QuestionController) CreateQuestion(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	userID, _ := middleware.UserIDFromContext(c)
	questionVO, err := ctrl.questionService.CreateQuestion(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err, "创建问题失败")
		return
	}
	response.RespondSuccess(c, questionVO, "问题创建成功")
}

// GetQuestionByID 获取问题详情
// @Summary      获取指定ID的问题详情 (公开)
// @Description  通过问题的 ID 检索问题详情，标签按创建顺序返回。
// @Tags         questions (问题)
// @Accept       json
// @Produce      json
// @Param        question_id path uint64 true "问题 ID" Format(uint64)
// @Success      200 {object} vo.QuestionResponseWrapper "问题详情检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的问题 ID 格式"
// @Failure      404 {object} vo.BaseResponseWrapper "问题不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/qa/questions/{question_id} [get]
func (ctrl *QuestionController) GetQuestionByID(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("question_id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的问题 ID 格式")
		return
	}

	questionVO, err := ctrl.questionService.GetQuestionByID(c.Request.Context(), questionID)
	if err != nil {
		respondServiceError(c, err, "检索问题详情失败")
		return
	}
	response.RespondSuccess(c, questionVO, "问题详情检索成功")
}

// UpdateQuestion 编辑问题
// @Summary      编辑指定ID的问题
// @Description  更新问题的标题/描述/标签，缺省字段保持不变。仅问题作者或管理员可操作。
// @Tags         questions (问题)
// @Accept       json
// @Produce      json
// @Param        question_id path uint64 true "问题 ID" Format(uint64)
// @Param        request body dto.UpdateQuestionRequest true "要更新的字段"
// @Success      200 {object} vo.QuestionResponseWrapper "问题更新成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未登录"
// @Failure      403 {object} vo.BaseResponseWrapper "没有权限"
// @Failure      404 {object} vo.BaseResponseWrapper "问题不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/qa/questions/{question_id} [put]
func (ctrl *QuestionController) UpdateQuestion(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("question_id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的问题 ID 格式")
		return
	}

	var req dto.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	userID, _ := middleware.UserIDFromContext(c)
	questionVO, err := ctrl.questionService.UpdateQuestion(c.Request.Context(), userID, middleware.RoleFromContext(c), questionID, &req)
	if err != nil {
		respondServiceError(c, err, "编辑问题失败")
		return
	}
	response.RespondSuccess(c, questionVO, "问题更新成功")
}

// DeleteQuestion 删除问题
// @Summary      删除指定ID的问题
// @Description  软删除问题及其全部回答（同一事务），并异步通知下游服务。仅问题作者或管理员可操作。
// @Tags         questions (问题)
// @Accept       json
// @Produce      json
// @Param        question_id path uint64 true "问题 ID" Format(uint64)
// @Success      200 {object} vo.BaseResponseWrapper "问题删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的问题 ID 格式"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未登录"
// @Failure      403 {object} vo.BaseResponseWrapper "没有权限"
// @Failure      404 {object} vo.BaseResponseWrapper "问题不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/qa/questions/{question_id} [delete]
func (ctrl *QuestionController) DeleteQuestion(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("question_id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的问题 ID 格式")
		return
	}

	userID, _ := middleware.UserIDFromContext(c)
	if err := ctrl.questionService.DeleteQuestion(c.Request.Context(), userID, middleware.RoleFromContext(c), questionID); err != nil {
		respondServiceError(c, err, "删除问题失败")
		return
	}
	response.RespondSuccess[any](c, nil, "问题删除成功")
}

// VoteQuestion 对问题投票
// @Summary      对指定问题投票
// @Description  对问题投 +1 或 -1，返回最新票数。不能给自己的问题投票；票数允许为负。
// @Tags         questions (问题)
// @Accept       json
// @Produce      json
// @Param        question_id path uint64 true "问题 ID" Format(uint64)
// @Param        request body dto.VoteRequest true "投票方向 (+1/-1)"
// @Success      200 {object} vo.VoteResultResponseWrapper "投票成功，返回最新票数"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数或给自己投票"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未登录"
// @Failure      404 {object} vo.BaseResponseWrapper "问题不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/qa/questions/{question_id}/vote [post]
func (ctrl *QuestionController) VoteQuestion(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("question_id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的问题 ID 格式")
		return
	}

	var req dto.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	userID, _ := middleware.UserIDFromContext(c)
	resultVO, err := ctrl.questionService.VoteQuestion(c.Request.Context(), userID, questionID, int64(req.Vote))
	if err != nil {
		respondServiceError(c, err, "问题投票失败")
		return
	}
	response.RespondSuccess(c, resultVO, "投票成功")
}

// AcceptAnswer 采纳回答
// @Summary      采纳指定问题下的一条回答
// @Description  问题作者采纳一条回答；换选时旧的采纳自动撤销。回答作者会收到通知（自采纳除外）。
// @Tags         questions (问题)
// @Accept       json
// @Produce      json
// @Param        question_id path uint64 true "问题 ID" Format(uint64)
// @Param        answer_id path uint64 true "回答 ID" Format(uint64)
// @Success      200 {object} vo.QuestionResponseWrapper "采纳成功，返回更新后的问题"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的 ID 格式或回答不属于该问题"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未登录"
// @Failure      403 {object} vo.BaseResponseWrapper "只有问题作者可以采纳"
// @Failure      404 {object} vo.BaseResponseWrapper "问题或回答不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/qa/questions/{question_id}/accept-answer/{answer_id} [post]
func (ctrl *QuestionController) AcceptAnswer(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("question_id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的问题 ID 格式")
		return
	}
	answerID, err := strconv.ParseUint(c.Param("answer_id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的回答 ID 格式")
		return
	}

	userID, _ := middleware.UserIDFromContext(c)
	questionVO, err := ctrl.questionService.AcceptAnswer(c.Request.Context(), userID, questionID, answerID)
	if err != nil {
		respondServiceError(c, err, "采纳回答失败")
		return
	}
	response.RespondSuccess(c, questionVO, "采纳成功")
}

// PopularTags 获取热门标签
// @Summary      获取热门标签 (公开)
// @Description  按被引用次数倒序返回标签列表；次数相同时先出现的标签在前。
// @Tags         tags (标签)
// @Accept       json
// @Produce      json
// @Param        limit query int false "返回条数" format(int32) minimum(1) default(20)
// @Success      200 {object} vo.PopularTagsResponseWrapper "热门标签获取成功"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/qa/questions/tags/popular [get]
func (ctrl *QuestionController) PopularTags(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	tagsVO, err := ctrl.questionListService.PopularTags(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, err, "获取热门标签失败")
		return
	}
	response.RespondSuccess(c, tagsVO, "热门标签获取成功")
}

// RegisterRoutes 注册 QuestionController 的路由
func (ctrl *QuestionController) RegisterRoutes(group *gin.RouterGroup) {
	questions := group.Group("/questions")
	{
		questions.GET("", ctrl.ListQuestions)                // GET    /api/v1/qa/questions
		questions.GET("/tags/popular", ctrl.PopularTags)     // GET    /api/v1/qa/questions/tags/popular
		questions.GET("/:question_id", ctrl.GetQuestionByID) // GET    /api/v1/qa/questions/:question_id

		authed := questions.Group("", middleware.RequireAuth())
		{
			authed.POST("", ctrl.CreateQuestion)                                // POST   /api/v1/qa/questions
			authed.PUT("/:question_id", ctrl.UpdateQuestion)                    // PUT    /api/v1/qa/questions/:question_id
			authed.DELETE("/:question_id", ctrl.DeleteQuestion)                 // DELETE /api/v1/qa/questions/:question_id
			authed.POST("/:question_id/vote", ctrl.VoteQuestion)                // POST   /api/v1/qa/questions/:question_id/vote
			authed.POST("/:question_id/accept-answer/:answer_id", ctrl.AcceptAnswer) // POST /api/v1/qa/questions/:question_id/accept-answer/:answer_id
		}
	}
}
