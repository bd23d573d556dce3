package controller

import (
	"errors"
	"skillpath_backend/internal/service"
	"skillpath_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// ListQuizzes godoc
// @Summary 测验目录
// @Tags 测验
// @Produce  json
// @Param   roadmapId query int false "按路线过滤"
// @Success 200 {object} util.Response{data=service.QuizCatalog}
// @Router /api/quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	roadmapID, _ := strconv.ParseUint(ctx.DefaultQuery("roadmapId", "0"), 10, 32)
	catalog, err := c.QuizService.ListQuizzes(ctx.Request.Context(), uint(roadmapID))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, catalog)
}

// GetQuiz godoc
// @Summary 测验详情
// @Description 返回给学习者的题目视图，不含正确答案
// @Tags 测验
// @Produce  json
// @Param   id path int true "测验ID"
// @Success 200 {object} util.Response{data=service.LearnerQuiz}
// @Failure 404 {object} util.Response "测验不存在"
// @Router /api/quizzes/{id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid quiz id")
		return
	}

	quiz, err := c.QuizService.GetQuiz(ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFoundMessage(ctx, "quiz not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, quiz)
}

// StartAttempt godoc
// @Summary 开始答题
// @Description 存在未提交的答题记录时直接恢复该记录
// @Tags 测验
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "测验ID"
// @Success 200 {object} util.Response{data=model.QuizAttempt}
// @Failure 404 {object} util.Response "测验不存在"
// @Router /api/quizzes/{id}/attempts [post]
func (c *QuizController) StartAttempt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid quiz id")
		return
	}

	attempt, err := c.QuizService.StartAttempt(ctx.Request.Context(), user.UserID, uint(id))
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFoundMessage(ctx, "quiz not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, attempt)
}

type answersRequest struct {
	Answers map[uint]string `json:"answers" binding:"required"`
}

// SaveAnswers godoc
// @Summary 暂存作答
// @Description 合并到已有作答，提交后不可再修改
// @Tags 测验
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "答题记录ID"
// @Param   request body answersRequest true "题目ID到选项的映射"
// @Success 200 {object} util.Response{data=model.QuizAttempt}
// @Failure 409 {object} util.Response "答题已提交"
// @Router /api/attempts/{id}/answers [put]
func (c *QuizController) SaveAnswers(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid attempt id")
		return
	}

	var req answersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	attempt, err := c.QuizService.SaveAnswers(user.UserID, uint(id), req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAttemptNotFound):
			util.NotFoundMessage(ctx, "attempt not found")
		case errors.Is(err, util.ErrAttemptFinalized):
			util.Conflict(ctx, "attempt already submitted")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, attempt)
}

// SubmitAttempt godoc
// @Summary 提交答题
// @Description 所有题目必须作答，评分后记录不可变
// @Tags 测验
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "答题记录ID"
// @Param   request body answersRequest false "提交时附带的最终作答"
// @Success 200 {object} util.Response{data=service.QuizResult}
// @Failure 400 {object} util.Response "存在未作答题目"
// @Failure 409 {object} util.Response "答题已提交"
// @Router /api/attempts/{id}/submit [post]
func (c *QuizController) SubmitAttempt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid attempt id")
		return
	}

	// 提交请求体可为空，表示使用已暂存的作答
	var req answersRequest
	_ = ctx.ShouldBindJSON(&req)

	result, err := c.QuizService.SubmitAttempt(ctx.Request.Context(), user.UserID, uint(id), req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAttemptNotFound):
			util.NotFoundMessage(ctx, "attempt not found")
		case errors.Is(err, util.ErrAttemptFinalized):
			util.Conflict(ctx, "attempt already submitted")
		case errors.Is(err, util.ErrUnansweredQuestions):
			util.BadRequest(ctx, "all questions must be answered before submitting")
		case errors.Is(err, util.ErrQuizNoQuestions):
			util.BadRequest(ctx, "quiz has no questions")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

// GetAttempt godoc
// @Summary 答题记录详情
// @Tags 测验
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "答题记录ID"
// @Success 200 {object} util.Response{data=model.QuizAttempt}
// @Failure 404 {object} util.Response "记录不存在"
// @Router /api/attempts/{id} [get]
func (c *QuizController) GetAttempt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid attempt id")
		return
	}

	attempt, err := c.QuizService.GetAttempt(user.UserID, uint(id))
	if err != nil {
		if errors.Is(err, util.ErrAttemptNotFound) {
			util.NotFoundMessage(ctx, "attempt not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, attempt)
}

// ListAttempts godoc
// @Summary 我的答题记录
// @Tags 测验
// @Produce  json
// @Security BearerAuth
// @Param   limit query int false "返回条数上限" default(20)
// @Success 200 {object} util.Response{data=[]model.QuizAttempt}
// @Router /api/user/attempts [get]
func (c *QuizController) ListAttempts(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}

	attempts, err := c.QuizService.ListAttempts(user.UserID, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, attempts)
}
