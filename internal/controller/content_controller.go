package controller

import (
	"errors"
	"skillpath_backend/internal/model"
	"skillpath_backend/internal/service"
	"skillpath_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ContentController 管理端内容维护接口
type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// CreateRoadmap godoc
// @Summary 新建路线
// @Tags 内容管理
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   request body service.RoadmapRequest true "路线信息"
// @Success 201 {object} util.Response{data=model.Roadmap}
// @Router /api/admin/roadmaps [post]
func (c *ContentController) CreateRoadmap(ctx *gin.Context) {
	var req service.RoadmapRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	roadmap, err := c.ContentService.CreateRoadmap(req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Created(ctx, roadmap)
}

// UpdateRoadmap godoc
// @Summary 更新路线
// @Tags 内容管理
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "路线ID"
// @Param   request body service.RoadmapRequest true "路线信息"
// @Success 200 {object} util.Response{data=model.Roadmap}
// @Failure 404 {object} util.Response "路线不存在"
// @Router /api/admin/roadmaps/{id} [put]
func (c *ContentController) UpdateRoadmap(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid roadmap id")
		return
	}

	var req service.RoadmapRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	roadmap, err := c.ContentService.UpdateRoadmap(uint(id), req)
	if err != nil {
		if errors.Is(err, util.ErrRoadmapNotFound) {
			util.NotFoundMessage(ctx, "roadmap not found")
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, roadmap)
}

// DeleteRoadmap godoc
// @Summary 删除路线
// @Tags 内容管理
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "路线ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "路线不存在"
// @Router /api/admin/roadmaps/{id} [delete]
func (c *ContentController) DeleteRoadmap(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid roadmap id")
		return
	}

	if err := c.ContentService.DeleteRoadmap(uint(id)); err != nil {
		if errors.Is(err, util.ErrRoadmapNotFound) {
			util.NotFoundMessage(ctx, "roadmap not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}

// CreateSection godoc
// @Summary 新建章节
// @Tags 内容管理
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   request body service.SectionRequest true "章节信息"
// @Success 201 {object} util.Response{data=model.Section}
// @Router /api/admin/sections [post]
func (c *ContentController) CreateSection(ctx *gin.Context) {
	var req service.SectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	section, err := c.ContentService.CreateSection(req)
	if err != nil {
		if errors.Is(err, util.ErrRoadmapNotFound) {
			util.NotFoundMessage(ctx, "roadmap not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, section)
}

// CreateResource godoc
// @Summary 新建资源
// @Tags 内容管理
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   request body service.ResourceRequest true "资源信息"
// @Success 201 {object} util.Response{data=model.Resource}
// @Router /api/admin/resources [post]
func (c *ContentController) CreateResource(ctx *gin.Context) {
	var req service.ResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resource, err := c.ContentService.CreateResource(req)
	if err != nil {
		if errors.Is(err, util.ErrRoadmapNotFound) {
			util.NotFoundMessage(ctx, "section not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, resource)
}

// UpdateSection godoc
// @Summary 更新章节
// @Tags 内容管理
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "章节ID"
// @Param   request body service.SectionRequest true "章节信息"
// @Success 200 {object} util.Response{data=model.Section}
// @Router /api/admin/sections/{id} [put]
func (c *ContentController) UpdateSection(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid section id")
		return
	}

	var req service.SectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	section, err := c.ContentService.UpdateSection(uint(id), req)
	if err != nil {
		if errors.Is(err, util.ErrRoadmapNotFound) {
			util.NotFoundMessage(ctx, "section not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, section)
}

// DeleteSection godoc
// @Summary 删除章节
// @Tags 内容管理
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "章节ID"
// @Success 200 {object} util.Response
// @Router /api/admin/sections/{id} [delete]
func (c *ContentController) DeleteSection(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid section id")
		return
	}

	if err := c.ContentService.DeleteSection(uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}

// UpdateResource godoc
// @Summary 更新资源
// @Tags 内容管理
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "资源ID"
// @Param   request body service.ResourceRequest true "资源信息"
// @Success 200 {object} util.Response{data=model.Resource}
// @Router /api/admin/resources/{id} [put]
func (c *ContentController) UpdateResource(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid resource id")
		return
	}

	var req service.ResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resource, err := c.ContentService.UpdateResource(uint(id), req)
	if err != nil {
		if errors.Is(err, util.ErrResourceNotFound) {
			util.NotFoundMessage(ctx, "resource not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, resource)
}

// DeleteResource godoc
// @Summary 删除资源
// @Tags 内容管理
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "资源ID"
// @Success 200 {object} util.Response
// @Router /api/admin/resources/{id} [delete]
func (c *ContentController) DeleteResource(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid resource id")
		return
	}

	if err := c.ContentService.DeleteResource(uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}

// UploadResourceFile godoc
// @Summary 上传资源文件
// @Description 视频文件上传前会探测时长与格式
// @Tags 内容管理
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   file formData file true "资源文件"
// @Param   type formData string true "资源类型" Enums(video, article)
// @Success 200 {object} util.Response
// @Router /api/admin/resources/upload [post]
func (c *ContentController) UploadResourceFile(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	resourceType := model.ResourceType(ctx.PostForm("type"))
	if resourceType != model.Video && resourceType != model.Article {
		util.BadRequest(ctx, "invalid resource type")
		return
	}

	url, info, err := c.ContentService.UploadResourceFile(ctx.Request.Context(), file, resourceType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	resp := gin.H{"url": url}
	if info != nil {
		resp["video"] = info
	}
	util.Success(ctx, resp)
}

// CreateQuiz godoc
// @Summary 新建测验
// @Tags 内容管理
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   request body service.QuizRequest true "测验信息"
// @Success 201 {object} util.Response{data=model.Quiz}
// @Router /api/admin/quizzes [post]
func (c *ContentController) CreateQuiz(ctx *gin.Context) {
	var req service.QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.ContentService.CreateQuiz(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, quiz)
}

// UpdateQuiz godoc
// @Summary 更新测验
// @Tags 内容管理
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "测验ID"
// @Param   request body service.QuizRequest true "测验信息"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Router /api/admin/quizzes/{id} [put]
func (c *ContentController) UpdateQuiz(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid quiz id")
		return
	}

	var req service.QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.ContentService.UpdateQuiz(uint(id), req)
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

// DeleteQuiz godoc
// @Summary 删除测验
// @Tags 内容管理
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "测验ID"
// @Success 200 {object} util.Response
// @Router /api/admin/quizzes/{id} [delete]
func (c *ContentController) DeleteQuiz(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid quiz id")
		return
	}

	if err := c.ContentService.DeleteQuiz(uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}

// DeleteQuestion godoc
// @Summary 删除题目
// @Tags 内容管理
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "题目ID"
// @Success 200 {object} util.Response
// @Router /api/admin/questions/{id} [delete]
func (c *ContentController) DeleteQuestion(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid question id")
		return
	}

	if err := c.ContentService.DeleteQuestion(uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}

// CreateQuestion godoc
// @Summary 新建题目
// @Description 标准答案必须是选项之一
// @Tags 内容管理
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   request body service.QuestionRequest true "题目信息"
// @Success 201 {object} util.Response{data=model.Question}
// @Failure 404 {object} util.Response "测验不存在"
// @Router /api/admin/questions [post]
func (c *ContentController) CreateQuestion(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.ContentService.CreateQuestion(req)
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFoundMessage(ctx, "quiz not found")
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Created(ctx, question)
}
