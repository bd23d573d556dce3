package controller

import (
	"errors"
	"skillpath_backend/internal/model"
	"skillpath_backend/internal/service"
	"skillpath_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ProjectController struct {
	ProjectService *service.ProjectService
}

func NewProjectController(projectService *service.ProjectService) *ProjectController {
	return &ProjectController{ProjectService: projectService}
}

// ListProjects godoc
// @Summary 实战项目列表
// @Tags 项目
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Project}
// @Router /api/projects [get]
func (c *ProjectController) ListProjects(ctx *gin.Context) {
	projects, err := c.ProjectService.ListProjects()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, projects)
}

// StartProject godoc
// @Summary 开始项目
// @Tags 项目
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "项目ID"
// @Success 201 {object} util.Response{data=model.ProjectInstance}
// @Failure 404 {object} util.Response "项目不存在"
// @Router /api/projects/{id}/start [post]
func (c *ProjectController) StartProject(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid project id")
		return
	}

	instance, err := c.ProjectService.StartProject(user.UserID, uint(id))
	if err != nil {
		if errors.Is(err, util.ErrProjectNotFound) {
			util.NotFoundMessage(ctx, "project not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, instance)
}

// ListInstances godoc
// @Summary 我的项目
// @Tags 项目
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.ProjectInstance}
// @Router /api/user/projects [get]
func (c *ProjectController) ListInstances(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	instances, err := c.ProjectService.ListInstances(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, instances)
}

type createProjectRequest struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	Difficulty  model.Difficulty `json:"difficulty"`
	RoadmapID   *uint            `json:"roadmapId"`
}

// CreateProject godoc
// @Summary 新建项目
// @Tags 内容管理
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   request body createProjectRequest true "项目信息"
// @Success 201 {object} util.Response{data=model.Project}
// @Router /api/admin/projects [post]
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	var req createProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	project := &model.Project{
		Title:       req.Title,
		Description: req.Description,
		Difficulty:  req.Difficulty,
		RoadmapID:   req.RoadmapID,
	}
	if project.Difficulty == "" {
		project.Difficulty = model.Beginner
	}

	if err := c.ProjectService.CreateProject(project); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, project)
}

type updateInstanceRequest struct {
	Status  string `json:"status" binding:"required"`
	RepoURL string `json:"repo_url"`
}

// UpdateInstanceStatus godoc
// @Summary 更新项目状态
// @Tags 项目
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "项目实例ID"
// @Param   request body updateInstanceRequest true "新状态"
// @Success 200 {object} util.Response{data=model.ProjectInstance}
// @Failure 400 {object} util.Response "状态非法"
// @Router /api/user/projects/{id} [put]
func (c *ProjectController) UpdateInstanceStatus(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid instance id")
		return
	}

	var req updateInstanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	instance, err := c.ProjectService.UpdateInstanceStatus(user.UserID, uint(id), model.ProjectStatus(req.Status), req.RepoURL)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrProjectNotFound):
			util.NotFoundMessage(ctx, "project instance not found")
		case errors.Is(err, util.ErrInvalidStatus):
			util.BadRequest(ctx, "invalid project status")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, instance)
}
