package controller

import (
	"errors"
	"skillpath_backend/internal/service"
	"skillpath_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

type completeResourceRequest struct {
	ResourceID uint `json:"resource_id" binding:"required"`
}

// CompleteResource godoc
// @Summary 标记资源完成
// @Description 幂等：重复标记同一资源不改变进度
// @Tags 进度
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "路线ID"
// @Param   request body completeResourceRequest true "完成的资源"
// @Success 200 {object} util.Response{data=model.UserProgress}
// @Failure 404 {object} util.Response "路线或资源不存在"
// @Router /api/roadmaps/{id}/progress [post]
func (c *ProgressController) CompleteResource(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	roadmapID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid roadmap id")
		return
	}

	var req completeResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.ProgressService.CompleteResource(ctx.Request.Context(), user.UserID, uint(roadmapID), req.ResourceID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrRoadmapNotFound):
			util.NotFoundMessage(ctx, "roadmap not found")
		case errors.Is(err, util.ErrResourceNotFound):
			util.NotFoundMessage(ctx, "resource not found")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, progress)
}

// GetRoadmapProgress godoc
// @Summary 查询路线进度
// @Description 未开始的路线返回零值进度
// @Tags 进度
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "路线ID"
// @Success 200 {object} util.Response{data=model.UserProgress}
// @Router /api/roadmaps/{id}/progress [get]
func (c *ProgressController) GetRoadmapProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	roadmapID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid roadmap id")
		return
	}

	progress, err := c.ProgressService.GetRoadmapProgress(user.UserID, uint(roadmapID))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}

// ListUserProgress godoc
// @Summary 我的全部进度
// @Tags 进度
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.UserProgress}
// @Router /api/user/progress [get]
func (c *ProgressController) ListUserProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	list, err := c.ProgressService.ListUserProgress(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, list)
}
