package controller

import (
	"errors"
	"skillpath_backend/internal/service"
	"skillpath_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type RoadmapController struct {
	CatalogService *service.CatalogService
	SavedService   *service.SavedRoadmapService
}

func NewRoadmapController(catalogService *service.CatalogService, savedService *service.SavedRoadmapService) *RoadmapController {
	return &RoadmapController{
		CatalogService: catalogService,
		SavedService:   savedService,
	}
}

// ListRoadmaps godoc
// @Summary 路线目录
// @Description 列出可浏览的学习路线，带数据来源标记
// @Tags 路线
// @Produce  json
// @Success 200 {object} util.Response{data=service.RoadmapCatalog}
// @Router /api/roadmaps [get]
func (c *RoadmapController) ListRoadmaps(ctx *gin.Context) {
	catalog, err := c.CatalogService.ListRoadmaps(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, catalog)
}

// GetRoadmap godoc
// @Summary 路线详情
// @Description 返回路线及其有序章节与资源
// @Tags 路线
// @Produce  json
// @Param   id path int true "路线ID"
// @Success 200 {object} util.Response{data=model.Roadmap}
// @Failure 404 {object} util.Response "路线不存在"
// @Router /api/roadmaps/{id} [get]
func (c *RoadmapController) GetRoadmap(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid roadmap id")
		return
	}

	roadmap, err := c.CatalogService.GetRoadmap(ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, util.ErrRoadmapNotFound) {
			util.NotFoundMessage(ctx, "roadmap not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, roadmap)
}

// SaveRoadmap godoc
// @Summary 收藏路线
// @Tags 路线
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "路线ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "路线不存在"
// @Router /api/roadmaps/{id}/save [post]
func (c *RoadmapController) SaveRoadmap(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid roadmap id")
		return
	}

	if err := c.SavedService.Save(ctx.Request.Context(), user.UserID, uint(id)); err != nil {
		if errors.Is(err, util.ErrRoadmapNotFound) {
			util.NotFoundMessage(ctx, "roadmap not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"saved": true})
}

// UnsaveRoadmap godoc
// @Summary 取消收藏
// @Tags 路线
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "路线ID"
// @Success 200 {object} util.Response
// @Router /api/roadmaps/{id}/save [delete]
func (c *RoadmapController) UnsaveRoadmap(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid roadmap id")
		return
	}

	if err := c.SavedService.Unsave(user.UserID, uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"saved": false})
}

// IsSaved godoc
// @Summary 路线是否已收藏
// @Tags 路线
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "路线ID"
// @Success 200 {object} util.Response
// @Router /api/roadmaps/{id}/saved [get]
func (c *RoadmapController) IsSaved(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid roadmap id")
		return
	}

	saved, err := c.SavedService.IsSaved(user.UserID, uint(id))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"saved": saved})
}

// ListSavedRoadmaps godoc
// @Summary 我的收藏
// @Tags 路线
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.SavedRoadmap}
// @Router /api/user/saved-roadmaps [get]
func (c *RoadmapController) ListSavedRoadmaps(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	saved, err := c.SavedService.List(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, saved)
}
