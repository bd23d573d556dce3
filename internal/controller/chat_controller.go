package controller

import (
	"errors"
	"skillpath_backend/internal/service"
	"skillpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	ChatService *service.ChatService
}

func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
	Context   string `json:"context"`
}

// Chat godoc
// @Summary AI助教对话
// @Description 上游AI不可用时返回固定的致歉回复
// @Tags 助教
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   request body chatRequest true "用户消息，可附带当前学习上下文"
// @Success 200 {object} util.Response{data=service.ChatResponse}
// @Router /api/chat [post]
func (c *ChatController) Chat(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req chatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resp, err := c.ChatService.Chat(ctx.Request.Context(), user.UserID, req.SessionID, req.Message, req.Context)
	if err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFoundMessage(ctx, "session not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, resp)
}

// ListSessions godoc
// @Summary 会话列表
// @Tags 助教
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.ChatSession}
// @Router /api/chat/sessions [get]
func (c *ChatController) ListSessions(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	sessions, err := c.ChatService.ListSessions(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, sessions)
}

// GetHistory godoc
// @Summary 会话历史
// @Tags 助教
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "会话ID"
// @Success 200 {object} util.Response{data=[]model.ChatMessage}
// @Failure 404 {object} util.Response "会话不存在"
// @Router /api/chat/sessions/{id} [get]
func (c *ChatController) GetHistory(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	messages, err := c.ChatService.GetHistory(user.UserID, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFoundMessage(ctx, "session not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, messages)
}
