package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"skillpath_backend/internal/config"
	"skillpath_backend/internal/model"
	"skillpath_backend/internal/repository"
	"skillpath_backend/internal/util"
	"skillpath_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// apologyMessage AI中继失败时返回给学员的兜底回复，
// 失败不作为错误向上抛出
const apologyMessage = "抱歉，AI助教暂时无法回复，请稍后再试。"

type ChatService struct {
	cfg      config.AIConfig
	ChatRepo *repository.ChatRepository
	client   *http.Client
}

func NewChatService(cfg config.AIConfig, chatRepo *repository.ChatRepository) *ChatService {
	return &ChatService{
		cfg:      cfg,
		ChatRepo: chatRepo,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// relay 调用OpenAI风格的chat-completions端点，返回助手回复文本
func (s *ChatService) relay(ctx context.Context, messages []AIChatMessage) (string, error) {
	reqBody := map[string]interface{}{
		"model":    s.cfg.Model,
		"messages": messages,
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", err
	}
	if completion.Error != nil {
		return "", fmt.Errorf("AI API error: %s", completion.Error.Message)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("AI API returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}

// ChatResponse 一次问答的结果
type ChatResponse struct {
	SessionID string `json:"sessionId"`
	Response  string `json:"response"`
}

// Chat 处理一轮对话：建会话（如需要）、注入历史、调用中继、落库双方消息。
// 中继失败时以兜底回复收尾，不向学员暴露错误。
func (s *ChatService) Chat(ctx context.Context, userID uint, sessionID, message, contextText string) (*ChatResponse, error) {
	session, err := s.ensureSession(userID, sessionID, message)
	if err != nil {
		return nil, err
	}

	history, err := s.ChatRepo.ListMessages(session.ID)
	if err != nil {
		return nil, err
	}

	systemContent := "你是学习平台的AI助教，请用简洁准确的中文回答学员关于课程内容的问题。"
	if contextText != "" {
		systemContent = fmt.Sprintf("你是学习平台的AI助教。请结合以下背景知识回答问题：\n\n%s", contextText)
	}

	messages := []AIChatMessage{{Role: "system", Content: systemContent}}
	for _, h := range history {
		messages = append(messages, AIChatMessage{Role: h.Role, Content: h.Content})
	}
	messages = append(messages, AIChatMessage{Role: "user", Content: message})

	response, relayErr := s.relay(ctx, messages)
	if relayErr != nil {
		logger.Log.Warn("AI relay failed", zap.Error(relayErr))
		response = apologyMessage
	}

	userMsg := &model.ChatMessage{SessionID: session.ID, Role: "user", Content: message}
	if err := s.ChatRepo.CreateMessage(userMsg); err != nil {
		return nil, err
	}
	assistantMsg := &model.ChatMessage{SessionID: session.ID, Role: "assistant", Content: response}
	if err := s.ChatRepo.CreateMessage(assistantMsg); err != nil {
		return nil, err
	}

	return &ChatResponse{SessionID: session.ID, Response: response}, nil
}

func (s *ChatService) ensureSession(userID uint, sessionID, firstMessage string) (*model.ChatSession, error) {
	if sessionID != "" {
		session, err := s.ChatRepo.FindSessionByID(sessionID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, util.ErrSessionNotFound
			}
			return nil, err
		}
		if session.UserID != userID {
			return nil, util.ErrPermissionDenied
		}
		return session, nil
	}

	title := firstMessage
	if len([]rune(title)) > 30 {
		title = string([]rune(title)[:30])
	}
	session := &model.ChatSession{UserID: userID, Title: title}
	if err := s.ChatRepo.CreateSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *ChatService) ListSessions(userID uint) ([]model.ChatSession, error) {
	return s.ChatRepo.ListSessionsByUser(userID)
}

func (s *ChatService) GetHistory(userID uint, sessionID string) ([]model.ChatMessage, error) {
	session, err := s.ChatRepo.FindSessionByID(sessionID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrSessionNotFound
		}
		return nil, err
	}
	if session.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	return s.ChatRepo.ListMessages(sessionID)
}
