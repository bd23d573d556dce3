package repository

import (
	"skillpath_backend/internal/model"

	"gorm.io/gorm"
)

type ChatRepository struct {
	DB *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{DB: db}
}

func (r *ChatRepository) CreateSession(session *model.ChatSession) error {
	return r.DB.Create(session).Error
}

func (r *ChatRepository) FindSessionByID(id string) (*model.ChatSession, error) {
	var session model.ChatSession
	if err := r.DB.Where("id = ?", id).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *ChatRepository) ListSessionsByUser(userID uint) ([]model.ChatSession, error) {
	var sessions []model.ChatSession
	err := r.DB.Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&sessions).Error
	return sessions, err
}

func (r *ChatRepository) CreateMessage(message *model.ChatMessage) error {
	return r.DB.Create(message).Error
}

func (r *ChatRepository) ListMessages(sessionID string) ([]model.ChatMessage, error) {
	var messages []model.ChatMessage
	err := r.DB.Where("session_id = ?", sessionID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	return messages, err
}
