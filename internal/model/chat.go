package model

// ChatSession AI助教会话
// swagger:model ChatSession
type ChatSession struct {
	UUIDBase
	UserID uint   `gorm:"index;not null" json:"userId"`
	Title  string `gorm:"size:255" json:"title"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}

// ChatMessage 会话中的一条消息，Role 为 user 或 assistant
// swagger:model ChatMessage
type ChatMessage struct {
	BaseModel
	SessionID string `gorm:"index;type:varchar(36);not null" json:"sessionId"`
	Role      string `gorm:"size:20;not null" json:"role"`
	Content   string `gorm:"type:text;not null" json:"content"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
