package model

import (
	"time"
)

// QuizAttempt 用户对某个测验的一次作答。
// FinishedAt 只在提交时写入一次，之后记录不可再变更。
// swagger:model QuizAttempt
type QuizAttempt struct {
	BaseModel
	UserID     uint            `gorm:"index;not null" json:"userId"`
	QuizID     uint            `gorm:"index;not null" json:"quizId"`
	Answers    map[uint]string `gorm:"serializer:json;type:json" json:"answers"`
	Score      int             `gorm:"default:0" json:"score"`
	Total      int             `gorm:"default:0" json:"total"`
	Percentage int             `gorm:"default:0" json:"percentage"`
	StartedAt  time.Time       `json:"startedAt"`
	FinishedAt *time.Time      `gorm:"index" json:"finishedAt,omitempty"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

// Finished 是否已提交定稿
func (a *QuizAttempt) Finished() bool {
	return a.FinishedAt != nil
}
