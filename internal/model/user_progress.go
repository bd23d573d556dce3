package model

import (
	"time"
)

// UserProgress 用户在某条路线上的学习进度，(user, roadmap) 唯一
// swagger:model UserProgress
type UserProgress struct {
	BaseModel
	UserID       uint      `gorm:"index:idx_user_roadmap,unique;not null" json:"userId"`
	RoadmapID    uint      `gorm:"index:idx_user_roadmap,unique;not null" json:"roadmapId"`
	CompletedIDs []uint    `gorm:"serializer:json;type:json" json:"completedIds"`
	Percentage   int       `gorm:"default:0" json:"percentage"`
	LastAccessed time.Time `json:"lastAccessed"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
