package model

import (
	"time"
)

type ProjectStatus string

const (
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectSubmitted  ProjectStatus = "submitted"
	ProjectCompleted  ProjectStatus = "completed"
)

// Project 实战项目，可选关联到某条路线
// swagger:model Project
type Project struct {
	BaseModel
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Difficulty  Difficulty `gorm:"type:enum('beginner','intermediate','advanced');default:'beginner'" json:"difficulty"`
	RoadmapID   *uint      `gorm:"index" json:"roadmapId,omitempty"`
}

func (Project) TableName() string {
	return "projects"
}

// ProjectInstance 用户启动的项目实例
// swagger:model ProjectInstance
type ProjectInstance struct {
	BaseModel
	ProjectID   uint          `gorm:"index;not null" json:"projectId"`
	UserID      uint          `gorm:"index;not null" json:"userId"`
	Status      ProjectStatus `gorm:"type:enum('in_progress','submitted','completed');default:'in_progress'" json:"status"`
	RepoURL     string        `gorm:"size:255" json:"repoUrl"`
	StartedAt   time.Time     `json:"startedAt"`
	CompletedAt *time.Time    `json:"completedAt,omitempty"`
	Project     Project       `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}

func (ProjectInstance) TableName() string {
	return "project_instances"
}
