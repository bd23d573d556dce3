package model

import (
	"time"
)

// Achievement 系统预置的成就徽章
// swagger:model Achievement
type Achievement struct {
	BaseModel
	Code        string `gorm:"size:50;unique;not null" json:"code"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Icon        string `gorm:"size:255" json:"icon"`
}

func (Achievement) TableName() string {
	return "achievements"
}

// UserAchievement 用户已获得的成就，(user, achievement) 唯一
// swagger:model UserAchievement
type UserAchievement struct {
	BaseModel
	UserID        uint        `gorm:"index:idx_user_achievement,unique;not null" json:"userId"`
	AchievementID uint        `gorm:"index:idx_user_achievement,unique;not null" json:"achievementId"`
	AwardedAt     time.Time   `json:"awardedAt"`
	Achievement   Achievement `gorm:"foreignKey:AchievementID" json:"achievement,omitempty"`
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}
