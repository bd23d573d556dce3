package repository

import (
	"skillpath_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AchievementRepository struct {
	DB *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{DB: db}
}

func (r *AchievementRepository) ListAll() ([]model.Achievement, error) {
	var achievements []model.Achievement
	err := r.DB.Order("id ASC").Find(&achievements).Error
	return achievements, err
}

func (r *AchievementRepository) FindByCode(code string) (*model.Achievement, error) {
	var a model.Achievement
	if err := r.DB.Where("code = ?", code).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AchievementRepository) ListByUser(userID uint) ([]model.UserAchievement, error) {
	var awards []model.UserAchievement
	err := r.DB.Where("user_id = ?", userID).
		Preload("Achievement").
		Order("awarded_at DESC").
		Find(&awards).Error
	return awards, err
}

// Award 幂等授予：重复授予同一成就时静默跳过
func (r *AchievementRepository) Award(userID, achievementID uint) error {
	award := &model.UserAchievement{
		UserID:        userID,
		AchievementID: achievementID,
		AwardedAt:     time.Now(),
	}
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(award).Error
}
