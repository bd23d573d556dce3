package repository

import (
	"skillpath_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SavedRoadmapRepository struct {
	DB *gorm.DB
}

func NewSavedRoadmapRepository(db *gorm.DB) *SavedRoadmapRepository {
	return &SavedRoadmapRepository{DB: db}
}

// Save 幂等收藏：重复收藏静默跳过
func (r *SavedRoadmapRepository) Save(userID, roadmapID uint) error {
	saved := &model.SavedRoadmap{UserID: userID, RoadmapID: roadmapID}
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(saved).Error
}

func (r *SavedRoadmapRepository) Unsave(userID, roadmapID uint) error {
	return r.DB.Where("user_id = ? AND roadmap_id = ?", userID, roadmapID).
		Delete(&model.SavedRoadmap{}).Error
}

func (r *SavedRoadmapRepository) ListByUser(userID uint) ([]model.SavedRoadmap, error) {
	var saved []model.SavedRoadmap
	err := r.DB.Where("user_id = ?", userID).
		Preload("Roadmap").
		Order("created_at DESC").
		Find(&saved).Error
	return saved, err
}

func (r *SavedRoadmapRepository) Exists(userID, roadmapID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.SavedRoadmap{}).
		Where("user_id = ? AND roadmap_id = ?", userID, roadmapID).
		Count(&count).Error
	return count > 0, err
}
