package repository

import (
	"skillpath_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) FindByUserAndRoadmap(userID, roadmapID uint) (*model.UserProgress, error) {
	var progress model.UserProgress
	err := r.DB.Where("user_id = ? AND roadmap_id = ?", userID, roadmapID).
		First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// Upsert 依赖 (user_id, roadmap_id) 唯一索引，冲突时覆盖进度字段
func (r *ProgressRepository) Upsert(progress *model.UserProgress) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "roadmap_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"completed_ids", "percentage", "last_accessed", "updated_at",
		}),
	}).Create(progress).Error
}

func (r *ProgressRepository) ListByUser(userID uint) ([]model.UserProgress, error) {
	var progresses []model.UserProgress
	err := r.DB.Where("user_id = ?", userID).
		Order("last_accessed DESC").
		Find(&progresses).Error
	return progresses, err
}
