package repository

import (
	"skillpath_backend/internal/model"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) Create(attempt *model.QuizAttempt) error {
	return r.DB.Create(attempt).Error
}

func (r *AttemptRepository) Update(attempt *model.QuizAttempt) error {
	return r.DB.Save(attempt).Error
}

func (r *AttemptRepository) FindByID(id uint) (*model.QuizAttempt, error) {
	var a model.QuizAttempt
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// FindUnfinished 查找用户在某测验上尚未提交的作答，用于续答
func (r *AttemptRepository) FindUnfinished(userID, quizID uint) (*model.QuizAttempt, error) {
	var a model.QuizAttempt
	err := r.DB.Where("user_id = ? AND quiz_id = ? AND finished_at IS NULL", userID, quizID).
		Order("started_at DESC").
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AttemptRepository) ListByUser(userID uint, limit int) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.DB.Where("user_id = ?", userID).
		Order("started_at DESC").
		Limit(limit).
		Find(&attempts).Error
	return attempts, err
}

// ListRecentFinished 排行榜聚合窗口：最近N条已提交的作答，
// 按提交时间升序返回，保证同均分时先到先排的并列规则可复现
func (r *AttemptRepository) ListRecentFinished(limit int) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	sub := r.DB.Model(&model.QuizAttempt{}).
		Where("finished_at IS NOT NULL").
		Order("finished_at DESC").
		Limit(limit)
	err := r.DB.Table("(?) AS recent", sub).
		Order("recent.finished_at ASC, recent.id ASC").
		Find(&attempts).Error
	return attempts, err
}
