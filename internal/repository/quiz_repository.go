package repository

import (
	"skillpath_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) ListPublished() ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Where("published = ?", true).Order("id ASC").Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) ListByRoadmap(roadmapID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Where("published = ? AND roadmap_id = ?", true, roadmapID).
		Order("id ASC").Find(&quizzes).Error
	return quizzes, err
}

// FindByID 返回测验及其有序题目和选项
func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.position ASC")
		}).
		Preload("Questions.Choices", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_choices.position ASC")
		}).
		First(&quiz, id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) Create(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

func (r *QuizRepository) Update(quiz *model.Quiz) error {
	return r.DB.Save(quiz).Error
}

func (r *QuizRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Quiz{}, id).Error
}

func (r *QuizRepository) CreateQuestion(question *model.Question) error {
	return r.DB.Create(question).Error
}

func (r *QuizRepository) DeleteQuestion(id uint) error {
	return r.DB.Delete(&model.Question{}, id).Error
}
