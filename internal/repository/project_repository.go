package repository

import (
	"skillpath_backend/internal/model"

	"gorm.io/gorm"
)

type ProjectRepository struct {
	DB *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{DB: db}
}

func (r *ProjectRepository) ListProjects() ([]model.Project, error) {
	var projects []model.Project
	err := r.DB.Order("id ASC").Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) FindProjectByID(id uint) (*model.Project, error) {
	var p model.Project
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) CreateProject(project *model.Project) error {
	return r.DB.Create(project).Error
}

func (r *ProjectRepository) CreateInstance(instance *model.ProjectInstance) error {
	return r.DB.Create(instance).Error
}

func (r *ProjectRepository) FindInstanceByID(id uint) (*model.ProjectInstance, error) {
	var instance model.ProjectInstance
	if err := r.DB.Preload("Project").First(&instance, id).Error; err != nil {
		return nil, err
	}
	return &instance, nil
}

func (r *ProjectRepository) ListInstancesByUser(userID uint) ([]model.ProjectInstance, error) {
	var instances []model.ProjectInstance
	err := r.DB.Where("user_id = ?", userID).
		Preload("Project").
		Order("started_at DESC").
		Find(&instances).Error
	return instances, err
}

func (r *ProjectRepository) UpdateInstance(instance *model.ProjectInstance) error {
	return r.DB.Save(instance).Error
}
