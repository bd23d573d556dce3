package repository

import (
	"skillpath_backend/internal/model"

	"gorm.io/gorm"
)

type ResourceRepository struct {
	DB *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{DB: db}
}

func (r *ResourceRepository) Create(resource *model.Resource) error {
	return r.DB.Create(resource).Error
}

func (r *ResourceRepository) FindByID(id uint) (*model.Resource, error) {
	var resource model.Resource
	if err := r.DB.First(&resource, id).Error; err != nil {
		return nil, err
	}
	return &resource, nil
}

// ExistsInRoadmap 判断资源是否属于指定路线（经由章节归属）
func (r *ResourceRepository) ExistsInRoadmap(roadmapID, resourceID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Resource{}).
		Joins("JOIN sections ON sections.id = resources.section_id").
		Where("sections.roadmap_id = ? AND resources.id = ?", roadmapID, resourceID).
		Count(&count).Error
	return count > 0, err
}

func (r *ResourceRepository) FindBySectionID(sectionID uint) ([]model.Resource, error) {
	var resources []model.Resource
	err := r.DB.Where("section_id = ?", sectionID).
		Order("position ASC").
		Find(&resources).Error
	return resources, err
}

func (r *ResourceRepository) Update(resource *model.Resource) error {
	return r.DB.Save(resource).Error
}

func (r *ResourceRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Resource{}, id).Error
}
