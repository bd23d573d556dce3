package repository

import (
	"skillpath_backend/internal/model"

	"gorm.io/gorm"
)

type RoadmapRepository struct {
	DB *gorm.DB
}

func NewRoadmapRepository(db *gorm.DB) *RoadmapRepository {
	return &RoadmapRepository{DB: db}
}

func (r *RoadmapRepository) ListPublished() ([]model.Roadmap, error) {
	var roadmaps []model.Roadmap
	err := r.DB.Where("published = ?", true).
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("sections.position ASC")
		}).
		Order("roadmaps.id ASC").
		Find(&roadmaps).Error
	return roadmaps, err
}

// FindByID 返回路线及其有序的章节与资源
func (r *RoadmapRepository) FindByID(id uint) (*model.Roadmap, error) {
	var roadmap model.Roadmap
	err := r.DB.
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("sections.position ASC")
		}).
		Preload("Sections.Resources", func(db *gorm.DB) *gorm.DB {
			return db.Order("resources.position ASC")
		}).
		First(&roadmap, id).Error
	if err != nil {
		return nil, err
	}
	return &roadmap, nil
}

// CountResources 路线下的资源总数（跨全部章节）
func (r *RoadmapRepository) CountResources(roadmapID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Resource{}).
		Joins("JOIN sections ON sections.id = resources.section_id").
		Where("sections.roadmap_id = ?", roadmapID).
		Count(&count).Error
	return count, err
}

func (r *RoadmapRepository) Create(roadmap *model.Roadmap) error {
	return r.DB.Create(roadmap).Error
}

func (r *RoadmapRepository) Update(roadmap *model.Roadmap) error {
	return r.DB.Save(roadmap).Error
}

func (r *RoadmapRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Roadmap{}, id).Error
}

func (r *RoadmapRepository) CreateSection(section *model.Section) error {
	return r.DB.Create(section).Error
}

func (r *RoadmapRepository) FindSectionByID(id uint) (*model.Section, error) {
	var section model.Section
	err := r.DB.
		Preload("Resources", func(db *gorm.DB) *gorm.DB {
			return db.Order("resources.position ASC")
		}).
		First(&section, id).Error
	if err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *RoadmapRepository) UpdateSection(section *model.Section) error {
	return r.DB.Save(section).Error
}

func (r *RoadmapRepository) DeleteSection(id uint) error {
	return r.DB.Delete(&model.Section{}, id).Error
}
