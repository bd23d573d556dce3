package service

import (
	"context"
	"skillpath_backend/internal/model"
	"skillpath_backend/internal/repository"
)

type SavedRoadmapService struct {
	SavedRepo *repository.SavedRoadmapRepository
	Catalog   *CatalogService
}

func NewSavedRoadmapService(savedRepo *repository.SavedRoadmapRepository, catalog *CatalogService) *SavedRoadmapService {
	return &SavedRoadmapService{
		SavedRepo: savedRepo,
		Catalog:   catalog,
	}
}

// Save 收藏路线，收藏前确认路线存在
func (s *SavedRoadmapService) Save(ctx context.Context, userID, roadmapID uint) error {
	if _, err := s.Catalog.GetRoadmap(ctx, roadmapID); err != nil {
		return err
	}
	return s.SavedRepo.Save(userID, roadmapID)
}

func (s *SavedRoadmapService) Unsave(userID, roadmapID uint) error {
	return s.SavedRepo.Unsave(userID, roadmapID)
}

func (s *SavedRoadmapService) List(userID uint) ([]model.SavedRoadmap, error) {
	return s.SavedRepo.ListByUser(userID)
}

func (s *SavedRoadmapService) IsSaved(userID, roadmapID uint) (bool, error) {
	return s.SavedRepo.Exists(userID, roadmapID)
}
