package service

import (
	"context"
	"skillpath_backend/internal/model"
	"skillpath_backend/internal/repository"
	"skillpath_backend/internal/util"
	"skillpath_backend/pkg/monitoring"

	"gorm.io/gorm"
)

// CatalogSource 目录数据的来源。网络不可用时回退到内置示例数据是
// 刻意保留的产品决策（演示连续性），不会把读失败暴露给学员。
type CatalogSource string

const (
	SourceLocal  CatalogSource = "local"
	SourceAPI    CatalogSource = "api"
	SourceCache  CatalogSource = "cache"
	SourceSample CatalogSource = "sample"
)

type RoadmapCatalog struct {
	Source   CatalogSource   `json:"source"`
	Roadmaps []model.Roadmap `json:"roadmaps"`
}

type QuizCatalog struct {
	Source  CatalogSource `json:"source"`
	Quizzes []model.Quiz  `json:"quizzes"`
}

// CatalogService 路线目录读取：本地库 → 第三方API → 内置示例数据
type CatalogService struct {
	RoadmapRepo *repository.RoadmapRepository
	API         *RoadmapAPIClient
}

func NewCatalogService(roadmapRepo *repository.RoadmapRepository, api *RoadmapAPIClient) *CatalogService {
	return &CatalogService{
		RoadmapRepo: roadmapRepo,
		API:         api,
	}
}

func (s *CatalogService) ListRoadmaps(ctx context.Context) (*RoadmapCatalog, error) {
	roadmaps, err := s.RoadmapRepo.ListPublished()
	if err == nil && len(roadmaps) > 0 {
		return &RoadmapCatalog{Source: SourceLocal, Roadmaps: roadmaps}, nil
	}

	if s.API != nil {
		apiRoadmaps, cached, apiErr := s.API.FetchRoadmaps(ctx)
		if apiErr == nil {
			source := SourceAPI
			if cached {
				source = SourceCache
			}
			return &RoadmapCatalog{Source: source, Roadmaps: apiRoadmaps}, nil
		}
	}

	monitoring.ExternalAPIFallbacks.Inc()
	return &RoadmapCatalog{Source: SourceSample, Roadmaps: SampleRoadmaps()}, nil
}

// GetRoadmap 取单条路线（含章节与资源）。本地未命中时走API，再查示例数据
func (s *CatalogService) GetRoadmap(ctx context.Context, id uint) (*model.Roadmap, error) {
	roadmap, err := s.RoadmapRepo.FindByID(id)
	if err == nil {
		return roadmap, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	if s.API != nil {
		apiRoadmap, _, apiErr := s.API.FetchRoadmap(ctx, id)
		if apiErr == nil {
			return apiRoadmap, nil
		}
	}

	for _, sample := range SampleRoadmaps() {
		if sample.ID == id {
			monitoring.ExternalAPIFallbacks.Inc()
			return &sample, nil
		}
	}
	return nil, util.ErrRoadmapNotFound
}

// TotalResources 路线资源总数（进度分母）。非本地路线时数内存里的资源
func (s *CatalogService) TotalResources(ctx context.Context, roadmapID uint) (int, error) {
	if count, err := s.RoadmapRepo.CountResources(roadmapID); err == nil && count > 0 {
		return int(count), nil
	}

	roadmap, err := s.GetRoadmap(ctx, roadmapID)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, section := range roadmap.Sections {
		total += len(section.Resources)
	}
	return total, nil
}
