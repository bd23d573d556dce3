package service

import (
	"context"
	"math"
	"skillpath_backend/internal/model"
	"skillpath_backend/internal/repository"
	"skillpath_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

type ProgressService struct {
	ProgressRepo       *repository.ProgressRepository
	ResourceRepo       *repository.ResourceRepository
	Catalog            *CatalogService
	AchievementService *AchievementService
}

func NewProgressService(
	progressRepo *repository.ProgressRepository,
	resourceRepo *repository.ResourceRepository,
	catalog *CatalogService,
	achievementService *AchievementService,
) *ProgressService {
	return &ProgressService{
		ProgressRepo:       progressRepo,
		ResourceRepo:       resourceRepo,
		Catalog:            catalog,
		AchievementService: achievementService,
	}
}

// progressPercentage 完成百分比。total为0时恒为0，完成数超过total时封顶100
func progressPercentage(completedCount, total int) int {
	if total <= 0 {
		return 0
	}
	if completedCount > total {
		completedCount = total
	}
	return int(math.Round(100 * float64(completedCount) / float64(total)))
}

// applyCompletion 把新完成的资源并入完成集合并重算百分比。
// 重复完成同一资源是幂等的空操作。
func applyCompletion(completed []uint, resourceID uint, total int) ([]uint, int) {
	for _, id := range completed {
		if id == resourceID {
			return completed, progressPercentage(len(completed), total)
		}
	}
	next := make([]uint, 0, len(completed)+1)
	next = append(next, completed...)
	next = append(next, resourceID)
	return next, progressPercentage(len(next), total)
}

// roadmapHasResource 判断路线的任一章节中是否含有该资源
func roadmapHasResource(roadmap *model.Roadmap, resourceID uint) bool {
	for _, section := range roadmap.Sections {
		for _, resource := range section.Resources {
			if resource.ID == resourceID {
				return true
			}
		}
	}
	return false
}

// resourceInRoadmap 校验资源属于该路线。先按路线过滤查本地库，
// 未命中时回退目录（API/示例数据），保证回退目录里的路线同样可以记进度。
// 其他路线的资源ID在两条路径上都会被拒绝
func (s *ProgressService) resourceInRoadmap(ctx context.Context, roadmapID, resourceID uint) error {
	ok, err := s.ResourceRepo.ExistsInRoadmap(roadmapID, resourceID)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	roadmap, err := s.Catalog.GetRoadmap(ctx, roadmapID)
	if err != nil {
		return err
	}
	if !roadmapHasResource(roadmap, resourceID) {
		return util.ErrResourceNotFound
	}
	return nil
}

// CompleteResource 记录一次资源完成并upsert该用户在路线上的进度。
// 持久化失败由调用方提示，不回退已有进度。
func (s *ProgressService) CompleteResource(ctx context.Context, userID, roadmapID, resourceID uint) (*model.UserProgress, error) {
	if err := s.resourceInRoadmap(ctx, roadmapID, resourceID); err != nil {
		return nil, err
	}

	total, err := s.Catalog.TotalResources(ctx, roadmapID)
	if err != nil {
		return nil, err
	}

	progress, err := s.ProgressRepo.FindByUserAndRoadmap(userID, roadmapID)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		// 首次资源交互时创建记录
		progress = &model.UserProgress{
			UserID:    userID,
			RoadmapID: roadmapID,
		}
	}

	progress.CompletedIDs, progress.Percentage = applyCompletion(progress.CompletedIDs, resourceID, total)
	progress.LastAccessed = time.Now()

	if err := s.ProgressRepo.Upsert(progress); err != nil {
		return nil, err
	}

	if progress.Percentage >= 100 && s.AchievementService != nil {
		s.AchievementService.AwardByCode(userID, "roadmap_complete")
	}

	return progress, nil
}

// GetRoadmapProgress 查询用户在某路线上的进度，无记录时返回零值进度
func (s *ProgressService) GetRoadmapProgress(userID, roadmapID uint) (*model.UserProgress, error) {
	progress, err := s.ProgressRepo.FindByUserAndRoadmap(userID, roadmapID)
	if err == gorm.ErrRecordNotFound {
		return &model.UserProgress{
			UserID:       userID,
			RoadmapID:    roadmapID,
			CompletedIDs: []uint{},
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return progress, nil
}

func (s *ProgressService) ListUserProgress(userID uint) ([]model.UserProgress, error) {
	return s.ProgressRepo.ListByUser(userID)
}
