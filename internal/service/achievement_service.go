package service

import (
	"skillpath_backend/internal/model"
	"skillpath_backend/internal/repository"
	"skillpath_backend/pkg/logger"

	"go.uber.org/zap"
)

type AchievementService struct {
	AchievementRepo *repository.AchievementRepository
}

func NewAchievementService(achievementRepo *repository.AchievementRepository) *AchievementService {
	return &AchievementService{AchievementRepo: achievementRepo}
}

func (s *AchievementService) ListBadges() ([]model.Achievement, error) {
	return s.AchievementRepo.ListAll()
}

func (s *AchievementService) ListUserAchievements(userID uint) ([]model.UserAchievement, error) {
	return s.AchievementRepo.ListByUser(userID)
}

// AwardByCode 按成就代码授予，幂等。授予失败只记日志，
// 不影响触发它的主流程（交卷、进度更新）
func (s *AchievementService) AwardByCode(userID uint, code string) {
	achievement, err := s.AchievementRepo.FindByCode(code)
	if err != nil {
		logger.Log.Warn("unknown achievement code",
			zap.String("code", code), zap.Error(err))
		return
	}
	if err := s.AchievementRepo.Award(userID, achievement.ID); err != nil {
		logger.Log.Warn("achievement award failed",
			zap.Uint("userId", userID), zap.String("code", code), zap.Error(err))
	}
}
