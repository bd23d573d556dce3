package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"skillpath_backend/internal/repository"
	"skillpath_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	// leaderboardWindow 参与聚合的最近已提交作答条数上限
	leaderboardWindow = 500
	// leaderboardDefaultLimit 默认返回的榜单长度
	leaderboardDefaultLimit = 100

	leaderboardCacheKey = "leaderboard:top"
	leaderboardCacheTTL = time.Minute
)

type LeaderboardService struct {
	AttemptRepo *repository.AttemptRepository
	UserRepo    *repository.UserRepository
	Redis       *redis.Client
}

func NewLeaderboardService(
	attemptRepo *repository.AttemptRepository,
	userRepo *repository.UserRepository,
	rdb *redis.Client,
) *LeaderboardService {
	return &LeaderboardService{
		AttemptRepo: attemptRepo,
		UserRepo:    userRepo,
		Redis:       rdb,
	}
}

// AttemptRecord 聚合输入：一条已提交作答的摘要
type AttemptRecord struct {
	ID         uint
	UserID     uint
	Percentage int
	FinishedAt time.Time
}

// ProfileInfo 榜单展示所需的用户资料
type ProfileInfo struct {
	Username    string
	DisplayName string
	Avatar      string
}

const anonymousName = "Anonymous"

// displayName 展示名兜底链：显示名→用户名→Anonymous
func displayName(profile ProfileInfo) string {
	if profile.DisplayName != "" {
		return profile.DisplayName
	}
	if profile.Username != "" {
		return profile.Username
	}
	return anonymousName
}

// RankedEntry 榜单条目
type RankedEntry struct {
	Rank         int     `json:"rank"`
	UserID       uint    `json:"userId"`
	Username     string  `json:"username"`
	DisplayName  string  `json:"displayName"`
	Avatar       string  `json:"avatar,omitempty"`
	AttemptCount int     `json:"attemptCount"`
	AvgScore     float64 `json:"avgScore"`
	BestScore    int     `json:"bestScore"`
}

// buildLeaderboard 按用户聚合作答并排名。
// 排序规则：平均分降序；同均分时组内最早提交时间在前，再按用户ID升序，
// 保证同一输入永远产出同一榜单。
// 缺失资料的用户以 Anonymous 兜底而不是被剔除；空输入产出空榜单。
func buildLeaderboard(attempts []AttemptRecord, profiles map[uint]ProfileInfo, limit int) []RankedEntry {
	type group struct {
		userID     uint
		count      int
		totalScore int
		bestScore  int
		earliest   time.Time
	}

	groups := make(map[uint]*group)
	order := make([]uint, 0)
	for _, a := range attempts {
		g, ok := groups[a.UserID]
		if !ok {
			g = &group{userID: a.UserID, earliest: a.FinishedAt}
			groups[a.UserID] = g
			order = append(order, a.UserID)
		}
		g.count++
		g.totalScore += a.Percentage
		if a.Percentage > g.bestScore {
			g.bestScore = a.Percentage
		}
		if a.FinishedAt.Before(g.earliest) {
			g.earliest = a.FinishedAt
		}
	}

	entries := make([]RankedEntry, 0, len(groups))
	for _, userID := range order {
		g := groups[userID]
		// 缺失资料时取零值，兜底链统一落到Anonymous
		profile := profiles[userID]
		entries = append(entries, RankedEntry{
			UserID:       g.userID,
			Username:     profile.Username,
			DisplayName:  displayName(profile),
			Avatar:       profile.Avatar,
			AttemptCount: g.count,
			AvgScore:     float64(g.totalScore) / float64(g.count),
			BestScore:    g.bestScore,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].AvgScore != entries[j].AvgScore {
			return entries[i].AvgScore > entries[j].AvgScore
		}
		gi, gj := groups[entries[i].UserID], groups[entries[j].UserID]
		if !gi.earliest.Equal(gj.earliest) {
			return gi.earliest.Before(gj.earliest)
		}
		return entries[i].UserID < entries[j].UserID
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// GetLeaderboard 聚合最近作答窗口并返回top-N，短期缓存在Redis
func (s *LeaderboardService) GetLeaderboard(ctx context.Context, limit int) ([]RankedEntry, error) {
	if limit <= 0 || limit > leaderboardDefaultLimit {
		limit = leaderboardDefaultLimit
	}

	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, leaderboardCacheKey).Bytes(); err == nil {
			var entries []RankedEntry
			if json.Unmarshal(cached, &entries) == nil {
				if len(entries) > limit {
					entries = entries[:limit]
				}
				return entries, nil
			}
		}
	}

	attempts, err := s.AttemptRepo.ListRecentFinished(leaderboardWindow)
	if err != nil {
		return nil, err
	}

	records := make([]AttemptRecord, 0, len(attempts))
	userIDSet := make(map[uint]bool)
	userIDs := make([]uint, 0)
	for _, a := range attempts {
		if a.FinishedAt == nil {
			continue
		}
		records = append(records, AttemptRecord{
			ID:         a.ID,
			UserID:     a.UserID,
			Percentage: a.Percentage,
			FinishedAt: *a.FinishedAt,
		})
		if !userIDSet[a.UserID] {
			userIDSet[a.UserID] = true
			userIDs = append(userIDs, a.UserID)
		}
	}

	users, err := s.UserRepo.FindByIDs(userIDs)
	if err != nil {
		return nil, err
	}
	profiles := make(map[uint]ProfileInfo, len(users))
	for _, u := range users {
		profiles[u.ID] = ProfileInfo{
			Username:    u.Username,
			DisplayName: u.DisplayName,
			Avatar:      u.Avatar,
		}
	}

	entries := buildLeaderboard(records, profiles, leaderboardDefaultLimit)

	if s.Redis != nil {
		if data, err := json.Marshal(entries); err == nil {
			if err := s.Redis.Set(ctx, leaderboardCacheKey, data, leaderboardCacheTTL).Err(); err != nil {
				logger.Log.Warn("leaderboard cache write failed", zap.Error(err))
			}
		}
	}

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
