package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildLeaderboardOrdersByAvgScore(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	attempts := []AttemptRecord{
		{ID: 1, UserID: 2, Percentage: 70, FinishedAt: base},
		{ID: 2, UserID: 1, Percentage: 80, FinishedAt: base.Add(time.Hour)},
		{ID: 3, UserID: 1, Percentage: 90, FinishedAt: base.Add(2 * time.Hour)},
	}
	profiles := map[uint]ProfileInfo{
		1: {Username: "alice", DisplayName: "Alice"},
		2: {Username: "bob", DisplayName: "Bob"},
	}

	entries := buildLeaderboard(attempts, profiles, 10)
	assert.Len(t, entries, 2)

	// 两次85分均分排在一次70分之前
	assert.Equal(t, uint(1), entries[0].UserID)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 2, entries[0].AttemptCount)
	assert.InDelta(t, 85.0, entries[0].AvgScore, 0.001)
	assert.Equal(t, 90, entries[0].BestScore)

	assert.Equal(t, uint(2), entries[1].UserID)
	assert.Equal(t, 2, entries[1].Rank)
	assert.InDelta(t, 70.0, entries[1].AvgScore, 0.001)
}

func TestBuildLeaderboardTieBreaksByEarliestFinish(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	attempts := []AttemptRecord{
		{ID: 1, UserID: 5, Percentage: 80, FinishedAt: base.Add(time.Hour)},
		{ID: 2, UserID: 3, Percentage: 80, FinishedAt: base},
	}

	entries := buildLeaderboard(attempts, map[uint]ProfileInfo{}, 10)
	assert.Len(t, entries, 2)
	// 同均分时最早完成者在前
	assert.Equal(t, uint(3), entries[0].UserID)
	assert.Equal(t, uint(5), entries[1].UserID)
}

func TestBuildLeaderboardTieBreaksByUserID(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	attempts := []AttemptRecord{
		{ID: 1, UserID: 9, Percentage: 80, FinishedAt: at},
		{ID: 2, UserID: 4, Percentage: 80, FinishedAt: at},
	}

	entries := buildLeaderboard(attempts, map[uint]ProfileInfo{}, 10)
	assert.Equal(t, uint(4), entries[0].UserID)
	assert.Equal(t, uint(9), entries[1].UserID)
}

func TestBuildLeaderboardDeterministic(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	attempts := []AttemptRecord{
		{ID: 1, UserID: 1, Percentage: 60, FinishedAt: base},
		{ID: 2, UserID: 2, Percentage: 60, FinishedAt: base},
		{ID: 3, UserID: 3, Percentage: 60, FinishedAt: base},
	}

	first := buildLeaderboard(attempts, map[uint]ProfileInfo{}, 10)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, buildLeaderboard(attempts, map[uint]ProfileInfo{}, 10))
	}
}

func TestBuildLeaderboardMissingProfileKeepsEntry(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	attempts := []AttemptRecord{
		{ID: 1, UserID: 7, Percentage: 95, FinishedAt: at},
	}

	entries := buildLeaderboard(attempts, map[uint]ProfileInfo{}, 10)
	assert.Len(t, entries, 1)
	assert.Equal(t, "Anonymous", entries[0].DisplayName)
}

func TestBuildLeaderboardFallsBackToUsername(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	attempts := []AttemptRecord{
		{ID: 1, UserID: 7, Percentage: 95, FinishedAt: at},
	}
	profiles := map[uint]ProfileInfo{7: {Username: "carol"}}

	entries := buildLeaderboard(attempts, profiles, 10)
	assert.Equal(t, "carol", entries[0].DisplayName)
}

func TestBuildLeaderboardEmptyInput(t *testing.T) {
	entries := buildLeaderboard(nil, nil, 10)
	assert.Empty(t, entries)
}

func TestBuildLeaderboardTruncatesToLimit(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	attempts := make([]AttemptRecord, 0, 5)
	for i := uint(1); i <= 5; i++ {
		attempts = append(attempts, AttemptRecord{
			ID: i, UserID: i, Percentage: int(i * 10), FinishedAt: at,
		})
	}

	entries := buildLeaderboard(attempts, map[uint]ProfileInfo{}, 3)
	assert.Len(t, entries, 3)
	// 截断后名次仍然连续
	assert.Equal(t, []int{1, 2, 3}, []int{entries[0].Rank, entries[1].Rank, entries[2].Rank})
	assert.Equal(t, uint(5), entries[0].UserID)
}

func TestDisplayNameFallbackChain(t *testing.T) {
	assert.Equal(t, "Go大师", displayName(ProfileInfo{DisplayName: "Go大师", Username: "gopher"}))
	assert.Equal(t, "gopher", displayName(ProfileInfo{Username: "gopher"}))
	assert.Equal(t, "Anonymous", displayName(ProfileInfo{}))
}
