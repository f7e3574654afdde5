package services

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/antonyth18/enigma-webgame/database"
	"github.com/antonyth18/enigma-webgame/models"
	"gorm.io/gorm"
)

const (
	leaderboardCacheKey = "leaderboard:all"
	leaderboardCacheTTL = 15 * time.Second
)

type LeaderboardEntry struct {
	ID       uint32 `json:"id"`
	Rank     int    `json:"rank"`
	TeamName string `json:"teamName"`
	Score    int    `json:"score"`
}

// RankTeams orders teams by score descending with earlier registration
// winning ties, then assigns standard competition ranks: tied scores share
// a rank and the next distinct score resumes at its 1-based position, so
// scores 500,500,300 rank 1,1,3.
func RankTeams(teams []models.Team) []LeaderboardEntry {
	sorted := make([]models.Team, len(teams))
	copy(sorted, teams)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	entries := make([]LeaderboardEntry, 0, len(sorted))
	rank := 1
	for i, team := range sorted {
		if i > 0 && team.Score < sorted[i-1].Score {
			rank = i + 1
		}
		entries = append(entries, LeaderboardEntry{
			ID:       team.ID,
			Rank:     rank,
			TeamName: team.Name,
			Score:    team.Score,
		})
	}
	return entries
}

// GetLeaderboard serves the ranked standings, from Redis when a fresh
// cache entry exists, otherwise from the store.
func GetLeaderboard(db *gorm.DB) ([]LeaderboardEntry, error) {
	if database.RDB != nil {
		val, err := database.RDB.Get(database.Ctx, leaderboardCacheKey).Result()
		if err == nil {
			var cached []LeaderboardEntry
			if json.Unmarshal([]byte(val), &cached) == nil {
				return cached, nil
			}
		}
	}

	var teams []models.Team
	if err := db.Find(&teams).Error; err != nil {
		return nil, err
	}
	entries := RankTeams(teams)

	if database.RDB != nil {
		if data, err := json.Marshal(entries); err == nil {
			database.RDB.Set(database.Ctx, leaderboardCacheKey, data, leaderboardCacheTTL)
		}
	}
	return entries, nil
}

// InvalidateLeaderboardCache drops the cached standings after a score
// change so the next read reflects it.
func InvalidateLeaderboardCache() {
	if database.RDB != nil {
		database.RDB.Del(database.Ctx, leaderboardCacheKey)
	}
}
