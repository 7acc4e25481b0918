// Package services implements the issue lifecycle and the account,
// tender and community operations on top of a repository.Store.
package services

import (
	"janconnect-be/repository"

	"github.com/redis/go-redis/v9"
)

// Services bundles every service the HTTP layer calls.
type Services struct {
	Issues      *IssueService
	Tenders     *TenderService
	Auth        *AuthService
	Profiles    *ProfileService
	Leaderboard *LeaderboardService
	Dashboard   *DashboardService
	Community   *CommunityService
	Officials   *OfficialService
}

func New(store *repository.Store, rdb *redis.Client, jwtSecret string) *Services {
	community := NewCommunityService(store)
	return &Services{
		Issues:      NewIssueService(store, community),
		Tenders:     NewTenderService(store),
		Auth:        NewAuthService(store, NewTokenStore(rdb), jwtSecret),
		Profiles:    NewProfileService(store),
		Leaderboard: NewLeaderboardService(store),
		Dashboard:   NewDashboardService(store),
		Community:   community,
		Officials:   NewOfficialService(store),
	}
}
