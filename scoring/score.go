// Package scoring derives points, levels, badges, leaderboards and dashboard
// figures from rows that have already been fetched. Nothing here touches
// storage.
package scoring

import (
	"janconnect-be/models"
)

// PointsForPriority is the one-time award for reporting an issue.
func PointsForPriority(p models.IssuePriority) int64 {
	switch p {
	case models.Urgent:
		return 20
	case models.High:
		return 15
	case models.Medium:
		return 10
	}
	return 5
}

// Activity counts what a profile did inside a leaderboard period.
type Activity struct {
	Issues             int64 `json:"issues"`
	Posts              int64 `json:"posts"`
	ResolvedIssues     int64 `json:"resolved_issues"`
	HighPriorityIssues int64 `json:"high_priority_issues"`
	UpvotesReceived    int64 `json:"upvotes_received"`
}

// Activity weights
const (
	IssueWeight        = 10
	PostWeight         = 5
	ResolvedWeight     = 25
	HighPriorityWeight = 15
	UpvoteWeight       = 2
)

// Score is the stored points plus weighted activity. It never decreases when
// any activity count grows.
func Score(points int64, a Activity) int64 {
	return points +
		a.Issues*IssueWeight +
		a.Posts*PostWeight +
		a.ResolvedIssues*ResolvedWeight +
		a.HighPriorityIssues*HighPriorityWeight +
		a.UpvotesReceived*UpvoteWeight
}

type Level string

const (
	Beginner     Level = "Beginner"
	Intermediate Level = "Intermediate"
	Advanced     Level = "Advanced"
	Expert       Level = "Expert"
	Champion     Level = "Champion"
)

var levelThresholds = []struct {
	min   int64
	level Level
}{
	{2000, Champion},
	{1000, Expert},
	{500, Advanced},
	{100, Intermediate},
}

func LevelFor(score int64) Level {
	for _, t := range levelThresholds {
		if score >= t.min {
			return t.level
		}
	}
	return Beginner
}

// MaxDisplayedBadges is how many badges a leaderboard row shows.
const MaxDisplayedBadges = 3

// badgeRules are evaluated in order; the order decides which badges survive
// DisplayBadges.
var badgeRules = []struct {
	name   string
	earned func(a Activity, score int64) bool
}{
	{"Issue Hunter", func(a Activity, _ int64) bool { return a.Issues >= 50 }},
	{"Problem Solver", func(a Activity, _ int64) bool { return a.ResolvedIssues >= 20 }},
	{"Community Voice", func(a Activity, _ int64) bool { return a.Posts >= 30 }},
	{"Civic Leader", func(_ Activity, score int64) bool { return score >= 1000 }},
	{"Crowd Favorite", func(a Activity, _ int64) bool { return a.UpvotesReceived >= 100 }},
	{"First Responder", func(a Activity, _ int64) bool { return a.HighPriorityIssues >= 10 }},
}

// BadgesFor returns every badge earned, in evaluation order.
func BadgesFor(a Activity, score int64) []string {
	badges := []string{}
	for _, rule := range badgeRules {
		if rule.earned(a, score) {
			badges = append(badges, rule.name)
		}
	}
	return badges
}

func DisplayBadges(badges []string) []string {
	if len(badges) > MaxDisplayedBadges {
		return badges[:MaxDisplayedBadges]
	}
	return badges
}
