package scoring

import (
	"fmt"
	"sort"
	"time"

	"janconnect-be/models"
)

// Period restricts which activity counts towards the leaderboard.
type Period string

const (
	Week    Period = "week"
	Month   Period = "month"
	Quarter Period = "quarter"
	Year    Period = "year"
	AllTime Period = "all"
)

// ParsePeriod accepts the period names above; empty means all time.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case Week, Month, Quarter, Year, AllTime:
		return p, nil
	case "":
		return AllTime, nil
	}
	return "", fmt.Errorf("unknown period %q", s)
}

// Since returns the start of the period ending at now, or nil for all time.
func (p Period) Since(now time.Time) *time.Time {
	var t time.Time
	switch p {
	case Week:
		t = now.AddDate(0, 0, -7)
	case Month:
		t = now.AddDate(0, -1, 0)
	case Quarter:
		t = now.AddDate(0, -3, 0)
	case Year:
		t = now.AddDate(-1, 0, 0)
	default:
		return nil
	}
	return &t
}

// CollectActivity tallies issues and posts per user id.
func CollectActivity(issues []models.Issue, posts []models.Post) map[string]Activity {
	out := make(map[string]Activity)
	for i := range issues {
		issue := &issues[i]
		a := out[issue.UserID]
		a.Issues++
		if issue.Status == models.Resolved {
			a.ResolvedIssues++
		}
		if issue.IsHighPriority() {
			a.HighPriorityIssues++
		}
		a.UpvotesReceived += issue.Upvotes
		out[issue.UserID] = a
	}
	for _, post := range posts {
		a := out[post.UserID]
		a.Posts++
		out[post.UserID] = a
	}
	return out
}

type Entry struct {
	Rank       int             `json:"rank"`
	UserID     string          `json:"user_id"`
	Name       string          `json:"name"`
	AvatarURL  string          `json:"avatar_url,omitempty"`
	UserType   models.UserType `json:"user_type"`
	Points     int64           `json:"points"`
	Activity   Activity        `json:"activity"`
	TotalScore int64           `json:"total_score"`
	Level      Level           `json:"level"`
	Badges     []string        `json:"badges"`
}

// BuildLeaderboard scores every profile and ranks by total score. The
// incoming profile order (stored points) only breaks ties.
func BuildLeaderboard(profiles []models.Profile, activity map[string]Activity) []Entry {
	entries := make([]Entry, 0, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		a := activity[p.ID]
		score := Score(p.Points, a)
		entries = append(entries, Entry{
			UserID:     p.ID,
			Name:       p.DisplayName(),
			AvatarURL:  p.AvatarURL,
			UserType:   p.UserType,
			Points:     p.Points,
			Activity:   a,
			TotalScore: score,
			Level:      LevelFor(score),
			Badges:     DisplayBadges(BadgesFor(a, score)),
		})
	}
	Rank(entries)
	return entries
}

// Rank sorts entries by total score, highest first, and numbers them from 1.
func Rank(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalScore > entries[j].TotalScore
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
}
