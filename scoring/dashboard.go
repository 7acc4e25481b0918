package scoring

import (
	"fmt"
	"math"

	"janconnect-be/models"
)

// DashboardInput holds the independently fetched collections.
type DashboardInput struct {
	Issues   []models.Issue
	Posts    []models.Post
	Profiles []models.Profile
	Tenders  []models.Tender
	Feedback []models.Feedback
}

type DashboardStats struct {
	TotalIssues         int            `json:"total_issues"`
	PendingIssues       int            `json:"pending_issues"`
	InProgressIssues    int            `json:"in_progress_issues"`
	ResolvedIssues      int            `json:"resolved_issues"`
	TotalUsers          int            `json:"total_users"`
	UsersByType         map[string]int `json:"users_by_type"`
	TotalPosts          int            `json:"total_posts"`
	TotalTenders        int            `json:"total_tenders"`
	ActiveTenders       int            `json:"active_tenders"`
	TotalFeedback       int            `json:"total_feedback"`
	AverageResponseTime string         `json:"average_response_time"`
	CategoriesBreakdown map[string]int `json:"categories_breakdown"`
	PriorityBreakdown   map[string]int `json:"priority_breakdown"`
	MonthlyTrend        map[string]int `json:"monthly_trend"`
}

// Aggregate computes the admin dashboard in one pass over each collection.
// Rows with an unrecognised status are counted as pending so the three phase
// counts always add up to TotalIssues.
func Aggregate(in DashboardInput) DashboardStats {
	stats := DashboardStats{
		TotalIssues:         len(in.Issues),
		TotalUsers:          len(in.Profiles),
		UsersByType:         map[string]int{},
		TotalPosts:          len(in.Posts),
		TotalTenders:        len(in.Tenders),
		TotalFeedback:       len(in.Feedback),
		AverageResponseTime: AverageResponseTime(in.Issues),
		CategoriesBreakdown: CategoriesBreakdown(in.Issues),
		PriorityBreakdown:   PriorityBreakdown(in.Issues),
		MonthlyTrend:        MonthlyTrend(in.Issues),
	}

	for i := range in.Issues {
		switch in.Issues[i].Status {
		case models.InProgress:
			stats.InProgressIssues++
		case models.Resolved:
			stats.ResolvedIssues++
		default:
			stats.PendingIssues++
		}
	}
	for i := range in.Profiles {
		stats.UsersByType[string(in.Profiles[i].UserType)]++
	}
	for i := range in.Tenders {
		if in.Tenders[i].Status == models.TenderAvailable {
			stats.ActiveTenders++
		}
	}
	return stats
}

// AverageResponseTime is the rounded mean of whole days (rounded up per issue)
// between creation and resolution, formatted as "N days".
func AverageResponseTime(issues []models.Issue) string {
	var total float64
	var n int
	for i := range issues {
		issue := &issues[i]
		if issue.Status != models.Resolved || issue.ResolvedAt == nil || issue.CreatedAt.IsZero() {
			continue
		}
		days := issue.ResolvedAt.Sub(issue.CreatedAt).Hours() / 24
		total += math.Ceil(days)
		n++
	}
	if n == 0 {
		return "0 days"
	}
	return fmt.Sprintf("%d days", int64(math.Round(total/float64(n))))
}

func CategoriesBreakdown(issues []models.Issue) map[string]int {
	out := map[string]int{}
	for i := range issues {
		out[string(issues[i].Category)]++
	}
	return out
}

func PriorityBreakdown(issues []models.Issue) map[string]int {
	out := map[string]int{}
	for i := range issues {
		out[string(issues[i].Priority)]++
	}
	return out
}

// MonthlyTrend buckets issues by UTC creation month (YYYY-MM).
func MonthlyTrend(issues []models.Issue) map[string]int {
	out := map[string]int{}
	for i := range issues {
		out[issues[i].CreatedAt.UTC().Format("2006-01")]++
	}
	return out
}
