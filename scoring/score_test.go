package scoring

import (
	"testing"

	"janconnect-be/models"
)

func TestPointsForPriority(t *testing.T) {
	cases := map[models.IssuePriority]int64{
		models.Urgent: 20,
		models.High:   15,
		models.Medium: 10,
		models.Low:    5,
	}
	for p, want := range cases {
		if got := PointsForPriority(p); got != want {
			t.Errorf("%s: expected %d got %d", p, want, got)
		}
	}
}

func TestScoreWeights(t *testing.T) {
	a := Activity{Issues: 2, Posts: 3, ResolvedIssues: 1, HighPriorityIssues: 1, UpvotesReceived: 4}
	// 7 + 20 + 15 + 25 + 15 + 8
	if got := Score(7, a); got != 90 {
		t.Fatalf("expected 90 got %d", got)
	}
}

func TestScoreMonotonic(t *testing.T) {
	base := Activity{Issues: 3, Posts: 1, ResolvedIssues: 2, HighPriorityIssues: 1, UpvotesReceived: 10}
	bumps := []func(*Activity){
		func(a *Activity) { a.Issues++ },
		func(a *Activity) { a.Posts++ },
		func(a *Activity) { a.ResolvedIssues++ },
		func(a *Activity) { a.HighPriorityIssues++ },
		func(a *Activity) { a.UpvotesReceived++ },
	}
	for i, bump := range bumps {
		next := base
		bump(&next)
		if Score(40, next) < Score(40, base) {
			t.Fatalf("bump %d decreased the score", i)
		}
	}
}

func TestLevelBoundaries(t *testing.T) {
	cases := []struct {
		score int64
		want  Level
	}{
		{2000, Champion},
		{1999, Expert},
		{1000, Expert},
		{999, Advanced},
		{500, Advanced},
		{499, Intermediate},
		{100, Intermediate},
		{99, Beginner},
		{0, Beginner},
	}
	for _, tc := range cases {
		if got := LevelFor(tc.score); got != tc.want {
			t.Errorf("score %d: expected %s got %s", tc.score, tc.want, got)
		}
	}
}

func TestBadgesOrderAndTruncation(t *testing.T) {
	a := Activity{Issues: 50, ResolvedIssues: 20, Posts: 30, UpvotesReceived: 100, HighPriorityIssues: 10}
	badges := BadgesFor(a, 5000)
	want := []string{"Issue Hunter", "Problem Solver", "Community Voice", "Civic Leader", "Crowd Favorite", "First Responder"}
	if len(badges) != len(want) {
		t.Fatalf("expected %d badges got %v", len(want), badges)
	}
	for i := range want {
		if badges[i] != want[i] {
			t.Fatalf("badge %d: expected %s got %s", i, want[i], badges[i])
		}
	}
	shown := DisplayBadges(badges)
	if len(shown) != 3 || shown[2] != "Community Voice" {
		t.Fatalf("unexpected displayed badges %v", shown)
	}

	// Only later rules earned: they move up into the displayed slots.
	late := BadgesFor(Activity{UpvotesReceived: 150, HighPriorityIssues: 12}, 10)
	if len(late) != 2 || late[0] != "Crowd Favorite" || late[1] != "First Responder" {
		t.Fatalf("unexpected badges %v", late)
	}
	if got := BadgesFor(Activity{}, 0); len(got) != 0 {
		t.Fatalf("expected no badges got %v", got)
	}
}
