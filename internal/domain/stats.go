package domain

import "math"

// Accuracy converts a correct/total pair into a percentage rounded to one
// decimal place. Returns 0 when total is zero. This is the single rounding
// rule for every accuracy shown or stored anywhere in the system.
func Accuracy(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(correct)/float64(total)*1000) / 10
}

// LevelCounts holds per-level card counts for a user.
type LevelCounts struct {
	Beginner     int
	Intermediate int
	Advanced     int
	Total        int
}

// ReviewTotals holds lifetime review counters summed over all of a
// user's repetition entries.
type ReviewTotals struct {
	TotalReviews      int
	SuccessfulReviews int
	FailedReviews     int
}

// SuccessRate returns the percentage of successful reviews, 0 when the
// user has never reviewed anything.
func (t ReviewTotals) SuccessRate() float64 {
	return Accuracy(t.SuccessfulReviews, t.TotalReviews)
}

// ModeStats aggregates assessment results for one test mode.
type ModeStats struct {
	Mode        TestMode
	Count       int
	AvgAccuracy float64
	BestScore   int
}

// WeakCard pairs a card with its ledger for "needs attention" listings.
type WeakCard struct {
	Card       Card
	Repetition Repetition
}

// Overview is the aggregated dashboard for one user.
type Overview struct {
	Cards           LevelCounts
	Reviews         ReviewTotals
	TotalTests      int
	TestAccuracy    float64
	DueCount        int
	RecentResults   []TestResult
	Recommendations []string
}
