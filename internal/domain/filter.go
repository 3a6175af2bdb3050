package domain

import "time"

// CardFilter contains filtering/pagination parameters for card listings.
type CardFilter struct {
	// Level keeps only cards of the given difficulty. nil means all levels.
	Level *CardLevel

	// Search performs a case-insensitive substring match on word and translation.
	Search *string

	Limit  int
	Offset int
}

// TestResultFilter contains filtering/pagination parameters for test history.
type TestResultFilter struct {
	// Mode keeps only results of the given test mode. nil means all modes.
	Mode *TestMode

	// Since keeps only results completed at or after the given time.
	Since *time.Time

	Limit  int
	Offset int
}
