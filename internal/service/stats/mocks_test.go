package stats

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/linguatrack/backend/internal/domain"
)

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	CountByLevelFunc func(ctx context.Context, userID uuid.UUID) (domain.LevelCounts, error)
}

func (m *cardRepoMock) CountByLevel(ctx context.Context, userID uuid.UUID) (domain.LevelCounts, error) {
	if m.CountByLevelFunc == nil {
		panic("cardRepoMock.CountByLevelFunc: method is nil but cardRepo.CountByLevel was just called")
	}
	return m.CountByLevelFunc(ctx, userID)
}

var _ repetitionRepo = &repetitionRepoMock{}

type repetitionRepoMock struct {
	TotalsFunc   func(ctx context.Context, userID uuid.UUID) (domain.ReviewTotals, error)
	CountDueFunc func(ctx context.Context, userID uuid.UUID, today time.Time) (int, error)
	ListWeakFunc func(ctx context.Context, userID uuid.UUID, minReviews int, successThreshold float64, failStreak, limit int) ([]domain.WeakCard, error)
}

func (m *repetitionRepoMock) Totals(ctx context.Context, userID uuid.UUID) (domain.ReviewTotals, error) {
	if m.TotalsFunc == nil {
		panic("repetitionRepoMock.TotalsFunc: method is nil but repetitionRepo.Totals was just called")
	}
	return m.TotalsFunc(ctx, userID)
}

func (m *repetitionRepoMock) CountDue(ctx context.Context, userID uuid.UUID, today time.Time) (int, error) {
	if m.CountDueFunc == nil {
		panic("repetitionRepoMock.CountDueFunc: method is nil but repetitionRepo.CountDue was just called")
	}
	return m.CountDueFunc(ctx, userID, today)
}

func (m *repetitionRepoMock) ListWeak(ctx context.Context, userID uuid.UUID, minReviews int, successThreshold float64, failStreak, limit int) ([]domain.WeakCard, error) {
	if m.ListWeakFunc == nil {
		panic("repetitionRepoMock.ListWeakFunc: method is nil but repetitionRepo.ListWeak was just called")
	}
	return m.ListWeakFunc(ctx, userID, minReviews, successThreshold, failStreak, limit)
}

var _ resultRepo = &resultRepoMock{}

type resultRepoMock struct {
	ListFunc      func(ctx context.Context, userID uuid.UUID, filter domain.TestResultFilter) ([]domain.TestResult, error)
	RecentFunc    func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.TestResult, error)
	ModeStatsFunc func(ctx context.Context, userID uuid.UUID) ([]domain.ModeStats, error)
	SummaryFunc   func(ctx context.Context, userID uuid.UUID) (tests, correct, total int, err error)
}

func (m *resultRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.TestResultFilter) ([]domain.TestResult, error) {
	if m.ListFunc == nil {
		panic("resultRepoMock.ListFunc: method is nil but resultRepo.List was just called")
	}
	return m.ListFunc(ctx, userID, filter)
}

func (m *resultRepoMock) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.TestResult, error) {
	if m.RecentFunc == nil {
		panic("resultRepoMock.RecentFunc: method is nil but resultRepo.Recent was just called")
	}
	return m.RecentFunc(ctx, userID, limit)
}

func (m *resultRepoMock) ModeStats(ctx context.Context, userID uuid.UUID) ([]domain.ModeStats, error) {
	if m.ModeStatsFunc == nil {
		panic("resultRepoMock.ModeStatsFunc: method is nil but resultRepo.ModeStats was just called")
	}
	return m.ModeStatsFunc(ctx, userID)
}

func (m *resultRepoMock) Summary(ctx context.Context, userID uuid.UUID) (tests, correct, total int, err error) {
	if m.SummaryFunc == nil {
		panic("resultRepoMock.SummaryFunc: method is nil but resultRepo.Summary was just called")
	}
	return m.SummaryFunc(ctx, userID)
}
