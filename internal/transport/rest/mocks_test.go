package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/linguatrack/backend/internal/domain"
	"github.com/linguatrack/backend/internal/service/assessment"
	"github.com/linguatrack/backend/internal/service/auth"
	"github.com/linguatrack/backend/internal/service/review"
	"github.com/linguatrack/backend/internal/service/stats"
	"github.com/linguatrack/backend/internal/service/vocab"
)

var _ vocabService = &vocabServiceMock{}

type vocabServiceMock struct {
	CreateCardFunc  func(ctx context.Context, input vocab.CreateCardInput) (*domain.Card, error)
	GetCardFunc     func(ctx context.Context, cardID uuid.UUID) (*domain.Card, error)
	ListCardsFunc   func(ctx context.Context, input vocab.ListCardsInput) ([]domain.Card, error)
	UpdateCardFunc  func(ctx context.Context, input vocab.UpdateCardInput) (*domain.Card, error)
	DeleteCardFunc  func(ctx context.Context, cardID uuid.UUID) error
	LevelCountsFunc func(ctx context.Context) (domain.LevelCounts, error)
}

func (m *vocabServiceMock) CreateCard(ctx context.Context, input vocab.CreateCardInput) (*domain.Card, error) {
	if m.CreateCardFunc == nil {
		panic("vocabServiceMock.CreateCardFunc: method is nil but vocabService.CreateCard was just called")
	}
	return m.CreateCardFunc(ctx, input)
}

func (m *vocabServiceMock) GetCard(ctx context.Context, cardID uuid.UUID) (*domain.Card, error) {
	if m.GetCardFunc == nil {
		panic("vocabServiceMock.GetCardFunc: method is nil but vocabService.GetCard was just called")
	}
	return m.GetCardFunc(ctx, cardID)
}

func (m *vocabServiceMock) ListCards(ctx context.Context, input vocab.ListCardsInput) ([]domain.Card, error) {
	if m.ListCardsFunc == nil {
		panic("vocabServiceMock.ListCardsFunc: method is nil but vocabService.ListCards was just called")
	}
	return m.ListCardsFunc(ctx, input)
}

func (m *vocabServiceMock) UpdateCard(ctx context.Context, input vocab.UpdateCardInput) (*domain.Card, error) {
	if m.UpdateCardFunc == nil {
		panic("vocabServiceMock.UpdateCardFunc: method is nil but vocabService.UpdateCard was just called")
	}
	return m.UpdateCardFunc(ctx, input)
}

func (m *vocabServiceMock) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	if m.DeleteCardFunc == nil {
		panic("vocabServiceMock.DeleteCardFunc: method is nil but vocabService.DeleteCard was just called")
	}
	return m.DeleteCardFunc(ctx, cardID)
}

func (m *vocabServiceMock) LevelCounts(ctx context.Context) (domain.LevelCounts, error) {
	if m.LevelCountsFunc == nil {
		panic("vocabServiceMock.LevelCountsFunc: method is nil but vocabService.LevelCounts was just called")
	}
	return m.LevelCountsFunc(ctx)
}

var _ reviewService = &reviewServiceMock{}

type reviewServiceMock struct {
	DueCardsFunc   func(ctx context.Context, limit int) ([]domain.DueCard, error)
	CountDueFunc   func(ctx context.Context) (int, error)
	ReviewCardFunc func(ctx context.Context, input review.ReviewCardInput) (*domain.Repetition, error)
}

func (m *reviewServiceMock) DueCards(ctx context.Context, limit int) ([]domain.DueCard, error) {
	if m.DueCardsFunc == nil {
		panic("reviewServiceMock.DueCardsFunc: method is nil but reviewService.DueCards was just called")
	}
	return m.DueCardsFunc(ctx, limit)
}

func (m *reviewServiceMock) CountDue(ctx context.Context) (int, error) {
	if m.CountDueFunc == nil {
		panic("reviewServiceMock.CountDueFunc: method is nil but reviewService.CountDue was just called")
	}
	return m.CountDueFunc(ctx)
}

func (m *reviewServiceMock) ReviewCard(ctx context.Context, input review.ReviewCardInput) (*domain.Repetition, error) {
	if m.ReviewCardFunc == nil {
		panic("reviewServiceMock.ReviewCardFunc: method is nil but reviewService.ReviewCard was just called")
	}
	return m.ReviewCardFunc(ctx, input)
}

var _ assessmentService = &assessmentServiceMock{}

type assessmentServiceMock struct {
	StartFunc           func(ctx context.Context, input assessment.StartInput) (*assessment.Question, error)
	CurrentQuestionFunc func(ctx context.Context) (*assessment.Question, error)
	SubmitAnswerFunc    func(ctx context.Context, input assessment.SubmitInput) (*assessment.SubmitOutcome, error)
	CancelFunc          func(ctx context.Context) error
}

func (m *assessmentServiceMock) Start(ctx context.Context, input assessment.StartInput) (*assessment.Question, error) {
	if m.StartFunc == nil {
		panic("assessmentServiceMock.StartFunc: method is nil but assessmentService.Start was just called")
	}
	return m.StartFunc(ctx, input)
}

func (m *assessmentServiceMock) CurrentQuestion(ctx context.Context) (*assessment.Question, error) {
	if m.CurrentQuestionFunc == nil {
		panic("assessmentServiceMock.CurrentQuestionFunc: method is nil but assessmentService.CurrentQuestion was just called")
	}
	return m.CurrentQuestionFunc(ctx)
}

func (m *assessmentServiceMock) SubmitAnswer(ctx context.Context, input assessment.SubmitInput) (*assessment.SubmitOutcome, error) {
	if m.SubmitAnswerFunc == nil {
		panic("assessmentServiceMock.SubmitAnswerFunc: method is nil but assessmentService.SubmitAnswer was just called")
	}
	return m.SubmitAnswerFunc(ctx, input)
}

func (m *assessmentServiceMock) Cancel(ctx context.Context) error {
	if m.CancelFunc == nil {
		panic("assessmentServiceMock.CancelFunc: method is nil but assessmentService.Cancel was just called")
	}
	return m.CancelFunc(ctx)
}

var _ statsService = &statsServiceMock{}

type statsServiceMock struct {
	OverviewFunc  func(ctx context.Context) (*domain.Overview, error)
	HistoryFunc   func(ctx context.Context, input stats.HistoryInput) ([]domain.TestResult, error)
	ModeStatsFunc func(ctx context.Context) ([]domain.ModeStats, error)
	WeakCardsFunc func(ctx context.Context) ([]domain.WeakCard, error)
}

func (m *statsServiceMock) Overview(ctx context.Context) (*domain.Overview, error) {
	if m.OverviewFunc == nil {
		panic("statsServiceMock.OverviewFunc: method is nil but statsService.Overview was just called")
	}
	return m.OverviewFunc(ctx)
}

func (m *statsServiceMock) History(ctx context.Context, input stats.HistoryInput) ([]domain.TestResult, error) {
	if m.HistoryFunc == nil {
		panic("statsServiceMock.HistoryFunc: method is nil but statsService.History was just called")
	}
	return m.HistoryFunc(ctx, input)
}

func (m *statsServiceMock) ModeStats(ctx context.Context) ([]domain.ModeStats, error) {
	if m.ModeStatsFunc == nil {
		panic("statsServiceMock.ModeStatsFunc: method is nil but statsService.ModeStats was just called")
	}
	return m.ModeStatsFunc(ctx)
}

func (m *statsServiceMock) WeakCards(ctx context.Context) ([]domain.WeakCard, error) {
	if m.WeakCardsFunc == nil {
		panic("statsServiceMock.WeakCardsFunc: method is nil but statsService.WeakCards was just called")
	}
	return m.WeakCardsFunc(ctx)
}

var _ authService = &authServiceMock{}

type authServiceMock struct {
	RegisterFunc       func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	LoginFunc          func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	MeFunc             func(ctx context.Context) (*domain.User, error)
	LinkTelegramFunc   func(ctx context.Context, input auth.LinkTelegramInput) error
	UnlinkTelegramFunc func(ctx context.Context) error
}

func (m *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
	if m.RegisterFunc == nil {
		panic("authServiceMock.RegisterFunc: method is nil but authService.Register was just called")
	}
	return m.RegisterFunc(ctx, input)
}

func (m *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	if m.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	return m.LoginFunc(ctx, input)
}

func (m *authServiceMock) Me(ctx context.Context) (*domain.User, error) {
	if m.MeFunc == nil {
		panic("authServiceMock.MeFunc: method is nil but authService.Me was just called")
	}
	return m.MeFunc(ctx)
}

func (m *authServiceMock) LinkTelegram(ctx context.Context, input auth.LinkTelegramInput) error {
	if m.LinkTelegramFunc == nil {
		panic("authServiceMock.LinkTelegramFunc: method is nil but authService.LinkTelegram was just called")
	}
	return m.LinkTelegramFunc(ctx, input)
}

func (m *authServiceMock) UnlinkTelegram(ctx context.Context) error {
	if m.UnlinkTelegramFunc == nil {
		panic("authServiceMock.UnlinkTelegramFunc: method is nil but authService.UnlinkTelegram was just called")
	}
	return m.UnlinkTelegramFunc(ctx)
}
