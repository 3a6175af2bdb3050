package review

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/linguatrack/backend/internal/domain"
)

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID, cardID uuid.UUID) (domain.Card, error)
}

func (m *cardRepoMock) GetByID(ctx context.Context, userID, cardID uuid.UUID) (domain.Card, error) {
	if m.GetByIDFunc == nil {
		panic("cardRepoMock.GetByIDFunc: method is nil but cardRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, userID, cardID)
}

var _ repetitionRepo = &repetitionRepoMock{}

type repetitionRepoMock struct {
	GetByCardIDFunc func(ctx context.Context, userID, cardID uuid.UUID) (domain.Repetition, error)
	CreateFunc      func(ctx context.Context, rep domain.Repetition) error
	UpdateFunc      func(ctx context.Context, rep domain.Repetition) error
	ListDueFunc     func(ctx context.Context, userID uuid.UUID, today time.Time, limit int) ([]domain.DueCard, error)
	CountDueFunc    func(ctx context.Context, userID uuid.UUID, today time.Time) (int, error)
}

func (m *repetitionRepoMock) GetByCardID(ctx context.Context, userID, cardID uuid.UUID) (domain.Repetition, error) {
	if m.GetByCardIDFunc == nil {
		panic("repetitionRepoMock.GetByCardIDFunc: method is nil but repetitionRepo.GetByCardID was just called")
	}
	return m.GetByCardIDFunc(ctx, userID, cardID)
}

func (m *repetitionRepoMock) Create(ctx context.Context, rep domain.Repetition) error {
	if m.CreateFunc == nil {
		panic("repetitionRepoMock.CreateFunc: method is nil but repetitionRepo.Create was just called")
	}
	return m.CreateFunc(ctx, rep)
}

func (m *repetitionRepoMock) Update(ctx context.Context, rep domain.Repetition) error {
	if m.UpdateFunc == nil {
		panic("repetitionRepoMock.UpdateFunc: method is nil but repetitionRepo.Update was just called")
	}
	return m.UpdateFunc(ctx, rep)
}

func (m *repetitionRepoMock) ListDue(ctx context.Context, userID uuid.UUID, today time.Time, limit int) ([]domain.DueCard, error) {
	if m.ListDueFunc == nil {
		panic("repetitionRepoMock.ListDueFunc: method is nil but repetitionRepo.ListDue was just called")
	}
	return m.ListDueFunc(ctx, userID, today, limit)
}

func (m *repetitionRepoMock) CountDue(ctx context.Context, userID uuid.UUID, today time.Time) (int, error) {
	if m.CountDueFunc == nil {
		panic("repetitionRepoMock.CountDueFunc: method is nil but repetitionRepo.CountDue was just called")
	}
	return m.CountDueFunc(ctx, userID, today)
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc == nil {
		return fn(ctx)
	}
	return m.RunInTxFunc(ctx, fn)
}
