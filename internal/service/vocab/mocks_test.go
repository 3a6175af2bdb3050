package vocab

import (
	"context"

	"github.com/google/uuid"

	"github.com/linguatrack/backend/internal/domain"
)

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	GetByIDFunc      func(ctx context.Context, userID, cardID uuid.UUID) (domain.Card, error)
	ListFunc         func(ctx context.Context, userID uuid.UUID, filter domain.CardFilter) ([]domain.Card, error)
	CountByLevelFunc func(ctx context.Context, userID uuid.UUID) (domain.LevelCounts, error)
	CreateFunc       func(ctx context.Context, c domain.Card) error
	UpdateFunc       func(ctx context.Context, c domain.Card) error
	DeleteFunc       func(ctx context.Context, userID, cardID uuid.UUID) error
}

func (m *cardRepoMock) GetByID(ctx context.Context, userID, cardID uuid.UUID) (domain.Card, error) {
	if m.GetByIDFunc == nil {
		panic("cardRepoMock.GetByIDFunc: method is nil but cardRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, userID, cardID)
}

func (m *cardRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.CardFilter) ([]domain.Card, error) {
	if m.ListFunc == nil {
		panic("cardRepoMock.ListFunc: method is nil but cardRepo.List was just called")
	}
	return m.ListFunc(ctx, userID, filter)
}

func (m *cardRepoMock) CountByLevel(ctx context.Context, userID uuid.UUID) (domain.LevelCounts, error) {
	if m.CountByLevelFunc == nil {
		panic("cardRepoMock.CountByLevelFunc: method is nil but cardRepo.CountByLevel was just called")
	}
	return m.CountByLevelFunc(ctx, userID)
}

func (m *cardRepoMock) Create(ctx context.Context, c domain.Card) error {
	if m.CreateFunc == nil {
		panic("cardRepoMock.CreateFunc: method is nil but cardRepo.Create was just called")
	}
	return m.CreateFunc(ctx, c)
}

func (m *cardRepoMock) Update(ctx context.Context, c domain.Card) error {
	if m.UpdateFunc == nil {
		panic("cardRepoMock.UpdateFunc: method is nil but cardRepo.Update was just called")
	}
	return m.UpdateFunc(ctx, c)
}

func (m *cardRepoMock) Delete(ctx context.Context, userID, cardID uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("cardRepoMock.DeleteFunc: method is nil but cardRepo.Delete was just called")
	}
	return m.DeleteFunc(ctx, userID, cardID)
}

var _ repetitionRepo = &repetitionRepoMock{}

type repetitionRepoMock struct {
	CreateFunc func(ctx context.Context, rep domain.Repetition) error
}

func (m *repetitionRepoMock) Create(ctx context.Context, rep domain.Repetition) error {
	if m.CreateFunc == nil {
		panic("repetitionRepoMock.CreateFunc: method is nil but repetitionRepo.Create was just called")
	}
	return m.CreateFunc(ctx, rep)
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
