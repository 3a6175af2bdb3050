package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/linguatrack/backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsernameFunc   func(ctx context.Context, username string) (*domain.User, error)
	GetByTelegramIDFunc func(ctx context.Context, telegramID int64) (*domain.User, error)
	CreateFunc          func(ctx context.Context, u domain.User) error
	LinkTelegramFunc    func(ctx context.Context, userID uuid.UUID, telegramID *int64, telegramUsername *string) error
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *userRepoMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFunc == nil {
		panic("userRepoMock.GetByUsernameFunc: method is nil but userRepo.GetByUsername was just called")
	}
	return m.GetByUsernameFunc(ctx, username)
}

func (m *userRepoMock) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	if m.GetByTelegramIDFunc == nil {
		panic("userRepoMock.GetByTelegramIDFunc: method is nil but userRepo.GetByTelegramID was just called")
	}
	return m.GetByTelegramIDFunc(ctx, telegramID)
}

func (m *userRepoMock) Create(ctx context.Context, u domain.User) error {
	if m.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	return m.CreateFunc(ctx, u)
}

func (m *userRepoMock) LinkTelegram(ctx context.Context, userID uuid.UUID, telegramID *int64, telegramUsername *string) error {
	if m.LinkTelegramFunc == nil {
		panic("userRepoMock.LinkTelegramFunc: method is nil but userRepo.LinkTelegram was just called")
	}
	return m.LinkTelegramFunc(ctx, userID, telegramID, telegramUsername)
}

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateAccessTokenFunc func(userID uuid.UUID) (string, error)
}

func (m *jwtManagerMock) GenerateAccessToken(userID uuid.UUID) (string, error) {
	if m.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock.GenerateAccessTokenFunc: method is nil but jwtManager.GenerateAccessToken was just called")
	}
	return m.GenerateAccessTokenFunc(userID)
}
