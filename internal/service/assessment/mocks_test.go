package assessment

import (
	"context"

	"github.com/google/uuid"

	"github.com/linguatrack/backend/internal/domain"
)

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	ListForAssessmentFunc func(ctx context.Context, userID uuid.UUID) ([]domain.AssessmentCard, error)
}

func (m *cardRepoMock) ListForAssessment(ctx context.Context, userID uuid.UUID) ([]domain.AssessmentCard, error) {
	if m.ListForAssessmentFunc == nil {
		panic("cardRepoMock.ListForAssessmentFunc: method is nil but cardRepo.ListForAssessment was just called")
	}
	return m.ListForAssessmentFunc(ctx, userID)
}

var _ resultRepo = &resultRepoMock{}

type resultRepoMock struct {
	CreateFunc func(ctx context.Context, res domain.TestResult) error
}

func (m *resultRepoMock) Create(ctx context.Context, res domain.TestResult) error {
	if m.CreateFunc == nil {
		panic("resultRepoMock.CreateFunc: method is nil but resultRepo.Create was just called")
	}
	return m.CreateFunc(ctx, res)
}
