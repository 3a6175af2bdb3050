package vocab

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/linguatrack/backend/internal/domain"
	"github.com/linguatrack/backend/pkg/ctxutil"
)

func newTestService(cards *cardRepoMock, reps *repetitionRepoMock) *Service {
	return &Service{
		cards: cards,
		reps:  reps,
		tx:    &txManagerMock{},
		log:   slog.Default(),
	}
}

func authedCtx(userID uuid.UUID) context.Context {
	return ctxutil.WithUserID(context.Background(), userID)
}

func TestService_CreateCard_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	var createdCard domain.Card
	var createdRep domain.Repetition

	mockCards := &cardRepoMock{
		CreateFunc: func(ctx context.Context, c domain.Card) error {
			createdCard = c
			return nil
		},
	}
	mockReps := &repetitionRepoMock{
		CreateFunc: func(ctx context.Context, rep domain.Repetition) error {
			createdRep = rep
			return nil
		},
	}

	svc := newTestService(mockCards, mockReps)

	card, err := svc.CreateCard(authedCtx(userID), CreateCardInput{
		Word:        "  serendipity  ",
		Translation: "счастливая случайность",
		Example:     "It was pure serendipity.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if card.Word != "serendipity" {
		t.Errorf("word not trimmed: %q", card.Word)
	}
	if card.Level != domain.CardLevelBeginner {
		t.Errorf("empty level must default to beginner, got %s", card.Level)
	}
	if createdCard.UserID != userID {
		t.Errorf("card created for wrong user: %s", createdCard.UserID)
	}
	if createdRep.CardID != card.ID {
		t.Errorf("ledger created for wrong card: %s", createdRep.CardID)
	}
	if createdRep.IntervalDays != domain.InitialIntervalDays || createdRep.Easiness != domain.InitialEasiness {
		t.Errorf("ledger not at initial state: interval=%d easiness=%v", createdRep.IntervalDays, createdRep.Easiness)
	}
}

func TestService_CreateCard_ValidationErrors(t *testing.T) {
	t.Parallel()

	svc := newTestService(&cardRepoMock{}, &repetitionRepoMock{})

	tests := []struct {
		name  string
		input CreateCardInput
		field string
	}{
		{
			name:  "missing word",
			input: CreateCardInput{Translation: "x"},
			field: "word",
		},
		{
			name:  "missing translation",
			input: CreateCardInput{Word: "x"},
			field: "translation",
		},
		{
			name:  "whitespace only word",
			input: CreateCardInput{Word: "   ", Translation: "x"},
			field: "word",
		},
		{
			name:  "word too long",
			input: CreateCardInput{Word: strings.Repeat("a", 201), Translation: "x"},
			field: "word",
		},
		{
			name:  "bad level",
			input: CreateCardInput{Word: "a", Translation: "b", Level: "expert"},
			field: "level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.CreateCard(authedCtx(uuid.New()), tt.input)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("got %v, want ErrValidation", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q should mention field %q", err, tt.field)
			}
		})
	}
}

func TestService_CreateCard_Unauthenticated(t *testing.T) {
	t.Parallel()

	svc := newTestService(&cardRepoMock{}, &repetitionRepoMock{})

	_, err := svc.CreateCard(context.Background(), CreateCardInput{Word: "a", Translation: "b"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("got %v, want ErrUnauthorized", err)
	}
}

func TestService_CreateCard_LedgerFailureAbortsCard(t *testing.T) {
	t.Parallel()

	repErr := errors.New("ledger insert failed")

	mockCards := &cardRepoMock{
		CreateFunc: func(ctx context.Context, c domain.Card) error { return nil },
	}
	mockReps := &repetitionRepoMock{
		CreateFunc: func(ctx context.Context, rep domain.Repetition) error { return repErr },
	}

	svc := newTestService(mockCards, mockReps)

	_, err := svc.CreateCard(authedCtx(uuid.New()), CreateCardInput{Word: "a", Translation: "b"})
	if !errors.Is(err, repErr) {
		t.Fatalf("got %v, want ledger error to propagate", err)
	}
}

func TestService_UpdateCard_PartialUpdate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	cardID := uuid.New()

	existing := domain.Card{
		ID:          cardID,
		UserID:      userID,
		Word:        "hello",
		Translation: "привет",
		Example:     "Hello there.",
		Level:       domain.CardLevelBeginner,
	}

	var updated domain.Card
	mockCards := &cardRepoMock{
		GetByIDFunc: func(ctx context.Context, uid, cid uuid.UUID) (domain.Card, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, c domain.Card) error {
			updated = c
			return nil
		},
	}

	svc := newTestService(mockCards, &repetitionRepoMock{})

	newTranslation := "здравствуйте"
	newLevel := domain.CardLevelIntermediate
	got, err := svc.UpdateCard(authedCtx(userID), UpdateCardInput{
		CardID:      cardID,
		Translation: &newTranslation,
		Level:       &newLevel,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Word != "hello" {
		t.Errorf("untouched field changed: word = %q", got.Word)
	}
	if updated.Translation != newTranslation || updated.Level != newLevel {
		t.Errorf("update not applied: %+v", updated)
	}
}

func TestService_UpdateCard_EmptyWordRejected(t *testing.T) {
	t.Parallel()

	svc := newTestService(&cardRepoMock{}, &repetitionRepoMock{})

	empty := "   "
	_, err := svc.UpdateCard(authedCtx(uuid.New()), UpdateCardInput{
		CardID: uuid.New(),
		Word:   &empty,
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("got %v, want ErrValidation", err)
	}
}

func TestService_UpdateCard_NotFound(t *testing.T) {
	t.Parallel()

	mockCards := &cardRepoMock{
		GetByIDFunc: func(ctx context.Context, uid, cid uuid.UUID) (domain.Card, error) {
			return domain.Card{}, domain.ErrNotFound
		},
	}

	svc := newTestService(mockCards, &repetitionRepoMock{})

	word := "x"
	_, err := svc.UpdateCard(authedCtx(uuid.New()), UpdateCardInput{CardID: uuid.New(), Word: &word})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestService_ListCards_PassesFilter(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	level := domain.CardLevelAdvanced
	search := "ser"

	mockCards := &cardRepoMock{
		ListFunc: func(ctx context.Context, uid uuid.UUID, filter domain.CardFilter) ([]domain.Card, error) {
			if uid != userID {
				t.Errorf("unexpected userID: %s", uid)
			}
			if filter.Level == nil || *filter.Level != level {
				t.Errorf("level filter not forwarded: %+v", filter.Level)
			}
			if filter.Search == nil || *filter.Search != search {
				t.Errorf("search filter not forwarded: %+v", filter.Search)
			}
			if filter.Limit != 20 || filter.Offset != 40 {
				t.Errorf("pagination not forwarded: limit=%d offset=%d", filter.Limit, filter.Offset)
			}
			return []domain.Card{}, nil
		},
	}

	svc := newTestService(mockCards, &repetitionRepoMock{})

	_, err := svc.ListCards(authedCtx(userID), ListCardsInput{
		Level:  &level,
		Search: &search,
		Limit:  20,
		Offset: 40,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_ListCards_RejectsBadPagination(t *testing.T) {
	t.Parallel()

	svc := newTestService(&cardRepoMock{}, &repetitionRepoMock{})

	_, err := svc.ListCards(authedCtx(uuid.New()), ListCardsInput{Limit: 1000})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("got %v, want ErrValidation", err)
	}
}

func TestService_DeleteCard(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	cardID := uuid.New()

	deleted := false
	mockCards := &cardRepoMock{
		DeleteFunc: func(ctx context.Context, uid, cid uuid.UUID) error {
			if uid != userID || cid != cardID {
				t.Errorf("delete called with %s/%s", uid, cid)
			}
			deleted = true
			return nil
		},
	}

	svc := newTestService(mockCards, &repetitionRepoMock{})

	if err := svc.DeleteCard(authedCtx(userID), cardID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Fatal("repo Delete was not called")
	}
}

func TestService_LevelCounts(t *testing.T) {
	t.Parallel()

	mockCards := &cardRepoMock{
		CountByLevelFunc: func(ctx context.Context, uid uuid.UUID) (domain.LevelCounts, error) {
			return domain.LevelCounts{Beginner: 3, Intermediate: 2, Advanced: 1, Total: 6}, nil
		},
	}

	svc := newTestService(mockCards, &repetitionRepoMock{})

	counts, err := svc.LevelCounts(authedCtx(uuid.New()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counts.Total != 6 || counts.Beginner != 3 {
		t.Errorf("counts = %+v", counts)
	}
}
