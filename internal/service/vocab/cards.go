package vocab

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/linguatrack/backend/internal/domain"
	"github.com/linguatrack/backend/pkg/ctxutil"
)

// CreateCard creates a card together with its scheduling ledger row.
// Every card becomes reviewable the moment it is created.
func (s *Service) CreateCard(ctx context.Context, input CreateCardInput) (*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	card := domain.Card{
		ID:          uuid.New(),
		UserID:      userID,
		Word:        input.Word,
		Translation: input.Translation,
		Example:     input.Example,
		Note:        input.Note,
		Level:       input.Level,
		CreatedAt:   now,
	}
	rep := domain.NewRepetition(userID, card.ID, now)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.cards.Create(txCtx, card); err != nil {
			return fmt.Errorf("create card: %w", err)
		}
		if err := s.reps.Create(txCtx, rep); err != nil {
			return fmt.Errorf("create repetition ledger: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "card created", "card_id", card.ID, "word", card.Word)

	return &card, nil
}

// GetCard returns a single card owned by the current user.
func (s *Service) GetCard(ctx context.Context, cardID uuid.UUID) (*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	card, err := s.cards.GetByID(ctx, userID, cardID)
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}

	return &card, nil
}

// ListCards returns the current user's cards matching the filter.
func (s *Service) ListCards(ctx context.Context, input ListCardsInput) ([]domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	cards, err := s.cards.List(ctx, userID, domain.CardFilter{
		Level:  input.Level,
		Search: input.Search,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}

	return cards, nil
}

// UpdateCard applies a partial update to a card the current user owns.
func (s *Service) UpdateCard(ctx context.Context, input UpdateCardInput) (*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	card, err := s.cards.GetByID(ctx, userID, input.CardID)
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}

	if input.Word != nil {
		card.Word = *input.Word
	}
	if input.Translation != nil {
		card.Translation = *input.Translation
	}
	if input.Example != nil {
		card.Example = *input.Example
	}
	if input.Note != nil {
		card.Note = *input.Note
	}
	if input.Level != nil {
		card.Level = *input.Level
	}

	if err := s.cards.Update(ctx, card); err != nil {
		return nil, fmt.Errorf("update card: %w", err)
	}

	s.log.InfoContext(ctx, "card updated", "card_id", card.ID)

	return &card, nil
}

// DeleteCard removes a card. The scheduling ledger row is deleted with it.
func (s *Service) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.cards.Delete(ctx, userID, cardID); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}

	s.log.InfoContext(ctx, "card deleted", "card_id", cardID)

	return nil
}

// LevelCounts returns how many cards the current user has per difficulty level.
func (s *Service) LevelCounts(ctx context.Context) (domain.LevelCounts, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.LevelCounts{}, domain.ErrUnauthorized
	}

	counts, err := s.cards.CountByLevel(ctx, userID)
	if err != nil {
		return domain.LevelCounts{}, fmt.Errorf("count cards by level: %w", err)
	}

	return counts, nil
}
