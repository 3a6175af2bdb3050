package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/linguatrack/backend/internal/domain"
	"github.com/linguatrack/backend/pkg/ctxutil"
)

// LinkTelegram attaches a Telegram account to the authenticated user.
// Returns ErrAlreadyExists if the Telegram id is linked to another account.
func (s *Service) LinkTelegram(ctx context.Context, input LinkTelegramInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	var username *string
	if input.TelegramUsername != "" {
		username = &input.TelegramUsername
	}

	if err := s.users.LinkTelegram(ctx, userID, &input.TelegramID, username); err != nil {
		return fmt.Errorf("auth.LinkTelegram: %w", err)
	}

	s.log.InfoContext(ctx, "telegram linked", "user_id", userID.String(), "telegram_id", input.TelegramID)

	return nil
}

// UnlinkTelegram detaches the authenticated user's Telegram account.
func (s *Service) UnlinkTelegram(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.users.LinkTelegram(ctx, userID, nil, nil); err != nil {
		return fmt.Errorf("auth.UnlinkTelegram: %w", err)
	}

	return nil
}

// UserByTelegramID resolves a Telegram account to a backend user. The bot
// uses this to scope every command to the linked account.
func (s *Service) UserByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	user, err := s.users.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("telegram %d: %w", telegramID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("auth.UserByTelegramID: %w", err)
	}

	return user, nil
}
