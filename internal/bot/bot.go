// Package bot runs the Telegram companion: daily reminders, due-word
// listings, and quick quizzes backed by the same services as the REST API.
package bot

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/linguatrack/backend/internal/config"
	"github.com/linguatrack/backend/internal/domain"
	"github.com/linguatrack/backend/internal/service/assessment"
	"github.com/linguatrack/backend/internal/service/review"
	"github.com/linguatrack/backend/pkg/ctxutil"
)

type accountService interface {
	UserByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error)
}

type reviewService interface {
	DueCards(ctx context.Context, limit int) ([]domain.DueCard, error)
	CountDue(ctx context.Context) (int, error)
	ReviewCard(ctx context.Context, input review.ReviewCardInput) (*domain.Repetition, error)
}

type assessmentService interface {
	Start(ctx context.Context, input assessment.StartInput) (*assessment.Question, error)
	CurrentQuestion(ctx context.Context) (*assessment.Question, error)
	SubmitAnswer(ctx context.Context, input assessment.SubmitInput) (*assessment.SubmitOutcome, error)
	Cancel(ctx context.Context) error
}

// Bot polls Telegram updates and answers chat commands. All domain work
// goes through the services; the bot only renders.
type Bot struct {
	api      *tgbotapi.BotAPI
	accounts accountService
	reviews  reviewService
	quizzes  assessmentService
	cfg      config.BotConfig
	log      *slog.Logger
}

// New connects to the Telegram API with the configured token.
func New(
	cfg config.BotConfig,
	accounts accountService,
	reviews reviewService,
	quizzes assessmentService,
	logger *slog.Logger,
) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, err
	}
	api.Debug = cfg.Debug

	return &Bot{
		api:      api,
		accounts: accounts,
		reviews:  reviews,
		quizzes:  quizzes,
		cfg:      cfg,
		log:      logger.With("component", "bot"),
	}, nil
}

// API exposes the underlying client, used by the reminder scheduler to
// send messages through the same connection.
func (b *Bot) API() *tgbotapi.BotAPI {
	return b.api
}

// Run polls updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	b.log.InfoContext(ctx, "bot started", slog.String("username", b.api.Self.UserName))

	updateCfg := tgbotapi.NewUpdate(0)
	updateCfg.Timeout = 60

	updates := b.api.GetUpdatesChan(updateCfg)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update := <-updates:
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	}
}

// userCtx resolves the Telegram sender to a linked account and stamps the
// context with the account id the services expect.
func (b *Bot) userCtx(ctx context.Context, telegramID int64) (context.Context, *domain.User, error) {
	user, err := b.accounts.UserByTelegramID(ctx, telegramID)
	if err != nil {
		return ctx, nil, err
	}
	return ctxutil.WithUserID(ctx, user.ID), user, nil
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		b.log.Error("send failed", slog.String("error", err.Error()))
	}
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	b.send(msg)
}
