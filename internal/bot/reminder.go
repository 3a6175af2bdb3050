package bot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/linguatrack/backend/internal/config"
	"github.com/linguatrack/backend/internal/domain"
	"github.com/linguatrack/backend/pkg/ctxutil"
)

type linkedUserLister interface {
	ListWithTelegram(ctx context.Context) ([]domain.User, error)
}

type dueCounter interface {
	CountDue(ctx context.Context) (int, error)
}

type reminderSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// ReminderScheduler pings linked users once a day when they have cards
// due. It only reads; grading stays with the user.
type ReminderScheduler struct {
	scheduler *gocron.Scheduler
	users     linkedUserLister
	reviews   dueCounter
	sender    reminderSender
	cfg       config.BotConfig
	loc       *time.Location
	log       *slog.Logger

	// lastSent tracks the day a reminder went out per telegram id, so the
	// hourly tick fires at most once per day per user.
	lastSent map[int64]time.Time
}

// NewReminderScheduler builds the scheduler. The timezone comes from
// config; an invalid name falls back to UTC.
func NewReminderScheduler(
	cfg config.BotConfig,
	users linkedUserLister,
	reviews dueCounter,
	sender reminderSender,
	logger *slog.Logger,
) *ReminderScheduler {
	loc, err := time.LoadLocation(cfg.ReminderTimezone)
	if err != nil {
		logger.Warn("invalid reminder timezone, using UTC", slog.String("tz", cfg.ReminderTimezone))
		loc = time.UTC
	}

	return &ReminderScheduler{
		scheduler: gocron.NewScheduler(loc),
		users:     users,
		reviews:   reviews,
		sender:    sender,
		cfg:       cfg,
		loc:       loc,
		log:       logger.With("component", "reminder"),
		lastSent:  make(map[int64]time.Time),
	}
}

// Start registers the hourly tick and runs the scheduler in the
// background.
func (s *ReminderScheduler) Start(ctx context.Context) error {
	_, err := s.scheduler.Every(1).Hour().Do(func() { s.tick(ctx, time.Now()) })
	if err != nil {
		return fmt.Errorf("schedule reminder job: %w", err)
	}

	s.scheduler.StartAsync()
	s.log.InfoContext(ctx, "reminder scheduler started",
		slog.Int("hour", s.cfg.ReminderHour),
		slog.String("timezone", s.loc.String()))
	return nil
}

// Stop halts the scheduler and waits for a running tick to finish.
func (s *ReminderScheduler) Stop() {
	s.scheduler.Stop()
}

// tick sends reminders when the local clock is inside the send window.
func (s *ReminderScheduler) tick(ctx context.Context, now time.Time) {
	local := now.In(s.loc)
	if local.Hour() != s.cfg.ReminderHour {
		return
	}

	users, err := s.users.ListWithTelegram(ctx)
	if err != nil {
		s.log.Error("list linked users", slog.String("error", err.Error()))
		return
	}

	today := domain.DateOf(local)
	for _, u := range users {
		if u.TelegramID == nil {
			continue
		}
		if sent, ok := s.lastSent[*u.TelegramID]; ok && sent.Equal(today) {
			continue
		}

		count, err := s.reviews.CountDue(ctxutil.WithUserID(ctx, u.ID))
		if err != nil {
			s.log.Error("count due for reminder",
				slog.String("user_id", u.ID.String()),
				slog.String("error", err.Error()))
			continue
		}
		if count == 0 {
			continue
		}

		msg := tgbotapi.NewMessage(*u.TelegramID, fmt.Sprintf(
			"You have %d word(s) waiting for review today. Send /today to see them.", count))
		if _, err := s.sender.Send(msg); err != nil {
			s.log.Error("send reminder",
				slog.String("user_id", u.ID.String()),
				slog.String("error", err.Error()))
			continue
		}

		s.lastSent[*u.TelegramID] = today
	}
}
