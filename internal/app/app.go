package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/linguatrack/backend/internal/adapter/postgres"
	cardrepo "github.com/linguatrack/backend/internal/adapter/postgres/card"
	repetitionrepo "github.com/linguatrack/backend/internal/adapter/postgres/repetition"
	testresultrepo "github.com/linguatrack/backend/internal/adapter/postgres/testresult"
	userrepo "github.com/linguatrack/backend/internal/adapter/postgres/user"
	jwtauth "github.com/linguatrack/backend/internal/auth"
	"github.com/linguatrack/backend/internal/bot"
	"github.com/linguatrack/backend/internal/config"
	"github.com/linguatrack/backend/internal/service/assessment"
	authservice "github.com/linguatrack/backend/internal/service/auth"
	"github.com/linguatrack/backend/internal/service/review"
	"github.com/linguatrack/backend/internal/service/stats"
	"github.com/linguatrack/backend/internal/service/vocab"
	"github.com/linguatrack/backend/internal/transport/rest"
)

// RunServer wires the full HTTP stack and serves until ctx is cancelled,
// then drains within the configured shutdown timeout.
func RunServer(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	cards := cardrepo.New(pool)
	reps := repetitionrepo.New(pool)
	results := testresultrepo.New(pool)
	users := userrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	jwt := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	sessions := assessment.NewStore(cfg.Assessment.SessionTTL)

	vocabSvc := vocab.NewService(logger, cards, reps, tx)
	reviewSvc := review.NewService(logger, cards, reps, tx)
	assessmentSvc := assessment.NewService(logger, cards, results, sessions, assessment.Config{
		QuestionCount:  cfg.Assessment.QuestionCount,
		MaxDistractors: cfg.Assessment.MaxDistractors,
	})
	statsSvc := stats.NewService(logger, cards, reps, results)
	authSvc := authservice.NewService(logger, users, jwt, cfg.Auth)

	handlers := rest.Handlers{
		Health:     rest.NewHealthHandler(pool, BuildVersion()),
		Auth:       rest.NewAuthHandler(authSvc, logger),
		Cards:      rest.NewCardHandler(vocabSvc, logger),
		Review:     rest.NewReviewHandler(reviewSvc, logger),
		Assessment: rest.NewAssessmentHandler(assessmentSvc, logger),
		Stats:      rest.NewStatsHandler(statsSvc, logger),
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      rest.NewRouter(handlers, jwt, cfg.CORS, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	logger.Info("shutting down http server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

// RunBot wires the Telegram bot plus its reminder scheduler and polls
// until ctx is cancelled. An empty token is a configuration error here;
// callers decide whether a bot should run at all.
func RunBot(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if cfg.Bot.Token == "" {
		return errors.New("bot token is not configured")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	cards := cardrepo.New(pool)
	reps := repetitionrepo.New(pool)
	results := testresultrepo.New(pool)
	users := userrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	jwt := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	sessions := assessment.NewStore(cfg.Assessment.SessionTTL)

	reviewSvc := review.NewService(logger, cards, reps, tx)
	assessmentSvc := assessment.NewService(logger, cards, results, sessions, assessment.Config{
		QuestionCount:  cfg.Assessment.QuestionCount,
		MaxDistractors: cfg.Assessment.MaxDistractors,
	})
	authSvc := authservice.NewService(logger, users, jwt, cfg.Auth)

	b, err := bot.New(cfg.Bot, authSvc, reviewSvc, assessmentSvc, logger)
	if err != nil {
		return fmt.Errorf("create bot: %w", err)
	}

	reminders := bot.NewReminderScheduler(cfg.Bot, users, reviewSvc, b.API(), logger)
	if err := reminders.Start(ctx); err != nil {
		return fmt.Errorf("start reminder scheduler: %w", err)
	}
	defer reminders.Stop()

	if err := b.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("bot: %w", err)
	}
	return nil
}
