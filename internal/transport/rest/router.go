package rest

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/linguatrack/backend/internal/config"
	"github.com/linguatrack/backend/internal/transport/middleware"
)

// TokenValidator checks access tokens for the auth middleware.
type TokenValidator interface {
	ValidateAccessToken(token string) (uuid.UUID, error)
}

// Handlers bundles everything the router mounts.
type Handlers struct {
	Health     *HealthHandler
	Auth       *AuthHandler
	Cards      *CardHandler
	Review     *ReviewHandler
	Assessment *AssessmentHandler
	Stats      *StatsHandler
}

// NewRouter mounts all routes and wraps them with the standard middleware
// stack. Authentication is resolved by the middleware; handlers that need
// a user answer 401 through the service layer when none is present.
func NewRouter(h Handlers, tokens TokenValidator, cors config.CORSConfig, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("GET /api/auth/me", h.Auth.Me)
	mux.HandleFunc("POST /api/auth/telegram", h.Auth.LinkTelegram)
	mux.HandleFunc("DELETE /api/auth/telegram", h.Auth.UnlinkTelegram)

	mux.HandleFunc("POST /api/cards", h.Cards.Create)
	mux.HandleFunc("GET /api/cards", h.Cards.List)
	mux.HandleFunc("GET /api/cards/levels", h.Cards.Levels)
	mux.HandleFunc("GET /api/cards/{id}", h.Cards.Get)
	mux.HandleFunc("PATCH /api/cards/{id}", h.Cards.Update)
	mux.HandleFunc("DELETE /api/cards/{id}", h.Cards.Delete)

	mux.HandleFunc("GET /api/review/due", h.Review.Due)
	mux.HandleFunc("GET /api/review/due/count", h.Review.Count)
	mux.HandleFunc("POST /api/review", h.Review.Submit)

	mux.HandleFunc("POST /api/tests", h.Assessment.Start)
	mux.HandleFunc("GET /api/tests/current", h.Assessment.Current)
	mux.HandleFunc("POST /api/tests/answer", h.Assessment.Submit)
	mux.HandleFunc("DELETE /api/tests/current", h.Assessment.Cancel)

	mux.HandleFunc("GET /api/stats/overview", h.Stats.Overview)
	mux.HandleFunc("GET /api/stats/history", h.Stats.History)
	mux.HandleFunc("GET /api/stats/modes", h.Stats.Modes)
	mux.HandleFunc("GET /api/stats/weak", h.Stats.Weak)

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cors),
		middleware.Auth(tokens),
	)

	return chain(mux)
}
