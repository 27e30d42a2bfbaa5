package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/trivio-games/trivio-backend/internal/hub"
	"github.com/trivio-games/trivio-backend/internal/ws"
)

// Stores bundles the persistence interfaces the routes need.
type Stores interface {
	SetStore
	SummaryStore
}

func SetupRoutes(h *hub.Hub, stores Stores, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// Public routes
	r.Post("/lobbies", CreateLobby(h, stores, logger))
	r.Get("/sets", ListSets(stores, logger))
	r.Get("/summaries", ListSummaries(stores, logger))
	r.Get("/healthz", Healthz)
	r.Get("/ws", ws.Handler(h, logger))
	return r
}
