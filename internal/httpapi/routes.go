package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/guardsofatlantis/companion-backend/internal/heroes"
	"github.com/guardsofatlantis/companion-backend/internal/hub"
	"github.com/guardsofatlantis/companion-backend/internal/store"
	"github.com/guardsofatlantis/companion-backend/internal/ws"
)

func SetupRoutes(h *hub.Hub, catalog *heroes.Catalog, s *store.Store, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Post("/sessions", CreateSession(h, log))
	r.Get("/healthz", Healthz)
	r.Get("/ws", ws.Handler(h))
	r.Get("/expansions", ListExpansions(catalog))
	r.Get("/heroes", ListHeroes(catalog))
	r.Get("/matches", ListMatches(s))
	r.Get("/stats/heroes", HeroStats(s))
	return r
}
