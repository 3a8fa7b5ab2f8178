package httpapi

import (
	"crypto/rand"
	"encoding/json"
	"math/big"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/guardsofatlantis/companion-backend/internal/heroes"
	"github.com/guardsofatlantis/companion-backend/internal/hub"
	"github.com/guardsofatlantis/companion-backend/internal/lobby"
	"github.com/guardsofatlantis/companion-backend/internal/store"
)

func GenerateCode() (string, error) {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	code := make([]byte, 6)
	for i := 0; i < 6; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		code[i] = charset[num.Int64()]
	}
	return string(code), nil
}

func CreateSession(h *hub.Hub, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var code string
		for {
			c, err := GenerateCode()
			if err != nil {
				http.Error(w, "failed to generate code", http.StatusInternalServerError)
				return
			}
			reply := make(chan *lobby.Lobby, 1)
			h.Inbox() <- hub.GetSession{Code: c, Reply: reply}
			if <-reply == nil {
				code = c
				break
			}
			log.Debug("session code collision, regenerating", zap.String("code", c))
		}

		reply := make(chan *lobby.Lobby, 1)
		h.Inbox() <- hub.EnsureSession{Code: code, Reply: reply}
		if <-reply == nil {
			http.Error(w, "failed to create session", http.StatusInternalServerError)
			return
		}

		log.Info("session created", zap.String("code", code))
		writeJSON(w, http.StatusCreated, struct {
			Code string `json:"code"`
		}{Code: code})
	}
}

func ListExpansions(catalog *heroes.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, catalog.AllExpansions())
	}
}

// ListHeroes serves the catalog, optionally narrowed with
// ?expansions=Base,Wave One.
func ListHeroes(catalog *heroes.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var expansions []string
		if raw := r.URL.Query().Get("expansions"); raw != "" {
			expansions = strings.Split(raw, ",")
		}
		writeJSON(w, http.StatusOK, catalog.FilterByExpansions(expansions))
	}
}

func ListMatches(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s == nil {
			http.Error(w, "match history storage is not configured", http.StatusServiceUnavailable)
			return
		}
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		matches, err := s.RecentMatches(r.Context(), limit)
		if err != nil {
			http.Error(w, "failed to load matches", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, matches)
	}
}

func HeroStats(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s == nil {
			http.Error(w, "match history storage is not configured", http.StatusServiceUnavailable)
			return
		}
		rows, err := s.HeroSummary(r.Context())
		if err != nil {
			http.Error(w, "failed to load hero stats", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, rows)
	}
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
