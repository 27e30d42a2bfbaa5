package httpapi

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/trivio-games/trivio-backend/internal/engine"
	"github.com/trivio-games/trivio-backend/internal/hub"
	"github.com/trivio-games/trivio-backend/internal/lobby"
	"github.com/trivio-games/trivio-backend/internal/store"
)

// SetStore is the slice of the persistence layer the API needs for reading
// trivia sets.
type SetStore interface {
	GetSet(ctx context.Context, id uint) (*store.TriviaSet, error)
	ListSets(ctx context.Context) ([]store.TriviaSet, error)
}

// SummaryStore reads back persisted match results.
type SummaryStore interface {
	RecentSummaries(ctx context.Context, limit int) ([]store.MatchSummary, error)
}

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

type teamSpec struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Members []string `json:"members"`
	Color   string   `json:"color"`
}

type createLobbyRequest struct {
	SetID uint       `json:"set_id"`
	Teams []teamSpec `json:"teams"`
}

func CreateLobby(h *hub.Hub, sets SetStore, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createLobbyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request body", http.StatusBadRequest)
			return
		}
		if len(req.Teams) == 0 {
			http.Error(w, "at least one team required", http.StatusBadRequest)
			return
		}

		set, err := sets.GetSet(r.Context(), req.SetID)
		if errors.Is(err, store.ErrSetNotFound) {
			http.Error(w, "set not found", http.StatusNotFound)
			return
		}
		if err != nil {
			logger.Error("loading set", zap.Uint("set_id", req.SetID), zap.Error(err))
			http.Error(w, "failed to load set", http.StatusInternalServerError)
			return
		}

		match, err := engine.NewMatch(store.MatchConfig(set, time.Now().UnixNano()))
		if err != nil {
			http.Error(w, "set has no playable board", http.StatusUnprocessableEntity)
			return
		}
		for _, t := range req.Teams {
			if _, err := match.Ledger.AddTeam(t.ID, t.Name, t.Members, t.Color); err != nil {
				http.Error(w, "duplicate team id", http.StatusBadRequest)
				return
			}
		}
		_ = match.Ledger.SetSelected(0)

		var code string
		for {
			c, err := GenerateCode()
			if err != nil {
				http.Error(w, "failed to generate code", http.StatusInternalServerError)
				return
			}
			reply := make(chan *lobby.Lobby, 1)
			h.Inbox() <- hub.GetLobby{Code: c, Reply: reply}
			if <-reply == nil {
				code = c
				break
			}
			logger.Debug("collision on code, regenerating")
		}

		reply := make(chan *lobby.Lobby, 1)
		h.Inbox() <- hub.EnsureLobby{Code: code, Match: match, Content: store.Content(set), Reply: reply}
		if <-reply == nil {
			http.Error(w, "failed to create lobby", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(struct {
			Code string `json:"code"`
		}{Code: code})
	}
}

func ListSets(sets SetStore, logger *zap.Logger) http.HandlerFunc {
	type setInfo struct {
		ID           uint   `json:"id"`
		Title        string `json:"title"`
		HasTwoRounds bool   `json:"has_two_rounds"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := sets.ListSets(r.Context())
		if err != nil {
			logger.Error("listing sets", zap.Error(err))
			http.Error(w, "failed to list sets", http.StatusInternalServerError)
			return
		}
		out := make([]setInfo, 0, len(all))
		for _, s := range all {
			out = append(out, setInfo{ID: s.ID, Title: s.Title, HasTwoRounds: s.HasTwoRounds})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out)
	}
}

func ListSummaries(sums SummaryStore, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 20
		if q := r.URL.Query().Get("limit"); q != "" {
			if n, err := strconv.Atoi(q); err == nil && n > 0 && n <= 100 {
				limit = n
			}
		}
		recent, err := sums.RecentSummaries(r.Context(), limit)
		if err != nil {
			logger.Error("listing summaries", zap.Error(err))
			http.Error(w, "failed to list summaries", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(recent)
	}
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
