// Package api serves a read-only HTTP leaderboard over the run log.
package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

const maxLimit = 100

// ScoreSource is the part of the run log the API reads.
type ScoreSource interface {
	TopScores(gameID string, limit int) ([]storage.Run, error)
	RecentRuns(gameID string, limit int) ([]storage.Run, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

// RunView is the JSON form of a run.
type RunView struct {
	ID         string    `json:"id"`
	Player     string    `json:"player,omitempty"`
	Score      int       `json:"score"`
	DistancePx float64   `json:"distance_px"`
	DurationMs int64     `json:"duration_ms"`
	PlayCount  int       `json:"play_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// StatsView is the JSON form of a game's aggregate statistics.
type StatsView struct {
	Game          string    `json:"game"`
	Runs          int       `json:"runs"`
	HighScore     int       `json:"high_score"`
	AvgScore      float64   `json:"avg_score"`
	TotalDistance float64   `json:"total_distance_px"`
	LongestRunMs  int64     `json:"longest_run_ms"`
	LastPlayed    time.Time `json:"last_played,omitzero"`
}

type listResponse[T any] struct {
	Game  string `json:"game"`
	Items []T    `json:"items"`
}

// Handler serves the leaderboard routes.
type Handler struct {
	src    ScoreSource
	logger *log.Logger
}

// NewRouter builds the API router with middlewares and routes.
func NewRouter(src ScoreSource, logger *log.Logger) chi.Router {
	h := &Handler{src: src, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Route("/v1", func(sub chi.Router) {
		sub.Get("/games", h.listGames)
		sub.Get("/scores/{game}", h.topScores)
		sub.Get("/runs/{game}", h.recentRuns)
		sub.Get("/stats/{game}", h.stats)
	})

	return r
}

// requestLogger logs one line per request through the shared logger.
func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		if h.logger != nil {
			h.logger.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"took", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		}
	})
}

func (h *Handler) listGames(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, registry.List())
}

// gameParam returns the registered game named in the path, or writes a 404.
func gameParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "game")
	if !registry.Exists(id) {
		errorJSON(w, http.StatusNotFound, "unknown game "+strconv.Quote(id))
		return "", false
	}
	return id, true
}

// limitParam parses ?limit=, falling back to def and capping at maxLimit.
func limitParam(r *http.Request, def int) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return min(n, maxLimit), true
}

func (h *Handler) topScores(w http.ResponseWriter, r *http.Request) {
	h.listRuns(w, r, 10, h.src.TopScores)
}

func (h *Handler) recentRuns(w http.ResponseWriter, r *http.Request) {
	h.listRuns(w, r, 20, h.src.RecentRuns)
}

func (h *Handler) listRuns(w http.ResponseWriter, r *http.Request, def int, query func(string, int) ([]storage.Run, error)) {
	game, ok := gameParam(w, r)
	if !ok {
		return
	}
	limit, ok := limitParam(r, def)
	if !ok {
		errorJSON(w, http.StatusBadRequest, "limit must be a positive integer")
		return
	}

	runs, err := query(game, limit)
	if err != nil {
		h.internalError(w, err)
		return
	}

	items := make([]RunView, 0, len(runs))
	for _, run := range runs {
		items = append(items, RunView{
			ID:         run.ID,
			Player:     run.Player,
			Score:      run.Score,
			DistancePx: run.DistancePx,
			DurationMs: run.Duration.Milliseconds(),
			PlayCount:  run.PlayCount,
			CreatedAt:  run.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, listResponse[RunView]{Game: game, Items: items})
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	game, ok := gameParam(w, r)
	if !ok {
		return
	}
	st, err := h.src.GetGameStats(game)
	if err != nil {
		h.internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, StatsView{
		Game:          st.GameID,
		Runs:          st.GamesCount,
		HighScore:     st.HighScore,
		AvgScore:      st.AvgScore,
		TotalDistance: st.TotalDistance,
		LongestRunMs:  st.LongestRun.Milliseconds(),
		LastPlayed:    st.LastPlayed,
	})
}

func (h *Handler) internalError(w http.ResponseWriter, err error) {
	if h.logger != nil {
		h.logger.Error("api query failed", "err", err)
	}
	errorJSON(w, http.StatusInternalServerError, "internal error")
}
