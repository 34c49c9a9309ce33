package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joshhsoj1902/achievement-hunter/internal/achievements"
	"github.com/joshhsoj1902/achievement-hunter/internal/logger"
	"github.com/joshhsoj1902/achievement-hunter/internal/steam"
	"github.com/sirupsen/logrus"
)

type Handlers struct {
	service AchievementService
}

func NewHandlers(service AchievementService) *Handlers {
	return &Handlers{
		service: service,
	}
}

type gameResponse struct {
	AppID      uint32    `json:"app_id"`
	Name       string    `json:"name"`
	LastPlayed time.Time `json:"last_played"`
}

type achievementsResponse struct {
	AppID        uint32                     `json:"app_id"`
	Achievements []achievements.Achievement `json:"achievements"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// HandleGames handles /games
func (h *Handlers) HandleGames(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	games, err := h.service.ListGames(r.Context())
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"request_id": middleware.GetReqID(r.Context()),
			"error":      err.Error(),
			"duration":   time.Since(start),
		}).Error("Failed to list games")
		writeError(w, statusFor(err), err)
		return
	}

	resp := make([]gameResponse, 0, len(games))
	for _, g := range games {
		resp = append(resp, gameResponse{AppID: g.ID, Name: g.Name, LastPlayed: g.LastPlayed})
	}

	logger.Log.WithFields(logrus.Fields{
		"request_id": middleware.GetReqID(r.Context()),
		"game_count": len(resp),
		"duration":   time.Since(start),
	}).Info("Served owned games")
	writeJSON(w, http.StatusOK, resp)
}

// HandleAchievements handles /games/{app_id}/achievements
func (h *Handlers) HandleAchievements(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rawID := chi.URLParam(r, "app_id")

	appID, err := strconv.ParseUint(rawID, 10, 32)
	if err != nil {
		logger.Log.WithField("app_id", rawID).Warn("Invalid app_id in achievements request")
		writeError(w, http.StatusBadRequest, fmt.Errorf("app_id must be a number, got %q", rawID))
		return
	}

	games, err := h.service.ListGames(r.Context())
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"request_id": middleware.GetReqID(r.Context()),
			"app_id":     appID,
			"error":      err.Error(),
		}).Error("Failed to list games")
		writeError(w, statusFor(err), err)
		return
	}

	idx := slices.IndexFunc(games, func(g steam.UserGame) bool { return g.ID == uint32(appID) })
	if idx < 0 {
		writeError(w, http.StatusNotFound, fmt.Errorf("app %d is not in the user's library", appID))
		return
	}

	merged, err := h.service.ForGame(r.Context(), games[idx])
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"request_id": middleware.GetReqID(r.Context()),
			"app_id":     appID,
			"error":      err.Error(),
			"duration":   time.Since(start),
		}).Error("Failed to get achievements")
		writeError(w, statusFor(err), err)
		return
	}

	logger.Log.WithFields(logrus.Fields{
		"request_id": middleware.GetReqID(r.Context()),
		"app_id":     appID,
		"count":      len(merged),
		"duration":   time.Since(start),
	}).Info("Served achievements")
	writeJSON(w, http.StatusOK, achievementsResponse{AppID: uint32(appID), Achievements: merged})
}

// HandleMetrics handles /metrics
func (h *Handlers) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	MetricsHandler().ServeHTTP(w, r)
}

// HandleRoot serves a simple front page
func (h *Handlers) HandleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(`<html>
<head><title>Achievement Hunter</title></head>
<body>
	<h1>Achievement Hunter</h1>
	<p>Steam achievements for the configured user</p>
	<h2>Endpoints:</h2>
	<ul>
		<li><a href="/games">/games</a> - Owned games</li>
		<li>/games/{app_id}/achievements - Merged achievements of one game</li>
		<li><a href="/metrics">/metrics</a> - Application metrics</li>
	</ul>
</body>
</html>`))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, steam.ErrRequest),
		errors.Is(err, steam.ErrDecode),
		errors.Is(err, achievements.ErrSizeMismatch),
		errors.Is(err, achievements.ErrUnmatchedAchievement):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.WithError(err).Error("Failed to write JSON response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
