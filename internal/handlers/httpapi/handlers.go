package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/KirkDiggler/hotdice/internal/models"
	"github.com/KirkDiggler/hotdice/internal/repositories/game_record"
	"github.com/KirkDiggler/hotdice/internal/repositories/user"
	"github.com/KirkDiggler/hotdice/internal/services/room"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxRecentGames caps the limit query parameter of /games/recent
const maxRecentGames = 50

// StatsResponse is the body of /stats
type StatsResponse struct {
	room.Stats
	Users int64 `json:"users"`
}

// RecentGamesResponse is the body of /games/recent
type RecentGamesResponse struct {
	Games []*models.GameRecord `json:"games"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (h *handlers) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.hub.Stats(r.Context())
	if err != nil {
		h.logger.Error("failed to read registry stats", zap.Error(err))
		h.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "hub unavailable"})
		return
	}

	out, err := h.userRepo.CountUsers(r.Context(), &user.CountUsersInput{})
	if err != nil {
		h.logger.Error("failed to count users", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to count users"})
		return
	}

	h.writeJSON(w, http.StatusOK, StatsResponse{Stats: stats, Users: out.Count})
}

func (h *handlers) RecentGames(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = min(n, maxRecentGames)
	}

	out, err := h.gameRecordRepo.GetRecentGameRecords(r.Context(), &game_record.GetRecentGameRecordsInput{Limit: limit})
	if err != nil {
		h.logger.Error("failed to list recent games", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to list games"})
		return
	}

	games := out.GameRecords
	if games == nil {
		games = []*models.GameRecord{}
	}
	h.writeJSON(w, http.StatusOK, RecentGamesResponse{Games: games})
}

func (h *handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	record, err := h.gameRecordRepo.GetGameRecord(r.Context(), &game_record.GetGameRecordInput{
		GameRecordID: chi.URLParam(r, "gameRecordID"),
	})
	if errors.Is(err, game_record.ErrGameRecordNotFound) {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "game not found"})
		return
	}
	if err != nil {
		h.logger.Error("failed to get game", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to get game"})
		return
	}

	h.writeJSON(w, http.StatusOK, record)
}

func (h *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Debug("failed to write response", zap.Error(err))
	}
}
