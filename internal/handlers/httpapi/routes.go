// Package httpapi mounts the websocket endpoint and a few read-only JSON
// routes on a chi router
package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/KirkDiggler/hotdice/internal/repositories/game_record"
	"github.com/KirkDiggler/hotdice/internal/repositories/user"
	"github.com/KirkDiggler/hotdice/internal/services/room"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_hub.go github.com/KirkDiggler/hotdice/internal/handlers/httpapi Hub

// Hub is the websocket side of the server
type Hub interface {
	ServeWS(w http.ResponseWriter, r *http.Request)
	Stats(ctx context.Context) (room.Stats, error)
}

// Config holds what the routes read from
type Config struct {
	Hub            Hub
	UserRepo       user.Repository
	GameRecordRepo game_record.Repository

	// Logger defaults to a no-op logger
	Logger *zap.Logger
}

type handlers struct {
	hub            Hub
	userRepo       user.Repository
	gameRecordRepo game_record.Repository
	logger         *zap.Logger
}

// NewRouter builds the server's routes
func NewRouter(cfg *Config) (http.Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Hub == nil {
		return nil, errors.New("hub cannot be nil")
	}
	if cfg.UserRepo == nil {
		return nil, errors.New("user repository cannot be nil")
	}
	if cfg.GameRecordRepo == nil {
		return nil, errors.New("game record repository cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	h := &handlers{
		hub:            cfg.Hub,
		userRepo:       cfg.UserRepo,
		gameRecordRepo: cfg.GameRecordRepo,
		logger:         logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", Healthz)
	r.Get("/ws", cfg.Hub.ServeWS)
	r.Get("/stats", h.Stats)
	r.Get("/games/recent", h.RecentGames)
	r.Get("/games/{gameRecordID}", h.GetGame)

	return r, nil
}
