package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/hotdice/internal/common/code"
	"github.com/KirkDiggler/hotdice/internal/common/logger"
	"github.com/KirkDiggler/hotdice/internal/common/uuid"
	"github.com/KirkDiggler/hotdice/internal/config"
	"github.com/KirkDiggler/hotdice/internal/handlers/discord"
	"github.com/KirkDiggler/hotdice/internal/handlers/httpapi"
	"github.com/KirkDiggler/hotdice/internal/handlers/ws"
	"github.com/KirkDiggler/hotdice/internal/repositories/game_record"
	"github.com/KirkDiggler/hotdice/internal/repositories/user"
	"github.com/KirkDiggler/hotdice/internal/services/messaging"
	"github.com/KirkDiggler/hotdice/internal/services/room"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logger.New(cfg.LogLevel, cfg.Development)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	// Initialize repositories
	userRepo, err := user.NewRedis(&user.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("Failed to create user repository", zap.Error(err))
	}

	gameRecordRepo, err := game_record.NewRedis(&game_record.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("Failed to create game record repository", zap.Error(err))
	}

	messagingSvc, err := messaging.NewService(&messaging.Config{
		Seed: cfg.MessageSeed,
	})
	if err != nil {
		logger.Fatal("Failed to create messaging service", zap.Error(err))
	}

	hub, err := ws.NewHub(&ws.Config{
		Messaging:      messagingSvc,
		UUID:           uuid.New(),
		Logger:         logger.Named("ws"),
		SendBuffer:     cfg.SendBuffer,
		AllowedOrigins: cfg.AllowedOrigins,
	})
	if err != nil {
		logger.Fatal("Failed to create websocket hub", zap.Error(err))
	}

	// The Discord announcer is optional
	var announcer room.Announcer
	var bot *discord.Bot
	if cfg.Discord.Enabled() {
		bot, err = discord.New(&discord.Config{
			Token:          cfg.Discord.Token,
			ApplicationID:  cfg.Discord.ApplicationID,
			GuildID:        cfg.Discord.GuildID,
			ChannelID:      cfg.Discord.ChannelID,
			Messaging:      messagingSvc,
			GameRecordRepo: gameRecordRepo,
			Logger:         logger.Named("discord"),
		})
		if err != nil {
			logger.Fatal("Failed to create Discord bot", zap.Error(err))
		}
		if err := bot.Start(); err != nil {
			logger.Fatal("Failed to start Discord bot", zap.Error(err))
		}
		announcer = bot
	}

	registry, err := room.New(&room.Config{
		UserRepo:       userRepo,
		GameRecordRepo: gameRecordRepo,
		Notifier:       hub,
		Announcer:      announcer,
		UUID:           uuid.New(),
		CodeGenerator:  code.New(),
		Logger:         logger.Named("room"),
		PersistTimeout: cfg.PersistTimeout,
	})
	if err != nil {
		logger.Fatal("Failed to create room registry", zap.Error(err))
	}

	router, err := httpapi.NewRouter(&httpapi.Config{
		Hub:            hub,
		UserRepo:       userRepo,
		GameRecordRepo: gameRecordRepo,
		Logger:         logger.Named("http"),
	})
	if err != nil {
		logger.Fatal("Failed to create router", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hubDone := make(chan struct{})
	go func() {
		defer close(hubDone)
		hub.Run(ctx, registry)
	}()

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server listening", zap.String("addr", cfg.ListenAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	// hijacked websocket connections are not closed by Shutdown; the hub
	// closes their queues when ctx is done
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("Server shutdown incomplete", zap.Error(err))
	}
	<-hubDone

	if bot != nil {
		if err := bot.Stop(); err != nil {
			logger.Warn("Error stopping Discord bot", zap.Error(err))
		}
	}

	logger.Info("Server has been shut down")
}
