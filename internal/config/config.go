// Package config reads the server's settings from the environment, after
// loading an optional .env file
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting of the server process
type Config struct {
	ListenAddr      string        `env:"LISTEN_ADDR"      envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	RedisAddr     string `env:"REDIS_ADDR"     envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"       envDefault:"0"`

	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Development bool   `env:"DEV_MODE"`

	// PersistTimeout bounds each game record write and announcement
	PersistTimeout time.Duration `env:"PERSIST_TIMEOUT" envDefault:"2s"`

	// SendBuffer is the per-connection outbound queue length
	SendBuffer     int      `env:"WS_SEND_BUFFER"  envDefault:"64"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// MessageSeed fixes the choice of friendly messages, random when zero
	MessageSeed int64 `env:"MESSAGE_SEED"`

	Discord Discord `envPrefix:"DISCORD_"`
}

// Discord configures the optional result announcer
type Discord struct {
	Token         string `env:"TOKEN"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`
	ChannelID     string `env:"CHANNEL_ID"`
}

// Enabled reports whether game results should be posted to Discord
func (d Discord) Enabled() bool {
	return d.Token != ""
}

// Load reads the given env files, or .env when none are named, and then
// parses the environment. Missing files are skipped and variables already
// set in the environment win over file values.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that parse but make no sense
func (c *Config) Validate() error {
	switch {
	case c.ListenAddr == "":
		return errors.New("LISTEN_ADDR cannot be empty")
	case c.RedisAddr == "":
		return errors.New("REDIS_ADDR cannot be empty")
	case c.RedisDB < 0:
		return errors.New("REDIS_DB cannot be negative")
	case c.PersistTimeout <= 0:
		return errors.New("PERSIST_TIMEOUT must be positive")
	case c.SendBuffer <= 0:
		return errors.New("WS_SEND_BUFFER must be positive")
	case c.Discord.Enabled() && c.Discord.ChannelID == "":
		return errors.New("DISCORD_CHANNEL_ID is required when DISCORD_TOKEN is set")
	}
	return nil
}
