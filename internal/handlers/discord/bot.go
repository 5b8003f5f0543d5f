// Package discord posts finished games to a Discord channel and answers a
// small /hotdice slash command. It is optional; the server runs without it.
package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/hotdice/internal/repositories/game_record"
	"github.com/KirkDiggler/hotdice/internal/services/messaging"
	"github.com/KirkDiggler/hotdice/internal/services/room"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_session.go github.com/KirkDiggler/hotdice/internal/handlers/discord Session

// Session is the part of *discordgo.Session the bot uses
type Session interface {
	Open() error
	Close() error
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ApplicationCommandCreate(appID string, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error)
	ApplicationCommandDelete(appID string, guildID string, cmdID string, options ...discordgo.RequestOption) error
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

// Bot represents the Discord bot instance
type Bot struct {
	session Session

	// mu guards commands and commandIDs; interactions arrive on discordgo's goroutines
	mu         sync.RWMutex
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	messaging  messaging.Service
	records    game_record.Repository
	logger     *zap.Logger
	config     *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token, used when Session is nil
	Token string

	// Application ID for the bot. Slash commands are only registered when set.
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// ChannelID receives game over announcements
	ChannelID string

	Messaging      messaging.Service
	GameRecordRepo game_record.Repository

	// Logger defaults to a no-op logger
	Logger *zap.Logger

	// Session overrides the session built from Token
	Session Session
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Session == nil && cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}
	if cfg.ChannelID == "" {
		return nil, errors.New("channel ID cannot be empty")
	}
	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}
	if cfg.GameRecordRepo == nil {
		return nil, errors.New("game record repository cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	bot := &Bot{
		session:    cfg.Session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		messaging:  cfg.Messaging,
		records:    cfg.GameRecordRepo,
		logger:     logger,
		config:     cfg,
	}

	if bot.session == nil {
		session, err := discordgo.New("Bot " + cfg.Token)
		if err != nil {
			return nil, fmt.Errorf("failed to create Discord session: %w", err)
		}
		session.AddHandler(bot.handleInteraction)
		bot.session = session
	}

	return bot, nil
}

// Start opens the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if b.config.ApplicationID == "" {
		b.logger.Info("discord bot running without slash commands")
		return nil
	}

	if err := b.RegisterCommand(NewHotdiceCommand(b.records)); err != nil {
		return fmt.Errorf("failed to register hotdice command: %w", err)
	}
	return nil
}

// Stop removes registered commands and closes the connection
func (b *Bot) Stop() error {
	b.mu.Lock()
	registered := b.commandIDs
	b.commands = make(map[string]CommandHandler)
	b.commandIDs = make(map[string]string)
	b.mu.Unlock()

	for cmdName, cmdID := range registered {
		if err := b.session.ApplicationCommandDelete(b.config.ApplicationID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn("failed to delete command",
				zap.String("command", cmdName),
				zap.String("command_id", cmdID),
				zap.Error(err))
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord. An empty GuildID
// registers it globally.
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.config.ApplicationID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.mu.Lock()
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.mu.Unlock()

	b.logger.Info("registered command",
		zap.String("command", cmd.GetName()),
		zap.String("command_id", createdCmd.ID),
		zap.String("guild_id", b.config.GuildID))

	return nil
}

// AnnounceGameOver posts the result of a finished game to the channel
func (b *Bot) AnnounceGameOver(ctx context.Context, input *room.AnnounceGameOverInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	msg, err := b.messaging.GetGameOverMessage(ctx, &messaging.GetGameOverMessageInput{
		WinnerName:   input.WinnerName,
		FinalPlayers: input.FinalPlayers,
		ScoreGoal:    input.ScoreGoal,
	})
	if err != nil {
		return fmt.Errorf("failed to get game over message: %w", err)
	}

	embed := renderGameOver(msg, input)
	if _, err := b.session.ChannelMessageSendEmbed(b.config.ChannelID, embed, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to post game over: %w", err)
	}
	return nil
}

func (b *Bot) handleInteraction(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	b.dispatch(i)
}

// dispatch routes an interaction to its command
func (b *Bot) dispatch(i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	b.mu.RLock()
	h, ok := b.commands[name]
	b.mu.RUnlock()
	if !ok {
		return
	}
	if err := h.Handle(b.session, i); err != nil {
		b.logger.Error("failed to handle command",
			zap.String("command", name),
			zap.Error(err))
	}
}
