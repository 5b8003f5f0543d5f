package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/hotdice/internal/repositories/game_record"
	"github.com/bwmarrin/discordgo"
)

const (
	defaultRecentCount = 5
	maxRecentCount     = 20
	commandTimeout     = 5 * time.Second
)

// HotdiceCommand handles the /hotdice command
type HotdiceCommand struct {
	BaseCommand
	records game_record.Repository
}

// NewHotdiceCommand creates a new hotdice command handler
func NewHotdiceCommand(records game_record.Repository) *HotdiceCommand {
	return &HotdiceCommand{
		BaseCommand: BaseCommand{
			Name:        "hotdice",
			Description: "Hot dice game results",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "recent",
					Description: "Show recently finished games",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "count",
							Description: "How many games to show",
							Required:    false,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "game",
					Description: "Show one game",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "id",
							Description: "Game ID",
							Required:    true,
						},
					},
				},
			},
		},
		records: records,
	}
}

// Handle processes a Discord interaction for the hotdice command
func (c *HotdiceCommand) Handle(s Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}
	if len(data.Options) == 0 {
		return RespondWithError(s, i, "Pick a subcommand")
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	sub := data.Options[0]
	switch sub.Name {
	case "recent":
		return c.handleRecent(ctx, s, i, sub.Options)
	case "game":
		return c.handleGame(ctx, s, i, sub.Options)
	default:
		return RespondWithError(s, i, "Unknown subcommand")
	}
}

func (c *HotdiceCommand) handleRecent(ctx context.Context, s Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	count := defaultRecentCount
	for _, opt := range options {
		if opt.Name == "count" {
			count = int(opt.IntValue())
		}
	}
	count = max(1, min(count, maxRecentCount))

	out, err := c.records.GetRecentGameRecords(ctx, &game_record.GetRecentGameRecordsInput{Limit: count})
	if err != nil {
		if respErr := RespondWithError(s, i, "Couldn't load recent games"); respErr != nil {
			return respErr
		}
		return fmt.Errorf("failed to get recent games: %w", err)
	}

	return RespondWithEmbed(s, i, renderRecentGames(out.GameRecords))
}

func (c *HotdiceCommand) handleGame(ctx context.Context, s Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	var id string
	for _, opt := range options {
		if opt.Name == "id" {
			id = opt.StringValue()
		}
	}
	if id == "" {
		return RespondWithError(s, i, "A game ID is required")
	}

	record, err := c.records.GetGameRecord(ctx, &game_record.GetGameRecordInput{GameRecordID: id})
	if errors.Is(err, game_record.ErrGameRecordNotFound) {
		return RespondWithError(s, i, fmt.Sprintf("No game with ID %s", id))
	}
	if err != nil {
		if respErr := RespondWithError(s, i, "Couldn't load that game"); respErr != nil {
			return respErr
		}
		return fmt.Errorf("failed to get game %s: %w", id, err)
	}

	return RespondWithEmbed(s, i, renderGameRecord(record))
}
