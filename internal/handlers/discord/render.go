package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/hotdice/internal/models"
	"github.com/KirkDiggler/hotdice/internal/services/messaging"
	"github.com/KirkDiggler/hotdice/internal/services/room"
	"github.com/bwmarrin/discordgo"
)

const (
	colorWin   = 0xf1c40f
	colorInfo  = 0x3498db
	colorError = 0xff0000
)

func renderGameOver(msg *messaging.GetGameOverMessageOutput, input *room.AnnounceGameOverInput) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Players",
			Value:  fmt.Sprintf("%d", len(input.FinalPlayers)),
			Inline: true,
		},
	}
	if input.ScoreGoal > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Score Goal",
			Value:  fmt.Sprintf("%d", input.ScoreGoal),
			Inline: true,
		})
	}
	if len(msg.Standings) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Final Standings",
			Value: strings.Join(msg.Standings, "\n"),
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:       msg.Title,
		Description: msg.Message,
		Color:       colorWin,
		Fields:      fields,
	}
	if input.GameRecordID != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "Game " + input.GameRecordID}
	}
	return embed
}

func renderRecentGames(records []*models.GameRecord) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "🎲 Recent Games",
		Color: colorInfo,
	}
	if len(records) == 0 {
		embed.Description = "No finished games yet. Go roll some dice!"
		return embed
	}

	var lines []string
	for _, record := range records {
		winner := record.WinnerName
		if winner == "" {
			winner = "Nobody"
		}
		line := fmt.Sprintf("**%s** won a %d player game", winner, len(record.Players))
		if record.EndedAt != nil {
			line += " on " + record.EndedAt.UTC().Format(time.DateOnly)
		}
		lines = append(lines, line+fmt.Sprintf(" (`%s`)", record.ID))
	}
	embed.Description = strings.Join(lines, "\n")
	return embed
}

func renderGameRecord(record *models.GameRecord) *discordgo.MessageEmbed {
	status := "In progress"
	if record.IsFinished() {
		status = "Finished"
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Status",
			Value:  status,
			Inline: true,
		},
		{
			Name:   "Started",
			Value:  record.StartedAt.UTC().Format(time.DateTime),
			Inline: true,
		},
	}
	if record.WinnerName != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Winner",
			Value:  record.WinnerName,
			Inline: true,
		})
	}

	var players strings.Builder
	for _, p := range record.Players {
		if record.IsFinished() {
			fmt.Fprintf(&players, "**%s**: %d\n", p.Name, p.Score)
		} else {
			fmt.Fprintf(&players, "**%s**\n", p.Name)
		}
	}
	if players.Len() > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Players",
			Value: players.String(),
		})
	}

	return &discordgo.MessageEmbed{
		Title:  "Game " + record.ID,
		Color:  colorInfo,
		Fields: fields,
	}
}
