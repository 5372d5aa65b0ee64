// Package mod provides the moderation commands, organized as subcommands
// under /mod. Every sanction and reversal goes through the case ledger.
package mod

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/WardenLabs/WardenGo/pkg/database"
	"github.com/WardenLabs/WardenGo/pkg/discord"
	"github.com/WardenLabs/WardenGo/pkg/logger"
	"github.com/WardenLabs/WardenGo/pkg/models"
	"github.com/WardenLabs/WardenGo/pkg/mqtt"
)

const (
	colorSanction = 0xE74C3C
	colorReversal = 0x2ECC71
	colorNeutral  = 0x3498DB
)

// emoji per case type for embeds and log lines
var typeEmoji = map[models.CaseType]string{
	models.CaseTypeBan:        "🔨",
	models.CaseTypeUnban:      "🔓",
	models.CaseTypeMute:       "🔇",
	models.CaseTypeUnmute:     "🔊",
	models.CaseTypeKick:       "👢",
	models.CaseTypeWarn:       "⚠️",
	models.CaseTypeChannelBan: "🚷",
}

// formatDuration renders a sanction duration for display
func formatDuration(m models.Modlog) string {
	if m.Permanent() {
		return "Permanent"
	}
	return (time.Duration(m.Duration) * time.Second).String()
}

// notifyUser DMs the sanction notice to the subject. Returns whether the
// notice was delivered; delivery failure never fails the sanction.
func notifyUser(ctx *discord.CommandContext, userID string, m models.Modlog) bool {
	meta := database.Meta().Current()

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s You received a %s", typeEmoji[m.Type], m.Type),
		Description: fmt.Sprintf("**Reason:** %s", m.Reason),
		Color:       colorSanction,
		Timestamp:   time.Now().Format(time.RFC3339),
	}
	if m.Type.Enduring() {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Duration",
			Value: formatDuration(m),
		})
	}
	if meta.AppealURL != "" && m.Type == models.CaseTypeBan {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Appeal",
			Value: meta.AppealURL,
		})
	}

	if err := ctx.Client.SendDM(userID, embed); err != nil {
		logger.Debug(fmt.Sprintf("Could not DM %s: %v", userID, err), "Mod")
		return false
	}
	return true
}

// recordCase persists the case, emits the audit event and mirrors it to
// the logging channel. The stored snapshot is returned.
func recordCase(ctx *discord.CommandContext, m models.Modlog) (*models.Modlog, error) {
	stored, err := database.Modlogs().CreateCase(context.Background(), m)
	if err != nil {
		return nil, err
	}

	mqtt.NotifyCaseCreated(*stored)
	logToChannel(ctx, caseEmbed(*stored, colorSanction))
	return stored, nil
}

// logToChannel posts an embed to the configured logging channel, if any
func logToChannel(ctx *discord.CommandContext, embed *discordgo.MessageEmbed) {
	meta := database.Meta().Current()
	if meta.LoggingChannelID == "" {
		return
	}
	if _, err := ctx.Session.ChannelMessageSendEmbed(meta.LoggingChannelID, embed); err != nil {
		logger.Warn(fmt.Sprintf("Could not post to logging channel: %v", err), "Mod")
	}
}

// caseEmbed renders a case for the logging channel and the case commands
func caseEmbed(m models.Modlog, color int) *discordgo.MessageEmbed {
	received := "No"
	if m.Received {
		received = "Yes"
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s Case #%d | %s", typeEmoji[m.Type], m.CaseID, m.Type),
		Color: color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "User", Value: fmt.Sprintf("<@%s> (%s)", m.UserID, m.UserID), Inline: true},
			{Name: "Moderator", Value: fmt.Sprintf("<@%s>", m.ModID), Inline: true},
			{Name: "Reason", Value: m.Reason},
		},
		Timestamp: m.CreatedAt().Format(time.RFC3339),
	}

	if m.Type.Enduring() {
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{Name: "Duration", Value: formatDuration(m), Inline: true},
			&discordgo.MessageEmbedField{Name: "Status", Value: string(m.Status), Inline: true},
		)
	}
	if m.ChannelID != "" {
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{Name: "Channel", Value: fmt.Sprintf("<#%s>", m.ChannelID), Inline: true})
	}
	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{Name: "Notified", Value: received, Inline: true})

	return embed
}

// confirmSanction is the invoker-facing success message
func confirmSanction(ctx *discord.CommandContext, m models.Modlog, username string) error {
	msg := fmt.Sprintf("%s **%s** | Case #%d | %s\n**Reason:** %s",
		typeEmoji[m.Type], username, m.CaseID, m.Type, m.Reason)
	if m.Type.Enduring() {
		msg += fmt.Sprintf("\n**Duration:** %s", formatDuration(m))
	}
	return ctx.Reply(msg)
}
