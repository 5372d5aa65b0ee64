package meta

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/WardenLabs/WardenGo/pkg/clearance"
	"github.com/WardenLabs/WardenGo/pkg/database"
	"github.com/WardenLabs/WardenGo/pkg/discord"
	"github.com/WardenLabs/WardenGo/pkg/models"
)

func createShowCommand() *discord.Command {
	return discord.NewCommand(
		"show",
		"Show the current guild configuration",
		"meta",
		showHandler,
	).WithClearance(clearance.LevelAdmin)
}

func showHandler(ctx *discord.CommandContext) error {
	meta := database.Meta().Current()

	embed := &discordgo.MessageEmbed{
		Title: "⚙️ Guild Configuration",
		Color: 0x3498DB,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Tier roles", Value: tierSummary(meta)},
			{Name: "Channels", Value: channelSummary(meta)},
			{Name: "Texts", Value: textSummary(meta)},
			{Name: "Domain lists", Value: domainSummary(meta)},
		},
	}

	return ctx.ReplyEphemeralEmbed(embed)
}

func mention(prefix, id string) string {
	if id == "" {
		return "unset"
	}
	return fmt.Sprintf("<%s%s>", prefix, id)
}

func tierSummary(meta models.Metadata) string {
	lines := []string{
		"admin: " + mention("@&", meta.AdminRoleID),
		"bot: " + mention("@&", meta.BotRoleID),
		"senior: " + mention("@&", meta.SeniorRoleID),
		"hmod: " + mention("@&", meta.HmodRoleID),
		"smod: " + mention("@&", meta.SmodRoleID),
		"rmod: " + mention("@&", meta.RmodRoleID),
		"tmod: " + mention("@&", meta.TmodRoleID),
		"helper: " + mention("@&", meta.HelperRoleID),
		"active: " + mention("@&", meta.ActiveRoleID),
	}
	return strings.Join(lines, "\n")
}

func channelSummary(meta models.Metadata) string {
	return "logging: " + mention("#", meta.LoggingChannelID) +
		"\ngeneral: " + mention("#", meta.GeneralChannelID)
}

func textSummary(meta models.Metadata) string {
	orUnset := func(s string) string {
		if s == "" {
			return "unset"
		}
		return s
	}
	return "greeting: " + orUnset(meta.Greeting) +
		"\nactivity: " + orUnset(meta.Activity) +
		"\nappeal: " + orUnset(meta.AppealURL)
}

func domainSummary(meta models.Metadata) string {
	return fmt.Sprintf("deny: %d entries\nallow: %d entries", len(meta.DomainBL), len(meta.DomainWL))
}
