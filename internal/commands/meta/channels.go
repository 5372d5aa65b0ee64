package meta

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/WardenLabs/WardenGo/pkg/clearance"
	"github.com/WardenLabs/WardenGo/pkg/database"
	"github.com/WardenLabs/WardenGo/pkg/discord"
)

var channelFields = map[string]string{
	"logging": "logging_channel_id",
	"general": "general_channel_id",
}

func createChannelCommand() *discord.Command {
	return discord.NewCommand(
		"channel",
		"Set the logging or general channel, or clear it",
		"meta",
		channelHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "kind",
			Description: "Which channel to configure",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "logging", Value: "logging"},
				{Name: "general", Value: "general"},
			},
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "channel",
			Description: "Channel to use; omit to clear",
		},
	).WithClearance(clearance.LevelAdmin)
}

func channelHandler(ctx *discord.CommandContext) error {
	kind := ctx.GetStringOption("kind")
	field, ok := channelFields[kind]
	if !ok {
		return ctx.ReplyEphemeral("❌ Unknown channel kind.")
	}

	channelID := ""
	if channel := ctx.GetChannelOption("channel"); channel != nil {
		channelID = channel.ID
	}

	_, err := database.Meta().Update(context.Background(), map[string]interface{}{field: channelID})
	if err != nil {
		return err
	}

	if channelID == "" {
		return ctx.Reply(fmt.Sprintf("⚙️ %s channel cleared.", kind))
	}
	return ctx.Reply(fmt.Sprintf("⚙️ %s channel set to <#%s>.", kind, channelID))
}
