package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/WardenLabs/WardenGo/pkg/database"
	"github.com/WardenLabs/WardenGo/pkg/discord"
)

// RegisterUtilCommands registers the open utility commands
func RegisterUtilCommands(client *discord.ExtendedClient) {
	pingCmd := discord.NewCommand(
		"ping",
		"Check the bot's latency",
		"util",
		func(ctx *discord.CommandContext) error {
			latency := ctx.Client.Session.HeartbeatLatency().Milliseconds()
			return ctx.Reply(fmt.Sprintf("🏓 Pong! Latency: %dms", latency))
		},
	)
	client.CommandHandler.RegisterCommand(pingCmd)

	statusCmd := discord.NewCommand(
		"status",
		"Show the bot's status",
		"util",
		func(ctx *discord.CommandContext) error {
			db := database.Get()
			dbStatus, _ := db.GetStatus()

			total, err := database.Modlogs().CaseCount(context.Background())
			caseLine := fmt.Sprintf("• Cases on record: %d", total)
			if err != nil {
				caseLine = "• Cases on record: unavailable"
			}

			return ctx.Reply(fmt.Sprintf(
				"📊 **Warden Status**\n"+
					"• Bot: 🟢 Online\n"+
					"• Database: %s\n"+
					"• Uptime: %s\n"+
					"%s",
				dbStatus,
				ctx.Client.Uptime().Round(time.Second),
				caseLine,
			))
		},
	)
	client.CommandHandler.RegisterCommand(statusCmd)

	helpCmd := discord.NewCommand(
		"help",
		"Show help information",
		"util",
		func(ctx *discord.CommandContext) error {
			return ctx.Reply(
				"📖 **Warden Help**\n\n" +
					"**Moderation** (staff only):\n" +
					"• `/mod ban <user> [duration] [reason]`\n" +
					"• `/mod mute <user> <duration> [reason]`\n" +
					"• `/mod kick <user> [reason]`\n" +
					"• `/mod warn <user> <reason>`\n" +
					"• `/mod channelban <user> <channel> [duration] [reason]`\n" +
					"• `/mod case <id>` / `/mod cases <user>`\n" +
					"• `/mod reason <id> <reason>` / `/mod delcase <id>`\n\n" +
					"**General:**\n" +
					"• `/ping` - Check latency\n" +
					"• `/status` - Bot status",
			)
		},
	)
	client.CommandHandler.RegisterCommand(helpCmd)
}
