package mod

import (
	"github.com/WardenLabs/WardenGo/pkg/discord"
)

// RegisterModCommands registers all moderation commands as /mod subcommands
func RegisterModCommands(client *discord.ExtendedClient) {
	client.CommandHandler.BuildCommandGroup(
		"mod",
		"Moderation commands",
		createBanCommand(),
		createUnbanCommand(),
		createMuteCommand(),
		createUnmuteCommand(),
		createKickCommand(),
		createWarnCommand(),
		createChannelBanCommand(),
		createCaseCommand(),
		createCasesCommand(),
		createReasonCommand(),
		createDelCaseCommand(),
	)
}
