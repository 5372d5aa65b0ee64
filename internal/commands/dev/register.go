package dev

import (
	"github.com/WardenLabs/WardenGo/pkg/discord"
)

// RegisterDevCommands registers the owner-only commands as /dev
// subcommands. The dispatcher enforces ownership, so registering them on
// the guild is safe.
func RegisterDevCommands(client *discord.ExtendedClient) {
	client.CommandHandler.BuildCommandGroup(
		"dev",
		"Owner-only tooling",
		createEvalCommand(),
	)
}
