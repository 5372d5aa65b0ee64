// Package commands provides the registry for the bot's slash commands.
// Commands are organized in subdirectories by category (mod, meta, dev).
package commands

import (
	"github.com/WardenLabs/WardenGo/internal/commands/dev"
	"github.com/WardenLabs/WardenGo/internal/commands/meta"
	"github.com/WardenLabs/WardenGo/internal/commands/mod"
	"github.com/WardenLabs/WardenGo/pkg/discord"
)

// RegisterAll registers all commands with the client
func RegisterAll(client *discord.ExtendedClient) {
	RegisterUtilCommands(client)

	// Moderation commands (/mod ban, /mod mute, /mod case, ...)
	mod.RegisterModCommands(client)

	// Guild configuration (/meta roles, /meta channels, ...)
	meta.RegisterMetaCommands(client)

	// Owner-only tooling
	dev.RegisterDevCommands(client)
}
