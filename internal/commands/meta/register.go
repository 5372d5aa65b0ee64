// Package meta provides the guild configuration commands under /meta.
// Everything here writes through the metadata service.
package meta

import (
	"github.com/WardenLabs/WardenGo/pkg/discord"
)

// RegisterMetaCommands registers all configuration commands as /meta
// subcommands
func RegisterMetaCommands(client *discord.ExtendedClient) {
	client.CommandHandler.BuildCommandGroup(
		"meta",
		"Guild configuration",
		createShowCommand(),
		createRoleCommand(),
		createChannelCommand(),
		createTextCommand(),
		createDomainAddCommand(),
		createDomainRemoveCommand(),
	)
}
