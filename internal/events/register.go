// Package events provides the bot's gateway event handlers.
package events

import (
	"github.com/WardenLabs/WardenGo/pkg/discord"
	"github.com/WardenLabs/WardenGo/pkg/logger"
)

// RegisterAll registers all event handlers with the client
func RegisterAll(client *discord.ExtendedClient) {
	logger.System("📋 Registering bot events...", "Events")

	RegisterReadyEvent(client)
	RegisterMemberEvents(client)
	RegisterMessageEvents(client)

	logger.Success("✅ All events registered", "Events")
}
