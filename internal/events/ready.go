package events

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/WardenLabs/WardenGo/pkg/database"
	"github.com/WardenLabs/WardenGo/pkg/discord"
	"github.com/WardenLabs/WardenGo/pkg/logger"
)

// RegisterReadyEvent registers the ready event handler
func RegisterReadyEvent(client *discord.ExtendedClient) {
	client.EventHandler.OnReady(onReady)
}

// onReady is called when the gateway handshake completes
func onReady(s *discordgo.Session, r *discordgo.Ready) {
	logger.Success(fmt.Sprintf("✅ Connected as %s", r.User.Username), "Ready")

	activity := database.Meta().Current().Activity
	if activity == "" {
		activity = "over the guild"
	}
	if err := s.UpdateGameStatus(0, activity); err != nil {
		logger.Error(fmt.Sprintf("Error setting activity: %v", err), "Ready")
		return
	}

	logger.Debug("Activity set", "Ready")
}
