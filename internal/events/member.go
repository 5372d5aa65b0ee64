package events

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/WardenLabs/WardenGo/pkg/database"
	"github.com/WardenLabs/WardenGo/pkg/discord"
	"github.com/WardenLabs/WardenGo/pkg/logger"
)

// RegisterMemberEvents registers all member-related event handlers
func RegisterMemberEvents(client *discord.ExtendedClient) {
	client.EventHandler.OnGuildMemberAdd(onGuildMemberAdd)
	client.EventHandler.OnGuildMemberRemove(onGuildMemberRemove)
}

// onGuildMemberAdd greets a new member by DM when a greeting is
// configured. Delivery is best effort.
func onGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	logger.Info(fmt.Sprintf("👋 New member: %s", m.User.Username), "Member")

	meta := database.Meta().Current()
	if meta.Greeting == "" {
		return
	}

	guildName := m.GuildID
	if guild, err := s.State.Guild(m.GuildID); err == nil {
		guildName = guild.Name
	}

	greeting := strings.ReplaceAll(meta.Greeting, "{user}", m.User.Username)

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Welcome to %s!", guildName),
		Description: greeting,
		Color:       0x3498DB,
		Timestamp:   time.Now().Format(time.RFC3339),
	}

	channel, err := s.UserChannelCreate(m.User.ID)
	if err != nil {
		logger.Debug("Could not open DM for greeting", "Member")
		return
	}
	if _, err := s.ChannelMessageSendEmbed(channel.ID, embed); err != nil {
		logger.Debug("Could not deliver greeting (DMs closed)", "Member")
	}
}

// onGuildMemberRemove logs member departures
func onGuildMemberRemove(s *discordgo.Session, m *discordgo.GuildMemberRemove) {
	logger.Info(fmt.Sprintf("👋 Member left: %s", m.User.Username), "Member")
}
