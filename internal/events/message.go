package events

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/WardenLabs/WardenGo/pkg/database"
	"github.com/WardenLabs/WardenGo/pkg/discord"
	"github.com/WardenLabs/WardenGo/pkg/logger"
	"github.com/WardenLabs/WardenGo/pkg/models"
)

// domainPattern pulls host names out of message content, with or without
// a scheme prefix
var domainPattern = regexp.MustCompile(`(?i)(?:https?://)?([a-z0-9][a-z0-9-]*(?:\.[a-z0-9][a-z0-9-]*)+)`)

// RegisterMessageEvents registers all message-related event handlers
func RegisterMessageEvents(client *discord.ExtendedClient) {
	client.EventHandler.OnMessageCreate(onMessageCreate)
}

// onMessageCreate deletes messages linking deny-listed domains
func onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	meta := database.Meta().Current()
	if len(meta.DomainBL) == 0 {
		return
	}

	if contains(meta.AutomodIgnoredChannelIDs, m.ChannelID) {
		return
	}
	if m.Member != nil {
		for _, role := range m.Member.Roles {
			if contains(meta.AutomodIgnoredRoleIDs, role) {
				return
			}
		}
	}

	domain, hit := matchDeniedDomain(m.Content, meta)
	if !hit {
		return
	}

	if err := s.ChannelMessageDelete(m.ChannelID, m.ID); err != nil {
		logger.Warn(fmt.Sprintf("Could not delete message with denied domain %s: %v", domain, err), "Automod")
		return
	}

	logger.Info(fmt.Sprintf("Deleted message from %s linking %s", m.Author.Username, domain), "Automod")

	if meta.LoggingChannelID != "" {
		embed := &discordgo.MessageEmbed{
			Title:       "🧹 Message removed",
			Description: fmt.Sprintf("Message from <@%s> in <#%s> linked deny-listed domain `%s`.", m.Author.ID, m.ChannelID, domain),
			Color:       0xE67E22,
		}
		_, _ = s.ChannelMessageSendEmbed(meta.LoggingChannelID, embed)
	}
}

// matchDeniedDomain returns the first domain in the content on the deny
// list and not excused by the allow list. Subdomains of a listed domain
// count as listed.
func matchDeniedDomain(content string, meta models.Metadata) (string, bool) {
	for _, match := range domainPattern.FindAllStringSubmatch(content, -1) {
		domain := strings.ToLower(match[1])
		if onList(domain, meta.DomainWL) {
			continue
		}
		if onList(domain, meta.DomainBL) {
			return domain, true
		}
	}
	return "", false
}

func onList(domain string, list []string) bool {
	for _, entry := range list {
		if domain == entry || strings.HasSuffix(domain, "."+entry) {
			return true
		}
	}
	return false
}

func contains(list []string, v string) bool {
	for _, entry := range list {
		if entry == v {
			return true
		}
	}
	return false
}
