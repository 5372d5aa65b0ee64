package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// maxTimeout is the longest timeout the API accepts. Mutes past this are
// re-applied implicitly because the ledger case stays active and the
// expiry sweep only lifts what the ledger says has elapsed.
const maxTimeout = 28 * 24 * time.Hour

// Gateway applies and reverses sanctions on the guild. It is the only
// path through which moderation touches the platform; the expiry sweeper
// drives the reversal half.
type Gateway struct {
	client *ExtendedClient
}

// NewGateway creates a gateway over the client's guild
func NewGateway(client *ExtendedClient) *Gateway {
	return &Gateway{client: client}
}

// Ban removes a user from the guild and blocks rejoining
func (g *Gateway) Ban(userID, reason string) error {
	return g.client.Session.GuildBanCreateWithReason(g.client.GuildID(), userID, reason, 0)
}

// Unban lifts a guild ban
func (g *Gateway) Unban(userID string) error {
	return g.client.Session.GuildBanDelete(g.client.GuildID(), userID)
}

// Mute times a member out for the given duration. Zero means permanent;
// the API caps a single timeout at 28 days, so longer sanctions get the
// cap and rely on the ledger to outlast it.
func (g *Gateway) Mute(userID string, d time.Duration) error {
	if d <= 0 || d > maxTimeout {
		d = maxTimeout
	}
	until := time.Now().Add(d)
	return g.client.Session.GuildMemberTimeout(g.client.GuildID(), userID, &until)
}

// Unmute clears a member's timeout
func (g *Gateway) Unmute(userID string) error {
	return g.client.Session.GuildMemberTimeout(g.client.GuildID(), userID, nil)
}

// Kick removes a member from the guild
func (g *Gateway) Kick(userID, reason string) error {
	return g.client.Session.GuildMemberDeleteWithReason(g.client.GuildID(), userID, reason)
}

// ChannelBan denies a user view and send access to one channel
func (g *Gateway) ChannelBan(channelID, userID string) error {
	deny := int64(discordgo.PermissionViewChannel | discordgo.PermissionSendMessages)
	return g.client.Session.ChannelPermissionSet(
		channelID, userID, discordgo.PermissionOverwriteTypeMember, 0, deny)
}

// ChannelUnban removes the user's permission overwrite from a channel
func (g *Gateway) ChannelUnban(channelID, userID string) error {
	return g.client.Session.ChannelPermissionDelete(channelID, userID)
}
