package mod

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/WardenLabs/WardenGo/pkg/clearance"
	"github.com/WardenLabs/WardenGo/pkg/discord"
	"github.com/WardenLabs/WardenGo/pkg/duration"
	"github.com/WardenLabs/WardenGo/pkg/models"
)

func createChannelBanCommand() *discord.Command {
	return discord.NewCommand(
		"channelban",
		"Ban a user from one channel",
		"mod",
		channelBanHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to ban from the channel",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "channel",
			Description: "Channel to ban the user from",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "duration",
			Description: "Duration (e.g. 7d); permanent when omitted",
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the channel ban",
		},
	).WithClearance(clearance.LevelRmod)
}

func channelBanHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	channel := ctx.GetChannelOption("channel")
	if user == nil || channel == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user and a channel.")
	}

	if err := ctx.GuardTarget(user.ID); err != nil {
		return nil
	}

	var d time.Duration
	if token := ctx.GetStringOption("duration"); token != "" {
		parsed, err := duration.Parse(token, false)
		if err != nil {
			return ctx.ReplyEphemeral(fmt.Sprintf("❌ Invalid duration %q. Use a number followed by s, m, h, d, w or y (minimum 1m).", token))
		}
		d = parsed
	}

	if err := discord.NewGateway(ctx.Client).ChannelBan(channel.ID, user.ID); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Failed to channel-ban: %v", err))
	}

	reason := ctx.GetStringOption("reason")
	m := models.NewModlog(user.ID, ctx.User().ID, channel.ID, models.CaseTypeChannelBan, reason, time.Now(), d)
	m.Received = notifyUser(ctx, user.ID, m)

	stored, err := recordCase(ctx, m)
	if err != nil {
		return ctx.ReplyEphemeral("⚠️ The channel ban was applied but recording the case failed.")
	}

	return confirmSanction(ctx, *stored, user.Username)
}
