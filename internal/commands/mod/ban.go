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

func createBanCommand() *discord.Command {
	return discord.NewCommand(
		"ban",
		"Ban a user from the server",
		"mod",
		banHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to ban",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "duration",
			Description: "Ban duration (e.g. 7d, 12h); permanent when omitted",
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the ban",
		},
	).WithClearance(clearance.LevelTmod)
}

func banHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
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

	reason := ctx.GetStringOption("reason")
	m := models.NewModlog(user.ID, ctx.User().ID, "", models.CaseTypeBan, reason, time.Now(), d)

	// DM before the ban lands, the user is unreachable after
	m.Received = notifyUser(ctx, user.ID, m)

	if err := discord.NewGateway(ctx.Client).Ban(user.ID, m.Reason); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Failed to ban: %v", err))
	}

	stored, err := recordCase(ctx, m)
	if err != nil {
		return ctx.ReplyEphemeral("⚠️ The ban was applied but recording the case failed.")
	}

	return confirmSanction(ctx, *stored, user.Username)
}
