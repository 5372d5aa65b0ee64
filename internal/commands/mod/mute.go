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

func createMuteCommand() *discord.Command {
	return discord.NewCommand(
		"mute",
		"Mute a user for a duration",
		"mod",
		muteHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to mute",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "duration",
			Description: "Mute duration (e.g. 30m, 2h)",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the mute",
		},
	).WithClearance(clearance.LevelHelper)
}

func muteHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	if err := ctx.GuardTarget(user.ID); err != nil {
		return nil
	}

	token := ctx.GetStringOption("duration")
	d, err := duration.Parse(token, false)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Invalid duration %q. Use a number followed by s, m, h, d, w or y (minimum 1m).", token))
	}

	if err := discord.NewGateway(ctx.Client).Mute(user.ID, d); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Failed to mute: %v", err))
	}

	reason := ctx.GetStringOption("reason")
	m := models.NewModlog(user.ID, ctx.User().ID, "", models.CaseTypeMute, reason, time.Now(), d)
	m.Received = notifyUser(ctx, user.ID, m)

	stored, err := recordCase(ctx, m)
	if err != nil {
		return ctx.ReplyEphemeral("⚠️ The mute was applied but recording the case failed.")
	}

	return confirmSanction(ctx, *stored, user.Username)
}
