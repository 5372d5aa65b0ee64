package mod

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/WardenLabs/WardenGo/pkg/clearance"
	"github.com/WardenLabs/WardenGo/pkg/discord"
	"github.com/WardenLabs/WardenGo/pkg/models"
)

func createWarnCommand() *discord.Command {
	return discord.NewCommand(
		"warn",
		"Warn a user",
		"mod",
		warnHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to warn",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the warning",
			Required:    true,
		},
	).WithClearance(clearance.LevelHelper)
}

func warnHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	if err := ctx.GuardTarget(user.ID); err != nil {
		return nil
	}

	reason := ctx.GetStringOption("reason")
	if reason == "" {
		return ctx.ReplyEphemeral("❌ You must specify a reason.")
	}

	m := models.NewModlog(user.ID, ctx.User().ID, "", models.CaseTypeWarn, reason, time.Now(), 0)
	m.Received = notifyUser(ctx, user.ID, m)

	stored, err := recordCase(ctx, m)
	if err != nil {
		return ctx.ReplyEphemeral("❌ Recording the warning failed.")
	}

	return confirmSanction(ctx, *stored, user.Username)
}
