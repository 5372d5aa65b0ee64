package mod

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/WardenLabs/WardenGo/pkg/clearance"
	"github.com/WardenLabs/WardenGo/pkg/discord"
	"github.com/WardenLabs/WardenGo/pkg/models"
)

func createKickCommand() *discord.Command {
	return discord.NewCommand(
		"kick",
		"Kick a user from the server",
		"mod",
		kickHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to kick",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the kick",
		},
	).WithClearance(clearance.LevelTmod)
}

func kickHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	if err := ctx.GuardTarget(user.ID); err != nil {
		return nil
	}

	reason := ctx.GetStringOption("reason")
	m := models.NewModlog(user.ID, ctx.User().ID, "", models.CaseTypeKick, reason, time.Now(), 0)

	// DM before the kick lands, the user may be unreachable after
	m.Received = notifyUser(ctx, user.ID, m)

	if err := discord.NewGateway(ctx.Client).Kick(user.ID, m.Reason); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Failed to kick: %v", err))
	}

	stored, err := recordCase(ctx, m)
	if err != nil {
		return ctx.ReplyEphemeral("⚠️ The kick was applied but recording the case failed.")
	}

	return confirmSanction(ctx, *stored, user.Username)
}
