package mod

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/WardenLabs/WardenGo/pkg/clearance"
	"github.com/WardenLabs/WardenGo/pkg/database"
	"github.com/WardenLabs/WardenGo/pkg/discord"
	"github.com/WardenLabs/WardenGo/pkg/errors"
	"github.com/WardenLabs/WardenGo/pkg/models"
	"github.com/WardenLabs/WardenGo/pkg/mqtt"
)

func createUnbanCommand() *discord.Command {
	return discord.NewCommand(
		"unban",
		"Lift a user's ban",
		"mod",
		unbanHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to unban",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the unban",
		},
	).WithClearance(clearance.LevelTmod)
}

func unbanHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	if err := discord.NewGateway(ctx.Client).Unban(user.ID); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Failed to unban: %v", err))
	}

	// Close out any active ban case so the sweeper stops tracking it
	bg := context.Background()
	active, err := database.Modlogs().ActiveCaseFor(bg, user.ID, models.CaseTypeBan)
	if err == nil {
		if reversed, rerr := database.Modlogs().MarkReversed(bg, active.CaseID, ""); rerr == nil {
			mqtt.NotifyCaseUpdated(*reversed)
		}
	} else if !stderrors.Is(err, errors.ErrCaseNotFound) {
		return ctx.ReplyEphemeral("⚠️ The unban was applied but the ledger could not be read.")
	}

	reason := ctx.GetStringOption("reason")
	m := models.NewModlog(user.ID, ctx.User().ID, "", models.CaseTypeUnban, reason, time.Now(), 0)

	stored, err := recordCase(ctx, m)
	if err != nil {
		return ctx.ReplyEphemeral("⚠️ The unban was applied but recording the case failed.")
	}

	return confirmSanction(ctx, *stored, user.Username)
}
