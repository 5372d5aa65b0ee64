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

func createUnmuteCommand() *discord.Command {
	return discord.NewCommand(
		"unmute",
		"Lift a user's mute",
		"mod",
		unmuteHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to unmute",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the unmute",
		},
	).WithClearance(clearance.LevelHelper)
}

func unmuteHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	if err := discord.NewGateway(ctx.Client).Unmute(user.ID); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Failed to unmute: %v", err))
	}

	bg := context.Background()
	active, err := database.Modlogs().ActiveCaseFor(bg, user.ID, models.CaseTypeMute)
	if err == nil {
		if reversed, rerr := database.Modlogs().MarkReversed(bg, active.CaseID, ""); rerr == nil {
			mqtt.NotifyCaseUpdated(*reversed)
		}
	} else if !stderrors.Is(err, errors.ErrCaseNotFound) {
		return ctx.ReplyEphemeral("⚠️ The unmute was applied but the ledger could not be read.")
	}

	reason := ctx.GetStringOption("reason")
	m := models.NewModlog(user.ID, ctx.User().ID, "", models.CaseTypeUnmute, reason, time.Now(), 0)
	m.Received = notifyUser(ctx, user.ID, m)

	stored, err := recordCase(ctx, m)
	if err != nil {
		return ctx.ReplyEphemeral("⚠️ The unmute was applied but recording the case failed.")
	}

	return confirmSanction(ctx, *stored, user.Username)
}
