package mod

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/WardenLabs/WardenGo/pkg/clearance"
	"github.com/WardenLabs/WardenGo/pkg/database"
	"github.com/WardenLabs/WardenGo/pkg/discord"
	"github.com/WardenLabs/WardenGo/pkg/errors"
	"github.com/WardenLabs/WardenGo/pkg/models"
	"github.com/WardenLabs/WardenGo/pkg/mqtt"
)

func createDelCaseCommand() *discord.Command {
	return discord.NewCommand(
		"delcase",
		"Void a moderation case",
		"mod",
		delCaseHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "id",
			Description: "Case number",
			Required:    true,
			MinValue:    func() *float64 { v := 1.0; return &v }(),
		},
	).WithClearance(clearance.LevelHmod)
}

// sanctionLifter reverses an enduring sanction on the platform.
type sanctionLifter interface {
	Unban(userID string) error
	Unmute(userID string) error
	ChannelUnban(channelID, userID string) error
}

// liftSanction undoes the platform side of an enduring case. Types that
// leave nothing in force on the platform are a no-op.
func liftSanction(gw sanctionLifter, c models.Modlog) error {
	switch c.Type {
	case models.CaseTypeBan:
		return gw.Unban(c.UserID)
	case models.CaseTypeMute:
		return gw.Unmute(c.UserID)
	case models.CaseTypeChannelBan:
		return gw.ChannelUnban(c.ChannelID, c.UserID)
	}
	return nil
}

func delCaseHandler(ctx *discord.CommandContext) error {
	id := ctx.GetIntOption("id")

	found, err := database.Modlogs().CaseByID(context.Background(), id)
	if err != nil {
		if stderrors.Is(err, errors.ErrCaseNotFound) {
			return ctx.ReplyEphemeral(fmt.Sprintf("❌ No case #%d on record.", id))
		}
		return err
	}

	// A voided case leaves the sweeper's view, so an in-force sanction
	// has to be lifted here or it would stay on the platform forever.
	if found.InForce() {
		if err := liftSanction(discord.NewGateway(ctx.Client), *found); err != nil {
			return ctx.ReplyEphemeral(fmt.Sprintf("❌ Could not lift the %s on <@%s>: %v. The case was not voided.", found.Type, found.UserID, err))
		}
	}

	voided, err := database.Modlogs().VoidCase(context.Background(), id)
	if err != nil {
		if stderrors.Is(err, errors.ErrCaseNotFound) {
			return ctx.ReplyEphemeral(fmt.Sprintf("❌ No case #%d on record.", id))
		}
		return err
	}

	mqtt.NotifyCaseVoided(*voided)
	logToChannel(ctx, caseEmbed(*voided, colorReversal))

	return ctx.Reply(fmt.Sprintf("🗑️ Case #%d voided. The record is kept but no longer counts.", voided.CaseID))
}
