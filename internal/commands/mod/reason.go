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
	"github.com/WardenLabs/WardenGo/pkg/mqtt"
)

func createReasonCommand() *discord.Command {
	return discord.NewCommand(
		"reason",
		"Update the reason of a case",
		"mod",
		reasonHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "id",
			Description: "Case number",
			Required:    true,
			MinValue:    func() *float64 { v := 1.0; return &v }(),
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "New reason",
			Required:    true,
		},
	).WithClearance(clearance.LevelHelper)
}

func reasonHandler(ctx *discord.CommandContext) error {
	id := ctx.GetIntOption("id")
	reason := ctx.GetStringOption("reason")
	if reason == "" {
		return ctx.ReplyEphemeral("❌ You must specify a reason.")
	}

	updated, err := database.Modlogs().UpdateCase(context.Background(),
		map[string]interface{}{"case_id": id},
		map[string]interface{}{"reason": reason},
	)
	if err != nil {
		if stderrors.Is(err, errors.ErrCaseNotFound) {
			return ctx.ReplyEphemeral(fmt.Sprintf("❌ No case #%d on record.", id))
		}
		return err
	}

	mqtt.NotifyCaseUpdated(*updated)
	logToChannel(ctx, caseEmbed(*updated, colorNeutral))

	return ctx.Reply(fmt.Sprintf("📝 Case #%d updated.\n**Reason:** %s", updated.CaseID, updated.Reason))
}
