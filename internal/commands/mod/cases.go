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
)

func createCaseCommand() *discord.Command {
	return discord.NewCommand(
		"case",
		"Show a moderation case",
		"mod",
		caseHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "id",
			Description: "Case number",
			Required:    true,
			MinValue:    func() *float64 { v := 1.0; return &v }(),
		},
	).WithClearance(clearance.LevelHelper)
}

func caseHandler(ctx *discord.CommandContext) error {
	id := ctx.GetIntOption("id")

	found, err := database.Modlogs().CaseByID(context.Background(), id)
	if err != nil {
		if stderrors.Is(err, errors.ErrCaseNotFound) {
			return ctx.ReplyEphemeral(fmt.Sprintf("❌ No case #%d on record.", id))
		}
		return err
	}

	return ctx.ReplyEmbed(caseEmbed(*found, colorNeutral))
}

func createCasesCommand() *discord.Command {
	return discord.NewCommand(
		"cases",
		"List a user's moderation cases",
		"mod",
		casesHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "User to look up",
			Required:    true,
		},
	).WithClearance(clearance.LevelHelper)
}

func casesHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	found, err := database.Modlogs().SearchCases(context.Background(), map[string]interface{}{"user_id": user.ID})
	if err != nil {
		if stderrors.Is(err, errors.ErrCaseNotFound) {
			return ctx.ReplyEphemeral(fmt.Sprintf("❌ No cases on record for **%s**.", user.Username))
		}
		return err
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📋 Cases for %s (%d)", user.Username, len(found)),
		Color: colorNeutral,
	}

	// Discord caps embeds at 25 fields
	shown := found
	if len(shown) > 25 {
		shown = shown[len(shown)-25:]
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Showing the most recent 25 of %d cases", len(found)),
		}
	}

	for _, c := range shown {
		value := fmt.Sprintf("**Reason:** %s", c.Reason)
		if c.Type.Enduring() {
			value += fmt.Sprintf(" | **Status:** %s", c.Status)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s Case #%d | %s", typeEmoji[c.Type], c.CaseID, c.Type),
			Value: value,
		})
	}

	return ctx.ReplyEmbed(embed)
}
