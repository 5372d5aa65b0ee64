package meta

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/WardenLabs/WardenGo/pkg/clearance"
	"github.com/WardenLabs/WardenGo/pkg/database"
	"github.com/WardenLabs/WardenGo/pkg/discord"
)

var textFields = map[string]string{
	"greeting": "greeting",
	"activity": "activity",
	"appeal":   "appeal_url",
}

func createTextCommand() *discord.Command {
	return discord.NewCommand(
		"text",
		"Set the greeting, activity or appeal URL, or clear it",
		"meta",
		textHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "kind",
			Description: "Which text to configure",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "greeting", Value: "greeting"},
				{Name: "activity", Value: "activity"},
				{Name: "appeal", Value: "appeal"},
			},
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "value",
			Description: "Text to use; omit to clear",
		},
	).WithClearance(clearance.LevelAdmin)
}

func textHandler(ctx *discord.CommandContext) error {
	kind := ctx.GetStringOption("kind")
	field, ok := textFields[kind]
	if !ok {
		return ctx.ReplyEphemeral("❌ Unknown text kind.")
	}

	value := ctx.GetStringOption("value")

	_, err := database.Meta().Update(context.Background(), map[string]interface{}{field: value})
	if err != nil {
		return err
	}

	// Activity changes take effect on the presence right away
	if kind == "activity" {
		_ = ctx.Session.UpdateGameStatus(0, value)
	}

	if value == "" {
		return ctx.Reply(fmt.Sprintf("⚙️ %s cleared.", kind))
	}
	return ctx.Reply(fmt.Sprintf("⚙️ %s set to: %s", kind, value))
}
