package meta

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/WardenLabs/WardenGo/pkg/clearance"
	"github.com/WardenLabs/WardenGo/pkg/database"
	"github.com/WardenLabs/WardenGo/pkg/discord"
)

// tierFields maps the tier option choice to its metadata field
var tierFields = map[string]string{
	"admin":  "admin_role_id",
	"bot":    "bot_role_id",
	"senior": "senior_role_id",
	"hmod":   "hmod_role_id",
	"smod":   "smod_role_id",
	"rmod":   "rmod_role_id",
	"tmod":   "tmod_role_id",
	"helper": "helper_role_id",
	"active": "active_role_id",
}

func tierChoices() []*discordgo.ApplicationCommandOptionChoice {
	names := []string{"admin", "bot", "senior", "hmod", "smod", "rmod", "tmod", "helper", "active"}
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(names))
	for _, n := range names {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: n, Value: n})
	}
	return choices
}

func createRoleCommand() *discord.Command {
	return discord.NewCommand(
		"role",
		"Bind a staff tier to a role, or clear it",
		"meta",
		roleHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "tier",
			Description: "Staff tier to configure",
			Required:    true,
			Choices:     tierChoices(),
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "role",
			Description: "Role to bind; omit to clear the tier",
		},
	).WithClearance(clearance.LevelAdmin)
}

func roleHandler(ctx *discord.CommandContext) error {
	tier := ctx.GetStringOption("tier")
	field, ok := tierFields[tier]
	if !ok {
		return ctx.ReplyEphemeral("❌ Unknown tier.")
	}

	roleID := ""
	if role := ctx.GetRoleOption("role"); role != nil {
		roleID = role.ID
	}

	_, err := database.Meta().Update(context.Background(), map[string]interface{}{field: roleID})
	if err != nil {
		return err
	}

	if roleID == "" {
		return ctx.Reply(fmt.Sprintf("⚙️ Tier **%s** cleared.", tier))
	}
	return ctx.Reply(fmt.Sprintf("⚙️ Tier **%s** bound to <@&%s>.", tier, roleID))
}
