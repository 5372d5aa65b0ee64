package meta

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/WardenLabs/WardenGo/pkg/clearance"
	"github.com/WardenLabs/WardenGo/pkg/database"
	"github.com/WardenLabs/WardenGo/pkg/discord"
)

func domainListOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "list",
		Description: "Which list to change",
		Required:    true,
		Choices: []*discordgo.ApplicationCommandOptionChoice{
			{Name: "deny", Value: "deny"},
			{Name: "allow", Value: "allow"},
		},
	}
}

func createDomainAddCommand() *discord.Command {
	return discord.NewCommand(
		"domainadd",
		"Add a domain to the deny or allow list",
		"meta",
		domainAddHandler,
	).WithOptions(
		domainListOption(),
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "domain",
			Description: "Domain to add (e.g. example.com)",
			Required:    true,
		},
	).WithClearance(clearance.LevelAdmin)
}

func createDomainRemoveCommand() *discord.Command {
	return discord.NewCommand(
		"domainremove",
		"Remove a domain from the deny or allow list",
		"meta",
		domainRemoveHandler,
	).WithOptions(
		domainListOption(),
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "domain",
			Description: "Domain to remove",
			Required:    true,
		},
	).WithClearance(clearance.LevelAdmin)
}

func domainAddHandler(ctx *discord.CommandContext) error {
	list := ctx.GetStringOption("list")
	domain := strings.ToLower(strings.TrimSpace(ctx.GetStringOption("domain")))
	if domain == "" {
		return ctx.ReplyEphemeral("❌ You must specify a domain.")
	}

	meta := database.Meta().Current()
	field, current := pickList(list, meta.DomainBL, meta.DomainWL)

	for _, d := range current {
		if d == domain {
			return ctx.ReplyEphemeral(fmt.Sprintf("❌ `%s` is already on the %s list.", domain, list))
		}
	}

	updated := append(append([]string{}, current...), domain)
	if _, err := database.Meta().Update(context.Background(), map[string]interface{}{field: updated}); err != nil {
		return err
	}

	return ctx.Reply(fmt.Sprintf("⚙️ `%s` added to the %s list (%d entries).", domain, list, len(updated)))
}

func domainRemoveHandler(ctx *discord.CommandContext) error {
	list := ctx.GetStringOption("list")
	domain := strings.ToLower(strings.TrimSpace(ctx.GetStringOption("domain")))

	meta := database.Meta().Current()
	field, current := pickList(list, meta.DomainBL, meta.DomainWL)

	updated := make([]string, 0, len(current))
	for _, d := range current {
		if d != domain {
			updated = append(updated, d)
		}
	}
	if len(updated) == len(current) {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ `%s` is not on the %s list.", domain, list))
	}

	if _, err := database.Meta().Update(context.Background(), map[string]interface{}{field: updated}); err != nil {
		return err
	}

	return ctx.Reply(fmt.Sprintf("⚙️ `%s` removed from the %s list (%d entries).", domain, list, len(updated)))
}

func pickList(list string, deny, allow []string) (string, []string) {
	if list == "allow" {
		return "domain_wl", allow
	}
	return "domain_bl", deny
}
