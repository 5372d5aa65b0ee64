package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestCommandCreation(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("ban", "Ban a user", "moderation", handler)

	if cmd == nil {
		t.Fatal("NewCommand returned nil")
	}
	if cmd.Name != "ban" {
		t.Errorf("Name = %v, want %v", cmd.Name, "ban")
	}
	if cmd.Description != "Ban a user" {
		t.Errorf("Description = %v, want %v", cmd.Description, "Ban a user")
	}
	if cmd.Category != "moderation" {
		t.Errorf("Category = %v, want %v", cmd.Category, "moderation")
	}
	if cmd.Clearance != 0 {
		t.Errorf("Clearance = %v, want 0", cmd.Clearance)
	}
	if cmd.Run == nil {
		t.Error("Run function is nil")
	}
}

func TestCommandWithClearance(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("ban", "Ban a user", "moderation", handler).
		WithClearance(2)

	if cmd.Clearance != 2 {
		t.Errorf("Clearance = %v, want 2", cmd.Clearance)
	}
}

func TestCommandWithOptions(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	option := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        "user",
		Description: "User to sanction",
		Required:    true,
	}

	cmd := NewCommand("ban", "Ban a user", "moderation", handler).
		WithOptions(option)

	if len(cmd.Options) != 1 {
		t.Fatalf("Options length = %v, want %v", len(cmd.Options), 1)
	}
	if cmd.Options[0].Name != "user" {
		t.Errorf("Option name = %v, want %v", cmd.Options[0].Name, "user")
	}
}

func TestCommandAsDev(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("eval", "Evaluate code", "dev", handler).AsDev()

	if !cmd.IsDev {
		t.Error("IsDev should be true after calling AsDev()")
	}
}

func TestToApplicationCommand(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	option := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "reason",
		Description: "Sanction reason",
	}

	cmd := NewCommand("warn", "Warn a user", "moderation", handler).
		WithOptions(option).
		WithClearance(1)

	appCmd := cmd.ToApplicationCommand()

	if appCmd == nil {
		t.Fatal("ToApplicationCommand returned nil")
	}
	if appCmd.Name != "warn" {
		t.Errorf("ApplicationCommand Name = %v, want %v", appCmd.Name, "warn")
	}
	if len(appCmd.Options) != 1 {
		t.Fatalf("ApplicationCommand Options length = %v, want %v", len(appCmd.Options), 1)
	}
}

func TestCommandCollection(t *testing.T) {
	cc := NewCommandCollection()
	handler := func(ctx *CommandContext) error { return nil }

	cc.Set("mod.ban", NewCommand("ban", "Ban a user", "moderation", handler))
	cc.Set("mod.kick", NewCommand("kick", "Kick a user", "moderation", handler))

	if cc.Size() != 2 {
		t.Errorf("Size() = %v, want 2", cc.Size())
	}

	cmd, ok := cc.Get("mod.ban")
	if !ok {
		t.Fatal("Get(mod.ban) not found")
	}
	if cmd.Name != "ban" {
		t.Errorf("Name = %v, want ban", cmd.Name)
	}

	if _, ok := cc.Get("mod.mute"); ok {
		t.Error("Get(mod.mute) found, want missing")
	}

	all := cc.All()
	if len(all) != 2 {
		t.Errorf("All() length = %v, want 2", len(all))
	}
}

func TestCommandNameResolution(t *testing.T) {
	tests := []struct {
		name string
		data discordgo.ApplicationCommandInteractionData
		want string
	}{
		{
			name: "top level",
			data: discordgo.ApplicationCommandInteractionData{Name: "ping"},
			want: "ping",
		},
		{
			name: "subcommand",
			data: discordgo.ApplicationCommandInteractionData{
				Name: "mod",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{Name: "ban", Type: discordgo.ApplicationCommandOptionSubCommand},
				},
			},
			want: "mod.ban",
		},
		{
			name: "subcommand group",
			data: discordgo.ApplicationCommandInteractionData{
				Name: "meta",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{
						Name: "domain",
						Type: discordgo.ApplicationCommandOptionSubCommandGroup,
						Options: []*discordgo.ApplicationCommandInteractionDataOption{
							{Name: "add", Type: discordgo.ApplicationCommandOptionSubCommand},
						},
					},
				},
			},
			want: "meta.domain.add",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := commandName(tt.data); got != tt.want {
				t.Errorf("commandName() = %v, want %v", got, tt.want)
			}
		})
	}
}
