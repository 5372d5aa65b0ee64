package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func testClient(t *testing.T) *ExtendedClient {
	t.Helper()
	session, err := discordgo.New("Bot test-token")
	if err != nil {
		t.Fatalf("discordgo.New returned error: %v", err)
	}
	return &ExtendedClient{
		Session:  session,
		Commands: NewCommandCollection(),
		guildID:  "guild-1",
	}
}

func commandInteraction(name string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{Name: name},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "invoker-1", Username: "invoker"},
			},
		},
	}
}

// A panic inside a command handler must never escape the dispatcher.
func TestInteractionPanicIsRecovered(t *testing.T) {
	c := testClient(t)
	c.Commands.Set("boom", NewCommand("boom", "always panics", "util", func(ctx *CommandContext) error {
		panic("handler exploded")
	}))

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("panic escaped handleInteraction: %v", r)
		}
	}()

	c.handleInteraction(c.Session, commandInteraction("boom"))
}

// Before the resolver is wired at startup, a clearance-gated command is
// denied instead of dereferencing a nil resolver.
func TestClearanceDeniedWithoutResolver(t *testing.T) {
	c := testClient(t)
	ran := false
	c.Commands.Set("ban", NewCommand("ban", "gated", "mod", func(ctx *CommandContext) error {
		ran = true
		return nil
	}).WithClearance(2))

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("panic escaped handleInteraction: %v", r)
		}
	}()

	c.handleInteraction(c.Session, commandInteraction("ban"))

	if ran {
		t.Error("clearance-gated command ran with no resolver configured")
	}
}

func TestUnknownCommandIsIgnored(t *testing.T) {
	c := testClient(t)
	c.handleInteraction(c.Session, commandInteraction("nonexistent"))
}
