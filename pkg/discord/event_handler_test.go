package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func testEventHandler(t *testing.T) *EventHandler {
	t.Helper()
	session, err := discordgo.New("Bot test-token")
	if err != nil {
		t.Fatalf("discordgo.New returned error: %v", err)
	}
	return NewEventHandler(&ExtendedClient{Session: session})
}

// discordgo dispatches gateway events with an exact-type switch over the
// handler's dynamic type, so every handler we register must be boxed as
// the plain func type, never a named one.
func TestRegisteredHandlersKeepDispatchableTypes(t *testing.T) {
	eh := testEventHandler(t)

	eh.OnReady(func(s *discordgo.Session, r *discordgo.Ready) {})
	eh.OnMessageCreate(func(s *discordgo.Session, m *discordgo.MessageCreate) {})
	eh.OnGuildMemberAdd(func(s *discordgo.Session, m *discordgo.GuildMemberAdd) {})
	eh.OnGuildMemberRemove(func(s *discordgo.Session, m *discordgo.GuildMemberRemove) {})

	eh.mu.RLock()
	defer eh.mu.RUnlock()

	if len(eh.events) != 4 {
		t.Fatalf("registered %d handlers, want 4", len(eh.events))
	}

	for i, h := range eh.events {
		switch h.(type) {
		case func(*discordgo.Session, *discordgo.Ready):
		case func(*discordgo.Session, *discordgo.MessageCreate):
		case func(*discordgo.Session, *discordgo.GuildMemberAdd):
		case func(*discordgo.Session, *discordgo.GuildMemberRemove):
		default:
			t.Errorf("handler %d has dynamic type %T, which the gateway will never dispatch", i, h)
		}
	}
}

// A declared top-level func also carries the plain func type when passed
// through the OnX helpers.
func TestDeclaredFuncHandlerIsDispatchable(t *testing.T) {
	eh := testEventHandler(t)

	eh.OnMessageCreate(noopMessageCreate)

	eh.mu.RLock()
	defer eh.mu.RUnlock()

	if _, ok := eh.events[0].(func(*discordgo.Session, *discordgo.MessageCreate)); !ok {
		t.Errorf("handler has dynamic type %T, want func(*discordgo.Session, *discordgo.MessageCreate)", eh.events[0])
	}
}

func noopMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {}
