// Package discord provides the bot client. It wraps discordgo with
// command dispatch, clearance enforcement and the moderation gateway.
package discord

import (
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/WardenLabs/WardenGo/pkg/clearance"
	"github.com/WardenLabs/WardenGo/pkg/config"
	"github.com/WardenLabs/WardenGo/pkg/errors"
	"github.com/WardenLabs/WardenGo/pkg/logger"
)

// discordgo.Logger is a function, not an interface
func init() {
	discordgo.Logger = func(msgL int, caller int, format string, a ...interface{}) {
		logger.Info(fmt.Sprintf(format, a...), "DiscordGo")
	}
}

// ExtendedClient wraps discordgo.Session for a single guild
type ExtendedClient struct {
	Session        *discordgo.Session
	Commands       *CommandCollection
	CommandHandler *CommandHandler
	EventHandler   *EventHandler
	Resolver       *clearance.Resolver
	StartTime      time.Time

	guildID string
	mu      sync.RWMutex
	isReady bool
}

// CommandCollection holds registered commands keyed by full name
// (group.subcommand for grouped commands)
type CommandCollection struct {
	commands map[string]*Command
	mu       sync.RWMutex
}

// NewCommandCollection creates a new CommandCollection
func NewCommandCollection() *CommandCollection {
	return &CommandCollection{
		commands: make(map[string]*Command),
	}
}

// Set adds or updates a command
func (cc *CommandCollection) Set(name string, cmd *Command) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.commands[name] = cmd
}

// Get retrieves a command by name
func (cc *CommandCollection) Get(name string) (*Command, bool) {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	cmd, ok := cc.commands[name]
	return cmd, ok
}

// Size returns the number of commands
func (cc *CommandCollection) Size() int {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return len(cc.commands)
}

// All returns all commands
func (cc *CommandCollection) All() map[string]*Command {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	result := make(map[string]*Command)
	for k, v := range cc.commands {
		result[k] = v
	}
	return result
}

var (
	client *ExtendedClient
	once   sync.Once
)

// Init initializes the global client
func Init(token, guildID string) (*ExtendedClient, error) {
	var err error
	once.Do(func() {
		client, err = NewClient(token, guildID)
	})
	return client, err
}

// Get returns the global client
func Get() *ExtendedClient {
	return client
}

// NewClient creates a client bound to the given guild
func NewClient(token, guildID string) (*ExtendedClient, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}

	session.Identify.Intents = discordgo.IntentGuilds |
		discordgo.IntentGuildMessages |
		discordgo.IntentGuildMembers |
		discordgo.IntentGuildModeration |
		discordgo.IntentMessageContent

	session.SyncEvents = false
	session.StateEnabled = true
	session.LogLevel = discordgo.LogWarning

	c := &ExtendedClient{
		Session:  session,
		Commands: NewCommandCollection(),
		guildID:  guildID,
	}

	c.CommandHandler = NewCommandHandler(c)
	c.EventHandler = NewEventHandler(c)

	return c, nil
}

// GuildID returns the guild this client moderates
func (c *ExtendedClient) GuildID() string {
	return c.guildID
}

// Start opens the gateway connection and registers commands once ready
func (c *ExtendedClient) Start() error {
	c.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		c.mu.Lock()
		c.isReady = true
		c.mu.Unlock()

		logger.Success("Connected as: "+r.User.Username, "Client")

		c.CommandHandler.RegisterCommands()
	})

	c.Session.AddHandler(c.handleInteraction)

	c.StartTime = time.Now()

	return c.Session.Open()
}

// commandName resolves the full name of an invoked command, descending
// into subcommand groups
func commandName(data discordgo.ApplicationCommandInteractionData) string {
	name := data.Name
	if len(data.Options) == 0 {
		return name
	}

	opt := data.Options[0]
	switch opt.Type {
	case discordgo.ApplicationCommandOptionSubCommandGroup:
		if len(opt.Options) > 0 {
			name = data.Name + "." + opt.Name + "." + opt.Options[0].Name
		}
	case discordgo.ApplicationCommandOptionSubCommand:
		name = data.Name + "." + opt.Name
	}
	return name
}

// handleInteraction dispatches incoming interactions through the
// clearance middleware to the matching command
func (c *ExtendedClient) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := commandName(i.ApplicationCommandData())

	cmd, ok := c.Commands.Get(name)
	if !ok {
		logger.Warn("Command not found: "+name, "Client")
		return
	}

	ctx := &CommandContext{
		Session:     s,
		Interaction: i,
		Client:      c,
	}

	// Installed before the clearance check so a panic anywhere in the
	// dispatch path, middleware included, never takes the process down.
	defer func() {
		if r := recover(); r != nil {
			if h := errors.Get(); h != nil {
				h.HandlePanic(r)
			} else {
				logger.Error(fmt.Sprintf("Recovered panic in command %s: %v", name, r), "Client")
			}
			_ = ctx.ReplyEphemeral("Something went wrong running that command.")
		}
	}()

	if err := c.checkClearance(ctx, cmd); err != nil {
		return
	}

	if err := cmd.Run(ctx); err != nil {
		logger.Error("Error executing command "+name+": "+err.Error(), "Client")
		if errors.UserFacing(err) {
			_ = ctx.ReplyEphemeral(err.Error())
		} else {
			_ = ctx.ReplyEphemeral("Something went wrong running that command.")
		}
	}
}

// Stop closes the gateway session
func (c *ExtendedClient) Stop() error {
	c.mu.Lock()
	c.isReady = false
	c.mu.Unlock()

	if c.Session != nil {
		return c.Session.Close()
	}
	return nil
}

// IsReady returns true once the gateway handshake has completed
func (c *ExtendedClient) IsReady() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isReady
}

// Uptime returns how long the client has been running
func (c *ExtendedClient) Uptime() time.Duration {
	return time.Since(c.StartTime)
}

// MemberRoles returns the role IDs of a guild member, from state when
// cached and from the API otherwise. Satisfies the clearance resolver's
// member lookup.
func (c *ExtendedClient) MemberRoles(userID string) ([]string, error) {
	member, err := c.Session.State.Member(c.guildID, userID)
	if err != nil {
		member, err = c.Session.GuildMember(c.guildID, userID)
		if err != nil {
			return nil, err
		}
	}
	return member.Roles, nil
}

// SendDM sends a direct message embed to a user. Returns an error when
// the user cannot be reached (closed DMs, left the platform).
func (c *ExtendedClient) SendDM(userID string, embed *discordgo.MessageEmbed) error {
	channel, err := c.Session.UserChannelCreate(userID)
	if err != nil {
		return err
	}
	_, err = c.Session.ChannelMessageSendEmbed(channel.ID, embed)
	return err
}

// GetConfig returns the bot configuration
func (c *ExtendedClient) GetConfig() *config.Config {
	return config.Get()
}
