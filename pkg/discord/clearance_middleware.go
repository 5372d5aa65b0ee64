package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/WardenLabs/WardenGo/pkg/clearance"
	"github.com/WardenLabs/WardenGo/pkg/config"
	"github.com/WardenLabs/WardenGo/pkg/logger"
)

// checkClearance enforces a command's required clearance before it runs.
// Owner-only commands bypass the tier table entirely. Returning an error
// means the refusal has already been shown to the invoker.
func (c *ExtendedClient) checkClearance(ctx *CommandContext, cmd *Command) error {
	userID := ctx.User().ID

	if cmd.IsDev {
		if !config.Get().IsOwner(userID) {
			_ = ctx.ReplyEphemeral("This command is restricted to the bot owners.")
			logger.Warn(fmt.Sprintf("Non-owner %s tried dev command %s", userID, cmd.Name), "Clearance")
			return fmt.Errorf("user %s is not an owner", userID)
		}
		return nil
	}

	if cmd.Clearance <= 0 {
		return nil
	}

	// Fail closed while the resolver is still being wired up at startup.
	if c.Resolver == nil {
		_ = ctx.ReplyEphemeral("The bot is still starting up, try again in a moment.")
		logger.Warn(fmt.Sprintf("Command %s invoked before the clearance resolver was ready", cmd.Name), "Clearance")
		return fmt.Errorf("clearance resolver not ready")
	}

	level := c.Resolver.Resolve(userID)
	if err := clearance.Check(level, cmd.Clearance); err != nil {
		embed := &discordgo.MessageEmbed{
			Title:       "🚫 Access Denied",
			Description: fmt.Sprintf("This command requires clearance **%d**. You have clearance **%d**.", cmd.Clearance, level),
			Color:       0xFF0000,
			Timestamp:   time.Now().Format(time.RFC3339),
		}
		_ = ctx.ReplyEphemeralEmbed(embed)
		logger.Warn(fmt.Sprintf("User %s (clearance %d) denied command %s (requires %d)", userID, level, cmd.Name, cmd.Clearance), "Clearance")
		return err
	}

	return nil
}

// GuardTarget refuses moderation against a target holding any staff
// clearance and shows the refusal to the invoker. Returns nil when the
// target is fair game.
func (ctx *CommandContext) GuardTarget(targetID string) error {
	if err := ctx.Client.Resolver.GuardTarget(targetID); err != nil {
		_ = ctx.ReplyEphemeral("That user holds a staff position and cannot be sanctioned.")
		return err
	}
	return nil
}
