// Package main provides a utility to sync the guild's slash commands.
// It removes stale commands and registers the currently-defined set.
//
// Usage:
//
//	go run cmd/sync-commands/main.go [options]
//
// Options:
//
//	-list    List the registered guild commands
//	-clean   Remove all guild commands without registering new ones
//	-sync    Remove all guild commands and register the current set (default)
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/WardenLabs/WardenGo/internal/commands"
	"github.com/WardenLabs/WardenGo/pkg/config"
	"github.com/WardenLabs/WardenGo/pkg/discord"
	"github.com/WardenLabs/WardenGo/pkg/logger"
)

func main() {
	listCmd := flag.Bool("list", false, "List the registered guild commands")
	cleanCmd := flag.Bool("clean", false, "Remove all guild commands without registering new ones")
	flag.Bool("sync", false, "Remove stale commands and register the current set")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Starting command sync utility...", "SyncCommands")

	client, err := discord.NewClient(cfg.BotToken, cfg.GuildID)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "SyncCommands")
		os.Exit(1)
	}

	if err := client.Session.Open(); err != nil {
		logger.Critical(fmt.Sprintf("Error connecting to Discord: %v", err), "SyncCommands")
		os.Exit(1)
	}
	defer client.Session.Close()

	logger.Success("Connected to Discord", "SyncCommands")

	// Build the current command set so sync knows what to register
	commands.RegisterAll(client)

	switch {
	case *listCmd:
		listCommands(client)
	case *cleanCmd:
		cleanCommands(client)
	default:
		syncCommands(client)
	}

	logger.Success("Done.", "SyncCommands")
}

func listCommands(client *discord.ExtendedClient) {
	registered, err := client.Session.ApplicationCommands(client.Session.State.User.ID, client.GuildID())
	if err != nil {
		logger.Error(fmt.Sprintf("Error listing commands: %v", err), "SyncCommands")
		return
	}

	if len(registered) == 0 {
		logger.Info("No commands registered on the guild.", "SyncCommands")
		return
	}

	for _, cmd := range registered {
		logger.Info(fmt.Sprintf("• %s - %s", cmd.Name, cmd.Description), "SyncCommands")
	}
}

func cleanCommands(client *discord.ExtendedClient) {
	if err := client.CommandHandler.UnregisterCommands(); err != nil {
		logger.Error(fmt.Sprintf("Error removing commands: %v", err), "SyncCommands")
	}
}

func syncCommands(client *discord.ExtendedClient) {
	cleanCommands(client)
	client.CommandHandler.RegisterCommands()
}
