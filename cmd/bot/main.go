// Package main is the entry point for the Warden moderation bot.
// It initializes all systems and starts the bot.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/WardenLabs/WardenGo/internal/commands"
	"github.com/WardenLabs/WardenGo/internal/events"
	"github.com/WardenLabs/WardenGo/pkg/clearance"
	"github.com/WardenLabs/WardenGo/pkg/config"
	"github.com/WardenLabs/WardenGo/pkg/database"
	"github.com/WardenLabs/WardenGo/pkg/discord"
	"github.com/WardenLabs/WardenGo/pkg/errors"
	"github.com/WardenLabs/WardenGo/pkg/logger"
	"github.com/WardenLabs/WardenGo/pkg/mqtt"
	"github.com/WardenLabs/WardenGo/pkg/sweeper"
	"github.com/WardenLabs/WardenGo/pkg/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Starting Warden...", "Main")

	var discordClient *discord.ExtendedClient
	errors.Init(cfg.ErrorWebhook, func() {
		if discordClient != nil {
			_ = discordClient.Stop()
		}
	})

	// A database that cannot be reached at startup is a configuration
	// error; the ledger is not optional.
	db, err := database.Init(cfg.MongoDBURL, cfg.DBName)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error connecting to database: %v", err), "Main")
		os.Exit(1)
	}
	defer func() { _ = db.Disconnect() }()

	database.InitModlogService(db)
	database.InitMetadataService(db)

	if err := database.Meta().Load(context.Background()); err != nil {
		logger.Critical(fmt.Sprintf("Error loading guild configuration: %v", err), "Main")
		os.Exit(1)
	}

	mqttClientID := "warden"
	if !cfg.IsProd() {
		mqttClientID = "warden_canary"
	}
	mqttClient := mqtt.Init(cfg.MQTTHost, cfg.MQTTPort, cfg.MQTTUser, cfg.MQTTPassword, mqttClientID)
	defer mqttClient.Destroy()

	webServer := web.Init(cfg.LogsWebhook)
	web.SetupAPIRoutes(webServer)
	webServer.StartAsync(cfg.Port)

	discordClient, err = discord.Init(cfg.BotToken, cfg.GuildID)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}

	commands.RegisterAll(discordClient)
	events.RegisterAll(discordClient)

	// The guild owner anchors clearance level 9; failing to identify
	// them is a configuration error. The fetch goes over REST, so it
	// works before the gateway opens, and the resolver must be in place
	// before the first interaction can arrive.
	guild, err := discordClient.Session.Guild(cfg.GuildID)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error fetching guild %s: %v", cfg.GuildID, err), "Main")
		os.Exit(1)
	}

	discordClient.Resolver = clearance.NewResolver(
		cfg.OwnerIDs,
		guild.OwnerID,
		discordClient,
		database.Meta().Current,
	)

	if err := discordClient.Start(); err != nil {
		logger.Critical(fmt.Sprintf("Error starting Discord client: %v", err), "Main")
		os.Exit(1)
	}
	defer func() { _ = discordClient.Stop() }()

	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	go sweeper.New(database.Modlogs(), discord.NewGateway(discordClient)).Run(sweepCtx)

	logger.Success("Warden started.", "Main")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.System("Shutting down Warden...", "Main")
}
