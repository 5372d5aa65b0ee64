// Package dev provides owner-only tooling.
package dev

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"github.com/WardenLabs/WardenGo/pkg/config"
	"github.com/WardenLabs/WardenGo/pkg/database"
	"github.com/WardenLabs/WardenGo/pkg/discord"
	"github.com/WardenLabs/WardenGo/pkg/errors"
	"github.com/WardenLabs/WardenGo/pkg/logger"
)

func createEvalCommand() *discord.Command {
	return discord.NewCommand(
		"eval",
		"Evaluate Go code against the running bot (dangerous)",
		"dev",
		evalHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "code",
			Description: "Go code or expression to evaluate",
			Required:    true,
		},
	).AsDev()
}

func evalHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()
		start := time.Now()

		// Compiling the script can take a moment
		_ = ctx.Defer()

		code := ctx.GetStringOption("code")
		code = strings.TrimPrefix(code, "```go")
		code = strings.TrimPrefix(code, "```")
		code = strings.TrimSuffix(code, "```")
		code = strings.TrimSpace(code)

		i := interp.New(interp.Options{})

		if err := i.Use(stdlib.Symbols); err != nil {
			_ = ctx.EditReply(fmt.Sprintf("❌ Error loading stdlib: %v", err))
			return
		}

		// Expose the running bot as globals: Ctx, Bot, Session, DB, Config
		botExports := map[string]reflect.Value{
			"Ctx":     reflect.ValueOf(ctx),
			"Bot":     reflect.ValueOf(ctx.Client),
			"Session": reflect.ValueOf(ctx.Session),
			"DB":      reflect.ValueOf(database.Get()),
			"Ledger":  reflect.ValueOf(database.Modlogs()),
			"Config":  reflect.ValueOf(config.Get()),
		}

		if err := i.Use(interp.Exports{
			"github.com/WardenLabs/WardenGo/internal/commands/dev/dev": botExports,
		}); err != nil {
			_ = ctx.EditReply(fmt.Sprintf("❌ Error registering globals: %v", err))
			return
		}

		if _, err := i.Eval(`import . "github.com/WardenLabs/WardenGo/internal/commands/dev"`); err != nil {
			_ = ctx.EditReply(fmt.Sprintf("❌ Error importing globals: %v", err))
			return
		}

		res, err := i.Eval(code)

		var output string
		if err != nil {
			output = fmt.Sprintf("❌ **Execution error:**\n```go\n%v\n```", err)
		} else {
			resStr := "nil"
			if res.IsValid() {
				resStr = fmt.Sprintf("%#v", res.Interface())
			}
			if len(resStr) > 1900 {
				resStr = resStr[:1900] + "... (truncated)"
			}
			output = fmt.Sprintf("✅ **Result:**\n```go\n%s\n```", resStr)
		}

		logger.Debug(fmt.Sprintf("Eval finished in %s", time.Since(start)), "DevEval")
		_ = ctx.EditReply(output)
	}()
	return nil
}
