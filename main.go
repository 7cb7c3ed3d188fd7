package main

import (
	"context"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/shandysiswandi/goexception/internal/app"
)

type CLI struct {
	Config   string `short:"c" help:"Configuration file path" default:"/config/config.yaml" env:"CONFIG_PATH"`
	Local    bool   `help:"Read ./config/config.yaml instead of --config" env:"LOCAL"`
	LogLevel string `name:"log-level" help:"Override log.level from the config file" env:"LOG_LEVEL"`
}

func main() {
	// .env is optional; values already in the environment win.
	_ = godotenv.Load()

	var cli CLI
	kong.Parse(&cli,
		kong.Name("goexception"),
		kong.Description("HTTP service that maps marker-tagged errors to status codes and error views."),
	)

	application := app.New(app.Options{
		ConfigPath: cli.Config,
		Local:      cli.Local,
		LogLevel:   cli.LogLevel,
	})
	wait := application.Start() // Start the application and wait for the termination signal
	<-wait                      // Wait for the application to receive a termination signal

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	application.Stop(ctx) // Stop the application gracefully
}
