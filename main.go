package main

import (
	"log/slog"
	"os"

	"stockicon/config"
	"stockicon/generate"
	"stockicon/render"

	"github.com/alecthomas/kong"
)

type CLI struct {
	LogLevel string `help:"Log level" enum:"debug,info,warn,error" default:"${log_level}"`

	Generate generate.CLICmd `cmd:"" default:"withargs" help:"Render the icon set into a folder"`
	Render   render.CLICmd   `cmd:"" help:"Render a single icon to a file"`
}

func setupLogging(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("stockicon"),
		kong.Description("Renders the stock chart application icons."),
		kong.UsageOnError(),
		cfg.Vars(),
		kong.Bind(&cfg),
	)

	setupLogging(cli.LogLevel)
	slog.Debug("running", "command", kctx.Command())

	kctx.FatalIfErrorf(kctx.Run())
}
