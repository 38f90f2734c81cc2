package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/joho/godotenv"

	"github.com/lox/camelcards/cmd/camelcards/shared"
	"github.com/lox/camelcards/internal/config"
	"github.com/lox/camelcards/internal/deck"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config   string `help:"Path to HCL config file" default:"${config_file}" env:"CAMELCARDS_CONFIG"`
	LogLevel string `help:"Log level: debug, info, warn, error (overrides config)" env:"CAMELCARDS_LOG_LEVEL"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Score    ScoreCmd         `cmd:"" help:"Rank a session of hands and print the total winnings"`
	Classify ClassifyCmd      `cmd:"" help:"Print the category of individual hands"`
}

// env is everything a command needs from the outside world
type env struct {
	cfg    *config.Config
	logger *log.Logger
	clock  quartz.Clock
	stdin  io.Reader
	stdout io.Writer
}

// environment loads the config file and builds the logger
func (g *Globals) environment() (*env, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := shared.SetupLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded config", "file", g.Config, "variant", cfg.Variant, "strict", cfg.Strict, "custom_mapping", cfg.Mapping != nil)

	return &env{
		cfg:    cfg,
		logger: logger,
		clock:  quartz.NewReal(),
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}, nil
}

// mapping picks the rank mapping: an explicit --variant wins over the config
func (e *env) mapping(variant string) (*deck.Mapping, error) {
	if variant != "" {
		return config.BuiltinMapping(variant)
	}
	return e.cfg.RankMapping()
}

func main() {
	// A missing .env is fine; kong reads whatever ends up in the environment
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("camelcards"),
		kong.Description("Rank Camel Cards hands and total their winnings"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFile,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
