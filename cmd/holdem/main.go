package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-ranker/internal/config"
	"github.com/lox/holdem-ranker/internal/handid"
	"github.com/lox/holdem-ranker/internal/render"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config   string `short:"c" help:"Path to HCL config file" default:"holdem.hcl" type:"path"`
	LogLevel string `help:"Override the configured log level (debug, info, warn, error)"`
	NoColor  bool   `help:"Disable colored output"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Eval     EvalCmd          `cmd:"" help:"Classify 5 to 7 cards"`
	Compare  CompareCmd       `cmd:"" help:"Decide a heads-up showdown between two hands"`
	Showdown ShowdownCmd      `cmd:"" help:"Deal and play out one heads-up hand"`
	Odds     OddsCmd          `cmd:"" help:"Estimate equity by Monte Carlo simulation"`
	Play     PlayCmd          `cmd:"" help:"Play heads-up hands interactively"`
}

// env is what a command needs to run: resolved config, a logger and a
// renderer bound to the output stream.
type env struct {
	cfg    *config.Config
	logger *log.Logger
	render *render.Renderer
	out    io.Writer
	ids    *handid.Generator
}

func (g *Globals) env(out, logOut io.Writer) (*env, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	logger := log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "holdem",
		Level:           cfg.Level(),
	})
	logger.Debug("Loaded config", "path", g.Config, "level", cfg.LogLevel)

	color := cfg.Color() && !g.NoColor
	return &env{
		cfg:    cfg,
		logger: logger,
		render: render.New(out, color, cfg.Unicode()),
		out:    out,
		ids:    handid.NewGenerator(nil, nil),
	}, nil
}

// seed picks the flag value, then the configured seed, then the time.
func (e *env) seed(flag *int64) int64 {
	if flag != nil {
		return *flag
	}
	if e.cfg.Seed != nil {
		return *e.cfg.Seed
	}
	return randSeed()
}

func (e *env) printf(format string, args ...any) {
	fmt.Fprintf(e.out, format, args...)
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem"),
		kong.Description("Texas Hold'em hand ranking, showdowns and equity"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

func stdEnv(g *Globals) (*env, error) {
	return g.env(os.Stdout, os.Stderr)
}
