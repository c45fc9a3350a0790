package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/rich-27/sudoku-maker-arrow-generator/internal"
	"github.com/rich-27/sudoku-maker-arrow-generator/internal/mcpserver"
	pkgconfig "github.com/rich-27/sudoku-maker-arrow-generator/pkg/config"
)

// commonFlags returns a fresh flag set so each subcommand carries its
// own instances.
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to config file",
			DefaultText: "config/config.yaml",
			Value:       "config/config.yaml",
			Sources:     cli.EnvVars("APP_CONFIG_FILE"),
		},
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "Path to the arrow specification file (overrides config)",
			Sources: cli.EnvVars("APP_INPUT_FILE"),
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Overlay output directory (overrides config)",
			Sources: cli.EnvVars("APP_OUTPUT_DIR"),
		},
	}
}

// loadConfig builds the effective configuration: defaults, then the
// config file, then flag overrides. The default config path is
// optional; a path given explicitly must exist.
func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()

	configPath := cmd.String("config")
	if cmd.IsSet("config") {
		if err := pkgconfig.Load(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if _, err := pkgconfig.LoadIfExists(configPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if input := cmd.String("input"); input != "" {
		cfg.Input.Path = input
	}
	if output := cmd.String("output"); output != "" {
		cfg.Output.Dir = output
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runCompile(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := internal.Run(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

func runWatch(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := internal.RunWatch(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := internal.RunServe(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

// runMCP serves the compiler over MCP stdio. No config is needed and
// no stdout logger is installed: the transport owns stdout.
func runMCP(_ context.Context, _ *cli.Command) error {
	return mcpserver.New().ServeStdio()
}

func main() {
	cmd := &cli.Command{
		Name:   "arrowgen",
		Usage:  "Generate Sudoku Maker cosmetic-overlay arrows from grid notation",
		Action: runCompile,
		Flags:  commonFlags(),
		Commands: []*cli.Command{
			{
				Name:   "compile",
				Usage:  "Compile the specification file once and write overlays",
				Action: runCompile,
				Flags:  commonFlags(),
			},
			{
				Name:   "watch",
				Usage:  "Recompile whenever the specification file changes",
				Action: runWatch,
				Flags:  commonFlags(),
			},
			{
				Name:   "serve",
				Usage:  "Watch and expose compiled overlays over HTTP and SSE",
				Action: runServe,
				Flags:  commonFlags(),
			},
			{
				Name:   "mcp",
				Usage:  "Serve the compiler to MCP clients over stdio",
				Action: runMCP,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
