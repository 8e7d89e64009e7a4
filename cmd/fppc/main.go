// Command fppc parses graph-pattern fragments from the command line, an
// interactive console, or golden case files.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rlch/fppc"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "fppc",
		Usage: "Parse graph-pattern query fragments",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to .fppc.yaml (default: nearest above the working directory)",
				Sources: cli.EnvVars("FPPC_CONFIG"),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			parseCommand(),
			consoleCommand(),
			checkCommand(),
		},
	}
}

// setup loads configuration and builds the logger for a command.
func setup(cmd *cli.Command) (*fppc.Config, string, *zap.Logger, error) {
	cfg, dir, err := loadConfig(cmd.String("config"))
	if err != nil {
		return nil, "", nil, err
	}

	logger, err := newLogger(cfg.LogLevelOrDefault(), cmd.Bool("debug"))
	if err != nil {
		return nil, "", nil, err
	}

	return cfg, dir, logger, nil
}

// newLogger logs to stderr so stdout stays free for results.
func newLogger(level string, debug bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{"stderr"}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	if debug {
		lvl = zapcore.DebugLevel
	}

	config.Level = zap.NewAtomicLevelAt(lvl)

	return config.Build()
}
