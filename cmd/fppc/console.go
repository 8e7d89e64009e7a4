package main

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/rlch/fppc/console"
)

func consoleCommand() *cli.Command {
	return &cli.Command{
		Name:  "console",
		Usage: "Start the interactive parser console",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "plain",
				Usage: "line mode even when attached to a terminal",
			},
		},
		Action: runConsole,
	}
}

func runConsole(ctx context.Context, cmd *cli.Command) error {
	cfg, _, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	defer func() {
		_ = logger.Sync()
	}()

	tty := isatty.IsTerminal(os.Stdout.Fd()) && isatty.IsTerminal(os.Stdin.Fd())
	logger.Debug("starting console", zap.Bool("tty", tty), zap.Bool("plain", cmd.Bool("plain")))

	if tty && !cmd.Bool("plain") {
		return console.RunTUI(ctx, os.Stdin, os.Stdout, cfg.PromptOrDefault(), cfg.ColorEnabled(), logger)
	}

	return console.NewSession(cfg.PromptOrDefault(), logger).Run(ctx, os.Stdin, os.Stdout, os.Stderr)
}
