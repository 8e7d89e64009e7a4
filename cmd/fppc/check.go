package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/rlch/fppc/golden"
)

// ErrCheckFailed is returned when any golden case fails.
var ErrCheckFailed = errors.New("golden cases failed")

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Run golden case files (*" + golden.Suffix + ")",
		ArgsUsage: "[files or directories...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "update",
				Aliases: []string{"u"},
				Usage:   "rewrite expectations from current output",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "list passing cases too",
			},
		},
		Action: runCheck,
	}
}

func runCheck(ctx context.Context, cmd *cli.Command) error {
	cfg, dir, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	defer func() {
		_ = logger.Sync()
	}()

	args := cmd.Args().Slice()
	if len(args) == 0 {
		args = cfg.CheckPaths(dir)
	}

	if len(args) == 0 {
		args = []string{"."}
	}

	files, err := golden.Collect(args)
	if err != nil {
		return err
	}

	logger.Debug("collected case files", zap.Strings("files", files))

	report, err := golden.NewRunner(logger, cmd.Bool("update")).Run(ctx, files)
	if err != nil {
		return err
	}

	out := cmd.Root().Writer

	if cmd.Bool("verbose") {
		for _, o := range report.Outcomes {
			if o.Passed() {
				fmt.Fprintf(out, "ok   %s: %s\n", o.File, o.Case.Label())
			}
		}
	}

	failed := report.Failed()
	if cmd.Bool("update") {
		fmt.Fprintf(out, "updated %d cases in %d files\n", len(report.Outcomes), len(files))

		return nil
	}

	for _, o := range failed {
		fmt.Fprintf(out, "FAIL %s\n", o.Describe())
	}

	fmt.Fprintf(out, "%d passed, %d failed\n", len(report.Outcomes)-len(failed), len(failed))

	if len(failed) > 0 {
		return fmt.Errorf("%w: %d of %d", ErrCheckFailed, len(failed), len(report.Outcomes))
	}

	return nil
}
