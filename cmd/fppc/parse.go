package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/rlch/fppc"
)

// ErrParseUsage is returned when `parse` is missing its arguments.
var ErrParseUsage = errors.New("usage: fppc parse <kind> <text...>")

func parseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Parse text with one entry point and print its canonical form",
		ArgsUsage: "<kind> <text...>",
		Description: "Kinds: label, simple, property, descriptor_type, descriptor, node, path, expr.\n" +
			"Remaining arguments are joined with spaces.",
		Action: runParse,
	}
}

func runParse(_ context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) < 2 {
		return ErrParseUsage
	}

	_, _, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	defer func() {
		_ = logger.Sync()
	}()

	kind, text := fppc.Kind(args[0]), strings.Join(args[1:], " ")
	logger.Debug("parsing", zap.String("kind", string(kind)), zap.String("input", text))

	node, err := fppc.ParseKind(kind, text)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.Root().Writer, fppc.Render(node))

	return err
}
