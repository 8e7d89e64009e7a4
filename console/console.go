// Package console implements the interactive front end: each input line names
// an entry point and the text to parse, and the result is printed in
// canonical form.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/rlch/fppc"
)

// Console errors.
var (
	ErrMissingInput   = errors.New("please provide a command and input. Example: node (p: Person)")
	ErrUnknownCommand = errors.New("unknown command")
)

// Result is the outcome of evaluating one console line.
type Result struct {
	Command string
	Input   string
	// Output is the canonical rendering on success.
	Output string
	Err    error
	// Skip is set for blank lines.
	Skip bool
	// Quit is set for quit/exit.
	Quit bool
}

// OK reports whether the line parsed successfully.
func (r Result) OK() bool {
	return !r.Skip && !r.Quit && r.Err == nil
}

// Text returns the line to print for the result.
func (r Result) Text() string {
	switch {
	case r.Skip:
		return ""
	case r.Quit:
		return "Goodbye!"
	case r.Err == nil:
		return "✓ Valid: " + r.Output
	}

	var pe *fppc.ParseError
	if errors.As(r.Err, &pe) {
		return "✗ Parse error: " + pe.Error()
	}

	return "Error: " + r.Err.Error()
}

// Eval evaluates a single console line.
func Eval(line string) Result {
	line = strings.TrimSpace(line)
	if line == "" {
		return Result{Skip: true}
	}

	if line == "quit" || line == "exit" {
		return Result{Quit: true}
	}

	command, input, found := strings.Cut(line, " ")
	if !found {
		return Result{Command: command, Err: ErrMissingInput}
	}

	kind, ok := fppc.LookupKind(command)
	if !ok {
		return Result{
			Command: command,
			Input:   input,
			Err:     fmt.Errorf("%w: %s. Use: %s", ErrUnknownCommand, command, strings.Join(CommandNames(), ", ")),
		}
	}

	node, err := kind.Parse(input)
	if err != nil {
		return Result{Command: command, Input: input, Err: err}
	}

	return Result{Command: command, Input: input, Output: fppc.Render(node)}
}

// CommandNames lists the accepted command names.
func CommandNames() []string {
	infos := fppc.Kinds()

	names := make([]string, len(infos))
	for i, k := range infos {
		names[i] = string(k.Kind)
	}

	return names
}

// Help returns the banner printed when a session starts.
func Help() string {
	var b strings.Builder

	b.WriteString("=== FPPC Parser Interactive Console ===\n")
	b.WriteString("Commands:\n")

	for _, k := range fppc.Kinds() {
		fmt.Fprintf(&b, "  %-16s <input> - %s\n", k.Kind, k.Usage)
	}

	b.WriteString("  quit                     - Exit\n")

	return b.String()
}

// Session runs the console over plain reader/writer streams.
type Session struct {
	Prompt string
	Logger *zap.Logger
}

// NewSession creates a line-mode session.
func NewSession(prompt string, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Session{Prompt: prompt, Logger: logger}
}

// Run reads lines from in until EOF, quit, or ctx is done. Successful results
// go to out, failures to errOut.
func (s *Session) Run(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	fmt.Fprintln(out, Help())

	scanner := bufio.NewScanner(in)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(out, s.Prompt)

		if !scanner.Scan() {
			return scanner.Err()
		}

		res := Eval(scanner.Text())
		s.Logger.Debug("console line",
			zap.String("command", res.Command),
			zap.String("input", res.Input),
			zap.Bool("ok", res.OK()),
		)

		switch {
		case res.Skip:
			continue
		case res.Quit:
			fmt.Fprintln(out, res.Text())

			return nil
		case res.Err != nil:
			fmt.Fprintln(errOut, res.Text())
		default:
			fmt.Fprintln(out, res.Text())
		}
	}
}
