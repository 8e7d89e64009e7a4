// Package golden runs YAML case files through the parser entry points and
// compares canonical renderings against recorded expectations.
package golden

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/boyter/gocodewalker"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/rlch/fppc"
)

// Suffix identifies golden case files.
const Suffix = ".golden.yaml"

// Errors.
var (
	ErrNoCases    = errors.New("golden: no case files found")
	ErrMissingKey = errors.New("golden: case is missing a field")
)

// File is a parsed case file.
type File struct {
	Path  string  `yaml:"-"`
	Cases []*Case `yaml:"cases"`
}

// Case is a single input with its expected outcome.
type Case struct {
	Name  string    `yaml:"name,omitempty"`
	Kind  fppc.Kind `yaml:"kind"`
	Input string    `yaml:"input"`
	// Want is the canonical rendering expected on success.
	Want string `yaml:"want,omitempty"`
	// Error marks cases that must fail to parse.
	Error bool `yaml:"error,omitempty"`
}

// Label returns the case name, or its input when unnamed.
func (c *Case) Label() string {
	if c.Name != "" {
		return c.Name
	}

	return string(c.Kind) + " " + c.Input
}

// Outcome is the result of running one case.
type Outcome struct {
	File string
	Case *Case
	Got  string
	Err  error
}

// Passed reports whether the outcome matches the case's expectation.
func (o Outcome) Passed() bool {
	if o.Case.Error {
		return o.Err != nil
	}

	return o.Err == nil && o.Got == o.Case.Want
}

// Describe explains a failed outcome.
func (o Outcome) Describe() string {
	switch {
	case o.Case.Error && o.Err == nil:
		return fmt.Sprintf("%s: %s: expected parse error, got %q", o.File, o.Case.Label(), o.Got)
	case o.Err != nil && !o.Case.Error:
		return fmt.Sprintf("%s: %s: unexpected error: %v", o.File, o.Case.Label(), o.Err)
	default:
		return fmt.Sprintf("%s: %s:\n  want: %s\n  got:  %s", o.File, o.Case.Label(), o.Case.Want, o.Got)
	}
}

// Report collects outcomes for a run.
type Report struct {
	Outcomes []Outcome
}

// Failed returns the outcomes that did not pass.
func (r *Report) Failed() []Outcome {
	var out []Outcome

	for _, o := range r.Outcomes {
		if !o.Passed() {
			out = append(out, o)
		}
	}

	return out
}

// LoadFile reads and validates a case file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	f, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f.Path = path

	return f, nil
}

// Decode parses case file contents.
func Decode(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	for i, c := range f.Cases {
		if c == nil || c.Kind == "" {
			return nil, fmt.Errorf("%w: case %d: kind", ErrMissingKey, i)
		}

		if _, ok := fppc.LookupKind(string(c.Kind)); !ok {
			return nil, fmt.Errorf("case %d: %w: %s", i, fppc.ErrUnknownKind, c.Kind)
		}
	}

	return &f, nil
}

// Encode serialises a case file.
func Encode(f *File) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(f); err != nil {
		return nil, err
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// RunCase evaluates one case.
func RunCase(c *Case) Outcome {
	node, err := fppc.ParseKind(c.Kind, c.Input)
	if err != nil {
		return Outcome{Case: c, Err: err}
	}

	return Outcome{Case: c, Got: fppc.Render(node)}
}

// RunFile evaluates every case in f.
func RunFile(f *File) []Outcome {
	out := make([]Outcome, len(f.Cases))
	for i, c := range f.Cases {
		out[i] = RunCase(c)
		out[i].File = f.Path
	}

	return out
}

// Runner evaluates case files.
type Runner struct {
	Logger *zap.Logger
	// Update rewrites expectations from current output instead of comparing.
	Update bool
}

// NewRunner creates a Runner.
func NewRunner(logger *zap.Logger, update bool) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{Logger: logger, Update: update}
}

// Run loads and evaluates the files concurrently. Outcomes keep file order.
func (r *Runner) Run(ctx context.Context, paths []string) (*Report, error) {
	results := make([][]Outcome, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			f, err := LoadFile(path)
			if err != nil {
				return err
			}

			outcomes := RunFile(f)
			r.Logger.Debug("ran case file", zap.String("path", path), zap.Int("cases", len(outcomes)))

			if r.Update {
				if err := rewrite(f, outcomes); err != nil {
					return err
				}
			}

			results[i] = outcomes

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{}
	for _, outcomes := range results {
		report.Outcomes = append(report.Outcomes, outcomes...)
	}

	return report, nil
}

// rewrite stores current results as the expectations of f.
func rewrite(f *File, outcomes []Outcome) error {
	for i, o := range outcomes {
		c := f.Cases[i]
		c.Error = o.Err != nil
		c.Want = o.Got
	}

	data, err := Encode(f)
	if err != nil {
		return err
	}

	return os.WriteFile(f.Path, data, 0o600)
}

// Collect expands paths into case files, walking directories with
// .gitignore awareness.
func Collect(paths []string) ([]string, error) {
	var (
		mu    sync.Mutex
		files []string
	)

	add := func(path string) {
		mu.Lock()
		files = append(files, filepath.Clean(path))
		mu.Unlock()
	}

	for _, arg := range paths {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		switch {
		case info.IsDir():
			if err := walkDir(arg, add); err != nil {
				return nil, err
			}
		case strings.HasSuffix(arg, Suffix):
			add(arg)
		}
	}

	if len(files) == 0 {
		return nil, ErrNoCases
	}

	// A file named directly and reached through its directory is run once.
	slices.Sort(files)
	files = slices.Compact(files)

	return files, nil
}

// walkDir walks a directory for case files, respecting .gitignore.
func walkDir(root string, callback func(path string)) error {
	fileListQueue := make(chan *gocodewalker.File, 100)

	fileWalker := gocodewalker.NewFileWalker(root, fileListQueue)
	// Multi-dot names may report either extension form.
	fileWalker.AllowListExtensions = []string{"yaml", "golden.yaml"}

	var (
		errMu   sync.Mutex
		walkErr error
	)
	fileWalker.SetErrorHandler(func(e error) bool {
		errMu.Lock()
		if walkErr == nil {
			walkErr = e
		}
		errMu.Unlock()
		return true
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for f := range fileListQueue {
			if strings.HasSuffix(f.Location, Suffix) {
				callback(f.Location)
			}
		}
	}()

	if err := fileWalker.Start(); err != nil {
		return err
	}

	wg.Wait()

	errMu.Lock()
	defer errMu.Unlock()
	return walkErr
}
