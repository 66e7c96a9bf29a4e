// Package linter runs a set of configured rules over many files.
package linter

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/ChainSafe/rulewalk/analyzer"
	"github.com/ChainSafe/rulewalk/ast"
	"github.com/ChainSafe/rulewalk/tsparser"
)

// RuleError reports a rule that panicked while walking a file. Failures from
// the other rules on that file are kept.
type RuleError struct {
	Rule  string
	File  string
	Panic any
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("rule %s panicked on %s: %v", e.Rule, e.File, e.Panic)
}

// Result holds everything found in one file.
type Result struct {
	File     string
	Failures []*analyzer.Failure
	Errors   []error
}

type Option func(*Linter)

// WithLogger sets the logger used for progress and rule errors.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Linter) {
		l.logger = logger
	}
}

// WithJobs limits the number of files linted concurrently. Values below one
// mean GOMAXPROCS.
func WithJobs(jobs int) Option {
	return func(l *Linter) {
		l.jobs = jobs
	}
}

type Linter struct {
	rules  []analyzer.Rule
	logger *slog.Logger
	jobs   int
}

func New(rules []analyzer.Rule, opts ...Option) *Linter {
	l := &Linter{
		rules:  rules,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.jobs <= 0 {
		l.jobs = runtime.GOMAXPROCS(0)
	}
	return l
}

// LintFile applies every rule to file. The failures are sorted by position
// and never nil.
func (l *Linter) LintFile(file *ast.File) ([]*analyzer.Failure, []error) {
	failures := make([]*analyzer.Failure, 0)
	var errs []error
	for _, rule := range l.rules {
		found, err := l.apply(rule, file)
		if err != nil {
			l.logger.Error("rule failed", "rule", rule.Name(), "file", file.FileName, "error", err)
			errs = append(errs, err)
			continue
		}
		l.logger.Debug("rule applied", "rule", rule.Name(), "file", file.FileName, "failures", len(found))
		failures = append(failures, found...)
	}
	SortFailures(failures)
	return failures, errs
}

func (l *Linter) apply(rule analyzer.Rule, file *ast.File) (failures []*analyzer.Failure, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &RuleError{Rule: rule.Name(), File: file.FileName, Panic: r}
		}
	}()
	return rule.Apply(file), nil
}

// LintFiles parses and lints paths concurrently. Results are returned in the
// order of paths; a file that cannot be read or parsed has its error recorded
// in its Result and does not stop the others. The returned error is non-nil
// only when ctx is cancelled.
func (l *Linter) LintFiles(ctx context.Context, parser tsparser.Parser, paths []string) ([]Result, error) {
	results := make([]Result, len(paths))
	if len(paths) == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(l.jobs, len(paths)))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			results[i] = Result{File: path, Failures: make([]*analyzer.Failure, 0)}
			file, err := parser.Parse(path)
			if err != nil {
				l.logger.Warn("failed to parse file", "file", path, "error", err)
				results[i].Errors = []error{err}
				return nil
			}
			results[i].Failures, results[i].Errors = l.LintFile(file)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("lint cancelled: %w", err)
	}
	return results, nil
}

// Failures flattens the failures of all results.
func Failures(results []Result) []*analyzer.Failure {
	all := make([]*analyzer.Failure, 0)
	for _, r := range results {
		all = append(all, r.Failures...)
	}
	return all
}

// SortFailures orders failures by file, position, then rule name.
func SortFailures(failures []*analyzer.Failure) {
	sort.SliceStable(failures, func(i, j int) bool {
		a, b := failures[i], failures[j]
		if a.FileName != b.FileName {
			return a.FileName < b.FileName
		}
		if a.Start.Offset != b.Start.Offset {
			return a.Start.Offset < b.Start.Offset
		}
		if a.End.Offset != b.End.Offset {
			return a.End.Offset < b.End.Offset
		}
		return a.RuleName < b.RuleName
	})
}
