// Package cmd defines all the commands for the cli
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/ChainSafe/rulewalk/analyzer"
	"github.com/ChainSafe/rulewalk/common"
	"github.com/ChainSafe/rulewalk/linter"
	"github.com/ChainSafe/rulewalk/profile"
	"github.com/ChainSafe/rulewalk/renderer"
	"github.com/ChainSafe/rulewalk/tsparser"
)

// ExitCodeFailures is returned by lint when any rule reported a failure.
const ExitCodeFailures = 2

var (
	ConfigFlag = &cli.PathFlag{
		Name:     "config",
		Aliases:  []string{"c"},
		Usage:    "Path to the rule profile (.yaml, .yml or .toml). Default: nearest rulewalk.yaml, rulewalk.yml or rulewalk.toml",
		Required: false,
	}
	FormatFlag = &cli.StringFlag{
		Name:     "format",
		Aliases:  []string{"f"},
		Usage:    "format of the output. Options: prose, json, checkstyle",
		Required: false,
		Value:    "prose",
	}
	OutputFlag = &cli.PathFlag{
		Name:     "output",
		Aliases:  []string{"o"},
		Usage:    "output file path for report. Default: stdout",
		Required: false,
	}
	JobsFlag = &cli.IntFlag{
		Name:     "jobs",
		Aliases:  []string{"j"},
		Usage:    "number of files linted concurrently. Default: number of CPUs",
		Required: false,
	}
	VerboseFlag = &cli.BoolFlag{
		Name:     "verbose",
		Usage:    "enable debug logging",
		Required: false,
		Value:    false,
	}
)

func CreateLintCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "lint",
		Usage:       "Checks source files against the configured rules",
		Description: "Checks source files against the configured rules. Exits with status 2 when failures are found.",
		ArgsUsage:   "FILES...",
		Action:      action,
		Flags: []cli.Flag{
			ConfigFlag,
			FormatFlag,
			OutputFlag,
			JobsFlag,
			VerboseFlag,
		},
	}
}

var LintCommand = CreateLintCommand(LintFiles)

func LintFiles(ctx *cli.Context) error {
	paths := ctx.Args().Slice()
	if len(paths) == 0 {
		return errors.New("no input files")
	}
	logger := newLogger(ctx.App.ErrWriter, ctx.Bool(VerboseFlag.Name))

	prof, err := loadProfile(ctx.Path(ConfigFlag.Name), paths[0], logger)
	if err != nil {
		return fmt.Errorf("error loading profile: %w", err)
	}
	rules, err := prof.BuildRules(logger)
	if err != nil {
		return fmt.Errorf("error configuring rules: %w", err)
	}

	l := linter.New(rules, linter.WithLogger(logger), linter.WithJobs(ctx.Int(JobsFlag.Name)))
	results, err := l.LintFiles(ctx.Context, tsparser.NewParser(), paths)
	if err != nil {
		return err
	}

	failures := linter.Failures(results)
	if err := writeReport(failures, ctx.String(FormatFlag.Name), ctx.Path(OutputFlag.Name)); err != nil {
		return fmt.Errorf("unable to write report: %w", err)
	}

	var fileErrs []error
	for _, r := range results {
		fileErrs = append(fileErrs, r.Errors...)
	}
	if len(fileErrs) > 0 {
		return cli.Exit(errors.Join(fileErrs...), 1)
	}
	if len(failures) > 0 {
		return cli.Exit("", ExitCodeFailures)
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadProfile loads configPath, or the nearest profile above firstInput when
// it is empty. Without any profile every rule runs with its defaults.
func loadProfile(configPath, firstInput string, logger *slog.Logger) (*profile.Profile, error) {
	if configPath == "" {
		found, err := common.FindConfigFile(firstInput)
		if err != nil {
			logger.Debug("no profile found, using defaults", "error", err)
			return profile.Default(), nil
		}
		configPath = found
	}
	logger.Debug("loading profile", "path", configPath)
	return profile.LoadProfile(configPath)
}

// writeReport outputs the results in the specified format.
func writeReport(failures []*analyzer.Failure, format, outputPath string) error {
	rendererInstance, err := renderer.New(format)
	if err != nil {
		return err
	}

	var output *os.File
	if outputPath == "" {
		output = os.Stdout
	} else {
		absPath, err := filepath.Abs(outputPath)
		if err != nil {
			return fmt.Errorf("unable to determine absolute path: %w", err)
		}
		output, err = os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("unable to open output file: %w", err)
		}
		defer func() {
			_ = output.Close()
		}()
	}

	return rendererInstance.Render(failures, output)
}
