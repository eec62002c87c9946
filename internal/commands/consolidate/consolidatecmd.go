// Package consolidate implements the main pombom command: scan every
// module POM, merge dependency versions into one map, strip per-module
// version pins, and write the parent POM with the injected BOM.
package consolidate

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/indaco/pombom/internal/config"
	"github.com/indaco/pombom/internal/core"
	"github.com/indaco/pombom/internal/merger"
	"github.com/indaco/pombom/internal/printer"
	"github.com/indaco/pombom/internal/runner"
	"github.com/indaco/pombom/internal/tui"
)

// Prompter abstracts the confirmation prompt for testability.
type Prompter interface {
	Confirm(title, description string) (bool, error)
}

// TUIPrompter implements Prompter using the tui package.
type TUIPrompter struct{}

// Confirm shows a yes/no confirmation prompt.
func (p *TUIPrompter) Confirm(title, description string) (bool, error) {
	return tui.Confirm(title, description)
}

// Run returns the "consolidate" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "consolidate",
		Aliases: []string{"run"},
		Usage:   "Consolidate module dependency versions into a parent BOM",
		UsageText: `pombom consolidate [options]

Scans the parent pom.xml for modules, merges every module's dependency
versions with a highest-version-wins policy, strips per-module version
pins, and writes the rewritten documents as pom_new.xml next to each
original. Originals are never modified.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"d"},
				Usage:       "Base directory containing the parent pom.xml",
				Value:       cfg.Dir,
				DefaultText: ".",
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Output filename written next to each original POM",
				Value:       cfg.Output,
				DefaultText: runner.DefaultOutputName,
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Scan and merge without writing any file",
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Skip the confirmation prompt",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runConsolidateCmd(ctx, cmd, &TUIPrompter{})
		},
	}
}

// runConsolidateCmd executes the consolidate command.
func runConsolidateCmd(ctx context.Context, cmd *cli.Command, prompter Prompter) error {
	opts := runner.Options{
		Dir:    cmd.String("dir"),
		Output: cmd.String("output"),
		DryRun: cmd.Bool("dry-run"),
		Report: printEvent,
	}

	runCfg := &config.Config{Dir: opts.Dir, Output: opts.Output}
	if err := runCfg.Validate(); err != nil {
		return err
	}

	if !opts.DryRun && !cmd.Bool("yes") && tui.IsInteractive() {
		ok, err := prompter.Confirm(
			fmt.Sprintf("Write %s files under %s?", opts.Output, opts.Dir),
			"Original pom.xml files are left untouched.",
		)
		if err != nil {
			return err
		}
		if !ok {
			printer.PrintFaint("Aborted.")
			return nil
		}
	}

	r := runner.New(core.NewOSFileSystem(), opts)
	summary, err := r.Run(ctx)
	if err != nil {
		return fmt.Errorf("consolidation failed: %w", err)
	}

	printSummary(summary, opts.DryRun)
	return nil
}

// printEvent renders a merge diagnostic through the printer.
func printEvent(event merger.Event) {
	switch event.Level {
	case merger.LevelWarn:
		printer.PrintWarning(event.Message)
	default:
		printer.PrintInfo(event.Message)
	}
}

// printSummary prints the run outcome.
func printSummary(summary *runner.Summary, dryRun bool) {
	fmt.Println()
	if dryRun {
		printer.PrintBold("Dry run, nothing written")
	} else {
		printer.PrintSuccess(fmt.Sprintf("BOM written to %s", summary.ParentOutput))
	}
	printer.PrintFaint(fmt.Sprintf(
		"modules: %d processed, %d skipped | managed dependencies: %d | properties: %d",
		len(summary.Processed), len(summary.Skipped), summary.Dependencies, summary.Properties,
	))
}
