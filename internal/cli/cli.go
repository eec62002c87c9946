// Package cli assembles the root pombom command.
package cli

import (
	"context"
	"fmt"

	urfavecli "github.com/urfave/cli/v3"

	"github.com/indaco/pombom/internal/commands/consolidate"
	"github.com/indaco/pombom/internal/commands/scan"
	"github.com/indaco/pombom/internal/config"
	"github.com/indaco/pombom/internal/console"
	"github.com/indaco/pombom/internal/printer"
	"github.com/indaco/pombom/internal/version"
)

var noColorFlag bool

// New builds and returns the root CLI command,
// configuring all subcommands and flags for the pombom cli.
func New(cfg *config.Config) *urfavecli.Command {
	return &urfavecli.Command{
		Name:                  "pombom",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Maven BOM consolidation for multi-module projects",
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColorFlag,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			console.SetNoColor(noColorFlag)
			printer.SetNoColor(!console.ColorEnabled())
			return ctx, nil
		},
		Commands: []*urfavecli.Command{
			consolidate.Run(cfg),
			scan.Run(cfg),
		},
	}
}
