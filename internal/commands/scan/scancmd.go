// Package scan implements the read-only "scan" command, which lists the
// dependencies declared in a single POM without touching any file.
package scan

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/indaco/pombom/internal/config"
	"github.com/indaco/pombom/internal/core"
	"github.com/indaco/pombom/internal/pom"
	"github.com/indaco/pombom/internal/printer"
	"github.com/indaco/pombom/internal/scanner"
)

// OutputFormat controls how scan results are displayed.
type OutputFormat string

const (
	// FormatText outputs human-readable text.
	FormatText OutputFormat = "text"

	// FormatJSON outputs machine-readable JSON.
	FormatJSON OutputFormat = "json"
)

// ParseOutputFormat converts a string to OutputFormat, defaulting to text.
func ParseOutputFormat(s string) OutputFormat {
	if s == "json" {
		return FormatJSON
	}
	return FormatText
}

// Run returns the "scan" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "scan",
		Usage:     "List the dependencies declared in a POM",
		ArgsUsage: "[pom.xml]",
		UsageText: `pombom scan [options] [pom.xml]

Parses a single POM and prints its dependency declarations grouped by
groupId, with ${...} version references resolved against the POM's own
version properties. Defaults to the parent pom.xml in the base directory.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json",
				Value:   "text",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				path = filepath.Join(cfg.Dir, "pom.xml")
			}
			return runScanCmd(ctx, path, ParseOutputFormat(cmd.String("format")))
		},
	}
}

// runScanCmd executes the scan command.
func runScanCmd(ctx context.Context, path string, format OutputFormat) error {
	doc, err := pom.Load(ctx, core.NewOSFileSystem(), path)
	if err != nil {
		return err
	}

	groups, err := scanner.New(doc).ScanDependencies(pom.Properties{})
	if err != nil {
		return err
	}

	if format == FormatJSON {
		return printJSON(groups)
	}
	printText(path, groups)
	return nil
}

func printJSON(groups pom.DependencyGroups) error {
	data, err := json.MarshalIndent(groups, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode scan result: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func printText(path string, groups pom.DependencyGroups) {
	printer.PrintBold(path)

	groupIDs := make([]string, 0, len(groups))
	for groupID := range groups {
		groupIDs = append(groupIDs, groupID)
	}
	sort.Strings(groupIDs)

	for _, groupID := range groupIDs {
		fmt.Printf("%s\n", printer.Info(groupID))
		artifacts := groups[groupID]
		artifactIDs := make([]string, 0, len(artifacts))
		for artifactID := range artifacts {
			artifactIDs = append(artifactIDs, artifactID)
		}
		sort.Strings(artifactIDs)
		for _, artifactID := range artifactIDs {
			if version := artifacts[artifactID]; version != nil {
				fmt.Printf("  %s %s\n", artifactID, printer.Faint(*version))
			} else {
				fmt.Printf("  %s %s\n", artifactID, printer.Faint("(managed)"))
			}
		}
	}
}
