package main

import (
	"context"
	"os"

	"github.com/indaco/pombom/internal/cli"
	"github.com/indaco/pombom/internal/config"
	"github.com/indaco/pombom/internal/printer"
)

func main() {
	cfg, err := config.LoadConfigFn()
	if err != nil {
		printer.PrintError(err.Error())
		os.Exit(1)
	}

	app := cli.New(cfg)
	if err := app.Run(context.Background(), os.Args); err != nil {
		printer.PrintError(err.Error())
		os.Exit(1)
	}
}
