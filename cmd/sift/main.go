package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

var Version = "0.1.0"

func main() {
	app := &cli.App{
		Name:                   "sift",
		Usage:                  "Fuzzy string matching over lists, nested JSON, and delimited strings",
		Version:                Version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path (.sift.kdl or .sift.toml)",
				Value:   ".sift.kdl",
			},
		},
		Commands: []*cli.Command{
			searchCommand(),
			tokenizeCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "sift: %v\n", err)
		os.Exit(1)
	}
}
