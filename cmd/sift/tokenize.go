package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/sift"
)

func tokenizeCommand() *cli.Command {
	return &cli.Command{
		Name:      "tokenize",
		Aliases:   []string{"t"},
		Usage:     "Split input on a delimiter, one token per line",
		ArgsUsage: "<input>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "delimiter",
				Aliases: []string{"d"},
				Usage:   "Token delimiter",
				Value:   " ",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return errors.New("usage: sift tokenize <input>")
			}
			for _, tok := range sift.Tokenize(c.Args().First(), c.String("delimiter")) {
				fmt.Println(tok)
			}
			return nil
		},
	}
}
