package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/sift"
	"github.com/standardbeagle/sift/internal/config"
)

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Aliases:   []string{"s"},
		Usage:     "Search candidates for a query",
		ArgsUsage: "<query> [candidates...]",
		Description: "Candidates come from the remaining arguments (one argument is\n" +
			"treated as a space-delimited string, several as a list), from a JSON\n" +
			"document via --json, or from file paths matching --files.",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "Maximum number of results",
			},
			&cli.IntFlag{
				Name:    "flexibility",
				Aliases: []string{"f"},
				Usage:   "Maximum edit distance for fuzzy matches (0 disables the fuzzy pass)",
			},
			&cli.BoolFlag{
				Name:  "case-sensitive",
				Usage: "Match case exactly",
			},
			&cli.BoolFlag{
				Name:  "stop-words",
				Usage: "Drop common stop words from the query",
			},
			&cli.BoolFlag{
				Name:  "stem",
				Usage: "Reduce query tokens to base forms (porter2)",
			},
			&cli.StringSliceFlag{
				Name:    "exclude",
				Aliases: []string{"e"},
				Usage:   "Pattern removed from the query before matching (repeatable)",
			},
			&cli.StringFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "Read candidates from a JSON file ('-' for stdin)",
			},
			&cli.StringFlag{
				Name:  "files",
				Usage: "Use file paths matching a glob pattern as candidates (e.g. '**/*.go')",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Print result count and timing to stderr",
			},
		},
		Action: runSearch,
	}
}

func runSearch(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("usage: sift search <query> [candidates...]")
	}
	query := c.Args().First()

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	applyFlagOverrides(c, &cfg)

	source, err := buildSource(c)
	if err != nil {
		return err
	}

	opts := sift.Options{
		CaseSensitive:   cfg.CaseSensitive,
		Flexibility:     cfg.Flexibility,
		Exclusions:      cfg.Exclusions,
		IgnoreStopWords: cfg.IgnoreStopWords,
		Stemming:        cfg.Stemming,
	}
	if opts.Stemming {
		opts.Stemmer = sift.Porter2Stemmer(3)
	}

	start := time.Now()
	results, err := sift.New(opts).Search(query, source, cfg.Limit)
	if err != nil {
		return err
	}
	if c.Bool("verbose") {
		fmt.Fprintf(os.Stderr, "%d result(s) in %v\n", len(results), time.Since(start))
	}
	for _, r := range results {
		fmt.Println(r)
	}
	return nil
}

// applyFlagOverrides merges explicitly set CLI flags onto the file config.
func applyFlagOverrides(c *cli.Context, cfg *config.Config) {
	if c.IsSet("limit") {
		cfg.Limit = c.Int("limit")
	}
	if c.IsSet("flexibility") {
		cfg.Flexibility = c.Int("flexibility")
	}
	if c.IsSet("case-sensitive") {
		cfg.CaseSensitive = c.Bool("case-sensitive")
	}
	if c.IsSet("stop-words") {
		cfg.IgnoreStopWords = c.Bool("stop-words")
	}
	if c.IsSet("stem") {
		cfg.Stemming = c.Bool("stem")
	}
	if ex := c.StringSlice("exclude"); len(ex) > 0 {
		cfg.Exclusions = append(cfg.Exclusions, ex...)
	}
}

func buildSource(c *cli.Context) (any, error) {
	if path := c.String("json"); path != "" {
		return jsonSource(path, os.Stdin)
	}
	if pattern := c.String("files"); pattern != "" {
		return globSource(".", pattern)
	}
	rest := c.Args().Tail()
	switch len(rest) {
	case 0:
		return nil, errors.New("no candidates: pass them as arguments or use --json/--files")
	case 1:
		// A single argument is a delimited string pool.
		return rest[0], nil
	default:
		return rest, nil
	}
}

// jsonSource decodes a JSON document into the sequence/mapping shapes the
// engine understands.
func jsonSource(path string, stdin io.Reader) (any, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON source: %w", err)
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("invalid JSON source: %w", err)
	}
	return v, nil
}

// globSource collects file paths under root matching a doublestar pattern.
func globSource(root, pattern string) (any, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if d.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		matched, matchErr := doublestar.Match(pattern, filepath.ToSlash(rel))
		if matchErr != nil {
			return fmt.Errorf("invalid glob pattern %q: %w", pattern, matchErr)
		}
		if matched {
			paths = append(paths, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
