// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/poiesic/searchit/core"
	"github.com/poiesic/searchit/report"
	"github.com/poiesic/searchit/scan"
	"github.com/poiesic/searchit/search"
	"github.com/poiesic/searchit/walk"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "searchit",
		Usage:     "Concurrent line-oriented text search",
		ArgsUsage: "QUERY [PATH]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "ignore-case",
				Aliases: []string{"i"},
				Usage:   "Match case-insensitively",
			},
			&cli.BoolFlag{
				Name:    "line-number",
				Aliases: []string{"n"},
				Usage:   "Prefix matched lines with their 1-based line number",
			},
			&cli.BoolFlag{
				Name:    "invert-match",
				Aliases: []string{"v"},
				Usage:   "Select lines that do not match",
			},
			&cli.BoolFlag{
				Name:    "word",
				Aliases: []string{"w"},
				Usage:   "Match whole words only",
			},
			&cli.BoolFlag{
				Name:    "fixed-strings",
				Aliases: []string{"F"},
				Usage:   "Treat the query as a literal string, not a regular expression",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Number of parallel search workers (default: number of CPUs)",
			},
			&cli.StringFlag{
				Name:  "ignore-file",
				Usage: "Path to a YAML file with glob patterns to exclude",
			},
			&cli.BoolFlag{
				Name:  "progress",
				Usage: "Report scan progress on stderr",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Action: searchAction,
	}
}

func searchAction(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("query is required")
	}
	if c.NArg() > 2 {
		return fmt.Errorf("too many arguments, expected QUERY [PATH]")
	}

	query := c.Args().Get(0)
	root := c.Args().Get(1)
	if root == "" {
		root = "."
	}

	cfg := core.SearchConfig{
		IgnoreCase:  c.Bool("ignore-case"),
		LineNumber:  c.Bool("line-number"),
		InvertMatch: c.Bool("invert-match"),
		WholeWord:   c.Bool("word"),
		Regex:       !c.Bool("fixed-strings"),
	}

	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("cannot access %s: %w", root, err)
	}

	reporter := report.NewReporter(c.App.Writer, report.WithColor(colorEnabled(c)))

	// A regular file bypasses the walker entirely.
	if !info.IsDir() {
		lines, err := search.SearchFile(root, query, cfg)
		if err != nil {
			return err
		}
		return reporter.ReportLines(lines)
	}

	filterOpts := []walk.FilterOption{}
	if path := c.String("ignore-file"); path != "" {
		policy, err := walk.LoadIgnoreFile(path)
		if err != nil {
			return err
		}
		filterOpts = append(filterOpts, walk.WithIgnorePolicy(policy))
	}

	walker, err := walk.NewWalker(walk.NewFilter(filterOpts...))
	if err != nil {
		return err
	}

	pipelineOpts := []scan.Option{}
	if workers := c.Int("workers"); workers > 0 {
		pipelineOpts = append(pipelineOpts, scan.WithPoolSize(workers))
	}

	pipeline, err := scan.NewPipeline(walker, pipelineOpts...)
	if err != nil {
		return err
	}
	defer pipeline.Release()

	var monitor scan.Monitor
	if c.Bool("progress") {
		monitor = scan.NewProgressMonitor(c.App.ErrWriter, 100)
	}

	results, err := pipeline.RunWithMonitor(c.Context, root, query, cfg, monitor)
	if err != nil {
		return err
	}

	return reporter.Report(results)
}

func colorEnabled(c *cli.Context) bool {
	if c.Bool("no-color") {
		return false
	}
	f, ok := c.App.Writer.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
