package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rill/internal/diagfmt"
	"rill/internal/driver"
	"rill/internal/observ"
	"rill/internal/ui"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.rl|directory>",
	Short: "Parse a rill source file or directory and output AST",
	Long:  `Parse analyzes a rill source file or all *.rl files in a directory and outputs their Abstract Syntax Trees`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	parseCmd.Flags().Bool("no-cache", false, "disable the on-disk parse cache for directories")
	parseCmd.Flags().Bool("progress", false, "show interactive progress for directories (requires a terminal)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	// Проверяем, файл это или директория
	st, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if !st.IsDir() {
		return runParseFile(cmd, filePath, format, maxDiagnostics, showTimings)
	}
	return runParseDir(cmd, filePath, format, maxDiagnostics, showTimings)
}

func runParseFile(cmd *cobra.Command, filePath, format string, maxDiagnostics int, showTimings bool) error {
	timer := observ.NewTimer()

	var result *driver.ParseResult
	var err error
	timer.Track("parse", func() {
		result, err = driver.Parse(filePath, maxDiagnostics)
	})
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if showTimings {
		driver.AppendTimings(result.Bag, timer, result.File.ID)
	}

	if result.Bag.Len() > 0 {
		opts := diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			Context:   2,
			ShowNotes: true,
			ShowFixes: true,
		}
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatASTPretty(os.Stdout, result.AST, result.Interner, result.FileSet)
	case "json":
		return diagfmt.FormatASTJSON(os.Stdout, result.AST, result.Interner)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func runParseDir(cmd *cobra.Command, dirPath, format string, maxDiagnostics int, showTimings bool) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	progressFlag, err := cmd.Flags().GetBool("progress")
	if err != nil {
		return fmt.Errorf("failed to get progress flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	opts := driver.ParseDirOptions{
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
	}
	if !noCache {
		// Кэш опционален: без него просто разбираем всё заново.
		if cache, cacheErr := driver.OpenDiskCache("rill"); cacheErr == nil {
			opts.Cache = cache
		}
	}

	uiErr := make(chan error, 1)
	if progressFlag && !quiet && isTerminal(os.Stdout) {
		events := make(chan driver.FileEvent, 16)
		opts.Events = events
		go func() {
			uiErr <- ui.Run(ui.NewProgressModel("parsing "+dirPath, nil, events))
		}()
	} else {
		close(uiErr)
	}

	outcome, err := driver.ParseDir(cmd.Context(), dirPath, opts)
	if runErr := <-uiErr; runErr != nil {
		fmt.Fprintf(os.Stderr, "progress ui: %v\n", runErr)
	}
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	merged := outcome.MergedBag()
	if showTimings && len(outcome.Results) > 0 {
		driver.AppendTimings(merged, outcome.Timer, outcome.Results[0].FileID)
	}
	if merged.Len() > 0 {
		prettyOpts := diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			Context:   2,
			PathMode:  diagfmt.PathModeRelative,
			ShowNotes: true,
			ShowFixes: true,
		}
		diagfmt.Pretty(os.Stderr, merged, outcome.FileSet, prettyOpts)
	}

	switch format {
	case "pretty":
		for idx, r := range outcome.Results {
			if r.AST == nil {
				continue
			}
			if !quiet {
				file := outcome.FileSet.Get(r.FileID)
				if _, printErr := fmt.Fprintf(os.Stdout, "== %s ==\n", file.FormatPath("relative", outcome.FileSet.BaseDir())); printErr != nil {
					return printErr
				}
			}
			if err := diagfmt.FormatASTPretty(os.Stdout, r.AST, outcome.Interner, outcome.FileSet); err != nil {
				return err
			}
			if !quiet && idx < len(outcome.Results)-1 {
				if _, printErr := fmt.Fprintln(os.Stdout); printErr != nil {
					return printErr
				}
			}
		}
		return nil
	case "json":
		output := make(map[string]*diagfmt.ASTNodeOutput, len(outcome.Results))
		for _, r := range outcome.Results {
			if r.AST == nil {
				output[r.Path] = nil
				continue
			}
			node := diagfmt.BuildASTOutput(r.AST, outcome.Interner, outcome.FileSet)
			output[r.Path] = node
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(output)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
