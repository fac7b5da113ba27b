package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ape/internal/diagfmt"
	"ape/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <directory>",
	Short: "Check every ape source file under a directory",
	Long:  `Check lexes and parses all *.ape files under a directory in parallel and reports diagnostics, caching clean results on disk`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().Bool("no-cache", false, "disable the on-disk result cache")
}

func runCheck(cmd *cobra.Command, args []string) error {
	dir := args[0]

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}

	var cache *driver.DiskCache
	if !noCache {
		cache, err = driver.OpenDiskCache("ape")
		if err != nil && !quiet {
			fmt.Fprintf(os.Stderr, "warning: cache unavailable: %v\n", err)
		}
	}

	result, err := driver.CheckDir(cmd.Context(), dir, maxDiagnostics, jobs, cache)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	prettyOpts := diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		Context:   2,
		ShowNotes: true,
	}

	if result.Project.Len() > 0 {
		result.Project.Sort()
		diagfmt.Pretty(os.Stderr, result.Project, result.FileSet, prettyOpts)
	}

	errorCount := 0
	warningCount := 0
	cachedCount := 0
	for _, f := range result.Files {
		if f.Cached {
			cachedCount++
		}
		if f.Bag == nil {
			continue
		}
		if f.Bag.HasErrors() {
			errorCount++
		}
		if f.Bag.HasWarnings() {
			warningCount++
		}
		if f.Bag.Len() > 0 {
			f.Bag.Sort()
			diagfmt.Pretty(os.Stderr, f.Bag, result.FileSet, prettyOpts)
		}
	}

	if result.Project.HasErrors() {
		errorCount++
	}

	if !quiet {
		printCheckSummary(cmd, len(result.Files), cachedCount, errorCount, warningCount)
	}

	if errorCount > 0 {
		os.Exit(1)
	}
	return nil
}

func printCheckSummary(cmd *cobra.Command, total, cached, errors, warnings int) {
	colored := useColor(cmd, os.Stdout)

	status := "ok"
	paint := color.New(color.FgGreen, color.Bold)
	if errors > 0 {
		status = "failed"
		paint = color.New(color.FgRed, color.Bold)
	} else if warnings > 0 {
		status = "ok (with warnings)"
		paint = color.New(color.FgYellow, color.Bold)
	}

	if colored {
		fmt.Fprintf(os.Stdout, "check %s: ", paint.Sprint(status))
	} else {
		fmt.Fprintf(os.Stdout, "check %s: ", status)
	}
	fmt.Fprintf(os.Stdout, "%d file(s), %d cached, %d with errors, %d with warnings\n",
		total, cached, errors, warnings)
}
