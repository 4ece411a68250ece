// Command gqls-check batch-lints a GraphQL SDL project: it loads a
// gqls.toml manifest, builds the same incremental query stack the
// language server runs, and prints every file's diagnostics. There's no
// editor transport here — no JSON-RPC, no LSP handshake — just the core
// analyses spec.md and SPEC_FULL.md describe, run once over a
// directory and reported to stdout.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/andyyu2004/gqls/pkg/ide"
	"github.com/andyyu2004/gqls/pkg/incremental"
	"github.com/andyyu2004/gqls/pkg/ir"
	"github.com/andyyu2004/gqls/pkg/source"
)

func main() {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "gqls-check [flags] <dir>",
		Short: "Batch-lint a GraphQL SDL project",
		Long: `gqls-check loads a gqls.toml manifest rooted at (or above) the given
directory, parses and resolves every file it names, and prints each
file's diagnostics: unresolved types, invalid directive locations, and
malformed items.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return run(cmd.Context(), dir, debug)
		},
	}
	rootCmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, dir string, debug bool) error {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	manifestPath, manifest, err := source.FindManifest(dir)
	if err != nil {
		return fmt.Errorf("gqls-check: %w", err)
	}
	if manifest == nil {
		return fmt.Errorf("gqls-check: no gqls.toml found at or above %s", dir)
	}
	configDir := filepath.Dir(manifestPath)
	logger.Debug("loaded manifest", "path", manifestPath)

	in := source.NewInterner()
	projects, err := manifest.Resolve(in, configDir)
	if err != nil {
		return fmt.Errorf("gqls-check: %w", err)
	}

	engine := incremental.New()
	sdb := source.NewDB(engine)
	sdb.SetProjects(projects)

	files := projects.Files()
	for _, file := range files {
		path := in.Path(file)
		text, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("gqls-check: reading %s: %w", path, err)
		}
		data, err := source.Parse(ctx, string(text))
		if err != nil {
			return fmt.Errorf("gqls-check: parsing %s: %w", path, err)
		}
		sdb.SetFileData(file, data)
	}

	snap := ide.NewSnapshot(sdb)

	errorCount := 0
	for _, file := range files {
		path := in.Path(file)
		diags := snap.Diagnostics(ctx, file)
		for _, d := range diags {
			if d.Severity == ir.SeverityError {
				errorCount++
			}
			fmt.Printf("%s:%d:%d: %s [%s] %s\n",
				path, d.Range.StartPoint.Row+1, d.Range.StartPoint.Column+1,
				severityLabel(d.Severity), d.Code, d.Message)
		}
	}

	if errorCount > 0 {
		fmt.Fprintf(os.Stderr, "gqls-check: %d error(s)\n", errorCount)
		os.Exit(1)
	}
	return nil
}

func severityLabel(s ir.Severity) string {
	if s == ir.SeverityError {
		return "error"
	}
	return "warning"
}
