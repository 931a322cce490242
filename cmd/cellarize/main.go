package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/coolbeans/cellarize/pkg/cellar"
	"github.com/coolbeans/cellarize/pkg/config"
	"github.com/coolbeans/cellarize/pkg/language"
	"github.com/coolbeans/cellarize/pkg/mask"
	"github.com/coolbeans/cellarize/pkg/organize"
)

var version = "0.1.0"

const defaultConfigFile = "cellarize.toml"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		folderMask string
		fileMask   string
		langCode   string
		include    string
		limit      int
		dryRun     bool
		verbosity  int
	)

	cmd := &cobra.Command{
		Use:   "cellarize ARCHIVE_DIR OUTPUT_DIR METADATA_DIR",
		Short: "Reorganize a Cellar archive dump using RDF metadata",
		Long: `Cellarize copies files from a flat, UUID-keyed archive dump into a
browsable folder hierarchy, deriving folder and file names from each
document's RDF metadata notice.

Directory layout assumptions:
  ARCHIVE_DIR/<UUID>/<filetype>/<file>.<ext>   the dumped documents
  METADATA_DIR/<UUID>/tree_non_inferred.rdf    the matching notices

Masks mix literal text with placeholders: {year}, {month}, {day},
{date}, {eli}, {celex_identifier}, {title}, {subtitle}, {type},
{default_identifier}.

Examples:
  cellarize ./dump ./library ./metadata
  cellarize ./dump ./library ./metadata --folder-mask "{year}" --file-mask "eli_{celex_identifier}"
  cellarize ./dump ./library ./metadata --limit 5 --dry-run -vv`,
		Version: version,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}

			// Flags override the config file.
			if cmd.Flags().Changed("folder-mask") {
				cfg.FolderMask = folderMask
			}
			if cmd.Flags().Changed("file-mask") {
				cfg.FileMask = fileMask
			}
			if cmd.Flags().Changed("language") {
				cfg.Language = langCode
			}
			if cmd.Flags().Changed("include") {
				cfg.Include = include
			}
			if cmd.Flags().Changed("limit") {
				cfg.Limit = limit
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return run(args[0], args[1], args[2], cfg, dryRun, verbosity)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", defaultConfigFile, "TOML config file (optional unless set explicitly)")
	cmd.Flags().StringVar(&folderMask, "folder-mask", "", `template for destination sub-folders, "" for a flat layout (default "{year}/{month}")`)
	cmd.Flags().StringVar(&fileMask, "file-mask", "", `template for the destination filename without extension (default "{title}")`)
	cmd.Flags().StringVar(&langCode, "language", "", `language of metadata values to retrieve, three letters (default "ENG")`)
	cmd.Flags().StringVar(&include, "include", "", "glob restricting archive files, relative to each UUID folder (e.g. \"html/**\")")
	cmd.Flags().IntVar(&limit, "limit", 0, "process only the first N documents in sorted order, 0 for all")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "compute destinations without copying anything")
	cmd.Flags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (-v, -vv)")

	return cmd
}

func run(archiveDir, outputDir, metadataDir string, cfg config.Config, dryRun bool, verbosity int) error {
	logger := newLogger(verbosity)

	// Bad masks abort here, before any document is touched.
	folder, err := mask.New(cfg.FolderMask, cellar.Placeholders())
	if err != nil {
		return err
	}
	file, err := mask.New(cfg.FileMask, cellar.Placeholders())
	if err != nil {
		return err
	}

	logger.Info("starting run",
		"archive", archiveDir,
		"output", outputDir,
		"language", language.DisplayName(cfg.Language),
		"folder_mask", folder.String(),
		"file_mask", file.String(),
		"dry_run", dryRun,
	)

	runner := organize.NewRunner(organize.Options{
		ArchiveRoot:  archiveDir,
		OutputRoot:   outputDir,
		MetadataRoot: metadataDir,
		FolderMask:   folder,
		FileMask:     file,
		Language:     cfg.Language,
		RDFFilename:  cfg.RDFFilename,
		Include:      cfg.Include,
		Limit:        cfg.Limit,
		DryRun:       dryRun,
	}, logger)

	stats, err := runner.Run()
	if err != nil {
		return err
	}

	printSummary(os.Stdout, stats, dryRun)
	return nil
}

// newLogger builds the run logger: warnings by default, -v for info,
// -vv for debug, always to stderr so stdout stays clean for the summary.
func newLogger(verbosity int) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbosity == 1:
		level = slog.LevelInfo
	case verbosity >= 2:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// printSummary renders the run statistics as a table.
func printSummary(out *os.File, stats organize.Stats, dryRun bool) {
	copied := "Files copied"
	if dryRun {
		copied = "Files to copy (dry run)"
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	if isatty.IsTerminal(out.Fd()) {
		tw.SetStyle(table.StyleRounded)
	}
	tw.AppendHeader(table.Row{"Metric", "Count"})
	tw.AppendRows([]table.Row{
		{"Documents seen", strconv.Itoa(stats.DocumentsSeen)},
		{"Documents organized", strconv.Itoa(stats.DocumentsOrganized)},
		{"Documents skipped", strconv.Itoa(stats.DocumentsSkipped)},
		{"Non-UUID entries ignored", strconv.Itoa(stats.NonUUIDEntries)},
		{copied, strconv.Itoa(stats.FilesCopied)},
		{"Collisions resolved", strconv.Itoa(stats.CollisionsResolved)},
	})
	tw.Render()
}
