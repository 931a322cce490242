// Package organize walks the archive, derives destination paths from
// each document's RDF metadata, and copies files into the output tree.
package organize

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/coolbeans/cellarize/pkg/cellar"
	"github.com/coolbeans/cellarize/pkg/dedupe"
	"github.com/coolbeans/cellarize/pkg/mask"
	"github.com/coolbeans/cellarize/pkg/rdf"
)

// Options are the fixed inputs of one run. Both masks are compiled and
// validated before the runner is built, so mask errors abort the run
// before any document is touched.
type Options struct {
	ArchiveRoot  string
	OutputRoot   string
	MetadataRoot string

	FolderMask *mask.Mask
	FileMask   *mask.Mask

	// Language is the 3-letter code for title/subtitle selection.
	Language string

	// RDFFilename is the notice filename under each metadata UUID folder.
	RDFFilename string

	// Include optionally restricts archive files by glob pattern.
	Include string

	// Limit stops after this many documents; 0 processes everything.
	Limit int

	// DryRun computes destinations without copying anything.
	DryRun bool
}

// Stats summarizes one run.
type Stats struct {
	DocumentsSeen      int // UUID folders considered
	DocumentsOrganized int
	DocumentsSkipped   int // missing notice, bad RDF, or copy failure
	NonUUIDEntries     int // archive directories that are not UUID-named
	FilesCopied        int
	CollisionsResolved int
}

// Runner executes the organize pipeline sequentially. Documents are
// processed one at a time in sorted UUID order; the collision resolver is
// the only mutable state shared across documents.
type Runner struct {
	opts     Options
	logger   *slog.Logger
	resolver *dedupe.Resolver
}

// NewRunner builds a runner. logger must not be nil.
func NewRunner(opts Options, logger *slog.Logger) *Runner {
	return &Runner{
		opts:     opts,
		logger:   logger,
		resolver: dedupe.NewResolver(),
	}
}

// Run processes the archive and returns run statistics. Per-document
// failures are logged and counted, never fatal; only a broken setup
// (unreadable roots) returns an error.
func (r *Runner) Run() (Stats, error) {
	var stats Stats

	docs, nonUUID, err := DiscoverDocuments(r.opts.ArchiveRoot, r.opts.MetadataRoot, r.opts.RDFFilename, r.opts.Include)
	if err != nil {
		return stats, err
	}

	stats.NonUUIDEntries = len(nonUUID)
	for _, name := range nonUUID {
		r.logger.Debug("ignoring non-UUID archive entry", "name", name)
	}

	if r.opts.Limit > 0 && len(docs) > r.opts.Limit {
		r.logger.Info("limiting run", "limit", r.opts.Limit, "available", len(docs))
		docs = docs[:r.opts.Limit]
	}

	r.logger.Info("processing documents", "count", len(docs))

	for _, doc := range docs {
		stats.DocumentsSeen++
		if err := r.processDocument(doc, &stats); err != nil {
			// Document boundary: record the reason and move on.
			stats.DocumentsSkipped++
			r.logger.Warn("skipping document", "uuid", doc.UUID, "reason", err)
			continue
		}
		stats.DocumentsOrganized++
	}

	return stats, nil
}

// processDocument runs extract -> render -> resolve -> copy for one
// document. Any returned error skips the document as a whole.
func (r *Runner) processDocument(doc Document, stats *Stats) error {
	if doc.NoticePath == "" {
		return fmt.Errorf("no metadata notice (expected %s)", filepath.Join(r.opts.MetadataRoot, doc.UUID, r.opts.RDFFilename))
	}

	graph, err := r.loadNotice(doc.NoticePath)
	if err != nil {
		return err
	}

	attrs := cellar.Extract(graph, r.opts.Language, doc.UUID)
	r.logger.Debug("extracted attributes",
		"uuid", doc.UUID,
		"date", attrs.Date.Value,
		"celex", attrs.CelexIdentifier.Value,
		"title_present", attrs.Title.OK,
	)

	dirSegments := r.opts.FolderMask.Render(attrs.Placeholder)
	stem := r.renderStem(attrs)

	for _, src := range doc.Files {
		// The original extension is carried over untouched.
		candidate := path.Join(append(append([]string{}, dirSegments...), stem+filepath.Ext(src))...)
		final := r.resolver.Resolve(candidate, doc.UUID)
		if final != candidate {
			stats.CollisionsResolved++
			r.logger.Debug("collision resolved", "candidate", candidate, "final", final)
		}

		dest := filepath.Join(r.opts.OutputRoot, filepath.FromSlash(final))
		if r.opts.DryRun {
			r.logger.Info("would copy", "source", src, "destination", dest)
			stats.FilesCopied++
			continue
		}
		if err := copyFile(src, dest); err != nil {
			return fmt.Errorf("copy %s: %w", filepath.Base(src), err)
		}
		stats.FilesCopied++
		r.logger.Debug("copied", "source", src, "destination", dest)
	}

	return nil
}

// loadNotice parses one metadata notice into a graph.
func (r *Runner) loadNotice(noticePath string) (*rdf.Graph, error) {
	f, err := os.Open(noticePath)
	if err != nil {
		return nil, fmt.Errorf("open notice: %w", err)
	}
	defer f.Close()

	graph, err := rdf.ParseRDFXML(f)
	if err != nil {
		return nil, err
	}
	return graph, nil
}

// renderStem produces the destination file stem. An empty file mask falls
// back to the document identifier so the stem is never empty.
func (r *Runner) renderStem(attrs cellar.Attributes) string {
	segments := r.opts.FileMask.Render(attrs.Placeholder)
	stem := strings.Join(segments, "_")
	if stem == "" {
		stem = mask.Slugify(attrs.DefaultIdentifier)
	}
	return stem
}

// copyFile streams src to dest, creating parent directories and carrying
// the source file mode over.
func copyFile(src, dest string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
