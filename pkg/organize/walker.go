package organize

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
)

// Document is one archive entry to organize: a UUID folder with its files
// and, when present, the matching metadata notice.
type Document struct {
	// UUID is the folder name shared between the archive and metadata trees.
	UUID string

	// Files are the absolute paths of the document's archive files,
	// sorted for deterministic processing.
	Files []string

	// NoticePath is the absolute path of the RDF notice, or empty when
	// the metadata tree has no entry for this UUID.
	NoticePath string
}

// DiscoverDocuments walks the archive root and pairs every UUID-named
// directory with its metadata notice. Documents are returned sorted by
// UUID so that limits are deterministic and reproducible across runs.
// include optionally restricts files to those matching a glob pattern,
// evaluated against paths relative to the UUID folder.
//
// Directories whose names are not UUIDs are ignored here; the caller
// decides how to report them via the skipped return, which lists the
// offending names.
func DiscoverDocuments(archiveRoot, metadataRoot, rdfFilename, include string) (docs []Document, skipped []string, err error) {
	entries, err := os.ReadDir(archiveRoot)
	if err != nil {
		return nil, nil, fmt.Errorf("read archive root: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if _, parseErr := uuid.Parse(name); parseErr != nil {
			skipped = append(skipped, name)
			continue
		}

		files, err := collectFiles(filepath.Join(archiveRoot, name), include)
		if err != nil {
			return nil, nil, fmt.Errorf("scan document %s: %w", name, err)
		}

		doc := Document{UUID: name, Files: files}
		notice := filepath.Join(metadataRoot, name, rdfFilename)
		if info, statErr := os.Stat(notice); statErr == nil && info.Mode().IsRegular() {
			doc.NoticePath = notice
		}
		docs = append(docs, doc)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].UUID < docs[j].UUID })
	sort.Strings(skipped)
	return docs, skipped, nil
}

// collectFiles gathers every regular file under a document directory,
// sorted by path, optionally filtered by an include glob.
func collectFiles(dir, include string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if include != "" {
			rel, relErr := filepath.Rel(dir, path)
			if relErr != nil {
				return relErr
			}
			match, matchErr := doublestar.Match(include, filepath.ToSlash(rel))
			if matchErr != nil {
				return matchErr
			}
			if !match {
				return nil
			}
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
