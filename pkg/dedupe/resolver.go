// Package dedupe guarantees that every destination path handed to the
// copier is unique within a run.
package dedupe

import (
	"fmt"
	"path"

	"github.com/coolbeans/cellarize/pkg/mask"
)

// Resolver owns the set of destination paths already claimed during a
// run. The set only ever grows, and every path Resolve returns is unique
// within it. The resolver is not safe for concurrent use; the run is
// sequential by design.
type Resolver struct {
	used map[string]bool
}

// NewResolver creates a resolver with an empty used-path set.
func NewResolver() *Resolver {
	return &Resolver{used: make(map[string]bool)}
}

// Resolve returns a unique variant of the candidate path and claims it.
// candidate is a slash-separated relative path whose last element is the
// file stem plus extension; fallbackID is the document identifier used to
// disambiguate (it is slugified before use).
//
// Resolution order: the untouched candidate, then the stem suffixed with
// the fallback identifier, then an increasing numeric counter on top of
// that. The identifier comes first so a renamed file stays traceable to
// its document; the counter is the last resort that guarantees
// termination.
func (r *Resolver) Resolve(candidate, fallbackID string) string {
	if !r.used[candidate] {
		r.used[candidate] = true
		return candidate
	}

	dir, file := path.Split(candidate)
	ext := path.Ext(file)
	stem := file[:len(file)-len(ext)]
	fallbackStem := stem + "_" + mask.Slugify(fallbackID)

	withFallback := dir + fallbackStem + ext
	if !r.used[withFallback] {
		r.used[withFallback] = true
		return withFallback
	}

	for counter := 1; ; counter++ {
		numbered := fmt.Sprintf("%s%s_%d%s", dir, fallbackStem, counter, ext)
		if !r.used[numbered] {
			r.used[numbered] = true
			return numbered
		}
	}
}

// Len returns the number of claimed paths.
func (r *Resolver) Len() int {
	return len(r.used)
}

// Claimed reports whether a path has already been handed out.
func (r *Resolver) Claimed(p string) bool {
	return r.used[p]
}
