// Package config loads run settings from an optional TOML file, layered
// under command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pelletier/go-toml/v2"

	"github.com/coolbeans/cellarize/pkg/cellar"
	"github.com/coolbeans/cellarize/pkg/language"
)

// DefaultRDFFilename is the metadata notice filename inside each
// document's metadata directory.
const DefaultRDFFilename = "tree_non_inferred.rdf"

// Config holds the run settings a user can put in a config file. Flags
// override whatever is loaded here.
type Config struct {
	// FolderMask is the template for destination sub-folders. Empty
	// string means a flat output layout.
	FolderMask string `toml:"folder_mask"`

	// FileMask is the template for the destination file stem, without
	// extension.
	FileMask string `toml:"file_mask"`

	// Language is the 3-letter code selecting title/subtitle literals.
	Language string `toml:"language"`

	// RDFFilename is the notice filename under each metadata UUID folder.
	RDFFilename string `toml:"rdf_filename"`

	// Include is an optional glob pattern restricting which archive files
	// are organized, matched against paths relative to each UUID folder.
	Include string `toml:"include"`

	// Limit stops the run after this many documents; 0 means no limit.
	Limit int `toml:"limit"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		FolderMask:  "{year}/{month}",
		FileMask:    "{title}",
		Language:    cellar.DefaultLanguage,
		RDFFilename: DefaultRDFFilename,
	}
}

// Load reads a TOML config file over the defaults. A missing file at the
// default location is not an error; explicit paths must exist.
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks settings that do not depend on the filesystem. Mask
// placeholder validation happens when the masks are compiled at startup.
func (c *Config) Validate() error {
	if c.Limit < 0 {
		return fmt.Errorf("limit cannot be negative, got %d", c.Limit)
	}
	if c.RDFFilename == "" {
		return fmt.Errorf("rdf_filename cannot be empty")
	}
	if c.Language != "" && language.ToAuthority(c.Language) == "" {
		return fmt.Errorf("unrecognized language code %q", c.Language)
	}
	if c.Include != "" && !doublestar.ValidatePattern(c.Include) {
		return fmt.Errorf("invalid include pattern %q", c.Include)
	}
	return nil
}
