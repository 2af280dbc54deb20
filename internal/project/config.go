// Package project locates and parses the optional unify.toml configuration
// that supplies per-project formatting defaults. Explicitly-set CLI flags
// always win over config values; the merge happens in the command layer.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"unify/internal/strlit"
)

// ConfigFileName is looked up in the working directory and its ancestors.
const ConfigFileName = "unify.toml"

// ErrBadQuote indicates a [format].quote value that is not ' or ".
var ErrBadQuote = errors.New(`quote must be "'" or "\""`)

// FormatConfig is the [format] table.
type FormatConfig struct {
	Quote        string `toml:"quote"`
	EscapeSimple string `toml:"escape-simple"`
	FStringQuote string `toml:"fstring-quote"`
}

// FilesConfig is the [files] table.
type FilesConfig struct {
	Extensions []string `toml:"extensions"`
}

// Config is a parsed unify.toml. Zero value means "no config found".
type Config struct {
	Format FormatConfig `toml:"format"`
	Files  FilesConfig  `toml:"files"`

	// Path is where the config was loaded from; empty for the zero config.
	Path string `toml:"-"`
}

// Load parses a unify.toml at path.
func Load(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undec[0].String())
	}
	cfg.Path = path
	return cfg, nil
}

// Discover walks from startDir toward the filesystem root looking for the
// nearest unify.toml. ok is false when none exists.
func Discover(startDir string) (Config, bool, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return Config{}, false, err
	}
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, statErr := os.Stat(candidate); statErr == nil {
			cfg, loadErr := Load(candidate)
			if loadErr != nil {
				return Config{}, false, loadErr
			}
			return cfg, true, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Config{}, false, nil
		}
		dir = parent
	}
}

// Rules applies the config on top of base and validates the result.
func (c Config) Rules(base strlit.Rules) (strlit.Rules, error) {
	out := base
	if c.Format.Quote != "" {
		if c.Format.Quote != "'" && c.Format.Quote != `"` {
			return out, fmt.Errorf("%s: %w", c.Path, ErrBadQuote)
		}
		out.PreferredQuote = c.Format.Quote[0]
	}
	if c.Format.EscapeSimple != "" {
		strategy, err := strlit.ParseEscapeStrategy(c.Format.EscapeSimple)
		if err != nil {
			return out, fmt.Errorf("%s: %w", c.Path, err)
		}
		out.EscapeSimple = strategy
	}
	if c.Format.FStringQuote != "" {
		mode, err := strlit.ParseExprQuote(c.Format.FStringQuote)
		if err != nil {
			return out, fmt.Errorf("%s: %w", c.Path, err)
		}
		out.FStringExprQuote = mode
	}
	return out, nil
}

// Extensions returns the configured source extensions, defaulting to .py.
func (c Config) Extensions() []string {
	if len(c.Files.Extensions) == 0 {
		return []string{".py"}
	}
	return c.Files.Extensions
}
