// Package config provides loading and validation of repair run
// configuration. Files are TOML; every field is optional and falls back to
// a built-in default, so an empty file yields a usable configuration.
package config

import (
	"github.com/XiFenM/encoding-fixer/internal/namefix"
	"github.com/XiFenM/encoding-fixer/internal/scan"
)

// MojibakeEntry is one garbled-to-correct substitution in the repair table.
// Entries apply in file order.
type MojibakeEntry struct {
	Garbled string `toml:"garbled"`
	Correct string `toml:"correct"`
}

// ComparisonConfig holds the settings of the directory comparison tool.
type ComparisonConfig struct {
	// Extension selects files compared by fingerprint
	Extension string `toml:"extension"`

	// FilterPattern selects the size-only comparison set by substring match
	FilterPattern string `toml:"filter_pattern"`

	// FilterExt is the extension of the size-only set
	FilterExt string `toml:"filter_ext"`

	// Algorithm names the fingerprint algorithm ("md5" or "sha256")
	Algorithm string `toml:"algorithm"`
}

// Config is the top-level configuration of a repair run.
type Config struct {
	// FixFolders includes directory names in name repair
	FixFolders bool `toml:"fix_folders"`

	// TextExtensions lists extensions whose content is repaired
	TextExtensions []string `toml:"text_extensions"`

	// CandidateEncodings lists the encodings tried, in order, when a
	// garbled name matches no table entry
	CandidateEncodings []string `toml:"candidate_encodings"`

	// Mojibake replaces the built-in repair table when non-empty
	Mojibake []MojibakeEntry `toml:"mojibake"`

	Comparison ComparisonConfig `toml:"comparison"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		FixFolders:         true,
		TextExtensions:     scan.DefaultTextExtensions(),
		CandidateEncodings: namefix.DefaultCandidateEncodings(),
		Comparison: ComparisonConfig{
			Extension: ".txt",
			FilterExt: ".pdf",
			Algorithm: "md5",
		},
	}
}

// MojibakeTable converts the configured entries into an engine table, or
// the built-in table when none are configured.
func (c *Config) MojibakeTable() namefix.Table {
	if len(c.Mojibake) == 0 {
		return namefix.DefaultTable()
	}
	table := make(namefix.Table, 0, len(c.Mojibake))
	for _, e := range c.Mojibake {
		table = append(table, namefix.Replacement{Garbled: e.Garbled, Correct: e.Correct})
	}
	return table
}
