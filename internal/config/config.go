// Package config loads BuildOptions from a TOML file, the same way
// structured on-disk data is conventionally loaded elsewhere in this style
// of codebase: os.ReadFile followed by toml.Decode into a typed
// struct, errors wrapped with the file path. This is build/test tooling
// configuration, not a CLI: a caller points at a .gralex.toml describing
// build knobs instead of wiring a flags package.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/gralex/gralex/internal/langcore/charset"
)

// BuildOptions is the on-disk shape of a gralex build configuration file,
// §4.B/§4.D/§4.F's build-time knobs collected in one place: the DFA
// state cap, the active character set, whether the declaration-order
// lexeme tie-break is allowed, and whether trace callbacks should be wired
// up by default.
type BuildOptions struct {
	MaxDfaStates          int    `toml:"max_dfa_states"`
	CharsetName           string `toml:"charset"`
	AllowPriorityTiebreak bool   `toml:"allow_priority_tiebreak"`
	Debug                 bool   `toml:"debug"`
	IgnoredChars          string `toml:"ignored_chars"`
}

// Default returns the BuildOptions a caller gets with no config file at
// all: the §4.B state cap, the ASCII charset, tie-break allowed, debug
// off, and the conventional whitespace set ignored.
func Default() BuildOptions {
	return BuildOptions{
		MaxDfaStates:          32767,
		CharsetName:           "ascii",
		AllowPriorityTiebreak: true,
		Debug:                 false,
		IgnoredChars:          " \t\r\n",
	}
}

// Load reads and parses a TOML build-config file at path, starting from
// Default() so an omitted field keeps its default rather than zeroing out.
func Load(path string) (BuildOptions, error) {
	opts := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("%q: reading from disk: %w", path, err)
	}
	if _, err := toml.Decode(string(data), &opts); err != nil {
		return opts, fmt.Errorf("%q: parsing build options: %w", path, err)
	}
	return opts, nil
}

// Charset resolves CharsetName to the charset.Charset it names, per §6's
// textual attribute-block spelling.
func (o BuildOptions) Charset() (charset.Charset, error) {
	return charset.Parse(o.CharsetName)
}

// IgnoredCharSet turns the configured ignored-characters string into the
// set shape lex.BuildOptions.IgnoredChars expects.
func (o BuildOptions) IgnoredCharSet() map[rune]bool {
	set := make(map[rune]bool, len(o.IgnoredChars))
	for _, r := range o.IgnoredChars {
		set[r] = true
	}
	return set
}
