// Package config loads the optional project configuration file that
// controls linker-level knobs and disassembly display options.
//
// Shaped after the emulator's own Config in its config/config.go:
// a struct-tag-per-section TOML document, a DefaultConfig constructor,
// and Load/LoadFrom functions that fall back to defaults when no file
// is present rather than treating a missing file as an error.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultFileName is the project config file goatc looks for in the
// current directory when no path is given explicitly.
const DefaultFileName = ".goatc.toml"

// Config controls the linker's compile-time knobs and the CLI's
// disassembly output. It has no bearing on the AST/bytecode
// semantics spec.md fixes -- only on presentation and file defaults.
type Config struct {
	Linker struct {
		// Signature overrides the 8-byte file signature stamped on
		// every linked image (spec.md 3.4/9: the source project left
		// this value unfixed; goatc defaults to "GOAT\0\0\0\0" but a
		// project may pin its own).
		Signature string `toml:"signature"`
		// OutputPath is the default path `goatc build` writes its
		// linked image to when -o is not given.
		OutputPath string `toml:"output_path"`
	} `toml:"linker"`

	Disasm struct {
		// Color enables ANSI mnemonic coloring in `goatc disasm`.
		Color bool `toml:"color"`
		// ShowStrings resolves SLOAD/VLOAD/VAR/CONST/STORE/FUNC
		// operands to their interned string where possible.
		ShowStrings bool `toml:"show_strings"`
	} `toml:"disasm"`
}

// DefaultConfig returns a Config with every field set to goatc's
// built-in defaults.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Linker.Signature = "GOAT\x00\x00\x00\x00"
	cfg.Linker.OutputPath = "a.goat"
	cfg.Disasm.Color = true
	cfg.Disasm.ShowStrings = true
	return cfg
}

// Load reads DefaultFileName from the current directory, falling back
// to DefaultConfig if it does not exist.
func Load() (*Config, error) {
	return LoadFrom(DefaultFileName)
}

// LoadFrom reads the TOML config file at path, falling back to
// DefaultConfig when the file does not exist. Any other I/O or parse
// error is returned to the caller.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("goatc: failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}
