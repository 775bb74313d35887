package context

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the options file looked up in the working directory.
const ConfigFileName = "sealc.yml"

// CompilerOptions holds compiler configuration.
// Passed to the context at creation time and remains immutable.
type CompilerOptions struct {
	Debug     bool `yaml:"debug"`      // Print phase progress to DebugOutput
	NoColor   bool `yaml:"no_color"`   // Disable ANSI colors in diagnostics
	DumpTypes bool `yaml:"dump_types"` // Print the decorated tree after a clean check
	MaxErrors int  `yaml:"max_errors"` // Emit at most this many diagnostics; 0 means all

	DebugOutput io.Writer `yaml:"-"` // Defaults to stderr
}

// DefaultOptions returns the options used when no file or flag says otherwise.
func DefaultOptions() *CompilerOptions {
	return &CompilerOptions{}
}

// LoadOptions reads options from a YAML file. Unknown keys are rejected.
func LoadOptions(path string) (*CompilerOptions, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config %s: %w", path, err)
	}
	defer file.Close()

	opts, err := DecodeOptions(file)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return opts, nil
}

// DecodeOptions decodes options from YAML. An empty document yields the defaults.
func DecodeOptions(r io.Reader) (*CompilerOptions, error) {
	opts := DefaultOptions()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(opts); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if opts.MaxErrors < 0 {
		return nil, fmt.Errorf("max_errors must not be negative, got %d", opts.MaxErrors)
	}
	return opts, nil
}
