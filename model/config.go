package model

import (
	"errors"
	"fmt"
)

// DefaultBasePath is the asset prefix used when the configuration does not
// specify one.
const DefaultBasePath = "/dist/"

var (
	// ErrConfig indicates a missing or malformed configuration option.
	ErrConfig = errors.New("invalid configuration")

	// ErrAttributes indicates an override whose attribute field is not a
	// sequence of strings.
	ErrAttributes = errors.New("invalid attributes")
)

// Default attribute tokens, applied to every entry when no overrides are
// configured.
var (
	DefaultScriptAttrs = []string{`type="module"`}
	DefaultLinkAttrs   = []string{`media="all"`}
)

// Attributes holds the raw attribute tokens placed on generated markup.
// Tokens are opaque text and are copied into the output verbatim.
type Attributes struct {
	Script []string `yaml:"script"`
	Link   []string `yaml:"link"`
}

// Override binds one entry name to its attribute tokens.
type Override struct {
	Entry string
	Attributes
}

// OverrideList keeps overrides in declaration order.
type OverrideList []Override

// Lookup scans the list in declaration order and returns the first override
// whose entry name matches.
func (l OverrideList) Lookup(entry string) (Override, bool) {
	for _, o := range l {
		if o.Entry == entry {
			return o, true
		}
	}
	return Override{}, false
}

// Config drives one markup generation pass. It is constructed once, either
// programmatically or through LoadConfig, and must not change afterwards.
type Config struct {
	// BasePath is prepended to every emitted file reference by plain string
	// concatenation. Empty means DefaultBasePath.
	BasePath string `yaml:"base-path"`

	// ScriptOutput and StyleOutput are the destination files for the
	// generated script and link markup. Both are required.
	ScriptOutput string `yaml:"script-output"`
	StyleOutput  string `yaml:"style-output"`

	// Entries restricts generation to the named entry points. Empty means
	// every entry chunk of the build is processed.
	Entries []string `yaml:"entries"`

	// Attributes customizes attribute tokens per entry. Once non-empty,
	// every processed entry must have a matching override.
	Attributes OverrideList `yaml:"attributes"`
}

// Base returns the configured asset base path, falling back to
// DefaultBasePath.
func (c *Config) Base() string {
	if c.BasePath == "" {
		return DefaultBasePath
	}
	return c.BasePath
}

// Validate checks the required options. It does not mutate the config.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: configuration is nil", ErrConfig)
	}
	if c.ScriptOutput == "" {
		return fmt.Errorf("%w: script-output must be a non-empty path", ErrConfig)
	}
	if c.StyleOutput == "" {
		return fmt.Errorf("%w: style-output must be a non-empty path", ErrConfig)
	}
	seen := map[string]struct{}{}
	for _, o := range c.Attributes {
		if o.Entry == "" {
			return fmt.Errorf("%w: attribute override with an empty entry name", ErrConfig)
		}
		if _, dup := seen[o.Entry]; dup {
			return fmt.Errorf("%w: duplicate attribute override for entry '%s'", ErrConfig, o.Entry)
		}
		seen[o.Entry] = struct{}{}
		if o.Script == nil {
			return fmt.Errorf("%w: entry '%s': script is not a sequence of strings", ErrAttributes, o.Entry)
		}
		if o.Link == nil {
			return fmt.Errorf("%w: entry '%s': link is not a sequence of strings", ErrAttributes, o.Entry)
		}
	}
	return nil
}
