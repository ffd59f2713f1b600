// Package markup derives script and link markup from the entry chunks of a
// finished build and writes it to the configured destination files.
//
// The generator is stateless across passes: it is constructed once from a
// validated configuration and invoked with a fresh artifact set after every
// build. Markup for both outputs is rendered fully before the first write,
// so a resolution failure never leaves partial output behind.
package markup

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adnsv/go-utils/filesystem"
	"github.com/gedouu/vite-plugin-generate-html/model"
)

// Generator renders and writes asset markup for one build pass at a time.
type Generator struct {
	cfg *model.Config
}

// New validates cfg and returns a generator bound to it. The configuration
// is not copied and must not be mutated afterwards.
func New(cfg *model.Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg}, nil
}

// Run derives markup for one finished build pass and overwrites both output
// files. Both writes are always attempted; their results are joined so one
// file's failure never hides the other's outcome.
func (g *Generator) Run(set model.ArtifactSet) error {
	entries := set.SelectEntries(g.cfg.Entries)
	if len(entries) == 0 {
		return ErrNoEntries
	}

	scripts, err := g.Scripts(entries)
	if err != nil {
		return err
	}
	links, err := g.Links(entries)
	if err != nil {
		return err
	}

	return errors.Join(
		g.write("script", g.cfg.ScriptOutput, scripts),
		g.write("link", g.cfg.StyleOutput, links),
	)
}

// Scripts renders one script element per selected entry, in selection order.
// The element source is the configured base path concatenated with the
// entry's output file name, with no path normalization.
func (g *Generator) Scripts(entries []*model.Artifact) (string, error) {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		attrs, _, err := resolveAttrs(e.Entry, g.cfg.Attributes)
		if err != nil {
			return "", err
		}
		lines = append(lines, scriptLine(attrs, g.cfg.Base()+e.File))
	}
	return strings.Join(lines, "\n"), nil
}

// Links renders one stylesheet element per imported style file of every
// selected entry that has any, keeping the entry order and the per-entry
// style order. Entries without styles contribute nothing; when none has any
// the result is empty and the style file is still (over)written.
func (g *Generator) Links(entries []*model.Artifact) (string, error) {
	lines := []string{}
	for _, e := range entries {
		if len(e.CSS) == 0 {
			continue
		}
		_, attrs, err := resolveAttrs(e.Entry, g.cfg.Attributes)
		if err != nil {
			return "", err
		}
		for _, fn := range e.CSS {
			lines = append(lines, linkLine(attrs, g.cfg.Base()+fn))
		}
	}
	return strings.Join(lines, "\n"), nil
}

func scriptLine(attrs []string, src string) string {
	if len(attrs) == 0 {
		return fmt.Sprintf(`<script src="%s"></script>`, src)
	}
	return fmt.Sprintf(`<script %s src="%s"></script>`, strings.Join(attrs, " "), src)
}

func linkLine(attrs []string, href string) string {
	if len(attrs) == 0 {
		return fmt.Sprintf(`<link rel="stylesheet" href="%s">`, href)
	}
	return fmt.Sprintf(`<link rel="stylesheet" %s href="%s">`, strings.Join(attrs, " "), href)
}

func (g *Generator) write(kind, fn, content string) error {
	if err := filesystem.WriteFileIfChanged(fn, []byte(content)); err != nil {
		return fmt.Errorf("%w: %s markup to %s: %w", ErrWrite, kind, fn, err)
	}
	return nil
}
