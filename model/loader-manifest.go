package model

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// manifestChunk mirrors one record of a Vite-style manifest.json.
type manifestChunk struct {
	File    string   `json:"file"`
	Src     string   `json:"src"`
	Name    string   `json:"name"`
	IsEntry bool     `json:"isEntry"`
	Imports []string `json:"imports"`
	CSS     []string `json:"css"`
}

// LoadManifest reads a bundler manifest file and converts it into an
// ArtifactSet. The manifest's key order is preserved, so the artifact set
// iterates in the order the bundler emitted its chunks. Each entry's CSS is
// collected transitively across static imports, first encounter wins.
func LoadManifest(fn string) (ArtifactSet, error) {
	fn, err := filepath.Abs(fn)
	if err != nil {
		return nil, err
	}

	log.Printf("loading build manifest from %s\n", fn)
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// encoding/json map decoding loses document order, so walk the top-level
	// object token by token instead.
	dec := json.NewDecoder(f)
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", fn, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("manifest %s: top-level value must be an object", fn)
	}

	chunks := map[string]*manifestChunk{}
	order := []string{}
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, fmt.Errorf("manifest %s: %w", fn, err)
		}
		id := tok.(string)
		c := &manifestChunk{}
		if err := dec.Decode(c); err != nil {
			return nil, fmt.Errorf("manifest %s: chunk '%s': %w", fn, id, err)
		}
		chunks[id] = c
		order = append(order, id)
	}

	set := make(ArtifactSet, 0, len(order))
	for _, id := range order {
		c := chunks[id]
		a := &Artifact{ID: id, File: c.File, IsEntry: c.IsEntry}
		if c.IsEntry {
			a.Entry = entryName(id, c)
			a.CSS = dedupe(collectCSS(id, chunks, map[string]bool{}))
		}
		set = append(set, a)
	}
	return set, nil
}

// entryName resolves the declared entry-point name for a chunk: the
// manifest's explicit name when present, otherwise the source file's base
// name without extension.
func entryName(id string, c *manifestChunk) string {
	if c.Name != "" {
		return c.Name
	}
	src := c.Src
	if src == "" {
		src = id
	}
	base := filepath.Base(src)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// collectCSS gathers the stylesheets a chunk pulls in, directly or through
// its static imports, depth first in discovery order.
func collectCSS(id string, chunks map[string]*manifestChunk, visited map[string]bool) []string {
	if visited[id] {
		return nil
	}
	visited[id] = true

	c := chunks[id]
	if c == nil {
		return nil
	}

	out := append([]string{}, c.CSS...)
	for _, imp := range c.Imports {
		out = append(out, collectCSS(imp, chunks, visited)...)
	}
	return out
}

func dedupe(files []string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, fn := range files {
		if seen[fn] {
			continue
		}
		seen[fn] = true
		out = append(out, fn)
	}
	return out
}
