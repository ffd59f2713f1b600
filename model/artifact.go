package model

// Artifact is one file produced by a build pass.
type Artifact struct {
	// ID is the artifact identifier in the build output (the manifest key).
	ID string

	// IsEntry marks artifacts that correspond to declared entry points, as
	// opposed to shared or vendor chunks.
	IsEntry bool

	// Entry is the declared entry-point name. Meaningful only when IsEntry
	// is set.
	Entry string

	// File is the final, possibly content-hashed, relative output path.
	File string

	// CSS lists the stylesheet files this entry pulls in, directly or
	// through its imports, in the order the build system discovered them.
	CSS []string
}

// ArtifactSet is the complete output of one build pass, in build order. It
// is supplied fresh for every pass and never retained.
type ArtifactSet []*Artifact

// SelectEntries returns the entry artifacts in set order. A non-empty filter
// keeps only entries whose name is a member of the filter; the result order
// still follows the set, not the filter.
func (s ArtifactSet) SelectEntries(filter []string) []*Artifact {
	wanted := map[string]struct{}{}
	for _, name := range filter {
		wanted[name] = struct{}{}
	}

	out := []*Artifact{}
	for _, a := range s {
		if !a.IsEntry {
			continue
		}
		if len(wanted) > 0 {
			if _, ok := wanted[a.Entry]; !ok {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}
