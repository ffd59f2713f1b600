package markup

import "errors"

// Failure categories for one generation pass. All of them abort the pass
// entirely; the host build is expected to fail with the propagated message.
var (
	// ErrNoEntries reports a selection that produced no entry chunks,
	// either because the build declared none or because the configured
	// entry filter matched nothing.
	ErrNoEntries = errors.New("no entry points selected")

	// ErrMissingOverride reports a selected entry without a matching
	// override while per-entry attributes are configured.
	ErrMissingOverride = errors.New("no attribute override for entry")

	// ErrWrite reports a markup write that did not complete.
	ErrWrite = errors.New("markup write failed")
)
