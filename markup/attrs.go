package markup

import (
	"fmt"

	"github.com/gedouu/vite-plugin-generate-html/model"
)

// resolveAttrs returns the attribute tokens for one selected entry. With no
// overrides configured every entry gets the defaults. Once overrides exist,
// every selected entry must be covered; narrow the entry filter instead of
// leaving gaps.
func resolveAttrs(entry string, overrides model.OverrideList) (script, link []string, err error) {
	if len(overrides) == 0 {
		return model.DefaultScriptAttrs, model.DefaultLinkAttrs, nil
	}
	o, ok := overrides.Lookup(entry)
	if !ok {
		return nil, nil, fmt.Errorf("%w: '%s'", ErrMissingOverride, entry)
	}
	return o.Script, o.Link, nil
}
