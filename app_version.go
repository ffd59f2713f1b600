package main

import (
	"runtime/debug"
)

// overridable at build time with -ldflags "-X main.version=..."
var version string = ""

// app_version resolves the string reported by the version flag: the module
// version from build info (go install), then the ldflags-injected value,
// then a placeholder.
func app_version() string {
	bi, ok := debug.ReadBuildInfo()
	if ok && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	if version != "" {
		return version
	}
	return "#UNAVAILABLE"
}
