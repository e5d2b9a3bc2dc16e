// ============================================================================
// alltz - Terminal Timezone Dashboard
// ============================================================================
//
// Package:     version
// Description: Central version information
// Author:      alltz contributors
// Created:     2025-07-14
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// App version
	App = "0.3.0"

	// Name is the binary name
	Name = "alltz"
)

// Set at build time with -ldflags "-X github.com/alltz-dev/alltz/pkg/core/version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String returns "alltz 0.3.0"
func String() string {
	return Name + " " + App
}

// Full returns the version with build metadata
func Full() string {
	return fmt.Sprintf("%s %s (commit %s, built %s, %s/%s)",
		Name, App, Commit, BuildDate, runtime.GOOS, runtime.GOARCH)
}
