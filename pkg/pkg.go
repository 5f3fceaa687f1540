//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

// version is the semantic version of the cfg module embedded at build time.
// It is printed by the CLI when users invoke the --version flag.
//
//go:embed VERSION
var version string

// Version returns the embedded semantic version string.
func Version() string { return strings.TrimSpace(version) }

const (
	// Name is the canonical command and module identifier used across the
	// project. It appears in help text and log output.
	Name = "cfg"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Typed configuration file loader"
)
