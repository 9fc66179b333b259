// Package version holds build-time version metadata for the lexfang binary.
package version

// Set at build time via -ldflags.
var (
	// Version is the semantic version of the binary.
	Version = "dev"
	// Commit is the Git commit the binary was built from.
	Commit = "unknown"
	// Date is the build timestamp.
	Date = "unknown"
)
