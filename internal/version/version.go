// Package version holds build metadata for thundery.
package version

import "fmt"

// These variables are populated by the Go linker (LDFLAGS) at build time.
var (
	Version    = "dev"     // Default value if not built with LDFLAGS
	CommitHash = "unknown" // Default value
	BuildDate  = "unknown" // Default value
)

// String returns the one-line version banner printed by -version.
func String() string {
	return fmt.Sprintf("thundery %s (%s, %s)", Version, CommitHash, BuildDate)
}

// UserAgent returns the User-Agent sent to the weather provider.
func UserAgent() string {
	return "thundery/" + Version
}
