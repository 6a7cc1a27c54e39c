// Package version carries build metadata injected at link time via
// -ldflags "-X github.com/banshee-data/navscan/internal/version.Version=...".
package version

var (
	// Version is the current module version
	Version = "dev"
	// GitSHA is the git commit SHA
	GitSHA = "unknown"
	// BuildTime is the build timestamp
	BuildTime = "unknown"
)

// String returns a single-line description of the build.
func String() string {
	return Version + " (" + GitSHA + ", built " + BuildTime + ")"
}
