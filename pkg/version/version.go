// Package version exposes the build version, injected via ldflags.
package version

// version is set at build time:
//
//	go build -ldflags "-X github.com/Paulo20Lima/esportes/pkg/version.version=v1.0.0"
//
//nolint:gochecknoglobals // Build-time injection target.
var version = "dev"

// GetVersion returns the build version string.
func GetVersion() string {
	return version
}
