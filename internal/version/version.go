package version

import "runtime/debug"

// version is set at build time with
// -ldflags "-X github.com/indaco/getver/internal/version.version=1.0.0".
var version = ""

// GetVersion returns the build version, falling back to the module
// version recorded by the Go toolchain and then to "dev".
func GetVersion() string {
	if version != "" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "dev"
}
