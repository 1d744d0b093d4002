package manifest

import (
	"path/filepath"
	"strings"
)

const (
	// DefaultField is the field read from a Cargo-style manifest.
	DefaultField = "package.version"

	// DefaultManifest is read when the path names a directory.
	DefaultManifest = "Cargo.toml"
)

// Format represents the supported manifest formats.
type Format string

const (
	// FormatAuto picks the format from the file extension.
	FormatAuto Format = "auto"

	// FormatTOML is for TOML files (Cargo.toml, pyproject.toml, etc.).
	FormatTOML Format = "toml"

	// FormatJSON is for JSON files (package.json, composer.json, etc.).
	FormatJSON Format = "json"

	// FormatYAML is for YAML files (Chart.yaml, pubspec.yaml, etc.).
	FormatYAML Format = "yaml"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatAuto, FormatTOML, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// ParseFormat converts a string to a Format. The empty string maps to
// FormatAuto; unknown names are returned as-is and fail IsValid.
func ParseFormat(s string) Format {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FormatAuto
	}
	if s == "yml" {
		return FormatYAML
	}
	return Format(s)
}

// DetectFormat guesses the format from the file extension, falling back
// to TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Resolve returns the concrete format to decode path with.
func (f Format) Resolve(path string) Format {
	if f == FormatAuto || f == "" {
		return DetectFormat(path)
	}
	return f
}

// Query describes which manifest to read and where the version lives.
type Query struct {
	// Path is the manifest path (absolute or relative).
	Path string

	// Format of the manifest. FormatAuto or empty means detect.
	Format Format

	// Field is the dot-notation path to the version field.
	// Empty means DefaultField.
	Field string
}

// Result represents the result of reading a version from a manifest.
type Result struct {
	// Version is the extracted version string.
	Version string

	// Path is the manifest that was read.
	Path string

	// Format is the concrete format used to decode it.
	Format Format

	// Field is the field path that was resolved.
	Field string
}
