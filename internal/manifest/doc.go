// Package manifest reads a version string out of a package manifest.
//
// A manifest is decoded into a generic Document (TOML by default, JSON and
// YAML on request or by file extension) and a dot-notation field such as
// "package.version" is resolved against it. Shape problems in the document
// are reported as *SchemaError so callers can tell them apart from I/O and
// syntax failures.
package manifest
