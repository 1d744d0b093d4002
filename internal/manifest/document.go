package manifest

import (
	"errors"
	"fmt"
	"strings"
)

// SchemaError reports that the manifest does not have the expected shape:
// an intermediate key is missing or not a mapping, or the version is
// missing, not a string, or empty.
type SchemaError struct {
	// Key is the segment (or segment path) that could not be resolved.
	Key string
}

func (e *SchemaError) Error() string {
	return e.Key + " is not found in the file"
}

// IsSchemaError reports whether err wraps a *SchemaError.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}

// Document is a decoded manifest: a tree of mappings, arrays and scalars.
type Document map[string]any

// ValidateField checks that field is a usable dot-notation path.
func ValidateField(field string) error {
	if field == "" {
		return fmt.Errorf("field path cannot be empty")
	}
	for _, part := range strings.Split(field, ".") {
		if part == "" {
			return fmt.Errorf("invalid field path %q: empty segment", field)
		}
	}
	return nil
}

// Lookup resolves field against the document and returns the version string.
//
// Every segment but the last must name a mapping; otherwise a *SchemaError
// carrying the path walked so far is returned ("package" for the default
// field). The last segment must hold a non-empty string; otherwise the
// *SchemaError carries just that segment ("version").
func (d Document) Lookup(field string) (string, error) {
	if err := ValidateField(field); err != nil {
		return "", err
	}

	parts := strings.Split(field, ".")
	current := map[string]any(d)

	for i, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			return "", &SchemaError{Key: strings.Join(parts[:i+1], ".")}
		}
		current = next
	}

	leaf := parts[len(parts)-1]
	version, ok := current[leaf].(string)
	if !ok || version == "" {
		return "", &SchemaError{Key: leaf}
	}

	return version, nil
}
