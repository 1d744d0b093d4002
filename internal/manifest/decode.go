package manifest

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
)

// Decode parses data in the given concrete format into a Document.
// A JSON or YAML document whose root is not a mapping decodes to an empty
// Document, so the lookup reports the missing section.
func Decode(format Format, data []byte) (Document, error) {
	switch format {
	case FormatTOML:
		return decodeTOML(data)
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func decodeTOML(data []byte) (Document, error) {
	var obj map[string]any
	if err := toml.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	return Document(obj), nil
}

func decodeJSON(data []byte) (Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON")
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return Document{}, nil
	}

	obj, _ := root.Value().(map[string]any)
	return Document(obj), nil
}

func decodeYAML(data []byte) (Document, error) {
	var root any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	obj, ok := root.(map[string]any)
	if !ok {
		return Document{}, nil
	}
	return Document(obj), nil
}
