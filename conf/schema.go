package conf

import "encoding/json"

// Kind identifies the expected shape of a value in a Schema. The zero
// value accepts anything.
type Kind string

const (
	// KindString matches string values.
	KindString Kind = "string"
	// KindNumber matches any numeric value, including json.Number.
	KindNumber Kind = "number"
	// KindBool matches boolean values.
	KindBool Kind = "bool"
	// KindMap matches nested map nodes.
	KindMap Kind = "map"
)

// Field describes one key in a Schema: the expected kind, whether the
// key must be present, and an optional nested schema applied when the
// value is a map.
type Field struct {
	Kind     Kind   `json:"kind,omitempty"`
	Required bool   `json:"required,omitempty"`
	Schema   Schema `json:"schema,omitempty"`
}

// Schema maps key names to their descriptors. It is used only for
// validation and never mutates the store.
type Schema map[string]Field

// Validate checks the tree against schema: required keys must be
// present, and present keys must match their declared kind. Nested
// schemas are applied recursively wherever the value is a map. The
// result is a plain boolean; validation never fails with an error.
func (s *Store) Validate(schema Schema) bool {
	return validateTree(s.tree, schema)
}

func validateTree(tree map[string]any, schema Schema) bool {
	for key, field := range schema {
		value, exists := tree[key]
		if !exists {
			if field.Required {
				return false
			}
			continue
		}

		if field.Kind != "" && !matchesKind(value, field.Kind) {
			return false
		}

		if field.Schema != nil {
			if nested, ok := value.(map[string]any); ok {
				if !validateTree(nested, field.Schema) {
					return false
				}
			}
		}
	}
	return true
}

func matchesKind(value any, kind Kind) bool {
	switch kind {
	case KindString:
		_, ok := value.(string)
		return ok
	case KindBool:
		_, ok := value.(bool)
		return ok
	case KindNumber:
		switch value.(type) {
		case int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64,
			float32, float64, json.Number:
			return true
		}
		return false
	case KindMap:
		_, ok := value.(map[string]any)
		return ok
	}
	return false
}
