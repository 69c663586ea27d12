package nonempty

import (
	"context"
	"encoding/base64"
	"slices"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler.
func (s String) MarshalText() ([]byte, error) {
	if s.IsZero() {
		return nil, ErrZero
	}
	return slices.Clone(s.buf), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It copies text and
// applies New to the copy.
func (s *String) UnmarshalText(text []byte) error {
	v, err := New(slices.Clone(text))
	if err != nil {
		return tooShort(err)
	}
	s.adopt(v)
	return nil
}

// MarshalJSON encodes s exactly as the plain string would be encoded.
func (s String) MarshalJSON() ([]byte, error) {
	if s.IsZero() {
		return nil, ErrZero
	}
	return json.Marshal(string(s.buf))
}

// UnmarshalJSON accepts only a JSON string of at least one character. An
// empty string yields a too_short issue; null, numbers, booleans, arrays and
// objects yield an invalid_type issue.
func (s *String) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return parseError(err)
	}
	v, err := stringSchema{}.Parse(context.Background(), raw)
	if err != nil {
		return err
	}
	s.adopt(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler; the output matches the plain string.
func (s String) MarshalYAML() (any, error) {
	if s.IsZero() {
		return nil, ErrZero
	}
	return string(s.buf), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. It accepts the scalars yaml.v3
// would decode into a plain string: !!str and !!timestamp keep their text and
// !!binary is base64 decoded. Numbers, booleans, null, sequences and mappings
// yield an invalid_type issue.
func (s *String) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.ScalarNode {
		return invalidType(yamlKind(node))
	}
	text := node.Value
	switch node.ShortTag() {
	case "!!str", "!!timestamp":
	case "!!binary":
		b, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(text), ""))
		if err != nil {
			return parseError(err)
		}
		text = string(b)
	default:
		return invalidType(yamlKind(node))
	}
	v, err := stringSchema{}.Parse(context.Background(), text)
	if err != nil {
		return err
	}
	s.adopt(v)
	return nil
}

// adopt stores a freshly decoded v, whose buffer nothing else references.
func (s *String) adopt(v String) {
	v.addr = s
	*s = v
}

func yamlKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return node.ShortTag()
	default:
		return "unknown"
	}
}
