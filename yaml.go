package enumap

import (
	"encoding"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes the map as a YAML mapping holding exactly the
// occupied entries, keys in ascending position order. Key text follows
// E's encoding.TextMarshaler when implemented; otherwise keys encode
// like any YAML scalar, so integer-backed domains produce integer keys.
func (m Map[E, V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for k, v := range m.All() {
		kn, err := yamlScalar(k)
		if err != nil {
			return nil, err
		}
		vn := &yaml.Node{}
		if err := vn.Encode(v); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, kn, vn)
	}
	return node, nil
}

// UnmarshalYAML decodes a YAML mapping into the map, inserting each pair
// with Set in document order so that duplicate keys resolve to the last
// one. A null node is a no-op.
func (m *Map[E, V]) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("enumap: cannot unmarshal yaml %s into a map", value.Tag)
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valNode := value.Content[i], value.Content[i+1]
		var key E
		if err := yamlKey(keyNode, &key); err != nil {
			return fmt.Errorf("enumap: key %q: %w", keyNode.Value, err)
		}
		var val V
		if err := valNode.Decode(&val); err != nil {
			return fmt.Errorf("enumap: key %q: %w", keyNode.Value, err)
		}
		m.Set(key, val)
	}
	return nil
}

// MarshalYAML encodes the set as a YAML sequence of its values in
// ascending position order.
func (s Set[E]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for v := range s.All() {
		n, err := yamlScalar(v)
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, n)
	}
	return node, nil
}

// UnmarshalYAML decodes a YAML sequence of values into the set, adding
// each element in document order. A null node is a no-op.
func (s *Set[E]) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		return nil
	}
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("enumap: cannot unmarshal yaml %s into a set", value.Tag)
	}
	for _, item := range value.Content {
		var v E
		if err := yamlKey(item, &v); err != nil {
			return fmt.Errorf("enumap: value %q: %w", item.Value, err)
		}
		s.Add(v)
	}
	return nil
}

// yamlScalar encodes one key or set element, routing through
// encoding.TextMarshaler explicitly rather than relying on yaml.v3's
// interface probing.
func yamlScalar(v any) (*yaml.Node, error) {
	n := &yaml.Node{}
	if tm, ok := v.(encoding.TextMarshaler); ok {
		text, err := tm.MarshalText()
		if err != nil {
			return nil, err
		}
		n.SetString(string(text))
		return n, nil
	}
	if err := n.Encode(v); err != nil {
		return nil, err
	}
	return n, nil
}

// yamlKey decodes one key or set element. Scalars reuse the textual key
// path shared with the JSON adapter, so encoding.TextUnmarshaler domains
// work even though yaml.v3 does not consult that interface itself.
func yamlKey[E Enum[E]](n *yaml.Node, key *E) error {
	if n.Kind == yaml.ScalarNode {
		return unmarshalKeyText(key, n.Value)
	}
	return n.Decode(key)
}
