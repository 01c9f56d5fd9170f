package enumap

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"
	"strconv"
)

// MarshalJSON encodes the map as a JSON object holding exactly the
// occupied entries, keys in ascending position order. An empty map
// encodes as {}.
//
// Key text is the domain type's business: E's encoding.TextMarshaler is
// used when implemented, otherwise integer-backed domains fall back to
// their quoted decimal form, mirroring how encoding/json treats Go map
// keys.
func (m Map[E, V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for k, v := range m.All() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		kb, err := jsonKey(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the map, inserting each pair
// with Set in document order so that duplicate keys resolve to the last
// one. A null document is a no-op. Entries already in the map keep their
// values unless the document overwrites them, matching how encoding/json
// fills Go maps.
func (m *Map[E, V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("enumap: cannot unmarshal %v into a map", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("enumap: unexpected key token %v", keyTok)
		}
		var key E
		if err := unmarshalKeyText(&key, name); err != nil {
			return fmt.Errorf("enumap: key %q: %w", name, err)
		}
		var val V
		if err := dec.Decode(&val); err != nil {
			return fmt.Errorf("enumap: key %q: %w", name, err)
		}
		m.Set(key, val)
	}
	_, err = dec.Token()
	return err
}

// MarshalJSON encodes the set as a JSON array of its values in ascending
// position order. An empty set encodes as []. Value text follows E's own
// JSON encoding, so domains with encoding.TextMarshaler encode as
// strings and plain integer-backed domains as numbers.
func (s Set[E]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	first := true
	for v := range s.All() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON array of values into the set, adding each
// element in document order. A null document is a no-op.
func (s *Set[E]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return fmt.Errorf("enumap: cannot unmarshal %v into a set", tok)
	}
	for dec.More() {
		var v E
		if err := dec.Decode(&v); err != nil {
			return err
		}
		s.Add(v)
	}
	_, err = dec.Token()
	return err
}

// jsonKey renders one map key. TextMarshaler output is quoted as a JSON
// string; anything else must already encode as a string or a number, the
// same rule encoding/json applies to map keys.
func jsonKey[E Enum[E]](k E) ([]byte, error) {
	if tm, ok := any(k).(encoding.TextMarshaler); ok {
		text, err := tm.MarshalText()
		if err != nil {
			return nil, err
		}
		return json.Marshal(string(text))
	}
	b, err := json.Marshal(k)
	if err != nil {
		return nil, err
	}
	if len(b) > 0 && b[0] == '"' {
		return b, nil
	}
	if len(b) > 0 && (b[0] == '-' || (b[0] >= '0' && b[0] <= '9')) {
		return strconv.AppendQuote(nil, string(b)), nil
	}
	return nil, fmt.Errorf("enumap: cannot encode %T as an object key", k)
}

// unmarshalKeyText decodes one key from its textual form, preferring E's
// encoding.TextUnmarshaler and falling back to the decimal and quoted
// forms encoding/json accepts for map keys.
func unmarshalKeyText[E Enum[E]](key *E, text string) error {
	if tu, ok := any(key).(encoding.TextUnmarshaler); ok {
		return tu.UnmarshalText([]byte(text))
	}
	if err := json.Unmarshal([]byte(text), key); err == nil {
		return nil
	}
	return json.Unmarshal(strconv.AppendQuote(nil, text), key)
}
