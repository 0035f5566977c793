package export

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Flatten collapses a nested object into a single flat Row. Nested objects
// become parent_child keys; arrays are kept whole as a compact JSON string in
// one cell. Keys keep the order they have in v's JSON encoding (struct field
// order, sorted map keys).
func Flatten(v any) (Row, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("export: flatten: %w", err)
	}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		return nil, fmt.Errorf("export: flatten: %T is not an object", v)
	}

	var out Row
	if err := flattenObject(b, "", &out); err != nil {
		return nil, fmt.Errorf("export: flatten: %w", err)
	}
	return out, nil
}

// FlattenAll flattens every item into a row.
func FlattenAll[T any](items []T) ([]Row, error) {
	out := make([]Row, 0, len(items))
	for i, it := range items {
		r, err := Flatten(it)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func flattenObject(raw []byte, prefix string, out *Row) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	if _, err := dec.Token(); err != nil { // {
		return err
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}
		if prefix != "" {
			key = prefix + "_" + key
		}

		var val json.RawMessage
		if err := dec.Decode(&val); err != nil {
			return err
		}
		val = bytes.TrimSpace(val)

		switch val[0] {
		case '{':
			if err := flattenObject(val, key, out); err != nil {
				return err
			}
		case '[':
			var buf bytes.Buffer
			if err := json.Compact(&buf, val); err != nil {
				return err
			}
			*out = append(*out, Cell{Key: key, Value: buf.String()})
		default:
			v, err := decodeScalar(val)
			if err != nil {
				return err
			}
			*out = append(*out, Cell{Key: key, Value: v})
		}
	}
	_, err := dec.Token() // }
	return err
}

func decodeScalar(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if n, ok := v.(json.Number); ok {
		return scalar(n)
	}
	return v, nil
}
