package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ValueKind discriminates the variants of an extracted Value.
type ValueKind string

const (
	// ValueNumber is a currency or count amount, comma-stripped and rounded
	// to two decimal places.
	ValueNumber ValueKind = "number"
	// ValueDate is a date-shaped string preserved verbatim, never parsed.
	ValueDate ValueKind = "date"
	// ValueYear is a 4-digit string in the plausible calendar range. Years
	// stay strings: they must never be rounded or treated as currency.
	ValueYear ValueKind = "year"
	// ValueText is trimmed free text.
	ValueText ValueKind = "text"
)

// Value is the tagged union of extracted field values.
type Value struct {
	Kind   ValueKind `json:"kind"`
	Number float64   `json:"number,omitempty"`
	Text   string    `json:"text,omitempty"`
}

// NumberValue wraps a numeric amount.
func NumberValue(n float64) Value { return Value{Kind: ValueNumber, Number: n} }

// DateValue wraps a verbatim date-shaped string.
func DateValue(s string) Value { return Value{Kind: ValueDate, Text: s} }

// YearValue wraps a verbatim 4-digit year string.
func YearValue(s string) Value { return Value{Kind: ValueYear, Text: s} }

// TextValue wraps trimmed free text.
func TextValue(s string) Value { return Value{Kind: ValueText, Text: s} }

// AsNumber returns the numeric content and whether the value is a number.
func (v Value) AsNumber() (float64, bool) {
	if v.Kind == ValueNumber {
		return v.Number, true
	}
	return 0, false
}

// String renders the value for display and export.
func (v Value) String() string {
	if v.Kind == ValueNumber {
		return strconv.FormatFloat(v.Number, 'f', 2, 64)
	}
	return v.Text
}

// FieldMap is an ordered mapping from field name to Value. Fields with no
// successful match are simply absent, never present-but-null. Insertion
// order follows the extraction rule table and is preserved through JSON.
type FieldMap struct {
	names  []string
	values map[string]Value
}

// NewFieldMap creates an empty FieldMap.
func NewFieldMap() *FieldMap {
	return &FieldMap{values: make(map[string]Value)}
}

// Set inserts or overwrites a field. An overwrite keeps the original
// position.
func (m *FieldMap) Set(name string, v Value) {
	if _, ok := m.values[name]; !ok {
		m.names = append(m.names, name)
	}
	m.values[name] = v
}

// Get returns the value for name and whether it is present.
func (m *FieldMap) Get(name string) (Value, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Has reports whether name is present.
func (m *FieldMap) Has(name string) bool {
	_, ok := m.values[name]
	return ok
}

// Number returns the numeric value for name, if present and number-kinded.
func (m *FieldMap) Number(name string) (float64, bool) {
	v, ok := m.values[name]
	if !ok {
		return 0, false
	}
	return v.AsNumber()
}

// Text returns the string content for name, if present and not a number.
func (m *FieldMap) Text(name string) (string, bool) {
	v, ok := m.values[name]
	if !ok || v.Kind == ValueNumber {
		return "", false
	}
	return v.Text, true
}

// Names returns the field names in insertion order.
func (m *FieldMap) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Len returns the number of fields.
func (m *FieldMap) Len() int { return len(m.names) }

// MarshalJSON renders the map as a JSON object in insertion order.
func (m *FieldMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range m.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(m.values[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON restores the map, preserving the object's key order.
func (m *FieldMap) UnmarshalJSON(data []byte) error {
	m.names = nil
	m.values = make(map[string]Value)

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("field map: expected JSON object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("field map: expected string key, got %v", keyTok)
		}
		var v Value
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("field map: decoding value for %q: %w", key, err)
		}
		m.Set(key, v)
	}
	return nil
}
