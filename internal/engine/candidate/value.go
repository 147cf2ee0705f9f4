package candidate

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ValueKind tags the representation a FieldValue arrived in.
type ValueKind uint8

const (
	KindAbsent ValueKind = iota
	KindScalar
	KindJSONArray
	KindDelimited
)

// FieldValue is a submitted or derived field: a scalar string, a list that
// arrived as an array (or JSON array text), or a ";"-separated string.
type FieldValue struct {
	kind   ValueKind
	scalar string
	list   []string
}

// Scalar returns a scalar value; blank strings are absent.
func Scalar(s string) FieldValue {
	s = strings.TrimSpace(s)
	if s == "" {
		return FieldValue{}
	}
	return FieldValue{kind: KindScalar, scalar: s}
}

// List returns an array value holding the non-blank entries of items.
func List(items ...string) FieldValue {
	var out []string
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	if len(out) == 0 {
		return FieldValue{}
	}
	return FieldValue{kind: KindJSONArray, list: out}
}

// Delimited returns a ";"-separated value.
func Delimited(s string) FieldValue {
	if len(splitDelimited(s)) == 0 {
		return FieldValue{}
	}
	return FieldValue{kind: KindDelimited, scalar: s}
}

// ParseString classifies raw text: a JSON array first, then ";"-separated, else scalar.
func ParseString(s string) FieldValue {
	t := strings.TrimSpace(s)
	if strings.HasPrefix(t, "[") {
		var arr []any
		if err := json.Unmarshal([]byte(t), &arr); err == nil {
			return fromSlice(arr)
		}
	}
	if strings.Contains(t, ";") {
		return Delimited(t)
	}
	return Scalar(t)
}

// ParseValue converts a decoded JSON value into a FieldValue.
// Objects and booleans are not field values and come back absent.
func ParseValue(v any) FieldValue {
	switch x := v.(type) {
	case nil:
		return FieldValue{}
	case string:
		return ParseString(x)
	case float64:
		return Scalar(strconv.FormatFloat(x, 'f', -1, 64))
	case json.Number:
		return Scalar(x.String())
	case int:
		return Scalar(strconv.Itoa(x))
	case []string:
		return List(x...)
	case []any:
		return fromSlice(x)
	}
	return FieldValue{}
}

func fromSlice(arr []any) FieldValue {
	items := make([]string, 0, len(arr))
	for _, a := range arr {
		switch x := a.(type) {
		case string:
			items = append(items, x)
		case float64:
			items = append(items, strconv.FormatFloat(x, 'f', -1, 64))
		}
	}
	return List(items...)
}

// IsEmpty reports whether v carries no usable text.
func (v FieldValue) IsEmpty() bool { return len(v.Items()) == 0 }

// Items normalizes v to its non-empty entries.
func (v FieldValue) Items() []string {
	switch v.kind {
	case KindScalar:
		return []string{v.scalar}
	case KindJSONArray:
		return v.list
	case KindDelimited:
		return splitDelimited(v.scalar)
	}
	return nil
}

// String renders v as one line; lists are joined with "; ".
func (v FieldValue) String() string {
	if v.kind == KindScalar {
		return v.scalar
	}
	return strings.Join(v.Items(), "; ")
}

// Equal compares normalized content, ignoring representation.
func (v FieldValue) Equal(o FieldValue) bool {
	a, b := v.Items(), o.Items()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// MarshalJSON writes scalars as strings and everything else as arrays.
func (v FieldValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindAbsent:
		return []byte("null"), nil
	case KindScalar:
		return json.Marshal(v.scalar)
	}
	return json.Marshal(v.Items())
}

// UnmarshalJSON accepts any JSON scalar or array.
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = ParseValue(raw)
	return nil
}

func splitDelimited(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ";") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
