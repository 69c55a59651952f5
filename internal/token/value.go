package token

import (
	"encoding/json"
	"fmt"
	"strconv"

	apperrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// Mode selects which Theme branch resolution reads from.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Valid reports whether the mode is one of the known branches.
func (m Mode) Valid() bool {
	return m == ModeLight || m == ModeDark
}

// ValueKind discriminates the primitive value union.
type ValueKind string

const (
	KindNumber ValueKind = "number"
	KindString ValueKind = "string"
)

// Value is a concrete primitive design value. A resolved value is always a
// Value, never another reference.
type Value struct {
	Kind ValueKind
	Num  float64
	Str  string
	Unit string
}

// NumberValue constructs a numeric Value with an optional unit.
func NumberValue(n float64, unit string) Value {
	return Value{Kind: KindNumber, Num: n, Unit: unit}
}

// StringValue constructs a string Value.
func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// Float returns the numeric magnitude of the value. String values that parse
// as numbers are converted; everything else yields zero.
func (v Value) Float() float64 {
	if v.Kind == KindNumber {
		return v.Num
	}
	if parsed, err := strconv.ParseFloat(v.Str, 64); err == nil {
		return parsed
	}
	return 0
}

// CSS renders the value as a CSS literal, e.g. "8px" or "#111827".
func (v Value) CSS() string {
	if v.Kind == KindNumber {
		return trimFloat(v.Num) + v.Unit
	}
	return v.Str
}

func (v Value) String() string {
	return v.CSS()
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

type valueJSON struct {
	Kind  ValueKind       `json:"kind"`
	Value json.RawMessage `json:"value"`
	Unit  string          `json:"unit,omitempty"`
}

// MarshalJSON renders the typed union form.
func (v Value) MarshalJSON() ([]byte, error) {
	out := valueJSON{Kind: v.Kind, Unit: v.Unit}
	var err error
	switch v.Kind {
	case KindNumber:
		out.Value, err = json.Marshal(v.Num)
	default:
		out.Value, err = json.Marshal(v.Str)
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts the typed union form as well as bare JSON numbers and
// strings, so documents can mix the two shapes.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, ok := CoerceValue(raw)
	if !ok {
		return apperrors.NewParseError("", fmt.Errorf("cannot interpret %s as a token value", string(data)))
	}
	*v = parsed
	return nil
}

// CoerceValue interprets a raw document leaf as a Value. It accepts bare
// numbers, bare strings, and the typed {kind, value, unit} map form.
func CoerceValue(raw any) (Value, bool) {
	switch leaf := raw.(type) {
	case Value:
		return leaf, true
	case float64:
		return NumberValue(leaf, ""), true
	case int:
		return NumberValue(float64(leaf), ""), true
	case string:
		return StringValue(leaf), true
	case map[string]any:
		return coerceTypedValue(leaf)
	case Document:
		return coerceTypedValue(leaf)
	}
	return Value{}, false
}

func coerceTypedValue(leaf map[string]any) (Value, bool) {
	kind, _ := leaf["kind"].(string)
	unit, _ := leaf["unit"].(string)
	switch ValueKind(kind) {
	case KindNumber:
		num, ok := leaf["value"].(float64)
		if !ok {
			if i, isInt := leaf["value"].(int); isInt {
				num, ok = float64(i), true
			}
		}
		if !ok {
			return Value{}, false
		}
		return NumberValue(num, unit), true
	case KindString:
		str, ok := leaf["value"].(string)
		if !ok {
			return Value{}, false
		}
		return StringValue(str), true
	}
	return Value{}, false
}
