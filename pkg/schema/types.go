package schema

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
)

// Kind is the declared type of a setting value.
type Kind uint8

const (
	KindBool Kind = iota + 1
	KindInt
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindEnum:
		return "enum"
	default:
		return "invalid"
	}
}

// MarshalText renders the kind by name in JSON and YAML output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Unit annotates an integer setting with its unit of measure.
type Unit uint8

const (
	UnitNone Unit = iota
	UnitPercent
	UnitPixels
	UnitTicks
)

func (u Unit) String() string {
	switch u {
	case UnitPercent:
		return "percent"
	case UnitPixels:
		return "pixels"
	case UnitTicks:
		return "ticks"
	default:
		return ""
	}
}

// Suffix returns the text a host appends to a value when displaying it.
func (u Unit) Suffix() string {
	switch u {
	case UnitPercent:
		return "%"
	case UnitPixels:
		return "px"
	case UnitTicks:
		return " ticks"
	default:
		return ""
	}
}

func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// Range is an inclusive integer bound.
type Range struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Contains reports whether v lies within [Min, Max].
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Clamp returns v limited to [Min, Max].
func (r Range) Clamp(v int) int {
	return min(max(v, r.Min), r.Max)
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d]", r.Min, r.Max)
}

// Option is one member of an enum setting.
type Option struct {
	Name  string `json:"name" yaml:"name"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Value holds exactly one typed setting value. The zero Value is invalid.
// Values are comparable with ==.
type Value struct {
	kind Kind
	b    bool
	i    int
	s    string
}

func Bool(b bool) Value   { return Value{kind: KindBool, b: b} }
func Int(i int) Value     { return Value{kind: KindInt, i: i} }
func Enum(s string) Value { return Value{kind: KindEnum, s: s} }

func (v Value) Kind() Kind    { return v.kind }
func (v Value) IsValid() bool { return v.kind != 0 }

// Bool returns the boolean held by v, or false for other kinds.
func (v Value) Bool() bool { return v.b }

// Int returns the integer held by v, or 0 for other kinds.
func (v Value) Int() int { return v.i }

// Enum returns the option name held by v, or "" for other kinds.
func (v Value) Enum() string { return v.s }

// Any returns the underlying bool, int or string.
func (v Value) Any() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindEnum:
		return v.s
	default:
		return nil
	}
}

// String returns the text encoding of v, as accepted by Schema.Parse.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.Itoa(v.i)
	case KindEnum:
		return v.s
	default:
		return ""
	}
}

func (v Value) LogValue() slog.Value {
	return slog.AnyValue(v.Any())
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Any())
}

// MarshalYAML implements the goccy/go-yaml InterfaceMarshaler.
func (v Value) MarshalYAML() (any, error) {
	return v.Any(), nil
}
