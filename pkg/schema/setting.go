package schema

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Section groups settings for display.
type Section struct {
	ID          string `json:"id" yaml:"id"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Position    int    `json:"position" yaml:"position"`
	Collapsed   bool   `json:"collapsed" yaml:"collapsed"`
}

// Setting declares one typed, user-configurable value.
type Setting struct {
	// Key identifies the setting within its group.
	Key         string `json:"key" yaml:"key"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Section is the ID of the owning section, or empty for top-level settings.
	Section  string `json:"section,omitempty" yaml:"section,omitempty"`
	Position int    `json:"position" yaml:"position"`

	Kind    Kind  `json:"kind" yaml:"kind"`
	Default Value `json:"default" yaml:"default"`

	// Range bounds integer settings; nil means unbounded.
	Range *Range `json:"range,omitempty" yaml:"range,omitempty"`
	Unit  Unit   `json:"unit,omitempty" yaml:"unit,omitempty"`

	// Options lists the members of an enum setting in display order.
	Options []Option `json:"options,omitempty" yaml:"options,omitempty"`

	// StoredAs overrides the key the host persists the value under.
	StoredAs string `json:"storedAs,omitempty" yaml:"storedAs,omitempty"`
}

// StoredKey returns the key the value is persisted under.
func (s Setting) StoredKey() string {
	if s.StoredAs != "" {
		return s.StoredAs
	}
	return s.Key
}

// HasOption reports whether name is a declared option of an enum setting.
func (s Setting) HasOption(name string) bool {
	return slices.ContainsFunc(s.Options, func(o Option) bool {
		return o.Name == name
	})
}

// OptionNames returns the enum option names in display order.
func (s Setting) OptionNames() []string {
	names := make([]string, len(s.Options))
	for i, o := range s.Options {
		names[i] = o.Name
	}
	return names
}

func (s Setting) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("key", s.Key),
		slog.String("kind", s.Kind.String()),
		slog.Any("default", s.Default),
	}
	if s.Section != "" {
		attrs = append(attrs, slog.String("section", s.Section))
	}
	if s.Range != nil {
		attrs = append(attrs, slog.String("range", s.Range.String()))
	}
	return slog.GroupValue(attrs...)
}

// clone returns a copy that shares no mutable state with s.
func (s Setting) clone() Setting {
	if s.Range != nil {
		r := *s.Range
		s.Range = &r
	}
	s.Options = slices.Clone(s.Options)
	return s
}

// coerce converts candidate to the setting's kind without applying the range.
func (s Setting) coerce(candidate any) (Value, error) {
	invalid := func(err error) (Value, error) {
		return Value{}, &ValidationError{Key: s.Key, Value: candidate, Err: err}
	}

	if candidate == nil {
		return invalid(errors.New("missing value"))
	}
	if v, ok := candidate.(Value); ok {
		if v.Kind() != s.Kind {
			return invalid(fmt.Errorf("expected %s, got %s", s.Kind, v.Kind()))
		}
		candidate = v.Any()
	}

	switch s.Kind {
	case KindBool:
		b, err := cast.ToBoolE(candidate)
		if err != nil {
			return invalid(err)
		}
		return Bool(b), nil

	case KindInt:
		switch f := candidate.(type) {
		case string:
			// base 10 only; cast would honour 0x and leading-zero octal prefixes
			i, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return invalid(err)
			}
			return Int(i), nil
		case float64:
			if err := checkIntegral(f); err != nil {
				return invalid(err)
			}
		case float32:
			if err := checkIntegral(float64(f)); err != nil {
				return invalid(err)
			}
		case uint:
			if uint64(f) > math.MaxInt {
				return invalid(errIntOverflow)
			}
		case uint64:
			if f > math.MaxInt {
				return invalid(errIntOverflow)
			}
		case uint32:
			if uint64(f) > math.MaxInt {
				return invalid(errIntOverflow)
			}
		case uintptr:
			if uint64(f) > math.MaxInt {
				return invalid(errIntOverflow)
			}
		case int64:
			if f < math.MinInt || f > math.MaxInt {
				return invalid(errIntOverflow)
			}
		case bool:
			return invalid(errors.New("expected integer, got bool"))
		}
		i, err := cast.ToIntE(candidate)
		if err != nil {
			return invalid(err)
		}
		return Int(i), nil

	case KindEnum:
		name, err := cast.ToStringE(candidate)
		if err != nil {
			return invalid(err)
		}
		if !s.HasOption(name) {
			return invalid(fmt.Errorf("must be one of %v", s.OptionNames()))
		}
		return Enum(name), nil

	default:
		return invalid(fmt.Errorf("setting has invalid kind %d", s.Kind))
	}
}

var errIntOverflow = errors.New("integer overflows int")

// checkIntegral rejects floats that are fractional or do not fit an int.
// -math.MinInt is the first float past math.MaxInt.
func checkIntegral(f float64) error {
	if f != math.Trunc(f) {
		return errors.New("not an integer")
	}
	if f < math.MinInt || f >= -math.MinInt {
		return errIntOverflow
	}
	return nil
}

// validate checks the setting's own declaration.
func (s Setting) validate() error {
	var errs []error
	if s.Key == "" {
		errs = append(errs, definitionError("setting with empty key"))
	}
	switch s.Kind {
	case KindBool, KindInt, KindEnum:
	default:
		errs = append(errs, definitionError("%s: invalid kind %d", s.Key, s.Kind))
		return errors.Join(errs...)
	}
	if s.Default.Kind() != s.Kind {
		errs = append(errs, definitionError("%s: default is %s, declared %s", s.Key, s.Default.Kind(), s.Kind))
	}
	if s.Kind != KindInt && (s.Range != nil || s.Unit != UnitNone) {
		errs = append(errs, definitionError("%s: range and unit apply only to integer settings", s.Key))
	}
	if s.Kind != KindEnum && len(s.Options) > 0 {
		errs = append(errs, definitionError("%s: options apply only to enum settings", s.Key))
	}
	if s.Range != nil {
		if s.Range.Min > s.Range.Max {
			errs = append(errs, definitionError("%s: empty range %s", s.Key, s.Range))
		} else if s.Default.Kind() == KindInt && !s.Range.Contains(s.Default.Int()) {
			errs = append(errs, definitionError("%s: default %d outside range %s", s.Key, s.Default.Int(), s.Range))
		}
	}
	if s.Kind == KindEnum {
		if len(s.Options) == 0 {
			errs = append(errs, definitionError("%s: enum without options", s.Key))
		} else if s.Default.Kind() == KindEnum && !s.HasOption(s.Default.Enum()) {
			errs = append(errs, definitionError("%s: default %q is not a declared option", s.Key, s.Default.Enum()))
		}
	}
	return errors.Join(errs...)
}
