// Package schema declares typed plugin settings and validates candidate values
// against them.
//
// A Schema is a static table built once with New and never mutated afterwards,
// so it is safe for concurrent use without locking. Hosts read the table to
// render a settings form and to validate, clamp or parse stored values.
package schema

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/isometry/statusbars/pkg/utils"
)

// Schema is the complete declaration of one group's settings.
type Schema struct {
	group    string
	sections []Section
	settings []Setting

	byKey     map[string]int
	byFold    map[string]int
	sectionAt map[string]int
}

// New builds a schema, rejecting declarations that break an invariant.
// Sections and settings are kept in declaration order for tie-breaking.
func New(group string, sections []Section, settings []Setting) (*Schema, error) {
	s := &Schema{
		group:     group,
		sections:  slices.Clone(sections),
		settings:  make([]Setting, len(settings)),
		byKey:     make(map[string]int, len(settings)),
		byFold:    make(map[string]int, 2*len(settings)),
		sectionAt: make(map[string]int, len(sections)),
	}
	for i, setting := range settings {
		s.settings[i] = setting.clone()
	}

	var errs []error
	if group == "" {
		errs = append(errs, definitionError("empty group id"))
	}

	for i, section := range s.sections {
		if section.ID == "" {
			errs = append(errs, definitionError("section with empty id"))
			continue
		}
		if _, exists := s.sectionAt[section.ID]; exists {
			errs = append(errs, definitionError("duplicate section %q", section.ID))
			continue
		}
		s.sectionAt[section.ID] = i
	}

	for i, setting := range s.settings {
		if err := setting.validate(); err != nil {
			errs = append(errs, err)
		}
		if setting.Section != "" {
			if _, ok := s.sectionAt[setting.Section]; !ok {
				errs = append(errs, definitionError("%s: unknown section %q", setting.Key, setting.Section))
			}
		}
		if _, exists := s.byKey[setting.Key]; exists {
			errs = append(errs, definitionError("duplicate key %q", setting.Key))
			continue
		}
		s.byKey[setting.Key] = i

		// stored values are matched case-insensitively, so folded names must not collide
		names := utils.SetFrom(strings.ToLower(setting.Key), strings.ToLower(setting.StoredKey()))
		for _, name := range names.Items() {
			if j, exists := s.byFold[name]; exists && j != i {
				errs = append(errs, definitionError("%s: name %q collides with %s", setting.Key, name, s.settings[j].Key))
				continue
			}
			s.byFold[name] = i
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return s, nil
}

// MustNew is like New but panics on an invalid declaration.
// Intended for static declarations at package init.
func MustNew(group string, sections []Section, settings []Setting) *Schema {
	s, err := New(group, sections, settings)
	if err != nil {
		panic(err)
	}
	return s
}

// GroupID returns the namespace the group's values are stored under.
func (s *Schema) GroupID() string {
	return s.group
}

func (s *Schema) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("group", s.group),
		slog.Int("sections", len(s.sections)),
		slog.Int("settings", len(s.settings)),
	)
}

// ListSections returns the sections ordered by display position.
func (s *Schema) ListSections() []Section {
	sections := slices.Clone(s.sections)
	slices.SortStableFunc(sections, func(a, b Section) int {
		return cmp.Compare(a.Position, b.Position)
	})
	return sections
}

// ListSettings returns every setting ordered by (section position, setting
// position). Top-level settings share the position space with sections.
func (s *Schema) ListSettings() []Setting {
	settings := make([]Setting, len(s.settings))
	for i, setting := range s.settings {
		settings[i] = setting.clone()
	}
	slices.SortStableFunc(settings, func(a, b Setting) int {
		return cmp.Or(
			cmp.Compare(s.groupPosition(a), s.groupPosition(b)),
			cmp.Compare(sectionRank(a), sectionRank(b)),
			cmp.Compare(a.Position, b.Position),
		)
	})
	return settings
}

// SectionSettings returns the settings of one section in display order.
// An empty id selects the top-level settings.
func (s *Schema) SectionSettings(id string) ([]Setting, error) {
	if id != "" {
		if _, ok := s.sectionAt[id]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSection, id)
		}
	}
	var settings []Setting
	for _, setting := range s.ListSettings() {
		if setting.Section == id {
			settings = append(settings, setting)
		}
	}
	return settings, nil
}

// groupPosition is the position of the block a setting is displayed in.
func (s *Schema) groupPosition(setting Setting) int {
	if setting.Section == "" {
		return setting.Position
	}
	return s.sections[s.sectionAt[setting.Section]].Position
}

// sectionRank orders top-level settings before a section at the same position.
func sectionRank(setting Setting) int {
	if setting.Section == "" {
		return 0
	}
	return 1
}

// Section returns the section with the given id.
func (s *Schema) Section(id string) (Section, bool) {
	i, ok := s.sectionAt[id]
	if !ok {
		return Section{}, false
	}
	return s.sections[i], true
}

// Setting returns the declaration of key.
func (s *Schema) Setting(key string) (Setting, error) {
	i, ok := s.byKey[key]
	if !ok {
		return Setting{}, &UnknownKeyError{Group: s.group, Key: key}
	}
	return s.settings[i].clone(), nil
}

// Lookup finds a setting by declared or stored key, ignoring case.
func (s *Schema) Lookup(name string) (Setting, bool) {
	i, ok := s.byFold[strings.ToLower(name)]
	if !ok {
		return Setting{}, false
	}
	return s.settings[i].clone(), true
}

// GetDefault returns the default value of key.
func (s *Schema) GetDefault(key string) (Value, error) {
	i, ok := s.byKey[key]
	if !ok {
		return Value{}, &UnknownKeyError{Group: s.group, Key: key}
	}
	return s.settings[i].Default, nil
}

// Defaults returns the default of every setting, keyed by declared key.
func (s *Schema) Defaults() map[string]Value {
	defaults := make(map[string]Value, len(s.settings))
	for _, setting := range s.settings {
		defaults[setting.Key] = setting.Default
	}
	return defaults
}

// Validate coerces candidate to the declared type of key. Integer settings
// with a range reject candidates outside it with an *OutOfRangeError.
func (s *Schema) Validate(key string, candidate any) (Value, error) {
	i, ok := s.byKey[key]
	if !ok {
		return Value{}, &UnknownKeyError{Group: s.group, Key: key}
	}
	setting := s.settings[i]

	v, err := setting.coerce(candidate)
	if err != nil {
		return Value{}, err
	}
	if setting.Range != nil && !setting.Range.Contains(v.Int()) {
		return Value{}, &OutOfRangeError{Key: key, Value: v.Int(), Range: *setting.Range}
	}
	return v, nil
}

// Clamp is like Validate but limits ranged integers to their bounds instead
// of failing.
func (s *Schema) Clamp(key string, candidate any) (Value, error) {
	i, ok := s.byKey[key]
	if !ok {
		return Value{}, &UnknownKeyError{Group: s.group, Key: key}
	}
	setting := s.settings[i]

	v, err := setting.coerce(candidate)
	if err != nil {
		return Value{}, err
	}
	if setting.Range != nil {
		v = Int(setting.Range.Clamp(v.Int()))
	}
	return v, nil
}

// Parse decodes the text form of a value, as produced by Value.String.
func (s *Schema) Parse(key, text string) (Value, error) {
	return s.Validate(key, text)
}
