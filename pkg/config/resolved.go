package config

import (
	"log/slog"

	"github.com/isometry/statusbars/pkg/schema"
)

// Resolved holds one group's values with defaults filled in.
type Resolved struct {
	schema *schema.Schema
	values map[string]schema.Value

	// stored maps a setting key to the name its value was read under
	stored map[string]string
}

// Entry pairs a setting with its resolved value.
type Entry struct {
	Setting schema.Setting `json:"setting" yaml:"setting"`
	Value   schema.Value   `json:"value" yaml:"value"`
	Stored  bool           `json:"stored" yaml:"stored"`
}

func newResolved(s *schema.Schema) *Resolved {
	return &Resolved{
		schema: s,
		values: s.Defaults(),
		stored: make(map[string]string),
	}
}

func (r *Resolved) Schema() *schema.Schema {
	return r.schema
}

func (r *Resolved) GroupID() string {
	return r.schema.GroupID()
}

// Get returns the resolved value of key.
func (r *Resolved) Get(key string) (schema.Value, error) {
	v, ok := r.values[key]
	if !ok {
		return schema.Value{}, &schema.UnknownKeyError{Group: r.schema.GroupID(), Key: key}
	}
	return v, nil
}

// Map returns a copy of every resolved value keyed by setting key.
func (r *Resolved) Map() map[string]schema.Value {
	values := make(map[string]schema.Value, len(r.values))
	for k, v := range r.values {
		values[k] = v
	}
	return values
}

// Entries returns every setting with its value in display order.
func (r *Resolved) Entries() []Entry {
	settings := r.schema.ListSettings()
	entries := make([]Entry, len(settings))
	for i, setting := range settings {
		_, stored := r.stored[setting.Key]
		entries[i] = Entry{Setting: setting, Value: r.values[setting.Key], Stored: stored}
	}
	return entries
}

// IsStored reports whether key was read from the values file.
func (r *Resolved) IsStored(key string) bool {
	_, ok := r.stored[key]
	return ok
}

// IsDefault reports whether key resolves to its default value.
func (r *Resolved) IsDefault(key string) bool {
	def, err := r.schema.GetDefault(key)
	return err == nil && r.values[key] == def
}

// Overrides returns the values that differ from their defaults.
func (r *Resolved) Overrides() map[string]schema.Value {
	overrides := make(map[string]schema.Value)
	for k, v := range r.values {
		if !r.IsDefault(k) {
			overrides[k] = v
		}
	}
	return overrides
}

func (r *Resolved) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("group", r.schema.GroupID()),
		slog.Int("stored", len(r.stored)),
		slog.Int("overrides", len(r.Overrides())),
	)
}
