package schema

import (
	"encoding/json"
	"strconv"

	"github.com/invopop/jsonschema"
)

// JSONSchema describes the group's stored values as a JSON Schema document.
// Properties are named by stored key and follow ListSettings order.
func (s *Schema) JSONSchema() *jsonschema.Schema {
	root := &jsonschema.Schema{
		Version:              jsonschema.Version,
		ID:                   jsonschema.ID("urn:statusbars:config:" + s.group),
		Title:                s.group,
		Type:                 "object",
		Properties:           jsonschema.NewProperties(),
		AdditionalProperties: jsonschema.FalseSchema,
	}

	for _, setting := range s.ListSettings() {
		root.Properties.Set(setting.StoredKey(), settingSchema(setting))
	}

	sections := make([]any, 0, len(s.sections))
	for _, section := range s.ListSections() {
		sections = append(sections, map[string]any{
			"id":        section.ID,
			"title":     section.Label,
			"position":  section.Position,
			"collapsed": section.Collapsed,
		})
	}
	root.Extras = map[string]any{"x-sections": sections}

	return root
}

// RegistryJSONSchema describes a whole values file: one property per
// registered group, each holding that group's JSONSchema.
func RegistryJSONSchema() *jsonschema.Schema {
	root := &jsonschema.Schema{
		Version:              jsonschema.Version,
		ID:                   "urn:statusbars:config",
		Title:                "values",
		Type:                 "object",
		Properties:           jsonschema.NewProperties(),
		AdditionalProperties: jsonschema.FalseSchema,
	}

	for _, group := range Groups() {
		s, ok := Lookup(group)
		if !ok {
			continue
		}
		nested := s.JSONSchema()
		nested.Version = ""
		root.Properties.Set(group, nested)
	}

	return root
}

func settingSchema(setting Setting) *jsonschema.Schema {
	prop := &jsonschema.Schema{
		Title:       setting.Label,
		Description: setting.Description,
		Default:     setting.Default.Any(),
	}

	extras := map[string]any{"x-position": setting.Position}
	if setting.Section != "" {
		extras["x-section"] = setting.Section
	}
	if setting.StoredAs != "" {
		extras["x-key"] = setting.Key
	}

	switch setting.Kind {
	case KindBool:
		prop.Type = "boolean"
	case KindInt:
		prop.Type = "integer"
		if setting.Range != nil {
			prop.Minimum = json.Number(strconv.Itoa(setting.Range.Min))
			prop.Maximum = json.Number(strconv.Itoa(setting.Range.Max))
		}
		if setting.Unit != UnitNone {
			extras["x-unit"] = setting.Unit.String()
		}
	case KindEnum:
		prop.Type = "string"
		for _, option := range setting.Options {
			prop.Enum = append(prop.Enum, option.Name)
		}
	}

	prop.Extras = extras
	return prop
}
