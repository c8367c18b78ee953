package output

import "encoding/json"

func init() {
	RegisterFormatter("json", &JSONFormatter{})
}

// JSONFormatter formats documents as JSON.
type JSONFormatter struct{}

// Format converts doc to JSON.
func (f *JSONFormatter) Format(doc any, cfg Config) ([]byte, error) {
	if cfg.Compact {
		return json.Marshal(doc)
	}
	return json.MarshalIndent(doc, "", "  ")
}
