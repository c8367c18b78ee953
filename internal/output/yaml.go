package output

import (
	"bytes"

	"github.com/goccy/go-yaml"
)

func init() {
	RegisterFormatter("yaml", &YAMLFormatter{})
}

// YAMLFormatter formats documents as YAML.
type YAMLFormatter struct{}

// Format converts doc to YAML. Types with their own JSON encoding keep it.
func (f *YAMLFormatter) Format(doc any, _ Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf, yaml.Indent(2), yaml.IndentSequence(true), yaml.UseJSONMarshaler())
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
