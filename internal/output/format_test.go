package output

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDoc struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

func (d testDoc) RenderText(p Palette) string {
	return p.Paint(p.Key, d.Name) + " " + strings.Repeat("*", d.Count) + "\n"
}

func (d testDoc) TestSuite() TestSuite {
	return TestSuite{
		Name: d.Name,
		Suites: []TestSuite{{
			Name: "inner",
			Cases: []TestCase{
				{Name: "ok", Classname: "integer"},
				{Name: "bad", Classname: "enum", Failures: []string{"first", "second"}},
			},
		}},
		Cases: []TestCase{{Name: "top", Classname: "boolean", SystemOut: "true"}},
	}
}

func TestFormatterRegistry(t *testing.T) {
	assert.Equal(t, []string{"json", "junit", "text", "yaml"}, FormatNames())

	_, ok := GetFormatter("unknown")
	assert.False(t, ok)
}

func TestJSONFormatter(t *testing.T) {
	formatter, ok := GetFormatter("json")
	require.True(t, ok)

	out, err := formatter.Format(testDoc{Name: "bars", Count: 2}, Config{})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"bars\",\n  \"count\": 2\n}", string(out))

	out, err = formatter.Format(testDoc{Name: "bars", Count: 2}, Config{Compact: true})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"bars","count":2}`, string(out))
}

func TestYAMLFormatter(t *testing.T) {
	formatter, ok := GetFormatter("yaml")
	require.True(t, ok)

	out, err := formatter.Format(testDoc{Name: "bars", Count: 2}, Config{})
	require.NoError(t, err)
	assert.Equal(t, "name: bars\ncount: 2", string(out))
}

func TestTextFormatter(t *testing.T) {
	formatter, ok := GetFormatter("text")
	require.True(t, ok)

	out, err := formatter.Format(testDoc{Name: "bars", Count: 3}, Config{})
	require.NoError(t, err)
	assert.Equal(t, "bars ***", string(out))

	colors := DefaultColorConfig().Resolve()
	out, err = formatter.Format(testDoc{Name: "bars", Count: 1}, Config{Colorize: true, Colors: colors})
	require.NoError(t, err)
	assert.Equal(t, colors.Key+"bars"+colors.Reset+" *", string(out))

	_, err = formatter.Format(42, Config{})
	assert.ErrorContains(t, err, "text output is not supported for int")
}

func TestJUnitFormatter(t *testing.T) {
	formatter, ok := GetFormatter("junit")
	require.True(t, ok)

	out, err := formatter.Format(testDoc{Name: "bars"}, Config{})
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte(xml.Header)))

	var suite junitTestSuite
	require.NoError(t, xml.Unmarshal(out, &suite))
	assert.Equal(t, "bars", suite.Name)
	assert.Equal(t, 3, suite.Tests)
	assert.Equal(t, 1, suite.Failures)
	assert.NotEmpty(t, suite.Timestamp)

	require.Len(t, suite.Suites, 1)
	inner := suite.Suites[0]
	assert.Equal(t, 2, inner.Tests)
	require.Len(t, inner.Cases[1].Failures, 1)
	assert.Equal(t, "first", inner.Cases[1].Failures[0].Message)
	assert.Equal(t, "first\nsecond", inner.Cases[1].Failures[0].Content)

	require.NotNil(t, suite.Cases[0].SystemOut)
	assert.Equal(t, "true", suite.Cases[0].SystemOut.Content)

	_, err = formatter.Format("plain", Config{})
	assert.Error(t, err)
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, testDoc{Name: "bars", Count: 1}, Config{Format: "text"}))
	assert.Equal(t, "bars *\n", buf.String())

	err := Fprint(&buf, testDoc{}, Config{Format: "toml"})
	assert.ErrorContains(t, err, `unknown output format "toml" (available: json, junit, text, yaml)`)
}

func TestPalette(t *testing.T) {
	colors := DefaultColorConfig().Resolve()

	assert.Equal(t, "x", Palette{ResolvedColors: colors}.Paint(colors.Key, "x"))
	assert.Equal(t, "x", Config{Colorize: true}.Palette().Paint("", "x"))
	assert.Equal(t, colors.Invalid+"x"+colors.Reset, Config{Colorize: true, Colors: colors}.Palette().Paint(colors.Invalid, "x"))

	painted := Config{Colorize: true, Colors: colors}.Palette()
	assert.Equal(t, colors.Key+"ab"+colors.Reset+"  ", painted.PaintPadded(colors.Key, "ab", 4))
	assert.Equal(t, "ab  ", Config{}.Palette().PaintPadded(colors.Key, "ab", 4))
	assert.Equal(t, "abcdef", Config{}.Palette().PaintPadded(colors.Key, "abcdef", 4))
}

func TestShouldColorize(t *testing.T) {
	assert.True(t, shouldColorize("always"))
	assert.False(t, shouldColorize("never"))
}
