package root_test

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isometry/statusbars/internal/testutil"
	"github.com/isometry/statusbars/pkg/commands/root"
	"github.com/isometry/statusbars/pkg/config"
	"github.com/isometry/statusbars/pkg/schema"
	"github.com/isometry/statusbars/pkg/statusbars"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := root.New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, "--color", "never"))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func valuesDir(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	testutil.WriteFile(t, dir, name, content)
	return dir
}

func TestGroups(t *testing.T) {
	out, err := execute(t, "groups", "-o", "json", "--compact")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"statusbars","sections":4,"settings":12}]`+"\n", out)
}

func TestGet(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"declared key", []string{"get", "barWidth"}, "20\n"},
		{"enum", []string{"get", "leftBarMode"}, "HITPOINTS\n"},
		{"stored key", []string{"get", "counterYPos"}, "10\n"},
		{"json", []string{"get", "overlayPosition", "-o", "json", "--compact"}, `{"group":"statusbars","key":"overlayPosition","default":"ON_INTERFACE"}` + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}

	_, err := execute(t, "get", "barHeight")
	assert.ErrorIs(t, err, schema.ErrUnknownKey)

	_, err = execute(t, "get", "barWidth", "-g", "overlays")
	assert.ErrorIs(t, err, config.ErrUnknownGroup)
}

func TestCheck(t *testing.T) {
	out, err := execute(t, "check", "barWidth", "25")
	require.NoError(t, err)
	assert.Equal(t, "✔ barWidth = 25px\n", out)

	out, err = execute(t, "check", "barWidth", "51")
	assert.ErrorContains(t, err, "outside range [3,50]")
	assert.Contains(t, out, "✘ barWidth = 51")

	out, err = execute(t, "check", "barWidth", "51", "--clamp")
	require.NoError(t, err)
	assert.Equal(t, "✔ barWidth = 50px (clamped from 51)\n", out)

	_, err = execute(t, "check", "leftBarMode", "TOXIC", "--clamp")
	assert.ErrorContains(t, err, "must be one of")

	out, err = execute(t, "check", "counterYPos", "-5", "-o", "json", "--compact")
	require.NoError(t, err)
	assert.JSONEq(t, `{"group":"statusbars","key":"counterYOffset","input":"-5","valid":true,"value":-5}`, out)
}

func TestSchema(t *testing.T) {
	out, err := execute(t, "schema")
	require.NoError(t, err)
	assert.Contains(t, out, "statusbars\n")
	assert.Contains(t, out, "Counters\n")
	assert.Contains(t, out, "Display (collapsed)\n")
	assert.Contains(t, out, "counterYOffset")
	assert.Contains(t, out, "stored as counterYPos")
	assert.Less(t, bytes.Index([]byte(out), []byte("leftBarMode")), bytes.Index([]byte(out), []byte("Counters")))

	out, err = execute(t, "schema", "-s", statusbars.SectionSizing, "-o", "json")
	require.NoError(t, err)
	var doc struct {
		Group    string `json:"group"`
		Settings []struct {
			Key string `json:"key"`
		} `json:"settings"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Settings, 3)
	assert.Equal(t, statusbars.KeyBarWidth, doc.Settings[0].Key)

	_, err = execute(t, "schema", "-s", "nowhere")
	assert.ErrorIs(t, err, schema.ErrUnknownSection)
}

func TestValidate(t *testing.T) {
	dir := valuesDir(t, "statusbars.yaml", "statusbars:\n  barWidth: 25\n  counterYPos: 40\n")
	out, err := execute(t, "validate", "--config-path", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "✔ statusbars/barWidth = 25px\n")
	assert.Contains(t, out, "✔ statusbars/barGap = 4px (default)\n")
	assert.Contains(t, out, "Summary: 12 valid, 0 invalid")

	dir = valuesDir(t, "statusbars.yaml", "statusbars:\n  barWidth: 60\n  barHeight: 3\noverlays:\n  enabled: true\n")
	out, err = execute(t, "validate", "--config-path", dir)
	assert.ErrorContains(t, err, "validation failed: 3 invalid setting(s)")
	assert.Contains(t, out, "✘ statusbars/barWidth (integer)")
	assert.Contains(t, out, "✘ statusbars/barheight (unknown)")
	assert.Contains(t, out, "✘ overlays (unknown)")

	out, err = execute(t, "validate", "--config-path", dir, "-o", "junit")
	require.Error(t, err)
	var suite struct {
		Tests    int `xml:"tests,attr"`
		Failures int `xml:"failures,attr"`
	}
	require.NoError(t, xml.Unmarshal([]byte(out), &suite))
	assert.Equal(t, 14, suite.Tests)
	assert.Equal(t, 3, suite.Failures)
}

func TestValidateWithoutFile(t *testing.T) {
	out, err := execute(t, "validate", "--config-path", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "no values file, defaults only")
}

func TestResolve(t *testing.T) {
	dir := valuesDir(t, "statusbars.properties", "statusbars.barWidth=25\nstatusbars.counterYPos=40\nstatusbars.leftBarMode=WARMTH\n")

	out, err := execute(t, "resolve", "--config-path", dir, "--changed", "-o", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "statusbars:\n  leftBarMode: WARMTH\n  counterYPos: 40\n  barWidth: 25\n", out)

	out, err = execute(t, "resolve", "--config-path", dir, "--typed", "-o", "json")
	require.NoError(t, err)
	var typed statusbars.Config
	require.NoError(t, json.Unmarshal([]byte(out), &typed))
	assert.Equal(t, statusbars.BarModeWarmth, typed.LeftBarMode)
	assert.Equal(t, 40, typed.CounterYOffset)
	assert.Equal(t, 4, typed.BarGap)

	out, err = execute(t, "resolve", "--config-path", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "statusbars (")
	assert.Contains(t, out, "*")
}

func TestResolveOutputReloads(t *testing.T) {
	dir := valuesDir(t, "statusbars.yaml", "statusbars:\n  barGap: 12\n  overlayPosition: ABOVE_PLAYER\n")

	out, err := execute(t, "resolve", "--config-path", dir, "-o", "json")
	require.NoError(t, err)

	reloadDir := valuesDir(t, "statusbars.json", out)
	result, err := config.Load(context.Background(), []string{reloadDir}, "statusbars", true)
	require.NoError(t, err)
	require.Empty(t, result.ValidationErrors)

	g, ok := result.Group(statusbars.GroupID)
	require.True(t, ok)
	assert.Equal(t, map[string]schema.Value{
		statusbars.KeyBarGap:          schema.Int(12),
		statusbars.KeyOverlayPosition: schema.Enum("ABOVE_PLAYER"),
	}, g.Overrides())
}

func TestResolveReportsReplacedValues(t *testing.T) {
	dir := valuesDir(t, "statusbars.yaml", "statusbars:\n  borderSize: 9\n")

	out, err := execute(t, "resolve", "--config-path", dir, "--changed", "-o", "json", "--compact")
	assert.ErrorContains(t, err, "1 value(s) replaced by defaults")
	assert.Equal(t, `{"statusbars":{}}`+"\n", out)
}

func TestJSONSchema(t *testing.T) {
	out, err := execute(t, "jsonschema")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "urn:statusbars:config:statusbars", doc["$id"])
	properties, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, properties, "counterYPos")

	out, err = execute(t, "jsonschema", "--all", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "statusbars:")
	assert.Contains(t, out, "additionalProperties: false")
}
