package resolve

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isometry/statusbars/internal/output"
	"github.com/isometry/statusbars/pkg/config"
	"github.com/isometry/statusbars/pkg/statusbars"
)

var escapeCodes = regexp.MustCompile("\x1b\\[[0-9;]*m")

func testDocument(t *testing.T) Document {
	t.Helper()
	groups, errs := config.Harden(context.Background(), map[string]any{
		"statusbars": map[string]any{"barwidth": 25, "leftbarmode": "WARMTH", "hideaftercombatdelay": 1000},
	}, true)
	require.Empty(t, errs)

	g, ok := groups[statusbars.GroupID]
	require.True(t, ok)
	return Document{Groups: []*config.Resolved{g}}
}

func TestRenderTextColorAlignment(t *testing.T) {
	doc := testDocument(t)

	plain := doc.RenderText(output.Config{}.Palette())
	colored := doc.RenderText(output.Config{Colorize: true, Colors: output.DefaultColorConfig().Resolve()}.Palette())

	require.NotEqual(t, plain, colored)
	assert.Equal(t, plain, escapeCodes.ReplaceAllString(colored, ""))

	markers := map[int]bool{}
	for _, line := range strings.Split(plain, "\n") {
		if strings.HasSuffix(line, "*") {
			markers[len([]rune(line))] = true
		}
	}
	assert.Len(t, markers, 1, plain)
}

func TestRenderTextChanged(t *testing.T) {
	doc := testDocument(t)
	doc.Changed = true

	text := doc.RenderText(output.Config{}.Palette())
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "statusbars", lines[0])
	for _, line := range lines[1:] {
		assert.True(t, strings.HasSuffix(line, "  *"), line)
	}
	assert.True(t, strings.HasPrefix(lines[1], "  leftBarMode"), lines[1])
}
