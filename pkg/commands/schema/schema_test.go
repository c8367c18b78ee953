package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isometry/statusbars/internal/output"
	sbschema "github.com/isometry/statusbars/pkg/schema"
	"github.com/isometry/statusbars/pkg/statusbars"
)

func TestNewDocument(t *testing.T) {
	s := statusbars.Schema()

	doc, err := NewDocument(s, "")
	require.NoError(t, err)
	assert.Equal(t, statusbars.GroupID, doc.Group)
	assert.Len(t, doc.Sections, 4)
	assert.Len(t, doc.Settings, 12)

	doc, err = NewDocument(s, statusbars.SectionDisplay)
	require.NoError(t, err)
	require.Len(t, doc.Sections, 1)
	assert.True(t, doc.Sections[0].Collapsed)
	require.Len(t, doc.Settings, 2)
	assert.Equal(t, statusbars.KeyHideAfterCombatDelay, doc.Settings[0].Key)

	_, err = NewDocument(s, "nowhere")
	assert.ErrorIs(t, err, sbschema.ErrUnknownSection)
}

func TestRenderText(t *testing.T) {
	doc, err := NewDocument(statusbars.Schema(), statusbars.SectionDisplay)
	require.NoError(t, err)

	text := doc.RenderText(output.Config{}.Palette())
	assert.Equal(t, "statusbars\n"+
		"  Display (collapsed)\n"+
		"    hideAfterCombatDelay  integer  0 ticks       ticks\n"+
		"    overlayPosition       enum     ON_INTERFACE  ON_INTERFACE|ABOVE_PLAYER\n", text)
}
