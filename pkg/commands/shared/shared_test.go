package shared

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isometry/statusbars/internal/cliflags"
	"github.com/isometry/statusbars/pkg/config"
	"github.com/isometry/statusbars/pkg/sbctx"
	"github.com/isometry/statusbars/pkg/schema"
	"github.com/isometry/statusbars/pkg/statusbars"
)

func newCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cliflags.GroupFlags().Register(cmd.Flags(), false)
	require.NoError(t, cmd.ParseFlags(args))
	cmd.SetContext(sbctx.ContextWithViper(context.Background(), sbctx.NewViper()))
	return cmd
}

func TestSetupAndLookupGroup(t *testing.T) {
	cmd := newCommand(t)
	v, log := Setup(cmd)
	require.NotNil(t, log)
	assert.Equal(t, statusbars.GroupID, v.GetString("group"))

	s, err := LookupGroup(cmd)
	require.NoError(t, err)
	assert.Same(t, statusbars.Schema(), s)
}

func TestLookupUnknownGroup(t *testing.T) {
	cmd := newCommand(t, "-g", "overlays")
	Setup(cmd)

	_, err := LookupGroup(cmd)
	assert.ErrorIs(t, err, config.ErrUnknownGroup)
	assert.ErrorContains(t, err, `"overlays" (registered: statusbars)`)
}

func TestConstraint(t *testing.T) {
	s := statusbars.Schema()

	tests := []struct {
		key      string
		expected string
	}{
		{statusbars.KeyBarWidth, "[3,50] pixels"},
		{statusbars.KeyCounterYOffset, "[-5,100] percent stored as counterYPos"},
		{statusbars.KeyHideAfterCombatDelay, "ticks"},
		{statusbars.KeyOverlayPosition, "ON_INTERFACE|ABOVE_PLAYER"},
		{statusbars.KeyEnableCounter, ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			setting, err := s.Setting(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, Constraint(setting))
		})
	}
}

func TestFormatValue(t *testing.T) {
	s := statusbars.Schema()

	width, err := s.Setting(statusbars.KeyBarWidth)
	require.NoError(t, err)
	assert.Equal(t, "20px", FormatValue(width, schema.Int(20)))

	delay, err := s.Setting(statusbars.KeyHideAfterCombatDelay)
	require.NoError(t, err)
	assert.Equal(t, "5 ticks", FormatValue(delay, schema.Int(5)))

	mode, err := s.Setting(statusbars.KeyLeftBarMode)
	require.NoError(t, err)
	assert.Equal(t, "WARMTH", FormatValue(mode, schema.Enum("WARMTH")))
}

func TestResolveSetting(t *testing.T) {
	s := statusbars.Schema()

	for _, name := range []string{"counterYOffset", "counterYPos", "COUNTERYPOS"} {
		setting, err := ResolveSetting(s, name)
		require.NoError(t, err, name)
		assert.Equal(t, statusbars.KeyCounterYOffset, setting.Key)
	}

	_, err := ResolveSetting(s, "barHeight")
	assert.ErrorIs(t, err, schema.ErrUnknownKey)
}
