package statusbars_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isometry/statusbars/pkg/schema"
	"github.com/isometry/statusbars/pkg/statusbars"
)

func TestDefaultConfigMatchesSchema(t *testing.T) {
	c := statusbars.DefaultConfig()

	assert.Equal(t, statusbars.Schema().Defaults(), c.Values())
	assert.NoError(t, c.Validate())
}

func TestConfigFrom(t *testing.T) {
	c, err := statusbars.ConfigFrom(map[string]schema.Value{
		statusbars.KeyLeftBarMode:     schema.Enum("WARMTH"),
		statusbars.KeyEnableSkillIcon: schema.Bool(false),
		statusbars.KeyBarWidth:        schema.Int(32),
	})
	require.NoError(t, err)

	assert.Equal(t, statusbars.BarModeWarmth, c.LeftBarMode)
	assert.False(t, c.EnableSkillIcon)
	assert.Equal(t, 32, c.BarWidth)

	// untouched fields keep their defaults
	assert.Equal(t, statusbars.BarModePrayer, c.RightBarMode)
	assert.Equal(t, 4, c.BarGap)
	assert.True(t, c.EnableRestorationBars)
	assert.Equal(t, statusbars.BarPositionOnInterface, c.OverlayPosition)
}

func TestConfigFromRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]schema.Value
		err    error
	}{
		{
			name:   "out of range",
			values: map[string]schema.Value{statusbars.KeyBorderSize: schema.Int(6)},
			err:    schema.ErrOutOfRange,
		},
		{
			name:   "unknown key",
			values: map[string]schema.Value{"barHeight": schema.Int(6)},
			err:    schema.ErrUnknownKey,
		},
		{
			name:   "wrong kind",
			values: map[string]schema.Value{statusbars.KeyBarGap: schema.Bool(true)},
			err:    schema.ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := statusbars.ConfigFrom(tt.values)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	c := statusbars.DefaultConfig()
	c.BarGap = 33
	assert.ErrorIs(t, c.Validate(), schema.ErrOutOfRange)

	c = statusbars.DefaultConfig()
	c.LeftBarMode = "TOXIC"
	assert.ErrorIs(t, c.Validate(), schema.ErrInvalidValue)
}
