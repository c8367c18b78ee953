package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isometry/statusbars/pkg/schema"
	"github.com/isometry/statusbars/pkg/statusbars"
)

func TestCheck(t *testing.T) {
	s := statusbars.Schema()

	tests := []struct {
		key     string
		input   string
		clamp   bool
		valid   bool
		value   schema.Value
		clamped bool
	}{
		{statusbars.KeyBarWidth, "3", false, true, schema.Int(3), false},
		{statusbars.KeyBarWidth, "2", false, false, schema.Value{}, false},
		{statusbars.KeyBarWidth, "2", true, true, schema.Int(3), true},
		{statusbars.KeyBarGap, "32", true, true, schema.Int(32), false},
		{statusbars.KeyBarGap, "0x10", true, false, schema.Value{}, false},
		{statusbars.KeyEnableCounter, "true", false, true, schema.Bool(true), false},
		{statusbars.KeyRightBarMode, "RUN_ENERGY", true, true, schema.Enum("RUN_ENERGY"), false},
		{statusbars.KeyOverlayPosition, "HITPOINTS", true, false, schema.Value{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.input, func(t *testing.T) {
			setting, err := s.Setting(tt.key)
			require.NoError(t, err)

			result := Check(s, setting, tt.input, tt.clamp)
			assert.Equal(t, tt.valid, result.Valid)
			assert.Equal(t, tt.value, result.Value)
			assert.Equal(t, tt.clamped, result.Clamped)
			assert.Equal(t, !tt.valid, result.Error != "")
		})
	}
}
