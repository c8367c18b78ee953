package statusbars

import (
	"fmt"
	"log/slog"

	"github.com/mcuadros/go-defaults"
	"github.com/mitchellh/mapstructure"

	"github.com/isometry/statusbars/pkg/schema"
)

// Config is the typed view of resolved statusbars values.
type Config struct {
	LeftBarMode     BarMode `mapstructure:"leftBarMode" json:"leftBarMode" yaml:"leftBarMode" default:"HITPOINTS"`
	RightBarMode    BarMode `mapstructure:"rightBarMode" json:"rightBarMode" yaml:"rightBarMode" default:"PRAYER"`
	EnableSkillIcon bool    `mapstructure:"enableSkillIcon" json:"enableSkillIcon" yaml:"enableSkillIcon" default:"true"`

	EnableCounter    bool `mapstructure:"enableCounter" json:"enableCounter" yaml:"enableCounter" default:"false"`
	LargeCounterText bool `mapstructure:"largeCounterText" json:"largeCounterText" yaml:"largeCounterText" default:"false"`
	CounterYOffset   int  `mapstructure:"counterYOffset" json:"counterYOffset" yaml:"counterYOffset" default:"10"`

	BarWidth   int `mapstructure:"barWidth" json:"barWidth" yaml:"barWidth" default:"20"`
	BorderSize int `mapstructure:"borderSize" json:"borderSize" yaml:"borderSize" default:"1"`
	BarGap     int `mapstructure:"barGap" json:"barGap" yaml:"barGap" default:"4"`

	EnableRestorationBars bool `mapstructure:"enableRestorationBars" json:"enableRestorationBars" yaml:"enableRestorationBars" default:"true"`

	HideAfterCombatDelay int         `mapstructure:"hideAfterCombatDelay" json:"hideAfterCombatDelay" yaml:"hideAfterCombatDelay" default:"0"`
	OverlayPosition      BarPosition `mapstructure:"overlayPosition" json:"overlayPosition" yaml:"overlayPosition" default:"ON_INTERFACE"`
}

// DefaultConfig returns a Config holding every default.
func DefaultConfig() Config {
	var c Config
	defaults.SetDefaults(&c)
	return c
}

// ConfigFrom overlays values, keyed by setting key, onto the defaults.
// Each value is checked against the schema first.
func ConfigFrom(values map[string]schema.Value) (Config, error) {
	c := DefaultConfig()

	raw := make(map[string]any, len(values))
	for key, value := range values {
		v, err := statusBars.Validate(key, value)
		if err != nil {
			return Config{}, err
		}
		raw[key] = v.Any()
	}

	var metadata mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:   &c,
		Metadata: &metadata,
	})
	if err != nil {
		return Config{}, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("failed to decode values: %w", err)
	}
	if len(metadata.Unused) > 0 {
		return Config{}, fmt.Errorf("values without a Config field: %v", metadata.Unused)
	}

	return c, nil
}

// Values returns c as schema values keyed by setting key.
func (c Config) Values() map[string]schema.Value {
	return map[string]schema.Value{
		KeyLeftBarMode:           schema.Enum(string(c.LeftBarMode)),
		KeyRightBarMode:          schema.Enum(string(c.RightBarMode)),
		KeyEnableSkillIcon:       schema.Bool(c.EnableSkillIcon),
		KeyEnableCounter:         schema.Bool(c.EnableCounter),
		KeyLargeCounterText:      schema.Bool(c.LargeCounterText),
		KeyCounterYOffset:        schema.Int(c.CounterYOffset),
		KeyBarWidth:              schema.Int(c.BarWidth),
		KeyBorderSize:            schema.Int(c.BorderSize),
		KeyBarGap:                schema.Int(c.BarGap),
		KeyEnableRestorationBars: schema.Bool(c.EnableRestorationBars),
		KeyHideAfterCombatDelay:  schema.Int(c.HideAfterCombatDelay),
		KeyOverlayPosition:       schema.Enum(string(c.OverlayPosition)),
	}
}

// Validate checks every field of c against the schema.
func (c Config) Validate() error {
	values := c.Values()
	for _, setting := range statusBars.ListSettings() {
		if _, err := statusBars.Validate(setting.Key, values[setting.Key]); err != nil {
			return err
		}
	}
	return nil
}

func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("left", string(c.LeftBarMode)),
		slog.String("right", string(c.RightBarMode)),
		slog.Int("width", c.BarWidth),
		slog.Int("gap", c.BarGap),
		slog.String("position", string(c.OverlayPosition)),
	)
}
