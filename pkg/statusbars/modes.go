package statusbars

import "github.com/isometry/statusbars/pkg/schema"

// BarMode selects the stat a status bar tracks.
type BarMode string

const (
	BarModeDisabled      BarMode = "DISABLED"
	BarModeHitpoints     BarMode = "HITPOINTS"
	BarModePrayer        BarMode = "PRAYER"
	BarModeRunEnergy     BarMode = "RUN_ENERGY"
	BarModeSpecialAttack BarMode = "SPECIAL_ATTACK"
	BarModeWarmth        BarMode = "WARMTH"
)

var barModeOptions = []schema.Option{
	{Name: string(BarModeDisabled), Label: "Disabled"},
	{Name: string(BarModeHitpoints), Label: "Hitpoints"},
	{Name: string(BarModePrayer), Label: "Prayer"},
	{Name: string(BarModeRunEnergy), Label: "Run Energy"},
	{Name: string(BarModeSpecialAttack), Label: "Special Attack"},
	{Name: string(BarModeWarmth), Label: "Warmth"},
}

func (m BarMode) String() string { return string(m) }

// BarPosition selects where the bars are drawn.
type BarPosition string

const (
	BarPositionOnInterface BarPosition = "ON_INTERFACE"
	BarPositionAbovePlayer BarPosition = "ABOVE_PLAYER"
)

var barPositionOptions = []schema.Option{
	{Name: string(BarPositionOnInterface), Label: "On Interface"},
	{Name: string(BarPositionAbovePlayer), Label: "Above Player"},
}

func (p BarPosition) String() string { return string(p) }
