// Package statusbars declares the settings of the Status Bars plugin.
//
// Importing the package registers the "statusbars" group with the schema
// registry.
package statusbars

import "github.com/isometry/statusbars/pkg/schema"

// GroupID is the namespace the plugin's values are stored under.
const GroupID = "statusbars"

// Setting keys.
const (
	KeyLeftBarMode           = "leftBarMode"
	KeyRightBarMode          = "rightBarMode"
	KeyEnableSkillIcon       = "enableSkillIcon"
	KeyEnableCounter         = "enableCounter"
	KeyLargeCounterText      = "largeCounterText"
	KeyCounterYOffset        = "counterYOffset"
	KeyBarWidth              = "barWidth"
	KeyBorderSize            = "borderSize"
	KeyBarGap                = "barGap"
	KeyEnableRestorationBars = "enableRestorationBars"
	KeyHideAfterCombatDelay  = "hideAfterCombatDelay"
	KeyOverlayPosition       = "overlayPosition"
)

// Section ids.
const (
	SectionCounters    = "countersSection"
	SectionSizing      = "sizingSection"
	SectionRestoration = "restorationSection"
	SectionDisplay     = "displaySection"
)

var sections = []schema.Section{
	{
		ID:          SectionCounters,
		Label:       "Counters",
		Description: "Options for the showing of Counters",
		Position:    3,
	},
	{
		ID:          SectionSizing,
		Label:       "Sizing",
		Description: "Options related to sizes of the bars/borders",
		Position:    4,
	},
	{
		ID:          SectionRestoration,
		Label:       "Restoration",
		Description: "Restoration related options",
		Position:    5,
		Collapsed:   true,
	},
	{
		ID:          SectionDisplay,
		Label:       "Display",
		Description: "Display and Visibility related options",
		Position:    6,
		Collapsed:   true,
	},
}

var settings = []schema.Setting{
	{
		Key:         KeyLeftBarMode,
		Label:       "Left Bar",
		Description: "Configures the left status bar.",
		Position:    0,
		Kind:        schema.KindEnum,
		Default:     schema.Enum(string(BarModeHitpoints)),
		Options:     barModeOptions,
	},
	{
		Key:         KeyRightBarMode,
		Label:       "Right Bar",
		Description: "Configures the right status bar.",
		Position:    1,
		Kind:        schema.KindEnum,
		Default:     schema.Enum(string(BarModePrayer)),
		Options:     barModeOptions,
	},
	{
		Key:         KeyEnableSkillIcon,
		Label:       "Show icons",
		Description: "Adds skill icons at the top of the bars.",
		Position:    2,
		Kind:        schema.KindBool,
		Default:     schema.Bool(true),
	},
	{
		Key:         KeyEnableCounter,
		Label:       "Show counters",
		Description: "Shows current numerical value of the status on the bar.",
		Section:     SectionCounters,
		Position:    1,
		Kind:        schema.KindBool,
		Default:     schema.Bool(false),
	},
	{
		Key:         KeyLargeCounterText,
		Label:       "Large Counter Text",
		Description: "If checked, the font for Counters will be larger",
		Section:     SectionCounters,
		Position:    2,
		Kind:        schema.KindBool,
		Default:     schema.Bool(false),
	},
	{
		Key:         KeyCounterYOffset,
		Label:       "Vertical Position",
		Description: "Percentage down the bar to display the Counters",
		Section:     SectionCounters,
		Position:    3,
		Kind:        schema.KindInt,
		Default:     schema.Int(10),
		Range:       &schema.Range{Min: -5, Max: 100},
		Unit:        schema.UnitPercent,
		StoredAs:    "counterYPos",
	},
	{
		Key:         KeyBarWidth,
		Label:       "Bar Width",
		Description: "The width of each bar. Not used in Fixed UI mode.",
		Section:     SectionSizing,
		Position:    1,
		Kind:        schema.KindInt,
		Default:     schema.Int(20),
		Range:       &schema.Range{Min: 3, Max: 50},
		Unit:        schema.UnitPixels,
	},
	{
		Key:         KeyBorderSize,
		Label:       "Border Size",
		Description: "The width of the border on each bar",
		Section:     SectionSizing,
		Position:    2,
		Kind:        schema.KindInt,
		Default:     schema.Int(1),
		Range:       &schema.Range{Min: 0, Max: 5},
		Unit:        schema.UnitPixels,
	},
	{
		Key:         KeyBarGap,
		Label:       "Gap between Bars",
		Description: "The spacing between each bar. Not used in Fixed UI mode.",
		Section:     SectionSizing,
		Position:    3,
		Kind:        schema.KindInt,
		Default:     schema.Int(4),
		Range:       &schema.Range{Min: 0, Max: 32},
		Unit:        schema.UnitPixels,
	},
	{
		Key:         KeyEnableRestorationBars,
		Label:       "Show restores",
		Description: "Visually shows how much will be restored to your status bar.",
		Section:     SectionRestoration,
		Position:    1,
		Kind:        schema.KindBool,
		Default:     schema.Bool(true),
	},
	{
		// No range: any tick count is accepted.
		Key:         KeyHideAfterCombatDelay,
		Label:       "Hide after combat delay",
		Description: "Number of ticks outside of combat after which bars will hide. 0 = always show status bars.",
		Section:     SectionDisplay,
		Position:    1,
		Kind:        schema.KindInt,
		Default:     schema.Int(0),
		Unit:        schema.UnitTicks,
	},
	{
		Key:         KeyOverlayPosition,
		Label:       "Overlay Position",
		Description: "Determines where the Bars will be displayed on screen. On Interface will always be active in Classic UI mode.",
		Section:     SectionDisplay,
		Position:    2,
		Kind:        schema.KindEnum,
		Default:     schema.Enum(string(BarPositionOnInterface)),
		Options:     barPositionOptions,
	},
}

var statusBars = schema.MustNew(GroupID, sections, settings)

func init() {
	schema.MustRegister(statusBars)
}

// Schema returns the plugin's settings schema.
func Schema() *schema.Schema {
	return statusBars
}
