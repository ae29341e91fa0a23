package habit

import "strings"

// Icon is a key into the fixed icon registry. Unknown keys are kept as-is in
// storage but render as IconDefault.
type Icon string

const (
	IconDefault     Icon = "Default"
	IconFitness     Icon = "Fitness"
	IconMindfulness Icon = "Mindfulness"
	IconBook        Icon = "Book"
	IconWater       Icon = "Water"
	IconBrain       Icon = "Brain"
	IconSunrise     Icon = "Sunrise"
)

// Icons lists the selectable icons in picker order.
var Icons = []Icon{IconFitness, IconMindfulness, IconBook, IconWater, IconBrain, IconSunrise, IconDefault}

var glyphs = map[Icon]string{
	IconDefault:     "⭐",
	IconFitness:     "💪",
	IconMindfulness: "🧘",
	IconBook:        "📖",
	IconWater:       "💧",
	IconBrain:       "🧠",
	IconSunrise:     "🌅",
}

// Known reports whether i is one of the registered icons.
func (i Icon) Known() bool {
	_, ok := glyphs[i]
	return ok
}

// Resolve returns i, or IconDefault when i is not registered.
func (i Icon) Resolve() Icon {
	if i.Known() {
		return i
	}
	return IconDefault
}

// Glyph returns the terminal glyph for i.
func (i Icon) Glyph() string {
	return glyphs[i.Resolve()]
}

// ParseIcon matches s case-insensitively against the registry and falls back
// to IconDefault.
func ParseIcon(s string) Icon {
	for _, ic := range Icons {
		if strings.EqualFold(string(ic), strings.TrimSpace(s)) {
			return ic
		}
	}
	return IconDefault
}
