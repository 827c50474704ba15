package game

// GAFlags narrow which actors a lookup may return.
type GAFlags int

const (
	GASelect GAFlags = 1 << (iota + 4)
	GANoDead
	GAPoint
	GANoHidden
	GANoAlly
	GANoEnemy
	GANoNeutral
	GANoSelf
	GANoUnscheduled
	GADetect
)

var gaFlagNames = map[string]GAFlags{
	"select":         GASelect,
	"no_dead":        GANoDead,
	"point":          GAPoint,
	"no_hidden":      GANoHidden,
	"no_ally":        GANoAlly,
	"no_enemy":       GANoEnemy,
	"no_neutral":     GANoNeutral,
	"no_self":        GANoSelf,
	"no_unscheduled": GANoUnscheduled,
	"detect":         GADetect,
}

// ParseGAFlags combines flag names such as "no_dead" into a GAFlags value.
// Unknown names are returned so callers can report them.
func ParseGAFlags(names []string) (GAFlags, []string) {
	var flags GAFlags
	var unknown []string
	for _, n := range names {
		f, ok := gaFlagNames[n]
		if !ok {
			unknown = append(unknown, n)
			continue
		}
		flags |= f
	}
	return flags, unknown
}

// Feature is a ruleset capability toggled per game.
type Feature int

const (
	// FeatureRules3ED enables the 3rd edition ruleset quirks.
	FeatureRules3ED Feature = 1 << iota
	// FeatureAreaOverride keeps the sender in IDS scans.
	FeatureAreaOverride
	// FeatureAdditionalRect enables object expression area rectangles.
	FeatureAdditionalRect
)
