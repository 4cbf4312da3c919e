package strategy

// catalog groups the tire-strategy templates for one weather/degradation
// regime into the three buckets the synthesizer picks from.
type catalog struct {
	Conservative []string
	Aggressive   []string
	Alternative  []string
}

var wetCatalog = catalog{
	Conservative: []string{
		"Full Wet → Intermediate → Medium",
		"Intermediate → Medium",
		"Full Wet → Intermediate",
	},
	Aggressive: []string{
		"Intermediate → Soft (risky dry gamble)",
		"Full Wet → Medium (early switch)",
		"Intermediate → Full Wet → Soft",
	},
	Alternative: []string{
		"Start on Intermediates (if others on Full Wet)",
		"Full Wet → Hard (long stint strategy)",
		"Intermediate → Hard → Soft",
	},
}

var mixedCatalog = catalog{
	Conservative: []string{
		"Intermediate → Medium → Hard",
		"Intermediate → Hard",
		"Medium → Hard (if track dries quickly)",
	},
	Aggressive: []string{
		"Intermediate → Soft → Medium",
		"Soft → Intermediate → Soft (double switch)",
		"Medium → Soft (aggressive dry switch)",
	},
	Alternative: []string{
		"Hard → Intermediate (reverse strategy)",
		"Intermediate → Soft → Hard",
		"Start on Mediums (dry gamble)",
	},
}

// dryHighDegCatalog applies on circuits with tire wear above 0.7.
var dryHighDegCatalog = catalog{
	Conservative: []string{
		"Medium → Hard",
		"Hard → Medium",
		"Medium → Medium",
	},
	Aggressive: []string{
		"Soft → Medium → Hard",
		"Soft → Hard",
		"Medium → Soft (undercut attempt)",
	},
	Alternative: []string{
		"Hard → Soft (reverse strategy)",
		"Soft → Medium → Medium",
		"Medium → Hard → Soft",
	},
}

var dryNormalCatalog = catalog{
	Conservative: []string{
		"Medium → Hard",
		"Soft → Medium",
		"Hard → Medium",
	},
	Aggressive: []string{
		"Soft → Soft (double stint on softs)",
		"Soft → Hard (long second stint)",
		"Medium → Soft (late attack)",
	},
	Alternative: []string{
		"Hard → Soft (opposite to field)",
		"Soft → Medium → Soft",
		"Medium → Medium",
	},
}

// ferrariMasterPlan is the fixed low-variance call Ferrari has a flat 15%
// chance of making on a dry day before any other logic runs.
const ferrariMasterPlan = "Hard → Hard (Ferrari master plan)"

// templates returns every template reachable for the given catalog, used by
// tests to assert catalog membership.
func (c catalog) templates() []string {
	out := make([]string, 0, len(c.Conservative)+len(c.Aggressive)+len(c.Alternative))
	out = append(out, c.Conservative...)
	out = append(out, c.Aggressive...)
	out = append(out, c.Alternative...)
	return out
}
