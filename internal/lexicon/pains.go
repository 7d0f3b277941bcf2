package lexicon

// PainCategories is the fixed pain-point lexicon. Each category is marked
// present on a record when any trigger occurs as a substring of the
// normalized text; a record may match zero or several categories.
//
// Order matters: it fixes the pain_points output order and the frequency
// table insertion order in the miner.
var PainCategories = []Category{
	{
		Label: "losing_touch",
		Triggers: []string{
			"lose touch", "losing touch", "lost touch",
			"drift apart", "drifted apart", "drifting apart",
			"grow apart", "grew apart",
		},
	},
	{
		Label: "forgetting",
		Triggers: []string{
			"forget to", "forgot to", "keep forgetting",
			"never remember", "slipped my mind", "slips my mind",
		},
	},
	{
		Label: "guilt",
		Triggers: []string{
			"feel guilty", "guilt", "feel bad",
			"should have called", "should've called", "ashamed",
		},
	},
	{
		Label: "too_busy",
		Triggers: []string{
			"too busy", "no time", "life gets busy",
			"life got busy", "busy schedule", "crazy schedule",
		},
	},
	{
		Label: "distance",
		Triggers: []string{
			"long distance", "far away", "moved away",
			"different city", "different cities", "time zones", "timezones",
		},
	},
	{
		Label: "shallow_connection",
		Triggers: []string{
			"small talk", "surface level", "surface-level",
			"barely talk", "never really talk", "never go deep",
		},
	},
	{
		Label: "loneliness",
		Triggers: []string{
			"lonely", "feel alone", "feeling alone",
			"isolated", "disconnected", "no one to talk",
		},
	},
	{
		Label: "inconsistency",
		Triggers: []string{
			"fall off", "fell off", "inconsistent",
			"never stick", "never sticks", "lose momentum", "start strong",
		},
	},
}
