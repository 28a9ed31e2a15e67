package gauges

// Mascot art per weather condition. Static lookups only; the weather card
// has no animation logic.
var mascots = map[string][]string{
	"sunny": {
		`    \   /    `,
		`     .-.     `,
		`  ― (   ) ―  `,
		`     '-'     `,
		`    /   \    `,
	},
	"rain": {
		`     .--.    `,
		`  .-(    ).  `,
		` (___.__)__) `,
		`  ' ' ' ' '  `,
		` ' ' ' ' '   `,
	},
	"cloudy": {
		`      .--.   `,
		`   .-(    ). `,
		`  (___.__)__)`,
		`             `,
		`             `,
	},
	"cold": {
		`    \  |  /  `,
		`  --  -*-  --`,
		`    /  |  \  `,
		`   * brrr *  `,
		`             `,
	},
}

// Mascot returns the art for a condition, defaulting to sunny for anything
// absent or unrecognized.
func Mascot(condition string) []string {
	if art, ok := mascots[condition]; ok {
		return art
	}
	return mascots["sunny"]
}
