package scoring

type bounds struct {
	min float64
	max float64
}

// gameBounds holds the min/max raw score observed per game name within
// one normalization space (player contributions or team contributions).
// Game names match case-sensitively.
type gameBounds map[string]bounds

func boundsByGame(contribs []contribution) gameBounds {
	gb := make(gameBounds)
	for _, c := range contribs {
		b, ok := gb[c.gameName]
		if !ok {
			gb[c.gameName] = bounds{min: c.raw, max: c.raw}
			continue
		}
		if c.raw < b.min {
			b.min = c.raw
		}
		if c.raw > b.max {
			b.max = c.raw
		}
		gb[c.gameName] = b
	}
	return gb
}

// value rescales a raw score into [0,1] within its game's bounds. A game
// where every raw score is identical normalizes to NeutralScore.
func (gb gameBounds) value(gameName string, raw float64) float64 {
	b := gb[gameName]
	if b.max > b.min {
		return (raw - b.min) / (b.max - b.min)
	}
	return NeutralScore
}

// normalize fills in the normalized field of every contribution, each
// game forming its own independent [0,1] space.
func normalize(contribs []contribution) gameBounds {
	gb := boundsByGame(contribs)
	for i := range contribs {
		contribs[i].normalized = gb.value(contribs[i].gameName, contribs[i].raw)
	}
	return gb
}
