// pkg/core/strategy.go
package core

// Strategy vocabularies. Keys are the ids stored on a Tactic, values are the
// display labels used by the export projection.

var PlayStyles = map[string]string{
	"possession": "Possession",
	"counter":    "Counter Attack",
	"direct":     "Direct Play",
	"high-press": "High Press",
	"wing-play":  "Wing Play",
	"long-ball":  "Long Ball",
}

var DefensiveShapes = map[string]string{
	"deep-block":  "Deep Block",
	"mid-block":   "Mid Block",
	"high-line":   "High Line",
	"man-marking": "Man Marking",
	"zonal":       "Zonal Marking",
}

var PressTypes = map[string]string{
	"none":     "No Press",
	"trigger":  "Trigger Press",
	"constant": "Constant Press",
	"counter":  "Counter Press",
}

var TempoStyles = map[string]string{
	"slow":     "Slow Build",
	"balanced": "Balanced",
	"fast":     "Fast Tempo",
}

var BuildUpPlays = map[string]string{
	"short": "Short Passing",
	"mixed": "Mixed",
	"long":  "Long Passing",
}

var AttackingWidths = map[string]string{
	"narrow":   "Narrow",
	"standard": "Standard",
	"wide":     "Wide",
}

var DefensiveLines = map[string]string{
	"deep":     "Deep",
	"standard": "Standard",
	"high":     "High",
}

// StrategyLabel resolves an id against a vocabulary, falling back to the raw
// id for values the vocabulary doesn't know. Unknown strategy ids are not an
// error: old documents may carry retired entries.
func StrategyLabel(vocab map[string]string, id string) string {
	if label, ok := vocab[id]; ok {
		return label
	}
	return id
}
