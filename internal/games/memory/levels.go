package memory

import (
	"slices"
	"time"

	"github.com/vovakirdan/milkyway-arcade/internal/config"
)

// ConfigFor converts a level tuple into an engine config.
func ConfigFor(lvl config.MemoryLevel) Config {
	return Config{
		Symbols:       slices.Clone(lvl.Symbols),
		TimeLimit:     lvl.TimeLimit,
		MismatchDelay: time.Duration(lvl.MismatchDelayMS) * time.Millisecond,
	}
}

// labels are the three-letter card faces for the built-in symbols.
var labels = map[string]string{
	"rocket":    "RKT",
	"planet":    "PLN",
	"galaxy":    "GLX",
	"satellite": "SAT",
	"moon":      "MON",
	"comet":     "CMT",
	"astronaut": "AST",
	"earth":     "ERT",
}

// Label returns a three-character face for a symbol.
func Label(symbol string) string {
	if l, ok := labels[symbol]; ok {
		return l
	}
	r := []rune(symbol)
	if len(r) > 3 {
		r = r[:3]
	}
	return string(r)
}
