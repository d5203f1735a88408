package homemade

import (
	"sort"

	. "github.com/eloworld/strategies/internal/helpers"
	"github.com/eloworld/strategies/internal/strategy"
)

var constructors = map[string]func(...Option) strategy.Strategy{
	"random": func(options ...Option) strategy.Strategy {
		return NewRandomMove(options...)
	},
	"alphabetical": func(options ...Option) strategy.Strategy {
		return NewAlphabetical(options...)
	},
	"firstmove": func(options ...Option) strategy.Strategy {
		return NewFirstMove(options...)
	},
	"worstfish": func(options ...Option) strategy.Strategy {
		return NewWorstFish(options...)
	},
	"ilovedraws": func(options ...Option) strategy.Strategy {
		return NewILoveDraws(options...)
	},
}

// New builds a strategy by its registry name.
func New(name string, options ...Option) (strategy.Strategy, Error) {
	constructor, ok := constructors[name]
	if !ok {
		return nil, Errorf("unknown strategy '%v' (have %v)", name, Names())
	}
	return constructor(options...), NilError
}

func Names() []string {
	names := []string{}
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
