package homemade

import (
	. "github.com/eloworld/strategies/internal/helpers"
	"github.com/eloworld/strategies/internal/oracle"
)

type config struct {
	logger        Logger
	rand          Rand
	oracle        oracle.Oracle
	oraclePath    string
	drawThreshold oracle.Eval
}

type Option func(*config)

func WithLogger(logger Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func WithRand(rand Rand) Option {
	return func(c *config) {
		c.rand = rand
	}
}

// WithOracle substitutes the evaluation oracle. The strategy takes
// ownership; its Shutdown closes it.
func WithOracle(o oracle.Oracle) Option {
	return func(c *config) {
		c.oracle = o
	}
}

// WithOraclePath points the default stockfish oracle at an executable.
func WithOraclePath(path string) Option {
	return func(c *config) {
		c.oraclePath = path
	}
}

// WithDrawThreshold overrides how balanced a position must be, in
// centipawns of absolute evaluation, for ILoveDraws to take it without
// looking further.
func WithDrawThreshold(threshold oracle.Eval) Option {
	return func(c *config) {
		c.drawThreshold = threshold
	}
}

const defaultDrawThreshold = oracle.Eval(10)

func buildConfig(options []Option) config {
	c := config{}
	for _, option := range options {
		option(&c)
	}
	if c.logger == nil {
		c.logger = &SilentLogger
	}
	if c.rand == nil {
		c.rand = DefaultRand
	}
	if c.drawThreshold == 0 {
		c.drawThreshold = defaultDrawThreshold
	}
	return c
}

func (c *config) buildOracle() oracle.Oracle {
	if c.oracle != nil {
		return c.oracle
	}
	opts := []oracle.StockfishOracleOption{oracle.WithLogger(c.logger)}
	if c.oraclePath != "" {
		opts = append(opts, oracle.WithPath(c.oraclePath))
	}
	return oracle.NewStockfishOracle(opts...)
}
