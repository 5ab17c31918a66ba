package dict

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

const (
	DefaultCapacity = 16
	DefaultLoadHigh = 0.75
	DefaultLoadLow  = 0.20
)

// Config is the resolved construction-time configuration of a table.
type Config struct {
	// Initial number of slots. Normalized up to a power of 2.
	Capacity int

	// LoadHigh is the fraction of occupied slots (live and tombstones)
	// at which an insert rebuilds the table first.
	LoadHigh float64

	// LoadLow is the fraction of tombstone slots at which the rebuild
	// compacts in place instead of doubling the capacity.
	LoadLow float64

	HashFunc HashFunc
	Logger   logrus.FieldLogger
}

type Option func(c *Config)

// Override the initial capacity.
func WithCapacity(capacity int) Option {
	return func(c *Config) {
		c.Capacity = capacity
	}
}

// Override the rebuild thresholds.
func WithLoadFactors(high, low float64) Option {
	return func(c *Config) {
		c.LoadHigh = high
		c.LoadLow = low
	}
}

// Override default hash function.
func WithHashFunc(f HashFunc) Option {
	return func(c *Config) {
		c.HashFunc = f
	}
}

// Rebuilds and Destroy are logged at debug level to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

func DefaultConfig() Config {
	return Config{
		Capacity: DefaultCapacity,
		LoadHigh: DefaultLoadHigh,
		LoadLow:  DefaultLoadLow,
		HashFunc: HashDJB2,
		Logger:   discardLogger(),
	}
}

func (c Config) Validate() error {
	if c.Capacity < 1 || c.Capacity > maxCapacity {
		return errors.Wrapf(ErrInvalidConfig, "capacity %d out of range [1, %d]", c.Capacity, maxCapacity)
	}

	// loadLow > 0 guarantees a compaction frees at least one slot,
	// loadHigh <= 1 keeps at least one slot empty so probing terminates.
	if !(c.LoadLow > 0 && c.LoadLow < c.LoadHigh && c.LoadHigh <= 1) {
		return errors.Wrapf(ErrInvalidConfig, "load factors must satisfy 0 < low < high <= 1, got high=%v low=%v", c.LoadHigh, c.LoadLow)
	}

	if c.HashFunc == nil {
		return errors.Wrap(ErrInvalidConfig, "nil hash function")
	}

	if c.Logger == nil {
		return errors.Wrap(ErrInvalidConfig, "nil logger")
	}

	return nil
}

func newConfig(opts ...Option) Config {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}

	if err := c.Validate(); err != nil {
		violation(ErrInvalidConfig, "dict: %v", err)
	}

	c.Capacity = int(NextPowerOf2(uint32(c.Capacity)))

	return c
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
