package life

import (
	"fmt"
	"strconv"

	"zlife/internal/zgrid"
)

// Config controls the board created by the life factory.
type Config struct {
	Size int
	Seed int64
	// Random seeds the board with noise on creation instead of leaving it empty.
	Random bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Size: 2048, Seed: 42}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// A size that is not a valid board side is reported rather than replaced.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["size"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("life: size %q: %w", v, err)
		}
		if !zgrid.ValidSize(parsed) {
			return c, fmt.Errorf("life: size %d: %w", parsed, zgrid.ErrInvalidSize)
		}
		c.Size = parsed
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["random"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Random = parsed
		}
	}
	return c, nil
}
