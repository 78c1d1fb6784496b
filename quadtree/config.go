package quadtree

// Config holds index parameters.
type Config struct {
	Capacity         int // points per leaf before subdivision, default 4
	MaxDepth         int // subdivision cutoff, default 32; leaves at the cutoff absorb overflow
	QueryPoolWorkers int // when >0, queries run through a resident worker pool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Capacity: 4,
		MaxDepth: 32,
	}
}

// OrDefault returns DefaultConfig if c is nil, otherwise normalizes c.
// Capacity below 1 is clamped to 1: a zero capacity would subdivide
// forever on the first insert.
func (c *Config) OrDefault() *Config {
	if c == nil {
		return DefaultConfig()
	}
	if c.Capacity < 1 {
		c.Capacity = 1
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = 32
	}
	return c
}
