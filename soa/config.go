package soa

// Config holds coordinate-set parameters.
type Config struct {
	Count   int  // vectors in the set; must be a positive multiple of 4, default 64
	Offheap bool // use C-allocated buffers (requires CGO), reduces GC pressure
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Count: 64,
	}
}

// OrDefault returns DefaultConfig if c is nil, otherwise normalizes c.
func (c *Config) OrDefault() *Config {
	if c == nil {
		return DefaultConfig()
	}
	if c.Count == 0 {
		c.Count = 64
	}
	return c
}
