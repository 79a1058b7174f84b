package life

import (
	"sort"
	"strconv"
	"strings"
)

// Config controls the Life simulation dimensions, seeding and parallelism.
type Config struct {
	Width  int
	Height int

	// Workers is the number of row bands evolved concurrently per step.
	// Values of 1 or less run the allocation-free sequential pass.
	Workers int

	// Pattern names the initial condition Reset applies.
	Pattern string
	Seed    int64
}

// DefaultConfig returns the standard configuration: a 64x64 board seeded
// with a centered blinker.
func DefaultConfig() Config {
	return Config{
		Width:   64,
		Height:  64,
		Workers: 1,
		Pattern: PatternBlinker,
		Seed:    42,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Invalid or unknown entries are ignored and the defaults kept.
func FromMap(cfg map[string]string) Config {
	c, _ := FromMapChecked(cfg)
	return c
}

// FromMapChecked is FromMap that also returns, sorted, the keys whose values
// were rejected or not recognized.
func FromMapChecked(cfg map[string]string) (Config, []string) {
	c := DefaultConfig()
	var rejected []string
	for key, v := range cfg {
		ok := false
		switch key {
		case "w":
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				c.Width, ok = parsed, true
			}
		case "h":
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				c.Height, ok = parsed, true
			}
		case "workers":
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				c.Workers, ok = parsed, true
			}
		case "pattern":
			if name := strings.ToLower(strings.TrimSpace(v)); name != "" {
				c.Pattern, ok = name, true
			}
		case "seed":
			if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
				c.Seed, ok = parsed, true
			}
		}
		if !ok {
			rejected = append(rejected, key)
		}
	}
	sort.Strings(rejected)
	return c, rejected
}
