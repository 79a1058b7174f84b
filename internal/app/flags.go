package app

import (
	"flag"
	"strconv"
)

// Render styles.
const (
	StyleCircles = "circles"
	StylePixels  = "pixels"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64

	// Every is the number of rendered frames per generation.
	Every int
	Style string

	WindowW int
	WindowH int

	Width   int
	Height  int
	Pattern string
	Workers int
}

// NewConfig returns a Config populated with sensible defaults: 60 frames per
// second, one generation per second, a 64x64 board of dots on an 800x450
// window.
func NewConfig() *Config {
	return &Config{
		Sim:     "life",
		Scale:   3,
		TPS:     60,
		Seed:    42,
		Every:   60,
		Style:   StyleCircles,
		WindowW: 800,
		WindowH: 450,
		Width:   64,
		Height:  64,
		Pattern: "blinker",
		Workers: 1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (pixels style)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Every, "every", c.Every, "frames per generation")
	fs.StringVar(&c.Style, "style", c.Style, "render style: circles or pixels")
	fs.IntVar(&c.WindowW, "window-w", c.WindowW, "window width (circles style)")
	fs.IntVar(&c.WindowH, "window-h", c.WindowH, "window height (circles style)")
	fs.IntVar(&c.Width, "w", c.Width, "board columns")
	fs.IntVar(&c.Height, "h", c.Height, "board rows")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row bands evolved in parallel")
}

// SimOptions returns the key/value map handed to the sim factory.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"pattern": c.Pattern,
		"workers": strconv.Itoa(c.Workers),
		"seed":    strconv.FormatInt(c.Seed, 10),
	}
}
