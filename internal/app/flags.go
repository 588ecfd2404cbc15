package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim           string
	Size          int
	Seed          int64
	Random        bool
	FramesPerTick int
	WindowW       int
	WindowH       int
	// OpenPath and SavePath stand in for a file picker: O loads OpenPath and
	// S writes SavePath.
	OpenPath string
	SavePath string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:           "life",
		Size:          2048,
		Seed:          42,
		FramesPerTick: 60,
		WindowW:       512,
		WindowH:       512,
		SavePath:      "board.gol",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Size, "size", c.Size, "board side length, a power of two up to 4096")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial random board")
	fs.BoolVar(&c.Random, "random", c.Random, "start from a random board instead of an empty one")
	fs.IntVar(&c.FramesPerTick, "fpt", c.FramesPerTick, "frames between generations (1-60)")
	fs.IntVar(&c.WindowW, "width", c.WindowW, "window width in pixels")
	fs.IntVar(&c.WindowH, "height", c.WindowH, "window height in pixels")
	fs.StringVar(&c.OpenPath, "open", c.OpenPath, "board file loaded at start and on O")
	fs.StringVar(&c.SavePath, "save", c.SavePath, "board file written on S")
}

// SimConfig converts the flags into the factory map understood by sims.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"size":   strconv.Itoa(c.Size),
		"seed":   strconv.FormatInt(c.Seed, 10),
		"random": strconv.FormatBool(c.Random),
	}
}
