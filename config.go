package trifract

import (
	"math"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the generation options. A Config is a plain value: it is
// never modified by the package, and Validate has no side effects.
type Config struct {
	Passes    int     `toml:"passes"`     // number of subdivision passes (n)
	Factor    float64 `toml:"factor"`     // perturbation factor (k), in (0, 1)
	Width     int     `toml:"width"`      // root triangle width (w)
	Height    int     `toml:"height"`     // root triangle height (h)
	Name      string  `toml:"name"`       // output file name without extension
	Dir       string  `toml:"dir"`        // output directory, current directory if empty
	Format    Format  `toml:"format"`     // output encoding, png if empty
	Seed      int64   `toml:"seed"`       // random seed, time based if zero
	Source    string  `toml:"source"`     // random source, math or minstd
	LineWidth float64 `toml:"line_width"` // stroke width, 1 if zero
}

// DefaultConfig returns the options used by the command line tool.
func DefaultConfig() Config {
	return Config{
		Passes:    6,
		Factor:    0.5,
		Width:     1200,
		Height:    800,
		Name:      "triangles",
		Format:    FormatPNG,
		Source:    SourceMath,
		LineWidth: 1,
	}
}

// Validate checks every field against its domain. Fields are checked in the
// order passes, factor, width, height, name, format, source, line width and
// the first failing one is reported.
func (c Config) Validate() error {
	if c.Passes <= 0 {
		return invalidConfig("n", "passes must be positive, got %d", c.Passes)
	}
	if math.IsNaN(c.Factor) || c.Factor <= 0 || c.Factor >= 1 {
		return invalidConfig("k", "factor must be in (0, 1), got %v", c.Factor)
	}
	if c.Width <= 0 {
		return invalidConfig("w", "width must be positive, got %d", c.Width)
	}
	if c.Height <= 0 {
		return invalidConfig("h", "height must be positive, got %d", c.Height)
	}
	if c.Name == "" {
		return invalidConfig("name", "name cannot be empty")
	}
	if _, ok := encoders[c.format()]; !ok {
		return invalidConfig("format", "unsupported format %q", c.Format)
	}
	switch c.Source {
	case "", SourceMath, SourceMinStd:
	default:
		return invalidConfig("source", "unknown random source %q", c.Source)
	}
	if math.IsNaN(c.LineWidth) || c.LineWidth < 0 {
		return invalidConfig("line_width", "line width cannot be negative, got %v", c.LineWidth)
	}
	return nil
}

// Output returns the path of the picture file.
func (c Config) Output() string {
	return filepath.Join(c.Dir, c.Name+"."+string(c.format()))
}

func (c Config) format() Format {
	if c.Format == "" {
		return FormatPNG
	}
	return Format(strings.ToLower(string(c.Format)))
}

func (c Config) lineWidth() float64 {
	if c.LineWidth == 0 {
		return 1
	}
	return c.LineWidth
}

// LoadConfig decodes a TOML file on top of base. Keys missing from the file
// keep the value from base; unknown keys are rejected.
func LoadConfig(path string, base Config) (Config, error) {
	cfg := base
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return base, wrapError(ErrCodeConfigFile, err, "cannot load %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return base, &Error{
			Code:    ErrCodeConfigFile,
			Message: "unknown keys in " + path + ": " + strings.Join(keys, ", "),
		}
	}
	return cfg, nil
}
