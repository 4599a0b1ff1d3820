// Package config holds the generation parameters shared by the fractal and
// the preview, and reads them from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/scottkirkwood/lgart"
	"github.com/scottkirkwood/lgart/lsystem"
	"gopkg.in/yaml.v3"
)

// Mode selects the generator.
type Mode string

const (
	Fractal Mode = "fractal"
	LSystem Mode = "lsystem"
)

const (
	DefaultDepth  = 5
	DefaultAngle  = 25.0
	DefaultLength = 80.0
	DefaultAxiom  = "F"
	DefaultWidth  = 800.0
	DefaultHeight = 300.0

	// MaxDepth is the largest depth the sliders allow.
	MaxDepth = 15
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid parameters")

// ParseMode accepts the mode names and a few aliases.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fractal", "branching", "tree":
		return Fractal, nil
	case "lsystem", "l-system":
		return LSystem, nil
	}
	return "", fmt.Errorf("%w: unknown mode %q", ErrInvalid, s)
}

// UnmarshalYAML lets a params file use any of the ParseMode aliases.
func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	mode, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Params are the inputs of one generation pass.
type Params struct {
	Mode   Mode    `yaml:"mode"`
	Depth  int     `yaml:"depth"`
	Angle  float64 `yaml:"angle"`
	Length float64 `yaml:"length"`
	Axiom  string  `yaml:"axiom"`
	Rule   string  `yaml:"rule"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// Fit scales the L-system drawing to fill the surface.
	Fit bool `yaml:"fit,omitempty"`
}

// Default returns the parameters the page starts with.
func Default() Params {
	return Params{
		Mode:   Fractal,
		Depth:  DefaultDepth,
		Angle:  DefaultAngle,
		Length: DefaultLength,
		Axiom:  DefaultAxiom,
		Rule:   lsystem.DefaultRule,
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

// Validate rejects parameters the generators cannot use.
func (p Params) Validate() error {
	if _, err := ParseMode(string(p.Mode)); err != nil {
		return err
	}
	if !lgart.Finite(p.Angle, p.Length, p.Width, p.Height) {
		return fmt.Errorf("%w: numbers must be finite", ErrInvalid)
	}
	if p.Depth < 0 || p.Depth > MaxDepth {
		return fmt.Errorf("%w: depth %d not in [0, %d]", ErrInvalid, p.Depth, MaxDepth)
	}
	if p.Length <= 0 {
		return fmt.Errorf("%w: length %v must be positive", ErrInvalid, p.Length)
	}
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: surface %vx%v must be positive", ErrInvalid, p.Width, p.Height)
	}
	if p.Mode == LSystem && p.Axiom == "" {
		return fmt.Errorf("%w: empty axiom", ErrInvalid)
	}
	return nil
}

// Normalize clamps depth into range and fills in a missing surface size,
// the way the sliders never hand out anything else.
func (p Params) Normalize() Params {
	p.Depth = lgart.ClampInt(p.Depth, 0, MaxDepth)
	if p.Width <= 0 {
		p.Width = DefaultWidth
	}
	if p.Height <= 0 {
		p.Height = DefaultHeight
	}
	if p.Mode == "" {
		p.Mode = Fractal
	}
	return p
}

// Replacement returns the string substituted for F, with the arrow glyph
// removed.
func (p Params) Replacement() string {
	return lsystem.StripArrow(p.Rule)
}

// Marshal encodes p as YAML, also used to stamp output files.
func (p Params) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}

// Load reads a params file on top of the defaults.
func Load(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, err
	}
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return p, nil
}

// Save writes p to path.
func Save(path string, p Params) error {
	data, err := p.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
