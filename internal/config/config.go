// Package config loads effect settings from TOML files.
//
// A config file mirrors the renderer options. Every key is optional and
// falls back to the value in Default:
//
//	block_size = 12
//	region_height_percent = 40
//	background = "#101018"
//	seed = 7
//
//	[field]
//	radial_expansion = 120
//
//	[animation]
//	frames = 30
//	easing = "out-bounce"
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/shatter"
)

// ErrInvalid is wrapped by every validation and decoding error.
var ErrInvalid = errors.New("config: invalid")

// Config is the on-disk form of the effect settings.
type Config struct {
	BlockSize           int     `toml:"block_size"`
	RegionHeightPercent float64 `toml:"region_height_percent"`
	AlphaThreshold      uint8   `toml:"alpha_threshold"`
	DarkThreshold       uint8   `toml:"dark_threshold"`
	DefaultColor        string  `toml:"default_color"`
	Background          string  `toml:"background"` // hex color or "transparent"
	Seed                *uint64 `toml:"seed,omitempty"`
	Workers             int     `toml:"workers"`
	MaxWidth            int     `toml:"max_width"` // 0 keeps the input size

	Field     Field     `toml:"field"`
	Shading   Shading   `toml:"shading"`
	Animation Animation `toml:"animation"`
}

// Field is the [field] table.
type Field struct {
	RadialExpansion    float64 `toml:"radial_expansion"`
	Lift               float64 `toml:"lift"`
	JitterX            float64 `toml:"jitter_x"`
	JitterY            float64 `toml:"jitter_y"`
	SwirlGain          float64 `toml:"swirl_gain"`
	AngularFrequency   float64 `toml:"angular_frequency"`
	RadialFrequency    float64 `toml:"radial_frequency"`
	TurbulenceScale    float64 `toml:"turbulence_scale"`
	RotationSpread     float64 `toml:"rotation_spread"`
	RotationTurbulence float64 `toml:"rotation_turbulence"`
	SizeSpread         float64 `toml:"size_spread"`
}

// Shading is the [shading] table.
type Shading struct {
	MaxDepth   float64 `toml:"max_depth"`
	MinOpacity float64 `toml:"min_opacity"`
	MaxDarken  float64 `toml:"max_darken"`
}

// Animation is the [animation] table.
type Animation struct {
	Frames  int     `toml:"frames"`
	DelayMS int     `toml:"delay_ms"`
	Easing  string  `toml:"easing"`
	Stagger float64 `toml:"stagger"`
}

// Default returns the settings of a Renderer created without options.
func Default() Config {
	f := shatter.DefaultField()
	s := shatter.DefaultShading()
	th := shatter.DefaultThresholds()
	a := shatter.DefaultAnimation()
	fb := shatter.DefaultFallback
	return Config{
		BlockSize:           8,
		RegionHeightPercent: 50,
		AlphaThreshold:      th.Alpha,
		DarkThreshold:       th.Dark,
		DefaultColor:        fmt.Sprintf("#%02x%02x%02x", fb.R, fb.G, fb.B),
		Background:          "transparent",
		Workers:             1,
		Field: Field{
			RadialExpansion:    f.RadialExpansion,
			Lift:               f.Lift,
			JitterX:            f.JitterX,
			JitterY:            f.JitterY,
			SwirlGain:          f.SwirlGain,
			AngularFrequency:   f.AngularFrequency,
			RadialFrequency:    f.RadialFrequency,
			TurbulenceScale:    f.TurbulenceScale,
			RotationSpread:     f.RotationSpread,
			RotationTurbulence: f.RotationTurbulence,
			SizeSpread:         f.SizeSpread,
		},
		Shading: Shading{MaxDepth: s.MaxDepth, MinOpacity: s.MinOpacity, MaxDarken: s.MaxDarken},
		Animation: Animation{
			Frames:  a.Frames,
			DelayMS: 60,
			Easing:  "out-cubic",
			Stagger: a.Stagger,
		},
	}
}

// Load reads the TOML file at path on top of Default and validates it.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer func() { _ = f.Close() }()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads TOML from r on top of Default and validates it. Unknown
// keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate reports every out-of-range setting at once.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.BlockSize < 1 {
		bad("block_size %d, must be at least 1", c.BlockSize)
	}
	if !(c.RegionHeightPercent > 0 && c.RegionHeightPercent <= 100) {
		bad("region_height_percent %v outside (0, 100]", c.RegionHeightPercent)
	}
	if _, err := shatter.ParseHex(c.DefaultColor); err != nil {
		bad("default_color: %v", err)
	}
	if _, err := ParseBackground(c.Background); err != nil {
		bad("background: %v", err)
	}
	if c.Workers < 0 {
		bad("workers %d is negative", c.Workers)
	}
	if c.MaxWidth < 0 {
		bad("max_width %d is negative", c.MaxWidth)
	}
	if !(c.Shading.MaxDepth > 0) {
		bad("shading.max_depth %v must be positive", c.Shading.MaxDepth)
	}
	if !unit(c.Shading.MinOpacity) {
		bad("shading.min_opacity %v outside [0, 1]", c.Shading.MinOpacity)
	}
	if !unit(c.Shading.MaxDarken) {
		bad("shading.max_darken %v outside [0, 1]", c.Shading.MaxDarken)
	}
	if c.Field.SizeSpread < 0 || c.Field.SizeSpread >= 2 {
		bad("field.size_spread %v outside [0, 2)", c.Field.SizeSpread)
	}
	if c.Animation.Frames < 2 {
		bad("animation.frames %d, need at least 2", c.Animation.Frames)
	}
	if c.Animation.DelayMS < 0 {
		bad("animation.delay_ms %d is negative", c.Animation.DelayMS)
	}
	if _, ok := shatter.EaseByName(c.Animation.Easing); !ok {
		bad("animation.easing %q is not one of %s", c.Animation.Easing, strings.Join(shatter.EaseNames(), ", "))
	}
	if !(c.Animation.Stagger >= 0 && c.Animation.Stagger < 1) {
		bad("animation.stagger %v outside [0, 1)", c.Animation.Stagger)
	}
	return errors.Join(errs...)
}

func unit(v float64) bool {
	return v >= 0 && v <= 1 && !math.IsNaN(v)
}

// ParseBackground accepts a hex color or "transparent". Empty means
// transparent.
func ParseBackground(s string) (color.NRGBA, error) {
	if s == "" || strings.EqualFold(s, "transparent") {
		return shatter.Transparent, nil
	}
	return shatter.ParseHex(s)
}

// Options converts a valid config into renderer options. It fails only on
// a config that does not pass Validate.
func (c Config) Options() ([]shatter.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	def, _ := shatter.ParseHex(c.DefaultColor)
	bg, _ := ParseBackground(c.Background)

	opts := []shatter.Option{
		shatter.WithBlockSize(c.BlockSize),
		shatter.WithRegionHeightPercent(c.RegionHeightPercent),
		shatter.WithThresholds(shatter.Thresholds{Alpha: c.AlphaThreshold, Dark: c.DarkThreshold}),
		shatter.WithDefaultColor(shatter.ColorSample{R: def.R, G: def.G, B: def.B}),
		shatter.WithBackground(bg),
		shatter.WithField(shatter.Field(c.Field)),
		shatter.WithShading(shatter.Shading(c.Shading)),
		shatter.WithWorkers(c.Workers),
	}
	if c.Seed != nil {
		opts = append(opts, shatter.WithSeed(*c.Seed))
	}
	return opts, nil
}

// EffectAnimation converts the [animation] table. The config must be valid.
func (c Config) EffectAnimation() shatter.Animation {
	fn, _ := shatter.EaseByName(c.Animation.Easing)
	return shatter.Animation{Frames: c.Animation.Frames, Ease: fn, Stagger: c.Animation.Stagger}
}
