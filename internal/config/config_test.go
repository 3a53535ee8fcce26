package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/gogpu/shatter"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if got := Default().DefaultColor; got != "#ffdc64" {
		t.Errorf("DefaultColor = %q, want #ffdc64", got)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	seed := uint64(77)
	cfg := Default()
	cfg.Seed = &seed
	cfg.BlockSize = 6
	cfg.Background = "#202030"
	cfg.Field.Lift = 42.5
	cfg.Animation.Easing = "out-bounce"

	var buf bytes.Buffer
	if err := cfg.Encode(&buf); err != nil {
		t.Fatalf("Encode() = %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() = %v\n%s", err, buf.String())
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestDecodePartial(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`
block_size = 12
seed = 3

[shading]
max_depth = 150

[animation]
easing = "InOutSine"
`))
	if err != nil {
		t.Fatalf("Decode() = %v", err)
	}
	if cfg.BlockSize != 12 || cfg.Shading.MaxDepth != 150 {
		t.Errorf("decoded block_size=%d max_depth=%v", cfg.BlockSize, cfg.Shading.MaxDepth)
	}
	if cfg.Seed == nil || *cfg.Seed != 3 {
		t.Errorf("seed = %v, want 3", cfg.Seed)
	}
	// Unset keys keep their defaults.
	if cfg.RegionHeightPercent != 50 || cfg.Shading.MinOpacity != 0.3 {
		t.Errorf("defaults lost: region=%v min_opacity=%v", cfg.RegionHeightPercent, cfg.Shading.MinOpacity)
	}
	if cfg.EffectAnimation().Ease == nil {
		t.Error("easing not resolved")
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		toml string
		want string
	}{
		{"syntax", "block_size = ", ""},
		{"unknown key", "blocksize = 4", "unknown keys blocksize"},
		{"block size", "block_size = 0", "block_size"},
		{"region", "region_height_percent = 120", "region_height_percent"},
		{"default color", `default_color = "nope"`, "default_color"},
		{"background", `background = "#12"`, "background"},
		{"easing", "[animation]\neasing = \"wobble\"", "animation.easing"},
		{"stagger", "[animation]\nstagger = 1.0", "animation.stagger"},
		{"frames", "[animation]\nframes = 1", "animation.frames"},
		{"opacity", "[shading]\nmin_opacity = 2.0", "shading.min_opacity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.toml))
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Decode() error = %v, want ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateReportsAll(t *testing.T) {
	cfg := Default()
	cfg.BlockSize = -1
	cfg.Workers = -2
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil")
	}
	for _, want := range []string{"block_size", "workers"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
	if _, err := cfg.Options(); !errors.Is(err, ErrInvalid) {
		t.Errorf("Options() error = %v, want ErrInvalid", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shatter.toml")
	if err := os.WriteFile(path, []byte("region_height_percent = 25\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.RegionHeightPercent != 25 {
		t.Errorf("region = %v, want 25", cfg.RegionHeightPercent)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want ErrNotExist", err)
	}
}

func TestParseBackground(t *testing.T) {
	tests := []struct {
		in   string
		want shatter.ColorSample
		a    uint8
	}{
		{"", shatter.ColorSample{}, 0},
		{"Transparent", shatter.ColorSample{}, 0},
		{"#fff", shatter.ColorSample{R: 255, G: 255, B: 255}, 255},
		{"10203080", shatter.ColorSample{R: 0x10, G: 0x20, B: 0x30}, 0x80},
	}
	for _, tt := range tests {
		c, err := ParseBackground(tt.in)
		if err != nil {
			t.Fatalf("ParseBackground(%q) = %v", tt.in, err)
		}
		if (shatter.ColorSample{R: c.R, G: c.G, B: c.B}) != tt.want || c.A != tt.a {
			t.Errorf("ParseBackground(%q) = %v", tt.in, c)
		}
	}
}

func TestOptionsDriveRenderer(t *testing.T) {
	seed := uint64(5)
	cfg := Default()
	cfg.Seed = &seed
	cfg.RegionHeightPercent = 25
	cfg.Background = "#000000"

	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options() = %v", err)
	}
	r := shatter.New(opts...)
	if got := r.Region(shatter.NewPixmap(40, 40).Bounds()).Dy(); got != 10 {
		t.Errorf("region height = %d, want 10", got)
	}
	if r.Background() != shatter.Black {
		t.Errorf("background = %v, want black", r.Background())
	}

	// The same seed from config and from options gives the same blocks.
	src := shatter.NewPixmap(32, 32)
	src.Clear(shatter.White)
	a, _ := shatter.New(opts...).ApplyTop(src.Clone(), src)
	b, _ := shatter.New(shatter.WithSeed(5), shatter.WithRegionHeightPercent(25)).ApplyTop(src.Clone(), src)
	if !reflect.DeepEqual(a, b) {
		t.Error("config seed did not reproduce WithSeed")
	}
}
