package cli

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/shatter"
	"github.com/gogpu/shatter/internal/config"
)

// effectFlags are the renderer settings shared by every drawing command.
// Flags given on the command line override the config file.
type effectFlags struct {
	configPath string
	blockSize  int
	region     float64
	seed       uint64
	workers    int
	background string
	maxWidth   int
}

func (f *effectFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "TOML config file")
	fs.IntVar(&f.blockSize, "block-size", 8, "block edge length in pixels")
	fs.Float64Var(&f.region, "region", 50, "height of the effect region, percent from the top")
	fs.Uint64Var(&f.seed, "seed", 0, "random seed (random when unset)")
	fs.IntVar(&f.workers, "workers", 1, "goroutines used to average blocks")
	fs.StringVar(&f.background, "background", "transparent", `region clear color, hex or "transparent"`)
	fs.IntVar(&f.maxWidth, "max-width", 0, "downscale inputs wider than this (0 keeps the size)")
}

// load returns the config file (or defaults) with changed flags applied.
func (f *effectFlags) load(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return config.Config{}, err
		}
	}

	fs := cmd.Flags()
	if fs.Changed("block-size") {
		cfg.BlockSize = f.blockSize
	}
	if fs.Changed("region") {
		cfg.RegionHeightPercent = f.region
	}
	if fs.Changed("seed") {
		seed := f.seed
		cfg.Seed = &seed
	}
	if fs.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fs.Changed("background") {
		cfg.Background = f.background
	}
	if fs.Changed("max-width") {
		cfg.MaxWidth = f.maxWidth
	}
	return cfg, cfg.Validate()
}

// renderer builds a Renderer and loads the (optionally downscaled) input.
func (f *effectFlags) renderer(cmd *cobra.Command, path string) (*shatter.Renderer, *shatter.Pixmap, config.Config, error) {
	cfg, err := f.load(cmd)
	if err != nil {
		return nil, nil, config.Config{}, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, nil, config.Config{}, err
	}
	src, err := shatter.LoadImage(path)
	if err != nil {
		return nil, nil, config.Config{}, err
	}
	return shatter.New(opts...), src.Scale(cfg.MaxWidth), cfg, nil
}
