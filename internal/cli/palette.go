package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/shatter"
	"github.com/gogpu/shatter/internal/config"
)

func newPaletteCmd() *cobra.Command {
	var (
		configPath string
		top        int
	)

	cmd := &cobra.Command{
		Use:   "palette <image>",
		Short: "Print the fallback palette of an image",
		Long: `Print how many visible, non-near-black pixels an image has and its
most frequent colors. Transparent or near-black blocks borrow their color
from this palette.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}
			src, err := shatter.LoadImage(args[0])
			if err != nil {
				return err
			}

			th := shatter.Thresholds{Alpha: cfg.AlphaThreshold, Dark: cfg.DarkThreshold}
			pal := shatter.SamplePalette(src, th)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %dx%d, %d palette samples\n", args[0], src.Width(), src.Height(), len(pal))
			if len(pal) == 0 {
				fmt.Fprintf(out, "empty palette, blocks fall back to %s\n", cfg.DefaultColor)
				return nil
			}
			colors, counts := pal.Dominant(top)
			for i, c := range colors {
				fmt.Fprintf(out, "  #%02x%02x%02x  %6d  %5.1f%%\n", c.R, c.G, c.B, counts[i], 100*float64(counts[i])/float64(len(pal)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	cmd.Flags().IntVarP(&top, "top", "n", 8, "number of dominant colors to list")
	return cmd
}
