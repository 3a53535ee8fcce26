package cli

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/image/draw"

	"github.com/gogpu/shatter"
)

func newAnimateCmd() *cobra.Command {
	var (
		flags   effectFlags
		output  string
		frames  int
		delayMS int
		easing  string
		stagger float64
	)

	cmd := &cobra.Command{
		Use:   "animate <image>",
		Short: "Write the effect as an animated GIF",
		Long: `Animate blocks flying from their source cells to their shattered
positions. Blocks near the top of the region leave first.

Easings: ` + strings.Join(shatter.EaseNames(), ", "),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			r, src, cfg, err := flags.renderer(cmd, args[0])
			if err != nil {
				return err
			}
			fs := cmd.Flags()
			if fs.Changed("frames") {
				cfg.Animation.Frames = frames
			}
			if fs.Changed("delay") {
				cfg.Animation.DelayMS = delayMS
			}
			if fs.Changed("easing") {
				cfg.Animation.Easing = easing
			}
			if fs.Changed("stagger") {
				cfg.Animation.Stagger = stagger
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if output == "" {
				output = derivedPath(args[0], "-shattered.gif")
			}

			region := r.Region(src.Bounds())
			blocks, err := r.Apply(src.Clone(), src, region)
			if err != nil {
				return err
			}
			anim, err := r.Animate(src, region, blocks, cfg.EffectAnimation())
			if err != nil {
				return err
			}
			logger.Debug("frames rendered", "frames", len(anim), "blocks", len(blocks))

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			if err := encodeGIF(f, anim, cfg.Animation.DelayMS); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			prog.done("animated", "frames", len(anim), "output", output)
			return nil
		},
	}

	flags.register(cmd)
	fs := cmd.Flags()
	fs.StringVarP(&output, "output", "o", "", "output GIF (default <image>-shattered.gif)")
	fs.IntVar(&frames, "frames", 24, "number of frames")
	fs.IntVar(&delayMS, "delay", 60, "delay between frames in milliseconds")
	fs.StringVar(&easing, "easing", "out-cubic", "easing function")
	fs.Float64Var(&stagger, "stagger", 0.4, "share of the timeline spent waiting for lower blocks, in [0, 1)")
	return cmd
}

// gifPalette is the web-safe cube plus a transparent entry.
var gifPalette = append(append(color.Palette{}, palette.WebSafe...), color.Transparent)

// encodeGIF dithers every frame to gifPalette and writes a looping GIF.
// GIF delays are in hundredths of a second.
func encodeGIF(w io.Writer, frames []*shatter.Pixmap, delayMS int) error {
	out := &gif.GIF{LoopCount: 0}
	delay := max(delayMS/10, 1)
	for _, f := range frames {
		pm := image.NewPaletted(f.Bounds(), gifPalette)
		draw.FloydSteinberg.Draw(pm, pm.Bounds(), f, image.Point{})
		out.Image = append(out.Image, pm)
		out.Delay = append(out.Delay, delay)
		out.Disposal = append(out.Disposal, gif.DisposalBackground)
	}
	if err := gif.EncodeAll(w, out); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}
