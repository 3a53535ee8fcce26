package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/shatter"
	"github.com/gogpu/shatter/recording"
)

func newRenderCmd() *cobra.Command {
	var (
		flags  effectFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "render <image>",
		Short: "Shatter an image into a PNG or SVG",
		Long: `Shatter the top region of an image.

The output format follows the -o extension: .png writes the composited
raster, .svg writes the original image with every block as a vector rect.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			r, src, _, err := flags.renderer(cmd, args[0])
			if err != nil {
				return err
			}
			if output == "" {
				output = derivedPath(args[0], "-shattered.png")
			}

			dst := src.Clone()
			rec := recording.NewRecorder(src.Bounds(), dst)
			blocks, err := r.ApplyTop(rec, src)
			if err != nil {
				return err
			}

			if strings.EqualFold(filepath.Ext(output), ".svg") {
				err = writeSVG(output, rec.FinishRecording(), src)
			} else {
				err = dst.SavePNG(output)
			}
			if err != nil {
				return err
			}
			prog.done("rendered", "blocks", len(blocks), "output", output)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, .png or .svg (default <image>-shattered.png)")
	return cmd
}

func writeSVG(path string, rec *recording.Recording, base *shatter.Pixmap) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := rec.WriteSVG(f, base); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// derivedPath replaces the extension of path with suffix.
func derivedPath(path, suffix string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + suffix
}
