package cli

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/shatter"
)

func newTextCmd() *cobra.Command {
	var (
		flags  effectFlags
		output string
		scale  int
		ink    string
	)

	cmd := &cobra.Command{
		Use:   "text <word>",
		Short: "Render a word as pixel glyphs and shatter it",
		Long: `Render a word in a blocky bitmap face on a transparent canvas and
shatter it. The word is upper-cased and folded to ASCII. Unless --region
is given the whole canvas is shattered.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			if !cmd.Flags().Changed("region") {
				_ = cmd.Flags().Set("region", "100")
			}
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}
			opts, err := cfg.Options()
			if err != nil {
				return err
			}
			c, err := shatter.ParseHex(ink)
			if err != nil {
				return err
			}

			src, err := shatter.RenderText(args[0], scale, c)
			if err != nil {
				return err
			}
			dst := src.Clone()
			blocks, err := shatter.New(opts...).ApplyTop(dst, src)
			if err != nil {
				return err
			}
			if output == "" {
				output = "text-shattered.png"
			}
			if err := dst.SavePNG(output); err != nil {
				return err
			}
			prog.done("rendered", "text", shatter.FoldText(args[0]), "blocks", len(blocks), "output", output)
			return nil
		},
	}

	flags.register(cmd)
	fs := cmd.Flags()
	fs.StringVarP(&output, "output", "o", "", "output PNG (default text-shattered.png)")
	fs.IntVar(&scale, "scale", 8, "pixels per glyph pixel")
	fs.StringVar(&ink, "color", "#ffffff", "glyph color")
	return cmd
}
