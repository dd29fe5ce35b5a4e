package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/binkit/pkg/pixel"
)

// pngCmd represents the png command
var pngCmd = &cobra.Command{
	Use:   "png <rrggbb[aa]>",
	Short: "Generate a solid colour 4x4 PNG",
	Long: `Generate a 4x4 PNG filled with one colour.

The image is written to stdout unless --out is given. --datauri prints a
data: URI instead.

Examples:
  binkit png ff0000 --out red.png
  binkit png 00ff0080 --datauri`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		dataURI, _ := cmd.Flags().GetBool("datauri")

		r, g, b, a, err := pixel.ParseColor(args[0])
		if err != nil {
			return err
		}

		if dataURI {
			output(cmd, pixel.DataURI(r, g, b, a))
			return nil
		}

		img := pixel.RGBA(r, g, b, a)
		if out == "" {
			_, err := cmd.OutOrStdout().Write(img)
			return err
		}
		if err := os.WriteFile(out, img, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
		cmd.Printf("Wrote %d bytes to %s\n", len(img), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pngCmd)
	pngCmd.Flags().StringP("out", "o", "", "Write the image to this file")
	pngCmd.Flags().Bool("datauri", false, "Print a data URI instead of the image")
}
