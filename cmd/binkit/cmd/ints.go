package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssargent/binkit/pkg/byteconv"
)

// littleEndian resolves the --little-endian flag against the configured
// default byte order.
func littleEndian(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("little-endian") {
		le, _ := cmd.Flags().GetBool("little-endian")
		return le
	}
	return configFrom(cmd).Bytes.LittleEndian
}

// intsCmd represents the ints command
var intsCmd = &cobra.Command{
	Use:   "ints",
	Short: "Convert between bytes and fixed-width numbers",
	Long: fmt.Sprintf(`Convert between bytes and arrays of fixed-width numbers.

Types: %s. A trailing partial word is decoded as if zero padded.

Examples:
  binkit ints decode --type int16 fffe0001
  binkit ints encode --type uint16 --little-endian 1 0x0203`, strings.Join(byteconv.Kinds, ", ")),
}

var intsDecodeCmd = &cobra.Command{
	Use:   "decode [hex...]",
	Short: "Decode hex bytes into numbers",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("type")
		data, err := readInput(cmd, args, true)
		if err != nil {
			return err
		}

		values, err := byteconv.DecodeAs(kind, data, littleEndian(cmd))
		if err != nil {
			return err
		}
		fields := make([]string, len(values))
		for i, v := range values {
			fields[i] = fmt.Sprint(v)
		}
		output(cmd, strings.Join(fields, " "))
		return nil
	},
}

var intsEncodeCmd = &cobra.Command{
	Use:   "encode <value>...",
	Short: "Encode numbers as hex bytes",
	Long: `Encode numbers as hex bytes. Put negative numbers after "--" so they are
not read as flags.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("type")
		out, err := byteconv.EncodeAs(kind, args, littleEndian(cmd))
		if err != nil {
			return err
		}
		output(cmd, hex.EncodeToString(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(intsCmd)
	intsCmd.AddCommand(intsDecodeCmd)
	intsCmd.AddCommand(intsEncodeCmd)

	intsCmd.PersistentFlags().StringP("type", "t", "uint8", "Numeric type")
	intsCmd.PersistentFlags().Bool("little-endian", false, "Use little-endian byte order")
}
