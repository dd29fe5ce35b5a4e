package cmd

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssargent/binkit/pkg/checksum"
	"github.com/ssargent/binkit/pkg/codec"
	"github.com/ssargent/binkit/pkg/digest"
)

// checksumCmd represents the checksum command
var checksumCmd = &cobra.Command{
	Use:       "checksum <adler32|crc32> [data...]",
	Short:     "Compute an Adler-32 or CRC-32 checksum",
	ValidArgs: []string{"adler32", "crc32"},
	Long: `Compute an Adler-32 or CRC-32 checksum of the arguments, or of stdin
when no data is given. The result is printed as eight hex digits.

Examples:
  binkit checksum crc32 123456789
  binkit checksum adler32 --hex 57696b69706564696120
  cat file.bin | binkit checksum crc32`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hexInput, _ := cmd.Flags().GetBool("hex")
		data, err := readInput(cmd, args[1:], hexInput)
		if err != nil {
			return err
		}

		switch strings.ToLower(args[0]) {
		case "adler32":
			output(cmd, fmt.Sprintf("%08x", checksum.Adler32(data)))
		case "crc32":
			output(cmd, fmt.Sprintf("%08x", checksum.CRC32(data)))
		default:
			return fmt.Errorf("unknown checksum algorithm %q", args[0])
		}
		return nil
	},
}

// sha1Cmd represents the sha1 command
var sha1Cmd = &cobra.Command{
	Use:   "sha1 [data...]",
	Short: "Compute a SHA-1 digest",
	Long: `Compute the SHA-1 digest of the arguments, or of stdin when no data is
given, and print it as 40 hex digits.

Example:
  binkit sha1 abc`,
	RunE: func(cmd *cobra.Command, args []string) error {
		hexInput, _ := cmd.Flags().GetBool("hex")
		data, err := readInput(cmd, args, hexInput)
		if err != nil {
			return err
		}
		output(cmd, digest.SHA1Hex(data))
		return nil
	},
}

// base64Cmd represents the base64 command
var base64Cmd = &cobra.Command{
	Use:   "base64",
	Short: "Encode or decode base64",
}

var base64EncodeCmd = &cobra.Command{
	Use:   "encode [data...]",
	Short: "Encode bytes as padded base64",
	RunE: func(cmd *cobra.Command, args []string) error {
		hexInput, _ := cmd.Flags().GetBool("hex")
		data, err := readInput(cmd, args, hexInput)
		if err != nil {
			return err
		}
		output(cmd, codec.EncodeBase64(data))
		return nil
	},
}

var base64DecodeCmd = &cobra.Command{
	Use:   "decode [text...]",
	Short: "Decode base64",
	Long: `Decode base64 text. Characters outside the base64 alphabet are skipped.
The decoded bytes are written as they are unless --hex is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		hexOutput, _ := cmd.Flags().GetBool("hex")
		text, err := readInput(cmd, args, false)
		if err != nil {
			return err
		}

		decoded := codec.DecodeBase64(string(text))
		if hexOutput {
			output(cmd, hex.EncodeToString(decoded))
			return nil
		}
		_, err = cmd.OutOrStdout().Write(decoded)
		return err
	},
}

// vlqCmd represents the vlq command
var vlqCmd = &cobra.Command{
	Use:   "vlq",
	Short: "Encode or decode base64 VLQ sequences",
	Long: `Encode or decode the base64 variable-length quantities used by source maps.

Examples:
  binkit vlq encode -- 0 1 -1 16
  binkit vlq decode ACDgB`,
}

var vlqEncodeCmd = &cobra.Command{
	Use:   "encode <n>...",
	Short: "Encode integers as one VLQ string",
	Long: `Encode integers as one VLQ string. Put negative numbers after "--" so
they are not read as flags.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values := make([]int64, len(args))
		for i, arg := range args {
			n, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer %q", arg)
			}
			values[i] = n
		}
		output(cmd, codec.EncodeVLQs(values))
		return nil
	},
}

var vlqDecodeCmd = &cobra.Command{
	Use:   "decode <vlq>",
	Short: "Decode a VLQ string into integers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := codec.DecodeVLQs(args[0])
		if err != nil {
			return err
		}
		fields := make([]string, len(values))
		for i, v := range values {
			fields[i] = strconv.FormatInt(v, 10)
		}
		output(cmd, strings.Join(fields, " "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checksumCmd)
	rootCmd.AddCommand(sha1Cmd)
	rootCmd.AddCommand(base64Cmd)
	rootCmd.AddCommand(vlqCmd)

	base64Cmd.AddCommand(base64EncodeCmd)
	base64Cmd.AddCommand(base64DecodeCmd)
	vlqCmd.AddCommand(vlqEncodeCmd)
	vlqCmd.AddCommand(vlqDecodeCmd)

	checksumCmd.Flags().Bool("hex", false, "Input is hex encoded")
	sha1Cmd.Flags().Bool("hex", false, "Input is hex encoded")
	base64EncodeCmd.Flags().Bool("hex", false, "Input is hex encoded")
	base64DecodeCmd.Flags().Bool("hex", false, "Print the decoded bytes as hex")
}
