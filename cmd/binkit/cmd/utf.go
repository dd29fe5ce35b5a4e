package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssargent/binkit/pkg/utf"
)

type utfCodec struct {
	decode func([]byte, *utf.Options) ([]rune, error)
	encode func([]rune, *utf.Options) ([]byte, error)
}

var utfCodecs = map[string]utfCodec{
	"utf8":  {utf.DecodeUTF8, utf.EncodeUTF8},
	"utf16": {utf.DecodeUTF16, utf.EncodeUTF16},
	"utf32": {utf.DecodeUTF32, utf.EncodeUTF32},
}

func lookupUTF(name string) (utfCodec, error) {
	c, ok := utfCodecs[strings.ReplaceAll(strings.ToLower(name), "-", "")]
	if !ok {
		return utfCodec{}, fmt.Errorf("unknown encoding %q (want utf8, utf16 or utf32)", name)
	}
	return c, nil
}

// utfOptions starts from the configured transcoding options and applies any
// flags set on the command line.
func utfOptions(cmd *cobra.Command) (*utf.Options, error) {
	opts := configFrom(cmd).UTFOptions()
	flags := cmd.Flags()

	if flags.Changed("strict") {
		strict, _ := flags.GetBool("strict")
		opts.Mode = utf.Lenient
		if strict {
			opts.Mode = utf.Strict
		}
	}
	for name, dst := range map[string]*bool{
		"allow-overlong":   &opts.AllowOverlong,
		"allow-surrogates": &opts.AllowSurrogates,
		"strip-bom":        &opts.StripBOM,
		"bom":              &opts.WriteBOM,
	} {
		if flags.Lookup(name) != nil && flags.Changed(name) {
			*dst, _ = flags.GetBool(name)
		}
	}

	endian, _ := flags.GetString("endian")
	switch strings.ToLower(endian) {
	case "", "auto":
	case "be", "big":
		opts.Endian = utf.BigEndian
	case "le", "little":
		opts.Endian = utf.LittleEndian
	default:
		return nil, fmt.Errorf("invalid --endian %q (want be, le or auto)", endian)
	}
	return opts, nil
}

func formatCodepoints(runes []rune) string {
	fields := make([]string, len(runes))
	for i, r := range runes {
		fields[i] = fmt.Sprintf("U+%04X", r)
	}
	return strings.Join(fields, " ")
}

// utfCmd represents the utf command
var utfCmd = &cobra.Command{
	Use:   "utf",
	Short: "Transcode UTF-8, UTF-16 and UTF-32",
	Long: `Decode bytes in a Unicode encoding into codepoints, or encode text.

Malformed input becomes U+FFFD unless --strict is given, in which case the
command fails and reports the byte offset.

Examples:
  binkit utf decode --encoding utf16 --hex feff0041
  binkit utf decode --encoding utf8 --hex --codepoints 41ff
  binkit utf encode --encoding utf16 --endian le --bom --hex A`,
}

var utfDecodeCmd = &cobra.Command{
	Use:   "decode [data...]",
	Short: "Decode bytes into text",
	RunE: func(cmd *cobra.Command, args []string) error {
		encoding, _ := cmd.Flags().GetString("encoding")
		hexInput, _ := cmd.Flags().GetBool("hex")
		codepoints, _ := cmd.Flags().GetBool("codepoints")

		c, err := lookupUTF(encoding)
		if err != nil {
			return err
		}
		opts, err := utfOptions(cmd)
		if err != nil {
			return err
		}
		data, err := readInput(cmd, args, hexInput)
		if err != nil {
			return err
		}

		runes, err := c.decode(data, opts)
		if err != nil {
			return err
		}
		if codepoints {
			output(cmd, formatCodepoints(runes))
			return nil
		}
		output(cmd, string(runes))
		return nil
	},
}

var utfEncodeCmd = &cobra.Command{
	Use:   "encode [text...]",
	Short: "Encode text",
	RunE: func(cmd *cobra.Command, args []string) error {
		encoding, _ := cmd.Flags().GetString("encoding")
		hexOutput, _ := cmd.Flags().GetBool("hex")

		c, err := lookupUTF(encoding)
		if err != nil {
			return err
		}
		opts, err := utfOptions(cmd)
		if err != nil {
			return err
		}
		text, err := readInput(cmd, args, false)
		if err != nil {
			return err
		}

		runes, err := utf.DecodeUTF8(text, &utf.Options{Mode: opts.Mode})
		if err != nil {
			return err
		}
		out, err := c.encode(runes, opts)
		if err != nil {
			return err
		}
		if hexOutput {
			output(cmd, hex.EncodeToString(out))
			return nil
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(utfCmd)
	utfCmd.AddCommand(utfDecodeCmd)
	utfCmd.AddCommand(utfEncodeCmd)

	for _, c := range []*cobra.Command{utfDecodeCmd, utfEncodeCmd} {
		c.Flags().StringP("encoding", "e", "utf8", "Encoding: utf8, utf16 or utf32")
		c.Flags().String("endian", "auto", "Byte order for UTF-16/32: be, le or auto")
		c.Flags().Bool("strict", false, "Fail on malformed input instead of substituting U+FFFD")
		c.Flags().Bool("allow-surrogates", false, "Accept surrogate codepoints")
	}

	utfDecodeCmd.Flags().Bool("hex", false, "Input is hex encoded")
	utfDecodeCmd.Flags().Bool("codepoints", false, "Print U+XXXX codepoints instead of text")
	utfDecodeCmd.Flags().Bool("allow-overlong", false, "Accept overlong UTF-8 forms")
	utfDecodeCmd.Flags().Bool("strip-bom", false, "Drop a leading byte-order mark")

	utfEncodeCmd.Flags().Bool("hex", false, "Print the encoded bytes as hex")
	utfEncodeCmd.Flags().Bool("bom", false, "Write a byte-order mark")
}
