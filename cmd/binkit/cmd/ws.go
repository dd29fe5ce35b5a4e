package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/binkit/pkg/websocket"
)

// wsCmd represents the ws command
var wsCmd = &cobra.Command{
	Use:   "ws",
	Short: "Build and inspect RFC 6455 WebSocket frames",
	Long: `Build and inspect RFC 6455 WebSocket frames.

Examples:
  binkit ws accept dGhlIHNhbXBsZSBub25jZQ==
  binkit ws encode --mask 37fa213d Hello
  binkit ws decode 818537fa213d7f9f4d5158`,
}

var wsAcceptCmd = &cobra.Command{
	Use:   "accept <sec-websocket-key>",
	Short: "Compute the Sec-WebSocket-Accept value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output(cmd, websocket.AcceptKey(args[0]))
		return nil
	},
}

var wsEncodeCmd = &cobra.Command{
	Use:   "encode [payload...]",
	Short: "Encode a single frame and print it as hex",
	RunE: func(cmd *cobra.Command, args []string) error {
		opName, _ := cmd.Flags().GetString("opcode")
		fin, _ := cmd.Flags().GetBool("fin")
		mask, _ := cmd.Flags().GetString("mask")
		randomMask, _ := cmd.Flags().GetBool("random-mask")
		hexInput, _ := cmd.Flags().GetBool("hex")

		op, err := websocket.ParseOpcode(opName)
		if err != nil {
			return err
		}
		h := websocket.Header{IsFinal: fin, Opcode: op}

		switch {
		case mask != "":
			key, err := hex.DecodeString(mask)
			if err != nil || len(key) != 4 {
				return fmt.Errorf("invalid --mask %q: want 8 hex characters", mask)
			}
			h.Masked = true
			copy(h.MaskKey[:], key)
		case randomMask:
			if h.MaskKey, err = websocket.NewMaskKey(); err != nil {
				return err
			}
			h.Masked = true
		}

		payload, err := readInput(cmd, args, hexInput)
		if err != nil {
			return err
		}

		frame := &websocket.Frame{Header: h, Payload: payload}
		if err := frame.Validate(); err != nil {
			return err
		}
		wire, err := websocket.EncodeFrame(frame, nil)
		if err != nil {
			return err
		}
		output(cmd, hex.EncodeToString(wire))
		return nil
	},
}

var wsDecodeCmd = &cobra.Command{
	Use:   "decode [hex...]",
	Short: "Decode hex encoded frames",
	RunE: func(cmd *cobra.Command, args []string) error {
		noMask, _ := cmd.Flags().GetBool("nomask")

		data, err := readInput(cmd, args, true)
		if err != nil {
			return err
		}

		res, err := websocket.DecodeFrames(data, &websocket.Options{NoMask: noMask})
		if err != nil {
			return err
		}

		for i, f := range res.Frames {
			line := fmt.Sprintf("frame %d: fin=%t opcode=%s len=%d", i, f.IsFinal, f.Opcode, f.PayloadLength)
			if f.Masked {
				line += fmt.Sprintf(" mask=%x", f.MaskKey)
			}
			if f.IsRSV1 || f.IsRSV2 || f.IsRSV3 {
				line += fmt.Sprintf(" rsv=%t,%t,%t", f.IsRSV1, f.IsRSV2, f.IsRSV3)
			}
			line += fmt.Sprintf(" payload=%x", f.Payload)
			if err := f.Validate(); err != nil {
				line += fmt.Sprintf(" invalid=%q", err.Error())
			}
			output(cmd, line)
		}
		if len(res.Remaining) > 0 {
			output(cmd, fmt.Sprintf("remaining: %d bytes", len(res.Remaining)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(wsCmd)
	wsCmd.AddCommand(wsAcceptCmd)
	wsCmd.AddCommand(wsEncodeCmd)
	wsCmd.AddCommand(wsDecodeCmd)

	wsEncodeCmd.Flags().String("opcode", "text", "Opcode name or number")
	wsEncodeCmd.Flags().Bool("fin", true, "Set the FIN bit")
	wsEncodeCmd.Flags().String("mask", "", "Masking key as 8 hex characters")
	wsEncodeCmd.Flags().Bool("random-mask", false, "Mask with a random key")
	wsEncodeCmd.Flags().Bool("hex", false, "Payload is hex encoded")

	wsDecodeCmd.Flags().Bool("nomask", false, "Print payloads still masked")
}
