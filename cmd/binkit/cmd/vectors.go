package cmd

import (
	"encoding/hex"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"

	"github.com/ssargent/binkit/pkg/storage"
)

// vectorsCmd represents the vectors command
var vectorsCmd = &cobra.Command{
	Use:   "vectors",
	Short: "Manage stored test vectors",
	Long: `Store inputs together with their CRC-32, Adler-32 and SHA-1 and check
later that the codecs still reproduce them.

Examples:
  binkit vectors add check 123456789
  binkit vectors list
  binkit vectors verify --all`,
}

var vectorsAddCmd = &cobra.Command{
	Use:   "add <name> [data...]",
	Short: "Store a test vector",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hexInput, _ := cmd.Flags().GetBool("hex")
		input, err := readInput(cmd, args[1:], hexInput)
		if err != nil {
			return err
		}

		store, err := openStore(configFrom(cmd))
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.Put(storage.NewVector(args[0], input))
		if err != nil {
			return err
		}
		output(cmd, id.String())
		return nil
	},
}

var vectorsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a test vector",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := ksuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid vector id %q: %w", args[0], err)
		}

		store, err := openStore(configFrom(cmd))
		if err != nil {
			return err
		}
		defer store.Close()

		v, err := store.Get(id)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 1, ' ', 0)
		fmt.Fprintf(w, "id:\t%s\n", v.ID)
		fmt.Fprintf(w, "name:\t%s\n", v.Name)
		fmt.Fprintf(w, "created:\t%s\n", v.CreatedAt.UTC().Format(time.RFC3339))
		fmt.Fprintf(w, "input:\t%x\n", v.Input)
		fmt.Fprintf(w, "crc32:\t%08x\n", v.CRC32)
		fmt.Fprintf(w, "adler32:\t%08x\n", v.Adler32)
		fmt.Fprintf(w, "sha1:\t%s\n", hex.EncodeToString(v.SHA1[:]))
		return w.Flush()
	},
}

var vectorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List test vectors",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(configFrom(cmd))
		if err != nil {
			return err
		}
		defer store.Close()

		vectors, err := store.List()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSIZE\tCRC32\tADLER32")
		for _, v := range vectors {
			fmt.Fprintf(w, "%s\t%s\t%d\t%08x\t%08x\n", v.ID, v.Name, len(v.Input), v.CRC32, v.Adler32)
		}
		return w.Flush()
	},
}

var vectorsVerifyCmd = &cobra.Command{
	Use:   "verify [id...]",
	Short: "Recompute and compare stored checksums",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		if !all && len(args) == 0 {
			return fmt.Errorf("give one or more vector ids, or --all")
		}

		store, err := openStore(configFrom(cmd))
		if err != nil {
			return err
		}
		defer store.Close()

		var ids []ksuid.KSUID
		if all {
			vectors, err := store.List()
			if err != nil {
				return err
			}
			for _, v := range vectors {
				ids = append(ids, v.ID)
			}
		}
		for _, arg := range args {
			id, err := ksuid.Parse(arg)
			if err != nil {
				return fmt.Errorf("invalid vector id %q: %w", arg, err)
			}
			ids = append(ids, id)
		}

		failed := 0
		for _, id := range ids {
			v, err := store.Verify(id)
			switch {
			case err == nil:
				output(cmd, "ok  ", id, v.Name)
			case errors.Is(err, storage.ErrChecksumMismatch), errors.Is(err, storage.ErrCorrupt):
				failed++
				output(cmd, "FAIL", id, err)
			default:
				return err
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d vectors failed verification", failed, len(ids))
		}
		return nil
	},
}

var vectorsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a test vector",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := ksuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid vector id %q: %w", args[0], err)
		}

		store, err := openStore(configFrom(cmd))
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Delete(id); err != nil {
			return err
		}
		cmd.Printf("Deleted %s\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(vectorsCmd)
	vectorsCmd.AddCommand(vectorsAddCmd)
	vectorsCmd.AddCommand(vectorsGetCmd)
	vectorsCmd.AddCommand(vectorsListCmd)
	vectorsCmd.AddCommand(vectorsVerifyCmd)
	vectorsCmd.AddCommand(vectorsDeleteCmd)

	vectorsAddCmd.Flags().Bool("hex", false, "Input is hex encoded")
	vectorsVerifyCmd.Flags().Bool("all", false, "Verify every stored vector")
}
