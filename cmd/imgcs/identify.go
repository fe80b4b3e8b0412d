package main

import (
	"fmt"
	"os"

	"github.com/mcallbosco/IMGColorSwap/internal/pngio"
	"github.com/spf13/cobra"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect PNG header and channel info",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	info, err := pngio.GetInfo(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:       %s\n", path)
	fmt.Fprintf(out, "Dimensions: %d x %d\n", info.Width, info.Height)
	fmt.Fprintf(out, "Bit depth:  %d\n", info.BitDepth)
	fmt.Fprintf(out, "Color type: %s\n", info.ColorTypeName())
	fmt.Fprintf(out, "Interlaced: %v\n", info.Interlaced)
	if info.HasAlpha() {
		fmt.Fprintln(out, "Alpha:      present")
	} else {
		fmt.Fprintln(out, "Alpha:      none (remapping synthesizes an opaque plane)")
	}
	fmt.Fprintf(out, "File size:  %d bytes (%.1f MB)\n", len(data), float64(len(data))/(1024*1024))

	if info.ICC != nil {
		fmt.Fprintf(out, "ICC profile: %q (%d bytes)\n", info.ICCName, len(info.ICC))
	} else {
		fmt.Fprintln(out, "ICC profile: none")
	}

	return nil
}
