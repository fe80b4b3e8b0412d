package main

import (
	"fmt"

	"github.com/mcallbosco/IMGColorSwap/internal/channels"
	"github.com/mcallbosco/IMGColorSwap/internal/pipeline"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.Flags().StringP("output_folder", "o", "", "Output folder (default: next to each input, with '_corrected' appended)")
	rootCmd.Flags().BoolP("recursive", "r", false, "Recursively process PNG files in subdirectories")
	rootCmd.Flags().String("channel_order", channels.DefaultOrder, "Channel order: R, G, B and A in any order, no spaces (also -order)")
}

func runColorSwap(cmd *cobra.Command, args []string) error {
	outputFolder, _ := cmd.Flags().GetString("output_folder")
	recursive, _ := cmd.Flags().GetBool("recursive")
	orderStr, _ := cmd.Flags().GetString("channel_order")

	order, err := channels.ParseOrder(orderStr)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	cfg := pipeline.Config{
		InputFolder:  args[0],
		OutputFolder: outputFolder,
		Recursive:    recursive,
		Order:        order.String(),
		Out:          out,
	}

	fmt.Fprintf(out, "Channel mapping: %s\n", order.Mapping())

	summary, err := pipeline.ProcessFolder(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Processed %d file(s), %d error(s)\n", summary.Processed, summary.Failed)
	return nil
}
