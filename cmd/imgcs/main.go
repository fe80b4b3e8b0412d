package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "imgcs <input_folder>",
	Short: "Fix PNG channels by reordering the R, G, B and A planes",
	Long: `imgcs rewrites every PNG in a folder with its channels reordered.

The channel order lists, for each output channel, the input channel that
fills it. The default GRAB swaps red with green and blue with alpha.`,
	Args:          cobra.ExactArgs(1),
	RunE:          runColorSwap,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// normalizeArgs rewrites the single-dash -order flag, which pflag would
// otherwise read as the bundled shorthands -o -r -d -e -r.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, a := range args {
		if a == "--" {
			return append(out, args[i:]...)
		}
		switch {
		case a == "-order":
			a = "--channel_order"
		case strings.HasPrefix(a, "-order="):
			a = "--channel_order=" + strings.TrimPrefix(a, "-order=")
		}
		out = append(out, a)
	}
	return out
}
