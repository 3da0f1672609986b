package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sortlab/sorting"
)

// newAlgorithmsCmd builds "sortbench algorithms": the registry listing.
func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the available algorithm identifiers",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, a := range sorting.Algorithms() {
				fmt.Fprintln(cmd.OutOrStdout(), a)
			}
		},
	}
}
