// Command clustergo segments a tabular customer dataset: it loads a CSV or
// XLSX table, preprocesses the feature columns, runs k-means and emits
// cluster labels plus 2-D PCA coordinates for an external plotter.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "clustergo",
		Short:         "Customer segmentation via k-means clustering",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newFitCommand())
	root.AddCommand(newSweepCommand())

	return root
}
