package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/clustergo/clustergo"
)

func newFitCommand() *cobra.Command {
	var (
		configPath string
		k          int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Cluster the dataset into k segments and write the labels",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if k > 0 {
				c.K = k
			}
			if c.K <= 0 {
				return fmt.Errorf("k must be set via --k or the config file")
			}

			logger := clustergo.NoopLogger()
			if verbose {
				logger = clustergo.NewTextLogger(slog.LevelDebug)
			}

			opts, err := c.segmenterOptions(logger)
			if err != nil {
				return err
			}

			f, err := c.loadFrame()
			if err != nil {
				return err
			}

			result, err := clustergo.New(opts...).Fit(cmd.Context(), f, c.Features, c.K)
			if err != nil {
				return err
			}

			printSegmentation(cmd.OutOrStdout(), result)
			return writeLabels(c.Output, result)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "clustergo.yaml", "path to the run config")
	cmd.Flags().IntVar(&k, "k", 0, "cluster count (overrides the config)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func printSegmentation(w io.Writer, result *clustergo.Segmentation) {
	fmt.Fprintf(w, "fitted %d clusters over %d features, inertia %.4f (%d iterations)\n",
		result.K, result.Dim, result.Inertia, result.Iterations)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprint(tw, "cluster\tsize")
	for _, name := range result.Features {
		fmt.Fprintf(tw, "\t%s", name)
	}
	fmt.Fprintln(tw)

	for j := 0; j < result.K; j++ {
		fmt.Fprintf(tw, "%d\t%d", j, result.Sizes[j])
		for d := 0; d < result.Dim; d++ {
			fmt.Fprintf(tw, "\t%.3f", result.Centroids[j*result.Dim+d])
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()

	if len(result.VarianceRatio) > 0 {
		fmt.Fprintf(w, "projection explains %.1f%% of variance\n", 100*sum(result.VarianceRatio))
	}
}

// writeLabels emits one row per observation: index, cluster label and the
// PCA coordinates (when projected) for plotting.
func writeLabels(path string, result *clustergo.Segmentation) error {
	out := os.Stdout
	if path != "" {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer file.Close()
		out = file
	}

	w := csv.NewWriter(out)
	defer w.Flush()

	header := []string{"row", "cluster"}
	components := 0
	if result.Projection != nil {
		components = result.Projection.Dim
		for c := 1; c <= components; c++ {
			header = append(header, fmt.Sprintf("pc%d", c))
		}
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, label := range result.Labels {
		record := []string{strconv.Itoa(i), strconv.Itoa(label)}
		for c := 0; c < components; c++ {
			record = append(record, strconv.FormatFloat(float64(result.Projection.At(i, c)), 'g', -1, 32))
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return w.Error()
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}
