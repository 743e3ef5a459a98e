package main

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/clustergo/clustergo"
)

func newSweepCommand() *cobra.Command {
	var (
		configPath string
		kMin, kMax int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Print the (k, inertia) elbow table for a range of cluster counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if kMin > 0 {
				c.KMin = kMin
			}
			if kMax > 0 {
				c.KMax = kMax
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

			curve, err := clustergo.New(opts...).SweepK(cmd.Context(), f, c.Features, c.KMin, c.KMax)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "k\tinertia")
			for _, p := range curve {
				fmt.Fprintf(tw, "%d\t%.4f\n", p.K, p.Inertia)
			}
			tw.Flush()

			if k, ok := curve.Knee(); ok {
				fmt.Fprintf(out, "suggested k (elbow): %d\n", k)
			} else {
				fmt.Fprintln(out, "no clear elbow; widen the k range or inspect the curve")
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "clustergo.yaml", "path to the run config")
	cmd.Flags().IntVar(&kMin, "k-min", 0, "lowest k to try (overrides the config)")
	cmd.Flags().IntVar(&kMax, "k-max", 0, "highest k to try (overrides the config)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}
