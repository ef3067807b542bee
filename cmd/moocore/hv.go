package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mooctools/moocore/moocore"
)

func hvCmd() *cobra.Command {
	var refFlag string
	var approxFlag bool
	var nsamplesFlag int

	cmd := &cobra.Command{
		Use:   "hv <dataset>",
		Short: "Compute the exact (or approximate) hypervolume of the first set in a dataset file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if refFlag == "" {
				return fmt.Errorf("hv: --ref is required")
			}
			ref, err := parseVector(refFlag)
			if err != nil {
				return err
			}
			ds, err := moocore.ReadDataset(args[0])
			if err != nil {
				return fmt.Errorf("hv: %w", err)
			}
			points := ds.Set(0)
			d := ds.NCols
			var value float64
			if approxFlag {
				value, err = moocore.HVMonteCarlo(points, d, ref, moocore.WithNSamples(nsamplesFlag))
			} else {
				value, err = moocore.HV(points, d, ref)
			}
			if err != nil {
				return fmt.Errorf("hv: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.10g\n", value)
			return nil
		},
	}
	cmd.Flags().StringVar(&refFlag, "ref", "", "reference point, comma-separated (required)")
	cmd.Flags().BoolVar(&approxFlag, "approx", false, "use the Monte-Carlo approximation instead of the exact engine")
	cmd.Flags().IntVar(&nsamplesFlag, "nsamples", 10000, "sample count for --approx")
	return cmd
}
