package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mooctools/moocore/moocore"
)

func igdCmd() *cobra.Command {
	var refPathFlag string
	var plusFlag bool

	cmd := &cobra.Command{
		Use:   "igd <dataset>",
		Short: "Compute IGD (or IGD+) of the first set in a dataset file against a reference set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if refPathFlag == "" {
				return fmt.Errorf("igd: --reference is required")
			}
			xDS, err := moocore.ReadDataset(args[0])
			if err != nil {
				return fmt.Errorf("igd: %w", err)
			}
			rDS, err := moocore.ReadDataset(refPathFlag)
			if err != nil {
				return fmt.Errorf("igd: %w", err)
			}
			if xDS.NCols != rDS.NCols {
				return fmt.Errorf("igd: dataset has %d columns, reference has %d", xDS.NCols, rDS.NCols)
			}
			var value float64
			if plusFlag {
				value, err = moocore.IGDPlus(xDS.Set(0), rDS.Set(0), xDS.NCols)
			} else {
				value, err = moocore.IGD(xDS.Set(0), rDS.Set(0), xDS.NCols)
			}
			if err != nil {
				return fmt.Errorf("igd: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.10g\n", value)
			return nil
		},
	}
	cmd.Flags().StringVar(&refPathFlag, "reference", "", "path to the reference set's dataset file (required)")
	cmd.Flags().BoolVar(&plusFlag, "plus", false, "compute IGD+ instead of IGD")
	return cmd
}
