package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mooctools/moocore/moocore"
)

func nondomCmd() *cobra.Command {
	var keepWeaklyFlag bool

	cmd := &cobra.Command{
		Use:   "nondom <dataset>",
		Short: "Filter the first set in a dataset file down to its nondominated rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := moocore.ReadDataset(args[0])
			if err != nil {
				return fmt.Errorf("nondom: %w", err)
			}
			points := ds.Set(0)
			filtered, err := moocore.FilterDominated(points, ds.NCols, moocore.WithKeepWeakly(keepWeaklyFlag))
			if err != nil {
				return fmt.Errorf("nondom: %w", err)
			}
			n := len(filtered) / ds.NCols
			out := cmd.OutOrStdout()
			for i := 0; i < n; i++ {
				row := filtered[i*ds.NCols : (i+1)*ds.NCols]
				for j, v := range row {
					if j > 0 {
						fmt.Fprint(out, " ")
					}
					fmt.Fprint(out, strconv.FormatFloat(v, 'g', -1, 64))
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&keepWeaklyFlag, "keep-weakly", false, "keep every copy of duplicated points instead of only the first of each group")
	return cmd
}
