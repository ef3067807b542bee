package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "moocore",
		Short: "moocore — multi-objective optimization quality indicators",
		Long:  "Computes hypervolume, dominance, and related quality indicators over point sets read from dataset files.",
	}

	root.AddCommand(
		hvCmd(),
		igdCmd(),
		nondomCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// parseVector parses a comma-separated list of floats, e.g. "10,10".
func parseVector(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", f, err)
		}
		out[i] = v
	}
	return out, nil
}
