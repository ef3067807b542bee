package dataset

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteSets serialises data (n*ncols row-major) and its set boundaries back
// to the blank-line-delimited text format read by Read/ReadFile. This is the
// inverse of Read for datasets without comments, used by tests and tooling
// that round-trip generated point sets to disk.
func WriteSets(w io.Writer, data []float64, ncols int, setBoundaries []int) error {
	if ncols <= 0 {
		return fmt.Errorf("dataset: WriteSets: ncols must be positive, got %d", ncols)
	}
	n := len(data) / ncols
	prev := 0
	var sb strings.Builder
	for _, boundary := range setBoundaries {
		for row := prev; row < boundary && row < n; row++ {
			for c := 0; c < ncols; c++ {
				if c > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(strconv.FormatFloat(data[row*ncols+c], 'g', -1, 64))
			}
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
		prev = boundary
	}
	out := strings.TrimRight(sb.String(), "\n") + "\n"
	_, err := io.WriteString(w, out)
	return err
}
