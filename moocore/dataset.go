package moocore

import (
	"io"

	"github.com/mooctools/moocore/dataset"
)

// ReadDataset parses a whitespace-separated, blank-line-delimited point
// set from path, transparently decompressing it first if the path ends
// in ".xz". Parse failures are returned as *dataset.ParseError, matching
// the parser's own Code taxonomy rather than this package's
// ErrInvalidShape/ErrInvalidValue/ErrUnsupported (the parser has its own
// documented error variety, per spec.md §6-7).
func ReadDataset(path string) (*dataset.Dataset, error) {
	return dataset.ReadFile(path)
}

// ReadDatasetReader is ReadDataset for an already-open reader.
func ReadDatasetReader(r io.Reader) (*dataset.Dataset, error) {
	return dataset.Read(r)
}

// WriteDataset serialises data back to the blank-line-delimited text
// format, the inverse of ReadDataset.
func WriteDataset(w io.Writer, data []float64, ncols int, setBoundaries []int) error {
	return dataset.WriteSets(w, data, ncols, setBoundaries)
}
