package dataset

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ulikunitz/xz"
)

// ReadFile parses the point-set text file at path. If path ends in ".xz" the
// stream is transparently LZMA/xz-decompressed first.
//
// Complexity: O(total tokens).
func ReadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Code: CodeFileOpen, Msg: "could not open " + path}
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".xz") {
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, &ParseError{Code: CodeFileOpen, Msg: "could not init xz decompressor for " + path}
		}
		r = xr
	}
	return Read(r)
}

// Read parses the point-set text format from r.
//
// Complexity: O(total tokens).
func Read(r io.Reader) (*Dataset, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var (
		data          []float64
		ncols         = -1
		setBoundaries []int
		rowsInSet     int
		lineNo        int
		sawAnyData    bool
	)

	flushSet := func() {
		if rowsInSet > 0 {
			prev := 0
			if len(setBoundaries) > 0 {
				prev = setBoundaries[len(setBoundaries)-1]
			}
			setBoundaries = append(setBoundaries, prev+rowsInSet)
			rowsInSet = 0
		}
	}

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flushSet()
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			continue
		}
		fields := strings.Fields(trimmed)
		if ncols == -1 {
			ncols = len(fields)
		} else if len(fields) != ncols {
			return nil, newColumnsErr(lineNo, ncols, len(fields))
		}
		row := make([]float64, ncols)
		for i, tok := range fields {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, newConversionErr(lineNo, tok)
			}
			row[i] = v
		}
		data = append(data, row...)
		rowsInSet++
		sawAnyData = true
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flushSet()

	if !sawAnyData {
		return nil, ErrFileEmpty
	}
	return &Dataset{Data: data, NCols: ncols, SetBoundaries: setBoundaries}, nil
}

// ReadFileExpectCols parses path like ReadFile but additionally requires the
// resulting dimension to equal expectedCols, returning a *ParseError with
// Code CodeWrongInitialDim otherwise.
func ReadFileExpectCols(path string, expectedCols int) (*Dataset, error) {
	ds, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	if ds.NCols != expectedCols {
		return nil, newWrongInitialDimErr(expectedCols, ds.NCols)
	}
	return ds, nil
}
