package dataset

// Dataset is the result of parsing a point-set text file: a row-major
// f64 matrix (Data, length NRows()*NCols) plus the boundaries of the
// consecutive sets within it.
type Dataset struct {
	Data          []float64 // row-major, len == NRows()*NCols
	NCols         int
	SetBoundaries []int // cumulative row counts; SetBoundaries[k]-SetBoundaries[k-1] = size of set k
}

// NRows returns the total number of points across all sets.
func (d *Dataset) NRows() int {
	if d.NCols == 0 {
		return 0
	}
	return len(d.Data) / d.NCols
}

// NumSets returns the number of parsed point sets.
func (d *Dataset) NumSets() int { return len(d.SetBoundaries) }

// SetSizes returns the number of rows in each set, in first-occurrence order.
func (d *Dataset) SetSizes() []int {
	sizes := make([]int, len(d.SetBoundaries))
	prev := 0
	for i, b := range d.SetBoundaries {
		sizes[i] = b - prev
		prev = b
	}
	return sizes
}

// Sets returns, for each row, the 0-based index of the set it belongs to.
func (d *Dataset) Sets() []int {
	out := make([]int, d.NRows())
	set := 0
	for row := range out {
		for set < len(d.SetBoundaries) && row >= d.SetBoundaries[set] {
			set++
		}
		out[row] = set
	}
	return out
}

// Row returns a view of row i (0-based) as a slice sharing the backing
// array with Data.
func (d *Dataset) Row(i int) []float64 {
	return d.Data[i*d.NCols : (i+1)*d.NCols]
}

// Set returns a view of the k-th parsed set's flat row-major data (0-based),
// sharing the backing array with Data.
func (d *Dataset) Set(k int) []float64 {
	start := 0
	if k > 0 {
		start = d.SetBoundaries[k-1]
	}
	end := d.SetBoundaries[k]
	return d.Data[start*d.NCols : end*d.NCols]
}
