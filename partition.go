package smooth

// RowRange is the half-open interval [Start, End) of row indices owned by
// one worker for one pass.
type RowRange struct {
	Start int
	End   int
}

// Len returns the number of rows in the range.
func (r RowRange) Len() int {
	return r.End - r.Start
}

// Empty reports whether the range holds no rows.
func (r RowRange) Empty() bool {
	return r.End <= r.Start
}

// Partition splits [0, rows) into exactly workers contiguous ranges.
// Every range but the last holds rows/workers rows; the last one also
// absorbs the remainder rows%workers. With rows < workers all ranges but
// the last are empty.
//
// A workers value below 1 is treated as 1. A negative rows is treated as 0.
func Partition(rows, workers int) []RowRange {
	workers = max(workers, 1)
	rows = max(rows, 0)

	base := rows / workers
	ranges := make([]RowRange, workers)
	for i := range ranges {
		ranges[i] = RowRange{Start: i * base, End: (i + 1) * base}
	}
	ranges[workers-1].End = rows
	return ranges
}
