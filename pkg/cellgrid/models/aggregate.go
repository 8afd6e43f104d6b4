package models

import "sort"

// Aggregations operate on one named column. Missing cells are excluded
// from every sample; an empty or all-missing sample yields an
// UndefinedError rather than a defaulted number. The numeric
// aggregations require the column's declared kind to be int or float
// and compare both on a common float64 scale.

// Mean returns the arithmetic mean of the present numeric values in
// the named column.
func (s *Sheet) Mean(column string) (float64, error) {
	sample, err := s.numericSample(column, "mean")
	if err != nil {
		return 0, err
	}
	sum := 0.0
	for _, v := range sample {
		sum += v
	}
	return sum / float64(len(sample)), nil
}

// Max returns the largest present numeric value in the named column.
func (s *Sheet) Max(column string) (float64, error) {
	sample, err := s.numericSample(column, "max")
	if err != nil {
		return 0, err
	}
	max := sample[0]
	for _, v := range sample[1:] {
		if v > max {
			max = v
		}
	}
	return max, nil
}

// Min returns the smallest present numeric value in the named column.
func (s *Sheet) Min(column string) (float64, error) {
	sample, err := s.numericSample(column, "min")
	if err != nil {
		return 0, err
	}
	min := sample[0]
	for _, v := range sample[1:] {
		if v < min {
			min = v
		}
	}
	return min, nil
}

// Median returns the middle of the present numeric values in the named
// column, sorted ascending. An even-sized sample averages the two
// central values.
func (s *Sheet) Median(column string) (float64, error) {
	sample, err := s.numericSample(column, "median")
	if err != nil {
		return 0, err
	}
	sort.Float64s(sample)
	n := len(sample)
	if n%2 == 0 {
		return (sample[n/2-1] + sample[n/2]) / 2, nil
	}
	return sample[n/2], nil
}

// Variance returns the population variance (divide by N, not N-1) of
// the present numeric values in the named column.
func (s *Sheet) Variance(column string) (float64, error) {
	sample, err := s.numericSample(column, "variance")
	if err != nil {
		return 0, err
	}
	mean := 0.0
	for _, v := range sample {
		mean += v
	}
	mean /= float64(len(sample))
	total := 0.0
	for _, v := range sample {
		d := v - mean
		total += d * d
	}
	return total / float64(len(sample)), nil
}

// Mode returns the most frequent present cell value in the named
// column, of any kind, along with its count. Ties break to the first
// value reaching the maximum frequency in row order.
func (s *Sheet) Mode(column string) (Cell, int, error) {
	idx, ok := s.byName[column]
	if !ok {
		return Missing(), 0, &UnknownColumnError{Name: column}
	}
	counts := make(map[Cell]int)
	var best Cell
	bestCount := 0
	for _, row := range s.rows {
		c := row[idx]
		if c.IsMissing() {
			continue
		}
		counts[c]++
		if counts[c] > bestCount {
			bestCount = counts[c]
			best = c
		}
	}
	if bestCount == 0 {
		return Missing(), 0, &UndefinedError{Column: column, Op: "mode"}
	}
	return best, bestCount, nil
}

// numericSample collects the present values of a numeric column on a
// common float64 scale.
func (s *Sheet) numericSample(column, op string) ([]float64, error) {
	idx, ok := s.byName[column]
	if !ok {
		return nil, &UnknownColumnError{Name: column}
	}
	col := s.cols[idx]
	if !col.Kind.Numeric() {
		return nil, &TypeMismatchError{Column: column, Kind: col.Kind, Op: op}
	}
	var sample []float64
	for _, row := range s.rows {
		if v, ok := row[idx].Number(); ok {
			sample = append(sample, v)
		}
	}
	if len(sample) == 0 {
		return nil, &UndefinedError{Column: column, Op: op}
	}
	return sample, nil
}
