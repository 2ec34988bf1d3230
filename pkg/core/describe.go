package core

import (
	"fmt"
	"math"
)

// Info holds the summary statistics computed over a record.
type Info struct {
	Shape    [2]int     `json:"shape"`
	DType    string     `json:"dtype"`
	Min      float64    `json:"min_value"`
	Max      float64    `json:"max_value"`
	Mean     float64    `json:"mean_value"`
	Std      float64    `json:"std_value"`
	RangeF1  [2]float64 `json:"frequency_range_f1"`
	RangeF2  [2]float64 `json:"frequency_range_f2"`
	Metadata Metadata   `json:"metadata"`
}

// Describe computes shape, value range, mean, population standard
// deviation and the min/max of both axes. It is pure: the record is not
// mutated. The only failure mode is a record with a zero dimension.
func Describe(rec *Record) (Info, error) {
	n1, n2 := rec.Dims()
	if n1 == 0 || n2 == 0 {
		return Info{}, fmt.Errorf("%w: shape (%d, %d)", ErrEmptyRecord, n1, n2)
	}

	min := math.Inf(1)
	max := math.Inf(-1)
	sum := 0.0
	for _, row := range rec.Spectrum {
		for _, v := range row {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
			sum += v
		}
	}
	count := float64(n1 * n2)
	mean := sum / count

	sqSum := 0.0
	for _, row := range rec.Spectrum {
		for _, v := range row {
			d := v - mean
			sqSum += d * d
		}
	}
	std := math.Sqrt(sqSum / count)

	return Info{
		Shape:    [2]int{n1, n2},
		DType:    "float64",
		Min:      min,
		Max:      max,
		Mean:     mean,
		Std:      std,
		RangeF1:  axisRange(rec.AxisF1),
		RangeF2:  axisRange(rec.AxisF2),
		Metadata: rec.Metadata,
	}, nil
}

// axisRange returns the min and max of an axis. Axes are produced
// monotonic by all decoders but the contract does not require it, so the
// full scan stays.
func axisRange(axis []float64) [2]float64 {
	lo := math.Inf(1)
	hi := math.Inf(-1)
	for _, v := range axis {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return [2]float64{lo, hi}
}
