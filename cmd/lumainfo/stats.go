package main

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// frameStats summarizes the finite samples of one rendered frame.
type frameStats struct {
	count     int
	nonFinite int
	min       float64
	max       float64
	mean      float64
	stdDev    float64
}

func summarize(samples []float32) frameStats {
	finite := make([]float64, 0, len(samples))
	var s frameStats
	for _, v := range samples {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			s.nonFinite++
			continue
		}
		finite = append(finite, f)
	}

	s.count = len(finite)
	if s.count == 0 {
		nan := math.NaN()
		s.min, s.max, s.mean, s.stdDev = nan, nan, nan, nan
		return s
	}
	s.min = floats.Min(finite)
	s.max = floats.Max(finite)
	if s.count == 1 {
		s.mean = finite[0]
		return s
	}
	s.mean, s.stdDev = stat.MeanStdDev(finite, nil)
	return s
}
