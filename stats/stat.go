// Package stats resolves summary statistic names into an immutable Spec that computes the
// selected statistics over a slice of values.
package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrUnknownStatistic   = errors.New("unknown summary statistic")
	ErrDuplicateStatistic = errors.New("summary statistic selected more than once")
	ErrNoStatistics       = errors.New("no summary statistics selected")
)

// Statistic enumerates the recognized summary statistics
type Statistic int

const (
	Min Statistic = iota
	Q1
	Mean
	Median
	Q3
	Max
	SD
	N
)

var statNames = [...]string{
	Min:    "min",
	Q1:     "q1",
	Mean:   "mean",
	Median: "median",
	Q3:     "q3",
	Max:    "max",
	SD:     "sd",
	N:      "n",
}

// aggregations operate on a sorted slice with NaNs removed
var aggregations = [...]func(sorted []float64) float64{
	Min: func(x []float64) float64 {
		if len(x) == 0 {
			return math.NaN()
		}
		return floats.Min(x)
	},
	Q1:     func(x []float64) float64 { return quantile(0.25, x) },
	Mean:   func(x []float64) float64 { return mean(x) },
	Median: func(x []float64) float64 { return quantile(0.5, x) },
	Q3:     func(x []float64) float64 { return quantile(0.75, x) },
	Max: func(x []float64) float64 {
		if len(x) == 0 {
			return math.NaN()
		}
		return floats.Max(x)
	},
	SD: func(x []float64) float64 {
		if len(x) < 2 {
			return math.NaN()
		}
		return stat.StdDev(x, nil)
	},
	N: func(x []float64) float64 { return float64(len(x)) },
}

// String returns the recognized name of the statistic
func (s Statistic) String() string {
	if s < Min || s > N {
		return fmt.Sprintf("Statistic(%d)", int(s))
	}
	return statNames[s]
}

// ParseStatistic returns the statistic for a recognized name
func ParseStatistic(name string) (Statistic, error) {
	for i, statName := range statNames {
		if statName == name {
			return Statistic(i), nil
		}
	}
	return 0, fmt.Errorf("%q, %w", name, ErrUnknownStatistic)
}

// DefaultNames returns every recognized statistic name in canonical order
func DefaultNames() []string {
	names := make([]string, len(statNames))
	copy(names, statNames[:])
	return names
}

func mean(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return stat.Mean(x, nil)
}

// quantile linearly interpolates between the order statistics of sorted at position (n-1)p.
func quantile(p float64, sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	h := float64(n-1) * p
	lo := math.Floor(h)
	hi := math.Ceil(h)
	return sorted[int(lo)] + (h-lo)*(sorted[int(hi)]-sorted[int(lo)])
}

func sortedFinite(x []float64) []float64 {
	res := make([]float64, 0, len(x))
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		res = append(res, v)
	}
	sort.Float64s(res)
	return res
}
