package dataset

import (
	"math"
	"math/rand/v2"
	"time"
)

// GenerateT returns n evenly spaced timestamps ending one interval before the minute truncated
// result of nowFunc.
func GenerateT(n int, interval time.Duration, nowFunc func() time.Time) []time.Time {
	t := make([]time.Time, 0, n)
	ct := time.Unix(nowFunc().Unix()/60*60, 0).Add(-time.Duration(n) * interval).UTC()
	for i := 0; i < n; i++ {
		t = append(t, ct.Add(interval*time.Duration(i)))
	}
	return t
}

// GenerateWave returns a numeric column of a sine wave sampled at t
func GenerateWave(name string, t []time.Time, amp, periodSec, bias float64) Column {
	vals := make([]float64, 0, len(t))
	for _, tPnt := range t {
		vals = append(vals, bias+amp*math.Sin(2.0*math.Pi/periodSec*float64(tPnt.Unix())))
	}
	return NumericColumn(name, vals)
}

// GenerateNoise returns a numeric column of gaussian noise with the provided mean and scale
func GenerateNoise(name string, n int, mean, scale float64) Column {
	vals := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		vals = append(vals, mean+rand.NormFloat64()*scale)
	}
	return NumericColumn(name, vals)
}

// GenerateStates returns a text column cycling through states, holding each state for dwell rows
func GenerateStates(name string, n, dwell int, states ...string) Column {
	vals := make([]string, 0, n)
	if len(states) == 0 || dwell < 1 {
		return TextColumn(name, vals)
	}
	for i := 0; i < n; i++ {
		vals = append(vals, states[(i/dwell)%len(states)])
	}
	return TextColumn(name, vals)
}
