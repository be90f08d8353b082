package stats

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// Spec is a resolved, immutable selection of summary statistics. A Spec is safe for concurrent
// use and is meant to be resolved once and reused across every downstream computation.
type Spec struct {
	stats []Statistic
}

// NewSpec resolves the statistic names into a Spec preserving the given order
func NewSpec(names ...string) (*Spec, error) {
	if len(names) == 0 {
		return nil, ErrNoStatistics
	}

	seen := make(map[Statistic]struct{}, len(names))
	statistics := make([]Statistic, 0, len(names))
	for _, name := range names {
		s, err := ParseStatistic(name)
		if err != nil {
			return nil, err
		}
		if _, exists := seen[s]; exists {
			return nil, fmt.Errorf("%q, %w", name, ErrDuplicateStatistic)
		}
		seen[s] = struct{}{}
		statistics = append(statistics, s)
	}
	return &Spec{stats: statistics}, nil
}

// NewDefaultSpec returns a Spec with every recognized statistic in canonical order
func NewDefaultSpec() *Spec {
	spec, _ := NewSpec(DefaultNames()...)
	return spec
}

// Statistics returns the selected statistics in order
func (s *Spec) Statistics() []Statistic {
	res := make([]Statistic, len(s.stats))
	copy(res, s.stats)
	return res
}

// Names returns the selected statistic names in order
func (s *Spec) Names() []string {
	names := make([]string, 0, len(s.stats))
	for _, st := range s.stats {
		names = append(names, st.String())
	}
	return names
}

// Len returns the number of selected statistics
func (s *Spec) Len() int {
	return len(s.stats)
}

// Compute returns each selected statistic of x in order. NaN values are ignored.
func (s *Spec) Compute(x []float64) []float64 {
	sorted := sortedFinite(x)
	res := make([]float64, 0, len(s.stats))
	for _, st := range s.stats {
		res = append(res, aggregations[st](sorted))
	}
	return res
}

// ComputeMap returns each selected statistic of x keyed by statistic name. The optional prefix
// is joined to the name with an underscore, e.g. "slope_mean".
func (s *Spec) ComputeMap(prefix string, x []float64) map[string]float64 {
	vals := s.Compute(x)
	res := make(map[string]float64, len(vals))
	for i, st := range s.stats {
		res[label(prefix, st)] = vals[i]
	}
	return res
}

func (s *Spec) String() string {
	return strings.Join(s.Names(), ",")
}

func label(prefix string, st Statistic) string {
	if prefix == "" {
		return st.String()
	}
	return prefix + "_" + st.String()
}

// MarshalJSON encodes the Spec as its list of statistic names
func (s *Spec) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Names())
}

// UnmarshalJSON resolves a list of statistic names
func (s *Spec) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	spec, err := NewSpec(names...)
	if err != nil {
		return err
	}
	s.stats = spec.stats
	return nil
}
