package featureprep

import (
	"bytes"
	"fmt"

	"github.com/aouyang1/go-featureprep/movingfit"
	"github.com/aouyang1/go-featureprep/selector"
	"github.com/aouyang1/go-featureprep/stats"
	"github.com/goccy/go-json"
)

// FitOptionsValidator owns semantic validation of the options handed to the moving-window
// regression fit. Validate only sees bundles whose keys are all among ParameterNames.
type FitOptionsValidator interface {
	ParameterNames() []string
	Validate(bundle map[string]any) (*movingfit.Options, error)
}

// StatsSelector chooses the summary statistics computed per regression parameter, either by
// name or as an already resolved spec. Leaving both unset selects every statistic.
type StatsSelector struct {
	Names []string
	Spec  *stats.Spec
}

func (s StatsSelector) resolve() (*stats.Spec, error) {
	if s.Names != nil && s.Spec != nil {
		return nil, fmt.Errorf("both names %q and a resolved spec given, %w", s.Names, ErrInvalidStatsSpec)
	}
	if s.Spec != nil {
		return s.Spec, nil
	}

	names := s.Names
	if names == nil {
		names = stats.DefaultNames()
	}
	spec, err := stats.NewSpec(names...)
	if err != nil {
		return nil, fmt.Errorf("stats %q, %w, %w", names, err, ErrInvalidStatsSpec)
	}
	return spec, nil
}

// Options holds the arguments checked by Validate. A nil Continuous or Discrete selector means
// no columns for that role, a nil CenterScale defaults to true and nil FitOptions means no
// overrides for the moving fit.
type Options struct {
	Continuous  selector.Selector
	Discrete    selector.Selector
	CenterScale *bool
	Stats       StatsSelector
	FitOptions  map[string]any

	// FitValidator defaults to the moving fit validator
	FitValidator FitOptionsValidator
}

// NewDefaultOptions returns options with center scaling enabled and all statistics selected.
// Callers still need to set at least one selector.
func NewDefaultOptions() *Options {
	centerScale := true
	return &Options{
		CenterScale:  &centerScale,
		FitValidator: movingfit.NewValidator(),
	}
}

func (o *Options) centerScale() bool {
	if o.CenterScale == nil {
		return true
	}
	return *o.CenterScale
}

func (o *Options) fitValidator() FitOptionsValidator {
	if o.FitValidator == nil {
		return movingfit.NewValidator()
	}
	return o.FitValidator
}

type rawOptions struct {
	Continuous  json.RawMessage `json:"continuous"`
	Discrete    json.RawMessage `json:"discrete"`
	CenterScale json.RawMessage `json:"center_scale"`
	Stats       json.RawMessage `json:"stats"`
	FitOptions  json.RawMessage `json:"fit_options"`
}

// DecodeOptions parses a JSON argument document such as
//
//	{"continuous": [1, 3], "discrete": ["state"], "center_scale": true,
//	 "stats": ["mean", "sd"], "fit_options": {"windowSize": 5}}
//
// A selector may be a single name or index instead of a list.
func DecodeOptions(data []byte) (*Options, error) {
	var raw rawOptions
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unable to decode options, %w", err)
	}

	opt := NewDefaultOptions()

	var err error
	if opt.Continuous, err = decodeSelector(raw.Continuous); err != nil {
		return nil, fmt.Errorf("invalid continuous selector, %w", err)
	}
	if opt.Discrete, err = decodeSelector(raw.Discrete); err != nil {
		return nil, fmt.Errorf("invalid discrete selector, %w", err)
	}

	if !isNull(raw.CenterScale) {
		var centerScale bool
		if err := json.Unmarshal(raw.CenterScale, &centerScale); err != nil {
			return nil, fmt.Errorf("center_scale %s, %w", raw.CenterScale, ErrInvalidFlag)
		}
		opt.CenterScale = &centerScale
	}

	if !isNull(raw.Stats) {
		var names []string
		if err := json.Unmarshal(raw.Stats, &names); err != nil {
			return nil, fmt.Errorf("stats %s, %w", raw.Stats, ErrInvalidStatsSpec)
		}
		if names == nil {
			names = []string{}
		}
		opt.Stats.Names = names
	}

	if !isNull(raw.FitOptions) {
		trimmed := bytes.TrimSpace(raw.FitOptions)
		if trimmed[0] != '{' {
			return nil, fmt.Errorf("fit_options %s, %w", trimmed, ErrFitOptionsNotNamed)
		}
		var fitOpts map[string]any
		if err := json.Unmarshal(trimmed, &fitOpts); err != nil {
			return nil, fmt.Errorf("fit_options %s, %v, %w", trimmed, err, ErrFitOptionsNotNamed)
		}
		opt.FitOptions = fitOpts
	}

	return opt, nil
}

func decodeSelector(raw json.RawMessage) (selector.Selector, error) {
	if isNull(raw) {
		return nil, nil
	}

	trimmed := bytes.TrimSpace(raw)
	var vals []any
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &vals); err != nil {
			return nil, fmt.Errorf("%s, %v, %w", trimmed, err, selector.ErrInvalidType)
		}
	} else {
		var val any
		if err := json.Unmarshal(trimmed, &val); err != nil {
			return nil, fmt.Errorf("%s, %v, %w", trimmed, err, selector.ErrInvalidType)
		}
		vals = []any{val}
	}
	return selector.FromValues(vals)
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
