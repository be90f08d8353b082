// Package featureprep validates and normalizes the arguments of the time-series feature
// extraction routines. Validate checks a dataset against continuous and discrete column
// selectors, optionally center scales the continuous columns, resolves the summary statistics
// and validates the moving-window regression options, producing a Bundle that downstream
// extraction consumes without checking again.
package featureprep

import (
	"fmt"
	"log/slog"
	"slices"
	"sort"

	"github.com/aouyang1/go-featureprep/dataset"
	"github.com/aouyang1/go-featureprep/selector"
)

// MinRows is the minimum number of observations a dataset must have
const MinRows = 3

// Validate checks the dataset and options, failing on the first violated precondition. The
// input dataset is never modified; the returned bundle holds its own copy.
func Validate(ds *dataset.Dataset, opt *Options) (*Bundle, error) {
	if opt == nil {
		opt = NewDefaultOptions()
	}

	if err := ds.Check(); err != nil {
		return nil, fmt.Errorf("%v, %w", err, ErrStructural)
	}
	if ds.Rows() < MinRows {
		return nil, fmt.Errorf("dataset has %d rows, %w", ds.Rows(), ErrStructural)
	}

	if selectorLen(opt.Continuous) == 0 && selectorLen(opt.Discrete) == 0 {
		return nil, ErrMissingSelector
	}

	statsSpec, err := opt.Stats.resolve()
	if err != nil {
		return nil, err
	}

	columnNames := ds.Names()
	continuous, err := selector.Resolve(opt.Continuous, columnNames)
	if err != nil {
		return nil, fmt.Errorf("invalid continuous selector, %w", err)
	}
	discrete, err := selector.Resolve(opt.Discrete, columnNames)
	if err != nil {
		return nil, fmt.Errorf("invalid discrete selector, %w", err)
	}

	if overlap := intersect(continuous, discrete); len(overlap) > 0 {
		return nil, fmt.Errorf("columns %q, %w", overlap, ErrSelectorOverlap)
	}

	var nonNumeric []string
	for _, name := range continuous {
		if !ds.IsNumeric(name) && !slices.Contains(nonNumeric, name) {
			nonNumeric = append(nonNumeric, name)
		}
	}
	if len(nonNumeric) > 0 {
		return nil, fmt.Errorf("continuous columns %q, %w", nonNumeric, ErrNonNumericColumn)
	}

	data := ds.Copy()
	if opt.centerScale() && len(continuous) > 0 {
		data, err = ds.CenterScale(continuous...)
		if err != nil {
			return nil, fmt.Errorf("unable to center scale continuous columns, %w", err)
		}
	}

	b := &Bundle{
		Data:       data,
		Continuous: continuous,
		Discrete:   discrete,
		Stats:      statsSpec,
		validated:  true,
	}

	if opt.FitOptions != nil {
		fitValidator := opt.fitValidator()
		if unknown := unrecognizedKeys(opt.FitOptions, fitValidator.ParameterNames()); len(unknown) > 0 {
			return nil, fmt.Errorf(
				"fit options %q not among %q, %w",
				unknown, fitValidator.ParameterNames(), ErrUnrecognizedFitOption,
			)
		}

		// errors from the fit validator are its own and returned as is
		b.FitOptions, err = fitValidator.Validate(opt.FitOptions)
		if err != nil {
			return nil, err
		}
	}

	slog.Debug("validated feature arguments",
		"rows", data.Rows(),
		"continuous", continuous,
		"discrete", discrete,
		"stats", statsSpec.String(),
		"center_scale", opt.centerScale(),
	)
	return b, nil
}

func selectorLen(s selector.Selector) int {
	if s == nil {
		return 0
	}
	return s.Len()
}

func intersect(a, b []string) []string {
	var res []string
	for _, name := range a {
		if slices.Contains(b, name) && !slices.Contains(res, name) {
			res = append(res, name)
		}
	}
	return res
}

func unrecognizedKeys(bundle map[string]any, known []string) []string {
	var unknown []string
	for key := range bundle {
		if !slices.Contains(known, key) {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return unknown
}
