package featureprep

import (
	"errors"

	"github.com/aouyang1/go-featureprep/dataset"
	"github.com/aouyang1/go-featureprep/selector"
)

var (
	ErrStructural            = errors.New("dataset must be a table with more than 2 rows")
	ErrMissingSelector       = errors.New("at least one of the continuous or discrete selectors must be set")
	ErrInvalidStatsSpec      = errors.New("stats must be a list of statistic names or a resolved spec")
	ErrInvalidFlag           = errors.New("center scale flag must be a single boolean")
	ErrSelectorOverlap       = errors.New("column selected as both continuous and discrete")
	ErrUnrecognizedFitOption = errors.New("unrecognized fit option")
	ErrFitOptionsNotNamed    = errors.New("fit options must be a named key value bundle")

	ErrSelectorType     = selector.ErrInvalidType
	ErrSelectorRange    = selector.ErrOutOfRange
	ErrSelectorName     = selector.ErrUnknownName
	ErrNonNumericColumn = dataset.ErrNonNumericColumn
)
