package featureprep

import (
	"github.com/aouyang1/go-featureprep/dataset"
	"github.com/aouyang1/go-featureprep/movingfit"
	"github.com/aouyang1/go-featureprep/stats"
	"gonum.org/v1/gonum/mat"
)

// Bundle is the validated, normalized argument set for feature extraction. Only Validate
// produces a bundle reporting Validated, and consumers are expected to treat it as read only.
type Bundle struct {
	Data       *dataset.Dataset   `json:"data"`
	Continuous []string           `json:"continuous"`
	Discrete   []string           `json:"discrete"`
	Stats      *stats.Spec        `json:"stats"`
	FitOptions *movingfit.Options `json:"fit_options,omitempty"`

	validated bool
}

// Validated reports whether the bundle was produced by Validate
func (b *Bundle) Validated() bool {
	return b != nil && b.validated
}

// ContinuousMatrix returns the continuous columns as an observation by column matrix
func (b *Bundle) ContinuousMatrix() (*mat.Dense, error) {
	return b.Data.Matrix(b.Continuous...)
}
