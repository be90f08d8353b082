// Package movingfit defines the options accepted by the moving-window regression fit that
// extracts features from continuous columns, along with the validator that turns a loosely typed
// option bundle into those options.
package movingfit

import (
	"errors"
	"reflect"
	"strings"
)

const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"

	DefaultWindowSize      = 20
	DefaultStepSize        = 1
	DefaultOrder           = 1
	DefaultMinObservations = 3
)

var ErrInvalidOption = errors.New("invalid moving fit option")

// Options configures the moving-window regression. Each window of WindowSize rows is fit with a
// polynomial of the given Order every StepSize rows. Windows with fewer than MinObservations
// non-missing values are skipped. Alignment sets which row of the window a fit is attributed to.
type Options struct {
	WindowSize      int    `json:"windowSize" validate:"gte=3"`
	StepSize        int    `json:"stepSize" validate:"gte=1"`
	Order           int    `json:"order" validate:"gte=1,lte=3"`
	FitIntercept    bool   `json:"fitIntercept"`
	Alignment       string `json:"alignment" validate:"oneof=left center right"`
	MinObservations int    `json:"minObservations" validate:"gte=2,ltefield=WindowSize"`
}

// NewDefaultOptions returns the default moving fit options
func NewDefaultOptions() *Options {
	return &Options{
		WindowSize:      DefaultWindowSize,
		StepSize:        DefaultStepSize,
		Order:           DefaultOrder,
		FitIntercept:    true,
		Alignment:       AlignRight,
		MinObservations: DefaultMinObservations,
	}
}

// Validate checks the option values, returning the defaults if the receiver is nil
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		return NewDefaultOptions(), nil
	}
	if err := structValidator.Struct(o); err != nil {
		return nil, describe(err)
	}
	return o, nil
}

// ParameterNames returns the recognized option names of the moving fit in declaration order
func ParameterNames() []string {
	typ := reflect.TypeOf(Options{})
	names := make([]string, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		if name := jsonName(typ.Field(i)); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}
