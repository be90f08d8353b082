package movingfit

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New()

	// report json names so errors match the keys callers pass in
	v.RegisterTagNameFunc(jsonName)
	return v
}

// Validator converts a named option bundle into validated moving fit Options
type Validator struct{}

// NewValidator returns a moving fit option validator
func NewValidator() *Validator {
	return &Validator{}
}

// ParameterNames returns the option names the validator recognizes
func (v *Validator) ParameterNames() []string {
	return ParameterNames()
}

// Validate overlays the bundle onto the default options and checks the resulting values. Keys
// not among ParameterNames and values of the wrong type are rejected.
func (v *Validator) Validate(bundle map[string]any) (*Options, error) {
	opt := NewDefaultOptions()
	if len(bundle) == 0 {
		return opt, nil
	}

	data, err := json.Marshal(bundle)
	if err != nil {
		return nil, fmt.Errorf("unable to encode options, %v, %w", err, ErrInvalidOption)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(opt); err != nil {
		return nil, fmt.Errorf("unable to decode options, %v, %w", err, ErrInvalidOption)
	}

	return opt.Validate()
}

func describe(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%v, %w", err, ErrInvalidOption)
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		constraint := fe.Tag()
		if fe.Param() != "" {
			constraint += "=" + fe.Param()
		}
		msgs = append(msgs, fmt.Sprintf("%s=%v violates %s", fe.Field(), fe.Value(), constraint))
	}
	return fmt.Errorf("%s, %w", strings.Join(msgs, "; "), ErrInvalidOption)
}
