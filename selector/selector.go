// Package selector resolves column selectors given either as column names or as 1-based column
// indices into the list of column names they refer to.
package selector

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrOutOfRange  = errors.New("column index out of range")
	ErrUnknownName = errors.New("column name not found")
	ErrInvalidType = errors.New("selector entry is neither a column name nor a column index")
)

// Selector identifies a subset of a dataset's columns. It is implemented by Names and Indices.
type Selector interface {
	Len() int
	resolve(columnNames []string) ([]string, error)
}

// Names selects columns by name
type Names []string

// Len returns the number of selected entries
func (n Names) Len() int {
	return len(n)
}

func (n Names) resolve(columnNames []string) ([]string, error) {
	known := make(map[string]struct{}, len(columnNames))
	for _, name := range columnNames {
		known[name] = struct{}{}
	}

	var missing []string
	for _, name := range n {
		if _, exists := known[name]; !exists {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("columns %q, %w", missing, ErrUnknownName)
	}

	res := make([]string, len(n))
	copy(res, n)
	return res, nil
}

// Indices selects columns by their 1-based position
type Indices []int

// Len returns the number of selected entries
func (idx Indices) Len() int {
	return len(idx)
}

func (idx Indices) resolve(columnNames []string) ([]string, error) {
	var outOfRange []int
	for _, i := range idx {
		if i < 1 || i > len(columnNames) {
			outOfRange = append(outOfRange, i)
		}
	}
	if len(outOfRange) > 0 {
		return nil, fmt.Errorf(
			"indices %v not within [1, %d], %w",
			outOfRange, len(columnNames), ErrOutOfRange,
		)
	}

	res := make([]string, 0, len(idx))
	for _, i := range idx {
		res = append(res, columnNames[i-1])
	}
	return res, nil
}

// Resolve maps the selector onto columnNames preserving the caller's ordering. Repeated entries
// are kept. A nil or empty selector resolves to nil.
func Resolve(s Selector, columnNames []string) ([]string, error) {
	if s == nil || s.Len() == 0 {
		return nil, nil
	}
	return s.resolve(columnNames)
}

// FromValues builds a selector from loosely typed values such as decoded JSON. All entries must
// be strings, or all entries must be integral numbers.
func FromValues(vals []any) (Selector, error) {
	if len(vals) == 0 {
		return nil, nil
	}

	switch vals[0].(type) {
	case string:
		names := make(Names, 0, len(vals))
		for i, v := range vals {
			name, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("entry %d (%v) in a name selector, %w", i+1, v, ErrInvalidType)
			}
			names = append(names, name)
		}
		return names, nil
	default:
		indices := make(Indices, 0, len(vals))
		for i, v := range vals {
			idx, ok := toIndex(v)
			if !ok {
				return nil, fmt.Errorf("entry %d (%v), %w", i+1, v, ErrInvalidType)
			}
			indices = append(indices, idx)
		}
		return indices, nil
	}
}

func toIndex(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case uint64:
		return int(val), true
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) || val != math.Trunc(val) {
			return 0, false
		}
		return int(val), true
	default:
		return 0, false
	}
}
