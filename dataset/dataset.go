// Package dataset holds the tabular input consumed by feature preparation: an ordered set of
// named numeric or text columns with optional chronological timestamps per row.
package dataset

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrNoColumns          = errors.New("dataset has no columns")
	ErrColumnLenMismatch  = errors.New("column has a different length than the dataset")
	ErrDuplicateColumn    = errors.New("duplicate column name")
	ErrEmptyColumnName    = errors.New("column name is empty")
	ErrColumnKind         = errors.New("column must hold exactly one of numeric or text values")
	ErrNonMontonic        = errors.New("time feature is not monotonic")
	ErrUnknownColumn      = errors.New("unknown column")
	ErrNonNumericColumn   = errors.New("column is not numeric")
	ErrTimeLenMismatch    = errors.New("time feature has a different length than observations")
	ErrUninitializedTable = errors.New("uninitialized dataset")
)

// Column is a single named column of a Dataset. Exactly one of Num or Text is set.
type Column struct {
	Name string    `json:"name"`
	Num  []float64 `json:"num,omitempty"`
	Text []string  `json:"text,omitempty"`
}

// NumericColumn returns a numeric column
func NumericColumn(name string, vals []float64) Column {
	return Column{Name: name, Num: vals}
}

// TextColumn returns a text column
func TextColumn(name string, vals []string) Column {
	return Column{Name: name, Text: vals}
}

// IsNumeric reports whether the column holds numeric values
func (c Column) IsNumeric() bool {
	return c.Num != nil && c.Text == nil
}

// Len returns the number of rows in the column
func (c Column) Len() int {
	if c.Num != nil {
		return len(c.Num)
	}
	return len(c.Text)
}

func (c Column) copy() Column {
	res := Column{Name: c.Name}
	if c.Num != nil {
		res.Num = make([]float64, len(c.Num))
		copy(res.Num, c.Num)
	}
	if c.Text != nil {
		res.Text = make([]string, len(c.Text))
		copy(res.Text, c.Text)
	}
	return res
}

// Dataset represents an ordered table of observations. Rows are chronologically ordered. T is
// optional and when set must be strictly increasing with one entry per row.
type Dataset struct {
	T       []time.Time `json:"time,omitempty"`
	Columns []Column    `json:"columns"`
}

// New returns a Dataset for the given timestamps and columns. The input slices are copied.
func New(t []time.Time, cols ...Column) (*Dataset, error) {
	ds := &Dataset{
		T:       t,
		Columns: cols,
	}
	if err := ds.Check(); err != nil {
		return nil, err
	}
	return ds.Copy(), nil
}

// Check verifies the dataset is rectangular with uniquely named, single kind columns and
// monotonic timestamps.
func (ds *Dataset) Check() error {
	if ds == nil {
		return ErrUninitializedTable
	}
	if len(ds.Columns) == 0 {
		return ErrNoColumns
	}

	m := ds.Columns[0].Len()
	seen := make(map[string]struct{}, len(ds.Columns))
	for i, col := range ds.Columns {
		if col.Name == "" {
			return fmt.Errorf("at column %d, %w", i+1, ErrEmptyColumnName)
		}
		if _, exists := seen[col.Name]; exists {
			return fmt.Errorf("%q, %w", col.Name, ErrDuplicateColumn)
		}
		seen[col.Name] = struct{}{}

		if (col.Num == nil) == (col.Text == nil) {
			return fmt.Errorf("%q, %w", col.Name, ErrColumnKind)
		}
		if col.Len() != m {
			return fmt.Errorf(
				"column %q has length of %d, but first column has a length of %d, %w",
				col.Name, col.Len(), m, ErrColumnLenMismatch,
			)
		}
	}

	if ds.T == nil {
		return nil
	}
	if len(ds.T) != m {
		return fmt.Errorf(
			"time feature has length of %d, but columns have a length of %d, %w",
			len(ds.T), m, ErrTimeLenMismatch,
		)
	}
	for i := 1; i < len(ds.T); i++ {
		if !ds.T[i].After(ds.T[i-1]) {
			return fmt.Errorf("non-monotonic at %d, %w", i, ErrNonMontonic)
		}
	}
	return nil
}

// Rows returns the number of observations
func (ds *Dataset) Rows() int {
	if ds == nil || len(ds.Columns) == 0 {
		return 0
	}
	return ds.Columns[0].Len()
}

// Names returns the column names in dataset order
func (ds *Dataset) Names() []string {
	if ds == nil {
		return nil
	}
	names := make([]string, 0, len(ds.Columns))
	for _, col := range ds.Columns {
		names = append(names, col.Name)
	}
	return names
}

func (ds *Dataset) index(name string) int {
	for i, col := range ds.Columns {
		if col.Name == name {
			return i
		}
	}
	return -1
}

// Column returns the named column
func (ds *Dataset) Column(name string) (Column, bool) {
	if ds == nil {
		return Column{}, false
	}
	idx := ds.index(name)
	if idx < 0 {
		return Column{}, false
	}
	return ds.Columns[idx], true
}

// IsNumeric reports whether the named column exists and holds numeric values
func (ds *Dataset) IsNumeric(name string) bool {
	col, exists := ds.Column(name)
	return exists && col.IsNumeric()
}

// Copy returns a deep copy of the dataset
func (ds *Dataset) Copy() *Dataset {
	if ds == nil {
		return nil
	}
	res := &Dataset{
		Columns: make([]Column, len(ds.Columns)),
	}
	if ds.T != nil {
		res.T = make([]time.Time, len(ds.T))
		copy(res.T, ds.T)
	}
	for i, col := range ds.Columns {
		res.Columns[i] = col.copy()
	}
	return res
}

// CenterScale returns a copy of the dataset where each named column is replaced by its z-score
// using the column mean and sample standard deviation. A column with zero standard deviation is
// set to all zeros. Column order is preserved and the receiver is not modified.
func (ds *Dataset) CenterScale(names ...string) (*Dataset, error) {
	res := ds.Copy()
	scaled := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, exists := scaled[name]; exists {
			continue
		}
		scaled[name] = struct{}{}

		idx := res.index(name)
		if idx < 0 {
			return nil, fmt.Errorf("%q, %w", name, ErrUnknownColumn)
		}
		col := res.Columns[idx]
		if !col.IsNumeric() {
			return nil, fmt.Errorf("%q, %w", name, ErrNonNumericColumn)
		}

		mean, stddev := stat.MeanStdDev(col.Num, nil)
		if math.IsNaN(mean) {
			slog.Warn("center scaling column with NaN values", "column", name)
		}
		if stddev == 0 {
			slog.Warn("column has zero variance, centering only", "column", name)
		}
		for i, v := range col.Num {
			if stddev == 0 {
				col.Num[i] = 0.0
				continue
			}
			col.Num[i] = (v - mean) / stddev
		}
	}
	return res, nil
}

// Matrix returns the named numeric columns as an m x n matrix where m is the number of rows
// and n the number of named columns.
func (ds *Dataset) Matrix(names ...string) (*mat.Dense, error) {
	m, n := ds.Rows(), len(names)
	if m == 0 || n == 0 {
		return nil, ErrNoColumns
	}
	x := mat.NewDense(m, n, nil)
	for j, name := range names {
		col, exists := ds.Column(name)
		if !exists {
			return nil, fmt.Errorf("%q, %w", name, ErrUnknownColumn)
		}
		if !col.IsNumeric() {
			return nil, fmt.Errorf("%q, %w", name, ErrNonNumericColumn)
		}
		x.SetCol(j, col.Num)
	}
	return x, nil
}
