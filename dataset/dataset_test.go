package dataset

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

func TestNew(t *testing.T) {
	testData := map[string]struct {
		t        []time.Time
		cols     []Column
		expected *Dataset
		err      error
	}{
		"no columns": {
			err: ErrNoColumns,
		},
		"length mismatch": {
			cols: []Column{
				NumericColumn("a", []float64{1, 2}),
				NumericColumn("b", []float64{1}),
			},
			err: ErrColumnLenMismatch,
		},
		"duplicate column": {
			cols: []Column{
				NumericColumn("a", []float64{1, 2}),
				TextColumn("a", []string{"x", "y"}),
			},
			err: ErrDuplicateColumn,
		},
		"empty name": {
			cols: []Column{NumericColumn("", []float64{1})},
			err:  ErrEmptyColumnName,
		},
		"both kinds": {
			cols: []Column{{Name: "a", Num: []float64{1}, Text: []string{"x"}}},
			err:  ErrColumnKind,
		},
		"neither kind": {
			cols: []Column{{Name: "a"}},
			err:  ErrColumnKind,
		},
		"time length mismatch": {
			t:    []time.Time{time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)},
			cols: []Column{NumericColumn("a", []float64{1, 2})},
			err:  ErrTimeLenMismatch,
		},
		"non increasing time": {
			t: []time.Time{
				time.Date(1970, 1, 2, 0, 0, 0, 0, time.UTC),
				time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			cols: []Column{NumericColumn("a", []float64{1, 2})},
			err:  ErrNonMontonic,
		},
		"valid": {
			t: []time.Time{
				time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(1970, 1, 2, 0, 0, 0, 0, time.UTC),
			},
			cols: []Column{
				NumericColumn("a", []float64{1, 2}),
				TextColumn("b", []string{"x", "y"}),
			},
			expected: &Dataset{
				T: []time.Time{
					time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
					time.Date(1970, 1, 2, 0, 0, 0, 0, time.UTC),
				},
				Columns: []Column{
					{Name: "a", Num: []float64{1, 2}},
					{Name: "b", Text: []string{"x", "y"}},
				},
			},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			ds, err := New(td.t, td.cols...)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.expected, ds)
		})
	}
}

func TestAccessors(t *testing.T) {
	ds, err := New(nil,
		NumericColumn("a", []float64{1, 2, 3}),
		TextColumn("b", []string{"x", "y", "z"}),
	)
	require.Nil(t, err)

	assert.Equal(t, 3, ds.Rows())
	assert.Equal(t, []string{"a", "b"}, ds.Names())
	assert.True(t, ds.IsNumeric("a"))
	assert.False(t, ds.IsNumeric("b"))
	assert.False(t, ds.IsNumeric("c"))

	col, exists := ds.Column("b")
	require.True(t, exists)
	assert.Equal(t, []string{"x", "y", "z"}, col.Text)

	var nilDs *Dataset
	assert.Equal(t, 0, nilDs.Rows())
	assert.Nil(t, nilDs.Names())
	assert.ErrorIs(t, nilDs.Check(), ErrUninitializedTable)
}

func TestCopy(t *testing.T) {
	ds, err := New(
		[]time.Time{
			time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(1970, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		NumericColumn("a", []float64{0, 1}),
		TextColumn("b", []string{"x", "y"}),
	)
	require.Nil(t, err)

	nextDs := ds.Copy()
	require.Equal(t, ds, nextDs)

	ds.Columns[0].Num[0] = 10
	ds.Columns[1].Text[0] = "z"
	ds.T[0] = time.Date(1969, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NotEqual(t, nextDs, ds)
	assert.Equal(t, []float64{0, 1}, nextDs.Columns[0].Num)
	assert.Equal(t, []string{"x", "y"}, nextDs.Columns[1].Text)
}

func TestNewCopiesInput(t *testing.T) {
	vals := []float64{1, 2, 3}
	ds, err := New(nil, NumericColumn("a", vals))
	require.Nil(t, err)

	vals[0] = 100
	assert.Equal(t, []float64{1, 2, 3}, ds.Columns[0].Num)
}

func TestCenterScale(t *testing.T) {
	ds, err := New(nil,
		NumericColumn("a", []float64{1, 2, 3, 4, 5}),
		TextColumn("b", []string{"x", "y", "x", "y", "x"}),
		NumericColumn("c", []float64{10, 20, 10, 20, 40}),
		NumericColumn("d", []float64{7, 7, 7, 7, 7}),
	)
	require.Nil(t, err)

	testData := map[string]struct {
		names []string
		err   error
	}{
		"unknown column":     {names: []string{"z"}, err: ErrUnknownColumn},
		"non numeric column": {names: []string{"b"}, err: ErrNonNumericColumn},
		"numeric columns":    {names: []string{"c", "a"}},
		"repeated column":    {names: []string{"a", "a"}},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res, err := ds.CenterScale(td.names...)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, ds.Names(), res.Names())

			for _, colName := range td.names {
				col, exists := res.Column(colName)
				require.True(t, exists)
				mean, stddev := stat.MeanStdDev(col.Num, nil)
				assert.InDelta(t, 0.0, mean, 1e-9)
				assert.InDelta(t, 1.0, stddev, 1e-9)
			}

			// receiver untouched
			assert.Equal(t, []float64{1, 2, 3, 4, 5}, ds.Columns[0].Num)
			assert.Equal(t, []float64{10, 20, 10, 20, 40}, ds.Columns[2].Num)
		})
	}

	t.Run("zero variance", func(t *testing.T) {
		res, err := ds.CenterScale("d")
		require.Nil(t, err)
		assert.Equal(t, []float64{0, 0, 0, 0, 0}, res.Columns[3].Num)
	})

	t.Run("expected values", func(t *testing.T) {
		res, err := ds.CenterScale("a")
		require.Nil(t, err)
		sd := math.Sqrt(2.5)
		assert.InDeltaSlice(t, []float64{-2 / sd, -1 / sd, 0, 1 / sd, 2 / sd}, res.Columns[0].Num, 1e-9)
		assert.Equal(t, ds.Columns[2], res.Columns[2])
	})
}

func TestMatrix(t *testing.T) {
	ds, err := New(nil,
		NumericColumn("a", []float64{1, 2, 3}),
		TextColumn("b", []string{"x", "y", "z"}),
		NumericColumn("c", []float64{4, 5, 6}),
	)
	require.Nil(t, err)

	x, err := ds.Matrix("c", "a")
	require.Nil(t, err)
	expected := mat.NewDense(3, 2, []float64{4, 1, 5, 2, 6, 3})
	assert.True(t, mat.Equal(expected, x))

	_, err = ds.Matrix("b")
	assert.ErrorIs(t, err, ErrNonNumericColumn)

	_, err = ds.Matrix("z")
	assert.ErrorIs(t, err, ErrUnknownColumn)

	_, err = ds.Matrix()
	assert.ErrorIs(t, err, ErrNoColumns)
}
