package h5scalar

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToInt32(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		want    int32
		wantErr error
	}{
		{name: "positive", values: []float64{42}, want: 42},
		{name: "negative", values: []float64{-42}, want: -42},
		{name: "upper bound", values: []float64{math.MaxInt32}, want: math.MaxInt32},
		{name: "lower bound", values: []float64{math.MinInt32}, want: math.MinInt32},
		{name: "empty", values: []float64{}, wantErr: ErrNotScalar},
		{name: "two elements", values: []float64{1, 2}, wantErr: ErrNotScalar},
		{name: "fraction", values: []float64{1.5}, wantErr: ErrNotInteger},
		{name: "nan", values: []float64{math.NaN()}, wantErr: ErrNotInteger},
		{name: "inf", values: []float64{math.Inf(1)}, wantErr: ErrNotInteger},
		{name: "above range", values: []float64{math.MaxInt32 + 1}, wantErr: ErrOutOfRange},
		{name: "below range", values: []float64{math.MinInt32 - 1}, wantErr: ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := toInt32(tt.values)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDatatypeClass(t *testing.T) {
	require.Equal(t, "integer", datatypeClass("Dataset: integer (size=4 bytes), scalar, compact"))
	require.Equal(t, "float", datatypeClass("Dataset: float (size=8 bytes), 1D array [1], contiguous"))
	require.Equal(t, "", datatypeClass("unexpected"))
	require.Equal(t, "", datatypeClass("Dataset: integer"))
}

func TestDatatypeSize(t *testing.T) {
	require.Equal(t, 4, datatypeSize("Dataset: integer (size=4 bytes), scalar, compact"))
	require.Equal(t, 1, datatypeSize("Dataset: integer (size=1 bytes), 1D array [1], contiguous"))
	require.Equal(t, 0, datatypeSize("Dataset: integer"))
	require.Equal(t, 0, datatypeSize("Dataset: integer (size=x bytes)"))
}

func TestErrorFormatting(t *testing.T) {
	cause := errors.New("boom")

	err := wrapError(StageResolve, "a/b/data", cause)
	require.EqualError(t, err, `resolve "a/b/data" failed: boom`)
	require.ErrorIs(t, err, cause)

	err = wrapError(StageOpen, "", cause)
	require.EqualError(t, err, "open failed: boom")

	require.NoError(t, wrapError(StageRead, "x", nil))
	require.Equal(t, "stage_9", Stage(9).String())

	_, ok := StageOf(fmt.Errorf("plain: %w", cause))
	require.False(t, ok)
}
