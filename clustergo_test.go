package clustergo

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clustergo/clustergo/distance"
	"github.com/clustergo/clustergo/frame"
	"github.com/clustergo/clustergo/kmeans"
)

// mallFrame builds a small customer table with two obvious segments:
// young low spenders and older high spenders, plus a missing cell and a
// categorical column.
func mallFrame(t *testing.T) *frame.Frame {
	t.Helper()
	f, err := frame.New(
		frame.NewNumericColumn("age", []float64{19, 21, 20, 60, 62, 61}),
		frame.NewNumericColumn("score", []float64{10, 12, math.NaN(), 90, 88, 91}),
		frame.NewCategoricalColumn("gender", []string{"Male", "Female", "Male", "Female", "Male", "Female"}),
	)
	require.NoError(t, err)
	return f
}

func TestSegmenter_Fit(t *testing.T) {
	ctx := context.Background()
	seg := New(WithSeed(1), WithRestarts(5))

	result, err := seg.Fit(ctx, mallFrame(t), []string{"age", "score"}, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, result.K)
	assert.Len(t, result.Labels, 6)
	assert.Equal(t, []string{"age", "score"}, result.Features)
	assert.ElementsMatch(t, []int{3, 3}, result.Sizes)

	// The two age/score groups separate.
	assert.Equal(t, result.Labels[0], result.Labels[1])
	assert.Equal(t, result.Labels[3], result.Labels[4])
	assert.NotEqual(t, result.Labels[0], result.Labels[3])

	// Default projection: 2 components, one coordinate row per input row.
	require.NotNil(t, result.Projection)
	assert.Equal(t, 6, result.Projection.Rows)
	assert.Equal(t, 2, result.Projection.Dim)
	assert.Len(t, result.VarianceRatio, 2)
}

func TestSegmenter_FitWithCategorical(t *testing.T) {
	ctx := context.Background()
	seg := New(WithSeed(1), WithRestarts(5))

	result, err := seg.Fit(ctx, mallFrame(t), nil, 2)
	require.NoError(t, err)

	// age, score, gender=Female, gender=Male.
	assert.Equal(t, 4, result.Dim)
	assert.Contains(t, result.Features, "gender=Female")
	assert.Contains(t, result.Features, "gender=Male")
}

func TestSegmenter_FitOrdinalNoProjection(t *testing.T) {
	ctx := context.Background()
	seg := New(WithSeed(1), WithEncoder(EncoderOrdinal), WithProjection(0))

	result, err := seg.Fit(ctx, mallFrame(t), nil, 2)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Dim)
	assert.Nil(t, result.Projection)
}

func TestSegmenter_FitCosineMetric(t *testing.T) {
	ctx := context.Background()

	_, err := New(WithSeed(1), WithMetric(distance.MetricCosine), WithScaler(ScalerNone)).
		Fit(ctx, mallFrame(t), []string{"age", "score"}, 2)
	require.NoError(t, err)

	// Dot product is a similarity, not a distance; the engine rejects it.
	_, err = New(WithMetric(distance.MetricDot)).Fit(ctx, mallFrame(t), nil, 2)
	var ia *ErrInvalidArgument
	require.ErrorAs(t, err, &ia)
	assert.Equal(t, "metric", ia.Arg)
}

func TestSegmenter_FitDeterministic(t *testing.T) {
	ctx := context.Background()

	a, err := New(WithSeed(9)).Fit(ctx, mallFrame(t), nil, 3)
	require.NoError(t, err)
	b, err := New(WithSeed(9), WithParallel(true)).Fit(ctx, mallFrame(t), nil, 3)
	require.NoError(t, err)

	assert.Equal(t, a.Labels, b.Labels)
	assert.Equal(t, a.Inertia, b.Inertia)
}

func TestSegmenter_FitErrors(t *testing.T) {
	ctx := context.Background()
	seg := New()

	_, err := seg.Fit(ctx, nil, nil, 2)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = seg.Fit(ctx, mallFrame(t), []string{"nope"}, 2)
	var bf *ErrBadFeature
	require.ErrorAs(t, err, &bf)
	assert.Equal(t, "nope", bf.Column)

	_, err = seg.Fit(ctx, mallFrame(t), nil, 0)
	var ia *ErrInvalidArgument
	require.ErrorAs(t, err, &ia)
	assert.Equal(t, "k", ia.Arg)
	assert.NotNil(t, errors.Unwrap(ia))
}

func TestSegmenter_SweepK(t *testing.T) {
	ctx := context.Background()
	seg := New(WithSeed(1), WithRestarts(5))

	curve, err := seg.SweepK(ctx, mallFrame(t), []string{"age", "score"}, 1, 4)
	require.NoError(t, err)
	require.Len(t, curve, 4)

	for i := 1; i < len(curve); i++ {
		assert.LessOrEqual(t, curve[i].Inertia, curve[i-1].Inertia)
	}

	k, ok := curve.Knee()
	require.True(t, ok)
	assert.Equal(t, 2, k)
}

func TestSegmenter_Metrics(t *testing.T) {
	ctx := context.Background()
	mc := &BasicMetricsCollector{}
	seg := New(WithSeed(1), WithMetricsCollector(mc))

	_, err := seg.Fit(ctx, mallFrame(t), nil, 2)
	require.NoError(t, err)
	_, err = seg.Fit(ctx, nil, nil, 2)
	require.Error(t, err)
	_, err = seg.SweepK(ctx, mallFrame(t), nil, 1, 3)
	require.NoError(t, err)

	assert.Equal(t, int64(2), mc.FitCount.Load())
	assert.Equal(t, int64(1), mc.FitErrors.Load())
	assert.Equal(t, int64(1), mc.SweepCount.Load())
	assert.Equal(t, int64(0), mc.SweepErrors.Load())
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))

	err := translateError(kmeans.ErrEmptyInput)
	assert.ErrorIs(t, err, ErrEmptyInput)

	err = translateError(&kmeans.ErrInvalidArgument{Arg: "k", Reason: "must be positive"})
	var ia *ErrInvalidArgument
	require.ErrorAs(t, err, &ia)
	assert.Equal(t, "k", ia.Arg)

	err = translateError(&frame.ErrNotNumeric{Column: "gender"})
	var bf *ErrBadFeature
	require.ErrorAs(t, err, &bf)
	assert.Equal(t, "gender", bf.Column)

	plain := errors.New("boom")
	assert.Equal(t, plain, translateError(plain))
}
