package preprocess

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clustergo/clustergo/frame"
)

func customers(t *testing.T) *frame.Frame {
	t.Helper()
	f, err := frame.New(
		frame.NewNumericColumn("age", []float64{20, 30, math.NaN(), 50}),
		frame.NewNumericColumn("income", []float64{15, 15, 40, math.NaN()}),
		frame.NewCategoricalColumn("gender", []string{"Male", "Female", "", "Female"}),
	)
	require.NoError(t, err)
	return f
}

func TestImputer_Mean(t *testing.T) {
	f := customers(t)

	im := NewImputer(ImputeMean)
	out, err := FitTransform(im, f)
	require.NoError(t, err)

	age, err := out.Column("age")
	require.NoError(t, err)
	assert.InDelta(t, (20.0+30+50)/3, age.Floats[2], 1e-9)
	assert.Equal(t, 0, age.MissingCount())

	// Categorical columns fall back to the most frequent value.
	gender, err := out.Column("gender")
	require.NoError(t, err)
	assert.Equal(t, "Female", gender.Strings[2])

	// The source frame is untouched.
	orig, err := f.Column("age")
	require.NoError(t, err)
	assert.True(t, orig.IsMissing(2))
}

func TestImputer_Median(t *testing.T) {
	f, err := frame.New(frame.NewNumericColumn("x", []float64{1, 2, 100, math.NaN()}))
	require.NoError(t, err)

	out, err := FitTransform(NewImputer(ImputeMedian), f)
	require.NoError(t, err)

	x, err := out.Column("x")
	require.NoError(t, err)
	assert.InDelta(t, 2.0, x.Floats[3], 1e-9)
}

func TestImputer_MostFrequent(t *testing.T) {
	f, err := frame.New(frame.NewNumericColumn("x", []float64{5, 5, 7, math.NaN()}))
	require.NoError(t, err)

	out, err := FitTransform(NewImputer(ImputeMostFrequent), f)
	require.NoError(t, err)

	x, err := out.Column("x")
	require.NoError(t, err)
	assert.Equal(t, 5.0, x.Floats[3])
}

func TestImputer_NotFitted(t *testing.T) {
	_, err := NewImputer(ImputeMean).Transform(customers(t))
	assert.ErrorIs(t, err, ErrNotFitted)
}

func TestOneHotEncoder(t *testing.T) {
	f := customers(t)

	enc := NewOneHotEncoder()
	out, err := FitTransform(enc, f)
	require.NoError(t, err)

	// Sorted category order: Female before Male.
	female, err := out.Column("gender=Female")
	require.NoError(t, err)
	male, err := out.Column("gender=Male")
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 1, 0, 1}, female.Floats)
	assert.Equal(t, []float64{1, 0, 0, 0}, male.Floats)

	_, err = out.Column("gender")
	assert.Error(t, err)
}

func TestOneHotEncoder_UnknownCategory(t *testing.T) {
	enc := NewOneHotEncoder("gender")
	require.NoError(t, enc.Fit(customers(t)))

	other, err := frame.New(frame.NewCategoricalColumn("gender", []string{"Other"}))
	require.NoError(t, err)

	_, err = enc.Transform(other)
	var uc *ErrUnknownCategory
	require.ErrorAs(t, err, &uc)
	assert.Equal(t, "gender", uc.Column)
	assert.Equal(t, "Other", uc.Value)
}

func TestOrdinalEncoder(t *testing.T) {
	f := customers(t)

	out, err := FitTransform(NewOrdinalEncoder("gender"), f)
	require.NoError(t, err)

	gender, err := out.Column("gender")
	require.NoError(t, err)
	assert.Equal(t, frame.Numeric, gender.Type)
	assert.Equal(t, 1.0, gender.Floats[0]) // Male
	assert.Equal(t, 0.0, gender.Floats[1]) // Female
	assert.True(t, math.IsNaN(gender.Floats[2]))
}

func TestStandardScaler(t *testing.T) {
	f, err := frame.New(
		frame.NewNumericColumn("x", []float64{2, 4, 6}),
		frame.NewNumericColumn("flat", []float64{5, 5, 5}),
	)
	require.NoError(t, err)

	out, err := FitTransform(NewStandardScaler(), f)
	require.NoError(t, err)

	x, err := out.Column("x")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, x.Floats[0]+x.Floats[2], 1e-9)
	assert.InDelta(t, 0.0, x.Floats[1], 1e-9)

	// Zero variance: centered only.
	flat, err := out.Column("flat")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, flat.Floats)
}

func TestStandardScaler_CarriesFitStatistics(t *testing.T) {
	train, err := frame.New(frame.NewNumericColumn("x", []float64{0, 10}))
	require.NoError(t, err)

	s := NewStandardScaler("x")
	require.NoError(t, s.Fit(train))

	test, err := frame.New(frame.NewNumericColumn("x", []float64{5}))
	require.NoError(t, err)

	out, err := s.Transform(test)
	require.NoError(t, err)

	x, err := out.Column("x")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, x.Floats[0], 1e-9)
}

func TestMinMaxScaler(t *testing.T) {
	f, err := frame.New(
		frame.NewNumericColumn("x", []float64{10, 20, 30}),
		frame.NewNumericColumn("flat", []float64{3, 3, 3}),
	)
	require.NoError(t, err)

	out, err := FitTransform(NewMinMaxScaler(), f)
	require.NoError(t, err)

	x, err := out.Column("x")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1}, x.Floats)

	flat, err := out.Column("flat")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, flat.Floats)
}

func TestPipeline(t *testing.T) {
	f := customers(t)

	p := NewPipeline(
		NewImputer(ImputeMean),
		NewOneHotEncoder(),
		NewStandardScaler("age", "income"),
	)

	out, err := p.FitTransform(f)
	require.NoError(t, err)

	// End to end: fully numeric, no missing values, ready to lower.
	m, err := out.Matrix()
	require.NoError(t, err)
	assert.Equal(t, 4, m.Rows)
	assert.Equal(t, 4, m.Dim) // age, income, gender=Female, gender=Male

	// Fitted pipeline applies to fresh data.
	fresh, err := frame.New(
		frame.NewNumericColumn("age", []float64{40}),
		frame.NewNumericColumn("income", []float64{20}),
		frame.NewCategoricalColumn("gender", []string{"Male"}),
	)
	require.NoError(t, err)

	out2, err := p.Transform(fresh)
	require.NoError(t, err)
	m2, err := out2.Matrix()
	require.NoError(t, err)
	assert.Equal(t, 4, m2.Dim)
}

func TestPipeline_ErrorPropagates(t *testing.T) {
	p := NewPipeline(NewStandardScaler("nope"))
	err := p.Fit(customers(t))
	var nf *frame.ErrColumnNotFound
	assert.ErrorAs(t, err, &nf)
}

func TestImputeStrategyString(t *testing.T) {
	assert.Equal(t, "mean", ImputeMean.String())
	assert.Equal(t, "median", ImputeMedian.String())
	assert.Equal(t, "most_frequent", ImputeMostFrequent.String())
}
