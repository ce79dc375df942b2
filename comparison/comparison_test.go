package comparison_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simcluster/comparison"
)

func TestEndpointsAndMetrics(t *testing.T) {
	a, b := &comparison.Submission{Name: "a"}, &comparison.Submission{Name: "b"}
	c := &comparison.Comparison{First: a, Second: b, Similarity: 0.4, MaxSimilarity: 0.7}

	first, second := comparison.Endpoints(c)
	require.Same(t, a, first)
	require.Same(t, b, second)
	require.Equal(t, 0.4, comparison.AverageSimilarity(c))
	require.Equal(t, 0.7, comparison.MaximumSimilarity(c))
	require.Equal(t, "a", a.String())
}

func TestParseMetric(t *testing.T) {
	c := &comparison.Comparison{Similarity: 0.1, MaxSimilarity: 0.9}
	cases := []struct {
		in   string
		want float64
	}{
		{"avg", 0.1}, {"Average", 0.1}, {" max ", 0.9}, {"MAXIMUM", 0.9},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			m, err := comparison.ParseMetric(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, m(c))
		})
	}

	_, err := comparison.ParseMetric("median")
	require.ErrorIs(t, err, comparison.ErrUnknownMetric)
}

func TestParseMode(t *testing.T) {
	m, err := comparison.ParseMode("Parallel")
	require.NoError(t, err)
	require.Equal(t, comparison.ModeParallel, m)
	require.Equal(t, "parallel", m.String())

	m, err = comparison.ParseMode("normal")
	require.NoError(t, err)
	require.Equal(t, comparison.ModeNormal, m)
	require.Equal(t, "normal", m.String())

	_, err = comparison.ParseMode("batch")
	require.ErrorIs(t, err, comparison.ErrUnknownMode)
	require.Equal(t, "Mode(9)", comparison.Mode(9).String())
}
