//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package cog

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func mustSet(t *testing.T, reflexes ...string) *CognateSet {
	t.Helper()
	codes := make([]string, len(reflexes))
	for i := range codes {
		codes[i] = "lang1234"
	}
	cs, err := New("*tulak", "bite", reflexes, codes)
	require.NoError(t, err)
	return cs
}

func TestNewChecksItsInputs(t *testing.T) {
	_, err := New("", "", nil, nil)
	assert.ErrorIs(t, err, ErrNoProtoform)

	_, err = New("*p", "", []string{"a", "b"}, []string{"x"})
	assert.ErrorIs(t, err, ErrLenMismatch)
}

func TestNewCopiesItsSlices(t *testing.T) {
	reflexes := []string{"abc", "abd"}
	cs, err := New("*p", "", reflexes, []string{"aaaa1111", ""})
	require.NoError(t, err)

	reflexes[0] = "zzz"
	out := cs.Reflexes()
	out[1] = "yyy"
	assert.Equal(t, []string{"abc", "abd"}, cs.Reflexes())
	assert.Equal(t, []string{"aaaa1111", ""}, cs.GlottoCodes())
}

func TestDistanceMatrixAndMean(t *testing.T) {
	tests := []struct {
		name     string
		reflexes []string
		matrix   [][]float64
		mean     float64
	}{
		{"one edit", []string{"abc", "abd"}, [][]float64{{0, 1}, {1, 0}}, 1.0}, // (0+1+1+0)/2
		{"identical", []string{"a", "a", "a"}, [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, 0},
		{"insertion", []string{"a", "ab"}, [][]float64{{0, 1}, {1, 0}}, 1.0},
		{"empty reflex", []string{"", "abc"}, [][]float64{{0, 3}, {3, 0}}, 3.0},
		{"single", []string{"tulak"}, [][]float64{{0}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := mustSet(t, tt.reflexes...)
			dm := cs.DistanceMatrix(Levenshtein)
			assert.Equal(t, tt.matrix, dm.Rows())

			mean, err := cs.MeanDistance(nil)
			require.NoError(t, err)
			assert.InDelta(t, tt.mean, mean, 1e-12)
		})
	}
}

func TestMeanDivisorIsN(t *testing.T) {
	// four reflexes, each pair one apart: 12 off-diagonal ones, so 12/4 and not 12/16 or 12/6
	cs := mustSet(t, "ta", "pa", "ka", "sa")
	mean, err := cs.MeanDistance(Levenshtein)
	require.NoError(t, err)
	assert.Equal(t, 3.0, mean)
}

func TestMeanOnEmptySetFails(t *testing.T) {
	cs, err := New("*p", "", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, cs.NReflexes())

	_, err = cs.MeanDistance(nil)
	assert.ErrorIs(t, err, ErrEmptySet)
	assert.Equal(t, 0, cs.DistanceMatrix(nil).Size())
	assert.Equal(t, "", cs.RenderTable(nil))
}

func TestAsymmetricMeasure(t *testing.T) {
	calls := 0
	lopsided := func(a, b string) float64 {
		calls++
		if len(a) > len(b) {
			return 2
		}
		return 0
	}
	cs := mustSet(t, "a", "ab")
	dm := cs.DistanceMatrix(lopsided)
	assert.Equal(t, 4, calls)
	assert.Equal(t, [][]float64{{0, 0}, {2, 0}}, dm.Rows())
	assert.False(t, dm.IsSymmetric())
	assert.True(t, cs.DistanceMatrix(nil).IsSymmetric())

	mean, err := cs.MeanDistance(lopsided)
	require.NoError(t, err)
	assert.Equal(t, 1.0, mean)
}

func TestRenderTable(t *testing.T) {
	cs := mustSet(t, "tulak", "tulek", "dulak")
	out := cs.RenderTable(nil)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)

	assert.Equal(t, []string{"tulak", "tulek", "dulak"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"tulak", "0", "1", "1"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"tulek", "1", "0", "2"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"dulak", "1", "2", "0"}, strings.Fields(lines[4]))
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "*tulak ‘bite’: 2 reflexes", mustSet(t, "a", "b").Summary())

	cs, err := New("*bahi", "", []string{"bahi"}, []string{"aaaa1111"})
	require.NoError(t, err)
	assert.Equal(t, "*bahi: 1 reflex", cs.Summary())
	assert.True(t, strings.HasPrefix(cs.String(), "*bahi: 1 reflex\n"))
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "2", FormatDistance(2))
	assert.Equal(t, "0.333", FormatDistance(1.0/3.0))
}
