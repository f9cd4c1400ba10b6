//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package cog

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 0.0, Levenshtein("tulak", "tulak"))
	assert.Equal(t, 5.0, Levenshtein("", "tulak"))
	assert.Equal(t, 1.0, Levenshtein("ŋipen", "nipen"))
	assert.Equal(t, 3.0, Levenshtein("kitten", "sitting"))
}

func TestNormalizedLevenshtein(t *testing.T) {
	assert.Equal(t, 0.0, NormalizedLevenshtein("", ""))
	assert.Equal(t, 1.0, NormalizedLevenshtein("", "ab"))
	assert.InDelta(t, 0.25, NormalizedLevenshtein("bato", "batu"), 1e-12)
}

func TestMeasureByName(t *testing.T) {
	m, err := MeasureByName("levenshtein")
	require.NoError(t, err)
	assert.Equal(t, 1.0, m("abc", "abd"))

	m, err = MeasureByName("normalized")
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, m("abc", "abd"), 1e-12)

	_, err = MeasureByName("phonemic")
	assert.ErrorIs(t, err, ErrUnknownMeasure)
	assert.Equal(t, []string{"levenshtein", "normalized"}, MeasureNames())
}
