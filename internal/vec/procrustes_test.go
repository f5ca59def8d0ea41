//    InfluenceEngine
//    Copyright: Z Mankow 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zmankow1/SeniorThesis/internal/str"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// synthspace - deterministic unit vectors for n terms
func synthspace(n int, dim int, seed uint64) map[string][]float64 {
	rnd := rand.New(rand.NewSource(seed))
	out := make(map[string][]float64, n)
	for i := 0; i < n; i++ {
		v := make([]float64, dim)
		for d := range v {
			v[d] = rnd.Float64()*2 - 1
		}
		floats.Scale(1/floats.Norm(v, 2), v)
		out[fmt.Sprintf("term%02d", i)] = v
	}
	return out
}

// rotate - apply a plane rotation in dims (0,1) to every vector
func rotate(space map[string][]float64, theta float64) map[string][]float64 {
	out := make(map[string][]float64, len(space))
	for t, v := range space {
		r := append([]float64{}, v...)
		r[0] = v[0]*math.Cos(theta) - v[1]*math.Sin(theta)
		r[1] = v[0]*math.Sin(theta) + v[1]*math.Cos(theta)
		out[t] = r
	}
	return out
}

func TestDriftSelfAlignmentIsZero(t *testing.T) {
	space := synthspace(40, 10, 7)

	ds, err := Drift(space, space, "e1", "e1", 10)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, ds.Mean, 1e-9)
	for term, d := range ds.PerTerm {
		assert.InDelta(t, 0.0, d, 1e-9, term)
	}
	assert.Equal(t, 40, ds.Shared)
}

func TestDriftRecoversARotatedSpace(t *testing.T) {
	// a pure rotation is exactly what the alignment must undo
	space := synthspace(40, 10, 11)
	rotated := rotate(space, math.Pi/3)

	ds, err := Drift(space, rotated, "e1", "e2", 10)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, ds.Mean, 1e-9)
}

func TestDriftWithoutAlignmentWouldBeWrong(t *testing.T) {
	// sanity: the rotation we align away is NOT a no-op in raw coordinates
	space := synthspace(40, 10, 13)
	rotated := rotate(space, math.Pi/3)

	raw := 0.0
	for term, v := range space {
		raw += 1 - floats.Dot(v, rotated[term])
	}
	raw /= float64(len(space))
	assert.Greater(t, raw, 0.05)
}

func TestDriftDetectsMovedTerms(t *testing.T) {
	space := synthspace(40, 10, 17)

	moved := make(map[string][]float64, len(space))
	for term, v := range space {
		moved[term] = append([]float64{}, v...)
	}
	// scramble one term hard
	flipped := append([]float64{}, space["term00"]...)
	floats.Scale(-1, flipped)
	moved["term00"] = flipped

	ds, err := Drift(space, moved, "e1", "e2", 10)
	require.NoError(t, err)

	assert.Greater(t, ds.PerTerm["term00"], ds.PerTerm["term01"])
	assert.Greater(t, ds.Mean, 0.0)
}

func TestDriftInsufficientSharedVocabulary(t *testing.T) {
	a := synthspace(5, 10, 19)
	b := synthspace(5, 10, 19)

	_, err := Drift(a, b, "e1", "e2", 25)
	var ide *str.InsufficientDataError
	require.ErrorAs(t, err, &ide)
	assert.Equal(t, 5, ide.Have)
	assert.Equal(t, 25, ide.Needed)
}

func TestSharedTermsOrderedAndIntersected(t *testing.T) {
	a := map[string][]float64{"zeta": {1}, "alpha": {1}, "mu": {1}}
	b := map[string][]float64{"mu": {1}, "alpha": {1}, "omitted": {1}}
	assert.Equal(t, []string{"alpha", "mu"}, SharedTerms(a, b))
}
