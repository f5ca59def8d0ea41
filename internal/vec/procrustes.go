//    InfluenceEngine
//    Copyright: Z Mankow 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"fmt"

	"github.com/zmankow1/SeniorThesis/internal/gen"
	"github.com/zmankow1/SeniorThesis/internal/str"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//
// ORTHOGONAL PROCRUSTES ALIGNMENT + DRIFT
//

// Two embedding spaces trained separately share no coordinate system: the later
// space MUST be rotated onto the earlier one before any distance means anything.

// SharedTerms - the terms present in both spaces, in a fixed order
func SharedTerms(a, b map[string][]float64) []string {
	return gen.Intersection(gen.StringMapKeysIntoSlice(a), gen.SortedMapKeys(b))
}

// matrixfor - stack the vectors of the given terms into rows
func matrixfor(terms []string, space map[string][]float64) *mat.Dense {
	dim := len(space[terms[0]])
	m := mat.NewDense(len(terms), dim, nil)
	for i, t := range terms {
		m.SetRow(i, space[t])
	}
	return m
}

// orthogonalrotation - solve min ||BQ - A||_F over orthogonal Q: svd(BᵀA) = UΣVᵀ gives Q = UVᵀ
func orthogonalrotation(a, b *mat.Dense) (*mat.Dense, error) {
	var m mat.Dense
	m.Mul(b.T(), a)

	var svd mat.SVD
	if ok := svd.Factorize(&m, mat.SVDThin); !ok {
		return nil, fmt.Errorf("svd failed to factorize the %dx%d cross-covariance", m.RawMatrix().Rows, m.RawMatrix().Cols)
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	var q mat.Dense
	q.Mul(&u, v.T())
	return &q, nil
}

// Drift - align the later space onto the earlier one, then take per-term cosine distances over the shared vocabulary
func Drift(earlier, later map[string][]float64, labelE, labelL string, minshared int) (str.DriftScore, error) {
	ds := str.DriftScore{EarlierEra: labelE, LaterEra: labelL}

	shared := SharedTerms(earlier, later)
	if len(shared) < minshared {
		return ds, &str.InsufficientDataError{
			Era:    fmt.Sprintf("%s/%s shared vocabulary", labelE, labelL),
			Have:   len(shared),
			Needed: minshared,
		}
	}

	a := matrixfor(shared, earlier)
	b := matrixfor(shared, later)

	q, err := orthogonalrotation(a, b)
	if err != nil {
		return ds, err
	}

	var aligned mat.Dense
	aligned.Mul(b, q)

	// rows are unit vectors and rotation preserves norms, so cos = dot
	perterm := make(map[string]float64, len(shared))
	var sum float64
	for i, t := range shared {
		d := 1 - floats.Dot(a.RawRowView(i), aligned.RawRowView(i))
		if d < 0 {
			d = 0
		}
		perterm[t] = d
		sum += d
	}

	ds.PerTerm = perterm
	ds.Shared = len(shared)
	ds.Mean = sum / float64(len(shared))
	return ds, nil
}
