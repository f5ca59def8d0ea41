//    InfluenceEngine
//    Copyright: Z Mankow 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package wgt

import (
	"fmt"
	"math"

	"github.com/zmankow1/SeniorThesis/internal/lnch"
	"github.com/zmankow1/SeniorThesis/internal/str"
)

//
// TERM WEIGHTING (tf-idf over the shared vocabulary)
//

// Weigh - one sparse tf-idf vector per document; *str.ConfigError when the corpus is too small to contrast
func Weigh(c *str.Corpus) ([]str.TermWeightVector, error) {
	const (
		MSG1 = "tf-idf: %d documents weighted against %d terms"
	)

	if err := Validate(c); err != nil {
		return nil, err
	}

	idf := InverseDocFrequencies(c)

	out := make([]str.TermWeightVector, len(c.Docs))
	for i, d := range c.Docs {
		counts := make(map[string]int)
		for _, t := range d.Tokens {
			if _, ok := c.Vocabulary[t]; ok {
				counts[t]++
			}
		}

		v := make(str.TermWeightVector, len(counts))
		dl := float64(len(d.Tokens))
		for t, n := range counts {
			tf := float64(n) / dl
			v[t] = tf * idf[t]
		}
		out[i] = v
	}

	lnch.Msg.FYI(fmt.Sprintf(MSG1, len(out), len(idf)))
	return out, nil
}

// Validate - a contrast needs at least two documents; cheap enough for a preflight
func Validate(c *str.Corpus) error {
	if len(c.Docs) < 2 {
		return &str.ConfigError{Setting: "corpus", Reason: fmt.Sprintf("tf-idf needs at least 2 documents, got %d", len(c.Docs))}
	}
	return nil
}

// InverseDocFrequencies - smoothed idf: log((1+N)/(1+df)) + 1; never zero, never negative
func InverseDocFrequencies(c *str.Corpus) map[string]float64 {
	df := make(map[string]int, len(c.Vocabulary))
	for _, d := range c.Docs {
		seen := make(map[string]struct{})
		for _, t := range d.Tokens {
			if _, ok := c.Vocabulary[t]; !ok {
				continue
			}
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			df[t]++
		}
	}

	n := float64(len(c.Docs))
	idf := make(map[string]float64, len(df))
	for t, d := range df {
		idf[t] = math.Log((1+n)/(1+float64(d))) + 1.0
	}
	return idf
}

// CosineSimilarity - cosine between two sparse weight vectors; 0 when either is empty
func CosineSimilarity(a, b str.TermWeightVector) float64 {
	var dot, na, nb float64
	for t, va := range a {
		na += va * va
		if vb, ok := b[t]; ok {
			dot += va * vb
		}
	}
	for _, vb := range b {
		nb += vb * vb
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
