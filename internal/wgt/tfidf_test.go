//    InfluenceEngine
//    Copyright: Z Mankow 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package wgt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zmankow1/SeniorThesis/internal/str"
)

func buildcorpus(docs map[string]string) *str.Corpus {
	c := &str.Corpus{Vocabulary: make(map[string]int)}
	for _, id := range []string{"a", "b", "c", "d"} {
		text, ok := docs[id]
		if !ok {
			continue
		}
		tokens := strings.Fields(text)
		c.Docs = append(c.Docs, str.Document{ID: id, Tokens: tokens})
		for _, t := range tokens {
			c.Vocabulary[t]++
		}
		c.TokenTotal += len(tokens)
	}
	return c
}

func TestWeighTooFewDocuments(t *testing.T) {
	c := buildcorpus(map[string]string{"a": "one lonely document"})
	_, err := Weigh(c)
	var ce *str.ConfigError
	require.ErrorAs(t, err, &ce)
}

func TestValidateAsPreflight(t *testing.T) {
	one := buildcorpus(map[string]string{"a": "one lonely document"})
	var ce *str.ConfigError
	require.ErrorAs(t, Validate(one), &ce)

	two := buildcorpus(map[string]string{"a": "ring shadow", "b": "ring gold"})
	assert.NoError(t, Validate(two))
}

func TestUbiquitousTermsWeighLessThanRareOnes(t *testing.T) {
	c := buildcorpus(map[string]string{
		"a": "dragon sword sword quest",
		"b": "dragon shield shield march",
		"c": "dragon banner banner siege",
	})

	w, err := Weigh(c)
	require.NoError(t, err)
	require.Len(t, w, 3)

	// "dragon" is in every document; "sword" only in the first
	assert.Less(t, w[0]["dragon"], w[0]["sword"])
}

func TestWeightsNonNegativeAndSparse(t *testing.T) {
	c := buildcorpus(map[string]string{
		"a": "ring shadow fire",
		"b": "ring mountain gold",
	})

	w, err := Weigh(c)
	require.NoError(t, err)

	for _, v := range w {
		for term, weight := range v {
			assert.Greater(t, weight, 0.0, term)
		}
	}

	// terms absent from a document are absent from its vector
	_, ok := w[0]["mountain"]
	assert.False(t, ok)
}

func TestWeighDeterministic(t *testing.T) {
	c := buildcorpus(map[string]string{
		"a": "ring shadow fire ring",
		"b": "ring mountain gold",
	})

	w1, err := Weigh(c)
	require.NoError(t, err)
	w2, err := Weigh(c)
	require.NoError(t, err)

	assert.Equal(t, w1, w2)
}

func TestCosineSimilarity(t *testing.T) {
	a := str.TermWeightVector{"x": 1, "y": 2}
	b := str.TermWeightVector{"x": 1, "y": 2}
	assert.InDelta(t, 1.0, CosineSimilarity(a, b), 1e-9)

	disjoint := str.TermWeightVector{"z": 3}
	assert.Equal(t, 0.0, CosineSimilarity(a, disjoint))

	assert.Equal(t, 0.0, CosineSimilarity(a, str.TermWeightVector{}))

	// symmetry
	m := str.TermWeightVector{"x": 0.5, "z": 1.5}
	assert.InDelta(t, CosineSimilarity(a, m), CosineSimilarity(m, a), 1e-12)
}
