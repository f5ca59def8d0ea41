//    InfluenceEngine
//    Copyright: Z Mankow 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zmankow1/SeniorThesis/internal/str"
)

func eracorpus() *str.Corpus {
	mk := func(id string, year int, n int) str.Document {
		tokens := make([]string, n)
		for i := range tokens {
			tokens[i] = "word"
		}
		return str.Document{ID: id, Year: year, Tokens: tokens}
	}
	return &str.Corpus{
		Docs: []str.Document{
			mk("hobbit", 1937, 100),
			mk("lotr", 1954, 200),
			mk("shannara", 1977, 150),
			mk("eye", 1990, 120),
			mk("gardens", 1999, 130),
			mk("name", 2007, 140),
		},
		Vocabulary: map[string]int{"word": 840},
	}
}

func TestGroupIntoErasWithBoundaries(t *testing.T) {
	c := eracorpus()

	eras, eraof := GroupIntoEras(c, []int{1960, 2000})
	require.Len(t, eras, 3)

	assert.Equal(t, "1937-1954", eras[0].Label)
	assert.Equal(t, []string{"hobbit", "lotr"}, eras[0].DocIDs)
	assert.Equal(t, 300, eras[0].Tokens)

	assert.Equal(t, "1977-1999", eras[1].Label)
	assert.Equal(t, []string{"eye", "gardens", "shannara"}, eras[1].DocIDs)

	assert.Equal(t, "2007", eras[2].Label)

	assert.Equal(t, eras[0].Label, eraof["hobbit"])
	assert.Equal(t, eras[1].Label, eraof["shannara"])
	assert.Equal(t, eras[2].Label, eraof["name"])
}

func TestGroupIntoErasBoundaryYearGoesLate(t *testing.T) {
	c := &str.Corpus{Docs: []str.Document{
		{ID: "x", Year: 1959, Tokens: []string{"a"}},
		{ID: "y", Year: 1960, Tokens: []string{"a"}},
	}}

	eras, eraof := GroupIntoEras(c, []int{1960})
	require.Len(t, eras, 2)
	assert.NotEqual(t, eraof["x"], eraof["y"])
	assert.Equal(t, "1959", eras[0].Label)
	assert.Equal(t, "1960", eras[1].Label)
}

func TestGroupIntoErasPerDocument(t *testing.T) {
	c := eracorpus()

	eras, eraof := GroupIntoEras(c, nil)
	require.Len(t, eras, len(c.Docs))

	for _, d := range c.Docs {
		assert.Equal(t, d.ID, eraof[d.ID])
	}

	// ordered early to late
	assert.Equal(t, "hobbit", eras[0].Label)
	assert.Equal(t, "name", eras[len(eras)-1].Label)
}

func TestGroupIntoErasEmptyBucketsVanish(t *testing.T) {
	c := &str.Corpus{Docs: []str.Document{
		{ID: "old", Year: 1900, Tokens: []string{"a"}},
		{ID: "new", Year: 2000, Tokens: []string{"a"}},
	}}

	// nothing lives between the cuts
	eras, _ := GroupIntoEras(c, []int{1950, 1960})
	require.Len(t, eras, 2)
}
