//    InfluenceEngine
//    Copyright: Z Mankow 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"fmt"
	"sort"

	"github.com/zmankow1/SeniorThesis/internal/str"
)

//
// TEMPORAL GROUPING
//

// GroupIntoEras - split the corpus at the boundary years; no boundaries means every work is its own era.
// Returns the eras (ordered early to late) and a docID --> era label map.
func GroupIntoEras(c *str.Corpus, boundaries []int) ([]str.Era, map[string]string) {
	eraof := make(map[string]string, len(c.Docs))

	if len(boundaries) == 0 {
		eras := make([]str.Era, 0, len(c.Docs))
		for _, d := range c.Docs {
			eras = append(eras, str.Era{
				Label:  d.ID,
				From:   d.Year,
				To:     d.Year,
				DocIDs: []string{d.ID},
				Tokens: len(d.Tokens),
			})
			eraof[d.ID] = d.ID
		}
		sortbyfrom(eras)
		return eras, eraof
	}

	bb := append([]int{}, boundaries...)
	sort.Ints(bb)

	// bucket b holds years in [bb[b-1], bb[b]); the first bucket is open on the left, the last on the right
	bucketof := func(y int) int {
		b := 0
		for _, cut := range bb {
			if y >= cut {
				b++
			}
		}
		return b
	}

	buckets := make(map[int][]*str.Document)
	for i := range c.Docs {
		d := &c.Docs[i]
		buckets[bucketof(d.Year)] = append(buckets[bucketof(d.Year)], d)
	}

	var eras []str.Era
	for b := 0; b <= len(bb); b++ {
		docs, ok := buckets[b]
		if !ok {
			continue
		}

		lo, hi := docs[0].Year, docs[0].Year
		tokens := 0
		ids := make([]string, 0, len(docs))
		for _, d := range docs {
			if d.Year < lo {
				lo = d.Year
			}
			if d.Year > hi {
				hi = d.Year
			}
			tokens += len(d.Tokens)
			ids = append(ids, d.ID)
		}
		sort.Strings(ids)

		label := fmt.Sprintf("%d-%d", lo, hi)
		if lo == hi {
			label = fmt.Sprintf("%d", lo)
		}

		for _, id := range ids {
			eraof[id] = label
		}

		eras = append(eras, str.Era{
			Label:  label,
			From:   lo,
			To:     hi,
			DocIDs: ids,
			Tokens: tokens,
		})
	}

	sortbyfrom(eras)
	return eras, eraof
}

func sortbyfrom(eras []str.Era) {
	sort.Slice(eras, func(i, j int) bool {
		if eras[i].From != eras[j].From {
			return eras[i].From < eras[j].From
		}
		return eras[i].Label < eras[j].Label
	})
}
