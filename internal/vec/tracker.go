//    InfluenceEngine
//    Copyright: Z Mankow 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"errors"
	"fmt"
	"sort"

	"github.com/zmankow1/SeniorThesis/internal/lnch"
	"github.com/zmankow1/SeniorThesis/internal/str"
)

//
// THE DRIFT TRACKER
//

// DriftSet - everything the scorer needs to look up the drift between any two documents' eras
type DriftSet struct {
	Eras    []str.Era
	EraOf   map[string]string         // docID --> era label
	Pairs   map[string]str.DriftScore // PairKey(earlier, later) --> score
	Skipped map[string]string         // PairKey --> reason a pair could not be measured
}

// PairKey - the map key for an ordered era pair
func PairKey(earlier, later string) string {
	return earlier + "|" + later
}

// TrackDrift - group, train, align, measure; thin eras knock out their pairs but never the run
func TrackDrift(c *str.Corpus, cfg *str.CurrentConfiguration, cache EmbeddingCache) (*DriftSet, error) {
	const (
		MSG1 = "drift %s -> %s: mean %.4f over %d shared terms"
		MSG2 = "drift: %d era pairs measured, %d skipped"
		PEEK = "  top drift in %s -> %s: %s"
		NTOP = 5
	)

	eras, eraof := GroupIntoEras(c, cfg.EraBoundaries)

	spaces, skippederas, err := TrainEraEmbeddings(c, eras, cfg, cache)
	if err != nil {
		return nil, err
	}

	out := &DriftSet{
		Eras:    eras,
		EraOf:   eraof,
		Pairs:   make(map[string]str.DriftScore),
		Skipped: make(map[string]string),
	}

	for i := 0; i < len(eras); i++ {
		// a space aligned to itself drifts nowhere
		out.Pairs[PairKey(eras[i].Label, eras[i].Label)] = str.DriftScore{
			EarlierEra: eras[i].Label,
			LaterEra:   eras[i].Label,
			Mean:       0,
		}

		for j := i + 1; j < len(eras); j++ {
			e, l := eras[i].Label, eras[j].Label
			k := PairKey(e, l)

			if r, skip := skippederas[e]; skip {
				out.Skipped[k] = r
				continue
			}
			if r, skip := skippederas[l]; skip {
				out.Skipped[k] = r
				continue
			}

			ds, derr := Drift(spaces[e], spaces[l], e, l, cfg.MinSharedVocab)
			if derr != nil {
				var ide *str.InsufficientDataError
				if errors.As(derr, &ide) {
					out.Skipped[k] = derr.Error()
					lnch.Msg.WARN(derr.Error())
					continue
				}
				return nil, derr
			}

			out.Pairs[k] = ds
			lnch.Msg.FYI(fmt.Sprintf(MSG1, e, l, ds.Mean, ds.Shared))
			lnch.Msg.PEEK(fmt.Sprintf(PEEK, e, l, topdrifters(ds, NTOP)))
		}
	}

	lnch.Msg.NOTE(fmt.Sprintf(MSG2, len(out.Pairs)-len(eras), len(out.Skipped)))
	return out, nil
}

// topdrifters - the terms that moved the most, for the curious
func topdrifters(ds str.DriftScore, n int) string {
	type td struct {
		t string
		d float64
	}
	pairs := make([]td, 0, len(ds.PerTerm))
	for t, d := range ds.PerTerm {
		pairs = append(pairs, td{t, d})
	}
	sort.Slice(pairs, func(a, b int) bool {
		if pairs[a].d != pairs[b].d {
			return pairs[a].d > pairs[b].d
		}
		return pairs[a].t < pairs[b].t
	})
	if n > len(pairs) {
		n = len(pairs)
	}
	out := ""
	for i := 0; i < n; i++ {
		out += fmt.Sprintf("%s (%.3f) ", pairs[i].t, pairs[i].d)
	}
	return out
}
