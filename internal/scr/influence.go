//    InfluenceEngine
//    Copyright: Z Mankow 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package scr

import (
	"fmt"
	"math"

	"github.com/zmankow1/SeniorThesis/internal/lnch"
	"github.com/zmankow1/SeniorThesis/internal/str"
	"github.com/zmankow1/SeniorThesis/internal/vec"
	"github.com/zmankow1/SeniorThesis/internal/wgt"
	"gonum.org/v1/gonum/stat"
)

//
// THE INFLUENCE SCORER
//

// Score - combine the three signals into one directional composite per ordered document pair.
// Influence only flows forward in time: source.Year < target.Year, always.
func Score(c *str.Corpus, cfg *str.CurrentConfiguration, runid string,
	tw []str.TermWeightVector, tm *str.TopicModelResult, ds *vec.DriftSet) ([]str.InfluencePair, []str.SkippedPair) {
	const (
		MSG1 = "scored %d directional pairs (%d skipped)"
	)

	w1, w2, w3 := cfg.WeightTermSim, cfg.WeightTopicSim, cfg.WeightDrift
	wsum := w1 + w2 + w3
	if wsum <= 0 {
		// degenerate weights collapse to the plain mean
		w1, w2, w3 = 1, 1, 1
		wsum = 3
	}

	var pairs []str.InfluencePair
	var skipped []str.SkippedPair

	for i := range c.Docs {
		for j := range c.Docs {
			if i == j {
				continue
			}
			src, tgt := &c.Docs[i], &c.Docs[j]

			if src.Year > tgt.Year {
				continue
			}
			if src.Year == tgt.Year {
				if !cfg.YearTieBreak || src.ID >= tgt.ID {
					continue
				}
			}

			drift, reason, ok := driftfor(ds, src.ID, tgt.ID)
			if !ok {
				skipped = append(skipped, str.SkippedPair{
					RunID:    runid,
					SourceID: src.ID,
					TargetID: tgt.ID,
					Reason:   reason,
				})
				continue
			}

			termsim := wgt.CosineSimilarity(tw[i], tw[j])
			topicsim := TopicSimilarity(tm.DocTopics[i], tm.DocTopics[j])
			driftsig := 1 - math.Min(drift, 1)

			composite := (w1*termsim + w2*topicsim + w3*driftsig) / wsum
			composite = clamp01(composite)

			pairs = append(pairs, str.InfluencePair{
				RunID:         runid,
				SourceID:      src.ID,
				TargetID:      tgt.ID,
				SourceYear:    src.Year,
				TargetYear:    tgt.Year,
				TermSim:       termsim,
				TopicSim:      topicsim,
				DriftSignal:   driftsig,
				Composite:     composite,
				LowConfidence: !tm.Converged,
			})
		}
	}

	lnch.Msg.NOTE(fmt.Sprintf(MSG1, len(pairs), len(skipped)))
	return pairs, skipped
}

// driftfor - mean drift between the eras of two documents; false + reason when that era pair was skipped
func driftfor(ds *vec.DriftSet, srcid, tgtid string) (float64, string, bool) {
	e1, e2 := ds.EraOf[srcid], ds.EraOf[tgtid]
	k := vec.PairKey(e1, e2)

	if r, skip := ds.Skipped[k]; skip {
		return 0, r, false
	}
	if d, ok := ds.Pairs[k]; ok {
		return d.Mean, "", true
	}
	// an era pair neither measured nor recorded as skipped should not exist
	return 0, fmt.Sprintf("no drift measurement for era pair '%s'", k), false
}

// TopicSimilarity - 1 - JSD(p,q)/ln2: 1 for identical mixtures, 0 for disjoint ones
func TopicSimilarity(p, q []float64) float64 {
	jsd := stat.JensenShannon(p, q)
	if math.IsNaN(jsd) {
		return 0
	}
	return clamp01(1 - jsd/math.Ln2)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
