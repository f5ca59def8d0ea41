//    InfluenceEngine
//    Copyright: Z Mankow 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tpc

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/james-bowman/nlp"
	"github.com/zmankow1/SeniorThesis/internal/lnch"
	"github.com/zmankow1/SeniorThesis/internal/str"
	"github.com/zmankow1/SeniorThesis/internal/vv"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

//
// LDA TOPIC MODELING
//

// Model - fit a seeded LDA to the corpus; identical corpus + config must yield identical distributions
func Model(c *str.Corpus, cfg *str.CurrentConfiguration) (*str.TopicModelResult, error) {
	const (
		MSG1 = "lda: %d topics fit over %d documents"
		WRN1 = "lda did not converge inside %d iterations: posterior still moving by %.2e (tolerance %.2e); distributions are best-effort"
	)

	if err := Validate(c, cfg); err != nil {
		return nil, err
	}
	k := cfg.LdaTopics

	corpus := vocabtexts(c)

	// fit twice with the same seed: once at the budget and once a window beyond it;
	// a posterior still in motion between the two marks the run as unconverged
	theta1, _, _, err := fitonce(corpus, k, cfg.LdaIterations, cfg.RandomSeed)
	if err != nil {
		return nil, err
	}
	theta2, phi, vocab, err := fitonce(corpus, k, cfg.LdaIterations+vv.LDACONVWINDOW, cfg.RandomSeed)
	if err != nil {
		return nil, err
	}

	delta := meanabsdiff(theta1, theta2)
	converged := delta <= cfg.ConvergenceTol

	res := &str.TopicModelResult{
		K:          k,
		DocTopics:  doctopicrows(theta2, k, len(c.Docs)),
		TopicTerms: topictermdists(phi, vocab, k),
		Converged:  converged,
		Delta:      delta,
	}
	res.TopTerms = toppertopic(res.TopicTerms, vv.TOPICTOPTERMS)

	if !converged {
		lnch.Msg.WARN(fmt.Sprintf(WRN1, cfg.LdaIterations, delta, cfg.ConvergenceTol))
	}
	lnch.Msg.FYI(fmt.Sprintf(MSG1, k, len(c.Docs)))

	return res, nil
}

// Validate - reject impossible topic settings before any fitting starts; cheap enough for a preflight
func Validate(c *str.Corpus, cfg *str.CurrentConfiguration) error {
	k := cfg.LdaTopics
	if k < 2 || k > vv.LDAMAXTOPICS {
		return &str.ConfigError{Setting: "LdaTopics", Reason: fmt.Sprintf("%d is outside 2-%d", k, vv.LDAMAXTOPICS)}
	}
	if k > len(c.Docs) {
		return &str.ConfigError{Setting: "LdaTopics", Reason: fmt.Sprintf("%d topics requested but only %d documents available", k, len(c.Docs))}
	}
	if k > len(c.Vocabulary) {
		return &str.ConfigError{Setting: "LdaTopics", Reason: fmt.Sprintf("%d topics requested but the vocabulary holds only %d terms", k, len(c.Vocabulary))}
	}
	return nil
}

// vocabtexts - rebuild each document as a string of its in-vocabulary tokens
func vocabtexts(c *str.Corpus) []string {
	out := make([]string, len(c.Docs))
	for i, d := range c.Docs {
		var sb strings.Builder
		sb.Grow(len(d.Tokens) * 8)
		for _, t := range d.Tokens {
			if _, ok := c.Vocabulary[t]; ok {
				sb.WriteString(t)
				sb.WriteString(" ")
			}
		}
		out[i] = strings.TrimSpace(sb.String())
	}
	return out
}

// fitonce - a single seeded, single-process fit; returns docsOverTopics, topicsOverWords, and the vectoriser vocabulary
func fitonce(corpus []string, k int, iter int, seed uint64) (mat.Matrix, mat.Matrix, []string, error) {
	vectoriser := nlp.NewCountVectoriser()

	lda := nlp.NewLatentDirichletAllocation(k)
	lda.Processes = 1
	lda.Iterations = iter
	lda.TransformationPasses = iter
	lda.Rnd = rand.New(rand.NewSource(seed))

	counts, err := vectoriser.FitTransform(corpus...)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("count vectorisation failed: %w", err)
	}

	// the vectoriser emits a map-backed sparse matrix whose nonzeros are stored in map
	// iteration order; the lda's sequential updates are order-sensitive, so the counts
	// must be materialized densely or two same-seed fits diverge
	docsOverTopics, err := lda.FitTransform(mat.DenseCopyOf(counts))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("lda fit failed: %w", err)
	}

	topicsOverWords := lda.Components()

	vocab := make([]string, len(vectoriser.Vocabulary))
	for w, i := range vectoriser.Vocabulary {
		vocab[i] = w
	}

	return docsOverTopics, topicsOverWords, vocab, nil
}

// doctopicrows - column-normalize docsOverTopics (rows = topics, cols = docs) into per-doc rows summing to 1
func doctopicrows(theta mat.Matrix, k int, docs int) [][]float64 {
	out := make([][]float64, docs)
	for d := 0; d < docs; d++ {
		row := make([]float64, k)
		var sum float64
		for t := 0; t < k; t++ {
			row[t] = theta.At(t, d)
			sum += row[t]
		}
		if sum > 0 {
			for t := range row {
				row[t] /= sum
			}
		} else {
			// a document the sampler never touched still needs a valid distribution
			for t := range row {
				row[t] = 1.0 / float64(k)
			}
		}
		out[d] = row
	}
	return out
}

// topictermdists - row-normalize topicsOverWords (rows = topics, cols = vocab) into K term distributions
func topictermdists(phi mat.Matrix, vocab []string, k int) []map[string]float64 {
	out := make([]map[string]float64, k)
	for t := 0; t < k; t++ {
		var sum float64
		for w := range vocab {
			sum += phi.At(t, w)
		}
		dist := make(map[string]float64, len(vocab))
		for w, term := range vocab {
			if sum > 0 {
				dist[term] = phi.At(t, w) / sum
			} else {
				dist[term] = 1.0 / float64(len(vocab))
			}
		}
		out[t] = dist
	}
	return out
}

// toppertopic - the n heaviest terms per topic, for reporting
func toppertopic(dists []map[string]float64, n int) [][]string {
	out := make([][]string, len(dists))
	for i, dist := range dists {
		type tw struct {
			t string
			w float64
		}
		pairs := make([]tw, 0, len(dist))
		for t, w := range dist {
			pairs = append(pairs, tw{t, w})
		}
		sort.Slice(pairs, func(a, b int) bool {
			if pairs[a].w != pairs[b].w {
				return pairs[a].w > pairs[b].w
			}
			return pairs[a].t < pairs[b].t
		})
		nn := n
		if nn > len(pairs) {
			nn = len(pairs)
		}
		top := make([]string, nn)
		for j := 0; j < nn; j++ {
			top[j] = pairs[j].t
		}
		out[i] = top
	}
	return out
}

// meanabsdiff - mean absolute elementwise difference between two equally-shaped matrices
func meanabsdiff(a, b mat.Matrix) float64 {
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	if ra != rb || ca != cb || ra*ca == 0 {
		return math.Inf(1)
	}
	var sum float64
	for i := 0; i < ra; i++ {
		for j := 0; j < ca; j++ {
			sum += math.Abs(a.At(i, j) - b.At(i, j))
		}
	}
	return sum / float64(ra*ca)
}
