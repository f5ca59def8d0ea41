//    InfluenceEngine
//    Copyright: Z Mankow 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"bytes"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/e-gun/wego/pkg/embedding"
	"github.com/e-gun/wego/pkg/model/modelutil/vector"
	"github.com/e-gun/wego/pkg/model/word2vec"
	"github.com/e-gun/wego/pkg/search"
	"github.com/zmankow1/SeniorThesis/internal/lnch"
	"github.com/zmankow1/SeniorThesis/internal/str"
	"github.com/zmankow1/SeniorThesis/internal/vv"
	"gonum.org/v1/gonum/floats"
)

//
// PER-ERA WORD EMBEDDINGS
//

// EmbeddingCache - fingerprinted storage so a rerun does not retrain unchanged eras
type EmbeddingCache interface {
	Check(fp string) bool
	Fetch(fp string) (embedding.Embeddings, error)
	Add(fp string, embs embedding.Embeddings) error
}

// w2voptions - skipgram + hierarchical softmax; novel-scale corpora want a smaller Dim than a whole literature
func w2voptions(cfg *str.CurrentConfiguration) word2vec.Options {
	return word2vec.Options{
		BatchSize:          1024,
		Dim:                cfg.VectorDim,
		DocInMemory:        true,
		Goroutines:         cfg.WorkerCount,
		Initlr:             0.025,
		Iter:               cfg.VectorIter,
		LogBatch:           100000,
		MaxCount:           -1,
		MaxDepth:           150,
		MinCount:           cfg.VectorMinCount,
		MinLR:              0.0000025,
		ModelType:          "skipgram",
		NegativeSampleSize: 5,
		OptimizerType:      "hs",
		SubsampleThreshold: 0.001,
		ToLower:            false,
		UpdateLRBatch:      100000,
		Verbose:            false,
		Window:             cfg.VectorWindow,
	}
}

// EraFingerprint - md5 of the era membership plus the training options; either changing invalidates the cache
func EraFingerprint(era str.Era, opts word2vec.Options) string {
	f1, e1 := json.Marshal(era.DocIDs)
	f2, e2 := json.Marshal(opts)
	if e1 != nil || e2 != nil {
		// can only happen if the structs become unmarshalable
		return fmt.Sprintf("%x", md5.Sum([]byte(era.Label)))
	}
	return fmt.Sprintf("%x", md5.Sum(append(f1, f2...)))
}

// buildtextblock - one long string of an era's token streams for the trainer
func buildtextblock(c *str.Corpus, era str.Era) string {
	var sb strings.Builder
	sb.Grow(era.Tokens * 8)
	for _, id := range era.DocIDs {
		d := c.DocByID(id)
		if d == nil {
			continue
		}
		for _, t := range d.Tokens {
			sb.WriteString(t)
			sb.WriteString(" ")
		}
	}
	return strings.TrimSpace(sb.String())
}

// TrainEraEmbeddings - one vector space per era, keyed by era label; too-thin eras are skipped with the reason recorded
func TrainEraEmbeddings(c *str.Corpus, eras []str.Era, cfg *str.CurrentConfiguration, cache EmbeddingCache) (map[string]map[string][]float64, map[string]string, error) {
	const (
		MSG1 = "era '%s': trained %d vectors"
		MSG2 = "era '%s': fetched %d cached vectors"
		WRN1 = "era '%s' skipped: %s"
	)

	opts := w2voptions(cfg)
	spaces := make(map[string]map[string][]float64, len(eras))
	skipped := make(map[string]string)

	for _, era := range eras {
		if era.Tokens < cfg.MinEraTokens {
			e := &str.InsufficientDataError{Era: era.Label, Have: era.Tokens, Needed: cfg.MinEraTokens}
			skipped[era.Label] = e.Error()
			lnch.Msg.WARN(fmt.Sprintf(WRN1, era.Label, e.Error()))
			continue
		}

		fp := EraFingerprint(era, opts)

		var embs embedding.Embeddings
		var err error
		if cache != nil && cache.Check(fp) {
			embs, err = cache.Fetch(fp)
			if err != nil {
				return nil, nil, err
			}
			lnch.Msg.PEEK(fmt.Sprintf(MSG2, era.Label, len(embs)))
		} else {
			embs, err = trainonce(buildtextblock(c, era), opts)
			if err != nil {
				return nil, nil, fmt.Errorf("embedding training failed for era '%s': %w", era.Label, err)
			}
			if cache != nil {
				if err = cache.Add(fp, embs); err != nil {
					return nil, nil, err
				}
			}
			lnch.Msg.PEEK(fmt.Sprintf(MSG1, era.Label, len(embs)))
		}

		if cfg.LogLevel >= 5 {
			logneighbors(era.Label, embs, c)
		}

		spaces[era.Label] = vectormap(embs, c.Vocabulary)
	}

	return spaces, skipped, nil
}

// logneighbors - nearest neighbors of the corpus's heaviest term, per era; a quick sanity check on the training
func logneighbors(label string, embs embedding.Embeddings, c *str.Corpus) {
	const (
		TMPL = "era '%s' neighbors of '%s': %s"
	)

	top := ""
	max := 0
	for t, n := range c.Vocabulary {
		if n > max || (n == max && t < top) {
			top = t
			max = n
		}
	}

	nn, err := Neighbors(embs, top, vv.VECTORNEIGHB)
	if err != nil {
		return
	}

	var sb strings.Builder
	for _, n := range nn {
		sb.WriteString(fmt.Sprintf("%s (%.3f) ", n.Word, n.Similarity))
	}
	lnch.Msg.TMI(fmt.Sprintf(TMPL, label, top, strings.TrimSpace(sb.String())))
}

// trainonce - word2vec train/save/load round-trip through a buffer; the disk is never touched
func trainonce(thetext string, opts word2vec.Options) (embedding.Embeddings, error) {
	vmodel, err := word2vec.NewForOptions(opts)
	if err != nil {
		return nil, err
	}

	// input for word2vec.Train() is 'io.ReadSeeker'
	b := bytes.NewReader([]byte(thetext))
	if err = vmodel.Train(b); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := io.Writer(&buf)
	if err = vmodel.Save(w, vector.Agg); err != nil {
		return nil, err
	}

	r := io.Reader(&buf)
	embs, err := embedding.Load(r)
	if err != nil {
		return nil, err
	}

	return embs, nil
}

// vectormap - keep only vocabulary terms and L2-normalize each vector
func vectormap(embs embedding.Embeddings, vocab map[string]int) map[string][]float64 {
	out := make(map[string][]float64, len(embs))
	for _, e := range embs {
		if _, ok := vocab[e.Word]; !ok {
			continue
		}
		v := append([]float64{}, e.Vector...)
		n := floats.Norm(v, 2)
		if n == 0 {
			continue
		}
		floats.Scale(1/n, v)
		out[e.Word] = v
	}
	return out
}

// Neighbors - nearest terms to a word inside one trained space; reporting only
func Neighbors(embs embedding.Embeddings, word string, n int) (search.Neighbors, error) {
	searcher, err := search.New(embs...)
	if err != nil {
		return nil, err
	}
	return searcher.SearchInternal(word, n)
}
