//    InfluenceEngine
//    Copyright: Z Mankow 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package rpt

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/zmankow1/SeniorThesis/internal/lnch"
	"github.com/zmankow1/SeniorThesis/internal/str"
	"github.com/zmankow1/SeniorThesis/internal/vv"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//
// CSV OUTPUT
//

// WriteMetricsCSV - influence_metrics.csv: one row per scored pair, strongest composite first
func WriteMetricsCSV(dir string, pairs []str.InfluencePair) (string, error) {
	header := []string{"source", "target", "source_year", "target_year",
		"term_similarity", "topic_similarity", "drift_signal", "composite", "low_confidence"}

	sorted := append([]str.InfluencePair{}, pairs...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Composite != sorted[j].Composite {
			return sorted[i].Composite > sorted[j].Composite
		}
		if sorted[i].SourceID != sorted[j].SourceID {
			return sorted[i].SourceID < sorted[j].SourceID
		}
		return sorted[i].TargetID < sorted[j].TargetID
	})

	rows := make([][]string, 0, len(sorted))
	for _, p := range sorted {
		rows = append(rows, []string{
			p.SourceID, p.TargetID,
			strconv.Itoa(p.SourceYear), strconv.Itoa(p.TargetYear),
			fmtf(p.TermSim), fmtf(p.TopicSim), fmtf(p.DriftSignal), fmtf(p.Composite),
			strconv.FormatBool(p.LowConfidence),
		})
	}

	return writecsv(filepath.Join(dir, vv.METRICSCSV), header, rows)
}

// WriteGraphExport - the node/edge csv shapes the graph-database pipeline ingests
func WriteGraphExport(dir string, c *str.Corpus, pairs []str.InfluencePair) error {
	nh := []string{"id", "title", "author", "year"}
	nrows := make([][]string, 0, len(c.Docs))
	for _, d := range c.Docs {
		nrows = append(nrows, []string{d.ID, d.Title, d.Author, strconv.Itoa(d.Year)})
	}
	if _, err := writecsv(filepath.Join(dir, vv.GRAPHNODESCSV), nh, nrows); err != nil {
		return err
	}

	eh := []string{"source", "target", "weight", "kind"}
	erows := make([][]string, 0, len(pairs))
	for _, p := range pairs {
		erows = append(erows, []string{p.SourceID, p.TargetID, fmtf(p.Composite), "INFLUENCED"})
	}
	_, err := writecsv(filepath.Join(dir, vv.GRAPHEDGESCSV), eh, erows)
	return err
}

func fmtf(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func writecsv(fp string, header []string, rows [][]string) (string, error) {
	const (
		MSG1 = "wrote '%s' (%d rows)"
	)

	f, err := os.Create(fp)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err = w.Write(header); err != nil {
		return "", err
	}
	if err = w.WriteAll(rows); err != nil {
		return "", err
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return "", err
	}

	lnch.Msg.FYI(fmt.Sprintf(MSG1, fp, len(rows)))
	return fp, nil
}

//
// TERMINAL SUMMARY
//

// Summary - the run at a glance, with the strongest claims spelled out
func Summary(c *str.Corpus, tm *str.TopicModelResult, pairs []str.InfluencePair, skipped []str.SkippedPair) {
	const (
		NTOP = 10
		HEAD = "S1influence summaryS0: C2%sC0 works, C2%sC0 tokens, C2%sC0 pairs scored, C2%sC0 skipped"
		TPC  = "topic %d: %s"
		ROW  = "  C1%-24sC0 -> C1%-24sC0  composite C4%.3fC0  (tfidf %.3f | topic %.3f | drift %.3f)%s"
		LOWC = "  C5*C0"
	)

	pr := message.NewPrinter(language.English)

	h := fmt.Sprintf(HEAD, pr.Sprintf("%d", len(c.Docs)), pr.Sprintf("%d", c.TokenTotal),
		pr.Sprintf("%d", len(pairs)), pr.Sprintf("%d", len(skipped)))
	lnch.Msg.MAND(lnch.Msg.ColStyle(h))

	for i, tt := range tm.TopTerms {
		terms := ""
		for j, t := range tt {
			if j > 0 {
				terms += ", "
			}
			terms += t
		}
		lnch.Msg.NOTE(fmt.Sprintf(TPC, i, terms))
	}

	sorted := append([]str.InfluencePair{}, pairs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Composite > sorted[j].Composite })

	n := NTOP
	if n > len(sorted) {
		n = len(sorted)
	}
	for _, p := range sorted[:n] {
		low := ""
		if p.LowConfidence {
			low = LOWC
		}
		s := c.DocByID(p.SourceID)
		t := c.DocByID(p.TargetID)
		lnch.Msg.MAND(lnch.Msg.ColStyle(fmt.Sprintf(ROW,
			fmt.Sprintf("%s (%d)", s.Title, s.Year),
			fmt.Sprintf("%s (%d)", t.Title, t.Year),
			p.Composite, p.TermSim, p.TopicSim, p.DriftSignal, low)))
	}
}
