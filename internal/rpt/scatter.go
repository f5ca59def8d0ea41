//    InfluenceEngine
//    Copyright: Z Mankow 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package rpt

import (
	"fmt"
	"path/filepath"

	"github.com/danaugrs/go-tsne/tsne"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/zmankow1/SeniorThesis/internal/lnch"
	"github.com/zmankow1/SeniorThesis/internal/str"
	"github.com/zmankow1/SeniorThesis/internal/vv"
	"gonum.org/v1/gonum/mat"
)

//
// T-SNE SCATTER OF DOCUMENT TOPIC MIXTURES
//

// TopicScatterHTML - project each document's topic mixture to 2d and color by dominant topic
func TopicScatterHTML(dir string, c *str.Corpus, tm *str.TopicModelResult) (string, error) {
	const (
		TITLESTR = "Document topic mixtures (t-sne projection)"
		SUBTITLE = "series = dominant topic"
		VERBOSE  = false
		MSG1     = "wrote '%s'"
	)

	docs := len(tm.DocTopics)
	k := tm.K

	dd := make([]float64, 0, docs*k)
	for _, row := range tm.DocTopics {
		dd = append(dd, row...)
	}
	wv := mat.NewDense(docs, k, dd)

	t := tsne.NewTSNE(2, vv.TSNEPERPLEXITY, vv.TSNELEARNINGRT, vv.TSNEMAXITER, VERBOSE)
	t.EmbedData(wv, nil)

	// one series per dominant topic
	series := make(map[int][]opts.ScatterData, k)
	for d := 0; d < docs; d++ {
		winner := 0
		max := float64(0)
		for topic := 0; topic < k; topic++ {
			if tm.DocTopics[d][topic] > max {
				winner = topic
				max = tm.DocTopics[d][topic]
			}
		}
		series[winner] = append(series[winner], opts.ScatterData{
			Name:       fmt.Sprintf("%s (%d)", c.Docs[d].Title, c.Docs[d].Year),
			Value:      []interface{}{t.Y.At(d, 0), t.Y.At(d, 1)},
			Symbol:     "circle",
			SymbolSize: 14,
		})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: vv.DEFAULTCHRTWIDTH, Height: vv.DEFAULTCHRTHEIGHT}),
		charts.WithTitleOpts(opts.Title{Title: TITLESTR, Subtitle: SUBTITLE}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value"}),
	)

	for topic := 0; topic < k; topic++ {
		if len(series[topic]) == 0 {
			continue
		}
		scatter.AddSeries(fmt.Sprintf("topic %d", topic), series[topic])
	}

	fp := filepath.Join(dir, vv.TOPICSCATTERHTML)
	if err := renderpage(fp, scatter); err != nil {
		return "", err
	}
	lnch.Msg.FYI(fmt.Sprintf(MSG1, fp))
	return fp, nil
}
