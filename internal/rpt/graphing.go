//    InfluenceEngine
//    Copyright: Z Mankow 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package rpt

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/zmankow1/SeniorThesis/internal/lnch"
	"github.com/zmankow1/SeniorThesis/internal/str"
	"github.com/zmankow1/SeniorThesis/internal/vv"
)

//
// HTML REPORTS (echarts)
//

// InfluenceGraphHTML - force-layout network: nodes are works sized by incoming influence, edges are composites
func InfluenceGraphHTML(dir string, c *str.Corpus, pairs []str.InfluencePair) (string, error) {
	const (
		SERIESNAME = "influence"
		TITLESTR   = "Directional influence network"
		SUBTITLE   = "node size: cumulative incoming composite; edge value: composite score"
		MINEDGE    = 0.05
		BASESYMSZ  = 20.0
		SIZEBOOST  = 18.0
		EDGEFNTSZ  = 9
		MSG1       = "wrote '%s'"
	)

	incoming := make(map[string]float64, len(c.Docs))
	for _, p := range pairs {
		incoming[p.TargetID] += p.Composite
	}

	var gnn []opts.GraphNode
	for _, d := range c.Docs {
		sz := BASESYMSZ + SIZEBOOST*incoming[d.ID]
		gnn = append(gnn, opts.GraphNode{
			Name:       fmt.Sprintf("%s (%d)", d.Title, d.Year),
			Value:      float32(incoming[d.ID]),
			SymbolSize: fmt.Sprintf("%.4f", sz),
		})
	}

	name := func(id string) string {
		d := c.DocByID(id)
		return fmt.Sprintf("%s (%d)", d.Title, d.Year)
	}

	valuelabel := opts.EdgeLabel{Show: true, FontSize: EDGEFNTSZ, Formatter: "{c}"}

	var gll []opts.GraphLink
	for _, p := range pairs {
		if p.Composite < MINEDGE {
			continue
		}
		gll = append(gll, opts.GraphLink{
			Source: name(p.SourceID),
			Target: name(p.TargetID),
			Value:  float32(round3(p.Composite)),
			Label:  &valuelabel,
		})
	}

	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: vv.DEFAULTCHRTWIDTH, Height: vv.DEFAULTCHRTHEIGHT}),
		charts.WithTitleOpts(opts.Title{Title: TITLESTR, Subtitle: SUBTITLE}),
	)

	graph.AddSeries(SERIESNAME, gnn, gll,
		charts.WithLabelOpts(
			opts.Label{Show: true, Position: "right"},
		),
		charts.WithLineStyleOpts(
			opts.LineStyle{Curveness: 0.15},
		),
		charts.WithGraphChartOpts(
			opts.GraphChart{
				Layout:             "force",
				Roam:               true,
				EdgeSymbol:         []string{"none", "arrow"},
				FocusNodeAdjacency: true,
				Force: &opts.GraphForce{
					Repulsion:  2500,
					Gravity:    0.12,
					EdgeLength: 120,
				},
			},
		),
	)

	fp := filepath.Join(dir, vv.INFLUENCEGRAPHHTML)
	if err := renderpage(fp, graph); err != nil {
		return "", err
	}
	lnch.Msg.FYI(fmt.Sprintf(MSG1, fp))
	return fp, nil
}

func renderpage(fp string, chart components.Charter) error {
	page := components.NewPage()
	page.AddCharts(chart)

	f, err := os.Create(fp)
	if err != nil {
		return err
	}
	defer f.Close()

	return page.Render(f)
}

func round3(v float64) float64 {
	return float64(int(v*1000)) / 1000
}
