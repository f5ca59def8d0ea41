//    InfluenceEngine
//    Copyright: Z Mankow 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package rpt

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zmankow1/SeniorThesis/internal/str"
	"github.com/zmankow1/SeniorThesis/internal/vv"
)

func reportfixture() (*str.Corpus, []str.InfluencePair) {
	c := &str.Corpus{
		Docs: []str.Document{
			{ID: "lotr", Title: "The Lord of the Rings", Author: "J. R. R. Tolkien", Year: 1954},
			{ID: "shannara", Title: "The Sword of Shannara", Author: "Terry Brooks", Year: 1977},
			{ID: "name", Title: "The Name of the Wind", Author: "Patrick Rothfuss", Year: 2007},
		},
	}
	pairs := []str.InfluencePair{
		{RunID: "r", SourceID: "lotr", TargetID: "name", SourceYear: 1954, TargetYear: 2007,
			TermSim: 0.2, TopicSim: 0.3, DriftSignal: 0.5, Composite: 0.31},
		{RunID: "r", SourceID: "lotr", TargetID: "shannara", SourceYear: 1954, TargetYear: 1977,
			TermSim: 0.8, TopicSim: 0.7, DriftSignal: 0.9, Composite: 0.79},
	}
	return c, pairs
}

func readcsv(t *testing.T, fp string) [][]string {
	t.Helper()
	f, err := os.Open(fp)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteMetricsCSV(t *testing.T) {
	_, pairs := reportfixture()
	dir := t.TempDir()

	fp, err := WriteMetricsCSV(dir, pairs)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, vv.METRICSCSV), fp)

	rows := readcsv(t, fp)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"source", "target", "source_year", "target_year",
		"term_similarity", "topic_similarity", "drift_signal", "composite", "low_confidence"}, rows[0])

	// strongest composite first
	assert.Equal(t, "shannara", rows[1][1])
	assert.Equal(t, "0.790000", rows[1][7])
	assert.Equal(t, "false", rows[1][8])
}

func TestWriteGraphExport(t *testing.T) {
	c, pairs := reportfixture()
	dir := t.TempDir()

	require.NoError(t, WriteGraphExport(dir, c, pairs))

	nodes := readcsv(t, filepath.Join(dir, vv.GRAPHNODESCSV))
	require.Len(t, nodes, 4)
	assert.Equal(t, []string{"id", "title", "author", "year"}, nodes[0])
	assert.Equal(t, "lotr", nodes[1][0])

	edges := readcsv(t, filepath.Join(dir, vv.GRAPHEDGESCSV))
	require.Len(t, edges, 3)
	assert.Equal(t, []string{"source", "target", "weight", "kind"}, edges[0])
	assert.Equal(t, "INFLUENCED", edges[1][3])
}

func TestInfluenceGraphHTML(t *testing.T) {
	c, pairs := reportfixture()
	dir := t.TempDir()

	fp, err := InfluenceGraphHTML(dir, c, pairs)
	require.NoError(t, err)

	html, err := os.ReadFile(fp)
	require.NoError(t, err)
	assert.Contains(t, string(html), "echarts")
	assert.Contains(t, string(html), "The Sword of Shannara")
}

func TestTopicScatterHTML(t *testing.T) {
	c, _ := reportfixture()
	tm := &str.TopicModelResult{
		K: 2,
		DocTopics: [][]float64{
			{0.9, 0.1},
			{0.7, 0.3},
			{0.2, 0.8},
		},
	}
	dir := t.TempDir()

	fp, err := TopicScatterHTML(dir, c, tm)
	require.NoError(t, err)

	html, err := os.ReadFile(fp)
	require.NoError(t, err)
	assert.Contains(t, string(html), "echarts")
}
