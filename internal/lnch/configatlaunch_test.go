//    InfluenceEngine
//    Copyright: Z Mankow 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zmankow1/SeniorThesis/internal/vv"
)

func TestBuildDefaultConfig(t *testing.T) {
	c := BuildDefaultConfig()
	assert.Equal(t, vv.LDATOPICS, c.LdaTopics)
	assert.Equal(t, uint64(vv.DEFAULTSEED), c.RandomSeed)
	assert.InDelta(t, 1.0, c.WeightTermSim+c.WeightTopicSim+c.WeightDrift, 1e-9)
	assert.Empty(t, c.EraBoundaries)
	assert.Positive(t, c.WorkerCount)
}

func TestValueFlagsRegistered(t *testing.T) {
	// a trailing value flag must be caught by the bounds guard, so every flag
	// that reads the next argument has to be in the set
	for _, f := range []string{"-ct", "-db", "-eb", "-el", "-ents", "-gl", "-in", "-it", "-k",
		"-md", "-met", "-out", "-sa", "-sd", "-sp", "-w", "-wc"} {
		_, ok := valueflags[f]
		assert.True(t, ok, f)
	}

	// boolean flags never read ahead
	for _, f := range []string{"-bw", "-h", "-pc", "-pm", "-q", "-serve", "-tie", "-ts", "-v"} {
		_, ok := valueflags[f]
		assert.False(t, ok, f)
	}
}

func TestParseYears(t *testing.T) {
	ys, err := parseyears("1960, 1996")
	require.NoError(t, err)
	assert.Equal(t, []int{1960, 1996}, ys)

	_, err = parseyears("sixties,1996")
	assert.Error(t, err)
}

func TestParseWeights(t *testing.T) {
	ws, err := parseweights("0.5,0.25,0.25")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.25, 0.25}, ws)

	_, err = parseweights("0.5,0.5")
	assert.Error(t, err)

	_, err = parseweights("a,b,c")
	assert.Error(t, err)
}
