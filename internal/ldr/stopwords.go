//    InfluenceEngine
//    Copyright: Z Mankow 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package ldr

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/zmankow1/SeniorThesis/internal/gen"
	"github.com/zmankow1/SeniorThesis/internal/lnch"
	"github.com/zmankow1/SeniorThesis/internal/vv"
)

//
// STOPWORDS
//

func getenglishstops() map[string]struct{} {
	e := []string{"a", "about", "above", "after", "again", "against", "all", "am", "an", "and", "any", "are",
		"as", "at", "be", "because", "been", "before", "being", "below", "between", "both", "but", "by", "came",
		"can", "could", "did", "do", "does", "doing", "down", "during", "each", "few", "for", "from", "further",
		"had", "has", "have", "having", "he", "her", "here", "hers", "herself", "him", "himself", "his", "how",
		"if", "in", "into", "is", "it", "its", "itself", "just", "like", "me", "more", "most", "my", "myself",
		"no", "nor", "not", "now", "of", "off", "on", "once", "only", "or", "other", "our", "ours", "ourselves",
		"out", "over", "own", "said", "same", "she", "should", "so", "some", "such", "than", "that", "the",
		"their", "theirs", "them", "themselves", "then", "there", "these", "they", "this", "those", "through",
		"to", "too", "under", "until", "up", "upon", "very", "was", "we", "were", "what", "when", "where",
		"which", "while", "who", "whom", "why", "will", "with", "would", "you", "your", "yours", "yourself",
		"yourselves"}
	return gen.ToSet(e)
}

// ReadStopConfig - the built-in English list unless a json override exists in the config dir; write one out if absent
func ReadStopConfig() map[string]struct{} {
	const (
		ERR1 = "ReadStopConfig() cannot find UserHomeDir"
		ERR2 = "ReadStopConfig() failed to parse "
		MSG1 = "ReadStopConfig() wrote stopword configuration file: "
		MSG2 = "ReadStopConfig() read stopword configuration from: "
	)

	stops := getenglishstops()

	h, e := os.UserHomeDir()
	if e != nil {
		lnch.Msg.CRIT(ERR1)
		return stops
	}

	vcfg := fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGSTOPS

	_, yes := os.Stat(vcfg)

	if yes != nil {
		sl := gen.SortedMapKeys(stops)
		content, err := json.MarshalIndent(sl, "", " ")
		lnch.Msg.Error(err)

		err = os.WriteFile(vcfg, content, os.FileMode(0644))
		if err != nil {
			lnch.Msg.PEEK(MSG1 + "FAILED: " + vcfg)
		} else {
			lnch.Msg.PEEK(MSG1 + vcfg)
		}
	} else {
		loadedcfg, _ := os.Open(vcfg)
		decoderc := json.NewDecoder(loadedcfg)
		var stp []string
		errc := decoderc.Decode(&stp)
		_ = loadedcfg.Close()
		if errc != nil {
			lnch.Msg.CRIT(ERR2 + vcfg)
		} else {
			stops = gen.ToSet(stp)
			lnch.Msg.PEEK(MSG2 + vcfg)
		}
	}

	return stops
}
