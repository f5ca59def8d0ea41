//    InfluenceEngine
//    Copyright: Z Mankow 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package ldr

import (
	"regexp"
	"strings"

	"github.com/zmankow1/SeniorThesis/internal/vv"
)

//
// TEXT NORMALIZATION
//

var notaword = regexp.MustCompile(`[^a-z' ]`)

// makesubstitutions - flatten the typographic variants the cleaned texts still carry
func makesubstitutions(thetext string) string {
	swap := strings.NewReplacer("’", "'", "‘", "'", "“", " ", "”", " ", "—", " ", "–", " ", "-", " ",
		"æ", "ae", "œ", "oe", "ë", "e", "é", "e", "è", "e", "á", "a", "à", "a", "ô", "o", "û", "u", "ú", "u",
		"í", "i", "ï", "i", "ñ", "n", "ç", "c")
	return swap.Replace(thetext)
}

// stripper - delete each in a list of patterns from a string
func stripper(item string, purge []string) string {
	for i := 0; i < len(purge); i++ {
		re := regexp.MustCompile(purge[i])
		item = re.ReplaceAllString(item, "")
	}
	return item
}

// NormalizeAndTokenize - lowercase, substitute, strip, split, drop stopwords; fully deterministic
func NormalizeAndTokenize(raw string, stops map[string]struct{}) []string {
	lc := strings.ToLower(raw)
	lc = makesubstitutions(lc)
	lc = notaword.ReplaceAllString(lc, " ")

	words := strings.Fields(lc)
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.Trim(w, "'")
		if len(w) < vv.MINTOKENLEN {
			continue
		}
		if _, skip := stops[w]; skip {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}
