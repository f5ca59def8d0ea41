//    InfluenceEngine
//    Copyright: Z Mankow 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package ldr

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/zmankow1/SeniorThesis/internal/lnch"
	"github.com/zmankow1/SeniorThesis/internal/str"
)

//
// CORPUS LOADING
//

// metadatarow - one line of metadata.csv
type metadatarow struct {
	ID     string
	Title  string
	Author string
	Year   int
	File   string
}

// entityannotation - the shape the external annotation pipeline emits
type entityannotation struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// LoadCorpus - read metadata + texts + optional entity annotations into a Corpus; *str.LoadError on any malformed input
func LoadCorpus(cfg *str.CurrentConfiguration, stops map[string]struct{}) (*str.Corpus, error) {
	const (
		MSG1 = "corpus loaded: %d works, %d tokens, %d vocabulary terms"
	)

	rows, err := readmetadata(cfg.MetadataFile)
	if err != nil {
		return nil, err
	}

	docs := make([]str.Document, 0, len(rows))
	for _, r := range rows {
		fp := filepath.Join(cfg.CorpusDir, r.File)
		raw, e := os.ReadFile(fp)
		if e != nil {
			return nil, &str.LoadError{Path: fp, Reason: "cannot read text file"}
		}

		tokens := NormalizeAndTokenize(string(raw), stops)
		if len(tokens) == 0 {
			return nil, &str.LoadError{Path: fp, Reason: "no tokens survived normalization"}
		}

		if cfg.EntityDir != "" {
			ents, e2 := readentities(cfg.EntityDir, r.ID)
			if e2 != nil {
				return nil, e2
			}
			tokens = append(tokens, ents...)
		}

		docs = append(docs, str.Document{
			ID:     r.ID,
			Title:  r.Title,
			Author: r.Author,
			Year:   r.Year,
			Tokens: tokens,
		})
	}

	// iteration order must not depend on the csv: sort by year, then id
	sort.Slice(docs, func(i, j int) bool {
		if docs[i].Year != docs[j].Year {
			return docs[i].Year < docs[j].Year
		}
		return docs[i].ID < docs[j].ID
	})

	c := &str.Corpus{Docs: docs}
	c.Vocabulary, c.TokenTotal = buildvocab(docs, cfg.MinTermCount)

	lnch.Msg.NOTE(fmt.Sprintf(MSG1, len(c.Docs), c.TokenTotal, len(c.Vocabulary)))
	return c, nil
}

// readmetadata - parse metadata.csv; the header must be id,title,author,year,file
func readmetadata(fn string) ([]metadatarow, error) {
	const (
		WANTHEADER = "id,title,author,year,file"
	)

	f, err := os.Open(fn)
	if err != nil {
		return nil, &str.LoadError{Path: fn, Reason: "cannot open metadata file"}
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, &str.LoadError{Path: fn, Reason: "malformed csv: " + err.Error()}
	}

	if len(records) < 2 {
		return nil, &str.LoadError{Path: fn, Reason: "metadata has no data rows"}
	}

	head := strings.ToLower(strings.Join(records[0], ","))
	if head != WANTHEADER {
		return nil, &str.LoadError{Path: fn, Reason: fmt.Sprintf("unexpected header '%s'; want '%s'", head, WANTHEADER)}
	}

	seen := make(map[string]bool)
	rows := make([]metadatarow, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) != 5 {
			return nil, &str.LoadError{Path: fn, Reason: fmt.Sprintf("row %d has %d fields; want 5", i+2, len(rec))}
		}
		id := strings.TrimSpace(rec[0])
		if id == "" {
			return nil, &str.LoadError{Path: fn, Reason: fmt.Sprintf("row %d has an empty id", i+2)}
		}
		if seen[id] {
			return nil, &str.LoadError{Path: fn, Reason: fmt.Sprintf("duplicate id '%s'", id)}
		}
		seen[id] = true

		y, e := strconv.Atoi(strings.TrimSpace(rec[3]))
		if e != nil {
			return nil, &str.LoadError{Path: fn, Reason: fmt.Sprintf("'%s' has unparseable year '%s'", id, rec[3])}
		}

		rows = append(rows, metadatarow{
			ID:     id,
			Title:  strings.TrimSpace(rec[1]),
			Author: strings.TrimSpace(rec[2]),
			Year:   y,
			File:   strings.TrimSpace(rec[4]),
		})
	}
	return rows, nil
}

// readentities - fold '<id>.json' annotations into tokens shaped 'text_label'; a missing file is not an error
func readentities(dir string, id string) ([]string, error) {
	fp := filepath.Join(dir, id+".json")
	raw, err := os.ReadFile(fp)
	if err != nil {
		return nil, nil
	}

	var anns []entityannotation
	if err = json.Unmarshal(raw, &anns); err != nil {
		return nil, &str.LoadError{Path: fp, Reason: "malformed entity annotations: " + err.Error()}
	}

	out := make([]string, 0, len(anns))
	for _, a := range anns {
		if a.Text == "" || a.Label == "" {
			continue
		}
		t := strings.ToLower(strings.Join(strings.Fields(a.Text), "_"))
		l := strings.ToLower(a.Label)
		out = append(out, t+"_"+l)
	}
	return out, nil
}

// buildvocab - corpus-wide term counts with the frequency cutoff applied
func buildvocab(docs []str.Document, mincount int) (map[string]int, int) {
	counts := make(map[string]int)
	total := 0
	for _, d := range docs {
		total += len(d.Tokens)
		for _, t := range d.Tokens {
			counts[t]++
		}
	}

	if mincount > 1 {
		for t, n := range counts {
			if n < mincount {
				delete(counts, t)
			}
		}
	}
	return counts, total
}
