//    InfluenceEngine
//    Copyright: Z Mankow 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"

	"github.com/e-gun/wego/pkg/embedding"
	"github.com/zmankow1/SeniorThesis/internal/lnch"
)

//
// THE ERA-EMBEDDING CACHE
//

// Check - has a space with this fingerprint already been stored?
func (r *ResultsDB) Check(fp string) bool {
	const (
		Q = `SELECT fingerprint FROM era_vectors WHERE fingerprint = ? LIMIT 1`
	)
	row := r.SQL.QueryRow(Q, fp)
	var found string
	return row.Scan(&found) == nil
}

// Add - gzip + json a set of embeddings under its fingerprint
func (r *ResultsDB) Add(fp string, embs embedding.Embeddings) error {
	const (
		MSG1 = "vector cache add: "
		MSG2 = "%s compression: %dk -> %dk (%.1f percent)"
		INS  = `INSERT OR REPLACE INTO era_vectors (fingerprint, vectorsize, vectordata) VALUES (?, ?, ?)`
	)

	eb, err := json.Marshal(embs)
	if err != nil {
		return err
	}

	l1 := len(eb)

	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, gzip.DefaultCompression)
	if err != nil {
		return err
	}
	if _, err = zw.Write(eb); err != nil {
		return err
	}
	if err = zw.Close(); err != nil {
		return err
	}

	b := buf.Bytes()
	l2 := len(b)

	if _, err = r.SQL.Exec(INS, fp, l2, b); err != nil {
		return err
	}

	lnch.Msg.PEEK(MSG1 + fp)
	// compressed is c. 28% of original
	lnch.Msg.PEEK(fmt.Sprintf(MSG2, fp, l1/1024, l2/1024, (float32(l2)/float32(l1))*100))
	return nil
}

// Fetch - reinflate a stored set of embeddings
func (r *ResultsDB) Fetch(fp string) (embedding.Embeddings, error) {
	const (
		MSG1 = "vector cache fetch: "
		Q    = `SELECT vectordata FROM era_vectors WHERE fingerprint = ? LIMIT 1`
	)

	var vect []byte
	if err := r.SQL.QueryRow(Q, fp).Scan(&vect); err != nil {
		return nil, err
	}

	zr, err := gzip.NewReader(bytes.NewReader(vect))
	if err != nil {
		return nil, err
	}
	decompr, err := io.ReadAll(zr)
	if err != nil {
		return nil, err
	}
	if err = zr.Close(); err != nil {
		return nil, err
	}

	var embs embedding.Embeddings
	if err = json.Unmarshal(decompr, &embs); err != nil {
		return nil, err
	}

	lnch.Msg.FYI(MSG1 + fp)
	return embs, nil
}
