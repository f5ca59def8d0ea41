//    InfluenceEngine
//    Copyright: Z Mankow 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/zmankow1/SeniorThesis/internal/lnch"
	"github.com/zmankow1/SeniorThesis/internal/str"
	_ "modernc.org/sqlite"
)

//
// THE RESULTS DATABASE (pure-Go sqlite)
//

type ResultsDB struct {
	SQL *sql.DB
}

// Open - open (or create) the results database and make sure the schema exists
func Open(path string) (*ResultsDB, error) {
	const (
		RUNS = `
			CREATE TABLE IF NOT EXISTS runs (
				id TEXT PRIMARY KEY,
				started TEXT,
				corpusdir TEXT,
				documents INTEGER,
				topics INTEGER,
				seed INTEGER,
				converged INTEGER
			)`
		INFL = `
			CREATE TABLE IF NOT EXISTS influence (
				run_id TEXT,
				source TEXT,
				target TEXT,
				source_year INTEGER,
				target_year INTEGER,
				term_sim REAL,
				topic_sim REAL,
				drift_signal REAL,
				composite REAL,
				low_confidence INTEGER
			)`
		SKIP = `
			CREATE TABLE IF NOT EXISTS skipped (
				run_id TEXT,
				source TEXT,
				target TEXT,
				reason TEXT
			)`
		VECS = `
			CREATE TABLE IF NOT EXISTS era_vectors (
				fingerprint TEXT PRIMARY KEY,
				vectorsize INTEGER,
				vectordata BLOB
			)`
	)

	d, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	for _, stmt := range []string{RUNS, INFL, SKIP, VECS} {
		if _, err = d.Exec(stmt); err != nil {
			_ = d.Close()
			return nil, fmt.Errorf("schema creation failed: %w", err)
		}
	}

	return &ResultsDB{SQL: d}, nil
}

func (r *ResultsDB) Close() error {
	return r.SQL.Close()
}

// InsertRun - one row per invocation, keyed by the run uuid
func (r *ResultsDB) InsertRun(runid string, cfg *str.CurrentConfiguration, docs int, converged bool) error {
	const (
		INS = `INSERT INTO runs (id, started, corpusdir, documents, topics, seed, converged) VALUES (?, ?, ?, ?, ?, ?, ?)`
	)
	cv := 0
	if converged {
		cv = 1
	}
	_, err := r.SQL.Exec(INS, runid, time.Now().Format(time.RFC3339), cfg.CorpusDir, docs, cfg.LdaTopics, int64(cfg.RandomSeed), cv)
	return err
}

// InsertPairs - the scored pairs, inside one transaction
func (r *ResultsDB) InsertPairs(pairs []str.InfluencePair) error {
	const (
		INS = `
			INSERT INTO influence
				(run_id, source, target, source_year, target_year, term_sim, topic_sim, drift_signal, composite, low_confidence)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		MSG1 = "stored %d influence rows"
	)

	tx, err := r.SQL.Begin()
	if err != nil {
		return err
	}

	for _, p := range pairs {
		lc := 0
		if p.LowConfidence {
			lc = 1
		}
		if _, err = tx.Exec(INS, p.RunID, p.SourceID, p.TargetID, p.SourceYear, p.TargetYear,
			p.TermSim, p.TopicSim, p.DriftSignal, p.Composite, lc); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return err
	}
	lnch.Msg.PEEK(fmt.Sprintf(MSG1, len(pairs)))
	return nil
}

// InsertSkipped - the pairs that could not be scored, with their reasons
func (r *ResultsDB) InsertSkipped(skipped []str.SkippedPair) error {
	const (
		INS = `INSERT INTO skipped (run_id, source, target, reason) VALUES (?, ?, ?, ?)`
	)

	tx, err := r.SQL.Begin()
	if err != nil {
		return err
	}
	for _, s := range skipped {
		if _, err = tx.Exec(INS, s.RunID, s.SourceID, s.TargetID, s.Reason); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// TopComposites - the n strongest influence claims for one run, strongest first
func (r *ResultsDB) TopComposites(runid string, n int) ([]str.InfluencePair, error) {
	const (
		Q = `
			SELECT source, target, source_year, target_year, term_sim, topic_sim, drift_signal, composite, low_confidence
			FROM influence WHERE run_id = ? ORDER BY composite DESC, source, target LIMIT ?`
	)

	rows, err := r.SQL.Query(Q, runid, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []str.InfluencePair
	for rows.Next() {
		p := str.InfluencePair{RunID: runid}
		var lc int
		if err = rows.Scan(&p.SourceID, &p.TargetID, &p.SourceYear, &p.TargetYear,
			&p.TermSim, &p.TopicSim, &p.DriftSignal, &p.Composite, &lc); err != nil {
			return nil, err
		}
		p.LowConfidence = lc != 0
		out = append(out, p)
	}
	return out, rows.Err()
}
