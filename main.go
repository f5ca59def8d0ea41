//    InfluenceEngine
//    Copyright: Z Mankow 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/profile"
	"github.com/zmankow1/SeniorThesis/internal/db"
	"github.com/zmankow1/SeniorThesis/internal/ldr"
	"github.com/zmankow1/SeniorThesis/internal/lnch"
	"github.com/zmankow1/SeniorThesis/internal/rpt"
	"github.com/zmankow1/SeniorThesis/internal/scr"
	"github.com/zmankow1/SeniorThesis/internal/str"
	"github.com/zmankow1/SeniorThesis/internal/tpc"
	"github.com/zmankow1/SeniorThesis/internal/vec"
	"github.com/zmankow1/SeniorThesis/internal/wgt"
)

func main() {
	const (
		FAILDIR = "cannot create results directory"
		RUNMSG  = "run %s"
		DONE    = "results bundle in '%s'"
	)

	lnch.LookForConfigFile()
	lnch.ConfigAtLaunch()
	cfg := lnch.Config

	if cfg.ProfileCPU {
		defer profile.Start().Stop()
	} else if cfg.ProfileMEM {
		defer profile.Start(profile.MemProfile).Stop()
	}

	if !cfg.QuietStart {
		lnch.PrintVersion(*cfg)
		lnch.PrintBuildInfo(*cfg)
	}

	runid := uuid.New().String()
	lnch.Msg.NOTE(fmt.Sprintf(RUNMSG, runid))

	if err := os.MkdirAll(cfg.ResultsDir, os.FileMode(0755)); err != nil {
		lnch.Msg.EF(err, FAILDIR)
	}

	start := time.Now()
	previous := time.Now()

	// [A] the corpus

	stops := ldr.ReadStopConfig()
	corpus, err := ldr.LoadCorpus(cfg, stops)
	if err != nil {
		lnch.Msg.EF(err, "ldr.LoadCorpus()")
	}
	lnch.Msg.Timer("A1", fmt.Sprintf("corpus loaded: %d works", len(corpus.Docs)), start, previous)

	// settings that cannot work against this corpus must fail here, not after the
	// expensive stages have already run
	if err = wgt.Validate(corpus); err != nil {
		lnch.Msg.EF(err, "wgt.Validate()")
	}
	if err = tpc.Validate(corpus, cfg); err != nil {
		lnch.Msg.EF(err, "tpc.Validate()")
	}

	resdb, err := db.Open(filepath.Join(cfg.ResultsDir, cfg.ResultsDB))
	if err != nil {
		lnch.Msg.EF(err, "db.Open()")
	}
	defer resdb.Close()

	// [B] the three signals, concurrently over the read-only corpus

	var (
		awaiting sync.WaitGroup
		weights  []str.TermWeightVector
		topics   *str.TopicModelResult
		drifts   *vec.DriftSet
		errw     error
		errt     error
		errd     error
	)

	awaiting.Add(1)
	go func(awaiting *sync.WaitGroup) {
		defer awaiting.Done()
		p := time.Now()
		weights, errw = wgt.Weigh(corpus)
		lnch.Msg.Timer("B1", "term weights computed", start, p)
	}(&awaiting)

	awaiting.Add(1)
	go func(awaiting *sync.WaitGroup) {
		defer awaiting.Done()
		p := time.Now()
		topics, errt = tpc.Model(corpus, cfg)
		lnch.Msg.Timer("B2", "topic model fit", start, p)
	}(&awaiting)

	awaiting.Add(1)
	go func(awaiting *sync.WaitGroup) {
		defer awaiting.Done()
		p := time.Now()
		drifts, errd = vec.TrackDrift(corpus, cfg, resdb)
		lnch.Msg.Timer("B3", "semantic drift tracked", start, p)
	}(&awaiting)

	awaiting.Wait()

	if errw != nil {
		lnch.Msg.EF(errw, "wgt.Weigh()")
	}
	if errt != nil {
		lnch.Msg.EF(errt, "tpc.Model()")
	}
	if errd != nil {
		lnch.Msg.EF(errd, "vec.TrackDrift()")
	}

	// [C] score and persist

	previous = time.Now()
	pairs, skipped := scr.Score(corpus, cfg, runid, weights, topics, drifts)
	lnch.Msg.Timer("C1", "influence pairs scored", start, previous)

	if err = resdb.InsertRun(runid, cfg, len(corpus.Docs), topics.Converged); err != nil {
		lnch.Msg.EF(err, "db.InsertRun()")
	}
	if err = resdb.InsertPairs(pairs); err != nil {
		lnch.Msg.EF(err, "db.InsertPairs()")
	}
	if err = resdb.InsertSkipped(skipped); err != nil {
		lnch.Msg.EF(err, "db.InsertSkipped()")
	}

	// [D] the results bundle

	previous = time.Now()
	if _, err = rpt.WriteMetricsCSV(cfg.ResultsDir, pairs); err != nil {
		lnch.Msg.EF(err, "rpt.WriteMetricsCSV()")
	}
	if err = rpt.WriteGraphExport(cfg.ResultsDir, corpus, pairs); err != nil {
		lnch.Msg.EF(err, "rpt.WriteGraphExport()")
	}
	if _, err = rpt.InfluenceGraphHTML(cfg.ResultsDir, corpus, pairs); err != nil {
		lnch.Msg.EF(err, "rpt.InfluenceGraphHTML()")
	}
	if cfg.TopicScatter {
		if _, err = rpt.TopicScatterHTML(cfg.ResultsDir, corpus, topics); err != nil {
			lnch.Msg.EF(err, "rpt.TopicScatterHTML()")
		}
	}
	lnch.Msg.Timer("D1", "results bundle written", start, previous)

	rpt.Summary(corpus, topics, pairs, skipped)
	lnch.Msg.MAND(fmt.Sprintf(DONE, cfg.ResultsDir))

	if cfg.ServeResults {
		if err = rpt.ServeResults(cfg); err != nil {
			lnch.Msg.EF(err, "rpt.ServeResults()")
		}
	}
}
