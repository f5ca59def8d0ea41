//    InfluenceEngine
//    Copyright: Z Mankow 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/zmankow1/SeniorThesis/internal/gen"
	"github.com/zmankow1/SeniorThesis/internal/mm"
	"github.com/zmankow1/SeniorThesis/internal/str"
	"github.com/zmankow1/SeniorThesis/internal/vv"
)

var (
	Config *str.CurrentConfiguration
	Msg    = mm.NewMessageMaker()

	// the flags that consume the following argument
	valueflags = gen.ToSet([]string{"-ct", "-db", "-eb", "-el", "-ents", "-gl", "-in", "-it", "-k",
		"-md", "-met", "-out", "-sa", "-sd", "-sp", "-w", "-wc"})
)

// BuildDefaultConfig - a configuration that will run the stock corpus layout with no config file at all
func BuildDefaultConfig() *str.CurrentConfiguration {
	return &str.CurrentConfiguration{
		BlackAndWhite:  false,
		ConvergenceTol: vv.LDACONVTOL,
		CorpusDir:      vv.DEFAULTCORPUSDIR,
		EchoLog:        vv.DEFAULTECHOLOGLEVEL,
		EntityDir:      vv.DEFAULTENTITYDIR,
		EraBoundaries:  []int{},
		HostIP:         vv.DEFAULTHOSTIP,
		HostPort:       vv.DEFAULTHOSTPORT,
		LdaIterations:  vv.LDAITER,
		LdaTopics:      vv.LDATOPICS,
		LogLevel:       vv.DEFAULTGOLOGLEVEL,
		MetadataFile:   vv.DEFAULTMETADATA,
		MinEraTokens:   vv.MINERATOKENS,
		MinSharedVocab: vv.MINSHAREDVOCAB,
		MinTermCount:   vv.MINTERMCOUNT,
		ProfileCPU:     false,
		ProfileMEM:     false,
		QuietStart:     false,
		RandomSeed:     vv.DEFAULTSEED,
		ResultsDB:      vv.DEFAULTRESULTSDB,
		ResultsDir:     vv.DEFAULTRESULTSDIR,
		ServeResults:   false,
		TopicScatter:   false,
		VectorDim:      vv.VECTORDIM,
		VectorIter:     vv.VECTORITER,
		VectorMinCount: vv.VECTORMINCOUNT,
		VectorWindow:   vv.VECTORWINDOW,
		WeightDrift:    vv.WEIGHTDRIFT,
		WeightTermSim:  vv.WEIGHTTERMSIM,
		WeightTopicSim: vv.WEIGHTTOPICSIM,
		WorkerCount:    runtime.NumCPU(),
		YearTieBreak:   false,
	}
}

// LookForConfigFile - if no config file exists yet, write one with the defaults
func LookForConfigFile() {
	const (
		WRFAIL = "LookForConfigFile() could not write '%s'"
		WROTE  = "wrote default configuration to '%s'"
	)

	_, a := os.Stat(vv.CONFIGBASIC)

	var b error
	h, e := os.UserHomeDir()
	if e != nil {
		b = e
	} else {
		_, b = os.Stat(fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGBASIC)
	}

	if a != nil && b != nil {
		content, err := json.MarshalIndent(BuildDefaultConfig(), "", " ")
		if err != nil {
			Msg.CRIT(fmt.Sprintf(WRFAIL, vv.CONFIGBASIC))
			return
		}
		if err = os.WriteFile(vv.CONFIGBASIC, content, os.FileMode(0644)); err != nil {
			Msg.CRIT(fmt.Sprintf(WRFAIL, vv.CONFIGBASIC))
			return
		}
		Msg.NOTE(fmt.Sprintf(WROTE, vv.CONFIGBASIC))
	}
}

// ConfigAtLaunch - read the configuration values from JSON and/or command line
func ConfigAtLaunch() {
	const (
		FAIL3 = `Could not parse the information in '%s'. Skipping and attempting to use built-in defaults instead.`
		FAIL5 = "Refusing to set a workercount greater than NumCPU: %d > %d ---> setting workercount value to NumCPU: %d"
		FAIL9 = "'%s' is not 'year,year,...'"
		FAILA = "'%s' requires a value; run with '-h' for usage"
		FAILW = "'%s' is not 'tfidf,topic,drift'"
	)

	Config = BuildDefaultConfig()

	cfgpath := vv.CONFIGBASIC
	if _, e := os.Stat(cfgpath); e != nil {
		uh, _ := os.UserHomeDir()
		cfgpath = fmt.Sprintf(vv.CONFIGALTAPTH, uh) + vv.CONFIGBASIC
	}

	loadedcfg, e := os.Open(cfgpath)
	if e == nil {
		decoderc := json.NewDecoder(loadedcfg)
		confc := str.CurrentConfiguration{}
		errc := decoderc.Decode(&confc)
		_ = loadedcfg.Close()
		if errc == nil {
			Config = &confc
		} else {
			Msg.CRIT(fmt.Sprintf(FAIL3, cfgpath))
		}
	}

	args := os.Args[1:len(os.Args)]

	for i, a := range args {
		if _, needs := valueflags[a]; needs && i+1 >= len(args) {
			Msg.CRIT(fmt.Sprintf(FAILA, a))
			Msg.ExitOrHang(1)
		}
		switch a {
		case "-v":
			fmt.Println(vv.VERSION)
			os.Exit(1)
		case "-bw":
			Config.BlackAndWhite = true
		case "-ct":
			ct, err := strconv.ParseFloat(args[i+1], 64)
			Msg.Error(err)
			Config.ConvergenceTol = ct
		case "-db":
			Config.ResultsDB = args[i+1]
		case "-eb":
			bs, err := parseyears(args[i+1])
			if err != nil {
				Msg.CRIT(fmt.Sprintf(FAIL9, args[i+1]))
			} else {
				Config.EraBoundaries = bs
			}
		case "-el":
			ll, err := strconv.Atoi(args[i+1])
			Msg.Error(err)
			Config.EchoLog = ll
		case "-ents":
			Config.EntityDir = args[i+1]
		case "-gl":
			ll, err := strconv.Atoi(args[i+1])
			Msg.Error(err)
			Config.LogLevel = ll
		case "-h":
			help()
		case "-in":
			Config.CorpusDir = args[i+1]
		case "-it":
			it, err := strconv.Atoi(args[i+1])
			Msg.Error(err)
			Config.LdaIterations = it
		case "-k":
			k, err := strconv.Atoi(args[i+1])
			Msg.Error(err)
			Config.LdaTopics = k
		case "-md":
			Config.MetadataFile = args[i+1]
		case "-met":
			mt, err := strconv.Atoi(args[i+1])
			Msg.Error(err)
			Config.MinEraTokens = mt
		case "-out":
			Config.ResultsDir = args[i+1]
		case "-pc":
			Config.ProfileCPU = true
		case "-pm":
			Config.ProfileMEM = true
		case "-q":
			Config.QuietStart = true
		case "-sa":
			Config.HostIP = args[i+1]
		case "-sd":
			sd, err := strconv.ParseUint(args[i+1], 10, 64)
			Msg.Error(err)
			Config.RandomSeed = sd
		case "-serve":
			Config.ServeResults = true
		case "-sp":
			p, err := strconv.Atoi(args[i+1])
			Msg.Error(err)
			Config.HostPort = p
		case "-ts":
			Config.TopicScatter = true
		case "-tie":
			Config.YearTieBreak = true
		case "-w":
			ws, err := parseweights(args[i+1])
			if err != nil {
				Msg.CRIT(fmt.Sprintf(FAILW, args[i+1]))
			} else {
				Config.WeightTermSim, Config.WeightTopicSim, Config.WeightDrift = ws[0], ws[1], ws[2]
			}
		case "-wc":
			wc, err := strconv.Atoi(args[i+1])
			Msg.Error(err)
			Config.WorkerCount = wc
		default:
			// do nothing
		}
	}

	if Config.WorkerCount > runtime.NumCPU() {
		Msg.NOTE(fmt.Sprintf(FAIL5, Config.WorkerCount, runtime.NumCPU(), runtime.NumCPU()))
		Config.WorkerCount = runtime.NumCPU()
	}

	Msg.SetLvl(Config.LogLevel)
	Msg.BW = Config.BlackAndWhite
}

// parseyears - "1960,1996" --> []int{1960, 1996}
func parseyears(s string) ([]int, error) {
	var out []int
	for _, p := range strings.Split(s, ",") {
		y, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, y)
	}
	return out, nil
}

// parseweights - "0.4,0.3,0.3" --> the three signal weights
func parseweights(s string) ([]float64, error) {
	pp := strings.Split(s, ",")
	if len(pp) != 3 {
		return nil, fmt.Errorf("expected 3 weights, got %d", len(pp))
	}
	out := make([]float64, 3)
	for i, p := range pp {
		w, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}

func help() {
	const (
		HELP = `S1C4InfluenceEngine: quantify directional literary influence inside a novel corpusC0S0

command line arguments:
   C1-inC0   <dir>    corpus directory of cleaned .txt files (C3%sC0)
   C1-mdC0   <file>   metadata csv: id,title,author,year,file (C3%sC0)
   C1-entsC0 <dir>    per-work entity annotation json files (off unless set)
   C1-outC0  <dir>    results directory (C3%sC0)
   C1-dbC0   <file>   results database name inside -out (C3%sC0)
   C1-kC0    <int>    number of lda topics (C3%dC0)
   C1-itC0   <int>    lda iteration budget (C3%dC0)
   C1-sdC0   <int>    random seed for the topic model (C3%dC0)
   C1-ctC0   <float>  convergence tolerance for the posterior check (C3%gC0)
   C1-ebC0   <yrs>    era boundary years, e.g. '1960,1996' (each work its own era if unset)
   C1-metC0  <int>    minimum tokens per era before its pairs are skipped (C3%dC0)
   C1-wC0    <w,w,w>  signal weights: tfidf,topic,drift (C3%g,%g,%gC0)
   C1-tieC0           break equal-year pairs alphabetically instead of dropping them
   C1-tsC0            also emit a t-sne scatter of the document topic mixtures
   C1-serveC0         serve the results directory over http when done
   C1-saC0   <ip>     bind address for -serve (C3%sC0)
   C1-spC0   <int>    bind port for -serve (C3%dC0)
   C1-glC0   <int>    terminal log level: 0-5 (C3%dC0)
   C1-elC0   <int>    echo log level: 0-2 (C3%dC0)
   C1-wcC0   <int>    worker count (C3NumCPUC0)
   C1-bwC0            disable color in the terminal
   C1-pcC0 / C1-pmC0      cpu / memory profiling
   C1-qC0             quiet start
   C1-vC0             print version and exit
   C1-hC0             this help`
	)

	m := fmt.Sprintf(HELP, vv.DEFAULTCORPUSDIR, vv.DEFAULTMETADATA, vv.DEFAULTRESULTSDIR,
		vv.DEFAULTRESULTSDB, vv.LDATOPICS, vv.LDAITER, vv.DEFAULTSEED, float64(vv.LDACONVTOL),
		vv.MINERATOKENS, vv.WEIGHTTERMSIM, vv.WEIGHTTOPICSIM, vv.WEIGHTDRIFT,
		vv.DEFAULTHOSTIP, vv.DEFAULTHOSTPORT, vv.DEFAULTGOLOGLEVEL, vv.DEFAULTECHOLOGLEVEL)
	fmt.Println(Msg.ColStyle(m))
	os.Exit(0)
}
