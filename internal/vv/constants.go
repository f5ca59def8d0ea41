//    InfluenceEngine
//    Copyright: Z Mankow 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	MYNAME    = "InfluenceEngine"
	SHORTNAME = "IFE"
	VERSION   = "0.4.1"

	CONFIGLOCATION = "."
	CONFIGALTAPTH  = "%s/.config/" // %s = os.UserHomeDir()
	CONFIGBASIC    = "ife-conf.json"
	CONFIGSTOPS    = "ife-stopwords.json"

	DEFAULTCORPUSDIR    = "data/corpus_clean"
	DEFAULTMETADATA     = "data/corpus_clean/metadata.csv"
	DEFAULTENTITYDIR    = ""
	DEFAULTRESULTSDIR   = "data/results"
	DEFAULTRESULTSDB    = "influence.db"
	METRICSCSV          = "influence_metrics.csv"
	GRAPHNODESCSV       = "graph_nodes.csv"
	GRAPHEDGESCSV       = "graph_edges.csv"
	INFLUENCEGRAPHHTML  = "influence_graph.html"
	TOPICSCATTERHTML    = "topic_scatter.html"
	DEFAULTECHOLOGLEVEL = 0
	DEFAULTGOLOGLEVEL   = 0
	DEFAULTHOSTIP       = "127.0.0.1"
	DEFAULTHOSTPORT     = 8000

	LDATOPICS      = 5
	LDAMAXTOPICS   = 30
	LDAITER        = 200
	LDACONVWINDOW  = 10
	LDACONVTOL     = 1e-04
	DEFAULTSEED    = 42
	TOPICTOPTERMS  = 12
	MINTERMCOUNT   = 5
	MINERATOKENS   = 10000
	MINSHAREDVOCAB = 25

	VECTORDIM      = 75
	VECTORWINDOW   = 8
	VECTORITER     = 15
	VECTORMINCOUNT = 3
	VECTORNEIGHB   = 12

	WEIGHTTERMSIM  = 0.4
	WEIGHTTOPICSIM = 0.3
	WEIGHTDRIFT    = 0.3

	DEFAULTCHRTWIDTH  = "1500px"
	DEFAULTCHRTHEIGHT = "1200px"
	TSNEPERPLEXITY    = 5
	TSNELEARNINGRT    = 100
	TSNEMAXITER       = 400

	MINTOKENLEN = 2
)
