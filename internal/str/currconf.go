//    InfluenceEngine
//    Copyright: Z Mankow 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

type CurrentConfiguration struct {
	BlackAndWhite  bool
	ConvergenceTol float64
	CorpusDir      string
	EchoLog        int // 0: "none", 1: "terse", 2: "prolix"
	EntityDir      string
	EraBoundaries  []int // sorted years; empty means every work is its own era
	HostIP         string
	HostPort       int
	LdaIterations  int
	LdaTopics      int
	LogLevel       int
	MetadataFile   string
	MinEraTokens   int
	MinSharedVocab int
	MinTermCount   int
	ProfileCPU     bool
	ProfileMEM     bool
	QuietStart     bool
	RandomSeed     uint64
	ResultsDB      string
	ResultsDir     string
	ServeResults   bool
	TopicScatter   bool
	VectorDim      int
	VectorIter     int
	VectorMinCount int
	VectorWindow   int
	WeightDrift    float64
	WeightTermSim  float64
	WeightTopicSim float64
	WorkerCount    int
	YearTieBreak   bool
}
