//    InfluenceEngine
//    Copyright: Z Mankow 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

//
// THE CORPUS AND ITS DERIVED SIGNALS
//

// Document - one cleaned novel: metadata plus its normalized token stream
type Document struct {
	ID     string
	Title  string
	Author string
	Year   int
	Tokens []string
}

// Corpus - every document plus the shared vocabulary; built once, read-only thereafter
type Corpus struct {
	Docs       []Document
	Vocabulary map[string]int // term --> corpus-wide count; only terms at/above the frequency cutoff
	TokenTotal int
}

// DocByID - nil if the id is unknown
func (c *Corpus) DocByID(id string) *Document {
	for i := range c.Docs {
		if c.Docs[i].ID == id {
			return &c.Docs[i]
		}
	}
	return nil
}

// TermWeightVector - sparse tf-idf weights for a single document
type TermWeightVector map[string]float64

// TopicModelResult - what the LDA fit yields; Converged=false is a warning, not an abort
type TopicModelResult struct {
	K          int
	DocTopics  [][]float64          // len(Docs) rows; each row sums to 1
	TopicTerms []map[string]float64 // K term distributions
	TopTerms   [][]string           // K lists for reporting
	Converged  bool
	Delta      float64 // posterior movement still seen at the iteration budget
}

// Era - a publication-year span and the documents inside it
type Era struct {
	Label  string
	From   int
	To     int
	DocIDs []string
	Tokens int
}

// DriftScore - semantic drift between an ordered pair of eras, measured after alignment
type DriftScore struct {
	EarlierEra string
	LaterEra   string
	PerTerm    map[string]float64
	Mean       float64
	Shared     int
}

// InfluencePair - the scored directional claim "source influenced target"
type InfluencePair struct {
	RunID         string
	SourceID      string
	TargetID      string
	SourceYear    int
	TargetYear    int
	TermSim       float64
	TopicSim      float64
	DriftSignal   float64
	Composite     float64
	LowConfidence bool
}

// SkippedPair - a pair excluded from scoring, with the reason recorded
type SkippedPair struct {
	RunID    string
	SourceID string
	TargetID string
	Reason   string
}
