package correlation

// Metric is one sub-score from the external text scoring service.
type Metric struct {
	Score float64 `json:"score"`
}

// VerbalScore is the opaque verbal content evaluation supplied by the
// external scoring service. Metrics keys follow the service's naming.
type VerbalScore struct {
	OverallScore float64           `json:"overall_score"`
	Metrics      map[string]Metric `json:"metrics"`
}

// Known verbal metric names.
const (
	MetricAnswerCorrectness     = "answer_correctness"
	MetricConceptsUnderstanding = "concepts_understanding"
	MetricDomainKnowledge       = "domain_knowledge"
	MetricResponseStructure     = "response_structure"
	MetricDepthOfExplanation    = "depth_of_explanation"
	MetricVocabularyRichness    = "vocabulary_richness"
)

// metric returns a sub-score and whether it is present. A nil receiver
// reports every metric absent.
func (v *VerbalScore) metric(name string) (float64, bool) {
	if v == nil || v.Metrics == nil {
		return 0, false
	}
	m, ok := v.Metrics[name]
	return m.Score, ok
}

// Impact levels.
const (
	LevelPositive       = "positive"
	LevelNegative       = "negative"
	LevelSlightlyNeg    = "slightly negative"
	LevelHighlyNegative = "highly negative"
)

// Filler severity tiers.
const (
	SeverityNone     = "none"
	SeverityLow      = "low"
	SeverityModerate = "moderate"
	SeverityHigh     = "high"
)

// Factor is one signed-impact dimension of the verbal/non-verbal comparison.
type Factor struct {
	Level          string   `json:"level"`
	Score          int      `json:"score"`
	Severity       string   `json:"severity,omitempty"`
	Pattern        string   `json:"pattern,omitempty"`
	Description    string   `json:"description"`
	Recommendation string   `json:"recommendation"`
	AffectedAreas  []string `json:"affectedAreas"`
}

// Alignment labels for the confidence comparison.
const (
	AlignmentWell     = "well-aligned"
	AlignmentModerate = "moderately aligned"
	AlignmentMis      = "misaligned"
)

// ConfidenceCorrelation compares content confidence with vocal confidence.
// The confidence figures are percentages rounded to one decimal.
type ConfidenceCorrelation struct {
	VerbalConfidence    float64 `json:"verbalConfidence"`
	NonVerbalConfidence float64 `json:"nonVerbalConfidence"`
	Alignment           string  `json:"alignment"`
	Trend               string  `json:"trend"`
	Score               int     `json:"score"`
	Description         string  `json:"description"`
	Recommendation      string  `json:"recommendation"`
}

// Fluency levels.
const (
	FluencyExcellent = "excellent"
	FluencyGood      = "good"
	FluencyFair      = "fair"
	FluencyPoor      = "needs improvement"
)

// FluencyImpact scores overall delivery fluency from 100 down.
type FluencyImpact struct {
	Score           int      `json:"score"`
	Level           string   `json:"level"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
	Description     string   `json:"description"`
}

// Interpretation qualifies the overall correlation.
type Interpretation struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Action  string `json:"action"`
}

// OverallCorrelation measures how closely the verbal content score and the
// derived non-verbal quality agree. CorrelationStrength is 0-100 with one
// decimal.
type OverallCorrelation struct {
	VerbalScore         float64        `json:"verbalScore"`
	NonVerbalScore      float64        `json:"nonVerbalScore"`
	CorrelationStrength float64        `json:"correlationStrength"`
	Interpretation      Interpretation `json:"interpretation"`
}

// Correlations bundles every factor analysis for the report.
type Correlations struct {
	SpeechRateImpact      Factor                `json:"speechRateImpact"`
	FillerWordsImpact     Factor                `json:"fillerWordsImpact"`
	PausePatternImpact    Factor                `json:"pausePatternImpact"`
	ConfidenceCorrelation ConfidenceCorrelation `json:"confidenceCorrelation"`
	FluencyImpact         FluencyImpact         `json:"fluencyImpact"`
	OverallCorrelation    OverallCorrelation    `json:"overallCorrelation"`
	// VerbalDegraded is set when no verbal score was supplied and the
	// verbal-dependent comparisons fell back to their audio-only branches.
	VerbalDegraded bool `json:"verbalDegraded,omitempty"`
}
