package speech

// PauseAnalysis classifies the session's overall pause behavior.
type PauseAnalysis struct {
	Pattern        string `json:"pattern"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
}

// Analytics is the lexical and temporal profile of a session's answers.
// Derived purely from the session; computing it never fails.
type Analytics struct {
	TotalWords          int            `json:"totalWords"`
	TotalTimeSeconds    int            `json:"totalTimeSeconds"`
	WordsPerMinute      int            `json:"wordsPerMinute"`
	SpeechRate          string         `json:"speechRate"`
	SpeechRateDesc      string         `json:"speechRateDescription"`
	FillerWordCount     int            `json:"fillerWords"`
	FillerPercentage    float64        `json:"fillerPercentage"`
	DetectedFillerWords map[string]int `json:"detectedFillerWords"`
	PauseAnalysis       PauseAnalysis  `json:"pauseAnalysis"`
	QuestionCount       int            `json:"questionCount"`
}

// Pause pattern labels.
const (
	PatternBalanced   = "Balanced"
	PatternLongPauses = "Too Many Long Pauses"
	PatternRushed     = "Rushed Speech"
)

// Speech rate labels.
const (
	RateGood = "Good Pace"
	RateSlow = "Slow Pace"
	RateFast = "Fast Pace"
)
