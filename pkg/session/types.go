package session

import (
	"math"

	"interview-insights/pkg/audio"
)

// Timing records how one answer was delivered. TimeUsed is in seconds.
type Timing struct {
	WordsSpoken int     `json:"wordsSpoken"`
	TimeUsed    float64 `json:"timeUsed"`
}

// FrameBatch groups the audio feature frames captured during one answer.
type FrameBatch struct {
	Metrics []audio.FrameMetric `json:"metrics"`
}

// Session is a completed mock-interview session as handed over by the
// capture layer. Timings and AudioAnalysis run parallel to Answers but may
// be shorter; missing entries use documented fallbacks downstream. The
// pipeline treats a Session as read-only.
type Session struct {
	ID            string       `json:"id,omitempty"`
	Questions     []string     `json:"questions"`
	Answers       []string     `json:"answers"`
	Timings       []Timing     `json:"timings,omitempty"`
	AudioAnalysis []FrameBatch `json:"audioAnalysis,omitempty"`
}

// TimingFor returns the timing for answer index i and whether one was
// recorded. Negative, NaN or infinite values are sanitized before return.
func (s *Session) TimingFor(i int) (Timing, bool) {
	if i < 0 || i >= len(s.Timings) {
		return Timing{}, false
	}
	t := s.Timings[i]
	t.WordsSpoken = sanitizeCount(t.WordsSpoken)
	t.TimeUsed = sanitizeDuration(t.TimeUsed)
	return t, true
}

// Frames flattens every answer's audio frames into one sequence, preserving
// answer order. Returns nil when no frames were captured.
func (s *Session) Frames() []audio.FrameMetric {
	var frames []audio.FrameMetric
	for _, batch := range s.AudioAnalysis {
		frames = append(frames, batch.Metrics...)
	}
	return frames
}

func sanitizeCount(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func sanitizeDuration(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
