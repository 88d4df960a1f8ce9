package session

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Tokens checked when fingerprinting. A cheap stand-in for the full filler
// vocabulary; the fingerprint only has to be stable and discriminating, not
// linguistically complete.
var fingerprintFillers = []string{"um", "uh", "like"}

// Fingerprint derives a stable cache key for the session. An explicit ID
// always wins. Otherwise the key is built from each answer's length and
// rough filler count plus the first pitch sample, so identical content maps
// to the same key across calls. An entirely empty session gets a random key
// so it is never cached against another empty one.
func (s *Session) Fingerprint() string {
	if s.ID != "" {
		return s.ID
	}
	if len(s.Answers) == 0 {
		return uuid.NewString()
	}

	var b strings.Builder
	for _, answer := range s.Answers {
		lower := strings.ToLower(answer)
		fillers := 0
		for _, token := range strings.Fields(lower) {
			token = strings.Trim(token, ".,!?;:")
			for _, f := range fingerprintFillers {
				if token == f {
					fillers++
					break
				}
			}
		}
		fmt.Fprintf(&b, "%d:%d;", len(answer), fillers)
	}

	for _, batch := range s.AudioAnalysis {
		for _, m := range batch.Metrics {
			if m.Pitch != nil && m.Pitch.Mean != nil {
				fmt.Fprintf(&b, "p%.2f", *m.Pitch.Mean)
				return b.String()
			}
		}
	}
	return b.String()
}
