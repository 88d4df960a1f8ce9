package correlation

import (
	"fmt"
	"math"
	"strings"

	"interview-insights/pkg/audio"
	"interview-insights/pkg/speech"
)

func analyzeSpeechRate(verbal *VerbalScore, a *speech.Analytics) Factor {
	wpm := a.WordsPerMinute

	switch {
	case wpm < 120:
		return Factor{
			Level:          LevelNegative,
			Score:          -15,
			Description:    "Your slow speech pace may be causing you to lose momentum and engagement during explanations.",
			Recommendation: "Practice timed speaking exercises to maintain a steady pace of 140-150 words per minute.",
			AffectedAreas:  []string{"Engagement", "Time Management", "Energy Level"},
		}
	case wpm > 180:
		f := Factor{
			Level:          LevelNegative,
			Score:          -20,
			Description:    "Speaking too quickly is preventing you from fully articulating complex concepts and may confuse interviewers.",
			Recommendation: "Use breathing exercises and deliberate pauses to slow down your delivery.",
			AffectedAreas:  []string{"Clarity", "Depth of Explanation", "Comprehension"},
		}
		if depth, ok := verbal.metric(MetricDepthOfExplanation); ok && depth < 60 {
			f.Score = -25
			f.Description += " This is directly impacting your ability to provide detailed explanations."
		}
		return f
	default:
		return Factor{
			Level:          LevelPositive,
			Score:          10,
			Description:    "Your speech pace is optimal, allowing clear articulation of ideas.",
			Recommendation: "Maintain your current pace while focusing on content quality.",
			AffectedAreas:  []string{"Overall Clarity"},
		}
	}
}

func analyzeFillerWords(verbal *VerbalScore, a *speech.Analytics) Factor {
	pct := a.FillerPercentage

	var f Factor
	switch {
	case pct > 10:
		f = Factor{
			Level:          LevelHighlyNegative,
			Score:          -30,
			Severity:       SeverityHigh,
			Description:    "Excessive filler words are severely disrupting your thought flow and reducing the perceived confidence in your answers.",
			Recommendation: "Practice the 'pause and think' technique: pause silently instead of using fillers.",
			AffectedAreas:  []string{"Fluency", "Confidence", "Professional Image", "Clarity"},
		}
	case pct > 5:
		f = Factor{
			Level:          LevelNegative,
			Score:          -15,
			Severity:       SeverityModerate,
			Description:    "Moderate use of filler words is affecting the smoothness of your delivery.",
			Recommendation: "Record yourself speaking and identify your most common fillers to consciously avoid them.",
			AffectedAreas:  []string{"Fluency", "Professional Image"},
		}
	case pct > 2:
		f = Factor{
			Level:          LevelSlightlyNeg,
			Score:          -5,
			Severity:       SeverityLow,
			Description:    "Minor filler word usage is acceptable but can be improved.",
			Recommendation: "Continue practicing to eliminate remaining filler words.",
			AffectedAreas:  []string{"Polish"},
		}
	default:
		f = Factor{
			Level:          LevelPositive,
			Score:          15,
			Severity:       SeverityNone,
			Description:    "Excellent control over filler words demonstrates strong communication skills.",
			Recommendation: "Your minimal filler usage is exemplary - maintain this standard.",
			AffectedAreas:  []string{},
		}
	}

	if vocab, ok := verbal.metric(MetricVocabularyRichness); ok && pct > 5 && vocab < 60 {
		f.Score -= 10
		f.Description += " This is compounded by limited vocabulary, creating noticeable communication gaps."
	}
	return f
}

func analyzePausePattern(verbal *VerbalScore, a *speech.Analytics) Factor {
	pattern := a.PauseAnalysis.Pattern

	switch pattern {
	case speech.PatternLongPauses:
		f := Factor{
			Level:          LevelNegative,
			Score:          -20,
			Pattern:        pattern,
			Description:    "Frequent long pauses suggest uncertainty and may indicate difficulty recalling information or organizing thoughts.",
			Recommendation: "Practice structured thinking using frameworks like STAR or PREP to organize responses quickly.",
			AffectedAreas:  []string{"Confidence", "Fluency", "Time Management"},
		}
		if concept, ok := verbal.metric(MetricConceptsUnderstanding); ok && concept < 60 {
			f.Score = -25
			f.Description += " Combined with lower concept understanding, this indicates need for deeper preparation."
		}
		return f
	case speech.PatternRushed:
		return Factor{
			Level:          LevelNegative,
			Score:          -15,
			Pattern:        pattern,
			Description:    "Minimal pauses create a rushed delivery that doesn't allow key points to resonate with the listener.",
			Recommendation: "Practice strategic pausing: pause after key points for 1-2 seconds to let them sink in.",
			AffectedAreas:  []string{"Emphasis", "Comprehension", "Memorable Delivery"},
		}
	default:
		return Factor{
			Level:          LevelPositive,
			Score:          10,
			Pattern:        pattern,
			Description:    "Your pause pattern effectively balances fluency with thoughtful delivery.",
			Recommendation: "Continue using strategic pauses to emphasize important points.",
			AffectedAreas:  []string{},
		}
	}
}

// confidenceWeights for the verbal confidence weighted mean. Renormalized
// over whichever metrics are present.
var confidenceWeights = []struct {
	name   string
	weight float64
}{
	{MetricAnswerCorrectness, 0.30},
	{MetricConceptsUnderstanding, 0.20},
	{MetricDomainKnowledge, 0.20},
	{MetricResponseStructure, 0.15},
	{MetricDepthOfExplanation, 0.15},
}

// verbalConfidence collapses the weighted sub-scores to a 0..1 confidence.
// The neutral 0.5 covers a missing score object or no recognized metrics.
func verbalConfidence(verbal *VerbalScore) float64 {
	var weightedSum, totalWeight float64
	for _, w := range confidenceWeights {
		if score, ok := verbal.metric(w.name); ok {
			weightedSum += score / 100 * w.weight
			totalWeight += w.weight
		}
	}
	if totalWeight == 0 {
		return 0.5
	}
	return weightedSum / totalWeight
}

func analyzeConfidence(verbal *VerbalScore, agg *audio.Aggregate) ConfidenceCorrelation {
	vc := verbalConfidence(verbal)
	nvc := agg.Confidence.Average
	gap := math.Abs(vc - nvc)

	analysis := ConfidenceCorrelation{
		VerbalConfidence:    round1(vc * 100),
		NonVerbalConfidence: round1(nvc * 100),
		Trend:               agg.Confidence.Trend,
	}

	switch {
	case gap < 0.1:
		analysis.Alignment = AlignmentWell
		analysis.Score = 20
		analysis.Description = "Your verbal content and vocal delivery show consistent confidence levels, creating authentic communication."
		analysis.Recommendation = "Your confidence alignment is excellent. Focus on maintaining this consistency."
	case gap < 0.25:
		analysis.Alignment = AlignmentModerate
		analysis.Score = 5
		analysis.Description = "Minor discrepancy between content confidence and vocal delivery."
		analysis.Recommendation = "Work on aligning your vocal tone with your content knowledge through practice."
	default:
		analysis.Alignment = AlignmentMis
		analysis.Score = -15
		if vc > nvc {
			analysis.Description = "Your knowledge is strong but vocal delivery lacks confidence. This undermines your credibility."
			analysis.Recommendation = "Practice power posing and vocal projection exercises to match your delivery with your knowledge."
		} else {
			analysis.Description = "Your vocal confidence exceeds content depth. This may appear as overconfidence without substance."
			analysis.Recommendation = "Focus on deepening subject knowledge to match your confident delivery style."
		}
	}

	switch analysis.Trend {
	case audio.TrendImproving:
		analysis.Score += 5
		analysis.Description += " Positively, your confidence improved throughout the interview."
	case audio.TrendDeclining:
		analysis.Score -= 10
		analysis.Description += " Your confidence declined during the interview, suggesting fatigue or increasing difficulty."
		analysis.Recommendation += " Practice longer mock interviews to build endurance."
	}

	return analysis
}

func analyzeFluency(verbal *VerbalScore, a *speech.Analytics) FluencyImpact {
	score := 100
	issues := []string{}
	recommendations := []string{}

	switch {
	case a.FillerWordCount > 20:
		score -= 30
		issues = append(issues, "Excessive filler words")
		recommendations = append(recommendations, "Filler reduction exercises")
	case a.FillerWordCount > 10:
		score -= 15
		issues = append(issues, "Moderate filler usage")
	}

	if a.WordsPerMinute < 120 || a.WordsPerMinute > 180 {
		score -= 20
		if a.WordsPerMinute < 120 {
			issues = append(issues, "Too slow")
		} else {
			issues = append(issues, "Too fast")
		}
		recommendations = append(recommendations, "Paced reading practice")
	}

	if a.PauseAnalysis.Pattern != speech.PatternBalanced {
		score -= 15
		issues = append(issues, "Irregular pause pattern")
		recommendations = append(recommendations, "Rhythmic speaking drills")
	}

	if structure, ok := verbal.metric(MetricResponseStructure); ok && structure > 70 && score < 70 {
		score += 10
		recommendations = append(recommendations, "Your strong structure compensates for fluency issues - build on this strength")
	}

	if score < 0 {
		score = 0
	}

	var level string
	switch {
	case score >= 80:
		level = FluencyExcellent
	case score >= 60:
		level = FluencyGood
	case score >= 40:
		level = FluencyFair
	default:
		level = FluencyPoor
	}

	return FluencyImpact{
		Score:           score,
		Level:           level,
		Issues:          issues,
		Recommendations: recommendations,
		Description:     fluencyDescription(score, issues),
	}
}

func fluencyDescription(score int, issues []string) string {
	joined := strings.Join(issues, ", ")
	switch {
	case score >= 80:
		return "Your speech fluency enhances your message delivery effectively."
	case score >= 60:
		return fmt.Sprintf("Good fluency with minor issues: %s. These are easily correctable with practice.", joined)
	case score >= 40:
		return fmt.Sprintf("Fluency challenges (%s) are noticeably affecting your communication effectiveness.", joined)
	default:
		return fmt.Sprintf("Significant fluency issues (%s) are creating barriers to effective communication.", joined)
	}
}

// nonVerbalQuality derives a 0-100 delivery quality from the analytics,
// reweighted 70/30 with the audio confidence when frames were measured.
func nonVerbalQuality(a *speech.Analytics, agg *audio.Aggregate) float64 {
	score := 100.0
	score -= math.Min(30, a.FillerPercentage*3)

	if a.WordsPerMinute < 120 {
		score -= 15
	} else if a.WordsPerMinute > 180 {
		score -= 20
	}

	if a.PauseAnalysis.Pattern != speech.PatternBalanced {
		score -= 10
	}

	if agg.Measured() {
		score = score*0.7 + agg.Confidence.Average*100*0.3
	}

	return math.Max(0, math.Min(100, score))
}

func analyzeOverall(verbal *VerbalScore, a *speech.Analytics, agg *audio.Aggregate) OverallCorrelation {
	var verbalScore float64
	if verbal != nil {
		verbalScore = verbal.OverallScore
	}
	quality := nonVerbalQuality(a, agg)
	correlation := 1 - math.Abs(verbalScore-quality)/100

	return OverallCorrelation{
		VerbalScore:         verbalScore,
		NonVerbalScore:      quality,
		CorrelationStrength: round1(math.Max(0, math.Min(1, correlation)) * 100),
		Interpretation:      interpretCorrelation(correlation, verbalScore, quality),
	}
}

func interpretCorrelation(correlation, verbalScore, nonVerbalScore float64) Interpretation {
	switch {
	case correlation > 0.8:
		return Interpretation{
			Level:   "excellent",
			Message: "Strong alignment between content and delivery creates powerful communication.",
			Action:  "Maintain this excellent balance while refining minor areas.",
		}
	case correlation > 0.6:
		return Interpretation{
			Level:   "good",
			Message: "Good alignment with room for improvement in synchronizing content and delivery.",
			Action:  "Focus on the weaker component to achieve better balance.",
		}
	case verbalScore > nonVerbalScore:
		return Interpretation{
			Level:   "content-strong",
			Message: "Your content knowledge exceeds your delivery skills, limiting your impact.",
			Action:  "Prioritize delivery skills training to match your strong content.",
		}
	default:
		return Interpretation{
			Level:   "delivery-strong",
			Message: "Your delivery style is stronger than content depth, risking style over substance perception.",
			Action:  "Deepen domain knowledge and practice structured responses.",
		}
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
