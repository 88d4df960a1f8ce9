// Package plan converts negative correlation factors into a
// deterministically ordered remediation plan.
package plan

import (
	"sort"
	"strings"

	"interview-insights/pkg/correlation"
)

// Impact levels, most urgent first.
const (
	ImpactCritical = "Critical"
	ImpactHigh     = "High"
	ImpactMedium   = "Medium"
	ImpactLow      = "Low"
)

var impactRank = map[string]int{
	ImpactCritical: 0,
	ImpactHigh:     1,
	ImpactMedium:   2,
	ImpactLow:      3,
}

// ActionItem is one prioritized remediation recommendation.
type ActionItem struct {
	Priority    int      `json:"priority"`
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Action      string   `json:"action"`
	Impact      string   `json:"impact"`
	Timeframe   string   `json:"timeframe"`
	Exercises   []string `json:"exercises"`
}

// BuildActionItems emits one item per non-positive factor in fixed
// evaluation order (speech rate, filler words, pause pattern, confidence,
// fluency), then applies a stable two-key sort: impact criticality first,
// assigned priority second. High-severity filler usage jumps to priority 1
// regardless of evaluation order.
func BuildActionItems(c *correlation.Correlations) []ActionItem {
	items := []ActionItem{}
	priority := 1

	if c.SpeechRateImpact.Level == correlation.LevelNegative {
		title := "Optimize Speech Pace"
		if c.SpeechRateImpact.Score <= -20 {
			title = "Critical: Adjust Speech Rate"
		}
		items = append(items, ActionItem{
			Priority:    priority,
			Category:    CategorySpeechPace,
			Title:       title,
			Description: c.SpeechRateImpact.Description,
			Action:      c.SpeechRateImpact.Recommendation,
			Impact:      ImpactHigh,
			Timeframe:   "1-2 weeks",
			Exercises:   Exercises(CategorySpeechPace),
		})
		priority++
	}

	if c.FillerWordsImpact.Level != correlation.LevelPositive {
		fillerPriority := priority
		impact := ImpactHigh
		if c.FillerWordsImpact.Severity == correlation.SeverityHigh {
			fillerPriority = 1
			impact = ImpactCritical
		} else {
			priority++
		}
		items = append(items, ActionItem{
			Priority:    fillerPriority,
			Category:    CategoryFluency,
			Title:       "Eliminate Filler Words",
			Description: c.FillerWordsImpact.Description,
			Action:      c.FillerWordsImpact.Recommendation,
			Impact:      impact,
			Timeframe:   "2-3 weeks",
			Exercises:   Exercises(CategoryFluency),
		})
	}

	if c.PausePatternImpact.Level == correlation.LevelNegative {
		items = append(items, ActionItem{
			Priority:    priority,
			Category:    CategoryRhythm,
			Title:       "Improve Pause Patterns",
			Description: c.PausePatternImpact.Description,
			Action:      c.PausePatternImpact.Recommendation,
			Impact:      ImpactMedium,
			Timeframe:   "2 weeks",
			Exercises:   Exercises(CategoryRhythm),
		})
		priority++
	}

	if c.ConfidenceCorrelation.Alignment == correlation.AlignmentMis {
		items = append(items, ActionItem{
			Priority:    priority,
			Category:    CategoryConfidence,
			Title:       "Align Verbal and Non-Verbal Confidence",
			Description: c.ConfidenceCorrelation.Description,
			Action:      c.ConfidenceCorrelation.Recommendation,
			Impact:      ImpactHigh,
			Timeframe:   "3-4 weeks",
			Exercises:   Exercises(CategoryConfidence),
		})
		priority++
	}

	if c.FluencyImpact.Level == correlation.FluencyFair || c.FluencyImpact.Level == correlation.FluencyPoor {
		items = append(items, ActionItem{
			Priority:    priority,
			Category:    CategoryOverall,
			Title:       "Comprehensive Fluency Improvement",
			Description: c.FluencyImpact.Description,
			Action:      strings.Join(c.FluencyImpact.Recommendations, "; "),
			Impact:      ImpactCritical,
			Timeframe:   "4 weeks",
			Exercises:   Exercises(CategoryOverall),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if impactRank[items[i].Impact] != impactRank[items[j].Impact] {
			return impactRank[items[i].Impact] < impactRank[items[j].Impact]
		}
		return items[i].Priority < items[j].Priority
	})

	return items
}
