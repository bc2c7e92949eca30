package domain

import "errors"

var (
	ErrStressIncomplete    = errors.New("all stress questions must be answered")
	ErrStressAnswerInvalid = errors.New("stress answers must be yes or no")
)

// StressQuestions is the fixed daily yes/no questionnaire.
var StressQuestions = []string{
	"Have you felt overwhelmed by studies in the last 7 days?",
	"Do you find it hard to sleep because of stress or worry?",
	"Have you had difficulty concentrating during classes or study time?",
	"Do you feel physically tired or drained most days?",
	"Have you been avoiding tasks because they feel too stressful?",
	"Do you often feel anxious about your future or performance?",
}

const (
	StressAnswerYes = "yes"
	StressAnswerNo  = "no"
)

type StressResult struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// StressYesCount validates a full submission and counts the affirmative
// answers. Partial or malformed submissions are rejected before any score
// is derived.
func StressYesCount(answers []string) (int, error) {
	if len(answers) != len(StressQuestions) {
		return 0, ErrStressIncomplete
	}

	yes := 0
	for _, answer := range answers {
		switch answer {
		case StressAnswerYes:
			yes++
		case StressAnswerNo:
		default:
			return 0, ErrStressAnswerInvalid
		}
	}
	return yes, nil
}

// StressControlScore converts a yes count to a control percentage: the
// fewer stress indicators, the higher the score.
func StressControlScore(yesCount int) int {
	total := len(StressQuestions)
	if yesCount < 0 {
		yesCount = 0
	}
	if yesCount > total {
		yesCount = total
	}
	return roundRatio((total-yesCount)*100, total)
}

// ClassifyStressLevel buckets a yes count into the immediate questionnaire
// result shown on submission.
func ClassifyStressLevel(yesCount int) StressResult {
	switch {
	case yesCount <= 1:
		return StressResult{
			Level:   "Low Stress",
			Message: "You seem to be managing stress well. Keep your routine balanced and continue healthy habits.",
		}
	case yesCount <= 3:
		return StressResult{
			Level:   "Moderate Stress",
			Message: "You may be experiencing manageable stress. Prioritize sleep, short breaks, and daily relaxation practices.",
		}
	default:
		return StressResult{
			Level:   "High Stress",
			Message: "Your stress indicators are high. Please consider speaking with a trusted teacher, parent, counselor, or mentor.",
		}
	}
}
