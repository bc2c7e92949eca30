package domain

import (
	"errors"
	"time"
)

var (
	ErrTaskIndexOutOfRange = errors.New("task index out of range")
	ErrTaskCountMismatch   = errors.New("task answers must cover the whole task list")
)

// ResetDateLayout matches the locale date text stored alongside the daily
// answer set (e.g. "Mon Jan 02 2006").
const ResetDateLayout = "Mon Jan 02 2006"

// ChecklistTasks is the fixed daily wellness task list. The answer set and
// the completion percentage are both sized by it.
var ChecklistTasks = []string{
	"Sleep 7–9 Hours Daily: Proper sleep improves memory, mood, and focus. Avoid mobile 1 hour before bed.",
	"Follow a Simple Daily Routine: Wake up, study, eat, and sleep at fixed times. Routine reduces anxiety and confusion.",
	"Do 20–30 Minutes of Physical Activity: Walking, yoga, cycling, or stretching reduces stress hormones and boosts happiness chemicals.",
	"Practice Deep Breathing or Meditation (5–10 mins): Helps calm the nervous system and improves concentration.",
	"Eat Balanced & Regular Meals: Include fruits, vegetables, proteins, and enough water. Avoid too much junk food and caffeine.",
	"Break Study into Small Sessions: Use the 25–30 minute study method (like Pomodoro). Short breaks prevent burnout.",
	"Limit Social Media Time: Too much scrolling increases comparison and anxiety. Fix a time limit.",
	"Talk to Someone You Trust: Share feelings with parents, friends, or teachers. Don't keep stress inside.",
	"Practice Gratitude: Write 3 good things daily. It shifts focus from stress to positivity.",
	"Do One Thing You Enjoy Daily: Music, drawing, reading, gardening, prayer, or hobbies refresh your mind.",
}

// EmptyChecklistAnswers returns an all-unanswered answer set sized to the
// task list.
func EmptyChecklistAnswers() []bool {
	return make([]bool, len(ChecklistTasks))
}

// NormalizeChecklistAnswers discards a stored answer set whose length no
// longer matches the task list and starts the day fresh instead.
func NormalizeChecklistAnswers(answers []bool) []bool {
	if len(answers) != len(ChecklistTasks) {
		return EmptyChecklistAnswers()
	}
	return answers
}

// ChecklistScore derives today's completion percentage from an answer set:
// clamp(round(done/total*100)).
func ChecklistScore(answers []bool) int {
	if len(answers) == 0 {
		return 0
	}

	done := 0
	for _, answered := range answers {
		if answered {
			done++
		}
	}
	return ClampPercent(roundRatio(done*100, len(answers)))
}

// ChecklistNeedsReset reports whether the stored reset marker belongs to an
// earlier day than today. A missing or unparseable marker always resets.
func ChecklistNeedsReset(storedResetDate string, today time.Time) bool {
	return storedResetDate != today.Format(ResetDateLayout)
}
