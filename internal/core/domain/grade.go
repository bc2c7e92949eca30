package domain

// Grade is the ordinal wellness band of an average percentage.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
)

type GradeInfo struct {
	Grade      Grade  `json:"grade"`
	Label      string `json:"label"`
	Suggestion string `json:"suggestion"`
}

// Metric selects the wording of grade labels and suggestions. The cut
// points are identical for both metrics.
type Metric string

const (
	MetricChecklist Metric = "checklist"
	MetricStress    Metric = "stress"
)

var checklistGrades = map[Grade]GradeInfo{
	GradeA: {GradeA, "Excellent consistency", "You are maintaining strong wellness discipline. Keep this routine and mentor a friend with your habits."},
	GradeB: {GradeB, "Good progress", "You are doing well. Focus on completing 1–2 missed tasks daily to reach excellent consistency."},
	GradeC: {GradeC, "Moderate consistency", "Build momentum by fixing a morning and night routine first. Small daily wins will improve your score steadily."},
	GradeD: {GradeD, "Needs attention", "Start with just 3 core tasks (sleep, hydration, movement) and track them daily for the next week."},
}

var stressGrades = map[Grade]GradeInfo{
	GradeA: {GradeA, "Very stable", "Your stress regulation is excellent. Keep your routine, sleep cycle, and daily breaks consistent."},
	GradeB: {GradeB, "Stable", "You are managing stress well. Add one intentional relaxation habit daily to move toward A."},
	GradeC: {GradeC, "At risk", "Stress is moderate. Protect your sleep, reduce phone usage at night, and use short breathing breaks."},
	GradeD: {GradeD, "High concern", "Your trend suggests high stress. Please talk to a trusted parent, teacher, counselor, or mentor soon."},
}

// Classify maps an average percentage to its grade band for the given
// metric. Total over all ints: values outside [0,100] clamp to the nearest
// band instead of failing.
func Classify(average int, metric Metric) GradeInfo {
	table := checklistGrades
	if metric == MetricStress {
		table = stressGrades
	}

	switch {
	case average >= 85:
		return table[GradeA]
	case average >= 70:
		return table[GradeB]
	case average >= 50:
		return table[GradeC]
	default:
		return table[GradeD]
	}
}
