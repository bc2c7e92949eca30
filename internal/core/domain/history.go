package domain

import (
	"math"
	"strings"
	"time"
)

const DateKeyLayout = "2006-01-02"

// DailyHistory maps ISO date keys (YYYY-MM-DD) to an integer completion
// percentage in [0,100]. A later write for the same date overwrites the
// earlier value.
type DailyHistory map[string]int

// WindowPoint is one day of a trailing window. Derived, never persisted.
type WindowPoint struct {
	DateKey string `json:"dateKey"`
	Value   int    `json:"value"`
}

func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// RecordScore returns a copy of history with the entry at dateKey set to
// score. The input map is never mutated; repeated calls with the same
// arguments are idempotent.
func RecordScore(history DailyHistory, dateKey string, score int) DailyHistory {
	updated := make(DailyHistory, len(history)+1)
	for k, v := range history {
		updated[k] = v
	}
	updated[dateKey] = ClampPercent(score)
	return updated
}

// BuildWindow produces exactly days points, ordered ascending from
// ref-(days-1) to ref. Dates absent from history default to 0.
func BuildWindow(history DailyHistory, days int, ref time.Time) []WindowPoint {
	if days <= 0 {
		return []WindowPoint{}
	}

	points := make([]WindowPoint, 0, days)
	for offset := days - 1; offset >= 0; offset-- {
		key := DateKey(ref.AddDate(0, 0, -offset))
		points = append(points, WindowPoint{DateKey: key, Value: history[key]})
	}
	return points
}

// WindowAverage is the round-half-up mean of the point values. An empty
// window averages to 0.
func WindowAverage(points []WindowPoint) int {
	if len(points) == 0 {
		return 0
	}

	sum := 0
	for _, p := range points {
		sum += p.Value
	}
	return roundRatio(sum, len(points))
}

// MonthlyAverage averages every entry whose date key falls inside monthKey
// (YYYY-MM). A month with no entries averages to 0.
func MonthlyAverage(history DailyHistory, monthKey string) int {
	sum, count := 0, 0
	for dateKey, value := range history {
		if strings.HasPrefix(dateKey, monthKey) {
			sum += value
			count++
		}
	}

	if count == 0 {
		return 0
	}
	return roundRatio(sum, count)
}

func ClampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// roundRatio rounds sum/count half-up. Both scores and averages are
// non-negative, so half away from zero and half-up coincide.
func roundRatio(sum, count int) int {
	return int(math.Round(float64(sum) / float64(count)))
}
