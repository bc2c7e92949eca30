package domain

import "time"

// MonthlyReport is the derived reward view for one month: both monthly
// averages, their combined mean, the eligible coin amount, and whether the
// reward was already claimed. A snapshot of it is cached after every
// history write.
type MonthlyReport struct {
	MonthKey                string    `json:"monthKey"`
	ChecklistMonthlyAverage int       `json:"checklistMonthlyAverage"`
	StressMonthlyAverage    int       `json:"stressMonthlyAverage"`
	CombinedMonthlyAverage  int       `json:"combinedMonthlyAverage"`
	EligibleCoins           int       `json:"eligibleCoins"`
	Claimed                 bool      `json:"claimed"`
	GeneratedAt             time.Time `json:"generatedAt"`
}

// BuildMonthlyReport derives the report from the two score histories and
// the wallet claim state.
func BuildMonthlyReport(checklist, stress DailyHistory, wallet Wallet, monthKey string, now time.Time) MonthlyReport {
	checklistAvg := MonthlyAverage(checklist, monthKey)
	stressAvg := MonthlyAverage(stress, monthKey)

	return MonthlyReport{
		MonthKey:                monthKey,
		ChecklistMonthlyAverage: checklistAvg,
		StressMonthlyAverage:    stressAvg,
		CombinedMonthlyAverage:  roundRatio(checklistAvg+stressAvg, 2),
		EligibleCoins:           RewardCoins(checklistAvg, stressAvg),
		Claimed:                 wallet.Claimed(monthKey),
		GeneratedAt:             now,
	}
}
