package usecase

import (
	"math"

	"guardian/internal/domain"
)

const (
	tipHighInterruptions = "High interruption day! Try blocking focus time tomorrow."
	tipGreatFocus        = "Great focus day! Keep it up."
	tipModerate          = "Moderate interruptions. Use focus mode for deep work."
)

// generateDailyReport derives the day's statistics from the interruption log.
// Pure over its input; the same records always yield an identical report.
func generateDailyReport(records []domain.InterruptionRecord) domain.DailyReport {
	total := len(records)

	byType := map[domain.InterruptionType]int{}
	for _, record := range records {
		byType[record.Type]++
	}

	return domain.DailyReport{
		TotalInterruptions:  total,
		HoursLost:           round1(float64(total*domain.TimeLostMinutes) / 60),
		FocusScore:          round1(clamp(10-float64(total)/3, 1, 10)),
		InterruptionsByType: byType,
		Tip:                 tipFor(total),
	}
}

// tipFor selects the daily tip. Exactly 5 and exactly 15 interruptions fall
// in the moderate band.
func tipFor(total int) string {
	switch {
	case total > 15:
		return tipHighInterruptions
	case total < 5:
		return tipGreatFocus
	default:
		return tipModerate
	}
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
