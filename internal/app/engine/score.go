package engine

import (
	"math"
	"strconv"
	"strings"

	"github.com/vegirise/vegirise/internal/domain"
)

// WakeupScore is the result of scoring an actual wake time against the goal.
type WakeupScore struct {
	Score       int `json:"score"`        // 0–100
	DiffMinutes int `json:"diff_minutes"` // negative = woke early
}

// CalculateWakeupScore scores an "HH:MM" wake time against an "HH:MM"
// goal: 100 minus 2 points per minute of deviation, floored at 0.
// Fifty minutes off in either direction scores zero.
func CalculateWakeupScore(actualTime, goalTime string) WakeupScore {
	actual := clockMinutes(actualTime)
	goal := clockMinutes(goalTime)
	diff := actual - goal

	score := 100 - 2*abs(diff)
	if score < 0 {
		score = 0
	}
	return WakeupScore{Score: score, DiffMinutes: diff}
}

// CalculateDayScore combines a day's vegetable total and wake-up score
// into a 0–100 composite: a piecewise-linear vegetable sub-score
// (minimum→40, standard→70, target→100, clamped beyond) weighted 60%,
// plus the wake-up score weighted 40%. hasWakeup=false scores the
// wake-up component as 0.
func CalculateDayScore(vegTotal int64, goals domain.VegetableGoals, wakeupScore int, hasWakeup bool) int {
	var vegScore float64
	switch {
	case vegTotal <= 0:
		vegScore = 0
	case vegTotal <= goals.Minimum:
		vegScore = float64(vegTotal) / float64(goals.Minimum) * 40
	case vegTotal <= goals.Standard:
		vegScore = 40 + float64(vegTotal-goals.Minimum)/float64(goals.Standard-goals.Minimum)*30
	case vegTotal <= goals.Target:
		vegScore = 70 + float64(vegTotal-goals.Standard)/float64(goals.Target-goals.Standard)*30
	default:
		vegScore = 100
	}

	wakeup := 0.0
	if hasWakeup {
		wakeup = float64(wakeupScore)
	}

	return int(math.Round(vegScore*0.6 + wakeup*0.4))
}

// clockMinutes converts "HH:MM" to minutes past midnight.
// Input is pre-validated; malformed strings parse as 00:00.
func clockMinutes(s string) int {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h*60 + m
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
