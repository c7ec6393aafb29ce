package engine

import (
	"testing"

	"github.com/vegirise/vegirise/internal/domain"
)

func TestCalculateWakeupScore(t *testing.T) {
	tests := []struct {
		actual, goal string
		score, diff  int
	}{
		{"06:00", "06:00", 100, 0},
		{"06:01", "06:00", 98, 1},
		{"05:59", "06:00", 98, -1},
		{"06:05", "06:00", 90, 5},
		{"05:55", "06:00", 90, -5},
		{"06:10", "06:00", 80, 10},
		{"06:30", "06:00", 40, 30},
		{"05:00", "06:00", 0, -60},
		{"06:50", "06:00", 0, 50},
		{"07:00", "06:00", 0, 60},
		{"04:30", "06:00", 0, -90},
	}
	for _, tt := range tests {
		got := CalculateWakeupScore(tt.actual, tt.goal)
		if got.Score != tt.score || got.DiffMinutes != tt.diff {
			t.Errorf("CalculateWakeupScore(%s, %s) = {%d, %d}, want {%d, %d}",
				tt.actual, tt.goal, got.Score, got.DiffMinutes, tt.score, tt.diff)
		}
	}
}

func TestCalculateDayScore(t *testing.T) {
	goals := domain.VegetableGoals{Minimum: 350, Standard: 500, Target: 800}

	tests := []struct {
		name      string
		vegTotal  int64
		wakeup    int
		hasWakeup bool
		want      int
	}{
		{"nothing recorded", 0, 0, false, 0},
		{"half of minimum", 175, 0, false, 12},
		{"exactly minimum", 350, 0, false, 24},
		{"exactly standard", 500, 0, false, 42},
		{"exactly target", 800, 0, false, 60},
		{"beyond target clamps", 1200, 0, false, 60},
		{"perfect both", 800, 100, true, 100},
		{"target veg, imperfect wake", 800, 50, true, 80},
		{"wakeup only", 0, 100, true, 40},
		{"between minimum and standard", 425, 0, false, 33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateDayScore(tt.vegTotal, goals, tt.wakeup, tt.hasWakeup)
			if got != tt.want {
				t.Errorf("CalculateDayScore(%d, %d, %v) = %d, want %d",
					tt.vegTotal, tt.wakeup, tt.hasWakeup, got, tt.want)
			}
		})
	}
}
