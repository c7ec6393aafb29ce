// Package domain holds the pure types of the VegiRise habit tracker.
// The gamification engine ingests raw events (a vegetable entry, a
// wake-up record) and folds them into a persistent GameState.
// No infrastructure dependencies live here.
package domain

import "time"

// ─── Game State ─────────────────────────────────────────────────────────────

// GameState is the singleton aggregate the engine maintains.
// Level is cached but always derived from XP, never mutated on its own.
type GameState struct {
	XP    int64 `json:"xp"`
	Level int   `json:"level"`

	CurrentStreak   int `json:"current_streak"`
	LongestStreak   int `json:"longest_streak"`
	TotalRecordDays int `json:"total_record_days"`

	TotalVegetableGrams   int64 `json:"total_vegetable_grams"`
	TotalVegetableRecords int   `json:"total_vegetable_records"`
	TotalWakeupRecords    int   `json:"total_wakeup_records"`

	PerfectWakeupCount         int `json:"perfect_wakeup_count"`
	PerfectWakeupStreak        int `json:"perfect_wakeup_streak"`
	LongestPerfectWakeupStreak int `json:"longest_perfect_wakeup_streak"`

	ComboCount        int `json:"combo_count"`
	ComboStreak       int `json:"combo_streak"`
	LongestComboStreak int `json:"longest_combo_streak"`

	DaysMinimumGoalMet  int `json:"days_minimum_goal_met"`
	DaysStandardGoalMet int `json:"days_standard_goal_met"`
	DaysTargetGoalMet   int `json:"days_target_goal_met"`

	MaxDailyVegetable    int64 `json:"max_daily_vegetable"`
	Over1000gDays        int   `json:"over_1000g_days"`
	EarlyBirdCount       int   `json:"early_bird_count"`
	MonthlyPerfectMonths int   `json:"monthly_perfect_months"`
	Max3MealsReached     bool  `json:"max_3_meals_reached"`

	// Unlocked achievement ids in unlock order.
	UnlockedAchievements []string `json:"unlocked_achievements"`

	// Calendar dates as "YYYY-MM-DD"; empty means never recorded.
	LastRecordDate  string `json:"last_record_date"`
	FirstRecordDate string `json:"first_record_date"`
	LastWakeupDate  string `json:"last_wakeup_date"`
}

// DefaultGameState returns the fresh-install aggregate.
func DefaultGameState() GameState {
	return GameState{Level: 1}
}

// HasUnlocked reports whether an achievement id is already unlocked.
func (g GameState) HasUnlocked(id string) bool {
	for _, u := range g.UnlockedAchievements {
		if u == id {
			return true
		}
	}
	return false
}

// TotalRecords is the lifetime count of vegetable plus wake-up records.
func (g GameState) TotalRecords() int {
	return g.TotalVegetableRecords + g.TotalWakeupRecords
}

// ─── Settings ───────────────────────────────────────────────────────────────

// VegetableGoals are the daily gram tiers. Invariant: Minimum < Standard < Target.
type VegetableGoals struct {
	Minimum int64 `json:"minimum"`
	Standard int64 `json:"standard"`
	Target  int64 `json:"target"`
}

// Settings holds the user-tunable goals.
type Settings struct {
	VegetableGoals VegetableGoals `json:"vegetable_goals"`
	WakeupGoalTime string         `json:"wakeup_goal_time"` // "HH:MM"
}

// DefaultSettings returns the stock goal tiers and 06:00 wake goal.
func DefaultSettings() Settings {
	return Settings{
		VegetableGoals: VegetableGoals{Minimum: 350, Standard: 500, Target: 800},
		WakeupGoalTime: "06:00",
	}
}

// ─── Per-day Records ────────────────────────────────────────────────────────

// DailyGoals are the per-date idempotence flags. Each flips true at most
// once for its date and is never reset except by a full data wipe.
type DailyGoals struct {
	Date      string `json:"date"`
	Minimum   bool   `json:"minimum"`
	Standard  bool   `json:"standard"`
	Target    bool   `json:"target"`
	Over1000g bool   `json:"over_1000g"`
	Combo     bool   `json:"combo"`
}

// VegetableRecord is a single intake entry. ID is assigned by the store.
type VegetableRecord struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Grams     int64     `json:"grams"`
	CreatedAt time.Time `json:"created_at"`
}

// WakeupRecord is at most one per date; later writes overwrite.
type WakeupRecord struct {
	Date        string `json:"date"`
	WakeupTime  string `json:"wakeup_time"`            // "HH:MM"
	GetUpTime   string `json:"get_up_time,omitempty"` // "HH:MM", optional
	GoalTime    string `json:"goal_time"`
	Score       int    `json:"score"` // 0–100
	DiffMinutes int    `json:"diff_minutes"`
}

// ─── Event Payloads ─────────────────────────────────────────────────────────

// RecordType discriminates engine events.
type RecordType string

const (
	RecordVegetable RecordType = "vegetable"
	RecordWakeup    RecordType = "wakeup"
)

// VegetablePayload is the pre-validated vegetable event body.
type VegetablePayload struct {
	Grams int64 `json:"grams"`
}

// WakeupPayload is the pre-validated, pre-scored wake-up event body.
type WakeupPayload struct {
	Time      string `json:"time"` // "HH:MM"
	GetUpTime string `json:"get_up_time,omitempty"`
	Score     int    `json:"score"`
}
