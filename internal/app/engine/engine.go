// Package engine implements the VegiRise gamification engine.
// It is a deterministic state machine: raw events (a vegetable entry,
// a wake-up record) are folded into the persistent GameState: XP,
// streak and combo bookkeeping, goal-crossing detection, and
// achievement unlocking.
package engine

import "github.com/vegirise/vegirise/internal/domain"

// ─── XP Awards ──────────────────────────────────────────────────────────────

const (
	XPVegetableRecord = 10
	XPWakeupRecord    = 10
	XPPerfectWakeup   = 30
	XPGoalMinimum     = 20
	XPGoalStandard    = 30
	XPGoalTarget      = 50
	XPCombo           = 50
	XPStreakBonus3    = 50
	XPStreakBonus7    = 100
	XPStreakBonus30   = 300
)

// ─── Thresholds ─────────────────────────────────────────────────────────────

const (
	// PerfectWakeupScore is the minimum score counting as a perfect wake-up.
	PerfectWakeupScore = 90

	// Over1000gThreshold marks a heavy vegetable day, in grams.
	Over1000gThreshold = 1000

	// DefaultEarlyBirdTime is the wake time before which the early-bird
	// counter increments.
	DefaultEarlyBirdTime = "05:30"
)

// ─── Collaborator Boundaries ────────────────────────────────────────────────

// Store is the narrow persistence contract the engine consumes.
// Getters return defaults when nothing is persisted yet.
type Store interface {
	GetGameState() (domain.GameState, error)
	SaveGameState(domain.GameState) error
	GetSettings() (domain.Settings, error)
	GetDayVegetableTotal(date string) (int64, error)
	GetVegetables(date string) ([]domain.VegetableRecord, error)
	GetWakeup(date string) (*domain.WakeupRecord, error)
	GetDailyGoals(date string) (domain.DailyGoals, error)
	SaveDailyGoals(domain.DailyGoals) error

	// CountRecordDays counts distinct dates in [from, to] (inclusive)
	// carrying at least one record of either kind.
	CountRecordDays(from, to string) (int, error)
}

// Notification severities, mirroring the toast types of the UI layer.
const (
	SeveritySuccess = "success"
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Notifier is the outward presentation boundary. All calls are
// fire-and-forget; nothing returned here affects engine state.
type Notifier interface {
	Notify(message, severity string)
	AnnounceXP(amount int64)
	AnnounceLevelUp(level int)
	AnnounceAchievement(def domain.AchievementDef)
}

// NopNotifier silences all feedback. Useful in tests.
type NopNotifier struct{}

func (NopNotifier) Notify(string, string)                   {}
func (NopNotifier) AnnounceXP(int64)                        {}
func (NopNotifier) AnnounceLevelUp(int)                     {}
func (NopNotifier) AnnounceAchievement(domain.AchievementDef) {}
