package domain

import "time"

// ─── Achievement Types ──────────────────────────────────────────────────────

// AchievementCategory groups badges by theme.
type AchievementCategory string

const (
	CatStreak   AchievementCategory = "streak"
	CatVegTotal AchievementCategory = "veg_total"
	CatVegDaily AchievementCategory = "veg_daily"
	CatWakeup   AchievementCategory = "wakeup"
	CatLevel    AchievementCategory = "level"
	CatRecords  AchievementCategory = "records"
	CatCombo    AchievementCategory = "combo"
	CatSpecial  AchievementCategory = "special"
)

// Categories lists every category in display order.
func Categories() []AchievementCategory {
	return []AchievementCategory{
		CatStreak, CatVegTotal, CatVegDaily, CatWakeup,
		CatLevel, CatRecords, CatCombo, CatSpecial,
	}
}

// AchievementDef is a declarative catalog entry. The evaluation rule is
// not stored here; the engine dispatches it by ID through a lookup
// table, keeping the catalog serializable.
type AchievementDef struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
	Category    AchievementCategory `json:"category"`
}

// UnlockedAchievement records when a badge was earned.
type UnlockedAchievement struct {
	ID         string    `json:"id"`
	UnlockedAt time.Time `json:"unlocked_at"`
}
