package engine

import (
	"log"

	"github.com/vegirise/vegirise/internal/domain"
)

// CheckNewAchievements re-checks the full catalog against the given
// state and returns, in catalog order, every achievement that is
// satisfied but not yet unlocked. Safe to call redundantly: unlocked
// ids are always skipped. A rule that panics counts as not satisfied
// and never aborts evaluation of the rest.
func CheckNewAchievements(gs domain.GameState) []domain.AchievementDef {
	var newlyUnlocked []domain.AchievementDef

	for _, def := range Catalog() {
		if gs.HasUnlocked(def.ID) {
			continue
		}
		if evaluateRule(def.ID, gs) {
			newlyUnlocked = append(newlyUnlocked, def)
		}
	}
	return newlyUnlocked
}

// evaluateRule dispatches the achievement's rule by id.
// Unknown ids evaluate false.
func evaluateRule(id string, gs domain.GameState) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("achievement rule %s panicked: %v", id, r)
			ok = false
		}
	}()

	rule, found := rules[id]
	if !found {
		return false
	}
	return rule(gs)
}

// countUnlockedCategories counts the distinct non-special categories
// represented among the unlocked ids, cross-referenced via the catalog.
func countUnlockedCategories(gs domain.GameState) int {
	byID := catalogIndex()
	seen := make(map[domain.AchievementCategory]bool)
	for _, id := range gs.UnlockedAchievements {
		def, ok := byID[id]
		if !ok || def.Category == domain.CatSpecial {
			continue
		}
		seen[def.Category] = true
	}
	return len(seen)
}

// rules maps achievement ids to their evaluation functions. The catalog
// itself stays declarative; this table is the only executable part.
var rules = map[string]func(domain.GameState) bool{
	// Record streak
	"streak_3":    func(g domain.GameState) bool { return g.LongestStreak >= 3 },
	"streak_7":    func(g domain.GameState) bool { return g.LongestStreak >= 7 },
	"streak_14":   func(g domain.GameState) bool { return g.LongestStreak >= 14 },
	"streak_21":   func(g domain.GameState) bool { return g.LongestStreak >= 21 },
	"streak_30":   func(g domain.GameState) bool { return g.LongestStreak >= 30 },
	"streak_60":   func(g domain.GameState) bool { return g.LongestStreak >= 60 },
	"streak_90":   func(g domain.GameState) bool { return g.LongestStreak >= 90 },
	"streak_180":  func(g domain.GameState) bool { return g.LongestStreak >= 180 },
	"streak_365":  func(g domain.GameState) bool { return g.LongestStreak >= 365 },
	"streak_500":  func(g domain.GameState) bool { return g.LongestStreak >= 500 },
	"streak_730":  func(g domain.GameState) bool { return g.LongestStreak >= 730 },
	"streak_1000": func(g domain.GameState) bool { return g.LongestStreak >= 1000 },

	// Lifetime vegetable grams
	"veg_total_1kg":    func(g domain.GameState) bool { return g.TotalVegetableGrams >= 1_000 },
	"veg_total_5kg":    func(g domain.GameState) bool { return g.TotalVegetableGrams >= 5_000 },
	"veg_total_10kg":   func(g domain.GameState) bool { return g.TotalVegetableGrams >= 10_000 },
	"veg_total_25kg":   func(g domain.GameState) bool { return g.TotalVegetableGrams >= 25_000 },
	"veg_total_50kg":   func(g domain.GameState) bool { return g.TotalVegetableGrams >= 50_000 },
	"veg_total_100kg":  func(g domain.GameState) bool { return g.TotalVegetableGrams >= 100_000 },
	"veg_total_250kg":  func(g domain.GameState) bool { return g.TotalVegetableGrams >= 250_000 },
	"veg_total_500kg":  func(g domain.GameState) bool { return g.TotalVegetableGrams >= 500_000 },
	"veg_total_1000kg": func(g domain.GameState) bool { return g.TotalVegetableGrams >= 1_000_000 },
	"veg_total_1500kg": func(g domain.GameState) bool { return g.TotalVegetableGrams >= 1_500_000 },
	"veg_total_2000kg": func(g domain.GameState) bool { return g.TotalVegetableGrams >= 2_000_000 },
	"veg_total_3000kg": func(g domain.GameState) bool { return g.TotalVegetableGrams >= 3_000_000 },

	// Daily goal tiers
	"veg_min_first":    func(g domain.GameState) bool { return g.DaysMinimumGoalMet >= 1 },
	"veg_min_10":       func(g domain.GameState) bool { return g.DaysMinimumGoalMet >= 10 },
	"veg_min_30":       func(g domain.GameState) bool { return g.DaysMinimumGoalMet >= 30 },
	"veg_min_100":      func(g domain.GameState) bool { return g.DaysMinimumGoalMet >= 100 },
	"veg_min_365":      func(g domain.GameState) bool { return g.DaysMinimumGoalMet >= 365 },
	"veg_std_first":    func(g domain.GameState) bool { return g.DaysStandardGoalMet >= 1 },
	"veg_std_10":       func(g domain.GameState) bool { return g.DaysStandardGoalMet >= 10 },
	"veg_std_30":       func(g domain.GameState) bool { return g.DaysStandardGoalMet >= 30 },
	"veg_std_100":      func(g domain.GameState) bool { return g.DaysStandardGoalMet >= 100 },
	"veg_std_365":      func(g domain.GameState) bool { return g.DaysStandardGoalMet >= 365 },
	"veg_target_first": func(g domain.GameState) bool { return g.DaysTargetGoalMet >= 1 },
	"veg_target_10":    func(g domain.GameState) bool { return g.DaysTargetGoalMet >= 10 },
	"veg_target_30":    func(g domain.GameState) bool { return g.DaysTargetGoalMet >= 30 },
	"veg_target_100":   func(g domain.GameState) bool { return g.DaysTargetGoalMet >= 100 },
	"veg_target_365":   func(g domain.GameState) bool { return g.DaysTargetGoalMet >= 365 },

	// Perfect wake-ups
	"wake_first": func(g domain.GameState) bool { return g.PerfectWakeupCount >= 1 },
	"wake_3":     func(g domain.GameState) bool { return g.LongestPerfectWakeupStreak >= 3 },
	"wake_7":     func(g domain.GameState) bool { return g.LongestPerfectWakeupStreak >= 7 },
	"wake_14":    func(g domain.GameState) bool { return g.LongestPerfectWakeupStreak >= 14 },
	"wake_21":    func(g domain.GameState) bool { return g.LongestPerfectWakeupStreak >= 21 },
	"wake_30":    func(g domain.GameState) bool { return g.LongestPerfectWakeupStreak >= 30 },
	"wake_60":    func(g domain.GameState) bool { return g.LongestPerfectWakeupStreak >= 60 },
	"wake_90":    func(g domain.GameState) bool { return g.LongestPerfectWakeupStreak >= 90 },
	"wake_180":   func(g domain.GameState) bool { return g.LongestPerfectWakeupStreak >= 180 },
	"wake_365":   func(g domain.GameState) bool { return g.LongestPerfectWakeupStreak >= 365 },
	"wake_500":   func(g domain.GameState) bool { return g.LongestPerfectWakeupStreak >= 500 },
	"wake_730":   func(g domain.GameState) bool { return g.LongestPerfectWakeupStreak >= 730 },

	// Levels
	"level_5":   func(g domain.GameState) bool { return g.Level >= 5 },
	"level_10":  func(g domain.GameState) bool { return g.Level >= 10 },
	"level_15":  func(g domain.GameState) bool { return g.Level >= 15 },
	"level_20":  func(g domain.GameState) bool { return g.Level >= 20 },
	"level_25":  func(g domain.GameState) bool { return g.Level >= 25 },
	"level_30":  func(g domain.GameState) bool { return g.Level >= 30 },
	"level_40":  func(g domain.GameState) bool { return g.Level >= 40 },
	"level_50":  func(g domain.GameState) bool { return g.Level >= 50 },
	"level_75":  func(g domain.GameState) bool { return g.Level >= 75 },
	"level_100": func(g domain.GameState) bool { return g.Level >= 100 },

	// Record counts
	"records_1":    func(g domain.GameState) bool { return g.TotalRecords() >= 1 },
	"records_10":   func(g domain.GameState) bool { return g.TotalRecords() >= 10 },
	"records_50":   func(g domain.GameState) bool { return g.TotalRecords() >= 50 },
	"records_100":  func(g domain.GameState) bool { return g.TotalRecords() >= 100 },
	"records_250":  func(g domain.GameState) bool { return g.TotalRecords() >= 250 },
	"records_500":  func(g domain.GameState) bool { return g.TotalRecords() >= 500 },
	"records_1000": func(g domain.GameState) bool { return g.TotalRecords() >= 1000 },
	"records_2000": func(g domain.GameState) bool { return g.TotalRecords() >= 2000 },
	"records_3000": func(g domain.GameState) bool { return g.TotalRecords() >= 3000 },
	"records_5000": func(g domain.GameState) bool { return g.TotalRecords() >= 5000 },

	// Combos
	"combo_first": func(g domain.GameState) bool { return g.ComboCount >= 1 },
	"combo_3":     func(g domain.GameState) bool { return g.LongestComboStreak >= 3 },
	"combo_7":     func(g domain.GameState) bool { return g.LongestComboStreak >= 7 },
	"combo_14":    func(g domain.GameState) bool { return g.LongestComboStreak >= 14 },
	"combo_30":    func(g domain.GameState) bool { return g.LongestComboStreak >= 30 },
	"combo_60":    func(g domain.GameState) bool { return g.LongestComboStreak >= 60 },
	"combo_90":    func(g domain.GameState) bool { return g.LongestComboStreak >= 90 },
	"combo_180":   func(g domain.GameState) bool { return g.LongestComboStreak >= 180 },
	"combo_365":   func(g domain.GameState) bool { return g.LongestComboStreak >= 365 },
	"combo_730":   func(g domain.GameState) bool { return g.LongestComboStreak >= 730 },

	// Special
	"special_1000g":     func(g domain.GameState) bool { return g.MaxDailyVegetable >= 1000 },
	"special_early":     func(g domain.GameState) bool { return g.EarlyBirdCount >= 1 },
	"special_100days":   func(g domain.GameState) bool { return g.TotalRecordDays >= 100 },
	"special_halfyear":  func(g domain.GameState) bool { return g.TotalRecordDays >= 180 },
	"special_1year":     func(g domain.GameState) bool { return g.TotalRecordDays >= 365 },
	"special_2year":     func(g domain.GameState) bool { return g.TotalRecordDays >= 730 },
	"special_3year":     func(g domain.GameState) bool { return g.TotalRecordDays >= 1095 },
	"special_monthly":   func(g domain.GameState) bool { return g.MonthlyPerfectMonths >= 1 },
	"special_monthly3":  func(g domain.GameState) bool { return g.MonthlyPerfectMonths >= 3 },
	"special_monthly6":  func(g domain.GameState) bool { return g.MonthlyPerfectMonths >= 6 },
	"special_monthly12": func(g domain.GameState) bool { return g.MonthlyPerfectMonths >= 12 },
	"special_veteran":   func(g domain.GameState) bool { return g.Level >= 25 && g.TotalRecordDays >= 100 },
	"special_collector": func(g domain.GameState) bool { return countUnlockedCategories(g) >= 7 },
	"special_3meals":    func(g domain.GameState) bool { return g.Max3MealsReached },
	"special_1000g_10":  func(g domain.GameState) bool { return g.Over1000gDays >= 10 },
	"special_dedicated": func(g domain.GameState) bool { return g.TotalVegetableGrams >= 100_000 && g.Level >= 30 },
	"special_perfect10": func(g domain.GameState) bool { return g.PerfectWakeupCount >= 10 },
	"special_perfect100": func(g domain.GameState) bool { return g.PerfectWakeupCount >= 100 },
	"special_legend": func(g domain.GameState) bool {
		return g.TotalRecordDays >= 1000 && g.Level >= 50 && g.TotalVegetableGrams >= 1_000_000
	},
}
