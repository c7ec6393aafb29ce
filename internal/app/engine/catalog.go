package engine

import (
	"sync"

	"github.com/vegirise/vegirise/internal/domain"
)

// The static achievement catalog: 100 badges across 8 categories.
// Declarative only; evaluation rules live in the rules table keyed
// by id. Order here is unlock-report order.

var (
	catalogOnce sync.Once
	catalog     []domain.AchievementDef
	catalogByID map[string]domain.AchievementDef
)

// Catalog returns the full achievement catalog, built once.
func Catalog() []domain.AchievementDef {
	catalogOnce.Do(buildCatalog)
	return catalog
}

// catalogIndex returns the catalog keyed by id.
func catalogIndex() map[string]domain.AchievementDef {
	catalogOnce.Do(buildCatalog)
	return catalogByID
}

func buildCatalog() {
	catalog = []domain.AchievementDef{
		// ── Record streak (12) ─────────────────────────────────────────
		{ID: "streak_3", Name: "Habit Sprout", Description: "Recorded 3 days in a row", Icon: "🔥", Category: domain.CatStreak},
		{ID: "streak_7", Name: "One-Week Habit", Description: "Recorded 7 days in a row", Icon: "🔥", Category: domain.CatStreak},
		{ID: "streak_14", Name: "Two Weeks Strong", Description: "Recorded 14 days in a row", Icon: "🔥", Category: domain.CatStreak},
		{ID: "streak_21", Name: "Habit Formed", Description: "21 consecutive days — the habit benchmark", Icon: "🔥", Category: domain.CatStreak},
		{ID: "streak_30", Name: "Full Month", Description: "Recorded 30 days in a row", Icon: "🏅", Category: domain.CatStreak},
		{ID: "streak_60", Name: "Two-Month Iron Will", Description: "Recorded 60 days in a row", Icon: "💪", Category: domain.CatStreak},
		{ID: "streak_90", Name: "Quarter Master", Description: "Recorded 90 days in a row", Icon: "🏆", Category: domain.CatStreak},
		{ID: "streak_180", Name: "Half-Year Vow", Description: "Recorded 180 days in a row", Icon: "👑", Category: domain.CatStreak},
		{ID: "streak_365", Name: "A Year Unbroken", Description: "365 consecutive days — a full year", Icon: "🎊", Category: domain.CatStreak},
		{ID: "streak_500", Name: "500-Day Trail", Description: "Recorded 500 days in a row", Icon: "✨", Category: domain.CatStreak},
		{ID: "streak_730", Name: "Two Years Running", Description: "730 consecutive days — two full years", Icon: "🌟", Category: domain.CatStreak},
		{ID: "streak_1000", Name: "Thousand-Day Discipline", Description: "A legendary 1000-day streak", Icon: "🐉", Category: domain.CatStreak},

		// ── Lifetime vegetables (12) ───────────────────────────────────
		{ID: "veg_total_1kg", Name: "First Kilogram", Description: "Ate 1 kg of vegetables in total", Icon: "🌱", Category: domain.CatVegTotal},
		{ID: "veg_total_5kg", Name: "5 kg of Greens", Description: "Ate 5 kg of vegetables in total", Icon: "🥬", Category: domain.CatVegTotal},
		{ID: "veg_total_10kg", Name: "10 kg of Greens", Description: "Ate 10 kg of vegetables in total", Icon: "🥦", Category: domain.CatVegTotal},
		{ID: "veg_total_25kg", Name: "25 kg of Greens", Description: "Ate 25 kg of vegetables in total", Icon: "🥗", Category: domain.CatVegTotal},
		{ID: "veg_total_50kg", Name: "50 kg of Greens", Description: "Ate 50 kg of vegetables in total", Icon: "🌿", Category: domain.CatVegTotal},
		{ID: "veg_total_100kg", Name: "Body Weight in Veggies", Description: "100 kg lifetime — your own weight in vegetables", Icon: "🌳", Category: domain.CatVegTotal},
		{ID: "veg_total_250kg", Name: "Quarter Ton", Description: "Ate 250 kg of vegetables in total", Icon: "🏔️", Category: domain.CatVegTotal},
		{ID: "veg_total_500kg", Name: "Half a Ton", Description: "500 kg lifetime — an astonishing amount", Icon: "🗻", Category: domain.CatVegTotal},
		{ID: "veg_total_1000kg", Name: "One Ton of Vegetables", Description: "Ate a full ton of vegetables", Icon: "🌍", Category: domain.CatVegTotal},
		{ID: "veg_total_1500kg", Name: "A Ton and a Half", Description: "Ate 1.5 tons of vegetables in total", Icon: "🪐", Category: domain.CatVegTotal},
		{ID: "veg_total_2000kg", Name: "Two Tons", Description: "2 tons lifetime — the weight of a car", Icon: "🚀", Category: domain.CatVegTotal},
		{ID: "veg_total_3000kg", Name: "Three-Ton Legend", Description: "A legendary 3 tons of vegetables", Icon: "⭐", Category: domain.CatVegTotal},

		// ── Daily goal tiers (15) ──────────────────────────────────────
		{ID: "veg_min_first", Name: "Minimum, Met", Description: "Reached the minimum goal for the first time", Icon: "🎯", Category: domain.CatVegDaily},
		{ID: "veg_min_10", Name: "Minimum ×10", Description: "Met the minimum goal on 10 days", Icon: "🎯", Category: domain.CatVegDaily},
		{ID: "veg_min_30", Name: "Minimum ×30", Description: "Met the minimum goal on 30 days", Icon: "🎯", Category: domain.CatVegDaily},
		{ID: "veg_min_100", Name: "Minimum ×100", Description: "Met the minimum goal on 100 days", Icon: "🎯", Category: domain.CatVegDaily},
		{ID: "veg_min_365", Name: "Minimum ×365", Description: "Met the minimum goal a year's worth of days", Icon: "🎯", Category: domain.CatVegDaily},
		{ID: "veg_std_first", Name: "Standard, Met", Description: "Reached the standard goal for the first time", Icon: "💚", Category: domain.CatVegDaily},
		{ID: "veg_std_10", Name: "Standard ×10", Description: "Met the standard goal on 10 days", Icon: "💚", Category: domain.CatVegDaily},
		{ID: "veg_std_30", Name: "Standard ×30", Description: "Met the standard goal on 30 days", Icon: "💚", Category: domain.CatVegDaily},
		{ID: "veg_std_100", Name: "Standard ×100", Description: "Met the standard goal on 100 days", Icon: "💚", Category: domain.CatVegDaily},
		{ID: "veg_std_365", Name: "Standard ×365", Description: "Met the standard goal a year's worth of days", Icon: "💚", Category: domain.CatVegDaily},
		{ID: "veg_target_first", Name: "Target, Met", Description: "Reached the target goal for the first time", Icon: "🏆", Category: domain.CatVegDaily},
		{ID: "veg_target_10", Name: "Target ×10", Description: "Met the target goal on 10 days", Icon: "🏆", Category: domain.CatVegDaily},
		{ID: "veg_target_30", Name: "Target ×30", Description: "Met the target goal on 30 days", Icon: "🏆", Category: domain.CatVegDaily},
		{ID: "veg_target_100", Name: "Target ×100", Description: "Met the target goal on 100 days", Icon: "🏆", Category: domain.CatVegDaily},
		{ID: "veg_target_365", Name: "Target ×365", Description: "Met the target goal a year's worth of days", Icon: "🏆", Category: domain.CatVegDaily},

		// ── Perfect wake-ups (12) ──────────────────────────────────────
		{ID: "wake_first", Name: "First Light", Description: "First perfect wake-up", Icon: "🌅", Category: domain.CatWakeup},
		{ID: "wake_3", Name: "Three Perfect Mornings", Description: "3 perfect wake-ups in a row", Icon: "🌅", Category: domain.CatWakeup},
		{ID: "wake_7", Name: "Perfect Week", Description: "7 perfect wake-ups in a row", Icon: "☀️", Category: domain.CatWakeup},
		{ID: "wake_14", Name: "Perfect Fortnight", Description: "14 perfect wake-ups in a row", Icon: "☀️", Category: domain.CatWakeup},
		{ID: "wake_21", Name: "Three Perfect Weeks", Description: "21 perfect wake-ups in a row", Icon: "🌞", Category: domain.CatWakeup},
		{ID: "wake_30", Name: "Perfect Month", Description: "30 perfect wake-ups in a row", Icon: "🌞", Category: domain.CatWakeup},
		{ID: "wake_60", Name: "Two Perfect Months", Description: "60 perfect wake-ups in a row", Icon: "🏅", Category: domain.CatWakeup},
		{ID: "wake_90", Name: "Perfect Quarter", Description: "90 perfect wake-ups in a row", Icon: "🏆", Category: domain.CatWakeup},
		{ID: "wake_180", Name: "Perfect Half-Year", Description: "180 perfect wake-ups in a row", Icon: "👑", Category: domain.CatWakeup},
		{ID: "wake_365", Name: "Perfect Year", Description: "365 perfect wake-ups in a row", Icon: "🎊", Category: domain.CatWakeup},
		{ID: "wake_500", Name: "500 Perfect Mornings", Description: "500 perfect wake-ups in a row", Icon: "✨", Category: domain.CatWakeup},
		{ID: "wake_730", Name: "Two Perfect Years", Description: "A legendary 730-day perfect run", Icon: "🐉", Category: domain.CatWakeup},

		// ── Levels (10) ────────────────────────────────────────────────
		{ID: "level_5", Name: "Level 5", Description: "Reached level 5", Icon: "⭐", Category: domain.CatLevel},
		{ID: "level_10", Name: "Level 10", Description: "Reached level 10 — double digits", Icon: "⭐", Category: domain.CatLevel},
		{ID: "level_15", Name: "Level 15", Description: "Reached level 15", Icon: "🌟", Category: domain.CatLevel},
		{ID: "level_20", Name: "Level 20", Description: "Level 20 — growing steadily", Icon: "🌟", Category: domain.CatLevel},
		{ID: "level_25", Name: "Level 25", Description: "Reached level 25", Icon: "💫", Category: domain.CatLevel},
		{ID: "level_30", Name: "Level 30", Description: "Level 30 — veteran territory", Icon: "💫", Category: domain.CatLevel},
		{ID: "level_40", Name: "Level 40", Description: "Reached level 40", Icon: "🏅", Category: domain.CatLevel},
		{ID: "level_50", Name: "Level 50", Description: "Level 50 — the half-century mark", Icon: "🏆", Category: domain.CatLevel},
		{ID: "level_75", Name: "Level 75", Description: "Level 75 — mastery in sight", Icon: "👑", Category: domain.CatLevel},
		{ID: "level_100", Name: "Level 100", Description: "Level 100 — nearly maxed out", Icon: "🐉", Category: domain.CatLevel},

		// ── Record counts (10) ─────────────────────────────────────────
		{ID: "records_1", Name: "First Entry", Description: "Made your very first record", Icon: "📝", Category: domain.CatRecords},
		{ID: "records_10", Name: "10 Records", Description: "Made 10 records in total", Icon: "📝", Category: domain.CatRecords},
		{ID: "records_50", Name: "50 Records", Description: "50 records — getting the hang of it", Icon: "📋", Category: domain.CatRecords},
		{ID: "records_100", Name: "100 Records", Description: "100 records — triple digits", Icon: "📋", Category: domain.CatRecords},
		{ID: "records_250", Name: "250 Records", Description: "Made 250 records in total", Icon: "📖", Category: domain.CatRecords},
		{ID: "records_500", Name: "500 Records", Description: "500 records — a seasoned logger", Icon: "📖", Category: domain.CatRecords},
		{ID: "records_1000", Name: "1000 Records", Description: "Crossed the 1000-record mark", Icon: "📚", Category: domain.CatRecords},
		{ID: "records_2000", Name: "2000 Records", Description: "2000 records — a true enthusiast", Icon: "📚", Category: domain.CatRecords},
		{ID: "records_3000", Name: "3000 Records", Description: "Made 3000 records in total", Icon: "🗃️", Category: domain.CatRecords},
		{ID: "records_5000", Name: "5000 Records", Description: "5000 records — record-keeping deity", Icon: "🗃️", Category: domain.CatRecords},

		// ── Combos (10) ────────────────────────────────────────────────
		{ID: "combo_first", Name: "First Combo", Description: "Vegetable goal and perfect wake-up on the same day", Icon: "💎", Category: domain.CatCombo},
		{ID: "combo_3", Name: "Triple Combo", Description: "Combo on 3 consecutive days", Icon: "💎", Category: domain.CatCombo},
		{ID: "combo_7", Name: "Combo Week", Description: "7 consecutive combo days — on a roll", Icon: "💎", Category: domain.CatCombo},
		{ID: "combo_14", Name: "Combo Fortnight", Description: "14 consecutive combo days — two flawless weeks", Icon: "🔮", Category: domain.CatCombo},
		{ID: "combo_30", Name: "Combo Month", Description: "30 consecutive combo days — ironclad habits", Icon: "🔮", Category: domain.CatCombo},
		{ID: "combo_60", Name: "Two Combo Months", Description: "Combo on 60 consecutive days", Icon: "💠", Category: domain.CatCombo},
		{ID: "combo_90", Name: "Combo Quarter", Description: "90 consecutive combo days — a quarter conquered", Icon: "💠", Category: domain.CatCombo},
		{ID: "combo_180", Name: "Combo Half-Year", Description: "180 consecutive combo days — half a year flawless", Icon: "🌈", Category: domain.CatCombo},
		{ID: "combo_365", Name: "Combo Year", Description: "365 consecutive combo days — a perfect year", Icon: "🌈", Category: domain.CatCombo},
		{ID: "combo_730", Name: "Combo Beyond Human", Description: "730 consecutive combo days", Icon: "🐉", Category: domain.CatCombo},

		// ── Special (19) ───────────────────────────────────────────────
		{ID: "special_1000g", Name: "Vegetable Master", Description: "Ate 1000 g or more in a single day", Icon: "🥦", Category: domain.CatSpecial},
		{ID: "special_early", Name: "Early Bird", Description: "Recorded a wake-up before 05:30", Icon: "🐓", Category: domain.CatSpecial},
		{ID: "special_100days", Name: "100-Day Mark", Description: "100 days with records", Icon: "🎉", Category: domain.CatSpecial},
		{ID: "special_halfyear", Name: "Half-Year Mark", Description: "180 days with records", Icon: "🎊", Category: domain.CatSpecial},
		{ID: "special_1year", Name: "One-Year Mark", Description: "365 days with records", Icon: "🎂", Category: domain.CatSpecial},
		{ID: "special_2year", Name: "Two-Year Mark", Description: "730 days with records", Icon: "🎆", Category: domain.CatSpecial},
		{ID: "special_3year", Name: "Three-Year Mark", Description: "1095 days with records", Icon: "🌠", Category: domain.CatSpecial},
		{ID: "special_monthly", Name: "Perfect Month", Description: "Recorded every day of a calendar month", Icon: "📅", Category: domain.CatSpecial},
		{ID: "special_monthly3", Name: "Three Perfect Months", Description: "Earned the perfect month 3 times", Icon: "📅", Category: domain.CatSpecial},
		{ID: "special_monthly6", Name: "Six Perfect Months", Description: "Earned the perfect month 6 times", Icon: "📅", Category: domain.CatSpecial},
		{ID: "special_monthly12", Name: "Perfect Year of Months", Description: "Earned the perfect month 12 times", Icon: "📅", Category: domain.CatSpecial},
		{ID: "special_veteran", Name: "Veteran", Description: "Level 25+ with 100+ record days", Icon: "🎖️", Category: domain.CatSpecial},
		{ID: "special_collector", Name: "Collector", Description: "At least one badge from every category", Icon: "🗂️", Category: domain.CatSpecial},
		{ID: "special_3meals", Name: "Greens at Every Meal", Description: "Recorded vegetables 3+ times in one day", Icon: "🍽️", Category: domain.CatSpecial},
		{ID: "special_1000g_10", Name: "Vegetable King", Description: "Ten days at 1000 g or more", Icon: "👑", Category: domain.CatSpecial},
		{ID: "special_dedicated", Name: "The Devoted", Description: "100 kg lifetime and level 30+", Icon: "🧘", Category: domain.CatSpecial},
		{ID: "special_perfect10", Name: "Ten Perfect Mornings", Description: "10 perfect wake-up scores", Icon: "💯", Category: domain.CatSpecial},
		{ID: "special_perfect100", Name: "Hundred Perfect Mornings", Description: "100 perfect wake-up scores", Icon: "💯", Category: domain.CatSpecial},
		{ID: "special_legend", Name: "Legend", Description: "1000 record days, level 50, one ton of vegetables", Icon: "🐉", Category: domain.CatSpecial},
	}

	catalogByID = make(map[string]domain.AchievementDef, len(catalog))
	for _, def := range catalog {
		catalogByID[def.ID] = def
	}
}
