package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/vegirise/vegirise/internal/domain"
)

// ─── Game State ─────────────────────────────────────────────────────────────

// GetGameState loads the aggregate state, returning the fresh-install
// default when nothing is persisted. Unlocked achievement ids are
// loaded alongside the singleton row, in unlock order.
func (d *DB) GetGameState() (domain.GameState, error) {
	gs := domain.DefaultGameState()
	err := d.db.QueryRow(
		`SELECT xp, level, current_streak, longest_streak, total_record_days,
			total_vegetable_grams, total_vegetable_records, total_wakeup_records,
			perfect_wakeup_count, perfect_wakeup_streak, longest_perfect_wakeup_streak,
			combo_count, combo_streak, longest_combo_streak,
			days_minimum_goal_met, days_standard_goal_met, days_target_goal_met,
			max_daily_vegetable, over_1000g_days, early_bird_count,
			monthly_perfect_months, max_3_meals_reached,
			last_record_date, first_record_date, last_wakeup_date
		 FROM game_state WHERE id = 1`,
	).Scan(
		&gs.XP, &gs.Level, &gs.CurrentStreak, &gs.LongestStreak, &gs.TotalRecordDays,
		&gs.TotalVegetableGrams, &gs.TotalVegetableRecords, &gs.TotalWakeupRecords,
		&gs.PerfectWakeupCount, &gs.PerfectWakeupStreak, &gs.LongestPerfectWakeupStreak,
		&gs.ComboCount, &gs.ComboStreak, &gs.LongestComboStreak,
		&gs.DaysMinimumGoalMet, &gs.DaysStandardGoalMet, &gs.DaysTargetGoalMet,
		&gs.MaxDailyVegetable, &gs.Over1000gDays, &gs.EarlyBirdCount,
		&gs.MonthlyPerfectMonths, &gs.Max3MealsReached,
		&gs.LastRecordDate, &gs.FirstRecordDate, &gs.LastWakeupDate,
	)
	if err == sql.ErrNoRows {
		return gs, nil
	}
	if err != nil {
		return gs, fmt.Errorf("load game state: %w", err)
	}

	rows, err := d.db.Query(`SELECT id FROM achievements ORDER BY unlocked_at ASC, rowid ASC`)
	if err != nil {
		return gs, fmt.Errorf("load unlocked achievements: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return gs, err
		}
		gs.UnlockedAchievements = append(gs.UnlockedAchievements, id)
	}
	return gs, rows.Err()
}

// SaveGameState persists the aggregate row and any newly appended
// achievement ids in one transaction. Already-recorded unlocks are
// left untouched (INSERT OR IGNORE).
func (d *DB) SaveGameState(gs domain.GameState) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}

	_, err = tx.Exec(
		`INSERT INTO game_state (
			id, xp, level, current_streak, longest_streak, total_record_days,
			total_vegetable_grams, total_vegetable_records, total_wakeup_records,
			perfect_wakeup_count, perfect_wakeup_streak, longest_perfect_wakeup_streak,
			combo_count, combo_streak, longest_combo_streak,
			days_minimum_goal_met, days_standard_goal_met, days_target_goal_met,
			max_daily_vegetable, over_1000g_days, early_bird_count,
			monthly_perfect_months, max_3_meals_reached,
			last_record_date, first_record_date, last_wakeup_date
		 ) VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			xp=excluded.xp, level=excluded.level,
			current_streak=excluded.current_streak, longest_streak=excluded.longest_streak,
			total_record_days=excluded.total_record_days,
			total_vegetable_grams=excluded.total_vegetable_grams,
			total_vegetable_records=excluded.total_vegetable_records,
			total_wakeup_records=excluded.total_wakeup_records,
			perfect_wakeup_count=excluded.perfect_wakeup_count,
			perfect_wakeup_streak=excluded.perfect_wakeup_streak,
			longest_perfect_wakeup_streak=excluded.longest_perfect_wakeup_streak,
			combo_count=excluded.combo_count, combo_streak=excluded.combo_streak,
			longest_combo_streak=excluded.longest_combo_streak,
			days_minimum_goal_met=excluded.days_minimum_goal_met,
			days_standard_goal_met=excluded.days_standard_goal_met,
			days_target_goal_met=excluded.days_target_goal_met,
			max_daily_vegetable=excluded.max_daily_vegetable,
			over_1000g_days=excluded.over_1000g_days,
			early_bird_count=excluded.early_bird_count,
			monthly_perfect_months=excluded.monthly_perfect_months,
			max_3_meals_reached=excluded.max_3_meals_reached,
			last_record_date=excluded.last_record_date,
			first_record_date=excluded.first_record_date,
			last_wakeup_date=excluded.last_wakeup_date`,
		gs.XP, gs.Level, gs.CurrentStreak, gs.LongestStreak, gs.TotalRecordDays,
		gs.TotalVegetableGrams, gs.TotalVegetableRecords, gs.TotalWakeupRecords,
		gs.PerfectWakeupCount, gs.PerfectWakeupStreak, gs.LongestPerfectWakeupStreak,
		gs.ComboCount, gs.ComboStreak, gs.LongestComboStreak,
		gs.DaysMinimumGoalMet, gs.DaysStandardGoalMet, gs.DaysTargetGoalMet,
		gs.MaxDailyVegetable, gs.Over1000gDays, gs.EarlyBirdCount,
		gs.MonthlyPerfectMonths, gs.Max3MealsReached,
		gs.LastRecordDate, gs.FirstRecordDate, gs.LastWakeupDate,
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("save game state: %w", err)
	}

	now := time.Now().Unix()
	for _, id := range gs.UnlockedAchievements {
		if _, err := tx.Exec(
			`INSERT OR IGNORE INTO achievements (id, unlocked_at) VALUES (?, ?)`, id, now,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("save achievement %s: %w", id, err)
		}
	}

	return tx.Commit()
}

// ListUnlockedAchievements returns unlock records, newest first.
func (d *DB) ListUnlockedAchievements() ([]domain.UnlockedAchievement, error) {
	rows, err := d.db.Query(
		`SELECT id, unlocked_at FROM achievements ORDER BY unlocked_at DESC, rowid DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var unlocked []domain.UnlockedAchievement
	for rows.Next() {
		var a domain.UnlockedAchievement
		var at int64
		if err := rows.Scan(&a.ID, &at); err != nil {
			return nil, err
		}
		a.UnlockedAt = time.Unix(at, 0)
		unlocked = append(unlocked, a)
	}
	return unlocked, rows.Err()
}

// ─── Settings ───────────────────────────────────────────────────────────────

// GetSettings loads the user settings, returning defaults when none
// are persisted.
func (d *DB) GetSettings() (domain.Settings, error) {
	s := domain.DefaultSettings()
	err := d.db.QueryRow(
		`SELECT veg_minimum, veg_standard, veg_target, wakeup_goal_time
		 FROM settings WHERE id = 1`,
	).Scan(&s.VegetableGoals.Minimum, &s.VegetableGoals.Standard, &s.VegetableGoals.Target, &s.WakeupGoalTime)
	if err == sql.ErrNoRows {
		return s, nil
	}
	return s, err
}

// SaveSettings upserts the user settings.
func (d *DB) SaveSettings(s domain.Settings) error {
	_, err := d.db.Exec(
		`INSERT INTO settings (id, veg_minimum, veg_standard, veg_target, wakeup_goal_time)
		 VALUES (1, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			veg_minimum=excluded.veg_minimum,
			veg_standard=excluded.veg_standard,
			veg_target=excluded.veg_target,
			wakeup_goal_time=excluded.wakeup_goal_time`,
		s.VegetableGoals.Minimum, s.VegetableGoals.Standard, s.VegetableGoals.Target, s.WakeupGoalTime,
	)
	return err
}

// SeedSettings inserts the settings row only when none has been saved
// yet, so configured defaults apply on first run without clobbering
// user-saved settings.
func (d *DB) SeedSettings(s domain.Settings) error {
	_, err := d.db.Exec(
		`INSERT OR IGNORE INTO settings (id, veg_minimum, veg_standard, veg_target, wakeup_goal_time)
		 VALUES (1, ?, ?, ?, ?)`,
		s.VegetableGoals.Minimum, s.VegetableGoals.Standard, s.VegetableGoals.Target, s.WakeupGoalTime,
	)
	return err
}
