package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vegirise/vegirise/internal/domain"
)

// ─── Vegetable Records ──────────────────────────────────────────────────────

// AddVegetable inserts a new intake entry and returns it with its
// store-assigned id.
func (d *DB) AddVegetable(date string, grams int64) (domain.VegetableRecord, error) {
	rec := domain.VegetableRecord{
		ID:        uuid.NewString(),
		Date:      date,
		Grams:     grams,
		CreatedAt: time.Now(),
	}
	_, err := d.db.Exec(
		`INSERT INTO vegetables (id, date, grams, created_at) VALUES (?, ?, ?, ?)`,
		rec.ID, rec.Date, rec.Grams, rec.CreatedAt.Unix(),
	)
	if err != nil {
		return domain.VegetableRecord{}, fmt.Errorf("insert vegetable: %w", err)
	}
	return rec, nil
}

// GetVegetable retrieves a single entry by id, nil if absent.
func (d *DB) GetVegetable(id string) (*domain.VegetableRecord, error) {
	row := d.db.QueryRow(
		`SELECT id, date, grams, created_at FROM vegetables WHERE id = ?`, id,
	)
	return scanVegetable(row)
}

// GetVegetables returns a date's entries in insertion order.
func (d *DB) GetVegetables(date string) ([]domain.VegetableRecord, error) {
	rows, err := d.db.Query(
		`SELECT id, date, grams, created_at FROM vegetables
		 WHERE date = ? ORDER BY created_at ASC, id ASC`, date,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.VegetableRecord
	for rows.Next() {
		r, err := scanVegetable(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *r)
	}
	return records, rows.Err()
}

// GetDayVegetableTotal sums a date's grams.
func (d *DB) GetDayVegetableTotal(date string) (int64, error) {
	var total int64
	err := d.db.QueryRow(
		`SELECT COALESCE(SUM(grams), 0) FROM vegetables WHERE date = ?`, date,
	).Scan(&total)
	return total, err
}

// DeleteVegetable removes an entry by id.
func (d *DB) DeleteVegetable(id string) error {
	result, err := d.db.Exec(`DELETE FROM vegetables WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

// ─── Wake-up Records ────────────────────────────────────────────────────────

// SaveWakeup upserts a date's wake-up record; later writes overwrite.
func (d *DB) SaveWakeup(rec domain.WakeupRecord) error {
	_, err := d.db.Exec(
		`INSERT INTO wakeups (date, wakeup_time, getup_time, goal_time, score, diff_minutes)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(date) DO UPDATE SET
			wakeup_time=excluded.wakeup_time,
			getup_time=excluded.getup_time,
			goal_time=excluded.goal_time,
			score=excluded.score,
			diff_minutes=excluded.diff_minutes`,
		rec.Date, rec.WakeupTime, rec.GetUpTime, rec.GoalTime, rec.Score, rec.DiffMinutes,
	)
	return err
}

// GetWakeup retrieves a date's wake-up record, nil if absent.
func (d *DB) GetWakeup(date string) (*domain.WakeupRecord, error) {
	var rec domain.WakeupRecord
	err := d.db.QueryRow(
		`SELECT date, wakeup_time, getup_time, goal_time, score, diff_minutes
		 FROM wakeups WHERE date = ?`, date,
	).Scan(&rec.Date, &rec.WakeupTime, &rec.GetUpTime, &rec.GoalTime, &rec.Score, &rec.DiffMinutes)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ─── Daily Goal Flags ───────────────────────────────────────────────────────

// GetDailyGoals loads a date's flags, defaulting to all-false when absent.
func (d *DB) GetDailyGoals(date string) (domain.DailyGoals, error) {
	goals := domain.DailyGoals{Date: date}
	err := d.db.QueryRow(
		`SELECT minimum, standard, target, over_1000g, combo
		 FROM daily_goals WHERE date = ?`, date,
	).Scan(&goals.Minimum, &goals.Standard, &goals.Target, &goals.Over1000g, &goals.Combo)
	if err == sql.ErrNoRows {
		return goals, nil
	}
	return goals, err
}

// SaveDailyGoals upserts a date's flags.
func (d *DB) SaveDailyGoals(goals domain.DailyGoals) error {
	_, err := d.db.Exec(
		`INSERT INTO daily_goals (date, minimum, standard, target, over_1000g, combo)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(date) DO UPDATE SET
			minimum=excluded.minimum,
			standard=excluded.standard,
			target=excluded.target,
			over_1000g=excluded.over_1000g,
			combo=excluded.combo`,
		goals.Date, goals.Minimum, goals.Standard, goals.Target, goals.Over1000g, goals.Combo,
	)
	return err
}

// ─── Aggregate Queries ──────────────────────────────────────────────────────

// CountRecordDays counts distinct dates in [from, to] (inclusive) with
// at least one record of either kind.
func (d *DB) CountRecordDays(from, to string) (int, error) {
	var count int
	err := d.db.QueryRow(
		`SELECT COUNT(*) FROM (
			SELECT date FROM vegetables WHERE date BETWEEN ? AND ?
			UNION
			SELECT date FROM wakeups WHERE date BETWEEN ? AND ?
		)`, from, to, from, to,
	).Scan(&count)
	return count, err
}

// ─── Scanners ───────────────────────────────────────────────────────────────

func scanVegetable(s scanner) (*domain.VegetableRecord, error) {
	var r domain.VegetableRecord
	var createdAt int64
	err := s.Scan(&r.ID, &r.Date, &r.Grams, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	r.CreatedAt = time.Unix(createdAt, 0)
	return &r, nil
}
