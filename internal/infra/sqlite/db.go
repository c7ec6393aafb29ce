// Package sqlite provides SQLite-based persistent storage for VegiRise.
// Uses WAL mode for concurrent reads and crash-safe writes.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)
)

// DB wraps a SQLite connection with WAL mode and migrations.
// It implements the engine's Store contract.
type DB struct {
	db *sql.DB
}

// Open creates or opens the SQLite database at dir/vegirise.db.
// Enables WAL mode, foreign keys, and 5-second busy timeout.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dir, "vegirise.db")
	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// Connection pool settings for SQLite
	db.SetMaxOpenConns(1) // SQLite is single-writer
	db.SetMaxIdleConns(1)

	d := &DB{db: db}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return d, nil
}

// Close cleanly shuts down the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Ping checks database connectivity.
func (d *DB) Ping() error {
	return d.db.Ping()
}

// migrate runs idempotent schema migrations.
func (d *DB) migrate() error {
	migrations := []string{
		// Vegetable intake entries, many per date
		`CREATE TABLE IF NOT EXISTS vegetables (
			id         TEXT PRIMARY KEY,
			date       TEXT NOT NULL,
			grams      INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_vegetables_date ON vegetables(date)`,

		// Wake-up records, one per date (upserted)
		`CREATE TABLE IF NOT EXISTS wakeups (
			date         TEXT PRIMARY KEY,
			wakeup_time  TEXT NOT NULL,
			getup_time   TEXT NOT NULL DEFAULT '',
			goal_time    TEXT NOT NULL,
			score        INTEGER NOT NULL,
			diff_minutes INTEGER NOT NULL
		)`,

		// Per-date goal-crossing flags; each flips true at most once
		`CREATE TABLE IF NOT EXISTS daily_goals (
			date       TEXT PRIMARY KEY,
			minimum    BOOLEAN NOT NULL DEFAULT 0,
			standard   BOOLEAN NOT NULL DEFAULT 0,
			target     BOOLEAN NOT NULL DEFAULT 0,
			over_1000g BOOLEAN NOT NULL DEFAULT 0,
			combo      BOOLEAN NOT NULL DEFAULT 0
		)`,

		// Singleton aggregate game state
		`CREATE TABLE IF NOT EXISTS game_state (
			id                            INTEGER PRIMARY KEY CHECK (id = 1),
			xp                            INTEGER NOT NULL DEFAULT 0,
			level                         INTEGER NOT NULL DEFAULT 1,
			current_streak                INTEGER NOT NULL DEFAULT 0,
			longest_streak                INTEGER NOT NULL DEFAULT 0,
			total_record_days             INTEGER NOT NULL DEFAULT 0,
			total_vegetable_grams         INTEGER NOT NULL DEFAULT 0,
			total_vegetable_records       INTEGER NOT NULL DEFAULT 0,
			total_wakeup_records          INTEGER NOT NULL DEFAULT 0,
			perfect_wakeup_count          INTEGER NOT NULL DEFAULT 0,
			perfect_wakeup_streak         INTEGER NOT NULL DEFAULT 0,
			longest_perfect_wakeup_streak INTEGER NOT NULL DEFAULT 0,
			combo_count                   INTEGER NOT NULL DEFAULT 0,
			combo_streak                  INTEGER NOT NULL DEFAULT 0,
			longest_combo_streak          INTEGER NOT NULL DEFAULT 0,
			days_minimum_goal_met         INTEGER NOT NULL DEFAULT 0,
			days_standard_goal_met        INTEGER NOT NULL DEFAULT 0,
			days_target_goal_met          INTEGER NOT NULL DEFAULT 0,
			max_daily_vegetable           INTEGER NOT NULL DEFAULT 0,
			over_1000g_days               INTEGER NOT NULL DEFAULT 0,
			early_bird_count              INTEGER NOT NULL DEFAULT 0,
			monthly_perfect_months        INTEGER NOT NULL DEFAULT 0,
			max_3_meals_reached           BOOLEAN NOT NULL DEFAULT 0,
			last_record_date              TEXT NOT NULL DEFAULT '',
			first_record_date             TEXT NOT NULL DEFAULT '',
			last_wakeup_date              TEXT NOT NULL DEFAULT ''
		)`,

		// Singleton user settings
		`CREATE TABLE IF NOT EXISTS settings (
			id               INTEGER PRIMARY KEY CHECK (id = 1),
			veg_minimum      INTEGER NOT NULL,
			veg_standard     INTEGER NOT NULL,
			veg_target       INTEGER NOT NULL,
			wakeup_goal_time TEXT NOT NULL
		)`,

		// Unlocked achievements
		`CREATE TABLE IF NOT EXISTS achievements (
			id          TEXT PRIMARY KEY,
			unlocked_at INTEGER NOT NULL
		)`,
	}

	for _, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

// ResetAll wipes every table back to the fresh-install state.
// Full data wipe is the only operation allowed to clear goal flags.
func (d *DB) ResetAll() error {
	stmts := []string{
		`DELETE FROM vegetables`,
		`DELETE FROM wakeups`,
		`DELETE FROM daily_goals`,
		`DELETE FROM game_state`,
		`DELETE FROM settings`,
		`DELETE FROM achievements`,
	}
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	for _, s := range stmts {
		if _, err := tx.Exec(s); err != nil {
			tx.Rollback()
			return fmt.Errorf("reset: %w", err)
		}
	}
	return tx.Commit()
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}
