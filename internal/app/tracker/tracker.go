// Package tracker is the application service in front of the engine.
// It validates input, writes the raw record rows, scores wake-ups
// against the configured goal time, and hands the pre-validated
// payload to the engine processor.
package tracker

import (
	"fmt"
	"regexp"

	"github.com/vegirise/vegirise/internal/app/engine"
	"github.com/vegirise/vegirise/internal/domain"
	"github.com/vegirise/vegirise/internal/infra/metrics"
	"github.com/vegirise/vegirise/internal/infra/sqlite"
)

var timeRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Tracker coordinates record writes with engine processing.
type Tracker struct {
	db   *sqlite.DB
	proc *engine.Processor
}

// New creates a tracker over the given store and processor.
func New(db *sqlite.DB, proc *engine.Processor) *Tracker {
	return &Tracker{db: db, proc: proc}
}

// ─── Recording ──────────────────────────────────────────────────────────────

// AddVegetable records a vegetable entry for today and runs the engine.
// Grams must be in [1, 1000].
func (t *Tracker) AddVegetable(grams int64) (domain.VegetableRecord, engine.Outcome, error) {
	return t.AddVegetableAt(grams, domain.Today())
}

// AddVegetableAt records a vegetable entry for an explicit date.
func (t *Tracker) AddVegetableAt(grams int64, date string) (domain.VegetableRecord, engine.Outcome, error) {
	if grams < 1 || grams > 1000 {
		metrics.RecordsFailed.WithLabelValues("vegetable").Inc()
		return domain.VegetableRecord{}, engine.Outcome{}, domain.ErrInvalidGrams
	}
	if _, err := domain.ParseDate(date); err != nil {
		metrics.RecordsFailed.WithLabelValues("vegetable").Inc()
		return domain.VegetableRecord{}, engine.Outcome{}, domain.ErrInvalidDate
	}

	rec, err := t.db.AddVegetable(date, grams)
	if err != nil {
		metrics.RecordsFailed.WithLabelValues("vegetable").Inc()
		return domain.VegetableRecord{}, engine.Outcome{}, fmt.Errorf("insert vegetable: %w", err)
	}

	out, err := t.proc.ProcessVegetableAt(domain.VegetablePayload{Grams: grams}, date)
	if err != nil {
		metrics.RecordsFailed.WithLabelValues("vegetable").Inc()
		return rec, engine.Outcome{}, err
	}

	t.observe("vegetable", out)
	return rec, out, nil
}

// RecordWakeup records today's wake-up and runs the engine. At most one
// wake-up exists per date; recording again overwrites the stored record
// but the engine still processes the new event.
func (t *Tracker) RecordWakeup(wakeTime, getUpTime string) (domain.WakeupRecord, engine.Outcome, error) {
	return t.RecordWakeupAt(wakeTime, getUpTime, domain.Today())
}

// RecordWakeupAt records a wake-up for an explicit date.
func (t *Tracker) RecordWakeupAt(wakeTime, getUpTime, date string) (domain.WakeupRecord, engine.Outcome, error) {
	if !timeRe.MatchString(wakeTime) {
		metrics.RecordsFailed.WithLabelValues("wakeup").Inc()
		return domain.WakeupRecord{}, engine.Outcome{}, domain.ErrInvalidTimeFormat
	}
	if getUpTime != "" && !timeRe.MatchString(getUpTime) {
		metrics.RecordsFailed.WithLabelValues("wakeup").Inc()
		return domain.WakeupRecord{}, engine.Outcome{}, domain.ErrInvalidTimeFormat
	}
	if _, err := domain.ParseDate(date); err != nil {
		metrics.RecordsFailed.WithLabelValues("wakeup").Inc()
		return domain.WakeupRecord{}, engine.Outcome{}, domain.ErrInvalidDate
	}

	settings, err := t.db.GetSettings()
	if err != nil {
		return domain.WakeupRecord{}, engine.Outcome{}, fmt.Errorf("load settings: %w", err)
	}

	score := engine.CalculateWakeupScore(wakeTime, settings.WakeupGoalTime)
	rec := domain.WakeupRecord{
		Date:        date,
		WakeupTime:  wakeTime,
		GetUpTime:   getUpTime,
		GoalTime:    settings.WakeupGoalTime,
		Score:       score.Score,
		DiffMinutes: score.DiffMinutes,
	}
	if err := t.db.SaveWakeup(rec); err != nil {
		metrics.RecordsFailed.WithLabelValues("wakeup").Inc()
		return domain.WakeupRecord{}, engine.Outcome{}, fmt.Errorf("save wakeup: %w", err)
	}

	out, err := t.proc.ProcessWakeupAt(domain.WakeupPayload{
		Time:      wakeTime,
		GetUpTime: getUpTime,
		Score:     score.Score,
	}, date)
	if err != nil {
		metrics.RecordsFailed.WithLabelValues("wakeup").Inc()
		return rec, engine.Outcome{}, err
	}

	t.observe("wakeup", out)
	return rec, out, nil
}

// DeleteVegetable removes one vegetable entry and compensates the
// lifetime counters. Goal flags already flipped for the day stay
// flipped; per-date awards are never clawed back.
func (t *Tracker) DeleteVegetable(id string) error {
	rec, err := t.db.GetVegetable(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return domain.ErrRecordNotFound
	}
	if err := t.db.DeleteVegetable(id); err != nil {
		return err
	}

	gs, err := t.db.GetGameState()
	if err != nil {
		return fmt.Errorf("load game state: %w", err)
	}
	gs.TotalVegetableRecords--
	if gs.TotalVegetableRecords < 0 {
		gs.TotalVegetableRecords = 0
	}
	gs.TotalVegetableGrams -= rec.Grams
	if gs.TotalVegetableGrams < 0 {
		gs.TotalVegetableGrams = 0
	}
	return t.db.SaveGameState(gs)
}

// ─── Queries ────────────────────────────────────────────────────────────────

// StateView is the full progress snapshot for status surfaces.
type StateView struct {
	GameState domain.GameState `json:"game_state"`
	LevelInfo engine.LevelInfo `json:"level_info"`
}

// State returns the current game state with derived level info.
func (t *Tracker) State() (StateView, error) {
	gs, err := t.db.GetGameState()
	if err != nil {
		return StateView{}, err
	}
	return StateView{GameState: gs, LevelInfo: engine.CalculateLevel(gs.XP)}, nil
}

// DaySummary is everything recorded for one date plus derived scores.
type DaySummary struct {
	Date       string                   `json:"date"`
	Vegetables []domain.VegetableRecord `json:"vegetables"`
	VegTotal   int64                    `json:"veg_total"`
	Wakeup     *domain.WakeupRecord     `json:"wakeup,omitempty"`
	Goals      domain.DailyGoals        `json:"goals"`
	DayScore   int                      `json:"day_score"`
}

// Day returns the summary for a date.
func (t *Tracker) Day(date string) (DaySummary, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return DaySummary{}, domain.ErrInvalidDate
	}

	vegs, err := t.db.GetVegetables(date)
	if err != nil {
		return DaySummary{}, err
	}
	var total int64
	for _, v := range vegs {
		total += v.Grams
	}

	wakeup, err := t.db.GetWakeup(date)
	if err != nil {
		return DaySummary{}, err
	}
	goals, err := t.db.GetDailyGoals(date)
	if err != nil {
		return DaySummary{}, err
	}
	settings, err := t.db.GetSettings()
	if err != nil {
		return DaySummary{}, err
	}

	wakeScore := 0
	if wakeup != nil {
		wakeScore = wakeup.Score
	}
	return DaySummary{
		Date:       date,
		Vegetables: vegs,
		VegTotal:   total,
		Wakeup:     wakeup,
		Goals:      goals,
		DayScore:   engine.CalculateDayScore(total, settings.VegetableGoals, wakeScore, wakeup != nil),
	}, nil
}

// AchievementView is a catalog entry annotated with unlock state.
type AchievementView struct {
	domain.AchievementDef
	Unlocked   bool   `json:"unlocked"`
	UnlockedAt string `json:"unlocked_at,omitempty"`
}

// Achievements returns the whole catalog in display order, each entry
// annotated with whether and when it was unlocked.
func (t *Tracker) Achievements() ([]AchievementView, error) {
	unlocked, err := t.db.ListUnlockedAchievements()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.UnlockedAchievement, len(unlocked))
	for _, u := range unlocked {
		byID[u.ID] = u
	}

	catalog := engine.Catalog()
	views := make([]AchievementView, 0, len(catalog))
	for _, def := range catalog {
		v := AchievementView{AchievementDef: def}
		if u, ok := byID[def.ID]; ok {
			v.Unlocked = true
			v.UnlockedAt = u.UnlockedAt.UTC().Format("2006-01-02T15:04:05Z")
		}
		views = append(views, v)
	}
	return views, nil
}

// ─── Settings ───────────────────────────────────────────────────────────────

// Settings returns the current goal settings.
func (t *Tracker) Settings() (domain.Settings, error) {
	return t.db.GetSettings()
}

// UpdateSettings validates and persists new goal settings. Changing
// goals only affects future evaluations; flipped daily flags stay.
func (t *Tracker) UpdateSettings(s domain.Settings) error {
	g := s.VegetableGoals
	if g.Minimum <= 0 || !(g.Minimum < g.Standard && g.Standard < g.Target) {
		return domain.ErrInvalidGoalOrder
	}
	if !timeRe.MatchString(s.WakeupGoalTime) {
		return domain.ErrInvalidTimeFormat
	}
	return t.db.SaveSettings(s)
}

// Reset wipes every record, goal flag, setting and the game state.
func (t *Tracker) Reset() error {
	return t.db.ResetAll()
}

// observe pushes one processed outcome into the metrics registry.
func (t *Tracker) observe(typ string, out engine.Outcome) {
	metrics.RecordsProcessed.WithLabelValues(typ).Inc()
	metrics.XPAwarded.Add(float64(out.XPGained))
	metrics.AchievementsUnlocked.Add(float64(len(out.NewAchievements)))
	metrics.CurrentLevel.Set(float64(out.GameState.Level))
	metrics.CurrentStreak.Set(float64(out.GameState.CurrentStreak))
}
