package engine

import (
	"fmt"
	"testing"
)

func newTestProcessor() (*Processor, *memStore) {
	store := newMemStore()
	return NewProcessor(store, NopNotifier{}), store
}

func TestProcessorFirstVegetable(t *testing.T) {
	p, store := newTestProcessor()

	out, err := recordVeg(p, store, "2026-01-05", 400)
	if err != nil {
		t.Fatal(err)
	}

	// 10 for the record, 20 for crossing the minimum tier.
	if out.XPGained != 30 {
		t.Errorf("XPGained = %d, want 30", out.XPGained)
	}
	gs := out.GameState
	if gs.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1", gs.CurrentStreak)
	}
	if gs.TotalVegetableGrams != 400 {
		t.Errorf("TotalVegetableGrams = %d, want 400", gs.TotalVegetableGrams)
	}
	if gs.DaysMinimumGoalMet != 1 {
		t.Errorf("DaysMinimumGoalMet = %d, want 1", gs.DaysMinimumGoalMet)
	}
	if gs.Level != 1 {
		t.Errorf("Level = %d, want 1", gs.Level)
	}
	if gs.FirstRecordDate != "2026-01-05" {
		t.Errorf("FirstRecordDate = %q, want 2026-01-05", gs.FirstRecordDate)
	}
}

func TestProcessorGoalAwardedOncePerDay(t *testing.T) {
	p, store := newTestProcessor()

	if _, err := recordVeg(p, store, "2026-01-05", 400); err != nil {
		t.Fatal(err)
	}
	out, err := recordVeg(p, store, "2026-01-05", 10)
	if err != nil {
		t.Fatal(err)
	}

	// Minimum tier already flagged for the date; only the base award.
	if out.XPGained != 10 {
		t.Errorf("XPGained = %d, want 10", out.XPGained)
	}
	if out.GameState.DaysMinimumGoalMet != 1 {
		t.Errorf("DaysMinimumGoalMet = %d, want 1", out.GameState.DaysMinimumGoalMet)
	}
	if out.GameState.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1", out.GameState.CurrentStreak)
	}
}

func TestProcessorAllTiersInOneEntry(t *testing.T) {
	p, store := newTestProcessor()

	out, err := recordVeg(p, store, "2026-01-05", 800)
	if err != nil {
		t.Fatal(err)
	}

	// 10 + 20 + 30 + 50: one entry crossing every tier at once.
	if out.XPGained != 110 {
		t.Errorf("XPGained = %d, want 110", out.XPGained)
	}
	if out.GameState.Level != 2 {
		t.Errorf("Level = %d, want 2", out.GameState.Level)
	}
	if out.GameState.XP != 110 {
		t.Errorf("XP = %d, want 110", out.GameState.XP)
	}
}

func TestProcessorStreakBonusAtThree(t *testing.T) {
	p, store := newTestProcessor()

	days := []string{"2026-03-01", "2026-03-02", "2026-03-03"}
	var last Outcome
	for _, day := range days {
		out, err := recordVeg(p, store, day, 100)
		if err != nil {
			t.Fatal(err)
		}
		last = out
	}

	if last.GameState.CurrentStreak != 3 {
		t.Errorf("CurrentStreak = %d, want 3", last.GameState.CurrentStreak)
	}
	// 10 for the record plus the 3-day milestone.
	if last.XPGained != 60 {
		t.Errorf("XPGained = %d, want 60", last.XPGained)
	}
}

func TestProcessorStreakResetsAfterGap(t *testing.T) {
	p, store := newTestProcessor()

	if _, err := recordVeg(p, store, "2026-03-01", 100); err != nil {
		t.Fatal(err)
	}
	out, err := recordVeg(p, store, "2026-03-03", 100)
	if err != nil {
		t.Fatal(err)
	}

	if out.GameState.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1", out.GameState.CurrentStreak)
	}
	if out.GameState.LongestStreak != 1 {
		t.Errorf("LongestStreak = %d, want 1", out.GameState.LongestStreak)
	}
	if out.GameState.TotalRecordDays != 2 {
		t.Errorf("TotalRecordDays = %d, want 2", out.GameState.TotalRecordDays)
	}
}

func TestProcessorStreakBonusRefiresAfterBreak(t *testing.T) {
	p, store := newTestProcessor()

	for _, day := range []string{"2026-03-01", "2026-03-02", "2026-03-03"} {
		if _, err := recordVeg(p, store, day, 100); err != nil {
			t.Fatal(err)
		}
	}
	// Gap on 03-04 breaks the run; rebuild to 3.
	var last Outcome
	for _, day := range []string{"2026-03-05", "2026-03-06", "2026-03-07"} {
		out, err := recordVeg(p, store, day, 100)
		if err != nil {
			t.Fatal(err)
		}
		last = out
	}

	if last.GameState.CurrentStreak != 3 {
		t.Errorf("CurrentStreak = %d, want 3", last.GameState.CurrentStreak)
	}
	if last.XPGained != 60 {
		t.Errorf("XPGained = %d, want 60 (bonus fires again)", last.XPGained)
	}
}

func TestProcessorPerfectWakeup(t *testing.T) {
	p, store := newTestProcessor()

	out, err := recordWake(p, store, "2026-05-01", "06:02", 96)
	if err != nil {
		t.Fatal(err)
	}

	// 10 for the record, 30 for the perfect score.
	if out.XPGained != 40 {
		t.Errorf("XPGained = %d, want 40", out.XPGained)
	}
	gs := out.GameState
	if gs.PerfectWakeupCount != 1 || gs.PerfectWakeupStreak != 1 {
		t.Errorf("perfect count/streak = %d/%d, want 1/1", gs.PerfectWakeupCount, gs.PerfectWakeupStreak)
	}
	if gs.LastWakeupDate != "2026-05-01" {
		t.Errorf("LastWakeupDate = %q, want 2026-05-01", gs.LastWakeupDate)
	}
}

func TestProcessorImperfectWakeupNoBonus(t *testing.T) {
	p, store := newTestProcessor()

	out, err := recordWake(p, store, "2026-05-01", "06:30", 40)
	if err != nil {
		t.Fatal(err)
	}

	if out.XPGained != 10 {
		t.Errorf("XPGained = %d, want 10", out.XPGained)
	}
	if out.GameState.PerfectWakeupCount != 0 {
		t.Errorf("PerfectWakeupCount = %d, want 0", out.GameState.PerfectWakeupCount)
	}
}

func TestProcessorImperfectDayAnchorsPerfectStreak(t *testing.T) {
	p, store := newTestProcessor()

	// Perfect, imperfect, perfect, perfect. The imperfect day resets the
	// streak to 0 but still advances the continuity anchor, so the two
	// perfect days after it chain to 2.
	seq := []struct {
		date  string
		score int
	}{
		{"2026-05-01", 100},
		{"2026-05-02", 50},
		{"2026-05-03", 100},
		{"2026-05-04", 100},
	}
	var last Outcome
	for _, s := range seq {
		out, err := recordWake(p, store, s.date, "06:00", s.score)
		if err != nil {
			t.Fatal(err)
		}
		last = out
	}

	gs := last.GameState
	if gs.PerfectWakeupStreak != 2 {
		t.Errorf("PerfectWakeupStreak = %d, want 2", gs.PerfectWakeupStreak)
	}
	if gs.PerfectWakeupCount != 3 {
		t.Errorf("PerfectWakeupCount = %d, want 3", gs.PerfectWakeupCount)
	}
	if gs.LongestPerfectWakeupStreak != 2 {
		t.Errorf("LongestPerfectWakeupStreak = %d, want 2", gs.LongestPerfectWakeupStreak)
	}
}

func TestProcessorEarlyBird(t *testing.T) {
	p, store := newTestProcessor()

	if _, err := recordWake(p, store, "2026-05-01", "05:15", 0); err != nil {
		t.Fatal(err)
	}
	out, err := recordWake(p, store, "2026-05-02", "05:45", 0)
	if err != nil {
		t.Fatal(err)
	}

	// Only the 05:15 wake-up beats the 05:30 threshold.
	if out.GameState.EarlyBirdCount != 1 {
		t.Errorf("EarlyBirdCount = %d, want 1", out.GameState.EarlyBirdCount)
	}
}

func TestProcessorCombo(t *testing.T) {
	p, store := newTestProcessor()
	day := "2026-04-10"

	if _, err := recordVeg(p, store, day, 400); err != nil {
		t.Fatal(err)
	}
	out, err := recordWake(p, store, day, "06:00", 100)
	if err != nil {
		t.Fatal(err)
	}

	// 10 + 30 perfect + 50 combo; minimum was already met by the 400g.
	if out.XPGained != 90 {
		t.Errorf("XPGained = %d, want 90", out.XPGained)
	}
	if out.GameState.ComboCount != 1 || out.GameState.ComboStreak != 1 {
		t.Errorf("combo count/streak = %d/%d, want 1/1", out.GameState.ComboCount, out.GameState.ComboStreak)
	}

	// Another entry on the same date must not re-award the combo.
	out, err = recordVeg(p, store, day, 10)
	if err != nil {
		t.Fatal(err)
	}
	if out.XPGained != 10 {
		t.Errorf("XPGained = %d, want 10", out.XPGained)
	}
	if out.GameState.ComboCount != 1 {
		t.Errorf("ComboCount = %d, want 1", out.GameState.ComboCount)
	}
}

func TestProcessorComboStreakAcrossDays(t *testing.T) {
	p, store := newTestProcessor()

	for _, day := range []string{"2026-04-10", "2026-04-11"} {
		if _, err := recordVeg(p, store, day, 400); err != nil {
			t.Fatal(err)
		}
		if _, err := recordWake(p, store, day, "06:00", 100); err != nil {
			t.Fatal(err)
		}
	}

	gs, _ := store.GetGameState()
	if gs.ComboStreak != 2 {
		t.Errorf("ComboStreak = %d, want 2", gs.ComboStreak)
	}
	if gs.LongestComboStreak != 2 {
		t.Errorf("LongestComboStreak = %d, want 2", gs.LongestComboStreak)
	}
}

func TestProcessorMonthlyPerfect(t *testing.T) {
	p, store := newTestProcessor()

	// Seed a fully covered January, then cross the month boundary.
	for day := 1; day <= 31; day++ {
		store.addVeg(dateIn("2026-01", day), 100)
	}
	store.gs.LastRecordDate = "2026-01-31"

	out, err := recordVeg(p, store, "2026-02-01", 100)
	if err != nil {
		t.Fatal(err)
	}
	if out.GameState.MonthlyPerfectMonths != 1 {
		t.Errorf("MonthlyPerfectMonths = %d, want 1", out.GameState.MonthlyPerfectMonths)
	}
}

func TestProcessorMonthlyPerfectRequiresFullCoverage(t *testing.T) {
	p, store := newTestProcessor()

	// January with one missing day must not count.
	for day := 1; day <= 30; day++ {
		store.addVeg(dateIn("2026-01", day), 100)
	}
	store.gs.LastRecordDate = "2026-01-30"

	out, err := recordVeg(p, store, "2026-02-01", 100)
	if err != nil {
		t.Fatal(err)
	}
	if out.GameState.MonthlyPerfectMonths != 0 {
		t.Errorf("MonthlyPerfectMonths = %d, want 0", out.GameState.MonthlyPerfectMonths)
	}
}

func TestProcessorMonthlyPerfectSurvivesSkippedMonth(t *testing.T) {
	p, store := newTestProcessor()

	// Perfect January, nothing at all in February, next record in March.
	for day := 1; day <= 31; day++ {
		store.addVeg(dateIn("2026-01", day), 100)
	}
	store.gs.LastRecordDate = "2026-01-31"

	out, err := recordVeg(p, store, "2026-03-01", 100)
	if err != nil {
		t.Fatal(err)
	}
	if out.GameState.MonthlyPerfectMonths != 1 {
		t.Errorf("MonthlyPerfectMonths = %d, want 1", out.GameState.MonthlyPerfectMonths)
	}
}

func dateIn(month string, day int) string {
	return fmt.Sprintf("%s-%02d", month, day)
}
