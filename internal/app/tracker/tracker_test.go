package tracker

import (
	"errors"
	"testing"

	"github.com/vegirise/vegirise/internal/app/engine"
	"github.com/vegirise/vegirise/internal/domain"
	"github.com/vegirise/vegirise/internal/infra/sqlite"
)

func testTracker(t *testing.T) *Tracker {
	t.Helper()
	db, err := sqlite.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db, engine.NewProcessor(db, engine.NopNotifier{}))
}

func TestAddVegetableValidation(t *testing.T) {
	trk := testTracker(t)

	for _, grams := range []int64{0, -5, 1001} {
		if _, _, err := trk.AddVegetable(grams); !errors.Is(err, domain.ErrInvalidGrams) {
			t.Errorf("AddVegetable(%d) = %v, want ErrInvalidGrams", grams, err)
		}
	}
	if _, _, err := trk.AddVegetableAt(100, "01/05/2026"); !errors.Is(err, domain.ErrInvalidDate) {
		t.Error("expected ErrInvalidDate for malformed date")
	}
}

func TestAddVegetableProcesses(t *testing.T) {
	trk := testTracker(t)

	rec, out, err := trk.AddVegetableAt(400, "2026-01-05")
	if err != nil {
		t.Fatal(err)
	}
	if rec.ID == "" || rec.Grams != 400 {
		t.Errorf("record = %+v", rec)
	}
	if out.XPGained != 30 {
		t.Errorf("XPGained = %d, want 30", out.XPGained)
	}
	if out.GameState.TotalVegetableRecords != 1 {
		t.Errorf("TotalVegetableRecords = %d, want 1", out.GameState.TotalVegetableRecords)
	}
}

func TestRecordWakeupValidationAndScoring(t *testing.T) {
	trk := testTracker(t)

	for _, bad := range []string{"6:00", "24:00", "06:60", "0600", ""} {
		if _, _, err := trk.RecordWakeupAt(bad, "", "2026-01-05"); !errors.Is(err, domain.ErrInvalidTimeFormat) {
			t.Errorf("RecordWakeup(%q) = %v, want ErrInvalidTimeFormat", bad, err)
		}
	}

	// Default goal 06:00; waking at 06:10 scores 80.
	rec, out, err := trk.RecordWakeupAt("06:10", "06:20", "2026-01-05")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Score != 80 || rec.DiffMinutes != 10 {
		t.Errorf("scored %d (diff %d), want 80 (10)", rec.Score, rec.DiffMinutes)
	}
	if rec.GetUpTime != "06:20" {
		t.Errorf("GetUpTime = %q", rec.GetUpTime)
	}
	// Imperfect wake-up: base XP only.
	if out.XPGained != 10 {
		t.Errorf("XPGained = %d, want 10", out.XPGained)
	}
}

func TestDeleteVegetableCompensates(t *testing.T) {
	trk := testTracker(t)

	rec, _, err := trk.AddVegetableAt(400, "2026-01-05")
	if err != nil {
		t.Fatal(err)
	}

	if err := trk.DeleteVegetable(rec.ID); err != nil {
		t.Fatal(err)
	}

	view, err := trk.State()
	if err != nil {
		t.Fatal(err)
	}
	gs := view.GameState
	if gs.TotalVegetableRecords != 0 || gs.TotalVegetableGrams != 0 {
		t.Errorf("counters not compensated: %d records, %dg", gs.TotalVegetableRecords, gs.TotalVegetableGrams)
	}
	// XP and flipped goal flags are kept.
	if gs.XP != 30 {
		t.Errorf("XP = %d, want 30 kept", gs.XP)
	}

	if err := trk.DeleteVegetable("missing"); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Errorf("delete missing = %v, want ErrRecordNotFound", err)
	}
}

func TestDaySummary(t *testing.T) {
	trk := testTracker(t)

	if _, _, err := trk.AddVegetableAt(500, "2026-01-05"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := trk.AddVegetableAt(300, "2026-01-05"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := trk.RecordWakeupAt("06:00", "", "2026-01-05"); err != nil {
		t.Fatal(err)
	}

	summary, err := trk.Day("2026-01-05")
	if err != nil {
		t.Fatal(err)
	}
	if summary.VegTotal != 800 {
		t.Errorf("VegTotal = %d, want 800", summary.VegTotal)
	}
	if len(summary.Vegetables) != 2 {
		t.Errorf("got %d vegetable records, want 2", len(summary.Vegetables))
	}
	if summary.Wakeup == nil || summary.Wakeup.Score != 100 {
		t.Errorf("wakeup = %+v", summary.Wakeup)
	}
	// Target veg (60) plus perfect wake-up (40).
	if summary.DayScore != 100 {
		t.Errorf("DayScore = %d, want 100", summary.DayScore)
	}
	if !summary.Goals.Target || !summary.Goals.Combo {
		t.Errorf("goals = %+v, want target and combo flipped", summary.Goals)
	}
}

func TestUpdateSettingsValidation(t *testing.T) {
	trk := testTracker(t)

	bad := domain.Settings{
		VegetableGoals: domain.VegetableGoals{Minimum: 500, Standard: 400, Target: 800},
		WakeupGoalTime: "06:00",
	}
	if err := trk.UpdateSettings(bad); !errors.Is(err, domain.ErrInvalidGoalOrder) {
		t.Errorf("got %v, want ErrInvalidGoalOrder", err)
	}

	bad = domain.Settings{
		VegetableGoals: domain.VegetableGoals{Minimum: 300, Standard: 500, Target: 800},
		WakeupGoalTime: "six",
	}
	if err := trk.UpdateSettings(bad); !errors.Is(err, domain.ErrInvalidTimeFormat) {
		t.Errorf("got %v, want ErrInvalidTimeFormat", err)
	}

	good := domain.Settings{
		VegetableGoals: domain.VegetableGoals{Minimum: 300, Standard: 500, Target: 900},
		WakeupGoalTime: "05:30",
	}
	if err := trk.UpdateSettings(good); err != nil {
		t.Fatal(err)
	}
	got, err := trk.Settings()
	if err != nil {
		t.Fatal(err)
	}
	if got.VegetableGoals.Target != 900 || got.WakeupGoalTime != "05:30" {
		t.Errorf("settings = %+v", got)
	}
}

func TestAchievementsAnnotated(t *testing.T) {
	trk := testTracker(t)

	if _, _, err := trk.AddVegetableAt(100, "2026-01-05"); err != nil {
		t.Fatal(err)
	}

	views, err := trk.Achievements()
	if err != nil {
		t.Fatal(err)
	}
	if len(views) != 100 {
		t.Fatalf("got %d views, want the full catalog", len(views))
	}

	var foundUnlocked bool
	for _, v := range views {
		if v.ID == "records_1" {
			if !v.Unlocked || v.UnlockedAt == "" {
				t.Errorf("records_1 = %+v, want unlocked with timestamp", v)
			}
			foundUnlocked = true
		}
	}
	if !foundUnlocked {
		t.Error("records_1 missing from catalog views")
	}
}

func TestReset(t *testing.T) {
	trk := testTracker(t)

	if _, _, err := trk.AddVegetableAt(800, "2026-01-05"); err != nil {
		t.Fatal(err)
	}
	if err := trk.Reset(); err != nil {
		t.Fatal(err)
	}

	view, err := trk.State()
	if err != nil {
		t.Fatal(err)
	}
	if view.GameState.XP != 0 || view.GameState.Level != 1 {
		t.Errorf("state survived reset: %+v", view.GameState)
	}
	summary, err := trk.Day("2026-01-05")
	if err != nil {
		t.Fatal(err)
	}
	if summary.VegTotal != 0 {
		t.Errorf("records survived reset: %dg", summary.VegTotal)
	}
}
