package daemon

import (
	"testing"

	"github.com/vegirise/vegirise/internal/domain"
)

func TestNewWithConfigSeedsSettings(t *testing.T) {
	t.Setenv("VEGIRISE_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Goals = GoalsConfig{MinimumGrams: 100, StandardGrams: 200, TargetGrams: 300}
	cfg.Wakeup.GoalTime = "05:00"

	d, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()

	s, err := d.Tracker.Settings()
	if err != nil {
		t.Fatal(err)
	}
	want := domain.VegetableGoals{Minimum: 100, Standard: 200, Target: 300}
	if s.VegetableGoals != want {
		t.Errorf("goals = %+v, want %+v", s.VegetableGoals, want)
	}
	if s.WakeupGoalTime != "05:00" {
		t.Errorf("wakeup goal = %q, want 05:00", s.WakeupGoalTime)
	}
}

func TestSeededSettingsNotOverwrittenOnReopen(t *testing.T) {
	t.Setenv("VEGIRISE_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Goals = GoalsConfig{MinimumGrams: 100, StandardGrams: 200, TargetGrams: 300}

	d, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}

	// A later run with different config must keep the persisted row.
	cfg.Goals = GoalsConfig{MinimumGrams: 400, StandardGrams: 600, TargetGrams: 900}
	d, err = NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()

	s, err := d.Tracker.Settings()
	if err != nil {
		t.Fatal(err)
	}
	if s.VegetableGoals.Standard != 200 {
		t.Errorf("standard = %d, want seeded 200", s.VegetableGoals.Standard)
	}
}
