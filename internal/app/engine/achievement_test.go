package engine

import (
	"testing"

	"github.com/vegirise/vegirise/internal/domain"
)

func TestCatalogComplete(t *testing.T) {
	catalog := Catalog()
	if len(catalog) != 100 {
		t.Fatalf("catalog has %d entries, want 100", len(catalog))
	}

	seen := make(map[string]bool)
	for _, def := range catalog {
		if def.ID == "" || def.Name == "" || def.Description == "" || def.Icon == "" {
			t.Errorf("incomplete definition: %+v", def)
		}
		if seen[def.ID] {
			t.Errorf("duplicate id %q", def.ID)
		}
		seen[def.ID] = true
		if _, ok := rules[def.ID]; !ok {
			t.Errorf("no rule for catalog id %q", def.ID)
		}
	}
	for id := range rules {
		if !seen[id] {
			t.Errorf("rule %q has no catalog entry", id)
		}
	}
}

func TestCheckNewAchievementsSkipsUnlocked(t *testing.T) {
	gs := domain.GameState{
		Level:                1,
		LongestStreak:        7,
		UnlockedAchievements: []string{"streak_3", "streak_7"},
	}

	for _, def := range CheckNewAchievements(gs) {
		if def.ID == "streak_3" || def.ID == "streak_7" {
			t.Errorf("already-unlocked %q returned again", def.ID)
		}
	}
}

func TestCheckNewAchievementsThresholds(t *testing.T) {
	tests := []struct {
		name   string
		gs     domain.GameState
		wantID string
	}{
		{"first record", domain.GameState{Level: 1, TotalVegetableRecords: 1}, "records_1"},
		{"streak milestone", domain.GameState{Level: 1, LongestStreak: 3}, "streak_3"},
		{"lifetime kilogram", domain.GameState{Level: 1, TotalVegetableGrams: 1000}, "veg_total_1kg"},
		{"level five", domain.GameState{Level: 5}, "level_5"},
		{"first combo", domain.GameState{Level: 1, ComboCount: 1}, "combo_first"},
		{"heavy day", domain.GameState{Level: 1, MaxDailyVegetable: 1000}, "special_1000g"},
		{"three meals", domain.GameState{Level: 1, Max3MealsReached: true}, "special_3meals"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := false
			for _, def := range CheckNewAchievements(tt.gs) {
				if def.ID == tt.wantID {
					found = true
				}
			}
			if !found {
				t.Errorf("expected %q to unlock for %+v", tt.wantID, tt.gs)
			}
		})
	}
}

func TestCollectorRequiresSevenCategories(t *testing.T) {
	// One unlock from each of seven non-special categories.
	gs := domain.GameState{
		Level: 1,
		UnlockedAchievements: []string{
			"streak_3", "veg_total_1kg", "veg_min_first", "wake_first",
			"level_5", "records_1", "combo_first",
		},
	}

	unlocked := CheckNewAchievements(gs)
	if len(unlocked) != 1 || unlocked[0].ID != "special_collector" {
		t.Fatalf("got %v, want exactly special_collector", unlocked)
	}

	// Six categories is not enough.
	gs.UnlockedAchievements = gs.UnlockedAchievements[:6]
	for _, def := range CheckNewAchievements(gs) {
		if def.ID == "special_collector" {
			t.Error("special_collector unlocked with only six categories")
		}
	}
}

func TestEvaluateRuleUnknownID(t *testing.T) {
	if evaluateRule("no_such_rule", domain.GameState{}) {
		t.Error("unknown rule evaluated true")
	}
}
