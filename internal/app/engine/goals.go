package engine

import (
	"fmt"

	"github.com/vegirise/vegirise/internal/domain"
)

// processVegetable evaluates the daily goal tiers for today after a new
// vegetable entry. Each tier awards XP at most once per date: the
// persisted DailyGoals flag is the idempotence guard, so re-running the
// check with the same or a higher total never re-awards.
// Returns the XP gained and the day's cumulative total for reuse.
func (p *Processor) processVegetable(gs *domain.GameState, settings domain.Settings, today string) (int64, int64, error) {
	var xp int64

	dayTotal, err := p.store.GetDayVegetableTotal(today)
	if err != nil {
		return 0, 0, fmt.Errorf("day total: %w", err)
	}
	goals, err := p.store.GetDailyGoals(today)
	if err != nil {
		return 0, 0, fmt.Errorf("daily goals: %w", err)
	}

	if dayTotal > gs.MaxDailyVegetable {
		gs.MaxDailyVegetable = dayTotal
	}

	tiers := settings.VegetableGoals

	if dayTotal >= tiers.Minimum && !goals.Minimum {
		goals.Minimum = true
		gs.DaysMinimumGoalMet++
		xp += XPGoalMinimum
		p.notify.Notify("Minimum goal reached!", SeveritySuccess)
	}
	if dayTotal >= tiers.Standard && !goals.Standard {
		goals.Standard = true
		gs.DaysStandardGoalMet++
		xp += XPGoalStandard
		p.notify.Notify("Standard goal reached!", SeveritySuccess)
	}
	if dayTotal >= tiers.Target && !goals.Target {
		goals.Target = true
		gs.DaysTargetGoalMet++
		xp += XPGoalTarget
		p.notify.Notify("Target goal reached!", SeveritySuccess)
	}

	// 3+ entries in one day is a sticky lifetime flag.
	records, err := p.store.GetVegetables(today)
	if err != nil {
		return 0, 0, fmt.Errorf("day records: %w", err)
	}
	if len(records) >= 3 {
		gs.Max3MealsReached = true
	}

	if dayTotal >= Over1000gThreshold && !goals.Over1000g {
		goals.Over1000g = true
		gs.Over1000gDays++
	}

	if err := p.store.SaveDailyGoals(goals); err != nil {
		return 0, 0, fmt.Errorf("save daily goals: %w", err)
	}
	return xp, dayTotal, nil
}
