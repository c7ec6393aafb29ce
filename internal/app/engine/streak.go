package engine

import (
	"fmt"
	"time"

	"github.com/vegirise/vegirise/internal/domain"
)

// updateStreaks runs on the first record of a new calendar date only.
// Extends the running-day streak when yesterday had a record, otherwise
// resets it to 1. Milestone bonuses fire on exact lengths 3/7/30,
// once per streak run; breaking and rebuilding the streak re-fires them.
func (p *Processor) updateStreaks(gs *domain.GameState, today string) (int64, error) {
	var xp int64

	if err := p.checkMonthlyPerfect(gs, today); err != nil {
		return 0, err
	}

	gs.TotalRecordDays++

	if gs.LastRecordDate == domain.Yesterday(today) {
		gs.CurrentStreak++
	} else {
		gs.CurrentStreak = 1
	}

	if gs.CurrentStreak > gs.LongestStreak {
		gs.LongestStreak = gs.CurrentStreak
	}

	switch gs.CurrentStreak {
	case 3:
		xp += XPStreakBonus3
		p.notify.Notify("3-day streak bonus! +50 XP", SeveritySuccess)
	case 7:
		xp += XPStreakBonus7
		p.notify.Notify("7-day streak bonus! +100 XP", SeveritySuccess)
	case 30:
		xp += XPStreakBonus30
		p.notify.Notify("30-day streak bonus! +300 XP", SeveritySuccess)
	}

	gs.LastRecordDate = today
	return xp, nil
}

// checkMonthlyPerfect fires when today is the first record in a new
// calendar month: if every day of the last recorded month had at least
// one record, the monthly-perfect counter increments. The month
// examined is LastRecordDate's month, not today's predecessor, so a
// perfect month still counts when the following month is skipped
// entirely. Runs before LastRecordDate advances, so it fires at most
// once per month boundary.
func (p *Processor) checkMonthlyPerfect(gs *domain.GameState, today string) error {
	if gs.LastRecordDate == "" || gs.LastRecordDate[:7] == today[:7] {
		return nil
	}

	last, err := domain.ParseDate(gs.LastRecordDate)
	if err != nil {
		return domain.ErrInvalidDate
	}
	monthStart := time.Date(last.Year(), last.Month(), 1, 0, 0, 0, 0, last.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	count, err := p.store.CountRecordDays(domain.DateOf(monthStart), domain.DateOf(monthEnd))
	if err != nil {
		return fmt.Errorf("count record days: %w", err)
	}
	if count >= monthEnd.Day() {
		gs.MonthlyPerfectMonths++
	}
	return nil
}

// processWakeup applies a scored wake-up record. A perfect score
// (>= 90) extends the perfect streak when yesterday's wake-up was the
// last one seen; an imperfect score resets the streak to 0 but still
// advances the continuity anchor, so a perfect record the day after an
// imperfect one chains rather than restarting. That anchor behavior is
// deliberate and observable; do not "fix" it without revisiting the
// achievement thresholds built on it.
func (p *Processor) processWakeup(gs *domain.GameState, payload domain.WakeupPayload, today string) int64 {
	var xp int64

	gs.TotalWakeupRecords++
	xp += XPWakeupRecord

	if payload.Score >= PerfectWakeupScore {
		gs.PerfectWakeupCount++
		xp += XPPerfectWakeup

		if gs.LastWakeupDate == domain.Yesterday(today) {
			gs.PerfectWakeupStreak++
		} else {
			gs.PerfectWakeupStreak = 1
		}
		if gs.PerfectWakeupStreak > gs.LongestPerfectWakeupStreak {
			gs.LongestPerfectWakeupStreak = gs.PerfectWakeupStreak
		}
	} else {
		gs.PerfectWakeupStreak = 0
	}

	gs.LastWakeupDate = today

	if clockMinutes(payload.Time) < clockMinutes(p.earlyBird) {
		gs.EarlyBirdCount++
	}

	return xp
}

// checkCombo awards the daily combo (vegetable minimum met plus a
// perfect wake-up on the same date) at most once per date, guarded by
// the persisted flag. Re-evaluated on every record of the date until it
// first qualifies. cachedVegTotal avoids a redundant aggregate read
// when the vegetable sub-processor already fetched it.
func (p *Processor) checkCombo(gs *domain.GameState, settings domain.Settings, today string, cachedVegTotal *int64) (int64, error) {
	goals, err := p.store.GetDailyGoals(today)
	if err != nil {
		return 0, fmt.Errorf("daily goals: %w", err)
	}
	if goals.Combo {
		return 0, nil
	}

	var vegTotal int64
	if cachedVegTotal != nil {
		vegTotal = *cachedVegTotal
	} else {
		vegTotal, err = p.store.GetDayVegetableTotal(today)
		if err != nil {
			return 0, fmt.Errorf("day total: %w", err)
		}
	}

	wakeup, err := p.store.GetWakeup(today)
	if err != nil {
		return 0, fmt.Errorf("wakeup: %w", err)
	}

	if vegTotal < settings.VegetableGoals.Minimum || wakeup == nil || wakeup.Score < PerfectWakeupScore {
		return 0, nil
	}

	goals.Combo = true
	gs.ComboCount++

	yesterdayGoals, err := p.store.GetDailyGoals(domain.Yesterday(today))
	if err != nil {
		return 0, fmt.Errorf("yesterday goals: %w", err)
	}
	if yesterdayGoals.Combo {
		gs.ComboStreak++
	} else {
		gs.ComboStreak = 1
	}
	if gs.ComboStreak > gs.LongestComboStreak {
		gs.LongestComboStreak = gs.ComboStreak
	}

	if err := p.store.SaveDailyGoals(goals); err != nil {
		return 0, fmt.Errorf("save daily goals: %w", err)
	}

	p.notify.Notify("Combo! Vegetables + perfect wake-up!", SeveritySuccess)
	return XPCombo, nil
}
