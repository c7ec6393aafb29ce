package engine

import (
	"fmt"
	"sync"

	"github.com/vegirise/vegirise/internal/domain"
)

// Processor is the engine's entry point. It loads the aggregate state,
// sequences the sub-processors for one event, and persists the result.
//
// The raw record row (vegetables / wakeups table) is written by the
// caller before invoking the processor, so the day aggregates the
// engine reads already include the new entry.
//
// DailyGoals and GameState are persisted as two separate writes in a
// fixed order (goals inside the sub-processors, state last). A crash
// between them can leave the two records inconsistent; this is a known
// limitation, not silently masked. Any persistence failure aborts the
// operation; the loaded in-memory state is discarded, never partially
// committed.
type Processor struct {
	mu        sync.Mutex
	store     Store
	notify    Notifier
	earlyBird string // "HH:MM" early-bird wake threshold
}

// NewProcessor creates a processor with the default early-bird threshold.
func NewProcessor(store Store, notify Notifier) *Processor {
	return NewProcessorWithEarlyBird(store, notify, DefaultEarlyBirdTime)
}

// NewProcessorWithEarlyBird creates a processor with a custom threshold.
func NewProcessorWithEarlyBird(store Store, notify Notifier, earlyBird string) *Processor {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &Processor{store: store, notify: notify, earlyBird: earlyBird}
}

// Outcome is what one processed event produced.
type Outcome struct {
	XPGained        int64                   `json:"xp_gained"`
	NewAchievements []domain.AchievementDef `json:"new_achievements"`
	GameState       domain.GameState        `json:"game_state"`
}

// ProcessVegetable processes a vegetable entry dated today.
func (p *Processor) ProcessVegetable(payload domain.VegetablePayload) (Outcome, error) {
	return p.ProcessVegetableAt(payload, domain.Today())
}

// ProcessVegetableAt processes a vegetable entry for an explicit date.
func (p *Processor) ProcessVegetableAt(payload domain.VegetablePayload, today string) (Outcome, error) {
	return p.process(domain.RecordVegetable, &payload, nil, today)
}

// ProcessWakeup processes a scored wake-up record dated today.
func (p *Processor) ProcessWakeup(payload domain.WakeupPayload) (Outcome, error) {
	return p.ProcessWakeupAt(payload, domain.Today())
}

// ProcessWakeupAt processes a scored wake-up record for an explicit date.
func (p *Processor) ProcessWakeupAt(payload domain.WakeupPayload, today string) (Outcome, error) {
	return p.process(domain.RecordWakeup, nil, &payload, today)
}

// process is the shared funnel both event types run through.
// The mutex restores the original single-threaded precondition: one
// event runs to completion before the next begins. Per-date idempotence
// still comes from the persisted DailyGoals flags, not from the lock.
func (p *Processor) process(typ domain.RecordType, veg *domain.VegetablePayload, wake *domain.WakeupPayload, today string) (Outcome, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	gs, err := p.store.GetGameState()
	if err != nil {
		return Outcome{}, fmt.Errorf("load game state: %w", err)
	}
	settings, err := p.store.GetSettings()
	if err != nil {
		return Outcome{}, fmt.Errorf("load settings: %w", err)
	}

	if gs.FirstRecordDate == "" {
		gs.FirstRecordDate = today
	}

	var xpGained int64
	var cachedVegTotal *int64

	switch typ {
	case domain.RecordVegetable:
		gs.TotalVegetableRecords++
		gs.TotalVegetableGrams += veg.Grams
		xpGained += XPVegetableRecord

		sub, dayTotal, err := p.processVegetable(&gs, settings, today)
		if err != nil {
			return Outcome{}, err
		}
		xpGained += sub
		cachedVegTotal = &dayTotal

	case domain.RecordWakeup:
		xpGained += p.processWakeup(&gs, *wake, today)

	default:
		return Outcome{}, domain.ErrUnknownRecordType
	}

	// Streak update runs on the first record of the day only.
	if gs.LastRecordDate != today {
		sub, err := p.updateStreaks(&gs, today)
		if err != nil {
			return Outcome{}, err
		}
		xpGained += sub
	}

	sub, err := p.checkCombo(&gs, settings, today, cachedVegTotal)
	if err != nil {
		return Outcome{}, err
	}
	xpGained += sub

	// Apply XP; level is always recomputed from the new total.
	oldLevel := CalculateLevel(gs.XP).Level
	gs.XP += xpGained
	info := CalculateLevel(gs.XP)
	gs.Level = info.Level

	if xpGained > 0 {
		p.notify.AnnounceXP(xpGained)
	}
	if info.Level > oldLevel {
		p.notify.AnnounceLevelUp(info.Level)
		p.notify.Notify(fmt.Sprintf("Level up! Lv.%d", info.Level), SeveritySuccess)
	}

	newAchievements := CheckNewAchievements(gs)
	for _, def := range newAchievements {
		gs.UnlockedAchievements = append(gs.UnlockedAchievements, def.ID)
		p.notify.AnnounceAchievement(def)
	}

	if err := p.store.SaveGameState(gs); err != nil {
		return Outcome{}, fmt.Errorf("save game state: %w", err)
	}

	return Outcome{XPGained: xpGained, NewAchievements: newAchievements, GameState: gs}, nil
}
