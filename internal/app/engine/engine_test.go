package engine

import (
	"time"

	"github.com/vegirise/vegirise/internal/domain"
)

// memStore is an in-memory Store for processor tests. Raw record rows
// are written through addVeg/setWakeup before processing, mirroring how
// the tracker writes them before invoking the engine.
type memStore struct {
	gs       domain.GameState
	settings domain.Settings
	veg      map[string][]domain.VegetableRecord
	wakeups  map[string]domain.WakeupRecord
	goals    map[string]domain.DailyGoals
}

func newMemStore() *memStore {
	return &memStore{
		gs:       domain.DefaultGameState(),
		settings: domain.DefaultSettings(),
		veg:      make(map[string][]domain.VegetableRecord),
		wakeups:  make(map[string]domain.WakeupRecord),
		goals:    make(map[string]domain.DailyGoals),
	}
}

func (m *memStore) addVeg(date string, grams int64) {
	m.veg[date] = append(m.veg[date], domain.VegetableRecord{
		ID:        date,
		Date:      date,
		Grams:     grams,
		CreatedAt: time.Now(),
	})
}

func (m *memStore) setWakeup(date string, score int) {
	m.wakeups[date] = domain.WakeupRecord{Date: date, Score: score}
}

func (m *memStore) GetGameState() (domain.GameState, error) { return m.gs, nil }

func (m *memStore) SaveGameState(gs domain.GameState) error {
	m.gs = gs
	return nil
}

func (m *memStore) GetSettings() (domain.Settings, error) { return m.settings, nil }

func (m *memStore) GetDayVegetableTotal(date string) (int64, error) {
	var total int64
	for _, r := range m.veg[date] {
		total += r.Grams
	}
	return total, nil
}

func (m *memStore) GetVegetables(date string) ([]domain.VegetableRecord, error) {
	return m.veg[date], nil
}

func (m *memStore) GetWakeup(date string) (*domain.WakeupRecord, error) {
	if w, ok := m.wakeups[date]; ok {
		return &w, nil
	}
	return nil, nil
}

func (m *memStore) GetDailyGoals(date string) (domain.DailyGoals, error) {
	if g, ok := m.goals[date]; ok {
		return g, nil
	}
	return domain.DailyGoals{Date: date}, nil
}

func (m *memStore) SaveDailyGoals(g domain.DailyGoals) error {
	m.goals[g.Date] = g
	return nil
}

func (m *memStore) CountRecordDays(from, to string) (int, error) {
	seen := make(map[string]bool)
	for date := range m.veg {
		if date >= from && date <= to && len(m.veg[date]) > 0 {
			seen[date] = true
		}
	}
	for date := range m.wakeups {
		if date >= from && date <= to {
			seen[date] = true
		}
	}
	return len(seen), nil
}

// recordVeg writes the raw row and processes it, as the tracker does.
func recordVeg(p *Processor, store *memStore, date string, grams int64) (Outcome, error) {
	store.addVeg(date, grams)
	return p.ProcessVegetableAt(domain.VegetablePayload{Grams: grams}, date)
}

// recordWake writes the raw row and processes it.
func recordWake(p *Processor, store *memStore, date, wakeTime string, score int) (Outcome, error) {
	store.setWakeup(date, score)
	return p.ProcessWakeupAt(domain.WakeupPayload{Time: wakeTime, Score: score}, date)
}
