// Package metrics provides Prometheus metrics for VegiRise.
// Counters for processed records and rewards, gauges for the current
// progression state. Exposed on /metrics by the API server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RecordsProcessed tracks processed events by record type.
var RecordsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "vegirise",
	Name:      "records_processed_total",
	Help:      "Total records processed by the engine.",
}, []string{"type"})

// RecordsFailed tracks events the engine rejected.
var RecordsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "vegirise",
	Name:      "records_failed_total",
	Help:      "Total records the engine failed to process.",
}, []string{"type"})

// XPAwarded tracks total XP granted.
var XPAwarded = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "vegirise",
	Name:      "xp_awarded_total",
	Help:      "Total XP awarded across all events.",
})

// AchievementsUnlocked tracks badge unlocks.
var AchievementsUnlocked = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "vegirise",
	Name:      "achievements_unlocked_total",
	Help:      "Total achievements unlocked.",
})

// CurrentLevel mirrors the cached level of the game state.
var CurrentLevel = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "vegirise",
	Name:      "level_current",
	Help:      "Current user level.",
})

// CurrentStreak mirrors the running-day streak.
var CurrentStreak = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "vegirise",
	Name:      "streak_current_days",
	Help:      "Current consecutive-day record streak.",
})
