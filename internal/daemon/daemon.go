package daemon

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/vegirise/vegirise/internal/api"
	"github.com/vegirise/vegirise/internal/app/engine"
	"github.com/vegirise/vegirise/internal/app/tracker"
	"github.com/vegirise/vegirise/internal/domain"
	"github.com/vegirise/vegirise/internal/health"
	"github.com/vegirise/vegirise/internal/infra/sqlite"
)

// Daemon wires together the store, engine and HTTP server.
type Daemon struct {
	Config  Config
	DB      *sqlite.DB
	Tracker *tracker.Tracker
	Server  *api.Server
	Health  *health.Checker
}

// New creates a daemon with config loaded from disk. Engine feedback
// goes to the standard logger.
func New() (*Daemon, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg)
}

// NewWithNotifier is New with a custom engine notifier. The CLI uses
// this to print feedback to the terminal instead of the log.
func NewWithNotifier(notifier engine.Notifier) (*Daemon, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return newDaemon(cfg, notifier)
}

// NewWithConfig creates a daemon with the given config.
func NewWithConfig(cfg Config) (*Daemon, error) {
	return newDaemon(cfg, logNotifier{})
}

func newDaemon(cfg Config, notifier engine.Notifier) (*Daemon, error) {
	db, err := sqlite.Open(vegiriseHome())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	seed := domain.Settings{
		VegetableGoals: domain.VegetableGoals{
			Minimum:  cfg.Goals.MinimumGrams,
			Standard: cfg.Goals.StandardGrams,
			Target:   cfg.Goals.TargetGrams,
		},
		WakeupGoalTime: cfg.Wakeup.GoalTime,
	}
	if err := db.SeedSettings(seed); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed settings: %w", err)
	}

	proc := engine.NewProcessorWithEarlyBird(db, notifier, cfg.Wakeup.EarlyBirdTime)
	trk := tracker.New(db, proc)
	checker := health.NewChecker(db, vegiriseHome())

	server := api.NewServer(api.Config{
		Host:        cfg.API.Host,
		Port:        cfg.API.Port,
		CORSOrigins: cfg.API.CORSOrigins,
	}, trk)
	server.SetHealthChecker(checker)

	return &Daemon{
		Config:  cfg,
		DB:      db,
		Tracker: trk,
		Server:  server,
		Health:  checker,
	}, nil
}

// Run starts the health loop and the HTTP server, blocking until the
// server exits.
func (d *Daemon) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go d.Health.Run(ctx)

	log.Printf("vegirise listening on %s:%d", d.Config.API.Host, d.Config.API.Port)
	if err := d.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close releases daemon resources.
func (d *Daemon) Close() error {
	return d.DB.Close()
}

// logNotifier writes engine events to the standard logger.
type logNotifier struct{}

func (logNotifier) Notify(message, severity string) {
	log.Printf("[%s] %s", severity, message)
}

func (logNotifier) AnnounceXP(amount int64) {
	log.Printf("+%d XP", amount)
}

func (logNotifier) AnnounceLevelUp(level int) {
	log.Printf("level up: reached level %d", level)
}

func (logNotifier) AnnounceAchievement(def domain.AchievementDef) {
	log.Printf("achievement unlocked: %s %s", def.Icon, def.Name)
}
