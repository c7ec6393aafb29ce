package cli

import (
	"fmt"

	"github.com/vegirise/vegirise/internal/app/engine"
	"github.com/vegirise/vegirise/internal/domain"
)

// terminalNotifier prints engine feedback as terminal toasts.
type terminalNotifier struct{}

func (terminalNotifier) Notify(message, severity string) {
	icon := "•"
	switch severity {
	case engine.SeveritySuccess:
		icon = "✓"
	case engine.SeverityError:
		icon = "✗"
	case engine.SeverityWarning:
		icon = "!"
	}
	fmt.Printf("%s %s\n", icon, message)
}

func (terminalNotifier) AnnounceXP(amount int64) {
	fmt.Printf("+%d XP\n", amount)
}

func (terminalNotifier) AnnounceLevelUp(level int) {
	fmt.Printf("★ Level up! You reached Lv.%d\n", level)
}

func (terminalNotifier) AnnounceAchievement(def domain.AchievementDef) {
	fmt.Printf("%s Achievement unlocked: %s (%s)\n", def.Icon, def.Name, def.Description)
}
