package engine

import "math"

// LevelInfo describes where a given XP total sits on the level curve.
type LevelInfo struct {
	Level       int     `json:"level"`
	CurrentXP   int64   `json:"current_xp"`    // XP gained within the current level
	NextLevelXP int64   `json:"next_level_xp"` // XP span of the current level
	Progress    float64 `json:"progress"`      // 0..1 through the current level
}

// XPForLevel returns the cumulative XP required to reach a level.
// Each level n costs 100·(n−1) XP over the previous, so the cumulative
// total is 50·n·(n−1): 0, 100, 300, 600, 1000, ...
func XPForLevel(level int) int64 {
	if level <= 1 {
		return 0
	}
	n := int64(level)
	return 50 * n * (n - 1)
}

// CalculateLevel maps a cumulative XP total onto the level curve.
// Starts from the closed-form root of 50·n·(n−1) ≤ xp, then corrects
// iteratively so the result is exact for every non-negative integer
// regardless of floating-point rounding.
func CalculateLevel(xp int64) LevelInfo {
	if xp < 0 {
		xp = 0
	}

	level := int((1 + math.Sqrt(1+4*float64(xp)/50)) / 2)
	if level < 1 {
		level = 1
	}
	for XPForLevel(level+1) <= xp {
		level++
	}
	for level > 1 && XPForLevel(level) > xp {
		level--
	}

	floor := XPForLevel(level)
	span := XPForLevel(level+1) - floor
	within := xp - floor

	progress := 0.0
	if span > 0 {
		progress = float64(within) / float64(span)
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}

	return LevelInfo{
		Level:       level,
		CurrentXP:   within,
		NextLevelXP: span,
		Progress:    progress,
	}
}
