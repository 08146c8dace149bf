package service

// Level math for the gamification engine. All functions here are pure; the
// user service applies their results inside storage transactions.

// XpRequirementForLevel returns the XP needed to leave the given level.
func XpRequirementForLevel(level int) int {
	return 100 + level*25
}

// BonusMultiplierForLevel returns the XP bonus multiplier for a level.
// Tiers are checked from the highest threshold down.
func BonusMultiplierForLevel(level int) float64 {
	switch {
	case level >= 20:
		return 2.0
	case level >= 15:
		return 1.75
	case level >= 10:
		return 1.5
	case level >= 5:
		return 1.25
	default:
		return 1.0
	}
}

// TitleForLevel returns the rank label for a level, same tiers as the bonus
// multiplier.
func TitleForLevel(level int) string {
	switch {
	case level >= 20:
		return "Master Produktivitas"
	case level >= 15:
		return "Ahli Kebiasaan"
	case level >= 10:
		return "Pahlawan Produktif"
	case level >= 5:
		return "Pembangun Kebiasaan"
	default:
		return "Pemula Produktif"
	}
}

// ApplyBonus scales base XP by the level bonus multiplier. The result is
// truncated, not rounded.
func ApplyBonus(baseXp, level int) int {
	return int(float64(baseXp) * BonusMultiplierForLevel(level))
}
