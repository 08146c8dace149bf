package conf

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Balance holds the gameplay reward tables. Values are keyed by difficulty
// (EASY, MEDIUM, HARD, VERY_HARD); an unknown difficulty falls back to the
// MEDIUM entry.
type Balance struct {
	TaskXp         map[string]int `yaml:"task_xp"`
	HabitXp        map[string]int `yaml:"habit_xp"`
	HpPenalty      map[string]int `yaml:"hp_penalty"`
	HabitRestoreHp int            `yaml:"habit_restore_hp"`
}

// DefaultBalance returns the canonical reward tables.
func DefaultBalance() Balance {
	return Balance{
		TaskXp: map[string]int{
			"EASY":      10,
			"MEDIUM":    25,
			"HARD":      50,
			"VERY_HARD": 100,
		},
		HabitXp: map[string]int{
			"EASY":      5,
			"MEDIUM":    15,
			"HARD":      30,
			"VERY_HARD": 60,
		},
		HpPenalty: map[string]int{
			"EASY":      5,
			"MEDIUM":    10,
			"HARD":      20,
			"VERY_HARD": 35,
		},
		HabitRestoreHp: 5,
	}
}

// LoadBalance reads a YAML balance file over the defaults. An empty path
// returns the defaults unchanged.
func LoadBalance(path string) (Balance, error) {
	balance := DefaultBalance()

	if path == "" {
		return balance, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return balance, err
	}

	if err := yaml.Unmarshal(data, &balance); err != nil {
		return balance, err
	}

	return balance, nil
}

func (b Balance) TaskXpFor(difficulty string) int {
	if xp, ok := b.TaskXp[difficulty]; ok {
		return xp
	}
	return b.TaskXp["MEDIUM"]
}

func (b Balance) HabitXpFor(difficulty string) int {
	if xp, ok := b.HabitXp[difficulty]; ok {
		return xp
	}
	return b.HabitXp["MEDIUM"]
}

func (b Balance) HpPenaltyFor(difficulty string) int {
	if hp, ok := b.HpPenalty[difficulty]; ok {
		return hp
	}
	return b.HpPenalty["MEDIUM"]
}
