package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultBalanceTables(t *testing.T) {
	balance := DefaultBalance()

	assert.Equal(t, 25, balance.TaskXpFor("MEDIUM"))
	assert.Equal(t, 100, balance.TaskXpFor("VERY_HARD"))
	assert.Equal(t, 15, balance.HabitXpFor("MEDIUM"))
	assert.Equal(t, 5, balance.HabitXpFor("EASY"))
	assert.Equal(t, 20, balance.HpPenaltyFor("HARD"))
	assert.Equal(t, 5, balance.HabitRestoreHp)
}

func TestBalanceFallsBackToMedium(t *testing.T) {
	balance := DefaultBalance()

	assert.Equal(t, 25, balance.TaskXpFor("IMPOSSIBLE"))
	assert.Equal(t, 15, balance.HabitXpFor(""))
	assert.Equal(t, 10, balance.HpPenaltyFor("IMPOSSIBLE"))
}

func TestLoadBalanceEmptyPathReturnsDefaults(t *testing.T) {
	balance, err := LoadBalance("")

	assert.NoError(t, err)
	assert.Equal(t, DefaultBalance(), balance)
}

func TestLoadBalanceOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balance.yaml")
	content := []byte("task_xp:\n  MEDIUM: 40\nhabit_restore_hp: 10\n")
	assert.NoError(t, os.WriteFile(path, content, 0o644))

	balance, err := LoadBalance(path)

	assert.NoError(t, err)
	assert.Equal(t, 40, balance.TaskXpFor("MEDIUM"))
	assert.Equal(t, 10, balance.HabitRestoreHp)
	// Entries absent from the file keep their defaults.
	assert.Equal(t, 100, balance.TaskXpFor("VERY_HARD"))
	assert.Equal(t, 15, balance.HabitXpFor("MEDIUM"))
}

func TestLoadBalanceMissingFile(t *testing.T) {
	_, err := LoadBalance(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
