package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Sir-Wagyu/habitask-api/model"
)

func createTestTask(t *testing.T, userID int64, difficulty model.Difficulty, deadline *time.Time) *model.Task {
	task := &model.Task{
		UserID:     userID,
		Title:      "Test Task",
		Difficulty: difficulty,
		Deadline:   deadline,
	}
	assert.NoError(t, testDb.Create(task).Error)
	return task
}

func TestCompleteTaskAwardsXp(t *testing.T) {
	defer clearDatabase()
	taskService := NewTaskService(testDb, testBalance, zap.NewNop())

	user := createTestUser(t, "task@example.com")
	task := createTestTask(t, user.ID, model.DifficultyMedium, nil)

	now := time.Date(2025, 6, 25, 9, 0, 0, 0, time.UTC)
	result, err := taskService.Complete(task.ID, user.ID, now)
	assert.NoError(t, err)
	assert.Equal(t, 25, result.XpEarned)
	assert.True(t, result.Task.IsCompleted)
	assert.NotNil(t, result.Task.CompletedAt)

	var updated model.User
	assert.NoError(t, testDb.First(&updated, user.ID).Error)
	assert.Equal(t, 25, updated.Xp)
}

func TestCompleteTaskAppliesLevelBonus(t *testing.T) {
	defer clearDatabase()
	taskService := NewTaskService(testDb, testBalance, zap.NewNop())

	user := createLevelFiveUser(t, "taskbonus@example.com")
	task := createTestTask(t, user.ID, model.DifficultyMedium, nil)

	result, err := taskService.Complete(task.ID, user.ID, wednesday)
	assert.NoError(t, err)
	// 25 base XP * 1.25 level bonus, truncated.
	assert.Equal(t, 31, result.XpEarned)
}

func TestCompleteTaskAlreadyCompleted(t *testing.T) {
	defer clearDatabase()
	taskService := NewTaskService(testDb, testBalance, zap.NewNop())

	user := createTestUser(t, "again@example.com")
	task := createTestTask(t, user.ID, model.DifficultyEasy, nil)

	_, err := taskService.Complete(task.ID, user.ID, wednesday)
	assert.NoError(t, err)

	_, err = taskService.Complete(task.ID, user.ID, wednesday)
	assert.ErrorIs(t, err, ErrTaskAlreadyCompleted)

	var updated model.User
	assert.NoError(t, testDb.First(&updated, user.ID).Error)
	assert.Equal(t, 10, updated.Xp)
}

func TestCompleteTaskNotOwned(t *testing.T) {
	defer clearDatabase()
	taskService := NewTaskService(testDb, testBalance, zap.NewNop())

	owner := createTestUser(t, "taskowner@example.com")
	other := createTestUser(t, "taskother@example.com")
	task := createTestTask(t, owner.ID, model.DifficultyEasy, nil)

	_, err := taskService.Complete(task.ID, other.ID, wednesday)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestMarkIncompleteKeepsXp(t *testing.T) {
	defer clearDatabase()
	taskService := NewTaskService(testDb, testBalance, zap.NewNop())

	user := createTestUser(t, "undo@example.com")
	task := createTestTask(t, user.ID, model.DifficultyMedium, nil)

	_, err := taskService.Complete(task.ID, user.ID, wednesday)
	assert.NoError(t, err)

	reverted, err := taskService.MarkIncomplete(task.ID, user.ID)
	assert.NoError(t, err)
	assert.False(t, reverted.IsCompleted)
	assert.Nil(t, reverted.CompletedAt)

	var updated model.User
	assert.NoError(t, testDb.First(&updated, user.ID).Error)
	assert.Equal(t, 25, updated.Xp)
}

func TestApplyDeadlinePenaltyOnce(t *testing.T) {
	defer clearDatabase()
	taskService := NewTaskService(testDb, testBalance, zap.NewNop())

	user := createTestUser(t, "penalty@example.com")
	deadline := wednesday.AddDate(0, 0, -1)
	task := createTestTask(t, user.ID, model.DifficultyHard, &deadline)

	assert.NoError(t, taskService.ApplyDeadlinePenalty(task.ID, wednesday))
	assert.NoError(t, taskService.ApplyDeadlinePenalty(task.ID, wednesday))

	var updated model.User
	assert.NoError(t, testDb.First(&updated, user.ID).Error)
	// HARD penalty of 20, applied exactly once.
	assert.Equal(t, 80, updated.Hp)

	var fresh model.Task
	assert.NoError(t, testDb.First(&fresh, task.ID).Error)
	assert.True(t, fresh.PenaltyApplied)
}

func TestApplyDeadlinePenaltySkips(t *testing.T) {
	defer clearDatabase()
	taskService := NewTaskService(testDb, testBalance, zap.NewNop())

	user := createTestUser(t, "skip@example.com")

	noDeadline := createTestTask(t, user.ID, model.DifficultyHard, nil)
	assert.NoError(t, taskService.ApplyDeadlinePenalty(noDeadline.ID, wednesday))

	future := wednesday.AddDate(0, 0, 7)
	notDue := createTestTask(t, user.ID, model.DifficultyHard, &future)
	assert.NoError(t, taskService.ApplyDeadlinePenalty(notDue.ID, wednesday))

	past := wednesday.AddDate(0, 0, -1)
	completed := createTestTask(t, user.ID, model.DifficultyHard, &past)
	_, err := taskService.Complete(completed.ID, user.ID, monday)
	assert.NoError(t, err)
	assert.NoError(t, taskService.ApplyDeadlinePenalty(completed.ID, wednesday))

	var updated model.User
	assert.NoError(t, testDb.First(&updated, user.ID).Error)
	assert.Equal(t, 100, updated.Hp)
}

func TestApplyDeadlinePenaltyTaskNotFound(t *testing.T) {
	defer clearDatabase()
	taskService := NewTaskService(testDb, testBalance, zap.NewNop())

	assert.ErrorIs(t, taskService.ApplyDeadlinePenalty(9876, wednesday), ErrTaskNotFound)
}

func TestApplyOverduePenaltiesSweep(t *testing.T) {
	defer clearDatabase()
	taskService := NewTaskService(testDb, testBalance, zap.NewNop())

	user := createTestUser(t, "sweep@example.com")

	past := wednesday.AddDate(0, 0, -2)
	createTestTask(t, user.ID, model.DifficultyEasy, &past)
	createTestTask(t, user.ID, model.DifficultyMedium, &past)

	future := wednesday.AddDate(0, 0, 2)
	createTestTask(t, user.ID, model.DifficultyHard, &future)

	applied, err := taskService.ApplyOverduePenalties(wednesday)
	assert.NoError(t, err)
	assert.Equal(t, 2, applied)

	var updated model.User
	assert.NoError(t, testDb.First(&updated, user.ID).Error)
	// EASY 5 + MEDIUM 10.
	assert.Equal(t, 85, updated.Hp)

	applied, err = taskService.ApplyOverduePenalties(wednesday)
	assert.NoError(t, err)
	assert.Equal(t, 0, applied)
}

func TestSubTaskCompletion(t *testing.T) {
	defer clearDatabase()
	taskService := NewTaskService(testDb, testBalance, zap.NewNop())

	user := createTestUser(t, "subtask@example.com")
	task := createTestTask(t, user.ID, model.DifficultyMedium, nil)

	subTask := &model.SubTask{TaskID: task.ID, Title: "Step one"}
	assert.NoError(t, testDb.Create(subTask).Error)

	done, err := taskService.CompleteSubTask(task.ID, subTask.ID, user.ID, wednesday)
	assert.NoError(t, err)
	assert.True(t, done.IsCompleted)
	assert.NotNil(t, done.CompletedAt)

	// Sub-tasks never award XP.
	var updated model.User
	assert.NoError(t, testDb.First(&updated, user.ID).Error)
	assert.Equal(t, 0, updated.Xp)

	undone, err := taskService.IncompleteSubTask(task.ID, subTask.ID, user.ID)
	assert.NoError(t, err)
	assert.False(t, undone.IsCompleted)
	assert.Nil(t, undone.CompletedAt)
}
