package service

import "google.golang.org/grpc/status"

var (
	ErrNegativeXpAmount     = status.Error(400, "XP amount must be non-negative")
	ErrNegativeHpAmount     = status.Error(400, "HP amount must be non-negative")
	ErrTaskAlreadyCompleted = status.Error(400, "Task is already completed")

	ErrUserNotFound  = status.Error(404, "User not found")
	ErrTaskNotFound  = status.Error(404, "Task not found")
	ErrHabitNotFound = status.Error(404, "Habit not found")
)
