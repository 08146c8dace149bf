package service

import (
	"time"

	"github.com/Sir-Wagyu/habitask-api/model"
)

// DateOnly normalizes a timestamp to its calendar date at UTC midnight.
// Completion dates and streak math only ever compare whole days.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsDueOn reports whether the habit's schedule calls for the given date.
// WEEKLY currently behaves like DAILY; once-per-week semantics are not
// implemented yet and the always-due behavior is kept deliberately.
func IsDueOn(habit *model.Habit, date time.Time) bool {
	switch habit.ScheduleType {
	case model.ScheduleDaily:
		return true
	case model.ScheduleWeekly:
		return true
	case model.ScheduleSpecificDays:
		return habit.IsOnWeekday(date.Weekday())
	default:
		return false
	}
}

// DueForUser returns the user's active habits that are due today and not yet
// completed today, in creation order. Callers must not depend on the order.
func (s *HabitService) DueForUser(userID int64, today time.Time) ([]model.Habit, error) {
	var habits []model.Habit

	err := s.db.Where("user_id = ? AND is_active = ?", userID, true).
		Order("id").
		Find(&habits).Error
	if err != nil {
		return nil, err
	}

	today = DateOnly(today)

	due := make([]model.Habit, 0)
	for i := range habits {
		if !IsDueOn(&habits[i], today) {
			continue
		}

		completion, err := s.completionOn(habits[i].ID, today)
		if err != nil {
			return nil, err
		}
		if completion == nil {
			due = append(due, habits[i])
		}
	}

	return due, nil
}
