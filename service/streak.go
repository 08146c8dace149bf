package service

import (
	"time"

	"github.com/Sir-Wagyu/habitask-api/model"
)

// NextStreak returns the streak value a completion on today should produce.
// It is a pure function of the habit's schedule, last completed date and
// today; the habit service applies the result inside its transaction.
//
// A streak counts consecutive due occurrences, not consecutive calendar
// days: a Mon/Wed/Fri habit completed every Mon, Wed and Fri is unbroken
// even though days pass in between.
func NextStreak(habit *model.Habit, today time.Time) int {
	if habit.LastCompletedDate == nil {
		return 1
	}

	today = DateOnly(today)
	last := DateOnly(*habit.LastCompletedDate)

	if habit.ScheduleType != model.ScheduleSpecificDays {
		switch {
		case last.Equal(today.AddDate(0, 0, -1)):
			return habit.CurrentStreak + 1
		case last.Equal(today):
			// Re-completion on the same day leaves the streak untouched.
			return habit.CurrentStreak
		default:
			return 1
		}
	}

	lastDueDay, ok := previousDueDay(habit, today)
	if ok && last.Equal(lastDueDay) {
		return habit.CurrentStreak + 1
	}

	if last.Equal(today) {
		return habit.CurrentStreak
	}

	if !ok {
		// No weekday flag is set at all; nothing to chain a streak onto.
		return 1
	}

	if missedDueDaysBetween(habit, last, today) == 0 {
		return habit.CurrentStreak + 1
	}

	return 1
}

// previousDueDay finds the most recent due day strictly before today. The
// scan is bounded to seven days because weekday patterns repeat weekly.
func previousDueDay(habit *model.Habit, today time.Time) (time.Time, bool) {
	for i := 1; i <= 7; i++ {
		day := today.AddDate(0, 0, -i)
		if IsDueOn(habit, day) {
			return day, true
		}
	}
	return time.Time{}, false
}

// missedDueDaysBetween counts due days strictly between last and today. Any
// due day in that window was necessarily skipped, since last is the most
// recent completion.
func missedDueDaysBetween(habit *model.Habit, last, today time.Time) int {
	missed := 0
	for day := last.AddDate(0, 0, 1); day.Before(today); day = day.AddDate(0, 0, 1) {
		if IsDueOn(habit, day) {
			missed++
		}
	}
	return missed
}
