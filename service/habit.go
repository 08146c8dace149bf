package service

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Sir-Wagyu/habitask-api/conf"
	"github.com/Sir-Wagyu/habitask-api/model"
)

type HabitService struct {
	db      *gorm.DB
	log     *zap.Logger
	balance conf.Balance
}

func NewHabitService(db *gorm.DB, balance conf.Balance, logger *zap.Logger) *HabitService {
	return &HabitService{
		db:      db,
		log:     logger,
		balance: balance,
	}
}

type HabitCompletionResult struct {
	Completion *model.HabitCompletion `json:"completion"`
	XpEarned   int                    `json:"xp_earned"`
	NewStreak  int                    `json:"new_streak"`
	LeveledUp  bool                   `json:"leveled_up"`
	NewLevel   int                    `json:"new_level,omitempty"`
	NewTitle   string                 `json:"new_title,omitempty"`
}

// CompleteToday completes the habit for the given date. Completing a habit
// twice on the same date is not an error: the second call returns the
// existing completion with no XP or streak change. The streak update,
// completion insert and user progression mutation commit in one transaction.
func (s *HabitService) CompleteToday(habitID, userID int64, today time.Time) (*HabitCompletionResult, error) {
	habit, err := s.validateHabitOwnedByUser(habitID, userID)
	if err != nil {
		return nil, err
	}

	today = DateOnly(today)

	existing, err := s.completionOn(habitID, today)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &HabitCompletionResult{
			Completion: existing,
			XpEarned:   existing.XpEarned,
			NewStreak:  habit.CurrentStreak,
		}, nil
	}

	var result *HabitCompletionResult

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := findUser(tx, habit.UserID, &user); err != nil {
			return err
		}

		levelBefore := user.Level
		xp := ApplyBonus(s.balance.HabitXpFor(string(habit.Difficulty)), user.Level)

		completion := &model.HabitCompletion{
			HabitID:       habit.ID,
			UserID:        habit.UserID,
			CompletedDate: today,
			XpEarned:      xp,
		}
		if err := tx.Create(completion).Error; err != nil {
			return err
		}

		// The streak is derived from the pre-completion state, so compute it
		// before overwriting last_completed_date.
		habit.CurrentStreak = NextStreak(habit, today)
		habit.LastCompletedDate = &today
		if err := tx.Save(habit).Error; err != nil {
			return err
		}

		applyXp(&user, xp)
		restoreHp(&user, s.balance.HabitRestoreHp)
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		result = &HabitCompletionResult{
			Completion: completion,
			XpEarned:   xp,
			NewStreak:  habit.CurrentStreak,
			LeveledUp:  user.Level > levelBefore,
		}
		if result.LeveledUp {
			result.NewLevel = user.Level
			result.NewTitle = user.Title
		}

		return nil
	})

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost a same-day race on the (habit_id, completed_date) constraint;
		// the winner's completion is the idempotent result.
		return s.raceLoserResult(habitID, today, err)
	}
	if err != nil {
		return nil, err
	}

	if result.LeveledUp {
		s.log.Info("habit completion leveled user up",
			zap.Int64("habit_id", habitID),
			zap.Int64("user_id", userID),
			zap.Int("level", result.NewLevel))
	}

	return result, nil
}

func (s *HabitService) raceLoserResult(habitID int64, today time.Time, txErr error) (*HabitCompletionResult, error) {
	existing, err := s.completionOn(habitID, today)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, txErr
	}

	var habit model.Habit
	if err := s.db.First(&habit, habitID).Error; err != nil {
		return nil, err
	}

	return &HabitCompletionResult{
		Completion: existing,
		XpEarned:   existing.XpEarned,
		NewStreak:  habit.CurrentStreak,
	}, nil
}

// CompletionsFor returns the habit's completion history, newest first.
func (s *HabitService) CompletionsFor(habitID, userID int64) ([]model.HabitCompletion, error) {
	if _, err := s.validateHabitOwnedByUser(habitID, userID); err != nil {
		return nil, err
	}

	var completions []model.HabitCompletion
	err := s.db.Where("habit_id = ?", habitID).
		Order("completed_date DESC").
		Find(&completions).Error
	if err != nil {
		return nil, err
	}

	return completions, nil
}

// IsCompletedOn reports whether a completion exists for the habit on the date.
func (s *HabitService) IsCompletedOn(habitID int64, date time.Time) (bool, error) {
	completion, err := s.completionOn(habitID, DateOnly(date))
	if err != nil {
		return false, err
	}
	return completion != nil, nil
}

func (s *HabitService) completionOn(habitID int64, date time.Time) (*model.HabitCompletion, error) {
	var completion model.HabitCompletion

	err := s.db.Where("habit_id = ? AND completed_date = ?", habitID, date).First(&completion).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &completion, nil
}

func (s *HabitService) validateHabitOwnedByUser(habitID, userID int64) (*model.Habit, error) {
	var habit model.Habit

	if err := s.db.First(&habit, habitID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, err
	}

	if habit.UserID != userID {
		return nil, ErrHabitNotFound
	}

	return &habit, nil
}
