package service

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Sir-Wagyu/habitask-api/conf"
	"github.com/Sir-Wagyu/habitask-api/model"
)

type TaskService struct {
	db      *gorm.DB
	log     *zap.Logger
	balance conf.Balance
}

func NewTaskService(db *gorm.DB, balance conf.Balance, logger *zap.Logger) *TaskService {
	return &TaskService{
		db:      db,
		log:     logger,
		balance: balance,
	}
}

type TaskCompletionResult struct {
	Task     *model.Task `json:"task"`
	XpEarned int         `json:"xp_earned"`
}

// Complete marks the task done and awards its XP. Unlike habit completion,
// re-completing a task is a caller-visible rejection.
func (s *TaskService) Complete(taskID, userID int64, now time.Time) (*TaskCompletionResult, error) {
	task, err := s.validateTaskOwnedByUser(taskID, userID)
	if err != nil {
		return nil, err
	}

	if task.IsCompleted {
		return nil, ErrTaskAlreadyCompleted
	}

	var xp int

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := findUser(tx, task.UserID, &user); err != nil {
			return err
		}

		task.IsCompleted = true
		task.CompletedAt = &now
		if err := tx.Save(task).Error; err != nil {
			return err
		}

		xp = ApplyBonus(s.balance.TaskXpFor(string(task.Difficulty)), user.Level)
		applyXp(&user, xp)

		return tx.Save(&user).Error
	})

	if err != nil {
		return nil, err
	}

	return &TaskCompletionResult{Task: task, XpEarned: xp}, nil
}

// MarkIncomplete reverts a completed task to pending. No XP is clawed back;
// the award stays with the user.
func (s *TaskService) MarkIncomplete(taskID, userID int64) (*model.Task, error) {
	task, err := s.validateTaskOwnedByUser(taskID, userID)
	if err != nil {
		return nil, err
	}

	task.IsCompleted = false
	task.CompletedAt = nil

	if err := s.db.Save(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

// ApplyDeadlinePenalty reduces the owner's HP for a missed deadline. It is a
// one-shot guard: a no-op when the penalty was already applied, the task has
// no deadline, the deadline has not passed, or the task is completed, so a
// periodic sweep can call it repeatedly.
func (s *TaskService) ApplyDeadlinePenalty(taskID int64, now time.Time) error {
	var task model.Task

	if err := s.db.First(&task, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return err
	}

	return s.applyPenalty(&task, now)
}

// ApplyOverduePenalties applies the deadline penalty to every pending,
// unpenalized task whose deadline has passed. Returns how many penalties
// were applied.
func (s *TaskService) ApplyOverduePenalties(now time.Time) (int, error) {
	var tasks []model.Task

	err := s.db.Where(
		"penalty_applied = ? AND is_completed = ? AND deadline IS NOT NULL AND deadline < ?",
		false, false, now,
	).Find(&tasks).Error
	if err != nil {
		return 0, err
	}

	applied := 0
	for i := range tasks {
		if err := s.applyPenalty(&tasks[i], now); err != nil {
			s.log.Error("deadline penalty failed",
				zap.Int64("task_id", tasks[i].ID),
				zap.Error(err))
			continue
		}
		applied++
	}

	return applied, nil
}

func (s *TaskService) applyPenalty(task *model.Task, now time.Time) error {
	if task.PenaltyApplied || task.IsCompleted || task.Deadline == nil || !now.After(*task.Deadline) {
		return nil
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := findUser(tx, task.UserID, &user); err != nil {
			return err
		}

		task.PenaltyApplied = true
		if err := tx.Save(task).Error; err != nil {
			return err
		}

		reduceHp(&user, s.balance.HpPenaltyFor(string(task.Difficulty)))

		return tx.Save(&user).Error
	})
}

// CompleteSubTask marks a sub-task done. Sub-tasks carry no XP.
func (s *TaskService) CompleteSubTask(taskID, subTaskID, userID int64, now time.Time) (*model.SubTask, error) {
	subTask, err := s.validateSubTask(taskID, subTaskID, userID)
	if err != nil {
		return nil, err
	}

	subTask.IsCompleted = true
	subTask.CompletedAt = &now

	if err := s.db.Save(subTask).Error; err != nil {
		return nil, err
	}

	return subTask, nil
}

// IncompleteSubTask reverts a sub-task to pending.
func (s *TaskService) IncompleteSubTask(taskID, subTaskID, userID int64) (*model.SubTask, error) {
	subTask, err := s.validateSubTask(taskID, subTaskID, userID)
	if err != nil {
		return nil, err
	}

	subTask.IsCompleted = false
	subTask.CompletedAt = nil

	if err := s.db.Save(subTask).Error; err != nil {
		return nil, err
	}

	return subTask, nil
}

func (s *TaskService) validateTaskOwnedByUser(taskID, userID int64) (*model.Task, error) {
	var task model.Task

	if err := s.db.First(&task, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	if task.UserID != userID {
		return nil, ErrTaskNotFound
	}

	return &task, nil
}

func (s *TaskService) validateSubTask(taskID, subTaskID, userID int64) (*model.SubTask, error) {
	if _, err := s.validateTaskOwnedByUser(taskID, userID); err != nil {
		return nil, err
	}

	var subTask model.SubTask
	if err := s.db.First(&subTask, subTaskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	if subTask.TaskID != taskID {
		return nil, ErrTaskNotFound
	}

	return &subTask, nil
}
