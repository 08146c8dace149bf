package service

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Sir-Wagyu/habitask-api/model"
)

// UserService owns every mutation of a user's progression state.
type UserService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewUserService(db *gorm.DB, logger *zap.Logger) *UserService {
	return &UserService{
		db:  db,
		log: logger,
	}
}

type GamificationSnapshot struct {
	Level                  int     `json:"level"`
	Xp                     int     `json:"xp"`
	XpToNextLevel          int     `json:"xp_to_next_level"`
	Hp                     int     `json:"hp"`
	Title                  string  `json:"title"`
	XpBonusMultiplier      float64 `json:"xp_bonus_multiplier"`
	NextLevelXpRequirement int     `json:"next_level_xp_requirement"`
}

// AddXp awards XP to the user, leveling up as many times as the amount
// allows. Negative amounts are a programmer error and fail before any
// storage access.
func (s *UserService) AddXp(userID int64, amount int) (*model.User, error) {
	if amount < 0 {
		return nil, ErrNegativeXpAmount
	}

	var user model.User

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := findUser(tx, userID, &user); err != nil {
			return err
		}

		levelBefore := user.Level
		applyXp(&user, amount)
		if user.Level > levelBefore {
			s.log.Info("user leveled up",
				zap.Int64("user_id", user.ID),
				zap.Int("level", user.Level),
				zap.String("title", user.Title))
		}

		return tx.Save(&user).Error
	})

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// ReduceHp lowers the user's HP, clamped at 0. Reaching 0 carries no special
// behavior; it is a visible signal only.
func (s *UserService) ReduceHp(userID int64, amount int) (*model.User, error) {
	if amount < 0 {
		return nil, ErrNegativeHpAmount
	}

	return s.updateUser(userID, func(user *model.User) {
		reduceHp(user, amount)
	})
}

// RestoreHp raises the user's HP, clamped at 100.
func (s *UserService) RestoreHp(userID int64, amount int) (*model.User, error) {
	if amount < 0 {
		return nil, ErrNegativeHpAmount
	}

	return s.updateUser(userID, func(user *model.User) {
		restoreHp(user, amount)
	})
}

// GamificationSnapshot returns the user's progression state together with the
// derived bonus multiplier and next-level requirement.
func (s *UserService) GamificationSnapshot(userID int64) (*GamificationSnapshot, error) {
	var user model.User
	if err := findUser(s.db, userID, &user); err != nil {
		return nil, err
	}

	return &GamificationSnapshot{
		Level:                  user.Level,
		Xp:                     user.Xp,
		XpToNextLevel:          user.XpToNextLevel,
		Hp:                     user.Hp,
		Title:                  user.Title,
		XpBonusMultiplier:      BonusMultiplierForLevel(user.Level),
		NextLevelXpRequirement: XpRequirementForLevel(user.Level),
	}, nil
}

func (s *UserService) updateUser(userID int64, mutate func(*model.User)) (*model.User, error) {
	var user model.User

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := findUser(tx, userID, &user); err != nil {
			return err
		}

		mutate(&user)

		return tx.Save(&user).Error
	})

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func findUser(tx *gorm.DB, userID int64, user *model.User) error {
	if err := tx.First(user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// applyXp mutates progression state in memory. The completion services call
// it inside their own transactions so that XP, streak and completion rows
// commit together.
func applyXp(user *model.User, amount int) {
	user.Xp += amount

	// A single large award can cross several levels, so this has to loop.
	for user.Xp >= user.XpToNextLevel {
		user.Xp -= user.XpToNextLevel
		user.Level++
		user.XpToNextLevel = XpRequirementForLevel(user.Level)
		user.Title = TitleForLevel(user.Level)
	}
}

func reduceHp(user *model.User, amount int) {
	user.Hp = max(0, user.Hp-amount)
}

func restoreHp(user *model.User, amount int) {
	user.Hp = min(100, user.Hp+amount)
}
