package main

import (
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/Sir-Wagyu/habitask-api/conf"
	"github.com/Sir-Wagyu/habitask-api/db"
	"github.com/Sir-Wagyu/habitask-api/model"
	"github.com/Sir-Wagyu/habitask-api/service"
)

func main() {
	cnf := conf.LoadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	balance, err := conf.LoadBalance(cnf.BalancePath)
	if err != nil {
		logger.Fatal("failed to load balance config", zap.String("path", cnf.BalancePath), zap.Error(err))
	}

	db.ConnectDB(cnf.DB)
	defer db.CloseDB()

	err = db.DB.AutoMigrate(
		&model.User{},
		&model.Task{},
		&model.SubTask{},
		&model.Habit{},
		&model.HabitCompletion{},
	)
	if err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	taskService := service.NewTaskService(db.DB, balance, logger)

	logger.Info("deadline penalty sweep running", zap.Duration("period", cnf.PenaltySweepPeriod))

	sweep := func(now time.Time) {
		applied, err := taskService.ApplyOverduePenalties(now)
		if err != nil {
			logger.Error("penalty sweep failed", zap.Error(err))
			return
		}
		if applied > 0 {
			logger.Info("applied deadline penalties", zap.Int("count", applied))
		}
	}

	sweep(time.Now())

	ticker := time.NewTicker(cnf.PenaltySweepPeriod)
	defer ticker.Stop()

	for now := range ticker.C {
		sweep(now)
	}
}
