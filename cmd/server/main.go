package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/pairlog/checkin/internal/adapters/handler/http"
	"github.com/pairlog/checkin/internal/adapters/repository/postgres"
	"github.com/pairlog/checkin/internal/adapters/roster"
	"github.com/pairlog/checkin/internal/config"
	"github.com/pairlog/checkin/internal/core/services"
	"github.com/pairlog/checkin/internal/logging"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.Init(os.Getenv("CHECKIN_ENV") == "dev")
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	db, err := sql.Open("postgres", cfg.Postgres.ConnString())
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatal("failed to ping database", zap.Error(err))
	}

	pairRoster, err := roster.NewStatic(cfg.FirstUserID, cfg.SecondUserID)
	if err != nil {
		logger.Fatal("invalid roster configuration", zap.Error(err))
	}

	questionRepo := postgres.NewQuestionRepository(db)
	answerRepo := postgres.NewAnswerRepository(db)

	scheduleSvc := services.NewScheduleService(questionRepo, cfg.Timezone)
	checkInSvc := services.NewCheckInService(questionRepo, answerRepo, pairRoster, logger)
	questionSvc := services.NewQuestionService(questionRepo, cfg.Timezone, logger)

	checkInHandler := http.NewCheckInHandler(scheduleSvc, checkInSvc, logger)
	scheduleHandler := http.NewScheduleHandler(questionSvc, cfg.Timezone, logger)

	handler := http.NewHandler(checkInHandler, scheduleHandler, []byte(cfg.JWTSecret))
	server := &stdhttp.Server{Addr: cfg.Addr, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.Addr), zap.String("timezone", cfg.Timezone.String()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("shutdown failed", zap.Error(err))
	}
}
