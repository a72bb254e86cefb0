// scheduleimport bulk-loads scheduled questions from a JSON file, the
// operational counterpart of creating them one by one through the admin API.
//
// Input format:
//
//	[{"text": "What made you smile today?", "scheduled_on": "2024-06-01"}, ...]
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/pairlog/checkin/internal/adapters/repository/postgres"
	"github.com/pairlog/checkin/internal/config"
	"github.com/pairlog/checkin/internal/core/domain"
	"github.com/pairlog/checkin/internal/core/ports"
	"github.com/pairlog/checkin/internal/core/services"
	"github.com/pairlog/checkin/internal/logging"
	"go.uber.org/zap"
)

type scheduledQuestion struct {
	Text        string `json:"text"`
	ScheduledOn string `json:"scheduled_on"`
}

func main() {
	var filePath, authorIDStr string
	flag.StringVar(&filePath, "file", "", "path to the JSON schedule file")
	flag.StringVar(&authorIDStr, "author", "", "author user id recorded on the imported questions")
	flag.Parse()

	if filePath == "" || authorIDStr == "" {
		log.Fatal("both -file and -author are required")
	}

	authorID, err := uuid.Parse(authorIDStr)
	if err != nil {
		log.Fatalf("invalid author id: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.Init(os.Getenv("CHECKIN_ENV") == "dev")
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	content, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatal(err)
	}

	var entries []scheduledQuestion
	if err := json.Unmarshal(content, &entries); err != nil {
		log.Fatalf("failed to parse schedule file: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Postgres.ConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	questionRepo := postgres.NewQuestionRepository(db)
	questionSvc := services.NewQuestionService(questionRepo, cfg.Timezone, logger)

	// The import runs with operator credentials, so it carries the
	// elevated capability directly.
	capability := domain.Capability{UserID: authorID, Elevated: true}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	for _, entry := range entries {
		scheduledOn, err := time.ParseInLocation("2006-01-02", entry.ScheduledOn, cfg.Timezone)
		if err != nil {
			logger.Fatal("invalid scheduled_on date",
				zap.String("text", entry.Text), zap.String("scheduled_on", entry.ScheduledOn))
		}

		question, err := questionSvc.Create(ctx, capability, ports.QuestionInput{
			Text:        entry.Text,
			ScheduledOn: scheduledOn,
		})
		if err != nil {
			logger.Fatal("failed to import question", zap.String("text", entry.Text), zap.Error(err))
		}
		logger.Info("question imported",
			zap.String("question_id", question.ID.String()),
			zap.Time("scheduled_on", question.ScheduledOn),
		)
	}

	logger.Info("schedule import completed", zap.Int("count", len(entries)))
}
