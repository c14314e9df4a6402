package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adamspd/InterviewPrep/backup"
	"github.com/adamspd/InterviewPrep/handlers"
	"github.com/adamspd/InterviewPrep/interview"
	"github.com/adamspd/InterviewPrep/questions"
	"github.com/adamspd/InterviewPrep/scoring"
	"github.com/adamspd/InterviewPrep/storage"
	"github.com/adamspd/InterviewPrep/utils"
	"github.com/joho/godotenv"
)

func main() {
	// Set up logging with timestamps
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	utils.LogStartup("Interview Prep API starting...")

	if err := godotenv.Load(); err != nil {
		utils.LogStartup("No .env file found, using environment as-is")
	}

	port := utils.GetEnvOrDefault("PORT", "8044")
	dbPath := utils.GetEnvOrDefault("DB_PATH", "./interviews.db")
	seed := utils.GetEnvInt64("SCORE_SEED", time.Now().UnixNano())

	utils.LogStartup("Using port %s, database %s", port, dbPath)

	db, err := storage.InitDB(dbPath)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize database: %v", err)
	}

	store := storage.NewStore(db)

	bank := questions.NewBank(seed)
	if questionsFile := os.Getenv("QUESTIONS_FILE"); questionsFile != "" {
		pools, err := questions.LoadPools(questionsFile)
		if err != nil {
			log.Fatalf("[FATAL] Failed to load questions file: %v", err)
		}
		bank, err = questions.NewBankWithPools(pools, seed)
		if err != nil {
			log.Fatalf("[FATAL] Invalid question pools: %v", err)
		}
		utils.LogStartup("Loaded question pools from %s", questionsFile)
	}

	scorer := scoring.NewEngine(seed)
	engine := interview.NewEngine(store, bank, scorer, interview.SystemClock())
	engine.Restore()

	backups := backup.NewManager(db)

	// Drive the session countdown
	ctx, cancel := context.WithCancel(context.Background())
	go engine.RunTicker(ctx)

	router := handlers.NewRouter(store, engine, scorer, backups)

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Set up graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		utils.LogShutdown("Received shutdown signal")
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			utils.LogError("Server shutdown error: %v", err)
		}

		if err := db.Close(); err != nil {
			utils.LogError("Error closing database: %v", err)
		} else {
			utils.LogShutdown("Database connection closed successfully")
		}
	}()

	utils.LogStartup("Starting HTTP server on port %s...", port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("[FATAL] Server failed to start: %v", err)
	}
	utils.LogShutdown("Server stopped")
}
