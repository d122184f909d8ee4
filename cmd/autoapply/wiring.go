package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fadilmartias/linkedin-autoapply/internal/config"
	"github.com/fadilmartias/linkedin-autoapply/internal/model"
	"github.com/fadilmartias/linkedin-autoapply/internal/repository"
	"github.com/fadilmartias/linkedin-autoapply/internal/service"
	"github.com/fadilmartias/linkedin-autoapply/internal/usecase"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newGenerator prefers Gemini, then OpenRouter. It returns nil when neither
// is configured so resumes fall back to the base text.
func newGenerator(ctx context.Context, c *config.Config) service.TextGenerator {
	if c.Gemini.Enabled() {
		gemini, err := service.NewGeminiService(ctx, c.Gemini)
		if err == nil {
			return gemini
		}
		log.Printf("⚠ gemini unavailable: %v", err)
	}
	if c.OpenRouter.Enabled() {
		openRouter, err := service.NewOpenRouterService(c.OpenRouter)
		if err == nil {
			return openRouter
		}
		log.Printf("⚠ openrouter unavailable: %v", err)
	}
	log.Println("⚠ no generation key configured, resumes will not be tailored")
	return nil
}

func newResumeService(c *config.Config, gen service.TextGenerator) *service.ResumeService {
	return service.NewResumeService(c.Resume.BasePDFPath, gen)
}

// reportGenerator logs the Gemini circuit breaker state at the end of a run.
// It returns false when the breaker is open.
func reportGenerator(gen service.TextGenerator) bool {
	gemini, ok := gen.(*service.GeminiService)
	if !ok {
		return true
	}
	failures, open := gemini.GetCircuitBreakerStatus()
	if open {
		log.Printf("⚠ gemini circuit breaker open after %d consecutive failures, later resumes used the base text", failures)
		return false
	}
	if failures > 0 {
		log.Printf("⚠ gemini ended the run with %d consecutive failures", failures)
	}
	return true
}

// openTracker opens the xlsx log. A tracker that cannot be opened is logged
// and skipped so the live stores still record the run.
func openTracker(path string) usecase.TabularLog {
	sheet, err := repository.NewSheetRepository(path)
	if err != nil {
		log.Printf("⚠ tracker %s disabled: %v", path, err)
		return nil
	}
	return sheet
}

// liveStores opens every configured live store. Stores that fail to open are
// logged and left out.
func liveStores(ctx context.Context, c *config.Config) (stores []usecase.LiveStore, closeFn func()) {
	var closers []func()
	closeFn = func() {
		for _, fn := range closers {
			fn()
		}
	}

	if c.Firebase.Enabled() {
		fs, err := repository.NewFirestoreRepository(ctx, c.Firebase.CertPath, c.Firebase.Collection)
		if err != nil {
			log.Printf("⚠ firestore disabled: %v", err)
		} else {
			stores = append(stores, fs)
			closers = append(closers, func() { _ = fs.Close() })
			log.Println("✓ firestore live store enabled")
		}
	}

	if c.Database.Enabled() {
		db, err := ConnectDB(c.Database)
		if err != nil {
			log.Printf("⚠ postgres disabled: %v", err)
		} else {
			stores = append(stores, repository.NewApplicationRepository(db))
			closers = append(closers, func() {
				if sqlDB, err := db.DB(); err == nil {
					_ = sqlDB.Close()
				}
			})
			log.Println("✓ postgres live store enabled")
		}
	}
	return stores, closeFn
}

func ConnectDB(dbConfig config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database instance: %w", err)
	}
	pgDB.SetMaxIdleConns(2)
	pgDB.SetMaxOpenConns(5)
	pgDB.SetConnMaxLifetime(30 * time.Minute)

	if err := db.AutoMigrate(&model.Application{}); err != nil {
		return nil, fmt.Errorf("migrate applications: %w", err)
	}
	return db, nil
}
