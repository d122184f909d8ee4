package usecase

import (
	"context"
	"log"
	"time"

	"github.com/fadilmartias/linkedin-autoapply/internal/model"
	"github.com/google/uuid"
)

// TabularLog keeps every attempt.
type TabularLog interface {
	Append(ctx context.Context, app *model.Application) error
}

// LiveStore keeps the latest attempt per application key.
type LiveStore interface {
	Upsert(ctx context.Context, app *model.Application) error
}

type RecorderUsecase struct {
	log   TabularLog
	live  []LiveStore
	runID uuid.UUID
	now   func() time.Time
}

func NewRecorderUsecase(tabular TabularLog, runID uuid.UUID, live ...LiveStore) *RecorderUsecase {
	stores := make([]LiveStore, 0, len(live))
	for _, s := range live {
		if s != nil {
			stores = append(stores, s)
		}
	}
	return &RecorderUsecase{log: tabular, live: stores, runID: runID, now: time.Now}
}

// Record writes the outcome to every sink. Sink failures are logged and never
// returned.
func (uc *RecorderUsecase) Record(ctx context.Context, company, title, link string, status model.ApplicationStatus) {
	app := &model.Application{
		RunID:     uc.runID,
		Timestamp: uc.now(),
		Company:   company,
		JobTitle:  title,
		Link:      link,
		Status:    status,
	}
	app.Key = app.DocumentKey()

	if uc.log != nil {
		if err := uc.log.Append(ctx, app); err != nil {
			log.Printf("⚠ [recorder] tabular log: %v", err)
		}
	}
	for _, store := range uc.live {
		if err := store.Upsert(ctx, app); err != nil {
			log.Printf("⚠ [recorder] live store: %v", err)
		}
	}
	log.Printf("[recorder] %s | %s | %s", company, title, status)
}
