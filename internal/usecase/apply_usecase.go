package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fadilmartias/linkedin-autoapply/internal/linkedin"
	"github.com/fadilmartias/linkedin-autoapply/internal/model"
	"github.com/google/uuid"
)

type KeywordResult struct {
	Keyword string
	Applied int
}

type RunSummary struct {
	RunID    uuid.UUID
	Started  time.Time
	Finished time.Time
	Applied  int
	Limit    int
	Keywords []KeywordResult
}

// ApplyUsecase runs one session: log in, then spend the daily quota across the
// keywords in order.
type ApplyUsecase struct {
	session  *linkedin.Session
	iterator *linkedin.Iterator
	runID    uuid.UUID
}

func NewApplyUsecase(session *linkedin.Session, iterator *linkedin.Iterator, runID uuid.UUID) *ApplyUsecase {
	return &ApplyUsecase{session: session, iterator: iterator, runID: runID}
}

func (uc *ApplyUsecase) Run(ctx context.Context, criteria model.SearchCriteria) (*RunSummary, error) {
	summary := &RunSummary{RunID: uc.runID, Started: time.Now(), Limit: criteria.DailyLimit}

	if err := uc.session.Login(ctx); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	for _, keyword := range criteria.Keywords {
		remaining := criteria.DailyLimit - summary.Applied
		if remaining <= 0 {
			log.Printf("✓ daily limit of %d reached", criteria.DailyLimit)
			break
		}
		if ctx.Err() != nil {
			break
		}
		n := uc.iterator.ProcessKeyword(ctx, keyword, criteria.Location, remaining)
		summary.Applied += n
		summary.Keywords = append(summary.Keywords, KeywordResult{Keyword: keyword, Applied: n})
	}

	summary.Finished = time.Now()
	for _, k := range summary.Keywords {
		log.Printf("[summary] %-20s applied %d", k.Keyword, k.Applied)
	}
	log.Printf("[summary] run %s applied %d/%d in %s",
		summary.RunID, summary.Applied, summary.Limit, summary.Finished.Sub(summary.Started).Round(time.Second))
	return summary, nil
}
