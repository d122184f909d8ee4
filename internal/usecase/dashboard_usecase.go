package usecase

import (
	"context"

	"github.com/fadilmartias/linkedin-autoapply/internal/model"
)

// MaxDashboardRecords caps how far back the dashboard lists.
const MaxDashboardRecords = 100

type ApplicationReader interface {
	Latest(ctx context.Context, offset, limit int) ([]model.Application, int64, error)
	CountByStatus(ctx context.Context) (map[model.ApplicationStatus]int64, error)
}

type Stats struct {
	Total      int64                             `json:"total"`
	Applied    int64                             `json:"applied"`
	NotApplied int64                             `json:"not_applied"`
	Failed     int64                             `json:"failed"`
	ByStatus   map[model.ApplicationStatus]int64 `json:"by_status"`
}

type DashboardUsecase struct {
	reader ApplicationReader
}

func NewDashboardUsecase(reader ApplicationReader) *DashboardUsecase {
	return &DashboardUsecase{reader: reader}
}

// List returns one page of the latest records. total is capped at
// MaxDashboardRecords.
func (uc *DashboardUsecase) List(ctx context.Context, page, pageSize int) ([]model.Application, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > MaxDashboardRecords {
		pageSize = 20
	}
	offset := (page - 1) * pageSize
	if offset >= MaxDashboardRecords {
		_, total, err := uc.reader.Latest(ctx, 0, 1)
		return []model.Application{}, capTotal(total), err
	}
	limit := pageSize
	if offset+limit > MaxDashboardRecords {
		limit = MaxDashboardRecords - offset
	}
	apps, total, err := uc.reader.Latest(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return apps, capTotal(total), nil
}

// Stats summarises the latest outcome per application key. List, by contrast,
// shows every attempt when reading the xlsx tracker.
func (uc *DashboardUsecase) Stats(ctx context.Context) (*Stats, error) {
	counts, err := uc.reader.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	stats := &Stats{ByStatus: counts}
	for status, n := range counts {
		stats.Total += n
		if status.IsApplied() {
			stats.Applied += n
		}
		if status.IsFailure() {
			stats.Failed += n
		}
	}
	stats.NotApplied = stats.Total - stats.Applied
	return stats, nil
}

func capTotal(total int64) int64 {
	if total > MaxDashboardRecords {
		return MaxDashboardRecords
	}
	return total
}
