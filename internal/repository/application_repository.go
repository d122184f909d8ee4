package repository

import (
	"context"
	"fmt"

	"github.com/fadilmartias/linkedin-autoapply/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ApplicationRepository is the Postgres live store: one row per application
// key, overwritten by later attempts.
type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db}
}

func (r *ApplicationRepository) Upsert(ctx context.Context, app *model.Application) error {
	row := *app
	row.ID = 0
	row.Key = app.DocumentKey()
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"run_id", "timestamp", "company", "job_title", "link", "status", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("upsert application %s: %w", row.Key, err)
	}
	return nil
}

func (r *ApplicationRepository) Latest(ctx context.Context, offset, limit int) ([]model.Application, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Application{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count applications: %w", err)
	}
	var apps []model.Application
	err := r.db.WithContext(ctx).
		Order("timestamp desc").
		Offset(offset).
		Limit(limit).
		Find(&apps).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list applications: %w", err)
	}
	return apps, total, nil
}

func (r *ApplicationRepository) CountByStatus(ctx context.Context) (map[model.ApplicationStatus]int64, error) {
	var rows []struct {
		Status model.ApplicationStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.Application{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count applications by status: %w", err)
	}
	counts := make(map[model.ApplicationStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
