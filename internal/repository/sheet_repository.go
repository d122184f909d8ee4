package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/fadilmartias/linkedin-autoapply/internal/model"
	"github.com/xuri/excelize/v2"
)

const (
	SheetName       = "Applications"
	TimestampLayout = "2006-01-02 15:04:05"
)

var sheetHeader = []interface{}{"Date", "Company", "Job Title", "Link", "Status"}

// SheetRepository is the append-only tabular log kept in an xlsx workbook.
type SheetRepository struct {
	path string
	mu   sync.Mutex
}

// NewSheetRepository creates the workbook with its header row when it does
// not exist yet.
func NewSheetRepository(path string) (*SheetRepository, error) {
	r := &SheetRepository{path: path}
	if _, err := os.Stat(path); err == nil {
		return r, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &sheetHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return r, nil
}

func (r *SheetRepository) Append(_ context.Context, app *model.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return fmt.Errorf("open %s: %w", r.path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		return fmt.Errorf("read %s: %w", SheetName, err)
	}
	cell, err := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err != nil {
		return err
	}
	row := []interface{}{
		app.Timestamp.Format(TimestampLayout),
		app.Company,
		app.JobTitle,
		app.Link,
		string(app.Status),
	}
	if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
		return fmt.Errorf("write row %s: %w", cell, err)
	}
	if err := f.Save(); err != nil {
		return fmt.Errorf("save %s: %w", r.path, err)
	}
	return nil
}

// All returns every logged attempt in file order.
func (r *SheetRepository) All(_ context.Context) ([]model.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", r.path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", SheetName, err)
	}

	apps := make([]model.Application, 0, len(rows))
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		for len(row) < len(sheetHeader) {
			row = append(row, "")
		}
		ts, err := time.ParseInLocation(TimestampLayout, row[0], time.Local)
		if err != nil {
			continue
		}
		app := model.Application{
			Timestamp: ts,
			Company:   row[1],
			JobTitle:  row[2],
			Link:      row[3],
			Status:    model.ApplicationStatus(row[4]),
		}
		app.Key = app.DocumentKey()
		apps = append(apps, app)
	}
	return apps, nil
}

// Latest returns attempts newest first.
func (r *SheetRepository) Latest(ctx context.Context, offset, limit int) ([]model.Application, int64, error) {
	apps, err := r.All(ctx)
	if err != nil {
		return nil, 0, err
	}
	sort.SliceStable(apps, func(i, j int) bool {
		return apps[i].Timestamp.After(apps[j].Timestamp)
	})
	total := int64(len(apps))
	if offset >= len(apps) {
		return []model.Application{}, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(apps) {
		end = len(apps)
	}
	return apps[offset:end], total, nil
}

// CountByStatus counts the latest attempt per application key, the same
// rows the live stores keep.
func (r *SheetRepository) CountByStatus(ctx context.Context) (map[model.ApplicationStatus]int64, error) {
	apps, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	latest := make(map[string]model.Application, len(apps))
	for _, app := range apps {
		if prev, ok := latest[app.Key]; ok && app.Timestamp.Before(prev.Timestamp) {
			continue
		}
		latest[app.Key] = app
	}
	counts := make(map[model.ApplicationStatus]int64)
	for _, app := range latest {
		counts[app.Status]++
	}
	return counts, nil
}
