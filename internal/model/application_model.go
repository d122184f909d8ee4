package model

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	StatusApplied                   ApplicationStatus = "Applied"
	StatusSkippedAlreadyApplied     ApplicationStatus = "Skipped - Already Applied"
	StatusFailedNoButton            ApplicationStatus = "Failed - No Button"
	StatusFailedCustomQuestionnaire ApplicationStatus = "Failed - Custom Questionnaire"
	StatusFailedUnknownState        ApplicationStatus = "Failed - Unknown Modal State"
	StatusFailedTooManySteps        ApplicationStatus = "Failed - Too Many Steps"
	StatusFailedException           ApplicationStatus = "Failed - Exception"
)

func (s ApplicationStatus) IsApplied() bool {
	return s == StatusApplied
}

func (s ApplicationStatus) IsFailure() bool {
	return strings.HasPrefix(string(s), "Failed")
}

// Application is one attempt at a listing. The tabular log keeps every attempt;
// live stores keep one row per Key().
type Application struct {
	ID        uint              `gorm:"primaryKey" json:"-"`
	Key       string            `gorm:"type:varchar(255);uniqueIndex" json:"key"`
	RunID     uuid.UUID         `gorm:"type:uuid" json:"run_id"`
	Timestamp time.Time         `gorm:"index" json:"timestamp"`
	Company   string            `gorm:"type:varchar(255)" json:"company"`
	JobTitle  string            `gorm:"type:varchar(255)" json:"job_title"`
	Link      string            `gorm:"type:text" json:"link"`
	Status    ApplicationStatus `gorm:"type:varchar(50)" json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func (a *Application) TableName() string {
	return "applications"
}

// DocumentKey returns normalize(company)_normalize(title).
func (a *Application) DocumentKey() string {
	return ApplicationKey(a.Company, a.JobTitle)
}

func ApplicationKey(company, title string) string {
	return Normalize(company) + "_" + Normalize(title)
}

// Normalize lower-cases s and collapses every run of non-alphanumerics into a
// single underscore.
func Normalize(s string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	if b.Len() == 0 {
		return "unknown"
	}
	return b.String()
}
