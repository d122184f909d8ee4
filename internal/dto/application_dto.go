package dto

import (
	"time"

	"github.com/fadilmartias/linkedin-autoapply/internal/model"
)

type ApplicationDTO struct {
	Key       string    `json:"key"`
	Timestamp time.Time `json:"timestamp"`
	Company   string    `json:"company"`
	JobTitle  string    `json:"job_title"`
	Link      string    `json:"link"`
	Status    string    `json:"status"`
}

func NewApplicationDTO(app model.Application) ApplicationDTO {
	return ApplicationDTO{
		Key:       app.DocumentKey(),
		Timestamp: app.Timestamp,
		Company:   app.Company,
		JobTitle:  app.JobTitle,
		Link:      app.Link,
		Status:    string(app.Status),
	}
}

func NewApplicationDTOs(apps []model.Application) []ApplicationDTO {
	out := make([]ApplicationDTO, 0, len(apps))
	for _, app := range apps {
		out = append(out, NewApplicationDTO(app))
	}
	return out
}
