package repository

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/fadilmartias/linkedin-autoapply/internal/model"
	"github.com/tidwall/gjson"
	"google.golang.org/api/option"
)

// FirestoreRepository is the document live store. Documents are keyed by the
// application key and merged on every write.
type FirestoreRepository struct {
	client     *firestore.Client
	collection string
}

func NewFirestoreRepository(ctx context.Context, certPath, collection string) (*FirestoreRepository, error) {
	raw, err := os.ReadFile(certPath)
	if err != nil {
		return nil, fmt.Errorf("read firebase cert: %w", err)
	}
	projectID := gjson.GetBytes(raw, "project_id").String()
	if projectID == "" {
		return nil, fmt.Errorf("firebase cert %s has no project_id", certPath)
	}

	client, err := firestore.NewClient(ctx, projectID, option.WithCredentialsJSON(raw))
	if err != nil {
		return nil, fmt.Errorf("create firestore client: %w", err)
	}
	return &FirestoreRepository{client: client, collection: collection}, nil
}

func (r *FirestoreRepository) Upsert(ctx context.Context, app *model.Application) error {
	key := app.DocumentKey()
	_, err := r.client.Collection(r.collection).Doc(key).Set(ctx, applicationDocument(app), firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("upsert firestore document %s: %w", key, err)
	}
	return nil
}

func (r *FirestoreRepository) Close() error {
	return r.client.Close()
}

func applicationDocument(app *model.Application) map[string]interface{} {
	return map[string]interface{}{
		"timestamp": app.Timestamp,
		"company":   app.Company,
		"job_title": app.JobTitle,
		"link":      app.Link,
		"status":    string(app.Status),
		"run_id":    app.RunID.String(),
	}
}
