package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/denguetect/denguetect-api/schema"
)

var ErrAnalysisNotFound = errors.New("bite analysis not found")

type BiteAnalysisReport interface {
	NewBiteAnalysisID() string
	SaveBiteAnalysis(report *schema.BiteAnalysisReport) error
	GetBiteAnalysis(accountID, id string) (*schema.BiteAnalysisReport, error)
}

func (m *mongoDB) NewBiteAnalysisID() string {
	return uuid.New().String()
}

// SaveBiteAnalysis inserts a bite analysis. An empty ID or creation time is
// filled in.
func (m *mongoDB) SaveBiteAnalysis(report *schema.BiteAnalysisReport) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if report.ID == "" {
		report.ID = m.NewBiteAnalysisID()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}

	c := m.client.Database(m.database).Collection(schema.BiteAnalysisCollection)
	_, err := c.InsertOne(ctx, report)
	return err
}

// GetBiteAnalysis returns a bite analysis owned by the account.
func (m *mongoDB) GetBiteAnalysis(accountID, id string) (*schema.BiteAnalysisReport, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var report schema.BiteAnalysisReport
	c := m.client.Database(m.database).Collection(schema.BiteAnalysisCollection)
	if err := c.FindOne(ctx, bson.M{"_id": id, "account_id": accountID}).Decode(&report); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrAnalysisNotFound
		}
		return nil, err
	}

	return &report, nil
}
