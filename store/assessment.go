package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/denguetect/denguetect-api/schema"
)

var ErrAssessmentNotFound = errors.New("assessment not found")

type AssessmentReport interface {
	SaveAssessment(accountID string, assessment schema.Assessment) (*schema.AssessmentReport, error)
	LastAssessment(accountID string) (*schema.AssessmentReport, error)
}

// SaveAssessment stores an assessment computed with the published model.
func (m *mongoDB) SaveAssessment(accountID string, assessment schema.Assessment) (*schema.AssessmentReport, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	report := schema.AssessmentReport{
		ID:         uuid.New().String(),
		AccountID:  accountID,
		Model:      schema.PublishedModelName,
		Assessment: assessment,
		CreatedAt:  time.Now().UTC(),
	}

	c := m.client.Database(m.database).Collection(schema.AssessmentCollection)
	if _, err := c.InsertOne(ctx, report); err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).Error("save assessment")
		return nil, err
	}

	return &report, nil
}

// LastAssessment returns the latest assessment of an account which has at
// least one symptom.
func (m *mongoDB) LastAssessment(accountID string) (*schema.AssessmentReport, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{
		"account_id":             accountID,
		"assessment.symptoms.0": bson.M{"$exists": true},
	}
	opts := options.FindOne().SetSort(bson.M{"created_at": -1})

	var report schema.AssessmentReport
	c := m.client.Database(m.database).Collection(schema.AssessmentCollection)
	if err := c.FindOne(ctx, query, opts).Decode(&report); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrAssessmentNotFound
		}
		return nil, err
	}

	return &report, nil
}
