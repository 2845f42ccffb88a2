package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(client *mongo.Client, dbName string) *MongoDBIndexer {
	return &MongoDBIndexer{
		ctx:      context.Background(),
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexAssessmentCollection())
	panicIfError(m.IndexBiteAnalysisCollection())
}

func (m *MongoDBIndexer) IndexAssessmentCollection() error {
	return m.createIndex(AssessmentCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "account_id", Value: 1},
			{Key: "created_at", Value: -1},
		},
	})
}

func (m *MongoDBIndexer) IndexBiteAnalysisCollection() error {
	return m.createIndex(BiteAnalysisCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "account_id", Value: 1},
			{Key: "created_at", Value: -1},
		},
	})
}
