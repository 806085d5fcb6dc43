package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/estatedesk/property_marketplace/backend/models"
)

// blobDocID is the fixed key the whole collection lives under.
const blobDocID = "properties"

type blobDoc struct {
	ID      string            `bson:"_id"`
	Records []models.Property `bson:"records"`
}

// MongoBlob stores the entire collection inside a single document that gets
// replaced on every write. A row-per-property layout would be the obvious
// Mongo shape, but it would trade away the whole-blob replace atomicity the
// store is built around.
type MongoBlob struct {
	coll *mongo.Collection
}

func NewMongoBlob(coll *mongo.Collection) *MongoBlob {
	return &MongoBlob{coll: coll}
}

func (b *MongoBlob) Load(ctx context.Context) ([]models.Property, bool, error) {
	var doc blobDoc
	err := b.coll.FindOne(ctx, bson.M{"_id": blobDocID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("loading property blob: %w", err)
	}
	return doc.Records, true, nil
}

func (b *MongoBlob) Save(ctx context.Context, records []models.Property) error {
	doc := blobDoc{ID: blobDocID, Records: records}
	_, err := b.coll.ReplaceOne(ctx, bson.M{"_id": blobDocID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("saving property blob: %w", err)
	}
	return nil
}
