package documentsRepo

import (
	"context"
	"fmt"
	"time"

	"carelink/database"
	"carelink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDocumentRepo implements DocumentRepository using MongoDB.
type MongoDocumentRepo struct {
	coll *mongo.Collection
}

// NewMongoDocumentRepo creates a DocumentRepository backed by the
// "facilityDocuments" collection.
func NewMongoDocumentRepo() DocumentRepository {
	return &MongoDocumentRepo{coll: database.Collection("facilityDocuments")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoDocumentRepo) GetByFacilityID(facilityID string) (*models.DocumentRecord, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var record models.DocumentRecord
	filter := bson.M{"facilityId": facilityID}
	if err := r.coll.FindOne(ctx, filter).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch documents for facility %s: %w", facilityID, err)
	}
	return &record, nil
}

func (r *MongoDocumentRepo) Upsert(record *models.DocumentRecord) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	// Callers always hand over the full record; replace rather than merge so
	// omitempty fields that emptied out do not linger in the stored document.
	filter := bson.M{"facilityId": record.FacilityID}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, filter, record, opts); err != nil {
		return fmt.Errorf("failed to upsert documents for facility %s: %w", record.FacilityID, err)
	}
	return nil
}
