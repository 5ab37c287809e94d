package serviceprofileRepo

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

// MongoServiceProfileRepo implements ServiceProfileRepository using MongoDB.
type MongoServiceProfileRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceProfileRepo creates a ServiceProfileRepository backed by the
// "serviceProfiles" collection.
func NewMongoServiceProfileRepo() ServiceProfileRepository {
	return &MongoServiceProfileRepo{coll: database.Collection("serviceProfiles")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoServiceProfileRepo) GetByFacilityID(facilityID string) (*models.ServiceProfile, error) {
	return r.GetByFacilityIDWithProjection(facilityID, nil)
}

func (r *MongoServiceProfileRepo) GetByFacilityIDWithProjection(facilityID string, projection bson.M) (*models.ServiceProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var profile models.ServiceProfile
	filter := bson.M{"facilityId": facilityID}
	if err := r.coll.FindOne(ctx, filter, opts).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service profile for facility %s: %w", facilityID, err)
	}
	return &profile, nil
}

func (r *MongoServiceProfileRepo) Upsert(profile *models.ServiceProfile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	// Replace wholesale, never $set-merge: the detail keys are omitempty, so
	// a merge would keep a previous facility type's detail record alive in
	// the stored document.
	filter := bson.M{"facilityId": profile.FacilityID}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, filter, profile, opts); err != nil {
		return fmt.Errorf("failed to upsert service profile for facility %s: %w", profile.FacilityID, err)
	}
	return nil
}

func (r *MongoServiceProfileRepo) Delete(facilityID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"facilityId": facilityID})
	if err != nil {
		return fmt.Errorf("failed to delete service profile for facility %s: %w", facilityID, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("service profile for facility %s not found", facilityID)
	}
	return nil
}
