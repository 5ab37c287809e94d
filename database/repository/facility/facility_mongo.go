package facilityRepo

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

// MongoFacilityRepo implements FacilityRepository using MongoDB.
type MongoFacilityRepo struct {
	coll *mongo.Collection
}

// NewMongoFacilityRepo creates a FacilityRepository backed by the
// "facilities" collection.
func NewMongoFacilityRepo() FacilityRepository {
	return &MongoFacilityRepo{coll: database.Collection("facilities")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoFacilityRepo) GetByID(id string) (*models.Facility, error) {
	return r.GetByIDWithProjection(id, nil)
}

func (r *MongoFacilityRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Facility, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var facility models.Facility
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&facility); err != nil {
		return nil, fmt.Errorf("failed to fetch facility with id %s: %w", id, err)
	}
	return &facility, nil
}

func (r *MongoFacilityRepo) GetByEmail(email string) (*models.Facility, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var facility models.Facility
	if err := r.coll.FindOne(ctx, bson.M{"profile.email": email}).Decode(&facility); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch facility with email %s: %w", email, err)
	}
	return &facility, nil
}

func (r *MongoFacilityRepo) GetAll(facilityType models.FacilityType) ([]models.Facility, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if facilityType != "" {
		filter["profile.facilityType"] = facilityType
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve facilities: %w", err)
	}
	defer cursor.Close(ctx)

	var facilities []models.Facility
	for cursor.Next(ctx) {
		var f models.Facility
		if err := cursor.Decode(&f); err != nil {
			return nil, fmt.Errorf("failed to decode facility: %w", err)
		}
		facilities = append(facilities, f)
	}
	return facilities, nil
}

func (r *MongoFacilityRepo) Create(facility *models.Facility) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, facility); err != nil {
		return fmt.Errorf("failed to create facility: %w", err)
	}
	return nil
}

func (r *MongoFacilityRepo) Update(facility *models.Facility) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": facility.ID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": facility})
	if err != nil {
		return fmt.Errorf("failed to update facility with id %s: %w", facility.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("facility with id %s not found", facility.ID)
	}
	return nil
}

func (r *MongoFacilityRepo) UpdateSetDocument(id string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update facility with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("facility with id %s not found", id)
	}
	return nil
}

func (r *MongoFacilityRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete facility with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("facility with id %s not found", id)
	}
	return nil
}
