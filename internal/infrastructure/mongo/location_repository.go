package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/careloop/patient-survey-services/api/internal/survey/domain"
)

// LocationRepository reads the catalog of ratable hospital units from MongoDB.
type LocationRepository struct {
	locations *mongo.Collection
}

// NewLocationRepository binds the repository to its collection.
func NewLocationRepository(db *mongo.Database, collection string) *LocationRepository {
	return &LocationRepository{locations: db.Collection(collection)}
}

// FindAll returns every location sorted by name.
func (r *LocationRepository) FindAll(ctx context.Context) ([]domain.Location, error) {
	return r.find(ctx, bson.M{})
}

// FindByType returns the locations of one classification sorted by name.
func (r *LocationRepository) FindByType(ctx context.Context, locType domain.LocationType) ([]domain.Location, error) {
	return r.find(ctx, bson.M{"type": string(locType)})
}

func (r *LocationRepository) find(ctx context.Context, filter bson.M) ([]domain.Location, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.locations.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	locations := make([]domain.Location, 0)
	for cursor.Next(ctx) {
		var doc LocationDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		locations = append(locations, mapLocationDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return locations, nil
}
