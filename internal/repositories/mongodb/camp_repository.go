package mongodb

import (
	"context"

	"github.com/ArowuTest/blood-donation-backend/internal/models"
	"github.com/ArowuTest/blood-donation-backend/internal/query"
	"github.com/ArowuTest/blood-donation-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const CampsCollection = "camps"

// Compile-time check to ensure CampRepository implements the interface
var _ repositories.CampRepository = (*CampRepository)(nil)

// CampRepository handles MongoDB operations for Camp
type CampRepository struct {
	collection *mongo.Collection
}

// NewCampRepository creates a new CampRepository
func NewCampRepository(db *mongo.Database) *CampRepository {
	return &CampRepository{
		collection: db.Collection(CampsCollection),
	}
}

// Create inserts a new camp and assigns its ID
func (r *CampRepository) Create(ctx context.Context, camp *models.Camp) error {
	camp.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, camp); err != nil {
		camp.ID = primitive.NilObjectID
		return translateWriteErr(err)
	}
	return nil
}

// FindByID finds a camp by ID
func (r *CampRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Camp, error) {
	return findOne[models.Camp](ctx, r.collection, id)
}

// Find returns one page of camps matching filter, soonest first
func (r *CampRepository) Find(ctx context.Context, filter query.CampFilter, page query.Page) ([]*models.Camp, error) {
	return findMany[models.Camp](ctx, r.collection, filter.BSON(), query.FindOptions(query.CampSort, page))
}

// Count counts camps matching filter
func (r *CampRepository) Count(ctx context.Context, filter query.CampFilter) (int64, error) {
	return r.collection.CountDocuments(ctx, filter.BSON())
}

// Update merges set into the camp
func (r *CampRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	return updateByID(ctx, r.collection, id, set)
}

// Delete deletes a camp by ID
func (r *CampRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.collection, id)
}
