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

const TrustsCollection = "trusts"

var _ repositories.TrustRepository = (*TrustRepository)(nil)

// TrustRepository handles MongoDB operations for Trust
type TrustRepository struct {
	collection *mongo.Collection
}

// NewTrustRepository creates a new TrustRepository
func NewTrustRepository(db *mongo.Database) *TrustRepository {
	return &TrustRepository{
		collection: db.Collection(TrustsCollection),
	}
}

// Create inserts a new trust and assigns its ID
func (r *TrustRepository) Create(ctx context.Context, trust *models.Trust) error {
	trust.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, trust); err != nil {
		trust.ID = primitive.NilObjectID
		return translateWriteErr(err)
	}
	return nil
}

// FindByID finds a trust by ID
func (r *TrustRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Trust, error) {
	return findOne[models.Trust](ctx, r.collection, id)
}

// Find returns one page of trusts matching filter, newest first
func (r *TrustRepository) Find(ctx context.Context, filter query.TrustFilter, page query.Page) ([]*models.Trust, error) {
	return findMany[models.Trust](ctx, r.collection, filter.BSON(), query.FindOptions(query.TrustSort, page))
}

// Count counts trusts matching filter
func (r *TrustRepository) Count(ctx context.Context, filter query.TrustFilter) (int64, error) {
	return r.collection.CountDocuments(ctx, filter.BSON())
}

// Update merges set into the trust
func (r *TrustRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	return updateByID(ctx, r.collection, id, set)
}

// UpdateIfStatus merges set into the trust only while its status is still status
func (r *TrustRepository) UpdateIfStatus(ctx context.Context, id primitive.ObjectID, status models.TrustStatus, set bson.M) error {
	return updateWhere(ctx, r.collection, bson.M{"_id": id, "status": status}, set)
}

// Delete deletes a trust by ID
func (r *TrustRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.collection, id)
}
