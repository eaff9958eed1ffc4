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

const DonorsCollection = "donors"

var _ repositories.DonorRepository = (*DonorRepository)(nil)

// DonorRepository handles MongoDB operations for Donor.
// Email uniqueness is enforced by the donors_email_unique index (see EnsureIndexes),
// so concurrent registrations with one email have exactly one winner.
type DonorRepository struct {
	collection *mongo.Collection
}

// NewDonorRepository creates a new DonorRepository
func NewDonorRepository(db *mongo.Database) *DonorRepository {
	return &DonorRepository{
		collection: db.Collection(DonorsCollection),
	}
}

// Create inserts a new donor; ErrDuplicate when the email is taken
func (r *DonorRepository) Create(ctx context.Context, donor *models.Donor) error {
	donor.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, donor); err != nil {
		donor.ID = primitive.NilObjectID
		return translateWriteErr(err)
	}
	return nil
}

// FindByID finds a donor by ID
func (r *DonorRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Donor, error) {
	return findOne[models.Donor](ctx, r.collection, id)
}

// Find returns one page of donors, most recently registered first
func (r *DonorRepository) Find(ctx context.Context, page query.Page) ([]*models.Donor, error) {
	return findMany[models.Donor](ctx, r.collection, bson.M{}, query.FindOptions(query.DonorSort, page))
}

// Count counts all donors
func (r *DonorRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// Update merges set into the donor; ErrDuplicate when an email change collides
func (r *DonorRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	return updateByID(ctx, r.collection, id, set)
}

// Delete deletes a donor by ID
func (r *DonorRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.collection, id)
}
