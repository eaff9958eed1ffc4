package repositories

import (
	"context"
	"errors"

	"github.com/ArowuTest/blood-donation-backend/internal/models"
	"github.com/ArowuTest/blood-donation-backend/internal/query"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sentinel errors returned (optionally wrapped) by every implementation.
// Services translate them into application errors.
var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("duplicate key")
)

// CampRepository defines the interface for camp data operations
type CampRepository interface {
	Create(ctx context.Context, camp *models.Camp) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Camp, error)
	Find(ctx context.Context, filter query.CampFilter, page query.Page) ([]*models.Camp, error)
	Count(ctx context.Context, filter query.CampFilter) (int64, error)
	// Update applies set as a merge onto the document; ErrNotFound when no document matches id.
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// DonorRepository defines the interface for donor data operations.
// Email is unique across donors: Create and Update return ErrDuplicate on collision.
type DonorRepository interface {
	Create(ctx context.Context, donor *models.Donor) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Donor, error)
	Find(ctx context.Context, page query.Page) ([]*models.Donor, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// TrustRepository defines the interface for trust data operations
type TrustRepository interface {
	Create(ctx context.Context, trust *models.Trust) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Trust, error)
	Find(ctx context.Context, filter query.TrustFilter, page query.Page) ([]*models.Trust, error)
	Count(ctx context.Context, filter query.TrustFilter) (int64, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) error
	// UpdateIfStatus applies set only while the trust still has status;
	// ErrNotFound when no trust matches both id and status.
	UpdateIfStatus(ctx context.Context, id primitive.ObjectID, status models.TrustStatus, set bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// Store bundles the repositories of one backing store
type Store struct {
	Camps  CampRepository
	Donors DonorRepository
	Trusts TrustRepository
	// Ping checks the backing store is reachable
	Ping func(ctx context.Context) error
	// Close releases the backing store
	Close func(ctx context.Context) error
}
