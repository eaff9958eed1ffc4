package services

import (
	"context"

	"github.com/ArowuTest/blood-donation-backend/internal/models"
	"github.com/ArowuTest/blood-donation-backend/internal/query"
)

// Every operation returns *apperr.Error values so handlers can map them to
// HTTP responses without inspecting store errors.

// CampService defines the interface for camp-related operations
type CampService interface {
	// CreateCamp validates payload, fills defaults and timestamps, and stores the camp
	CreateCamp(ctx context.Context, payload map[string]any) (*models.Camp, error)

	// GetCamp retrieves a camp by its hex id
	GetCamp(ctx context.Context, id string) (*models.Camp, error)

	// ListCamps retrieves one page of camps matching filter, soonest first
	ListCamps(ctx context.Context, filter query.CampFilter, page query.Page) ([]*models.Camp, error)

	// CountCamps counts camps matching filter
	CountCamps(ctx context.Context, filter query.CampFilter) (int64, error)

	// UpdateCamp merges payload into the camp and refreshes updatedAt
	UpdateCamp(ctx context.Context, id string, payload map[string]any) error

	// DeleteCamp deletes a camp
	DeleteCamp(ctx context.Context, id string) error
}

// DonorService defines the interface for donor-related operations
type DonorService interface {
	RegisterDonor(ctx context.Context, payload map[string]any) (*models.Donor, error)
	GetDonor(ctx context.Context, id string) (*models.Donor, error)
	ListDonors(ctx context.Context, page query.Page) ([]*models.Donor, error)
	CountDonors(ctx context.Context) (int64, error)
	UpdateDonor(ctx context.Context, id string, payload map[string]any) error
	DeleteDonor(ctx context.Context, id string) error
}

// TrustService defines the interface for trust-related operations
type TrustService interface {
	RegisterTrust(ctx context.Context, payload map[string]any) (*models.Trust, error)
	GetTrust(ctx context.Context, id string) (*models.Trust, error)
	ListTrusts(ctx context.Context, filter query.TrustFilter, page query.Page) ([]*models.Trust, error)
	CountTrusts(ctx context.Context, filter query.TrustFilter) (int64, error)
	// UpdateTrust also enforces the status lifecycle when payload carries a status
	UpdateTrust(ctx context.Context, id string, payload map[string]any) error
	DeleteTrust(ctx context.Context, id string) error
}
