package services

import (
	"context"
	"errors"

	"github.com/ArowuTest/blood-donation-backend/internal/apperr"
	"github.com/ArowuTest/blood-donation-backend/internal/metrics"
	"github.com/ArowuTest/blood-donation-backend/internal/models"
	"github.com/ArowuTest/blood-donation-backend/internal/query"
	"github.com/ArowuTest/blood-donation-backend/internal/repositories"
	"github.com/ArowuTest/blood-donation-backend/internal/validation"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ TrustService = (*TrustServiceImpl)(nil)

// TrustServiceImpl handles trust business logic
type TrustServiceImpl struct {
	trustRepo repositories.TrustRepository
	metrics   *metrics.Metrics
}

// NewTrustService creates a new TrustServiceImpl. m may be nil.
func NewTrustService(trustRepo repositories.TrustRepository, m *metrics.Metrics) *TrustServiceImpl {
	return &TrustServiceImpl{
		trustRepo: trustRepo,
		metrics:   m,
	}
}

func (s *TrustServiceImpl) observe(op string, err error) error {
	s.metrics.ObserveOperation(metricKind(kindTrust), op, err)
	return err
}

// RegisterTrust creates a new trust, pending review unless payload says otherwise
func (s *TrustServiceImpl) RegisterTrust(ctx context.Context, payload map[string]any) (*models.Trust, error) {
	fields, err := validation.ValidateCreate(validation.TrustSchema, payload)
	if err != nil {
		return nil, s.observe(opCreate, err)
	}

	trust := models.NewTrust()
	if err := validation.Decode(fields, trust); err != nil {
		return nil, s.observe(opCreate, err)
	}
	trust.ApplyDefaults()

	now := models.Now()
	trust.CreatedAt = now
	trust.UpdatedAt = now

	if err := s.trustRepo.Create(ctx, trust); err != nil {
		return nil, s.observe(opCreate, storeErr(kindTrust, err))
	}
	return trust, s.observe(opCreate, nil)
}

// GetTrust retrieves a trust by ID
func (s *TrustServiceImpl) GetTrust(ctx context.Context, id string) (*models.Trust, error) {
	oid, err := parseID(kindTrust, id)
	if err != nil {
		return nil, s.observe(opGet, err)
	}
	trust, err := s.trustRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, s.observe(opGet, storeErr(kindTrust, err))
	}
	return trust, s.observe(opGet, nil)
}

// ListTrusts retrieves trusts with filtering and pagination, newest first
func (s *TrustServiceImpl) ListTrusts(ctx context.Context, filter query.TrustFilter, page query.Page) ([]*models.Trust, error) {
	trusts, err := s.trustRepo.Find(ctx, filter, page)
	if err != nil {
		return nil, s.observe(opList, storeErr(kindTrust, err))
	}
	if trusts == nil {
		trusts = []*models.Trust{}
	}
	return trusts, s.observe(opList, nil)
}

// CountTrusts counts trusts matching filter
func (s *TrustServiceImpl) CountTrusts(ctx context.Context, filter query.TrustFilter) (int64, error) {
	n, err := s.trustRepo.Count(ctx, filter)
	if err != nil {
		return 0, s.observe(opCount, storeErr(kindTrust, err))
	}
	return n, s.observe(opCount, nil)
}

// UpdateTrust updates a trust. A status change must follow the review
// lifecycle: pending -> active|inactive, active <-> inactive.
func (s *TrustServiceImpl) UpdateTrust(ctx context.Context, id string, payload map[string]any) error {
	oid, err := parseID(kindTrust, id)
	if err != nil {
		return s.observe(opUpdate, err)
	}
	set, err := validation.ValidateUpdate(validation.TrustSchema, payload)
	if err != nil {
		return s.observe(opUpdate, err)
	}

	set["updatedAt"] = models.Now()

	if next, ok := set["status"].(string); ok {
		return s.observe(opUpdate, s.transition(ctx, oid, models.TrustStatus(next), set))
	}
	return s.observe(opUpdate, storeErr(kindTrust, s.trustRepo.Update(ctx, oid, set)))
}

// statusAttempts bounds how often a status change is retried after losing a race
const statusAttempts = 3

// transition applies a status change with set, conditional on the status the
// lifecycle check was made against. When another writer changes the status in
// between, the check is repeated against the new status.
func (s *TrustServiceImpl) transition(ctx context.Context, id primitive.ObjectID, next models.TrustStatus, set bson.M) error {
	for attempt := 0; attempt < statusAttempts; attempt++ {
		current, err := s.trustRepo.FindByID(ctx, id)
		if err != nil {
			return storeErr(kindTrust, err)
		}
		if !current.Status.CanTransition(next) {
			return apperr.Validation("Invalid status transition: %s -> %s", current.Status, next)
		}
		err = s.trustRepo.UpdateIfStatus(ctx, id, current.Status, set)
		if !errors.Is(err, repositories.ErrNotFound) {
			return storeErr(kindTrust, err)
		}
	}
	return apperr.Conflict("Trust was modified concurrently")
}

// DeleteTrust deletes a trust
func (s *TrustServiceImpl) DeleteTrust(ctx context.Context, id string) error {
	oid, err := parseID(kindTrust, id)
	if err != nil {
		return s.observe(opDelete, err)
	}
	return s.observe(opDelete, storeErr(kindTrust, s.trustRepo.Delete(ctx, oid)))
}
