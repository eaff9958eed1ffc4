package services

import (
	"context"

	"github.com/ArowuTest/blood-donation-backend/internal/metrics"
	"github.com/ArowuTest/blood-donation-backend/internal/models"
	"github.com/ArowuTest/blood-donation-backend/internal/query"
	"github.com/ArowuTest/blood-donation-backend/internal/repositories"
	"github.com/ArowuTest/blood-donation-backend/internal/validation"
)

// Compile-time check to ensure CampServiceImpl implements CampService
var _ CampService = (*CampServiceImpl)(nil)

// CampServiceImpl handles camp business logic
type CampServiceImpl struct {
	campRepo repositories.CampRepository
	metrics  *metrics.Metrics
}

// NewCampService creates a new CampServiceImpl. m may be nil.
func NewCampService(campRepo repositories.CampRepository, m *metrics.Metrics) *CampServiceImpl {
	return &CampServiceImpl{
		campRepo: campRepo,
		metrics:  m,
	}
}

func (s *CampServiceImpl) observe(op string, err error) error {
	s.metrics.ObserveOperation(metricKind(kindCamp), op, err)
	return err
}

// CreateCamp creates a new camp
func (s *CampServiceImpl) CreateCamp(ctx context.Context, payload map[string]any) (*models.Camp, error) {
	fields, err := validation.ValidateCreate(validation.CampSchema, payload)
	if err != nil {
		return nil, s.observe(opCreate, err)
	}

	camp := models.NewCamp()
	if err := validation.Decode(fields, camp); err != nil {
		return nil, s.observe(opCreate, err)
	}
	camp.ApplyDefaults()

	now := models.Now()
	camp.CreatedAt = now
	camp.UpdatedAt = now

	if err := s.campRepo.Create(ctx, camp); err != nil {
		return nil, s.observe(opCreate, storeErr(kindCamp, err))
	}
	return camp, s.observe(opCreate, nil)
}

// GetCamp retrieves a camp by ID
func (s *CampServiceImpl) GetCamp(ctx context.Context, id string) (*models.Camp, error) {
	oid, err := parseID(kindCamp, id)
	if err != nil {
		return nil, s.observe(opGet, err)
	}
	camp, err := s.campRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, s.observe(opGet, storeErr(kindCamp, err))
	}
	return camp, s.observe(opGet, nil)
}

// ListCamps retrieves camps with filtering and pagination
func (s *CampServiceImpl) ListCamps(ctx context.Context, filter query.CampFilter, page query.Page) ([]*models.Camp, error) {
	camps, err := s.campRepo.Find(ctx, filter, page)
	if err != nil {
		return nil, s.observe(opList, storeErr(kindCamp, err))
	}
	if camps == nil {
		camps = []*models.Camp{}
	}
	return camps, s.observe(opList, nil)
}

// CountCamps counts camps matching filter
func (s *CampServiceImpl) CountCamps(ctx context.Context, filter query.CampFilter) (int64, error) {
	n, err := s.campRepo.Count(ctx, filter)
	if err != nil {
		return 0, s.observe(opCount, storeErr(kindCamp, err))
	}
	return n, s.observe(opCount, nil)
}

// UpdateCamp updates a camp
func (s *CampServiceImpl) UpdateCamp(ctx context.Context, id string, payload map[string]any) error {
	oid, err := parseID(kindCamp, id)
	if err != nil {
		return s.observe(opUpdate, err)
	}
	set, err := validation.ValidateUpdate(validation.CampSchema, payload)
	if err != nil {
		return s.observe(opUpdate, err)
	}
	set["updatedAt"] = models.Now()

	return s.observe(opUpdate, storeErr(kindCamp, s.campRepo.Update(ctx, oid, set)))
}

// DeleteCamp deletes a camp
func (s *CampServiceImpl) DeleteCamp(ctx context.Context, id string) error {
	oid, err := parseID(kindCamp, id)
	if err != nil {
		return s.observe(opDelete, err)
	}
	return s.observe(opDelete, storeErr(kindCamp, s.campRepo.Delete(ctx, oid)))
}
