package services

import (
	"context"

	"github.com/ArowuTest/blood-donation-backend/internal/metrics"
	"github.com/ArowuTest/blood-donation-backend/internal/models"
	"github.com/ArowuTest/blood-donation-backend/internal/query"
	"github.com/ArowuTest/blood-donation-backend/internal/repositories"
	"github.com/ArowuTest/blood-donation-backend/internal/validation"
)

var _ DonorService = (*DonorServiceImpl)(nil)

// DonorServiceImpl handles donor business logic.
// Email uniqueness is left to the repository so that concurrent registrations
// cannot both pass a read-then-insert check.
type DonorServiceImpl struct {
	donorRepo repositories.DonorRepository
	metrics   *metrics.Metrics
}

// NewDonorService creates a new DonorServiceImpl. m may be nil.
func NewDonorService(donorRepo repositories.DonorRepository, m *metrics.Metrics) *DonorServiceImpl {
	return &DonorServiceImpl{
		donorRepo: donorRepo,
		metrics:   m,
	}
}

func (s *DonorServiceImpl) observe(op string, err error) error {
	s.metrics.ObserveOperation(metricKind(kindDonor), op, err)
	return err
}

// RegisterDonor creates a new donor
func (s *DonorServiceImpl) RegisterDonor(ctx context.Context, payload map[string]any) (*models.Donor, error) {
	fields, err := validation.ValidateCreate(validation.DonorSchema, payload)
	if err != nil {
		return nil, s.observe(opCreate, err)
	}

	donor := models.NewDonor()
	if err := validation.Decode(fields, donor); err != nil {
		return nil, s.observe(opCreate, err)
	}
	donor.ApplyDefaults()

	now := models.Now()
	donor.CreatedAt = now
	donor.UpdatedAt = now

	if err := s.donorRepo.Create(ctx, donor); err != nil {
		return nil, s.observe(opCreate, storeErr(kindDonor, err))
	}
	return donor, s.observe(opCreate, nil)
}

// GetDonor retrieves a donor by ID
func (s *DonorServiceImpl) GetDonor(ctx context.Context, id string) (*models.Donor, error) {
	oid, err := parseID(kindDonor, id)
	if err != nil {
		return nil, s.observe(opGet, err)
	}
	donor, err := s.donorRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, s.observe(opGet, storeErr(kindDonor, err))
	}
	return donor, s.observe(opGet, nil)
}

// ListDonors retrieves donors with pagination, newest first
func (s *DonorServiceImpl) ListDonors(ctx context.Context, page query.Page) ([]*models.Donor, error) {
	donors, err := s.donorRepo.Find(ctx, page)
	if err != nil {
		return nil, s.observe(opList, storeErr(kindDonor, err))
	}
	if donors == nil {
		donors = []*models.Donor{}
	}
	return donors, s.observe(opList, nil)
}

// CountDonors counts all donors
func (s *DonorServiceImpl) CountDonors(ctx context.Context) (int64, error) {
	n, err := s.donorRepo.Count(ctx)
	if err != nil {
		return 0, s.observe(opCount, storeErr(kindDonor, err))
	}
	return n, s.observe(opCount, nil)
}

// UpdateDonor updates a donor; changing the email to one already taken is a conflict
func (s *DonorServiceImpl) UpdateDonor(ctx context.Context, id string, payload map[string]any) error {
	oid, err := parseID(kindDonor, id)
	if err != nil {
		return s.observe(opUpdate, err)
	}
	set, err := validation.ValidateUpdate(validation.DonorSchema, payload)
	if err != nil {
		return s.observe(opUpdate, err)
	}
	set["updatedAt"] = models.Now()

	return s.observe(opUpdate, storeErr(kindDonor, s.donorRepo.Update(ctx, oid, set)))
}

// DeleteDonor deletes a donor
func (s *DonorServiceImpl) DeleteDonor(ctx context.Context, id string) error {
	oid, err := parseID(kindDonor, id)
	if err != nil {
		return s.observe(opDelete, err)
	}
	return s.observe(opDelete, storeErr(kindDonor, s.donorRepo.Delete(ctx, oid)))
}
