package memory

import (
	"context"
	"sort"

	"github.com/ArowuTest/blood-donation-backend/internal/models"
	"github.com/ArowuTest/blood-donation-backend/internal/query"
	"github.com/ArowuTest/blood-donation-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	_ repositories.CampRepository  = (*CampRepository)(nil)
	_ repositories.DonorRepository = (*DonorRepository)(nil)
	_ repositories.TrustRepository = (*TrustRepository)(nil)
)

// CampRepository keeps camps in memory
type CampRepository struct {
	docs *collection[models.Camp]
}

// NewCampRepository creates an empty CampRepository
func NewCampRepository() *CampRepository {
	return &CampRepository{docs: newCollection[models.Camp](nil)}
}

func (r *CampRepository) Create(_ context.Context, camp *models.Camp) error {
	id := primitive.NewObjectID()
	camp.ID = id
	if err := r.docs.insert(id, camp); err != nil {
		camp.ID = primitive.NilObjectID
		return err
	}
	return nil
}

func (r *CampRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Camp, error) {
	return r.docs.get(id)
}

func (r *CampRepository) Find(_ context.Context, filter query.CampFilter, page query.Page) ([]*models.Camp, error) {
	camps, err := r.docs.all(filter.Matches)
	if err != nil {
		return nil, err
	}
	sort.Slice(camps, func(i, j int) bool { return query.CampLess(camps[i], camps[j]) })
	start, end := page.Window(len(camps))
	return camps[start:end], nil
}

func (r *CampRepository) Count(_ context.Context, filter query.CampFilter) (int64, error) {
	return r.docs.count(filter.Matches)
}

func (r *CampRepository) Update(_ context.Context, id primitive.ObjectID, set bson.M) error {
	return r.docs.update(id, set)
}

func (r *CampRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	return r.docs.delete(id)
}

// DonorRepository keeps donors in memory. Email uniqueness is checked under
// the collection lock, so concurrent registrations have exactly one winner.
type DonorRepository struct {
	docs *collection[models.Donor]
}

// NewDonorRepository creates an empty DonorRepository
func NewDonorRepository() *DonorRepository {
	return &DonorRepository{
		docs: newCollection(func(d *models.Donor) string { return d.Email }),
	}
}

func (r *DonorRepository) Create(_ context.Context, donor *models.Donor) error {
	id := primitive.NewObjectID()
	donor.ID = id
	if err := r.docs.insert(id, donor); err != nil {
		donor.ID = primitive.NilObjectID
		return err
	}
	return nil
}

func (r *DonorRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Donor, error) {
	return r.docs.get(id)
}

func (r *DonorRepository) Find(_ context.Context, page query.Page) ([]*models.Donor, error) {
	donors, err := r.docs.all(nil)
	if err != nil {
		return nil, err
	}
	sort.Slice(donors, func(i, j int) bool {
		a, b := donors[i], donors[j]
		return query.NewestFirst(a.CreatedAt.UnixNano(), b.CreatedAt.UnixNano(), a.ID, b.ID)
	})
	start, end := page.Window(len(donors))
	return donors[start:end], nil
}

func (r *DonorRepository) Count(_ context.Context) (int64, error) {
	return r.docs.count(nil)
}

func (r *DonorRepository) Update(_ context.Context, id primitive.ObjectID, set bson.M) error {
	return r.docs.update(id, set)
}

func (r *DonorRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	return r.docs.delete(id)
}

// TrustRepository keeps trusts in memory
type TrustRepository struct {
	docs *collection[models.Trust]
}

// NewTrustRepository creates an empty TrustRepository
func NewTrustRepository() *TrustRepository {
	return &TrustRepository{docs: newCollection[models.Trust](nil)}
}

func (r *TrustRepository) Create(_ context.Context, trust *models.Trust) error {
	id := primitive.NewObjectID()
	trust.ID = id
	if err := r.docs.insert(id, trust); err != nil {
		trust.ID = primitive.NilObjectID
		return err
	}
	return nil
}

func (r *TrustRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Trust, error) {
	return r.docs.get(id)
}

func (r *TrustRepository) Find(_ context.Context, filter query.TrustFilter, page query.Page) ([]*models.Trust, error) {
	trusts, err := r.docs.all(filter.Matches)
	if err != nil {
		return nil, err
	}
	sort.Slice(trusts, func(i, j int) bool {
		a, b := trusts[i], trusts[j]
		return query.NewestFirst(a.CreatedAt.UnixNano(), b.CreatedAt.UnixNano(), a.ID, b.ID)
	})
	start, end := page.Window(len(trusts))
	return trusts[start:end], nil
}

func (r *TrustRepository) Count(_ context.Context, filter query.TrustFilter) (int64, error) {
	return r.docs.count(filter.Matches)
}

func (r *TrustRepository) Update(_ context.Context, id primitive.ObjectID, set bson.M) error {
	return r.docs.update(id, set)
}

func (r *TrustRepository) UpdateIfStatus(_ context.Context, id primitive.ObjectID, status models.TrustStatus, set bson.M) error {
	return r.docs.updateIf(id, func(t *models.Trust) bool { return t.Status == status }, set)
}

func (r *TrustRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	return r.docs.delete(id)
}

// NewStore wires fresh in-memory repositories
func NewStore() repositories.Store {
	return repositories.Store{
		Camps:  NewCampRepository(),
		Donors: NewDonorRepository(),
		Trusts: NewTrustRepository(),
		Ping:   func(context.Context) error { return nil },
		Close:  func(context.Context) error { return nil },
	}
}
