//go:build integration

package mongodb

import (
	"context"
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/ArowuTest/blood-donation-backend/internal/models"
	"github.com/ArowuTest/blood-donation-backend/internal/query"
	"github.com/ArowuTest/blood-donation-backend/internal/repositories"
	mongoclient "github.com/ArowuTest/blood-donation-backend/pkg/mongodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// newTestDatabase starts a MongoDB container and returns a fresh, indexed database
func newTestDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	ctx := context.Background()

	container, err := tcmongo.Run(ctx, "mongo:7")
	if err != nil {
		t.Fatalf("failed to start mongodb container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get mongodb connection string: %v", err)
	}

	client, err := mongoclient.NewClient(ctx, uri, 30*time.Second)
	if err != nil {
		t.Fatalf("failed to connect to mongodb: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	db := client.Database(fmt.Sprintf("blood_test_%d", time.Now().UnixNano()))
	require.NoError(t, EnsureIndexes(ctx, db, zap.NewNop()))
	return db
}

func TestEnsureIndexes_Idempotent(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	require.NoError(t, EnsureIndexes(ctx, db, zap.NewNop()))

	cur, err := db.Collection(DonorsCollection).Indexes().List(ctx)
	require.NoError(t, err)
	var idx []bson.M
	require.NoError(t, cur.All(ctx, &idx))

	var names []string
	for _, i := range idx {
		names = append(names, i["name"].(string))
	}
	assert.Contains(t, names, "donors_email_unique")
}

func TestEnsureIndexes_ReportsFailingCollection(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	donors := db.Collection(DonorsCollection)

	_, err := donors.Indexes().DropOne(ctx, "donors_email_unique")
	require.NoError(t, err)
	_, err = donors.InsertMany(ctx, []any{
		bson.M{"email": "dup@example.com"},
		bson.M{"email": "dup@example.com"},
	})
	require.NoError(t, err)

	err = EnsureIndexes(ctx, db, zap.NewNop())
	require.Error(t, err)
	assert.ErrorContains(t, err, "donors: donors_email_unique: cannot create unique index")
}

func TestCampRepository_Mongo(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	repo := NewCampRepository(db)

	for i, loc := range []string{"Downtown Hall", "Uptown (East)", "downtown park"} {
		c := models.NewCamp()
		c.Name = fmt.Sprintf("camp-%d", i)
		c.Location = loc
		c.Date = fmt.Sprintf("2024-06-0%d", 3-i)
		c.CreatedAt = models.Now()
		c.UpdatedAt = c.CreatedAt
		require.NoError(t, repo.Create(ctx, c))
		assert.False(t, c.ID.IsZero())
	}

	camps, err := repo.Find(ctx, query.CampFilter{Location: "DOWNTOWN"}, query.Page{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, camps, 2)
	assert.Equal(t, "downtown park", camps[0].Location)

	// regex metacharacters are matched literally
	n, err := repo.Count(ctx, query.CampFilter{Location: "(East)"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := repo.FindByID(ctx, camps[0].ID)
	require.NoError(t, err)
	assert.Equal(t, camps[0], got)

	require.NoError(t, repo.Update(ctx, got.ID, bson.M{"registeredDonors": int64(7)}))
	// same value again still matches
	require.NoError(t, repo.Update(ctx, got.ID, bson.M{"registeredDonors": int64(7)}))

	assert.ErrorIs(t, repo.Update(ctx, primitive.NewObjectID(), bson.M{"name": "x"}), repositories.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, got.ID))
	_, err = repo.FindByID(ctx, got.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, got.ID), repositories.ErrNotFound)
}

func TestDonorRepository_Mongo_ConcurrentDuplicateEmail(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	repo := NewDonorRepository(db)

	const workers = 8
	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		successes  int
		duplicates int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d := models.NewDonor()
			d.Email = "race@example.com"
			d.CreatedAt = models.Now()
			d.UpdatedAt = d.CreatedAt
			err := repo.Create(ctx, d)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case assert.ErrorIs(t, err, repositories.ErrDuplicate):
				duplicates++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, duplicates)
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestTrustRepository_Mongo_NewestFirst(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	repo := NewTrustRepository(db)

	var ids []primitive.ObjectID
	for i := 0; i < 3; i++ {
		tr := models.NewTrust()
		tr.TrustName = fmt.Sprintf("trust-%d", i)
		tr.City = "Lagos"
		tr.CreatedAt = models.Now().Add(time.Duration(i) * time.Second)
		tr.UpdatedAt = tr.CreatedAt
		tr.ApplyDefaults()
		require.NoError(t, repo.Create(ctx, tr))
		ids = append(ids, tr.ID)
	}

	trusts, err := repo.Find(ctx, query.TrustFilter{City: "lagos"}, query.Page{Page: 1, Limit: 2})
	require.NoError(t, err)
	require.Len(t, trusts, 2)
	assert.Equal(t, ids[2], trusts[0].ID)
	assert.Equal(t, ids[1], trusts[1].ID)
}

func TestTrustRepository_Mongo_UpdateIfStatus(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	repo := NewTrustRepository(db)

	tr := models.NewTrust()
	tr.TrustName = "Life Trust"
	tr.CreatedAt = models.Now()
	tr.UpdatedAt = tr.CreatedAt
	require.NoError(t, repo.Create(ctx, tr))

	err := repo.UpdateIfStatus(ctx, tr.ID, models.TrustStatusActive, bson.M{"status": "inactive"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	require.NoError(t, repo.UpdateIfStatus(ctx, tr.ID, models.TrustStatusPending, bson.M{"status": "active"}))
	got, err := repo.FindByID(ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TrustStatusActive, got.Status)
}

func TestCampRepository_Mongo_PastTheEnd(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	repo := NewCampRepository(db)

	camp := models.NewCamp()
	camp.Name = "Drive"
	camp.Date = "2024-06-01"
	require.NoError(t, repo.Create(ctx, camp))

	camps, err := repo.Find(ctx, query.CampFilter{}, query.Page{Page: math.MaxInt, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, camps)
}
