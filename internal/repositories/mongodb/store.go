package mongodb

import (
	"context"

	"github.com/ArowuTest/blood-donation-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// NewStore wires the MongoDB repositories over db.
// Closing the store disconnects the underlying client.
func NewStore(db *mongo.Database) repositories.Store {
	client := db.Client()
	return repositories.Store{
		Camps:  NewCampRepository(db),
		Donors: NewDonorRepository(db),
		Trusts: NewTrustRepository(db),
		Ping: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
		Close: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	}
}
