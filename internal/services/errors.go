package services

import (
	"errors"
	"strings"

	"github.com/ArowuTest/blood-donation-backend/internal/apperr"
	"github.com/ArowuTest/blood-donation-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Entity names used in client messages
const (
	kindCamp  = "Camp"
	kindDonor = "Donor"
	kindTrust = "Trust"
)

// Operation labels recorded in metrics
const (
	opCreate = "create"
	opGet    = "get"
	opList   = "list"
	opCount  = "count"
	opUpdate = "update"
	opDelete = "delete"
)

// MsgEmailRegistered is returned when a donor email is already taken
const MsgEmailRegistered = "Email already registered"

// parseID turns a client-supplied id into a store key
func parseID(kind, id string) (primitive.ObjectID, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return primitive.NilObjectID, apperr.MissingIdentifier(kind)
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperr.InvalidIdentifier(err)
	}
	return oid, nil
}

// storeErr translates a repository error into an application error
func storeErr(kind string, err error) error {
	var appErr *apperr.Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &appErr):
		return err
	case errors.Is(err, repositories.ErrNotFound):
		return apperr.NotFound(kind)
	case errors.Is(err, repositories.ErrDuplicate):
		if kind == kindDonor {
			return apperr.Duplicate(MsgEmailRegistered, err)
		}
		return apperr.Duplicate(kind+" already exists", err)
	default:
		return apperr.StoreFailure(err)
	}
}

// metricKind is the lower-case kind label used in metrics
func metricKind(kind string) string {
	return strings.ToLower(kind)
}
