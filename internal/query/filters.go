package query

import (
	"regexp"
	"strings"

	"github.com/ArowuTest/blood-donation-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CampFilter narrows a camp listing. Zero fields do not filter.
type CampFilter struct {
	Status   string
	Location string
	Date     string
}

// BSON renders the filter for MongoDB. Location is matched as a
// case-insensitive literal substring.
func (f CampFilter) BSON() bson.M {
	m := bson.M{}
	if f.Status != "" {
		m["status"] = f.Status
	}
	if f.Location != "" {
		m["location"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Location), Options: "i"}
	}
	if f.Date != "" {
		m["date"] = f.Date
	}
	return m
}

// Matches reports whether c satisfies the filter
func (f CampFilter) Matches(c *models.Camp) bool {
	if f.Status != "" && string(c.Status) != f.Status {
		return false
	}
	if f.Location != "" && !containsFold(c.Location, f.Location) {
		return false
	}
	if f.Date != "" && c.Date != f.Date {
		return false
	}
	return true
}

// TrustFilter narrows a trust listing. Zero fields do not filter.
type TrustFilter struct {
	Status    string
	TrustType string
	City      string
}

// BSON renders the filter for MongoDB
func (f TrustFilter) BSON() bson.M {
	m := bson.M{}
	if f.Status != "" {
		m["status"] = f.Status
	}
	if f.TrustType != "" {
		m["trustType"] = f.TrustType
	}
	if f.City != "" {
		m["city"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.City), Options: "i"}
	}
	return m
}

// Matches reports whether t satisfies the filter
func (f TrustFilter) Matches(t *models.Trust) bool {
	if f.Status != "" && string(t.Status) != f.Status {
		return false
	}
	if f.TrustType != "" && string(t.TrustType) != f.TrustType {
		return false
	}
	if f.City != "" && !containsFold(t.City, f.City) {
		return false
	}
	return true
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// Sort orders. The _id tiebreak keeps pages disjoint when the primary key repeats.
var (
	CampSort  = bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}}
	DonorSort = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}
	TrustSort = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}
)

// FindOptions combines a sort with the page window
func FindOptions(sort bson.D, p Page) *options.FindOptions {
	return options.Find().
		SetSort(sort).
		SetSkip(p.Skip()).
		SetLimit(int64(p.Limit))
}

// CampLess orders camps by date ascending, then id ascending
func CampLess(a, b *models.Camp) bool {
	if a.Date != b.Date {
		return a.Date < b.Date
	}
	return a.ID.Hex() < b.ID.Hex()
}

// NewestFirst orders by creation time descending, then id descending
func NewestFirst(aCreated, bCreated int64, aID, bID primitive.ObjectID) bool {
	if aCreated != bCreated {
		return aCreated > bCreated
	}
	return aID.Hex() > bID.Hex()
}
