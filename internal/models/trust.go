package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TrustStatus is the review state of a registered trust
type TrustStatus string

const (
	TrustStatusPending  TrustStatus = "pending"
	TrustStatusActive   TrustStatus = "active"
	TrustStatusInactive TrustStatus = "inactive"
)

// TrustStatuses lists the valid trust statuses
var TrustStatuses = []string{
	string(TrustStatusPending),
	string(TrustStatusActive),
	string(TrustStatusInactive),
}

// CanTransition reports whether a trust may move from s to next.
// Pending trusts are reviewed into active or inactive; reviewed trusts
// toggle between active and inactive and never return to pending.
func (s TrustStatus) CanTransition(next TrustStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case TrustStatusPending:
		return next == TrustStatusActive || next == TrustStatusInactive
	case TrustStatusActive:
		return next == TrustStatusInactive
	case TrustStatusInactive:
		return next == TrustStatusActive
	default:
		return false
	}
}

// TrustType classifies the organisation behind a trust
type TrustType string

const (
	TrustTypeBloodBank       TrustType = "blood-bank"
	TrustTypeDonationCenter  TrustType = "donation-center"
	TrustTypeMedicalTrust    TrustType = "medical-trust"
	TrustTypeCharitableTrust TrustType = "charitable-trust"
	TrustTypeHospital        TrustType = "hospital"
)

// TrustTypes lists the valid trust types
var TrustTypes = []string{
	string(TrustTypeBloodBank),
	string(TrustTypeDonationCenter),
	string(TrustTypeMedicalTrust),
	string(TrustTypeCharitableTrust),
	string(TrustTypeHospital),
}

// Trust represents a blood bank, hospital or charitable trust partnering with the platform
type Trust struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TrustName          string             `bson:"trustName" json:"trustName"`
	ContactPerson      string             `bson:"contactPerson" json:"contactPerson"`
	Email              string             `bson:"email" json:"email"`
	Phone              string             `bson:"phone" json:"phone"`
	Address            string             `bson:"address" json:"address"`
	City               string             `bson:"city" json:"city"`
	State              string             `bson:"state" json:"state"`
	Pincode            string             `bson:"pincode" json:"pincode"`
	RegistrationNumber string             `bson:"registrationNumber" json:"registrationNumber"`
	TrustType          TrustType          `bson:"trustType" json:"trustType"`
	LicenseNumber      string             `bson:"licenseNumber" json:"licenseNumber"`
	Website            string             `bson:"website" json:"website"`
	Description        string             `bson:"description" json:"description"`
	EstablishedYear    int                `bson:"establishedYear" json:"establishedYear"`
	Capacity           int                `bson:"capacity" json:"capacity"`
	Services           []string           `bson:"services" json:"services"`
	Status             TrustStatus        `bson:"status" json:"status"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// NewTrust creates a Trust carrying the documented defaults
func NewTrust() *Trust {
	return &Trust{
		TrustType: TrustTypeBloodBank,
		Status:    TrustStatusPending,
	}
}

// ApplyDefaults restores defaults for fields a payload explicitly nulled out
func (t *Trust) ApplyDefaults() {
	if t.TrustType == "" {
		t.TrustType = TrustTypeBloodBank
	}
	if t.Status == "" {
		t.Status = TrustStatusPending
	}
	if t.Services == nil {
		t.Services = []string{}
	}
}
