package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DonorStatus is the registration state of a donor
type DonorStatus string

const (
	DonorStatusActive   DonorStatus = "active"
	DonorStatusInactive DonorStatus = "inactive"
)

// DonorStatuses lists the valid donor statuses
var DonorStatuses = []string{string(DonorStatusActive), string(DonorStatusInactive)}

// EmergencyContact is the person to reach if something goes wrong during donation
type EmergencyContact struct {
	Name         string `bson:"name,omitempty" json:"name,omitempty"`
	Phone        string `bson:"phone,omitempty" json:"phone,omitempty"`
	Relationship string `bson:"relationship,omitempty" json:"relationship,omitempty"`
}

// MedicalHistory is the donor's self-reported screening information
type MedicalHistory struct {
	HasDonatedBefore  bool   `bson:"hasDonatedBefore,omitempty" json:"hasDonatedBefore,omitempty"`
	LastDonationDate  string `bson:"lastDonationDate,omitempty" json:"lastDonationDate,omitempty"`
	MedicalConditions string `bson:"medicalConditions,omitempty" json:"medicalConditions,omitempty"`
	Medications       string `bson:"medications,omitempty" json:"medications,omitempty"`
	Allergies         string `bson:"allergies,omitempty" json:"allergies,omitempty"`
}

// DonorPreferences holds communication and privacy choices
type DonorPreferences struct {
	ReceiveNotifications   bool   `bson:"receiveNotifications,omitempty" json:"receiveNotifications,omitempty"`
	ShareData              bool   `bson:"shareData,omitempty" json:"shareData,omitempty"`
	PreferredContactMethod string `bson:"preferredContactMethod,omitempty" json:"preferredContactMethod,omitempty"`
}

// Donor represents a registered blood donor
type Donor struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName        string             `bson:"firstName" json:"firstName"`
	LastName         string             `bson:"lastName" json:"lastName"`
	Email            string             `bson:"email" json:"email"`
	Phone            string             `bson:"phone" json:"phone"`
	DateOfBirth      string             `bson:"dateOfBirth" json:"dateOfBirth"`
	BloodGroup       string             `bson:"bloodGroup" json:"bloodGroup"`
	Address          string             `bson:"address" json:"address"`
	City             string             `bson:"city" json:"city"`
	State            string             `bson:"state" json:"state"`
	ZipCode          string             `bson:"zipCode" json:"zipCode"`
	EmergencyContact EmergencyContact   `bson:"emergencyContact" json:"emergencyContact"`
	MedicalHistory   MedicalHistory     `bson:"medicalHistory" json:"medicalHistory"`
	Preferences      DonorPreferences   `bson:"preferences" json:"preferences"`
	Status           DonorStatus        `bson:"status" json:"status"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// NewDonor creates a Donor carrying the documented defaults
func NewDonor() *Donor {
	return &Donor{Status: DonorStatusActive}
}

// ApplyDefaults restores defaults for fields a payload explicitly nulled out
func (d *Donor) ApplyDefaults() {
	if d.Status == "" {
		d.Status = DonorStatusActive
	}
}
