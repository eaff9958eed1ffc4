package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CampStatus is the lifecycle state of a donation camp
type CampStatus string

const (
	CampStatusUpcoming  CampStatus = "upcoming"
	CampStatusOngoing   CampStatus = "ongoing"
	CampStatusCompleted CampStatus = "completed"
)

// CampStatuses lists the valid camp statuses
var CampStatuses = []string{
	string(CampStatusUpcoming),
	string(CampStatusOngoing),
	string(CampStatusCompleted),
}

// CampContact holds the organizer's contact channels
type CampContact struct {
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
	Website string `bson:"website,omitempty" json:"website,omitempty"`
}

// CampFacilities records what is available on site
type CampFacilities struct {
	Parking      bool `bson:"parking,omitempty" json:"parking,omitempty"`
	Refreshments bool `bson:"refreshments,omitempty" json:"refreshments,omitempty"`
	MedicalStaff bool `bson:"medicalStaff,omitempty" json:"medicalStaff,omitempty"`
	Equipment    bool `bson:"equipment,omitempty" json:"equipment,omitempty"`
}

// Camp represents a blood donation camp
type Camp struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string             `bson:"name" json:"name"`
	Organizer        string             `bson:"organizer" json:"organizer"`
	Location         string             `bson:"location" json:"location"`
	Date             string             `bson:"date" json:"date"`
	Time             string             `bson:"time" json:"time"`
	ExpectedDonors   int                `bson:"expectedDonors" json:"expectedDonors"`
	RegisteredDonors int                `bson:"registeredDonors" json:"registeredDonors"`
	BloodGroups      []string           `bson:"bloodGroups" json:"bloodGroups"`
	Description      string             `bson:"description" json:"description"`
	Contact          CampContact        `bson:"contact" json:"contact"`
	Facilities       CampFacilities     `bson:"facilities" json:"facilities"`
	Status           CampStatus         `bson:"status" json:"status"`
	Rating           float64            `bson:"rating" json:"rating"`
	Reviews          int                `bson:"reviews" json:"reviews"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// NewCamp creates a Camp carrying the documented defaults
func NewCamp() *Camp {
	return &Camp{
		ExpectedDonors: 100,
		BloodGroups:    []string{AllBloodGroups},
		Status:         CampStatusUpcoming,
	}
}

// ApplyDefaults restores defaults for fields a payload explicitly nulled out
func (c *Camp) ApplyDefaults() {
	if len(c.BloodGroups) == 0 {
		c.BloodGroups = []string{AllBloodGroups}
	}
	if c.Status == "" {
		c.Status = CampStatusUpcoming
	}
}
