// Package validation holds the per-kind field contracts and the rules that
// decide whether a create or update payload is acceptable.
package validation

import (
	"github.com/ArowuTest/blood-donation-backend/internal/models"
)

// FieldType is the JSON shape a field must have
type FieldType int

const (
	String FieldType = iota
	Int
	Number
	Bool
	StringList
	Object
)

// Field describes one top-level document field
type Field struct {
	Name     string
	Type     FieldType
	Required bool
	// Enum restricts String values, or each element of a StringList.
	Enum []string
	// Sub describes the keys of an Object field.
	Sub map[string]FieldType
}

// Schema is the field contract of one entity kind
type Schema struct {
	Kind   string
	Fields []Field
	index  map[string]*Field
}

// NewSchema builds a Schema; field order determines the order required
// fields are checked in.
func NewSchema(kind string, fields ...Field) *Schema {
	s := &Schema{Kind: kind, Fields: fields, index: make(map[string]*Field, len(fields))}
	for i := range s.Fields {
		s.index[s.Fields[i].Name] = &s.Fields[i]
	}
	return s
}

// Lookup returns the field named name
func (s *Schema) Lookup(name string) (*Field, bool) {
	f, ok := s.index[name]
	return f, ok
}

// Required returns the required field names in check order
func (s *Schema) Required() []string {
	var out []string
	for _, f := range s.Fields {
		if f.Required {
			out = append(out, f.Name)
		}
	}
	return out
}

var bloodGroupTags = append(append([]string{}, models.BloodGroups...), models.AllBloodGroups)

// CampSchema is the field contract for camps
var CampSchema = NewSchema("Camp",
	Field{Name: "name", Type: String, Required: true},
	Field{Name: "organizer", Type: String, Required: true},
	Field{Name: "location", Type: String, Required: true},
	Field{Name: "date", Type: String, Required: true},
	Field{Name: "time", Type: String, Required: true},
	Field{Name: "expectedDonors", Type: Int},
	Field{Name: "registeredDonors", Type: Int},
	Field{Name: "bloodGroups", Type: StringList, Enum: bloodGroupTags},
	Field{Name: "description", Type: String},
	Field{Name: "contact", Type: Object, Sub: map[string]FieldType{
		"phone": String, "email": String, "website": String,
	}},
	Field{Name: "facilities", Type: Object, Sub: map[string]FieldType{
		"parking": Bool, "refreshments": Bool, "medicalStaff": Bool, "equipment": Bool,
	}},
	Field{Name: "status", Type: String, Enum: models.CampStatuses},
	Field{Name: "rating", Type: Number},
	Field{Name: "reviews", Type: Int},
)

// DonorSchema is the field contract for donors
var DonorSchema = NewSchema("Donor",
	Field{Name: "firstName", Type: String, Required: true},
	Field{Name: "lastName", Type: String, Required: true},
	Field{Name: "email", Type: String, Required: true},
	Field{Name: "phone", Type: String, Required: true},
	Field{Name: "bloodGroup", Type: String, Required: true, Enum: models.BloodGroups},
	Field{Name: "dateOfBirth", Type: String},
	Field{Name: "address", Type: String},
	Field{Name: "city", Type: String},
	Field{Name: "state", Type: String},
	Field{Name: "zipCode", Type: String},
	Field{Name: "emergencyContact", Type: Object, Sub: map[string]FieldType{
		"name": String, "phone": String, "relationship": String,
	}},
	Field{Name: "medicalHistory", Type: Object, Sub: map[string]FieldType{
		"hasDonatedBefore":  Bool,
		"lastDonationDate":  String,
		"medicalConditions": String,
		"medications":       String,
		"allergies":         String,
	}},
	Field{Name: "preferences", Type: Object, Sub: map[string]FieldType{
		"receiveNotifications":   Bool,
		"shareData":              Bool,
		"preferredContactMethod": String,
	}},
	Field{Name: "status", Type: String, Enum: models.DonorStatuses},
)

// TrustSchema is the field contract for trusts
var TrustSchema = NewSchema("Trust",
	Field{Name: "trustName", Type: String, Required: true},
	Field{Name: "contactPerson", Type: String, Required: true},
	Field{Name: "email", Type: String, Required: true},
	Field{Name: "phone", Type: String, Required: true},
	Field{Name: "address", Type: String, Required: true},
	Field{Name: "city", Type: String, Required: true},
	Field{Name: "state", Type: String, Required: true},
	Field{Name: "pincode", Type: String, Required: true},
	Field{Name: "registrationNumber", Type: String, Required: true},
	Field{Name: "services", Type: StringList, Required: true},
	Field{Name: "trustType", Type: String, Enum: models.TrustTypes},
	Field{Name: "licenseNumber", Type: String},
	Field{Name: "website", Type: String},
	Field{Name: "description", Type: String},
	Field{Name: "establishedYear", Type: Int},
	Field{Name: "capacity", Type: Int},
	Field{Name: "status", Type: String, Enum: models.TrustStatuses},
)
