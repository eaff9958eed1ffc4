package models

import "time"

// Now returns the current UTC time truncated to the millisecond precision
// MongoDB stores, so a document echoed on create matches a later read.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// Blood group tags accepted on donors and camps.
const (
	BloodGroupAPos  = "A+"
	BloodGroupANeg  = "A-"
	BloodGroupBPos  = "B+"
	BloodGroupBNeg  = "B-"
	BloodGroupABPos = "AB+"
	BloodGroupABNeg = "AB-"
	BloodGroupOPos  = "O+"
	BloodGroupONeg  = "O-"

	// AllBloodGroups is the camp sentinel meaning every group is welcome.
	AllBloodGroups = "All Groups"
)

// BloodGroups lists the individual blood group tags.
var BloodGroups = []string{
	BloodGroupAPos, BloodGroupANeg,
	BloodGroupBPos, BloodGroupBNeg,
	BloodGroupABPos, BloodGroupABNeg,
	BloodGroupOPos, BloodGroupONeg,
}
