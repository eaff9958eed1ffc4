package validation

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/ArowuTest/blood-donation-backend/internal/apperr"
	"github.com/ArowuTest/blood-donation-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func decodePayload(t *testing.T, body string) map[string]any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	var m map[string]any
	require.NoError(t, dec.Decode(&m))
	return m
}

func validDonor() map[string]any {
	return map[string]any{
		"firstName":  "Asha",
		"lastName":   "Rao",
		"email":      "asha@example.com",
		"phone":      "9876543210",
		"bloodGroup": "O+",
	}
}

func TestValidateCreate_FirstMissingFieldWins(t *testing.T) {
	payload := validDonor()
	delete(payload, "bloodGroup")
	delete(payload, "phone")

	_, err := ValidateCreate(DonorSchema, payload)

	require.Error(t, err)
	assert.Equal(t, "Missing required field: phone", err.Error())
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestValidateCreate_EmptyValuesCountAsMissing(t *testing.T) {
	for name, v := range map[string]any{
		"empty string": "",
		"null":         nil,
		"empty list":   []any{},
		"empty object": map[string]any{},
	} {
		t.Run(name, func(t *testing.T) {
			payload := validDonor()
			payload["bloodGroup"] = v

			_, err := ValidateCreate(DonorSchema, payload)

			require.Error(t, err)
			assert.Equal(t, "Missing required field: bloodGroup", err.Error())
		})
	}
}

func TestValidateCreate_TrustServicesMustBeNonEmpty(t *testing.T) {
	payload := decodePayload(t, `{
		"trustName": "Red Drop", "contactPerson": "Meera", "email": "info@reddrop.org",
		"phone": "9000000000", "address": "1 Main St", "city": "Pune", "state": "MH",
		"pincode": "411001", "registrationNumber": "REG-1", "services": []
	}`)

	_, err := ValidateCreate(TrustSchema, payload)

	require.Error(t, err)
	assert.Equal(t, "Missing required field: services", err.Error())
}

func TestValidateCreate_DropsUnknownAndProtectedKeys(t *testing.T) {
	payload := validDonor()
	payload["_id"] = "abc"
	payload["createdAt"] = "yesterday"
	payload["isAdmin"] = true

	fields, err := ValidateCreate(DonorSchema, payload)

	require.NoError(t, err)
	assert.NotContains(t, fields, "_id")
	assert.NotContains(t, fields, "createdAt")
	assert.NotContains(t, fields, "isAdmin")
	assert.Equal(t, "asha@example.com", fields["email"])
}

func TestValidateCreate_RejectsBadTypesAndEnums(t *testing.T) {
	cases := []struct {
		name    string
		schema  *Schema
		payload string
		want    string
	}{
		{
			name:    "non integer expectedDonors",
			schema:  CampSchema,
			payload: `{"name":"a","organizer":"b","location":"c","date":"2024-06-01","time":"9-5","expectedDonors":"lots"}`,
			want:    "Invalid value for field: expectedDonors",
		},
		{
			name:    "fractional reviews",
			schema:  CampSchema,
			payload: `{"name":"a","organizer":"b","location":"c","date":"2024-06-01","time":"9-5","reviews":1.5}`,
			want:    "Invalid value for field: reviews",
		},
		{
			name:    "whole number beyond int64",
			schema:  CampSchema,
			payload: `{"name":"a","organizer":"b","location":"c","date":"2024-06-01","time":"9-5","expectedDonors":1e30}`,
			want:    "Invalid value for field: expectedDonors",
		},
		{
			name:    "negative whole number beyond int64",
			schema:  TrustSchema,
			payload: `{"trustName":"a","contactPerson":"b","email":"c","phone":"d","address":"e","city":"f","state":"g","pincode":"h","registrationNumber":"i","services":["x"],"capacity":-1e19}`,
			want:    "Invalid value for field: capacity",
		},
		{
			name:    "unknown blood group tag",
			schema:  CampSchema,
			payload: `{"name":"a","organizer":"b","location":"c","date":"2024-06-01","time":"9-5","bloodGroups":["Z+"]}`,
			want:    "Invalid bloodGroups: Z+",
		},
		{
			name:    "camp status outside enum",
			schema:  CampSchema,
			payload: `{"name":"a","organizer":"b","location":"c","date":"2024-06-01","time":"9-5","status":"cancelled"}`,
			want:    "Invalid status: cancelled",
		},
		{
			name:    "donor blood group outside enum",
			schema:  DonorSchema,
			payload: `{"firstName":"a","lastName":"b","email":"c","phone":"d","bloodGroup":"Q"}`,
			want:    "Invalid bloodGroup: Q",
		},
		{
			name:    "unknown nested key",
			schema:  CampSchema,
			payload: `{"name":"a","organizer":"b","location":"c","date":"2024-06-01","time":"9-5","contact":{"fax":"1"}}`,
			want:    "Unknown field: contact.fax",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateCreate(tc.schema, decodePayload(t, tc.payload))

			require.Error(t, err)
			assert.Equal(t, tc.want, err.Error())
		})
	}
}

func TestValidateUpdate_RejectsOutOfRangeIntegers(t *testing.T) {
	for _, v := range []any{1e30, float64(math.MaxInt64), math.Inf(1)} {
		_, err := ValidateUpdate(CampSchema, map[string]any{"reviews": v})

		require.Error(t, err)
		assert.Equal(t, "Invalid value for field: reviews", err.Error())
	}

	set, err := ValidateUpdate(CampSchema, map[string]any{"reviews": float64(1 << 53)})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"reviews": int64(1 << 53)}, set)
}

func TestDecode_FillsDefaults(t *testing.T) {
	fields, err := ValidateCreate(CampSchema, decodePayload(t,
		`{"name":"Blood Drive","organizer":"Org","location":"Downtown","date":"2024-06-01","time":"9-5"}`))
	require.NoError(t, err)

	camp := models.NewCamp()
	require.NoError(t, Decode(fields, camp))
	camp.ApplyDefaults()

	assert.Equal(t, "Blood Drive", camp.Name)
	assert.Equal(t, 100, camp.ExpectedDonors)
	assert.Equal(t, 0, camp.RegisteredDonors)
	assert.Equal(t, []string{models.AllBloodGroups}, camp.BloodGroups)
	assert.Equal(t, models.CampStatusUpcoming, camp.Status)
	assert.Equal(t, models.CampContact{}, camp.Contact)
}

func TestDecode_KeepsSuppliedOptionalValues(t *testing.T) {
	fields, err := ValidateCreate(CampSchema, decodePayload(t, `{
		"name":"n","organizer":"o","location":"l","date":"2024-06-01","time":"t",
		"expectedDonors":0,"bloodGroups":["A+","O-"],"contact":{"phone":"123"},"rating":4.5
	}`))
	require.NoError(t, err)

	camp := models.NewCamp()
	require.NoError(t, Decode(fields, camp))

	assert.Equal(t, 0, camp.ExpectedDonors)
	assert.Equal(t, []string{"A+", "O-"}, camp.BloodGroups)
	assert.Equal(t, "123", camp.Contact.Phone)
	assert.InDelta(t, 4.5, camp.Rating, 0.0001)
}

func TestValidateUpdate_AllowList(t *testing.T) {
	for _, key := range []string{"_id", "id", "createdAt", "updatedAt", "isAdmin"} {
		t.Run(key, func(t *testing.T) {
			_, err := ValidateUpdate(CampSchema, map[string]any{"name": "x", key: "y"})

			require.Error(t, err)
			assert.Equal(t, "Field not updatable: "+key, err.Error())
		})
	}
}

func TestValidateUpdate_BuildsSetDocument(t *testing.T) {
	set, err := ValidateUpdate(CampSchema, decodePayload(t,
		`{"registeredDonors": 12, "status": "ongoing", "contact": {"email": "a@b.c"}, "description": null}`))

	require.NoError(t, err)
	assert.Equal(t, bson.M{
		"registeredDonors": int64(12),
		"status":           "ongoing",
		"contact":          bson.M{"email": "a@b.c"},
		"description":      "",
	}, set)
}

func TestValidateUpdate_DoesNotRequireRequiredFields(t *testing.T) {
	set, err := ValidateUpdate(DonorSchema, map[string]any{"city": "Pune"})

	require.NoError(t, err)
	assert.Equal(t, bson.M{"city": "Pune"}, set)
}

func TestValidateUpdate_RejectsNullEnum(t *testing.T) {
	_, err := ValidateUpdate(DonorSchema, map[string]any{"status": nil})

	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestValidate_EmptyPayloadIsMalformed(t *testing.T) {
	_, err := ValidateCreate(CampSchema, map[string]any{})
	assert.Equal(t, apperr.KindMalformedPayload, apperr.KindOf(err))

	_, err = ValidateUpdate(CampSchema, nil)
	assert.Equal(t, apperr.KindMalformedPayload, apperr.KindOf(err))
}

func TestSchema_RequiredOrder(t *testing.T) {
	assert.Equal(t, []string{"name", "organizer", "location", "date", "time"}, CampSchema.Required())
	assert.Equal(t, []string{"firstName", "lastName", "email", "phone", "bloodGroup"}, DonorSchema.Required())
}
