package authz

import (
	"testing"

	"github.com/shenikar/outage_tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "5551234567", NormalizePhone("(555) 123-4567"))
	assert.Equal(t, "5551234567", NormalizePhone("555.123.4567"))
	assert.Equal(t, "15551234567", NormalizePhone("+1 555 123 4567"))
	assert.Equal(t, "", NormalizePhone("---"))
}

func TestValidateContact(t *testing.T) {
	tests := []struct {
		name      string
		email     *string
		phone     *string
		wantField string
	}{
		{"valid contact", strPtr("user@example.com"), strPtr("(555) 123-4567"), ""},
		{"empty email", strPtr(""), nil, "reporter_email"},
		{"malformed email", strPtr("not-an-email"), nil, "reporter_email"},
		{"empty phone", nil, strPtr(""), "reporter_phone"},
		{"short phone", nil, strPtr("123-4567"), "reporter_phone"},
		{"long phone", nil, strPtr("+7 999 123 45 67 89"), "reporter_phone"},
		{"absent fields are not checked", nil, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := ValidateContact(tt.email, tt.phone)
			if tt.wantField == "" {
				assert.Empty(t, ve)
			} else {
				require.Len(t, ve, 1)
				assert.Contains(t, ve, tt.wantField)
			}
		})
	}
}

func validCreateLocation() *models.Location {
	lat, lon := 40.7128, -74.006
	affected := 250
	return &models.Location{
		Name:                       "Downtown substation outage",
		Address:                    "123 Main Street",
		City:                       "Springfield",
		State:                      "IL",
		ZipCode:                    "62701",
		Description:                "Power lines down after the storm",
		Priority:                   models.PriorityHigh,
		Latitude:                   &lat,
		Longitude:                  &lon,
		EstimatedCustomersAffected: &affected,
		ReporterEmail:              "reporter@example.com",
		ReporterPhone:              "(555) 123-4567",
	}
}

func TestValidateCreate_Valid(t *testing.T) {
	assert.Empty(t, ValidateCreate(validCreateLocation()))
}

func TestValidateCreate_PerFieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Location)
		field  string
	}{
		{"short name", func(l *models.Location) { l.Name = "ab" }, "name"},
		{"short address", func(l *models.Location) { l.Address = "1 St" }, "address"},
		{"short city", func(l *models.Location) { l.City = "X" }, "city"},
		{"unknown state", func(l *models.Location) { l.State = "ZZ" }, "state"},
		{"empty state", func(l *models.Location) { l.State = "" }, "state"},
		{"short zip", func(l *models.Location) { l.ZipCode = "1234" }, "zip_code"},
		{"bad zip suffix", func(l *models.Location) { l.ZipCode = "12345-67" }, "zip_code"},
		{"short description", func(l *models.Location) { l.Description = "too short" }, "description"},
		{"negative customers", func(l *models.Location) { n := -1; l.EstimatedCustomersAffected = &n }, "estimated_customers_affected"},
		{"latitude out of range", func(l *models.Location) { v := 91.0; l.Latitude = &v }, "latitude"},
		{"longitude out of range", func(l *models.Location) { v := -181.0; l.Longitude = &v }, "longitude"},
		{"bad priority", func(l *models.Location) { l.Priority = "urgent" }, "priority"},
		{"bad email", func(l *models.Location) { l.ReporterEmail = "nope" }, "reporter_email"},
		{"bad phone", func(l *models.Location) { l.ReporterPhone = "12345" }, "reporter_phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := validCreateLocation()
			tt.mutate(loc)

			ve := ValidateCreate(loc)
			require.Len(t, ve, 1, "exactly one field must fail: %v", ve)
			assert.Contains(t, ve, tt.field)
		})
	}
}

func TestValidateCreate_CollectsAllErrors(t *testing.T) {
	// Ошибки собираются по всем полям сразу, без short-circuit
	loc := validCreateLocation()
	loc.Name = ""
	loc.ZipCode = "1234"
	loc.ReporterEmail = ""

	ve := ValidateCreate(loc)
	assert.Contains(t, ve, "name")
	assert.Contains(t, ve, "zip_code")
	assert.Contains(t, ve, "reporter_email")
	assert.Len(t, ve, 3)
}

func TestValidateCreate_OptionalFieldsMayBeAbsent(t *testing.T) {
	loc := validCreateLocation()
	loc.Latitude = nil
	loc.Longitude = nil
	loc.EstimatedCustomersAffected = nil
	loc.Priority = ""

	assert.Empty(t, ValidateCreate(loc))
}

func TestValidationErrors_Error(t *testing.T) {
	ve := ValidationErrors{"zip_code": "bad zip", "name": "bad name"}
	assert.Equal(t, "name: bad name; zip_code: bad zip", ve.Error())
}
