package validation

import (
	"strings"
	"testing"

	"github.com/hrutik5321/mechanicshop/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestFieldLength(t *testing.T) {
	tests := []struct {
		name    string
		first   string
		wantErr string
	}{
		{"empty is rejected", "", "Customer's first name can not be null (empty) or exceed 32 characters."},
		{"33 chars is rejected", strings.Repeat("a", 33), "Customer's first name can not be null (empty) or exceed 32 characters."},
		{"1 char is accepted", "J", ""},
		{"32 chars is accepted", strings.Repeat("a", 32), ""},
		{"multibyte counts characters", strings.Repeat("é", 32), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &models.Customer{FirstName: tt.first}
			err := Field(c, "FirstName")
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestFieldOnlyChecksNamedField(t *testing.T) {
	// The other fields are empty and would fail on their own.
	c := &models.Customer{Phone: "555-1234"}
	assert.NoError(t, Field(c, "Phone"))

	c.Phone = strings.Repeat("5", 14)
	assert.EqualError(t, Field(c, "Phone"), "Customer's phone number can not be null (empty) or exceed 13 characters.")
}

func TestFieldVIN(t *testing.T) {
	car := &models.Car{VIN: strings.Repeat("V", 17)}
	assert.EqualError(t, Field(car, "VIN"), "Car's vin can not be null (empty) or exceed 16 characters.")

	car.VIN = "1HGCM82633A004352"[:16]
	assert.NoError(t, Field(car, "VIN"))
}

func TestFieldPositive(t *testing.T) {
	lim := &models.ReportLimit{K: 0}
	assert.EqualError(t, Field(lim, "K"), "Number must be greater than zero.")

	lim.K = -3
	assert.Error(t, Field(lim, "K"))

	lim.K = 5
	assert.NoError(t, Field(lim, "K"))
}
