package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.domain.co",
		"user+tag@example.io",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plain",
		"@example.com",
		"user@",
		"user@domain",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2024-03-04")
	assert.True(t, ok)
	assert.Equal(t, 2024, date.Year())

	for _, bad := range []string{"", "04-03-2024", "2024/03/04", "2024-13-01", "not-a-date"} {
		_, ok := IsValidDate(bad)
		assert.False(t, ok, bad)
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	assert.True(t, IsValidEmployeeCode("EMP-0A1B2C3D"))
	assert.True(t, IsValidEmployeeCode("EMP-DEADBEEF"))
	assert.False(t, IsValidEmployeeCode("EMP-0a1b2c3d"))
	assert.False(t, IsValidEmployeeCode("EMP-123"))
	assert.False(t, IsValidEmployeeCode("XYZ-0A1B2C3D"))
	assert.False(t, IsValidEmployeeCode(""))
}

func TestIsValidMonthName(t *testing.T) {
	assert.True(t, IsValidMonthName("January"))
	assert.True(t, IsValidMonthName("December"))
	assert.False(t, IsValidMonthName("january"))
	assert.False(t, IsValidMonthName("Jan"))
	assert.False(t, IsValidMonthName(""))
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "password", Message: "password is required"},
	}

	assert.Equal(t, map[string]string{
		"email":    "email is required",
		"password": "password is required",
	}, errs.ToMap())
	assert.Equal(t, "email: email is required; password: password is required", errs.Error())
}
