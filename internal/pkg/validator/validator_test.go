package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("admin@example.com"))
	assert.False(t, IsValidEmail("admin@"))
	assert.False(t, IsValidEmail("not-an-email"))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2026-08-28")
	assert.True(t, ok)
	_, ok = IsValidDate("28-08-2026")
	assert.False(t, ok)
	_, ok = IsValidDate("2026-02-30")
	assert.False(t, ok)
}

func TestIsValidPrice(t *testing.T) {
	assert.True(t, IsValidPrice("1000"))
	assert.True(t, IsValidPrice("0"))
	assert.True(t, IsValidPrice(" 750.50 "))
	assert.False(t, IsValidPrice("-1"))
	assert.False(t, IsValidPrice("abc"))
	assert.False(t, IsValidPrice(""))
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "price", Message: "price must be a non-negative number"},
	}

	m := errs.ToMap()
	assert.Equal(t, "name is required", m["name"])
	assert.Len(t, m, 2)
	assert.Contains(t, errs.Error(), "name is required")
}
