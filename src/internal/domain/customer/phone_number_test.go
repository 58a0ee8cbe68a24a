package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===========================
// PhoneNumber Value Object Tests
// ===========================

// Test 1: Valid Taiwan mobile number
func TestNewPhoneNumber_ValidFormat_Success(t *testing.T) {
	// Act
	phone, err := NewPhoneNumber("0912345678")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "0912345678", phone.String())
	assert.False(t, phone.IsZero())
}

// Test 2: Invalid formats are rejected
func TestNewPhoneNumber_InvalidFormat_ReturnsError(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too short", "091234567"},
		{"too long", "09123456789"},
		{"wrong prefix", "0812345678"},
		{"contains letters", "09123A5678"},
		{"international format", "+886912345678"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			_, err := NewPhoneNumber(tc.input)

			// Assert
			assert.ErrorIs(t, err, ErrInvalidPhoneNumberFormat)
		})
	}
}

// Test 3: Equals compares by value
func TestPhoneNumber_Equals(t *testing.T) {
	// Arrange
	a, _ := NewPhoneNumber("0912345678")
	b, _ := NewPhoneNumber("0912345678")
	c, _ := NewPhoneNumber("0987654321")

	// Assert
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

// Test 4: Zero value is recognizable
func TestPhoneNumber_ZeroValue(t *testing.T) {
	var zero PhoneNumber

	assert.True(t, zero.IsZero())
	assert.Equal(t, "", zero.String())
}
