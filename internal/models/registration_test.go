package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegistrationCourseWithCommas(t *testing.T) {
	reg, err := ParseRegistration("Alice Tan,alice@example.com,A1234567,Engineering, Computing and Technology")
	require.NoError(t, err)
	assert.Equal(t, "A1234567", reg.PassportNumber)
	assert.Equal(t, "Engineering, Computing and Technology", reg.CourseName)
}

func TestParseRegistrationTooShort(t *testing.T) {
	_, err := ParseRegistration("Alice Tan,alice@example.com,A1234567")
	require.Error(t, err)
}
