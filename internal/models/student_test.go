package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStudentVariableModules(t *testing.T) {
	line := "Alice Tan,042317,CS042-APU,DA1234-DSA-JD,NE2468-NS-MK,September,August,0123456789,alice@example.com,12 Jalan Universiti,21"
	student, err := ParseStudent(line)
	require.NoError(t, err)
	assert.Equal(t, "Alice Tan", student.Name)
	assert.Equal(t, "042317", student.ID)
	assert.Equal(t, "CS042-APU", student.CourseCode)
	assert.Equal(t, []string{"DA1234-DSA-JD", "NE2468-NS-MK"}, student.ModuleIDs)
	assert.Equal(t, "September", student.IntakeMonth)
	assert.Equal(t, "21", student.Age)
}

func TestParseStudentNoModules(t *testing.T) {
	line := "Bob Lim,108221,SE107-APU,September,August,0198765432,bob@example.com,3 Jalan Damai,22"
	student, err := ParseStudent(line)
	require.NoError(t, err)
	assert.Empty(t, student.ModuleIDs)
	assert.Equal(t, "SE107-APU", student.CourseCode)
	assert.Equal(t, "September", student.IntakeMonth)
}

func TestParseStudentTooShort(t *testing.T) {
	_, err := ParseStudent("Alice,042317,CS042-APU")
	require.Error(t, err)
}

func TestStudentRecordRoundTrip(t *testing.T) {
	student := Student{
		Name:              "Alice Tan",
		ID:                "042317",
		CourseCode:        "CS042-APU",
		ModuleIDs:         []string{"DA1234-DSA-JD"},
		IntakeMonth:       "September",
		RegistrationMonth: "August",
		Phone:             "0123456789",
		Email:             "alice@example.com",
		Address:           "12 Jalan Universiti",
		Age:               "21",
	}
	parsed, err := ParseStudent(student.Record())
	require.NoError(t, err)
	assert.Equal(t, student, parsed)
}
