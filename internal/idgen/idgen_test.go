package idgen

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudentID(t *testing.T) {
	id := StudentID("Alice Tan", nil)
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), id)
	assert.Equal(t, id, StudentID("Alice Tan", nil))
}

func TestStudentIDProbesOnCollision(t *testing.T) {
	first := StudentID("Alice Tan", nil)
	second := StudentID("Alice Tan", func(id string) bool { return id == first })
	assert.NotEqual(t, first, second)
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), second)
}

func TestCourseCode(t *testing.T) {
	code := CourseCode("Computer Science", "APU", nil)
	assert.Regexp(t, regexp.MustCompile(`^CS\d{3}-APU$`), code)
}

func TestCourseCodeProbesOnCollision(t *testing.T) {
	first := CourseCode("Computer Science", "APU", nil)
	second := CourseCode("Computer Science", "APU", func(code string) bool { return code == first })
	assert.NotEqual(t, first, second)
}

func TestModuleID(t *testing.T) {
	id := ModuleID("Data Structures and Algorithms", "John Doe", 1, nil)
	assert.Regexp(t, regexp.MustCompile(`^DA\d{4}-DSAA-JD$`), id)
}

func TestReceiptNumberUnique(t *testing.T) {
	assert.NotEqual(t, ReceiptNumber(), ReceiptNumber())
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "JD", Initials("john doe"))
	assert.Equal(t, "C", Initials("Computing"))
	assert.Empty(t, Initials(""))
}
