// Package idgen derives human-readable record identifiers. The derivations
// keep the historical shapes (name initials, weighted character sums) but
// every generator probes the existing store and bumps the numeric portion
// until the identifier is unused.
package idgen

import (
	"fmt"
	"hash/fnv"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// TakenFunc reports whether an identifier is already in use.
type TakenFunc func(id string) bool

// StudentID derives a zero-padded 6-digit ID from the student's name.
func StudentID(name string, taken TakenFunc) string {
	h := fnv.New32a()
	h.Write([]byte(name)) //nolint:errcheck
	seed := h.Sum32() % 1000000
	for {
		id := fmt.Sprintf("%06d", seed)
		if taken == nil || !taken(id) {
			return id
		}
		seed = (seed + 1) % 1000000
	}
}

// CourseCode derives a code from the course name initials, a 3-digit
// weighted suffix and the university initials, e.g. "CS042-APU".
func CourseCode(name, universityInitials string, taken TakenFunc) string {
	prefix := Initials(name)
	seed := 0
	for _, r := range name {
		seed += int(r)
	}
	seed = (seed * len(name) * 73) % 1000
	for {
		code := fmt.Sprintf("%s%03d-%s", prefix, seed, universityInitials)
		if taken == nil || !taken(code) {
			return code
		}
		seed = (seed + 1) % 1000
	}
}

// ModuleID derives an ID from the module name prefix, a 4-digit seed based
// on the current record count and the module and lecturer initials,
// e.g. "DA1234-DSA-JD".
func ModuleID(moduleName, lecturerName string, recordCount int, taken TakenFunc) string {
	prefix := strings.ToUpper(firstN(moduleName, 2))
	seed := (recordCount * 1234) % 10000
	moduleInitials := Initials(moduleName)
	lecturerInitials := Initials(lecturerName)
	for {
		id := fmt.Sprintf("%s%04d-%s-%s", prefix, seed, moduleInitials, lecturerInitials)
		if taken == nil || !taken(id) {
			return id
		}
		seed = (seed + 1) % 10000
	}
}

// ReceiptNumber returns a unique receipt identifier.
func ReceiptNumber() string {
	return uuid.NewString()
}

// Initials concatenates the upper-cased first letter of each word.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r := []rune(word)[0]
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

func firstN(s string, n int) string {
	runes := []rune(s)
	if len(runes) < n {
		return s
	}
	return string(runes[:n])
}
