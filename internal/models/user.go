package models

import (
	"fmt"
	"strings"
)

// Staff and student roles.
const (
	RoleStudent    = "Student"
	RoleLecturer   = "Lecturer"
	RoleAccountant = "Accountant"
	RoleAdmin      = "Admin"
	RoleRegistrar  = "Registrar"
)

// ValidRoles lists every role a user may register with.
var ValidRoles = []string{RoleStudent, RoleLecturer, RoleAccountant, RoleAdmin, RoleRegistrar}

// User is a login account. Password holds the shift-ciphered form as stored
// on disk, never the plain text.
type User struct {
	Username string
	Password string
	Role     string
}

// ParseUser decodes a `username,password,role` record line. The ciphered
// password may itself contain commas, so it spans everything between the
// username and the trailing role field.
func ParseUser(line string) (User, error) {
	parts := strings.Split(line, ",")
	if len(parts) < 3 {
		return User{}, fmt.Errorf("user record needs 3 fields, got %d: %q", len(parts), line)
	}
	return User{
		Username: strings.TrimSpace(parts[0]),
		Password: strings.Join(parts[1:len(parts)-1], ","),
		Role:     strings.TrimSpace(parts[len(parts)-1]),
	}, nil
}

// Record encodes the user as a record line.
func (u User) Record() string {
	return fmt.Sprintf("%s,%s,%s", u.Username, u.Password, u.Role)
}
