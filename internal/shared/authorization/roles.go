// Package authorization defines the roles a caller can hold.
package authorization

import (
	"fmt"
	"slices"
)

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

var allRoles = []UserRole{RoleAdmin, RoleUser}

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsValid() bool {
	return slices.Contains(allRoles, r)
}

// NewUserRole rejects anything but an exact role name.
func NewUserRole(s string) (UserRole, error) {
	role := UserRole(s)
	if !role.IsValid() {
		return "", fmt.Errorf("invalid role %q: must be one of %v", s, allRoles)
	}
	return role, nil
}
