// Package user provides the account model shared by the session, the API client and the admin commands.
package user

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/pflag"
)

type Role string

const (
	RoleLearner Role = "learner"
	RoleMentor  Role = "mentor"
	RoleAdmin   Role = "admin"
)

var (
	_        pflag.Value = (*Role)(nil)
	AllRoles             = []Role{RoleLearner, RoleMentor, RoleAdmin}

	ErrAccessDenied = errors.New("access denied")
	ErrNotSignedIn  = errors.New("not signed in")
)

// Set implements pflag.Value.
func (r *Role) Set(v string) error {
	for _, role := range AllRoles {
		if v == string(role) {
			*r = role
			return nil
		}
	}
	return fmt.Errorf("invalid role %q, valid values are %v", v, AllRoles)
}

// String implements pflag.Value.
func (r *Role) String() string {
	if r == nil {
		return ""
	}
	return string(*r)
}

// Type implements pflag.Value.
func (r *Role) Type() string {
	return "Role"
}

type User struct {
	ID              string   `json:"id" yaml:"id"`
	Name            string   `json:"name" yaml:"name"`
	Email           string   `json:"email" yaml:"email"`
	Role            Role     `json:"role" yaml:"role"`
	Suspended       bool     `json:"suspended,omitempty" yaml:"suspended,omitempty"`
	EnrolledCourses []string `json:"enrolledCourses,omitempty" yaml:"enrolled_courses,omitempty"`
}

func (u User) IsEnrolled(courseID string) bool {
	return slices.Contains(u.EnrolledCourses, courseID)
}

// RequireRole returns ErrAccessDenied unless u has one of roles.
// A nil user is treated as signed out and gets ErrNotSignedIn.
func RequireRole(u *User, roles ...Role) error {
	if u == nil {
		return ErrNotSignedIn
	}
	if u.Suspended {
		return fmt.Errorf("account %s is suspended: %w", u.Email, ErrAccessDenied)
	}
	if slices.Contains(roles, u.Role) {
		return nil
	}
	return fmt.Errorf("role %s is not one of %v: %w", u.Role, roles, ErrAccessDenied)
}
