package satchel

import (
	"regexp"

	"github.com/pkg/errors"
)

var ErrInvalidEmail = errors.New("invalid email")

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
var urlPattern = regexp.MustCompile(`(?i)^https?://[\w\-]+(\.[\w\-]+)+`)

// User is a record with a format constraint on the email field,
// an extensible role list and an open-ended metadata map.
type User struct {
	ID    uint64
	Name  string
	Email string
	Roles []string
	Meta  M
}

// NewUser validates the email at construction time. On success the
// stored email equals the input exactly.
func NewUser(id uint64, name, email string, roles ...string) (*User, error) {
	if !emailPattern.MatchString(email) {
		return nil, errors.Wrapf(ErrInvalidEmail, "%q", email)
	}

	return &User{
		ID:    id,
		Name:  name,
		Email: email,
		Roles: roles,
		Meta:  make(M),
	}, nil
}

func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}

	return false
}

// ValidURL reports whether s starts with an http(s) scheme followed
// by a dotted host.
func ValidURL(s string) bool {
	return urlPattern.MatchString(s)
}
