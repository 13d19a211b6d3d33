// Package session owns the in-memory session of the Vagali client: who is
// logged in, with what role, and under which token. It is the only component
// allowed to mutate the credential store and the API client's token binding;
// consumers read session state here and request changes through Manager
// operations.
package session

import (
	"errors"

	"github.com/vagali/vagali/internal/client/credstore"
)

// Role is the single runtime representation of the user's role. The boolean
// professional flag exists only at serialization boundaries.
type Role string

const (
	RoleClient       Role = "client"
	RoleProfessional Role = "professional"
)

// roleFromFlag derives the role enum from the wire/storage flag.
func roleFromFlag(isProfessional bool) Role {
	if isProfessional {
		return RoleProfessional
	}
	return RoleClient
}

// User is the authenticated user as seen by session consumers.
type User struct {
	ID       string
	FullName string
	Email    string
	Role     Role
}

// IsProfessional reports the derived professional flag.
func (u *User) IsProfessional() bool {
	return u.Role == RoleProfessional
}

func (u *User) toRecord() *credstore.UserRecord {
	return &credstore.UserRecord{
		ID:             u.ID,
		FullName:       u.FullName,
		Email:          u.Email,
		IsProfessional: u.IsProfessional(),
	}
}

func userFromRecord(r *credstore.UserRecord) *User {
	return &User{
		ID:       r.ID,
		FullName: r.FullName,
		Email:    r.Email,
		Role:     roleFromFlag(r.IsProfessional),
	}
}

// ErrAuthentication is returned for any failed login attempt, whatever the
// underlying cause, so the UI never branches on transport detail and the
// message never helps credential enumeration.
var ErrAuthentication = errors.New("invalid credentials")
