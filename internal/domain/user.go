package domain

import (
	"strings"
	"time"
)

// User represents a registered account. Users own tasks and access tokens.
type User struct {
	ID             int64
	Name           string
	Email          string
	HashedPassword string // Never expose password hash in responses
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewUser creates a new User with the given name, email and password hash.
// The caller is responsible for hashing the password before calling NewUser;
// ID and timestamps are assigned by the store.
func NewUser(name, email, hashedPassword string) (*User, error) {
	user := &User{
		Name:           strings.TrimSpace(name),
		Email:          strings.TrimSpace(email),
		HashedPassword: hashedPassword,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data. Email format is checked at the
// request boundary; here only presence is enforced.
func (u *User) Validate() error {
	if u.Name == "" {
		return ErrEmptyName
	}
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if !strings.Contains(u.Email, "@") {
		return ErrInvalidEmail
	}
	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}
	return nil
}

// Owner returns the display projection of u used on tasks.
func (u *User) Owner() TaskOwner {
	return TaskOwner{ID: u.ID, Name: u.Name, Email: u.Email}
}
