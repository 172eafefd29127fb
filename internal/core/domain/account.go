package domain

import (
	"errors"
	"time"
)

// Namespace selects which credential collection and signing secret an
// operation applies to. Users and admins never share either.
type Namespace string

const (
	NamespaceUser  Namespace = "user"
	NamespaceAdmin Namespace = "admin"
)

var ErrAccountExists = errors.New("account already exists")
var ErrAccountNotFound = errors.New("account not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrWeakPassword = errors.New("password does not meet policy")

// Account models a credential record. The same shape backs both the user and
// admin namespaces; they live in separate collections.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	CreatedAt    time.Time `json:"createdAt"`
}
