// Package identity keeps the fixed set of users and checks credentials.
package identity

import (
	"crypto/subtle"
	"fmt"

	"github.com/dmitrijs2005/macreserve/internal/common"
	"github.com/dmitrijs2005/macreserve/internal/models"
)

// Registry is read-only after construction and safe for concurrent use.
type Registry struct {
	users []models.User
}

func NewRegistry(users []models.User) *Registry {
	return &Registry{users: append([]models.User(nil), users...)}
}

// Authenticate returns the user whose username and password both match.
// Credentials are opaque strings; there is no hashing or lockout.
func (r *Registry) Authenticate(username, password string) (models.User, error) {
	for _, u := range r.users {
		if u.Username == username && checkPassword(u.Password, password) {
			return u, nil
		}
	}
	return models.User{}, common.ErrorUnauthorized
}

func (r *Registry) Lookup(username string) (models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("user %q: %w", username, common.ErrorNotFound)
}

func checkPassword(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}
