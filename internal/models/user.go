// Package models holds the entities shared by the reservation core, the
// transport layer and the CLI.
package models

// User is a person allowed to book equipment. Immutable after creation.
type User struct {
	Username string `json:"username"`
	Password string `json:"-"`
}

// Name returns the display name of the user.
func (u User) Name() string {
	return u.Username
}
