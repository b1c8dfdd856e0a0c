// Package model defines the domain model.
package model

import "time"

// User is a registered account on the site.
// Password holds the bcrypt hash once the record has been persisted;
// plaintext only ever exists transiently inside a request payload.
type User struct {
	ID        int64
	Nickname  string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
