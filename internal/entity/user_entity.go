package entity

import "time"

// User identity. The id is an opaque string sourced from the identity
// provider subject (Google sub, email-derived id, or a generated uuid for
// password accounts) and is the primary key everywhere.
type User struct {
	Id           string
	Name         string
	Email        *string
	PasswordHash *string
	Pronouns     *string
	Bio          *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
