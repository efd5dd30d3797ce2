package dto

import "time"

// UpsertUserRequest carries partial profile fields; nil means "leave the
// stored value alone", never "blank it".
type UpsertUserRequest struct {
	Name     *string `json:"name"`
	Pronouns *string `json:"pronouns"`
	Bio      *string `json:"bio"`
}

type UserResponse struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Pronouns  *string   `json:"pronouns,omitempty"`
	Bio       *string   `json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
