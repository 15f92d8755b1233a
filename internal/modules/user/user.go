package user

import "time"

// User represents a signed-in user in the system.
// @Description User information
// @Description with id, name, email, image, and created_at
//
// The id is the identity provider's subject claim, stored verbatim.
// It is never generated server-side.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
