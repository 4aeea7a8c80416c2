package entity

import "time"

// User is the aggregate root for the user domain.
// Password holds a bcrypt hash and is never serialized.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	UserType  UserType  `json:"userType"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WithoutPassword returns a copy safe to attach to a request context or
// serialize in a response.
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}
