package entity

// UserType is the closed set of authorization roles.
type UserType string

const (
	RoleAdmin UserType = "admin"
	RoleUser  UserType = "user"
)

// Valid reports whether t is a known role.
func (t UserType) Valid() bool {
	return t == RoleAdmin || t == RoleUser
}

// OneOf reports set membership against an allowed role list.
func (t UserType) OneOf(allowed ...UserType) bool {
	for _, a := range allowed {
		if t == a {
			return true
		}
	}
	return false
}
