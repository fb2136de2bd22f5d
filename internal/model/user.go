package model

// Role tags form a closed enumeration with no hierarchy between them.
// Authorization is an exact-match check against the tag.
const (
	RoleCustomer   = "customer"
	RoleSubAdmin   = "subadmin"
	RoleSuperAdmin = "superadmin"
)

// ValidRole reports whether the given string is one of the known role tags.
func ValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleSubAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// User represents an account from the database.
// The password hash is never serialized into API responses.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}
