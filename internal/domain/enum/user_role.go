package enum

// UserRole represents the role of a platform user
type UserRole string

const (
	UserRoleCustomer UserRole = "CUSTOMER"
	UserRoleSeller   UserRole = "SELLER"
	UserRoleAdmin    UserRole = "ADMIN"
)

// UserRoles lists every role in display order
var UserRoles = []UserRole{UserRoleCustomer, UserRoleSeller, UserRoleAdmin}

func (r UserRole) String() string {
	return string(r)
}

// IsValid reports whether r is a known role
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleCustomer, UserRoleSeller, UserRoleAdmin:
		return true
	}
	return false
}
