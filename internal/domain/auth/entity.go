package auth

type Role string

const (
	RoleOwner    Role = "owner"    // Company owner - full access
	RoleManager  Role = "manager"  // Can approve overtime and loans
	RoleEmployee Role = "employee" // Regular employee
)

// CanReview reports whether role may approve, reject or settle requests.
func (r Role) CanReview() bool {
	return r == RoleOwner || r == RoleManager
}
