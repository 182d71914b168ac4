package model

// Environment names the runtime environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Role is the portal role of a user.
type Role string

const (
	RoleOwner Role = "owner"
	RoleStaff Role = "staff"
)

// Scope carries the identity of the caller through every usecase call.
// It is always passed explicitly — never read from a global — so the
// no-user precondition on mutations stays testable in isolation.
type Scope struct {
	UserID      string
	Username    string
	DisplayName string
	Role        Role
}

// IsAnonymous reports whether the scope carries no authenticated user.
func (s Scope) IsAnonymous() bool {
	return s.UserID == ""
}
