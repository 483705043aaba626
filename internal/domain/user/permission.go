package user

type Role string

const (
	RoleOrgAdmin Role = "org_admin" // full access across all companies
	RoleEmployer Role = "employer"  // own company only
	RoleEmployee Role = "employee"  // own record only
)

func (r Role) IsOrgAdmin() bool {
	return r == RoleOrgAdmin
}

func (r Role) IsEmployer() bool {
	return r == RoleEmployer
}

func (r Role) IsEmployee() bool {
	return r == RoleEmployee
}

func (r Role) Valid() bool {
	return r == RoleOrgAdmin || r == RoleEmployer || r == RoleEmployee
}

// Requester is the authenticated caller context, extracted from JWT claims
// by the HTTP layer and passed into services for authorization guards.
type Requester struct {
	Email     string
	Role      Role
	CompanyID string
}
