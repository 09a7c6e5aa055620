package domain

// Principal is the authenticated actor resolved by the auth middleware from
// JWT claims. Services use it for every role and branch-scope decision.
type Principal struct {
	UserID   int64
	Username string
	Role     Role
	BranchID *int64
}

// IsAdmin reports whether the principal has unrestricted access.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// IsBranchManager reports whether the principal is scoped to a single branch.
func (p Principal) IsBranchManager() bool {
	return p.Role == RoleBranchManager
}

// OwnsBranch reports whether a branch-scoped principal owns the given branch.
// Admins own every branch; a manager without an assigned branch owns none.
func (p Principal) OwnsBranch(branchID int64) bool {
	if p.IsAdmin() {
		return true
	}
	return p.BranchID != nil && *p.BranchID == branchID
}
