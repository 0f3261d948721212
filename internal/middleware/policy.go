package middleware

import "github.com/huellitas/shelter-backend/internal/models"

// Action names a protected capability. Routes declare the action they need
// and the policy table below decides which roles may perform it, so role
// checks live in one place instead of being scattered across handlers.
type Action string

const (
	// ActionManageUsers covers account creation, listing and deletion.
	ActionManageUsers Action = "users.manage"
	// ActionViewApplicants covers reading course applicant PII.
	ActionViewApplicants Action = "applicants.view"
	// ActionManageShelter covers day-to-day dog, owner, visit and course work.
	ActionManageShelter Action = "shelter.manage"
)

var policy = map[Action][]models.Role{
	ActionManageUsers:    {models.RoleAdmin},
	ActionViewApplicants: {models.RoleAdmin},
	ActionManageShelter:  {models.RoleAdmin, models.RoleAuxiliar},
}

// Allowed reports whether role may perform action. Unknown actions deny.
func Allowed(action Action, role models.Role) bool {
	for _, r := range policy[action] {
		if r == role {
			return true
		}
	}
	return false
}
