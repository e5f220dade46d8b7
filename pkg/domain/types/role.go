package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// Role represents a user's position in the team
type Role string

const (
	RoleAdmin          Role = "ADMIN"
	RoleProjectManager Role = "PROJECT_MANAGER"
	RoleWebDeveloper   Role = "WEB_DEVELOPER"
	RoleUIUXDesigner   Role = "UI_UX_DESIGNER"
	RoleTester         Role = "TESTER"
)

// DefaultRole is assigned when registration omits the role
const DefaultRole = RoleWebDeveloper

var allRoles = map[Role]struct{}{
	RoleAdmin:          {},
	RoleProjectManager: {},
	RoleWebDeveloper:   {},
	RoleUIUXDesigner:   {},
	RoleTester:         {},
}

// Validate checks if the Role is one of the defined values
func (x Role) Validate() error {
	if _, ok := allRoles[x]; !ok {
		return goerr.New("invalid role", goerr.V("role", x))
	}
	return nil
}

// String returns the string representation of Role
func (x Role) String() string {
	return string(x)
}
