package auth

// RoleSpec declares which roles a handler admits. The zero value admits
// any authenticated user.
type RoleSpec struct {
	kind  roleKind
	roles []string
}

type roleKind int

const (
	anyRole roleKind = iota
	exactRole
	oneOfRoles
)

// AnyRole admits every authenticated session.
func AnyRole() RoleSpec {
	return RoleSpec{kind: anyRole}
}

// Role admits only sessions whose user has exactly the given role.
func Role(role string) RoleSpec {
	return RoleSpec{kind: exactRole, roles: []string{role}}
}

// OneOf admits sessions whose user's role is in the given set.
func OneOf(roles ...string) RoleSpec {
	return RoleSpec{kind: oneOfRoles, roles: roles}
}

func (s RoleSpec) Allows(role string) bool {
	switch s.kind {
	case anyRole:
		return true
	case exactRole:
		return role == s.roles[0]
	case oneOfRoles:
		for _, r := range s.roles {
			if role == r {
				return true
			}
		}
		return false
	}
	return false
}
