package user

type Role string

const (
	RoleViewer   Role = "viewer"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

type Permission string

const (
	PermContractsRead    Permission = "contracts:read"
	PermContractsCreate  Permission = "contracts:create"
	PermContractsUpdate  Permission = "contracts:update"
	PermContractsApprove Permission = "contracts:approve"
	PermContractsDelete  Permission = "contracts:delete"
)

var rolePermissions = map[Role][]Permission{
	RoleViewer: {PermContractsRead},
	RoleOperator: {
		PermContractsRead,
		PermContractsCreate,
		PermContractsUpdate,
		PermContractsApprove,
	},
	RoleAdmin: {
		PermContractsRead,
		PermContractsCreate,
		PermContractsUpdate,
		PermContractsApprove,
		PermContractsDelete,
	},
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleViewer, RoleOperator, RoleAdmin:
		return true
	default:
		return false
	}
}

func (r Role) Can(p Permission) bool {
	for _, granted := range rolePermissions[r] {
		if granted == p {
			return true
		}
	}
	return false
}

func (r Role) Permissions() []Permission {
	return append([]Permission(nil), rolePermissions[r]...)
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
