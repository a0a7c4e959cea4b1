package staff

import "errors"

var ErrInvalidRole = errors.New("invalid staff role")

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleManager:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}
