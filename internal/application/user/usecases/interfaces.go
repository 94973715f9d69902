package usecases

import (
	"helpdesk/internal/domain/permission"
	"helpdesk/internal/shared/authorization"
)

type PermissionChecker interface {
	Require(actor authorization.Actor, resource permission.Resource, action permission.Action) error
}
