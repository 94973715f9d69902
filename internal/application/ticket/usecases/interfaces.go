package usecases

import (
	"helpdesk/internal/domain/permission"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
)

// PermissionChecker is satisfied by the application permission Checker.
type PermissionChecker interface {
	Allowed(actor authorization.Actor, resource permission.Resource, action permission.Action) bool
	Require(actor authorization.Actor, resource permission.Resource, action permission.Action) error
	RoleCanReceive(role authorization.UserRole) bool
}

// canSeeAll reports whether the actor reads every ticket rather than only
// their own.
func canSeeAll(checker PermissionChecker, actor authorization.Actor) bool {
	return checker.Allowed(actor, permission.ResourceTicketAll, permission.ActionRead)
}

// requesterScope is nil for actors who see every ticket.
func requesterScope(checker PermissionChecker, actor authorization.Actor) *uint {
	if canSeeAll(checker, actor) {
		return nil
	}
	id := actor.UserID
	return &id
}

func ensureVisible(checker PermissionChecker, actor authorization.Actor, requesterID uint) error {
	if requesterID == actor.UserID || canSeeAll(checker, actor) {
		return nil
	}
	return errors.NewForbiddenError("you do not have access to this ticket")
}

func ensureTicketVisible(checker PermissionChecker, actor authorization.Actor, t *ticket.Ticket) error {
	return ensureVisible(checker, actor, t.RequesterID())
}
