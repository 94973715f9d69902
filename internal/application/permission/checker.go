package permission

import (
	"helpdesk/internal/domain/permission"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// Checker turns the capability table into errors the use cases can return.
type Checker struct {
	enforcer permission.Enforcer
	logger   logger.Interface
}

func NewChecker(enforcer permission.Enforcer, log logger.Interface) *Checker {
	return &Checker{
		enforcer: enforcer,
		logger:   log,
	}
}

// Allowed reports whether the actor's role may perform action on resource.
// Enforcer failures deny.
func (c *Checker) Allowed(actor authorization.Actor, resource permission.Resource, action permission.Action) bool {
	if !actor.Role.IsValid() {
		return false
	}
	ok, err := c.enforcer.Enforce(actor.Role.String(), string(resource), string(action))
	if err != nil {
		c.logger.Errorw("permission check errored, denying",
			"user_id", actor.UserID,
			"role", actor.Role,
			"resource", resource,
			"action", action,
			"error", err)
		return false
	}
	return ok
}

// Require returns a Forbidden error unless Allowed.
func (c *Checker) Require(actor authorization.Actor, resource permission.Resource, action permission.Action) error {
	if c.Allowed(actor, resource, action) {
		return nil
	}
	c.logger.Warnw("permission denied",
		"user_id", actor.UserID,
		"role", actor.Role,
		"resource", resource,
		"action", action)
	return errors.NewForbiddenError("permission denied", string(resource)+":"+string(action))
}

// RoleCanReceive reports whether a user with role may be a ticket assignee.
func (c *Checker) RoleCanReceive(role authorization.UserRole) bool {
	return c.Allowed(authorization.Actor{Role: role}, permission.ResourceTicketAssignment, permission.ActionReceive)
}
