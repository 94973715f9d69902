package utils

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
)

// SetActor stores the authenticated caller on the request context.
func SetActor(c *gin.Context, actor authorization.Actor) {
	c.Set(constants.ContextKeyUserID, actor.UserID)
	c.Set(constants.ContextKeyUserRole, string(actor.Role))
}

// ActorFromContext returns the caller set by the auth middleware.
func ActorFromContext(c *gin.Context) (authorization.Actor, error) {
	userID, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return authorization.Actor{}, errors.NewUnauthorizedError(constants.ErrMsgUnauthorized)
	}
	id, ok := userID.(uint)
	if !ok || id == 0 {
		return authorization.Actor{}, errors.NewUnauthorizedError(constants.ErrMsgUnauthorized)
	}
	role := authorization.UserRole(c.GetString(constants.ContextKeyUserRole))
	if !role.IsValid() {
		return authorization.Actor{}, errors.NewUnauthorizedError(constants.ErrMsgUnauthorized)
	}
	return authorization.Actor{UserID: id, Role: role}, nil
}
