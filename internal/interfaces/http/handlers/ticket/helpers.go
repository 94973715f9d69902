package ticket

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/utils"
)

// actorAndTicketID writes the error response itself and reports false on
// failure.
func actorAndTicketID(c *gin.Context) (authorization.Actor, uint, bool) {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return actor, 0, false
	}
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return actor, 0, false
	}
	return actor, ticketID, true
}
