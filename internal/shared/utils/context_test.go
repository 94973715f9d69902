package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
)

func TestActorFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("round trip", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		SetActor(c, authorization.Actor{UserID: 7, Role: authorization.RoleITStaff})

		actor, err := ActorFromContext(c)
		require.NoError(t, err)
		assert.Equal(t, uint(7), actor.UserID)
		assert.Equal(t, authorization.RoleITStaff, actor.Role)
	})

	t.Run("missing user", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())

		_, err := ActorFromContext(c)
		assert.True(t, errors.IsUnauthorizedError(err))
	})

	t.Run("unknown role", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(constants.ContextKeyUserID, uint(7))
		c.Set(constants.ContextKeyUserRole, "root")

		_, err := ActorFromContext(c)
		assert.True(t, errors.IsUnauthorizedError(err))
	})
}
