package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/models"
)

func TestTicketMapper_KeepsNullableTimestamps(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	tk, err := ticket.NewTicket(3, "VPN drops", "every hour",
		catalog.ReconstructCategory(3, "Network", ""),
		catalog.ReconstructPriority(2, "Medium", 2, ""),
		catalog.ReconstructStatus(1, catalog.StatusNameOpen, ""),
		created)
	require.NoError(t, err)
	require.NoError(t, tk.SetNumber("TKT-20240301-DEADBEEF"))
	tk.SetID(11)

	m := NewTicketMapper()
	model := m.ToModel(tk)
	assert.Equal(t, "TKT-20240301-DEADBEEF", model.TicketNumber)
	assert.Nil(t, model.ResolvedAt)
	assert.Nil(t, model.FirstResponseAt)
	require.NotNil(t, model.SLAResponseDue)

	back := m.ToDomain(model)
	assert.Equal(t, tk.ID(), back.ID())
	assert.Equal(t, tk.Number(), back.Number())
	assert.Equal(t, *tk.SLAResolutionDue(), *back.SLAResolutionDue())
	assert.Nil(t, back.ResolvedAt())
	assert.Nil(t, m.ToDomain(nil))
}

func TestUserToDomain_RejectsCorruptRow(t *testing.T) {
	_, err := UserToDomain(&models.UserModel{ID: 4, Username: "x", Email: "bad", FullName: "X", Role: "user"})
	assert.Error(t, err)
}
