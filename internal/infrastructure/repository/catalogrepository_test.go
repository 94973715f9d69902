package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/shared/errors"
)

func TestCatalogRepository(t *testing.T) {
	repo := NewCatalogRepository(seededDB(t))
	ctx := context.Background()

	categories, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 7)
	assert.Equal(t, "Account", categories[0].Name())
	assert.Equal(t, catalog.CategoryNameOther, categories[6].Name())

	priorities, err := repo.ListPriorities(ctx)
	require.NoError(t, err)
	require.Len(t, priorities, 4)
	assert.Equal(t, 1, priorities[0].Level())
	assert.Equal(t, "#dc3545", priorities[3].Color())

	statuses, err := repo.ListStatuses(ctx)
	require.NoError(t, err)
	require.Len(t, statuses, 6)
	assert.Equal(t, catalog.StatusNameOpen, statuses[0].Name())

	open, err := repo.GetStatusByName(ctx, catalog.StatusNameOpen)
	require.NoError(t, err)
	assert.Equal(t, statusOpen, open.ID())
	assert.False(t, open.IsTerminal())

	closed, err := repo.GetStatus(ctx, statusClosed)
	require.NoError(t, err)
	assert.True(t, closed.IsTerminal())

	_, err = repo.GetCategory(ctx, 99)
	assert.True(t, errors.IsNotFoundError(err))
	_, err = repo.GetPriority(ctx, 99)
	assert.True(t, errors.IsNotFoundError(err))
	_, err = repo.GetStatusByName(ctx, "Nope")
	assert.True(t, errors.IsNotFoundError(err))
}
