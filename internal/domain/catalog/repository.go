package catalog

import "context"

type Repository interface {
	// ListCategories orders by name with Other last.
	ListCategories(ctx context.Context) ([]*Category, error)
	// ListPriorities orders by level.
	ListPriorities(ctx context.Context) ([]*Priority, error)
	// ListStatuses orders by id.
	ListStatuses(ctx context.Context) ([]*Status, error)
	GetCategory(ctx context.Context, id uint) (*Category, error)
	GetPriority(ctx context.Context, id uint) (*Priority, error)
	GetStatus(ctx context.Context, id uint) (*Status, error)
	GetStatusByName(ctx context.Context, name string) (*Status, error)
}
