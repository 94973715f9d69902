package knowledge

import "context"

type Repository interface {
	Create(ctx context.Context, a *Article) error
	GetView(ctx context.Context, id uint) (*View, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	// Search matches public articles whose title, content or tags contain the
	// query, newest first.
	Search(ctx context.Context, filter SearchFilter) ([]*View, error)
	// DedupTitles keeps the lowest id per title and returns how many rows
	// were removed.
	DedupTitles(ctx context.Context) (int64, error)
}
