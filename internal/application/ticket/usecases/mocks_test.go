package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	appperm "helpdesk/internal/application/permission"
	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/permission"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

var (
	testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	adminActor = authorization.Actor{UserID: 1, Role: authorization.RoleAdmin}
	staffActor = authorization.Actor{UserID: 2, Role: authorization.RoleITStaff}
	userActor  = authorization.Actor{UserID: 3, Role: authorization.RoleUser}
	otherUser  = authorization.Actor{UserID: 4, Role: authorization.RoleUser}

	statusOpen       = catalog.ReconstructStatus(1, catalog.StatusNameOpen, "")
	statusInProgress = catalog.ReconstructStatus(2, catalog.StatusNameInProgress, "")
	statusResolved   = catalog.ReconstructStatus(5, catalog.StatusNameResolved, "")
	priorityLow      = catalog.ReconstructPriority(1, "Low", 1, "#28a745")
	priorityCritical = catalog.ReconstructPriority(4, "Critical", 4, "#dc3545")
	categoryNetwork  = catalog.ReconstructCategory(3, "Network", "")
)

func newTestChecker(t *testing.T) *appperm.Checker {
	t.Helper()
	enforcer, err := permission.NewEnforcer(nil, logger.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, enforcer.EnsurePolicies(permission.DefaultPolicies()))
	return appperm.NewChecker(enforcer, logger.NewNopLogger())
}

func fixedNow() time.Time { return testNow }

// existingTicket is an open Low ticket owned by requesterID.
func existingTicket(id, requesterID uint) *ticket.Ticket {
	created := testNow.Add(-48 * time.Hour)
	responseDue := created.Add(24 * time.Hour)
	resolutionDue := created.Add(72 * time.Hour)
	return ticket.ReconstructTicket(id, "TKT-20250308-0000000A", "VPN drops", "Disconnects hourly",
		statusOpen.ID(), priorityLow.ID(), categoryNetwork.ID(), requesterID, nil,
		created, created, nil, &responseDue, &resolutionDue, nil, nil)
}

func detailsOf(t *ticket.Ticket) *ticket.Details {
	return &ticket.Details{
		ID:               t.ID(),
		Number:           t.Number(),
		Title:            t.Title(),
		Description:      t.Description(),
		StatusID:         t.StatusID(),
		StatusName:       catalog.StatusNameOpen,
		PriorityID:       t.PriorityID(),
		CategoryID:       t.CategoryID(),
		RequesterID:      t.RequesterID(),
		AssigneeID:       t.AssigneeID(),
		CreatedAt:        t.CreatedAt(),
		UpdatedAt:        t.UpdatedAt(),
		ResolvedAt:       t.ResolvedAt(),
		SLAResponseDue:   t.SLAResponseDue(),
		SLAResolutionDue: t.SLAResolutionDue(),
		FirstResponseAt:  t.FirstResponseAt(),
	}
}

func staffUser(t *testing.T, id uint, role authorization.UserRole) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(id, user.Profile{
		Username: "member",
		Email:    "member@company.com",
		FullName: "Team Member",
		Role:     role,
	}, "hash", testNow)
	require.NoError(t, err)
	return u
}

type fakeTransactor struct {
	calls int
}

func (f *fakeTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type mockNumberGenerator struct {
	GenerateFunc func(now time.Time) string
}

func (m *mockNumberGenerator) Generate(now time.Time) string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(now)
	}
	return "TKT-20250310-ABCDEF01"
}

type mockTicketRepository struct {
	CreateFunc          func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc          func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc         func(ctx context.Context, id uint) (*ticket.Ticket, error)
	GetByIDsFunc        func(ctx context.Context, ids []uint) ([]*ticket.Ticket, error)
	ExistsByNumberFunc  func(ctx context.Context, number string) (bool, error)
	DeleteFunc          func(ctx context.Context, id uint) error
	GetDetailsFunc      func(ctx context.Context, id uint) (*ticket.Details, error)
	ListFunc            func(ctx context.Context, filter ticket.Filter) ([]*ticket.Details, int64, error)
	CountFunc           func(ctx context.Context, requesterID *uint) (int64, error)
	CountCompletedFunc  func(ctx context.Context, requesterID *uint) (int64, error)
	CountByStatusFunc   func(ctx context.Context, requesterID *uint) ([]ticket.StatusCount, error)
	ListSLABreachesFunc func(ctx context.Context, now time.Time) ([]*ticket.Details, error)
	RecentFunc          func(ctx context.Context, requesterID *uint, limit int) ([]*ticket.Details, error)
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("ticket not found")
}

func (m *mockTicketRepository) GetByIDs(ctx context.Context, ids []uint) ([]*ticket.Ticket, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockTicketRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	if m.ExistsByNumberFunc != nil {
		return m.ExistsByNumberFunc(ctx, number)
	}
	return false, nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketRepository) GetDetails(ctx context.Context, id uint) (*ticket.Details, error) {
	if m.GetDetailsFunc != nil {
		return m.GetDetailsFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("ticket not found")
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Details, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) Count(ctx context.Context, requesterID *uint) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, requesterID)
	}
	return 0, nil
}

func (m *mockTicketRepository) CountCompleted(ctx context.Context, requesterID *uint) (int64, error) {
	if m.CountCompletedFunc != nil {
		return m.CountCompletedFunc(ctx, requesterID)
	}
	return 0, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context, requesterID *uint) ([]ticket.StatusCount, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, requesterID)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListSLABreaches(ctx context.Context, now time.Time) ([]*ticket.Details, error) {
	if m.ListSLABreachesFunc != nil {
		return m.ListSLABreachesFunc(ctx, now)
	}
	return nil, nil
}

func (m *mockTicketRepository) Recent(ctx context.Context, requesterID *uint, limit int) ([]*ticket.Details, error) {
	if m.RecentFunc != nil {
		return m.RecentFunc(ctx, requesterID, limit)
	}
	return nil, nil
}

type mockCommentRepository struct {
	CreateFunc       func(ctx context.Context, c *ticket.Comment) error
	ListByTicketFunc func(ctx context.Context, ticketID uint, includeInternal bool) ([]*ticket.CommentView, error)
}

func (m *mockCommentRepository) Create(ctx context.Context, c *ticket.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) ListByTicket(ctx context.Context, ticketID uint, includeInternal bool) ([]*ticket.CommentView, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID, includeInternal)
	}
	return nil, nil
}

type mockTimeEntryRepository struct {
	CreateFunc               func(ctx context.Context, e *ticket.TimeEntry) error
	ListByTicketFunc         func(ctx context.Context, ticketID uint) ([]*ticket.TimeEntryView, error)
	ListByUserFunc           func(ctx context.Context, userID uint) ([]*ticket.TimeEntryView, error)
	TotalMinutesByTicketFunc func(ctx context.Context, ticketID uint) (int64, error)
	TotalMinutesByUserFunc   func(ctx context.Context, userID uint, start, end time.Time) (int64, error)
}

func (m *mockTimeEntryRepository) Create(ctx context.Context, e *ticket.TimeEntry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, e)
	}
	return nil
}

func (m *mockTimeEntryRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.TimeEntryView, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTimeEntryRepository) ListByUser(ctx context.Context, userID uint) ([]*ticket.TimeEntryView, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockTimeEntryRepository) TotalMinutesByTicket(ctx context.Context, ticketID uint) (int64, error) {
	if m.TotalMinutesByTicketFunc != nil {
		return m.TotalMinutesByTicketFunc(ctx, ticketID)
	}
	return 0, nil
}

func (m *mockTimeEntryRepository) TotalMinutesByUser(ctx context.Context, userID uint, start, end time.Time) (int64, error) {
	if m.TotalMinutesByUserFunc != nil {
		return m.TotalMinutesByUserFunc(ctx, userID, start, end)
	}
	return 0, nil
}

// mockCatalogRepository serves the fixture rows above unless a Func overrides.
type mockCatalogRepository struct {
	GetStatusByNameFunc func(ctx context.Context, name string) (*catalog.Status, error)
}

func (m *mockCatalogRepository) ListCategories(ctx context.Context) ([]*catalog.Category, error) {
	return []*catalog.Category{categoryNetwork}, nil
}

func (m *mockCatalogRepository) ListPriorities(ctx context.Context) ([]*catalog.Priority, error) {
	return []*catalog.Priority{priorityLow, priorityCritical}, nil
}

func (m *mockCatalogRepository) ListStatuses(ctx context.Context) ([]*catalog.Status, error) {
	return []*catalog.Status{statusOpen, statusInProgress, statusResolved}, nil
}

func (m *mockCatalogRepository) GetCategory(ctx context.Context, id uint) (*catalog.Category, error) {
	if id == categoryNetwork.ID() {
		return categoryNetwork, nil
	}
	return nil, errors.NewNotFoundError("category not found")
}

func (m *mockCatalogRepository) GetPriority(ctx context.Context, id uint) (*catalog.Priority, error) {
	switch id {
	case priorityLow.ID():
		return priorityLow, nil
	case priorityCritical.ID():
		return priorityCritical, nil
	}
	return nil, errors.NewNotFoundError("priority not found")
}

func (m *mockCatalogRepository) GetStatus(ctx context.Context, id uint) (*catalog.Status, error) {
	for _, s := range []*catalog.Status{statusOpen, statusInProgress, statusResolved} {
		if s.ID() == id {
			return s, nil
		}
	}
	return nil, errors.NewNotFoundError("status not found")
}

func (m *mockCatalogRepository) GetStatusByName(ctx context.Context, name string) (*catalog.Status, error) {
	if m.GetStatusByNameFunc != nil {
		return m.GetStatusByNameFunc(ctx, name)
	}
	for _, s := range []*catalog.Status{statusOpen, statusInProgress, statusResolved} {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, errors.NewNotFoundError("status not found")
}

type mockUserRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) Delete(ctx context.Context, id uint) error      { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string, excludeID uint) (bool, error) {
	return false, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	return false, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error)      { return nil, nil }
func (m *mockUserRepository) ListStaff(ctx context.Context) ([]*user.User, error) { return nil, nil }

func (m *mockUserRepository) HasReferences(ctx context.Context, id uint) (bool, error) {
	return false, nil
}

func (m *mockUserRepository) GetStats(ctx context.Context, ids []uint) (map[uint]user.Stats, error) {
	return map[uint]user.Stats{}, nil
}
