package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appperm "helpdesk/internal/application/permission"
	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/report"
	"helpdesk/internal/infrastructure/permission"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

var (
	staffActor = authorization.Actor{UserID: 2, Role: authorization.RoleITStaff}
	userActor  = authorization.Actor{UserID: 3, Role: authorization.RoleUser}
	day        = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
)

type mockReportRepository struct {
	TicketsCreatedBetweenFunc func(ctx context.Context, start, end time.Time) ([]report.TicketRow, error)
	TimeByUserBetweenFunc     func(ctx context.Context, start, end time.Time) ([]report.UserTime, error)
}

func (m *mockReportRepository) TicketsCreatedBetween(ctx context.Context, start, end time.Time) ([]report.TicketRow, error) {
	if m.TicketsCreatedBetweenFunc != nil {
		return m.TicketsCreatedBetweenFunc(ctx, start, end)
	}
	return nil, nil
}

func (m *mockReportRepository) TimeByUserBetween(ctx context.Context, start, end time.Time) ([]report.UserTime, error) {
	if m.TimeByUserBetweenFunc != nil {
		return m.TimeByUserBetweenFunc(ctx, start, end)
	}
	return nil, nil
}

type stubCatalog struct {
	catalog.Repository
}

func (stubCatalog) ListStatuses(ctx context.Context) ([]*catalog.Status, error) {
	return []*catalog.Status{
		catalog.ReconstructStatus(1, catalog.StatusNameOpen, ""),
		catalog.ReconstructStatus(5, catalog.StatusNameResolved, ""),
		catalog.ReconstructStatus(6, catalog.StatusNameClosed, ""),
	}, nil
}

func (stubCatalog) ListPriorities(ctx context.Context) ([]*catalog.Priority, error) {
	return []*catalog.Priority{
		catalog.ReconstructPriority(1, "Low", 1, ""),
		catalog.ReconstructPriority(4, "Critical", 4, ""),
	}, nil
}

func newReportUseCase(t *testing.T, repo *mockReportRepository) *GenerateReportUseCase {
	t.Helper()
	enforcer, err := permission.NewEnforcer(nil, logger.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, enforcer.EnsurePolicies(permission.DefaultPolicies()))
	uc := NewGenerateReportUseCase(repo, stubCatalog{}, appperm.NewChecker(enforcer, logger.NewNopLogger()), logger.NewNopLogger())
	uc.now = func() time.Time { return day }
	return uc
}

func ptr(t time.Time) *time.Time { return &t }

func TestGenerateReportUseCase_Execute_Metrics(t *testing.T) {
	rows := []report.TicketRow{
		{
			// resolved in 2 days, within both targets
			ID: 1, StatusID: 5, StatusName: catalog.StatusNameResolved, PriorityID: 1,
			CreatedAt: day, ResolvedAt: ptr(day.Add(48 * time.Hour)), FirstResponseAt: ptr(day.Add(time.Hour)),
			SLAResponseDue: ptr(day.Add(24 * time.Hour)), SLAResolutionDue: ptr(day.Add(72 * time.Hour)),
		},
		{
			// closed in 1 day but responded late
			ID: 2, StatusID: 6, StatusName: catalog.StatusNameClosed, PriorityID: 4,
			CreatedAt: day, ResolvedAt: ptr(day.Add(24 * time.Hour)), FirstResponseAt: ptr(day.Add(2 * time.Hour)),
			SLAResponseDue: ptr(day.Add(time.Hour)), SLAResolutionDue: ptr(day.Add(4 * time.Hour)),
		},
		{
			// still open with nothing recorded counts as compliant
			ID: 3, StatusID: 1, StatusName: catalog.StatusNameOpen, PriorityID: 1,
			CreatedAt: day,
			SLAResponseDue: ptr(day.Add(24 * time.Hour)), SLAResolutionDue: ptr(day.Add(72 * time.Hour)),
		},
		{
			// reopened after resolution keeps resolved_at
			ID: 4, StatusID: 1, StatusName: catalog.StatusNameOpen, PriorityID: 1,
			CreatedAt: day, ResolvedAt: ptr(day.Add(72 * time.Hour)),
			SLAResponseDue: ptr(day.Add(24 * time.Hour)), SLAResolutionDue: ptr(day.Add(72 * time.Hour)),
		},
	}
	var gotStart, gotEnd time.Time
	repo := &mockReportRepository{
		TicketsCreatedBetweenFunc: func(ctx context.Context, start, end time.Time) ([]report.TicketRow, error) {
			gotStart, gotEnd = start, end
			return rows, nil
		},
		TimeByUserBetweenFunc: func(ctx context.Context, start, end time.Time) ([]report.UserTime, error) {
			return []report.UserTime{
				{UserID: 2, FullName: "IT Support Staff", TotalMinutes: 90, TicketCount: 2},
				{UserID: 1, FullName: "System Administrator", TotalMinutes: 30, TicketCount: 1},
			}, nil
		},
	}
	uc := newReportUseCase(t, repo)

	result, err := uc.Execute(context.Background(), GenerateReportQuery{Actor: staffActor, StartDate: "2025-03-01", EndDate: "2025-03-10"})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), gotStart)
	assert.Equal(t, time.Date(2025, 3, 10, 23, 59, 59, 999999999, time.UTC), gotEnd)
	assert.Equal(t, "2025-03-01", result.StartDate)
	assert.Equal(t, "2025-03-10", result.EndDate)

	assert.Equal(t, int64(4), result.TotalTickets)
	assert.Equal(t, int64(2), result.ResolvedTickets)
	require.NotNil(t, result.AvgResolutionDays)
	assert.Equal(t, 2.0, *result.AvgResolutionDays)
	assert.Equal(t, 0.75, result.SLAComplianceRatio)

	assert.Equal(t, []BucketDTO{
		{ID: 1, Name: catalog.StatusNameOpen, Count: 2},
		{ID: 5, Name: catalog.StatusNameResolved, Count: 1},
		{ID: 6, Name: catalog.StatusNameClosed, Count: 1},
	}, result.StatusBreakdown)
	assert.Equal(t, []BucketDTO{
		{ID: 1, Name: "Low", Count: 3},
		{ID: 4, Name: "Critical", Count: 1},
	}, result.PriorityBreakdown)

	require.Len(t, result.TimeSummary, 2)
	assert.Equal(t, 1.5, result.TimeSummary[0].TotalHours)
	assert.Equal(t, int64(120), result.TotalMinutes)
	assert.Len(t, result.RecentTickets, 4)
}

func TestGenerateReportUseCase_Execute_EmptyRange(t *testing.T) {
	uc := newReportUseCase(t, &mockReportRepository{})

	result, err := uc.Execute(context.Background(), GenerateReportQuery{Actor: staffActor, StartDate: "2025-01-01", EndDate: "2025-01-31"})
	require.NoError(t, err)
	assert.Zero(t, result.TotalTickets)
	assert.Zero(t, result.SLAComplianceRatio)
	assert.Nil(t, result.AvgResolutionDays)
	require.Len(t, result.StatusBreakdown, 3)
	for _, b := range result.StatusBreakdown {
		assert.Zero(t, b.Count)
	}
}

func TestGenerateReportUseCase_Execute_RecentIsCapped(t *testing.T) {
	rows := make([]report.TicketRow, 25)
	for i := range rows {
		rows[i] = report.TicketRow{ID: uint(25 - i), Number: fmt.Sprintf("TKT-%d", i), StatusName: catalog.StatusNameOpen, CreatedAt: day}
	}
	repo := &mockReportRepository{
		TicketsCreatedBetweenFunc: func(ctx context.Context, start, end time.Time) ([]report.TicketRow, error) { return rows, nil },
	}
	uc := newReportUseCase(t, repo)

	result, err := uc.Execute(context.Background(), GenerateReportQuery{Actor: staffActor})
	require.NoError(t, err)
	assert.Equal(t, int64(25), result.TotalTickets)
	require.Len(t, result.RecentTickets, 20)
	assert.Equal(t, uint(25), result.RecentTickets[0].ID)
	assert.Equal(t, "2025-02-08", result.StartDate)
	assert.Equal(t, "2025-03-10", result.EndDate)
}

func TestGenerateReportUseCase_Execute_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		query   GenerateReportQuery
		wantErr func(error) bool
	}{
		{name: "user", query: GenerateReportQuery{Actor: userActor}, wantErr: errors.IsForbiddenError},
		{name: "start after end", query: GenerateReportQuery{Actor: staffActor, StartDate: "2025-03-11", EndDate: "2025-03-10"}, wantErr: errors.IsValidationError},
		{name: "bad start", query: GenerateReportQuery{Actor: staffActor, StartDate: "03/01/2025"}, wantErr: errors.IsValidationError},
		{name: "bad end", query: GenerateReportQuery{Actor: staffActor, EndDate: "yesterday"}, wantErr: errors.IsValidationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newReportUseCase(t, &mockReportRepository{})
			_, err := uc.Execute(context.Background(), tt.query)
			assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
		})
	}
}
