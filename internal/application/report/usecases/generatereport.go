package usecases

import (
	"context"
	"math"
	"time"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/permission"
	"helpdesk/internal/domain/report"
	"helpdesk/internal/domain/sla"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/mapper"
)

// defaultWindowDays is used when the start date is left out.
const defaultWindowDays = 30

type PermissionChecker interface {
	Require(actor authorization.Actor, resource permission.Resource, action permission.Action) error
}

type GenerateReportQuery struct {
	Actor authorization.Actor
	// StartDate and EndDate are YYYY-MM-DD in the business timezone, both
	// inclusive.
	StartDate string
	EndDate   string
}

type BucketDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type UserTimeDTO struct {
	UserID        uint    `json:"user_id"`
	Username      string  `json:"username"`
	FullName      string  `json:"full_name"`
	TotalMinutes  int64   `json:"total_minutes"`
	TotalHours    float64 `json:"total_hours"`
	TicketsWorked int64   `json:"tickets_worked"`
}

type ReportTicketDTO struct {
	ID            uint       `json:"id"`
	Number        string     `json:"ticket_number"`
	Title         string     `json:"title"`
	StatusName    string     `json:"status_name"`
	PriorityName  string     `json:"priority_name"`
	CategoryName  string     `json:"category_name"`
	RequesterName string     `json:"requester_name"`
	CreatedAt     time.Time  `json:"created_at"`
	ResolvedAt    *time.Time `json:"resolved_at"`
}

type ReportDTO struct {
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	TotalTickets    int64  `json:"total_tickets"`
	ResolvedTickets int64  `json:"resolved_tickets"`
	// AvgResolutionDays is nil when nothing in range has been resolved.
	AvgResolutionDays  *float64          `json:"avg_resolution_days"`
	SLAComplianceRatio float64           `json:"sla_compliance_ratio"`
	StatusBreakdown    []BucketDTO       `json:"status_breakdown"`
	PriorityBreakdown  []BucketDTO       `json:"priority_breakdown"`
	TimeSummary        []UserTimeDTO     `json:"time_summary"`
	TotalMinutes       int64             `json:"total_minutes"`
	RecentTickets      []ReportTicketDTO `json:"recent_tickets"`
}

type GenerateReportUseCase struct {
	reportRepo  report.Repository
	catalogRepo catalog.Repository
	checker     PermissionChecker
	logger      logger.Interface
	now         func() time.Time
}

func NewGenerateReportUseCase(
	reportRepo report.Repository,
	catalogRepo catalog.Repository,
	checker PermissionChecker,
	logger logger.Interface,
) *GenerateReportUseCase {
	return &GenerateReportUseCase{
		reportRepo:  reportRepo,
		catalogRepo: catalogRepo,
		checker:     checker,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

func (uc *GenerateReportUseCase) Execute(ctx context.Context, query GenerateReportQuery) (*ReportDTO, error) {
	uc.logger.Infow("executing generate report use case",
		"user_id", query.Actor.UserID,
		"start_date", query.StartDate,
		"end_date", query.EndDate)

	if err := uc.checker.Require(query.Actor, permission.ResourceReport, permission.ActionRead); err != nil {
		return nil, err
	}

	start, end, err := uc.resolveWindow(query.StartDate, query.EndDate)
	if err != nil {
		return nil, err
	}

	rows, err := uc.reportRepo.TicketsCreatedBetween(ctx, start, end)
	if err != nil {
		uc.logger.Errorw("failed to load tickets for report", "error", err)
		return nil, err
	}
	times, err := uc.reportRepo.TimeByUserBetween(ctx, start, end)
	if err != nil {
		uc.logger.Errorw("failed to load time entries for report", "error", err)
		return nil, err
	}
	statuses, err := uc.catalogRepo.ListStatuses(ctx)
	if err != nil {
		return nil, err
	}
	priorities, err := uc.catalogRepo.ListPriorities(ctx)
	if err != nil {
		return nil, err
	}

	result := summarize(rows)
	result.StartDate = biztime.FormatInBizTimezone(start, biztime.DateLayout)
	result.EndDate = biztime.FormatInBizTimezone(end, biztime.DateLayout)
	result.StatusBreakdown = statusBuckets(statuses, rows)
	result.PriorityBreakdown = priorityBuckets(priorities, rows)
	result.TimeSummary = mapper.MapSlice(times, toUserTimeDTO)
	for _, ut := range times {
		result.TotalMinutes += ut.TotalMinutes
	}

	recent := rows
	if len(recent) > constants.ReportRecentLimit {
		recent = recent[:constants.ReportRecentLimit]
	}
	result.RecentTickets = mapper.MapSlice(recent, toReportTicketDTO)

	return result, nil
}

// resolveWindow turns the inclusive date strings into a UTC [start, end]
// range covering whole business days.
func (uc *GenerateReportUseCase) resolveWindow(startDate, endDate string) (time.Time, time.Time, error) {
	today := biztime.StartOfDayUTC(uc.now())

	end := today
	if endDate != "" {
		parsed, err := biztime.ParseDateInBizTimezone(endDate)
		if err != nil {
			return time.Time{}, time.Time{}, errors.NewValidationError("end date must be YYYY-MM-DD", endDate)
		}
		end = parsed
	}

	start := end.AddDate(0, 0, -defaultWindowDays)
	if startDate != "" {
		parsed, err := biztime.ParseDateInBizTimezone(startDate)
		if err != nil {
			return time.Time{}, time.Time{}, errors.NewValidationError("start date must be YYYY-MM-DD", startDate)
		}
		start = parsed
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, errors.NewValidationError("start date must not be after end date")
	}
	return biztime.StartOfDayUTC(start), biztime.EndOfDayUTC(end), nil
}

func summarize(rows []report.TicketRow) *ReportDTO {
	result := &ReportDTO{TotalTickets: int64(len(rows))}

	var compliant int64
	var resolvedCount int
	var resolvedDays float64
	for _, row := range rows {
		if catalog.IsTerminalStatusName(row.StatusName) {
			result.ResolvedTickets++
		}
		if row.ResolvedAt != nil {
			resolvedCount++
			resolvedDays += row.ResolvedAt.Sub(row.CreatedAt).Hours() / 24
		}
		if sla.IsCompliant(row.Deadlines(), row.FirstResponseAt, row.ResolvedAt) {
			compliant++
		}
	}

	if resolvedCount > 0 {
		avg := round2(resolvedDays / float64(resolvedCount))
		result.AvgResolutionDays = &avg
	}
	if result.TotalTickets > 0 {
		result.SLAComplianceRatio = round2(float64(compliant) / float64(result.TotalTickets))
	}
	return result
}

func statusBuckets(statuses []*catalog.Status, rows []report.TicketRow) []BucketDTO {
	counts := make(map[uint]int64, len(statuses))
	for _, row := range rows {
		counts[row.StatusID]++
	}
	return mapper.MapSlice(statuses, func(s *catalog.Status) BucketDTO {
		return BucketDTO{ID: s.ID(), Name: s.Name(), Count: counts[s.ID()]}
	})
}

func priorityBuckets(priorities []*catalog.Priority, rows []report.TicketRow) []BucketDTO {
	counts := make(map[uint]int64, len(priorities))
	for _, row := range rows {
		counts[row.PriorityID]++
	}
	return mapper.MapSlice(priorities, func(p *catalog.Priority) BucketDTO {
		return BucketDTO{ID: p.ID(), Name: p.Name(), Count: counts[p.ID()]}
	})
}

func toUserTimeDTO(ut report.UserTime) UserTimeDTO {
	return UserTimeDTO{
		UserID:        ut.UserID,
		Username:      ut.Username,
		FullName:      ut.FullName,
		TotalMinutes:  ut.TotalMinutes,
		TotalHours:    round2(float64(ut.TotalMinutes) / 60),
		TicketsWorked: ut.TicketCount,
	}
}

func toReportTicketDTO(row report.TicketRow) ReportTicketDTO {
	return ReportTicketDTO{
		ID:            row.ID,
		Number:        row.Number,
		Title:         row.Title,
		StatusName:    row.StatusName,
		PriorityName:  row.PriorityName,
		CategoryName:  row.CategoryName,
		RequesterName: row.RequesterName,
		CreatedAt:     row.CreatedAt,
		ResolvedAt:    row.ResolvedAt,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
