package usecases

import (
	"context"
	"time"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/permission"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/query"
)

type ListTicketsQuery struct {
	Actor         authorization.Actor
	StatusID      *uint
	PriorityID    *uint
	CategoryID    *uint
	ShowCompleted bool
	Page          int
	PageSize      int
}

type ListTicketsResult struct {
	Tickets  []dto.TicketDTO
	Total    int64
	Page     int
	PageSize int
	// HiddenCompleted counts the terminal tickets left out of this listing.
	HiddenCompleted int64
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	checker    PermissionChecker
	logger     logger.Interface
	now        func() time.Time
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	checker PermissionChecker,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		checker:    checker,
		logger:     logger,
		now:        biztime.NowUTC,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, q ListTicketsQuery) (*ListTicketsResult, error) {
	uc.logger.Infow("executing list tickets use case",
		"user_id", q.Actor.UserID,
		"page", q.Page,
		"page_size", q.PageSize)

	if err := uc.checker.Require(q.Actor, permission.ResourceTicket, permission.ActionRead); err != nil {
		return nil, err
	}

	if q.Page < 1 {
		q.Page = constants.DefaultPage
	}
	if q.PageSize <= 0 {
		q.PageSize = constants.DefaultPageSize
	}
	if q.PageSize > constants.MaxPageSize {
		q.PageSize = constants.MaxPageSize
	}

	scope := requesterScope(uc.checker, q.Actor)
	filter := ticket.Filter{
		PageFilter:    query.PageFilter{Page: q.Page, PageSize: q.PageSize},
		RequesterID:   scope,
		StatusID:      q.StatusID,
		PriorityID:    q.PriorityID,
		CategoryID:    q.CategoryID,
		ShowCompleted: q.ShowCompleted,
	}

	items, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	var hidden int64
	if !q.ShowCompleted && q.StatusID == nil {
		hidden, err = uc.ticketRepo.CountCompleted(ctx, scope)
		if err != nil {
			uc.logger.Errorw("failed to count completed tickets", "error", err)
			return nil, err
		}
	}

	return &ListTicketsResult{
		Tickets:         dto.ToTicketDTOs(items, uc.now()),
		Total:           total,
		Page:            q.Page,
		PageSize:        q.PageSize,
		HiddenCompleted: hidden,
	}, nil
}
