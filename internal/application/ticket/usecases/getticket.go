package usecases

import (
	"context"
	"time"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/permission"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	Actor    authorization.Actor
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	timeRepo   ticket.TimeEntryRepository
	checker    PermissionChecker
	logger     logger.Interface
	now        func() time.Time
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	timeRepo ticket.TimeEntryRepository,
	checker PermissionChecker,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		timeRepo:   timeRepo,
		checker:    checker,
		logger:     logger,
		now:        biztime.NowUTC,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error) {
	uc.logger.Infow("executing get ticket use case", "ticket_id", query.TicketID, "user_id", query.Actor.UserID)

	if err := uc.checker.Require(query.Actor, permission.ResourceTicket, permission.ActionRead); err != nil {
		return nil, err
	}

	details, err := uc.ticketRepo.GetDetails(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}
	if err := ensureVisible(uc.checker, query.Actor, details.RequesterID); err != nil {
		uc.logger.Warnw("ticket access denied", "ticket_id", query.TicketID, "user_id", query.Actor.UserID)
		return nil, err
	}

	total, err := uc.timeRepo.TotalMinutesByTicket(ctx, details.ID)
	if err != nil {
		uc.logger.Errorw("failed to sum ticket minutes", "ticket_id", details.ID, "error", err)
		return nil, err
	}

	return &dto.TicketDetailDTO{
		TicketDTO:    dto.ToTicketDTO(details, uc.now()),
		TotalMinutes: total,
	}, nil
}
