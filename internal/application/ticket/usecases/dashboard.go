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
)

type DashboardUseCase struct {
	ticketRepo ticket.Repository
	checker    PermissionChecker
	logger     logger.Interface
	now        func() time.Time
}

func NewDashboardUseCase(ticketRepo ticket.Repository, checker PermissionChecker, logger logger.Interface) *DashboardUseCase {
	return &DashboardUseCase{
		ticketRepo: ticketRepo,
		checker:    checker,
		logger:     logger,
		now:        biztime.NowUTC,
	}
}

func (uc *DashboardUseCase) Execute(ctx context.Context, actor authorization.Actor) (*dto.DashboardDTO, error) {
	uc.logger.Infow("executing dashboard use case", "user_id", actor.UserID, "role", actor.Role)

	if err := uc.checker.Require(actor, permission.ResourceTicket, permission.ActionRead); err != nil {
		return nil, err
	}

	now := uc.now()
	scope := requesterScope(uc.checker, actor)

	total, err := uc.ticketRepo.Count(ctx, scope)
	if err != nil {
		uc.logger.Errorw("failed to count tickets", "error", err)
		return nil, err
	}
	counts, err := uc.ticketRepo.CountByStatus(ctx, scope)
	if err != nil {
		uc.logger.Errorw("failed to count tickets by status", "error", err)
		return nil, err
	}
	recent, err := uc.ticketRepo.Recent(ctx, scope, constants.DashboardRecentLimit)
	if err != nil {
		uc.logger.Errorw("failed to load recent tickets", "error", err)
		return nil, err
	}

	result := &dto.DashboardDTO{
		TotalTickets:  total,
		StatusCounts:  dto.ToStatusCountDTOs(counts),
		RecentTickets: dto.ToTicketDTOs(recent, now),
	}

	if scope == nil {
		breaches, err := uc.ticketRepo.ListSLABreaches(ctx, now)
		if err != nil {
			uc.logger.Errorw("failed to load sla breaches", "error", err)
			return nil, err
		}
		result.SLAAlerts = dto.ToTicketDTOs(breaches, now)
	}

	return result, nil
}
