package usecases

import (
	"context"
	"time"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/permission"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/mapper"
)

type AddTimeEntryCommand struct {
	Actor       authorization.Actor
	TicketID    uint
	Description string
	Minutes     int
}

// AddTimeEntryUseCase lets any authenticated actor who can see the ticket log
// time against it. The ticket itself is not modified.
type AddTimeEntryUseCase struct {
	ticketRepo ticket.Repository
	timeRepo   ticket.TimeEntryRepository
	checker    PermissionChecker
	txMgr      db.Transactor
	logger     logger.Interface
	now        func() time.Time
}

func NewAddTimeEntryUseCase(
	ticketRepo ticket.Repository,
	timeRepo ticket.TimeEntryRepository,
	checker PermissionChecker,
	txMgr db.Transactor,
	logger logger.Interface,
) *AddTimeEntryUseCase {
	return &AddTimeEntryUseCase{
		ticketRepo: ticketRepo,
		timeRepo:   timeRepo,
		checker:    checker,
		txMgr:      txMgr,
		logger:     logger,
		now:        biztime.NowUTC,
	}
}

func (uc *AddTimeEntryUseCase) Execute(ctx context.Context, cmd AddTimeEntryCommand) (*dto.TimeEntryDTO, error) {
	uc.logger.Infow("executing add time entry use case",
		"ticket_id", cmd.TicketID,
		"user_id", cmd.Actor.UserID,
		"minutes", cmd.Minutes)

	if err := uc.checker.Require(cmd.Actor, permission.ResourceTimeEntry, permission.ActionCreate); err != nil {
		return nil, err
	}

	var entry *ticket.TimeEntry
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}
		if err := ensureTicketVisible(uc.checker, cmd.Actor, t); err != nil {
			return err
		}
		entry, err = ticket.NewTimeEntry(t.ID(), cmd.Actor.UserID, cmd.Description, cmd.Minutes, uc.now())
		if err != nil {
			return err
		}
		return uc.timeRepo.Create(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("failed to add time entry", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	result := dto.FromTimeEntry(entry)
	return &result, nil
}

type ListTimeEntriesQuery struct {
	Actor    authorization.Actor
	TicketID uint
}

type ListTimeEntriesResult struct {
	Entries      []dto.TimeEntryDTO
	TotalMinutes int64
}

type ListTimeEntriesUseCase struct {
	ticketRepo ticket.Repository
	timeRepo   ticket.TimeEntryRepository
	checker    PermissionChecker
	logger     logger.Interface
}

func NewListTimeEntriesUseCase(
	ticketRepo ticket.Repository,
	timeRepo ticket.TimeEntryRepository,
	checker PermissionChecker,
	logger logger.Interface,
) *ListTimeEntriesUseCase {
	return &ListTimeEntriesUseCase{
		ticketRepo: ticketRepo,
		timeRepo:   timeRepo,
		checker:    checker,
		logger:     logger,
	}
}

func (uc *ListTimeEntriesUseCase) Execute(ctx context.Context, query ListTimeEntriesQuery) (*ListTimeEntriesResult, error) {
	uc.logger.Infow("executing list time entries use case", "ticket_id", query.TicketID, "user_id", query.Actor.UserID)

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}
	if err := ensureTicketVisible(uc.checker, query.Actor, t); err != nil {
		return nil, err
	}

	entries, err := uc.timeRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list time entries", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}
	total, err := uc.timeRepo.TotalMinutesByTicket(ctx, t.ID())
	if err != nil {
		return nil, err
	}

	return &ListTimeEntriesResult{
		Entries:      mapper.MapSlice(entries, dto.ToTimeEntryDTO),
		TotalMinutes: total,
	}, nil
}

type ListMyTimeEntriesUseCase struct {
	timeRepo ticket.TimeEntryRepository
	logger   logger.Interface
}

func NewListMyTimeEntriesUseCase(timeRepo ticket.TimeEntryRepository, logger logger.Interface) *ListMyTimeEntriesUseCase {
	return &ListMyTimeEntriesUseCase{timeRepo: timeRepo, logger: logger}
}

func (uc *ListMyTimeEntriesUseCase) Execute(ctx context.Context, actor authorization.Actor) ([]dto.TimeEntryDTO, error) {
	uc.logger.Infow("executing list my time entries use case", "user_id", actor.UserID)

	entries, err := uc.timeRepo.ListByUser(ctx, actor.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list time entries for user", "user_id", actor.UserID, "error", err)
		return nil, err
	}
	return mapper.MapSlice(entries, dto.ToTimeEntryDTO), nil
}
