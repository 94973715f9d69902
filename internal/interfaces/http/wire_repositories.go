package http

import (
	"gorm.io/gorm"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/knowledge"
	"helpdesk/internal/domain/report"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/repository"
)

type repositories struct {
	userRepo    user.Repository
	catalogRepo catalog.Repository
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	timeRepo    ticket.TimeEntryRepository
	articleRepo knowledge.Repository
	reportRepo  report.Repository
}

func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		userRepo:    repository.NewUserRepository(db),
		catalogRepo: repository.NewCatalogRepository(db),
		ticketRepo:  repository.NewTicketRepository(db),
		commentRepo: repository.NewCommentRepository(db),
		timeRepo:    repository.NewTimeEntryRepository(db),
		articleRepo: repository.NewArticleRepository(db),
		reportRepo:  repository.NewReportRepository(db),
	}
}
