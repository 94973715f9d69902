package http

import (
	"helpdesk/internal/interfaces/http/handlers"
	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
)

type allHandlers struct {
	auth     *handlers.AuthHandler
	profile  *handlers.ProfileHandler
	user     *handlers.UserHandler
	catalog  *handlers.CatalogHandler
	report   *handlers.ReportHandler
	article  *handlers.ArticleHandler
	health   *handlers.HealthHandler
	ticket   *tickethandlers.TicketHandler
	activity *tickethandlers.ActivityHandler
}

func newHandlers(ucs *allUseCases, db handlers.Pinger, log logger.Interface) *allHandlers {
	return &allHandlers{
		auth:    handlers.NewAuthHandler(ucs.login, log),
		profile: handlers.NewProfileHandler(ucs.getProfile, ucs.updateProfile, log),
		user: handlers.NewUserHandler(
			ucs.listUsers, ucs.createUser, ucs.updateUser, ucs.deleteUser, ucs.listStaff, log,
		),
		catalog: handlers.NewCatalogHandler(ucs.catalog, log),
		report:  handlers.NewReportHandler(ucs.report, log),
		article: handlers.NewArticleHandler(ucs.searchArticles, ucs.getArticle, ucs.createArticle, log),
		health:  handlers.NewHealthHandler(db, constants.AppVersion, log),
		ticket: tickethandlers.NewTicketHandler(
			ucs.createTicket, ucs.getTicket, ucs.listTickets, ucs.editTicket,
			ucs.changeStatus, ucs.assignTicket, ucs.changePriority, ucs.deleteTicket,
			ucs.bulkUpdate, ucs.dashboard, log,
		),
		activity: tickethandlers.NewActivityHandler(
			ucs.addComment, ucs.listComments, ucs.addTimeEntry, ucs.listTimeEntries, ucs.listMyTimeEntries, log,
		),
	}
}
