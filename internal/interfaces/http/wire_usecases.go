package http

import (
	"gorm.io/gorm"

	catalogusecases "helpdesk/internal/application/catalog/usecases"
	knowledgeusecases "helpdesk/internal/application/knowledge/usecases"
	appperm "helpdesk/internal/application/permission"
	reportusecases "helpdesk/internal/application/report/usecases"
	ticketusecases "helpdesk/internal/application/ticket/usecases"
	userusecases "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/permission"
	"helpdesk/internal/infrastructure/services"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
)

type allUseCases struct {
	// identity
	login         *userusecases.LoginUseCase
	getProfile    *userusecases.GetProfileUseCase
	updateProfile *userusecases.UpdateProfileUseCase
	listUsers     *userusecases.ListUsersUseCase
	createUser    *userusecases.CreateUserUseCase
	updateUser    *userusecases.UpdateUserUseCase
	deleteUser    *userusecases.DeleteUserUseCase
	listStaff     *userusecases.ListStaffUseCase

	catalog *catalogusecases.CatalogUseCase

	// tickets
	createTicket   *ticketusecases.CreateTicketUseCase
	getTicket      *ticketusecases.GetTicketUseCase
	listTickets    *ticketusecases.ListTicketsUseCase
	editTicket     *ticketusecases.EditTicketUseCase
	changeStatus   *ticketusecases.ChangeStatusUseCase
	assignTicket   *ticketusecases.AssignTicketUseCase
	changePriority *ticketusecases.ChangePriorityUseCase
	deleteTicket   *ticketusecases.DeleteTicketUseCase
	bulkUpdate     *ticketusecases.BulkUpdateUseCase
	dashboard      *ticketusecases.DashboardUseCase

	// collaboration
	addComment        *ticketusecases.AddCommentUseCase
	listComments      *ticketusecases.ListCommentsUseCase
	addTimeEntry      *ticketusecases.AddTimeEntryUseCase
	listTimeEntries   *ticketusecases.ListTimeEntriesUseCase
	listMyTimeEntries *ticketusecases.ListMyTimeEntriesUseCase

	report *reportusecases.GenerateReportUseCase

	searchArticles *knowledgeusecases.SearchArticlesUseCase
	getArticle     *knowledgeusecases.GetArticleUseCase
	createArticle  *knowledgeusecases.CreateArticleUseCase
}

func newUseCases(
	repos *repositories,
	enforcer *permission.Enforcer,
	jwtSvc *auth.JWTService,
	hasher user.PasswordHasher,
	gormDB *gorm.DB,
	log logger.Interface,
) *allUseCases {
	checker := appperm.NewChecker(enforcer, log)
	txMgr := db.NewTransactionManager(gormDB)
	numbers := services.NewTicketNumberGenerator()

	return &allUseCases{
		login:         userusecases.NewLoginUseCase(repos.userRepo, hasher, jwtSvc, log),
		getProfile:    userusecases.NewGetProfileUseCase(repos.userRepo, log),
		updateProfile: userusecases.NewUpdateProfileUseCase(repos.userRepo, hasher, txMgr, log),
		listUsers:     userusecases.NewListUsersUseCase(repos.userRepo, checker, log),
		createUser:    userusecases.NewCreateUserUseCase(repos.userRepo, hasher, checker, txMgr, log),
		updateUser:    userusecases.NewUpdateUserUseCase(repos.userRepo, checker, txMgr, log),
		deleteUser:    userusecases.NewDeleteUserUseCase(repos.userRepo, checker, txMgr, log),
		listStaff:     userusecases.NewListStaffUseCase(repos.userRepo, log),

		catalog: catalogusecases.NewCatalogUseCase(repos.catalogRepo, log),

		createTicket:   ticketusecases.NewCreateTicketUseCase(repos.ticketRepo, repos.catalogRepo, numbers, checker, txMgr, log),
		getTicket:      ticketusecases.NewGetTicketUseCase(repos.ticketRepo, repos.timeRepo, checker, log),
		listTickets:    ticketusecases.NewListTicketsUseCase(repos.ticketRepo, checker, log),
		editTicket:     ticketusecases.NewEditTicketUseCase(repos.ticketRepo, repos.catalogRepo, repos.userRepo, checker, txMgr, log),
		changeStatus:   ticketusecases.NewChangeStatusUseCase(repos.ticketRepo, repos.catalogRepo, checker, txMgr, log),
		assignTicket:   ticketusecases.NewAssignTicketUseCase(repos.ticketRepo, repos.userRepo, checker, txMgr, log),
		changePriority: ticketusecases.NewChangePriorityUseCase(repos.ticketRepo, repos.catalogRepo, checker, txMgr, log),
		deleteTicket:   ticketusecases.NewDeleteTicketUseCase(repos.ticketRepo, checker, txMgr, log),
		bulkUpdate:     ticketusecases.NewBulkUpdateUseCase(repos.ticketRepo, repos.catalogRepo, repos.userRepo, checker, txMgr, log),
		dashboard:      ticketusecases.NewDashboardUseCase(repos.ticketRepo, checker, log),

		addComment:        ticketusecases.NewAddCommentUseCase(repos.ticketRepo, repos.commentRepo, checker, txMgr, log),
		listComments:      ticketusecases.NewListCommentsUseCase(repos.ticketRepo, repos.commentRepo, checker, log),
		addTimeEntry:      ticketusecases.NewAddTimeEntryUseCase(repos.ticketRepo, repos.timeRepo, checker, txMgr, log),
		listTimeEntries:   ticketusecases.NewListTimeEntriesUseCase(repos.ticketRepo, repos.timeRepo, checker, log),
		listMyTimeEntries: ticketusecases.NewListMyTimeEntriesUseCase(repos.timeRepo, log),

		report: reportusecases.NewGenerateReportUseCase(repos.reportRepo, repos.catalogRepo, checker, log),

		searchArticles: knowledgeusecases.NewSearchArticlesUseCase(repos.articleRepo, log),
		getArticle:     knowledgeusecases.NewGetArticleUseCase(repos.articleRepo, markdown.NewRenderer(), log),
		createArticle:  knowledgeusecases.NewCreateArticleUseCase(repos.articleRepo, repos.catalogRepo, checker, txMgr, log),
	}
}
