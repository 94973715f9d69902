package handlers

import (
	"context"

	catalogusecases "helpdesk/internal/application/catalog/usecases"
	knowledgedto "helpdesk/internal/application/knowledge/dto"
	knowledgeusecases "helpdesk/internal/application/knowledge/usecases"
	reportusecases "helpdesk/internal/application/report/usecases"
	userdto "helpdesk/internal/application/user/dto"
	userusecases "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/shared/authorization"
)

type LoginExecutor interface {
	Execute(ctx context.Context, cmd userusecases.LoginCommand) (*userusecases.LoginResult, error)
}

type GetProfileExecutor interface {
	Execute(ctx context.Context, actor authorization.Actor) (*userdto.UserDTO, error)
}

type UpdateProfileExecutor interface {
	Execute(ctx context.Context, cmd userusecases.UpdateProfileCommand) (*userdto.UserDTO, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, actor authorization.Actor) ([]*userdto.UserDTO, error)
}

type CreateUserExecutor interface {
	Execute(ctx context.Context, cmd userusecases.CreateUserCommand) (*userdto.UserDTO, error)
}

type UpdateUserExecutor interface {
	Execute(ctx context.Context, cmd userusecases.UpdateUserCommand) (*userdto.UserDTO, error)
}

type DeleteUserExecutor interface {
	Execute(ctx context.Context, cmd userusecases.DeleteUserCommand) error
}

type ListStaffExecutor interface {
	Execute(ctx context.Context) ([]userdto.StaffDTO, error)
}

type CatalogLister interface {
	ListCategories(ctx context.Context) ([]catalogusecases.CategoryDTO, error)
	ListPriorities(ctx context.Context) ([]catalogusecases.PriorityDTO, error)
	ListStatuses(ctx context.Context) ([]catalogusecases.StatusDTO, error)
}

type GenerateReportExecutor interface {
	Execute(ctx context.Context, query reportusecases.GenerateReportQuery) (*reportusecases.ReportDTO, error)
}

type SearchArticlesExecutor interface {
	Execute(ctx context.Context, query knowledgeusecases.SearchArticlesQuery) ([]knowledgedto.ArticleDTO, error)
}

type GetArticleExecutor interface {
	Execute(ctx context.Context, actor authorization.Actor, id uint) (*knowledgedto.ArticleDTO, error)
}

type CreateArticleExecutor interface {
	Execute(ctx context.Context, cmd knowledgeusecases.CreateArticleCommand) (*knowledgedto.ArticleDTO, error)
}
