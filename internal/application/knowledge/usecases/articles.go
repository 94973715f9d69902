package usecases

import (
	"context"
	"strings"
	"time"

	"helpdesk/internal/application/knowledge/dto"
	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/knowledge"
	"helpdesk/internal/domain/permission"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/mapper"
	"helpdesk/internal/shared/services/markdown"
)

type PermissionChecker interface {
	Require(actor authorization.Actor, resource permission.Resource, action permission.Action) error
}

type SearchArticlesQuery struct {
	Query      string
	CategoryID *uint
}

type SearchArticlesUseCase struct {
	articleRepo knowledge.Repository
	logger      logger.Interface
}

func NewSearchArticlesUseCase(articleRepo knowledge.Repository, logger logger.Interface) *SearchArticlesUseCase {
	return &SearchArticlesUseCase{articleRepo: articleRepo, logger: logger}
}

func (uc *SearchArticlesUseCase) Execute(ctx context.Context, query SearchArticlesQuery) ([]dto.ArticleDTO, error) {
	uc.logger.Infow("executing search articles use case", "query", query.Query, "category_id", query.CategoryID)

	views, err := uc.articleRepo.Search(ctx, knowledge.SearchFilter{
		Query:      strings.TrimSpace(query.Query),
		CategoryID: query.CategoryID,
	})
	if err != nil {
		uc.logger.Errorw("failed to search articles", "error", err)
		return nil, err
	}
	return mapper.MapSlice(views, dto.ToArticleDTO), nil
}

type GetArticleUseCase struct {
	articleRepo knowledge.Repository
	renderer    markdown.Renderer
	logger      logger.Interface
}

func NewGetArticleUseCase(articleRepo knowledge.Repository, renderer markdown.Renderer, logger logger.Interface) *GetArticleUseCase {
	return &GetArticleUseCase{articleRepo: articleRepo, renderer: renderer, logger: logger}
}

// Execute hides non-public articles from everyone but staff.
func (uc *GetArticleUseCase) Execute(ctx context.Context, actor authorization.Actor, id uint) (*dto.ArticleDTO, error) {
	uc.logger.Infow("executing get article use case", "article_id", id, "user_id", actor.UserID)

	view, err := uc.articleRepo.GetView(ctx, id)
	if err != nil {
		return nil, err
	}
	if !view.IsPublic && !actor.IsStaff() {
		return nil, errors.NewNotFoundError("article not found")
	}

	html, err := uc.renderer.Render(view.Content)
	if err != nil {
		uc.logger.Errorw("failed to render article", "article_id", id, "error", err)
		return nil, errors.NewInternalError("failed to render article")
	}

	result := dto.ToArticleDTO(view)
	result.ContentHTML = html
	return &result, nil
}

type CreateArticleCommand struct {
	Actor      authorization.Actor
	Title      string
	Content    string
	CategoryID *uint
	Tags       string
	IsPublic   bool
}

type CreateArticleUseCase struct {
	articleRepo knowledge.Repository
	catalogRepo catalog.Repository
	checker     PermissionChecker
	txMgr       db.Transactor
	logger      logger.Interface
	now         func() time.Time
}

func NewCreateArticleUseCase(
	articleRepo knowledge.Repository,
	catalogRepo catalog.Repository,
	checker PermissionChecker,
	txMgr db.Transactor,
	logger logger.Interface,
) *CreateArticleUseCase {
	return &CreateArticleUseCase{
		articleRepo: articleRepo,
		catalogRepo: catalogRepo,
		checker:     checker,
		txMgr:       txMgr,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

func (uc *CreateArticleUseCase) Execute(ctx context.Context, cmd CreateArticleCommand) (*dto.ArticleDTO, error) {
	uc.logger.Infow("executing create article use case", "title", cmd.Title, "user_id", cmd.Actor.UserID)

	if err := uc.checker.Require(cmd.Actor, permission.ResourceArticle, permission.ActionCreate); err != nil {
		return nil, err
	}
	if cmd.CategoryID != nil {
		if _, err := uc.catalogRepo.GetCategory(ctx, *cmd.CategoryID); err != nil {
			return nil, err
		}
	}

	article, err := knowledge.NewArticle(cmd.Title, cmd.Content, cmd.CategoryID, cmd.Tags, cmd.IsPublic, cmd.Actor.UserID, uc.now())
	if err != nil {
		return nil, err
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		exists, err := uc.articleRepo.ExistsByTitle(txCtx, article.Title())
		if err != nil {
			return err
		}
		if exists {
			return errors.NewConflictError("an article with this title already exists", article.Title())
		}
		return uc.articleRepo.Create(txCtx, article)
	})
	if err != nil {
		uc.logger.Errorw("failed to create article", "title", cmd.Title, "error", err)
		return nil, err
	}

	uc.logger.Infow("article created successfully", "article_id", article.ID())

	result := dto.FromArticle(article)
	return &result, nil
}
