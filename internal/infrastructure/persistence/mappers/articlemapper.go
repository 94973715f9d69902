package mappers

import (
	"helpdesk/internal/domain/knowledge"
	"helpdesk/internal/infrastructure/persistence/models"
)

func ArticleToModel(a *knowledge.Article) *models.KnowledgeArticleModel {
	return &models.KnowledgeArticleModel{
		ID:         a.ID(),
		Title:      a.Title(),
		Content:    a.Content(),
		CategoryID: a.CategoryID(),
		Tags:       a.Tags(),
		IsPublic:   a.IsPublic(),
		AuthorID:   a.AuthorID(),
		CreatedAt:  a.CreatedAt(),
		UpdatedAt:  a.UpdatedAt(),
	}
}
