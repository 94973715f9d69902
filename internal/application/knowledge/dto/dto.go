package dto

import (
	"strings"
	"time"

	"helpdesk/internal/domain/knowledge"
)

type ArticleDTO struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	ContentHTML  string    `json:"content_html,omitempty"`
	CategoryID   *uint     `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	Tags         []string  `json:"tags"`
	IsPublic     bool      `json:"is_public"`
	AuthorID     uint      `json:"author_id"`
	AuthorName   string    `json:"author_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToArticleDTO(v *knowledge.View) ArticleDTO {
	return ArticleDTO{
		ID:           v.ID,
		Title:        v.Title,
		Content:      v.Content,
		CategoryID:   v.CategoryID,
		CategoryName: v.CategoryName,
		Tags:         SplitTags(v.Tags),
		IsPublic:     v.IsPublic,
		AuthorID:     v.AuthorID,
		AuthorName:   v.AuthorName,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func FromArticle(a *knowledge.Article) ArticleDTO {
	return ArticleDTO{
		ID:         a.ID(),
		Title:      a.Title(),
		Content:    a.Content(),
		CategoryID: a.CategoryID(),
		Tags:       SplitTags(a.Tags()),
		IsPublic:   a.IsPublic(),
		AuthorID:   a.AuthorID(),
		CreatedAt:  a.CreatedAt(),
		UpdatedAt:  a.UpdatedAt(),
	}
}

// SplitTags turns the stored comma list into a slice, never nil.
func SplitTags(tags string) []string {
	out := []string{}
	for _, tag := range strings.Split(tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
