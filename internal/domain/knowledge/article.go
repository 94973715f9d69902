package knowledge

import (
	"strings"
	"time"

	"helpdesk/internal/shared/errors"
)

// Article is a knowledge-base entry. Titles are unique.
type Article struct {
	id         uint
	title      string
	content    string
	categoryID *uint
	tags       string
	isPublic   bool
	authorID   uint
	createdAt  time.Time
	updatedAt  time.Time
}

func NewArticle(title, content string, categoryID *uint, tags string, isPublic bool, authorID uint, now time.Time) (*Article, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return nil, errors.NewValidationError("title is required")
	}
	if content == "" {
		return nil, errors.NewValidationError("content is required")
	}
	return &Article{
		title:      title,
		content:    content,
		categoryID: categoryID,
		tags:       normalizeTags(tags),
		isPublic:   isPublic,
		authorID:   authorID,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructArticle(id uint, title, content string, categoryID *uint, tags string, isPublic bool, authorID uint, createdAt, updatedAt time.Time) *Article {
	return &Article{
		id:         id,
		title:      title,
		content:    content,
		categoryID: categoryID,
		tags:       tags,
		isPublic:   isPublic,
		authorID:   authorID,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// normalizeTags trims each comma-separated tag and drops empty ones.
func normalizeTags(tags string) string {
	parts := strings.Split(tags, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}

func (a *Article) ID() uint             { return a.id }
func (a *Article) Title() string        { return a.title }
func (a *Article) Content() string      { return a.content }
func (a *Article) CategoryID() *uint    { return a.categoryID }
func (a *Article) Tags() string         { return a.tags }
func (a *Article) IsPublic() bool       { return a.isPublic }
func (a *Article) AuthorID() uint       { return a.authorID }
func (a *Article) CreatedAt() time.Time { return a.createdAt }
func (a *Article) UpdatedAt() time.Time { return a.updatedAt }

func (a *Article) SetID(id uint) {
	a.id = id
}

// View is an article with its category and author names joined in.
type View struct {
	ID           uint
	Title        string
	Content      string
	CategoryID   *uint
	CategoryName string
	Tags         string
	IsPublic     bool
	AuthorID     uint
	AuthorName   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type SearchFilter struct {
	Query      string
	CategoryID *uint
}
