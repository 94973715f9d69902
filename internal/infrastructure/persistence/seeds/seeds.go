// Package seeds inserts reference rows, bootstrap accounts and sample
// articles. Every insert is skipped when a matching row already exists.
package seeds

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/logger"
)

//go:embed seed.yaml
var seedYAML []byte

type Data struct {
	Categories []CategorySeed `yaml:"categories"`
	Priorities []PrioritySeed `yaml:"priorities"`
	Statuses   []StatusSeed   `yaml:"statuses"`
	Users      []UserSeed     `yaml:"users"`
	Articles   []ArticleSeed  `yaml:"articles"`
}

type CategorySeed struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type PrioritySeed struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
	Color string `yaml:"color"`
}

type StatusSeed struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type UserSeed struct {
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
	Email      string `yaml:"email"`
	FullName   string `yaml:"full_name"`
	Role       string `yaml:"role"`
	Department string `yaml:"department"`
}

type ArticleSeed struct {
	Title    string `yaml:"title"`
	Category string `yaml:"category"`
	Tags     string `yaml:"tags"`
	Author   string `yaml:"author"`
	Content  string `yaml:"content"`
}

// Load parses the embedded seed file.
func Load() (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(seedYAML, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	return &data, nil
}

// ArticleDeduper removes duplicate article titles, keeping the lowest id.
type ArticleDeduper interface {
	DedupTitles(ctx context.Context) (int64, error)
}

type Seeder struct {
	db      *gorm.DB
	hasher  user.PasswordHasher
	deduper ArticleDeduper
	logger  logger.Interface
}

func NewSeeder(db *gorm.DB, hasher user.PasswordHasher, deduper ArticleDeduper, log logger.Interface) *Seeder {
	return &Seeder{
		db:      db,
		hasher:  hasher,
		deduper: deduper,
		logger:  log.With("component", "seeds"),
	}
}

// Run seeds everything and then dedups article titles. Safe to call on every
// startup.
func (s *Seeder) Run(ctx context.Context) error {
	data, err := Load()
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := seedCatalog(tx, data); err != nil {
			return err
		}
		if err := s.seedUsers(tx, data.Users); err != nil {
			return err
		}
		return seedArticles(tx, data.Articles)
	})
	if err != nil {
		s.logger.Errorw("seeding failed", "error", err)
		return err
	}

	removed, err := s.deduper.DedupTitles(ctx)
	if err != nil {
		s.logger.Errorw("article dedup failed", "error", err)
		return err
	}
	if removed > 0 {
		s.logger.Warnw("removed duplicate knowledge base articles", "count", removed)
	}

	s.logger.Infow("seed data ensured",
		"categories", len(data.Categories),
		"priorities", len(data.Priorities),
		"statuses", len(data.Statuses),
		"users", len(data.Users),
		"articles", len(data.Articles))
	return nil
}

func seedCatalog(tx *gorm.DB, data *Data) error {
	for _, c := range data.Categories {
		row := models.CategoryModel{Name: c.Name, Description: c.Description}
		if err := tx.Where(models.CategoryModel{Name: c.Name}).FirstOrCreate(&row).Error; err != nil {
			return fmt.Errorf("failed to seed category %s: %w", c.Name, err)
		}
	}
	for _, p := range data.Priorities {
		row := models.PriorityModel{Name: p.Name, Level: p.Level, Color: p.Color}
		if err := tx.Where(models.PriorityModel{Name: p.Name}).FirstOrCreate(&row).Error; err != nil {
			return fmt.Errorf("failed to seed priority %s: %w", p.Name, err)
		}
	}
	for _, st := range data.Statuses {
		row := models.StatusModel{Name: st.Name, Description: st.Description}
		if err := tx.Where(models.StatusModel{Name: st.Name}).FirstOrCreate(&row).Error; err != nil {
			return fmt.Errorf("failed to seed status %s: %w", st.Name, err)
		}
	}
	return nil
}

func (s *Seeder) seedUsers(tx *gorm.DB, users []UserSeed) error {
	for _, u := range users {
		var count int64
		if err := tx.Model(&models.UserModel{}).Where("username = ?", u.Username).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check user %s: %w", u.Username, err)
		}
		if count > 0 {
			continue
		}

		hash, err := s.hasher.Hash(u.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", u.Username, err)
		}
		row := models.UserModel{
			Username:     u.Username,
			PasswordHash: hash,
			Email:        strings.ToLower(u.Email),
			FullName:     u.FullName,
			Role:         u.Role,
			Department:   u.Department,
			CreatedAt:    biztime.NowUTC(),
		}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.Username, err)
		}
	}
	return nil
}

func seedArticles(tx *gorm.DB, articles []ArticleSeed) error {
	for _, a := range articles {
		var count int64
		if err := tx.Model(&models.KnowledgeArticleModel{}).Where("title = ?", a.Title).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check article %q: %w", a.Title, err)
		}
		if count > 0 {
			continue
		}

		var category models.CategoryModel
		var categoryID *uint
		if err := tx.Where("name = ?", a.Category).Limit(1).Find(&category).Error; err != nil {
			return fmt.Errorf("failed to resolve category %s: %w", a.Category, err)
		}
		if category.ID != 0 {
			categoryID = &category.ID
		}

		var author models.UserModel
		if err := tx.Where("username = ?", a.Author).First(&author).Error; err != nil {
			return fmt.Errorf("failed to resolve author %s: %w", a.Author, err)
		}

		now := biztime.NowUTC()
		row := models.KnowledgeArticleModel{
			Title:      a.Title,
			Content:    strings.TrimSpace(a.Content),
			CategoryID: categoryID,
			Tags:       a.Tags,
			IsPublic:   true,
			AuthorID:   author.ID,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to seed article %q: %w", a.Title, err)
		}
	}
	return nil
}
