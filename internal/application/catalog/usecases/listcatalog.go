// Package usecases serves the reference lists used by forms and filters.
package usecases

import (
	"context"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/sla"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/mapper"
)

type CategoryDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type PriorityDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
	Color string `json:"color"`
	// Response and resolution targets in hours; zero when the level has no
	// policy.
	ResponseHours   int `json:"response_hours"`
	ResolutionHours int `json:"resolution_hours"`
}

type StatusDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsTerminal  bool   `json:"is_terminal"`
}

type CatalogUseCase struct {
	catalogRepo catalog.Repository
	logger      logger.Interface
}

func NewCatalogUseCase(catalogRepo catalog.Repository, logger logger.Interface) *CatalogUseCase {
	return &CatalogUseCase{catalogRepo: catalogRepo, logger: logger}
}

func (uc *CatalogUseCase) ListCategories(ctx context.Context) ([]CategoryDTO, error) {
	items, err := uc.catalogRepo.ListCategories(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err)
		return nil, err
	}
	return mapper.MapSlice(items, func(c *catalog.Category) CategoryDTO {
		return CategoryDTO{ID: c.ID(), Name: c.Name(), Description: c.Description()}
	}), nil
}

func (uc *CatalogUseCase) ListPriorities(ctx context.Context) ([]PriorityDTO, error) {
	items, err := uc.catalogRepo.ListPriorities(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list priorities", "error", err)
		return nil, err
	}
	return mapper.MapSlice(items, func(p *catalog.Priority) PriorityDTO {
		out := PriorityDTO{ID: p.ID(), Name: p.Name(), Level: p.Level(), Color: p.Color()}
		if policy, ok := sla.PolicyFor(p.Level()); ok {
			out.ResponseHours = policy.ResponseHours
			out.ResolutionHours = policy.ResolutionHours
		}
		return out
	}), nil
}

func (uc *CatalogUseCase) ListStatuses(ctx context.Context) ([]StatusDTO, error) {
	items, err := uc.catalogRepo.ListStatuses(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list statuses", "error", err)
		return nil, err
	}
	return mapper.MapSlice(items, func(s *catalog.Status) StatusDTO {
		return StatusDTO{ID: s.ID(), Name: s.Name(), Description: s.Description(), IsTerminal: s.IsTerminal()}
	}), nil
}
