package mappers

import (
	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/infrastructure/persistence/models"
)

func CategoryToDomain(m models.CategoryModel) *catalog.Category {
	return catalog.ReconstructCategory(m.ID, m.Name, m.Description)
}

func PriorityToDomain(m models.PriorityModel) *catalog.Priority {
	return catalog.ReconstructPriority(m.ID, m.Name, m.Level, m.Color)
}

func StatusToDomain(m models.StatusModel) *catalog.Status {
	return catalog.ReconstructStatus(m.ID, m.Name, m.Description)
}
