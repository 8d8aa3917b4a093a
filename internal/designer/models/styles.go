package models

import (
	"github.com/google/uuid"
)

// ============================================================
// Design themes
// ============================================================

type CostRange struct {
	MinCost float64 `json:"min_cost" validate:"gte=0"`
	MaxCost float64 `json:"max_cost" validate:"gtefield=MinCost"`
}

type DesignTheme struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name" validate:"required"`
	Description         string    `json:"description" validate:"required"`
	Style               string    `json:"style" validate:"required"`
	ColorScheme         []string  `json:"color_scheme"`
	Materials           []string  `json:"materials"`
	RecommendedFixtures []string  `json:"recommended_fixtures"`
	EstimatedCostRange  CostRange `json:"estimated_cost_range"`
}

func (t *DesignTheme) EnsureID() {
	ensureID(&t.ID)
}
