package models

import (
	"github.com/google/uuid"
)

// ============================================================
// Value types
// ============================================================

// Dimension размеры в дюймах.
type Dimension struct {
	Length float64  `json:"length" validate:"gt=0"`
	Width  float64  `json:"width" validate:"gt=0"`
	Height *float64 `json:"height" validate:"omitempty,gte=0"`
}

// Area площадь основания (length * width).
func (d Dimension) Area() float64 {
	return d.Length * d.Width
}

// Position координаты относительно начала комнаты, Z: высота от пола.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type Material struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name" validate:"required"`
	Description  string    `json:"description" validate:"required"`
	CostPerUnit  float64   `json:"cost_per_unit" validate:"gte=0"`
	UnitType     string    `json:"unit_type" validate:"required"` // square_foot, piece, linear_foot
	Color        string    `json:"color" validate:"required"`
	Texture      *string   `json:"texture"`
	Manufacturer *string   `json:"manufacturer"`
}

func (m Material) Identifier() uuid.UUID {
	return m.ID
}

// ============================================================
// Identifiers
// ============================================================

// Identified is implemented by every entity that lives in a room collection.
type Identified interface {
	Identifier() uuid.UUID
}

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func ensureMaterialID(m *Material) {
	if m != nil {
		ensureID(&m.ID)
	}
}

// EnsureID назначает идентификатор материалу, если клиент его не передал.
func (m *Material) EnsureID() {
	ensureID(&m.ID)
}
