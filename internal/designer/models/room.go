package models

import (
	"github.com/google/uuid"
)

// ============================================================
// Enums
// ============================================================

type RoomShape string

const (
	ShapeRectangular RoomShape = "rectangular"
	ShapeLShaped     RoomShape = "l_shaped"
	ShapeIrregular   RoomShape = "irregular"
)

type WallType string

const (
	WallStandard          WallType = "standard"
	WallTile              WallType = "tile"
	WallMoistureResistant WallType = "moisture_resistant"
	WallConcrete          WallType = "concrete"
)

// ComponentKind закрытый набор коллекций комнаты.
type ComponentKind string

const (
	KindFixture     ComponentKind = "fixture"
	KindWall        ComponentKind = "wall"
	KindWindow      ComponentKind = "window"
	KindDoor        ComponentKind = "door"
	KindVentilation ComponentKind = "ventilation"
)

var componentKinds = []ComponentKind{KindFixture, KindWall, KindWindow, KindDoor, KindVentilation}

// ParseComponentKind returns false for anything outside the closed set.
func ParseComponentKind(s string) (ComponentKind, bool) {
	for _, k := range componentKinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// ============================================================
// Wall
// ============================================================

type Wall struct {
	ID        uuid.UUID     `json:"id"`
	Dimension Dimension     `json:"dimension"`
	WallType  WallType      `json:"wall_type" validate:"oneof=standard tile moisture_resistant concrete"`
	Features  []WallFeature `json:"features" validate:"dive"`
	Material  *Material     `json:"material"`
}

func (w Wall) Identifier() uuid.UUID {
	return w.ID
}

func (w *Wall) EnsureIDs() {
	ensureID(&w.ID)
	ensureMaterialID(w.Material)
	for i := range w.Features {
		w.Features[i].EnsureIDs()
	}
}

// ============================================================
// BathRoom
// ============================================================

type BathRoom struct {
	ID            uuid.UUID    `json:"id"`
	Name          string       `json:"name" validate:"required"`
	Shape         RoomShape    `json:"shape" validate:"oneof=rectangular l_shaped irregular"`
	Dimension     Dimension    `json:"dimension"`
	CeilingHeight float64      `json:"ceiling_height" validate:"gt=0"`
	Walls         []Wall       `json:"walls" validate:"dive"`
	FloorType     Material     `json:"floor_type"`
	CeilingType   Material     `json:"ceiling_type"`
	Fixtures      []Fixture    `json:"fixtures" validate:"dive"`
	Windows       []Window     `json:"windows" validate:"dive"`
	Doors         []Door       `json:"doors" validate:"dive"`
	Ventilation   *Ventilation `json:"ventilation"`
}

// EnsureIDs назначает идентификаторы комнате и всем вложенным сущностям без id.
func (r *BathRoom) EnsureIDs() {
	ensureID(&r.ID)
	r.FloorType.EnsureID()
	r.CeilingType.EnsureID()
	for i := range r.Walls {
		r.Walls[i].EnsureIDs()
	}
	for i := range r.Fixtures {
		r.Fixtures[i].EnsureIDs()
	}
	for i := range r.Windows {
		r.Windows[i].EnsureIDs()
	}
	for i := range r.Doors {
		r.Doors[i].EnsureIDs()
	}
	if r.Ventilation != nil {
		r.Ventilation.EnsureIDs()
	}
}

func (r BathRoom) FloorArea() float64 {
	return r.Dimension.Area()
}
