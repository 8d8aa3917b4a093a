package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ============================================================
// Enums
// ============================================================

type FixtureType string

const (
	FixtureToilet            FixtureType = "toilet"
	FixtureSink              FixtureType = "sink"
	FixtureShower            FixtureType = "shower"
	FixtureBathtub           FixtureType = "bathtub"
	FixtureVanity            FixtureType = "vanity"
	FixtureMirror            FixtureType = "mirror"
	FixtureLighting          FixtureType = "lighting"
	FixtureTowelBar          FixtureType = "towel_bar"
	FixtureToiletPaperHolder FixtureType = "toilet_paper_holder"
)

type FixtureStyle string

const (
	StyleModern       FixtureStyle = "modern"
	StyleTraditional  FixtureStyle = "traditional"
	StyleContemporary FixtureStyle = "contemporary"
	StyleRustic       FixtureStyle = "rustic"
	StyleIndustrial   FixtureStyle = "industrial"
	StyleMinimalist   FixtureStyle = "minimalist"
)

// ============================================================
// Fixture
// ============================================================

// Fixture общий конверт сантехники. Поля конкретного вида лежат в одном из
// блоков Toilet/Sink/Shower/Bathtub, выбранном по FixtureType.
type Fixture struct {
	ID                       uuid.UUID         `json:"id"`
	FixtureType              FixtureType       `json:"fixture_type" validate:"oneof=toilet sink shower bathtub vanity mirror lighting towel_bar toilet_paper_holder"`
	Name                     string            `json:"name" validate:"required"`
	Manufacturer             string            `json:"manufacturer" validate:"required"`
	ModelNumber              string            `json:"model_number" validate:"required"`
	Dimension                Dimension         `json:"dimension"`
	Position                 Position          `json:"position"`
	Style                    FixtureStyle      `json:"style" validate:"oneof=modern traditional contemporary rustic industrial minimalist"`
	Material                 Material          `json:"material"`
	Color                    string            `json:"color" validate:"required"`
	IsExisting               bool              `json:"is_existing"`
	ReplacementFor           *uuid.UUID        `json:"replacement_for"`
	InstallationRequirements map[string]string `json:"installation_requirements"`
	PlumbingRequirements     map[string]string `json:"plumbing_requirements"`
	ElectricalRequirements   map[string]string `json:"electrical_requirements"`
	Cost                     float64           `json:"cost" validate:"gte=0"`
	Weight                   *float64          `json:"weight" validate:"omitempty,gte=0"`

	Toilet  *ToiletDetails  `json:"toilet,omitempty"`
	Sink    *SinkDetails    `json:"sink,omitempty"`
	Shower  *ShowerDetails  `json:"shower,omitempty"`
	Bathtub *BathtubDetails `json:"bathtub,omitempty"`
}

type ToiletDetails struct {
	FlushType  string  `json:"flush_type" validate:"required"`
	WaterUsage float64 `json:"water_usage" validate:"gte=0"` // галлонов на смыв
	Height     float64 `json:"height" validate:"gt=0"`
	RoughIn    float64 `json:"rough_in" validate:"gt=0"` // от стены до центра слива
}

type SinkDetails struct {
	MountType   string `json:"mount_type" validate:"required"` // pedestal, wall-mounted, undermount, vessel
	FaucetHoles int    `json:"faucet_holes" validate:"gte=0"`
	DrainType   string `json:"drain_type" validate:"required"`
}

type ShowerDetails struct {
	EnclosureType  string   `json:"enclosure_type" validate:"required"` // frameless, framed, walk-in
	DoorType       *string  `json:"door_type"`
	DrainPosition  Position `json:"drain_position"`
	ShowerHeadType []string `json:"shower_head_type"`
	ValveType      string   `json:"valve_type" validate:"required"`
}

type BathtubDetails struct {
	TubType       string  `json:"tub_type" validate:"required"` // freestanding, alcove, corner, drop-in
	WaterCapacity float64 `json:"water_capacity" validate:"gte=0"`
	HasJets       bool    `json:"has_jets"`
	JetCount      *int    `json:"jet_count" validate:"omitempty,gte=0"`
}

func (f Fixture) Identifier() uuid.UUID {
	return f.ID
}

// Variant возвращает тип, чей блок деталей заполнен. Пустая строка, если блоков нет.
func (f Fixture) Variant() FixtureType {
	switch {
	case f.Toilet != nil:
		return FixtureToilet
	case f.Sink != nil:
		return FixtureSink
	case f.Shower != nil:
		return FixtureShower
	case f.Bathtub != nil:
		return FixtureBathtub
	}
	return ""
}

func (f Fixture) variantCount() int {
	n := 0
	for _, set := range []bool{f.Toilet != nil, f.Sink != nil, f.Shower != nil, f.Bathtub != nil} {
		if set {
			n++
		}
	}
	return n
}

func (f *Fixture) EnsureIDs() {
	ensureID(&f.ID)
	ensureMaterialID(&f.Material)
}

func (f *Fixture) UnmarshalJSON(data []byte) error {
	type alias Fixture
	a := alias{InstallationRequirements: map[string]string{}}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*f = Fixture(a)
	return nil
}

// ============================================================
// Openings & features
// ============================================================

type WallFeature struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Position  Position  `json:"position"`
	Dimension Dimension `json:"dimension"`
	Material  *Material `json:"material"`
}

func (w WallFeature) Identifier() uuid.UUID {
	return w.ID
}

func (w *WallFeature) EnsureIDs() {
	ensureID(&w.ID)
	ensureMaterialID(w.Material)
}

type Window struct {
	ID         uuid.UUID `json:"id"`
	Position   Position  `json:"position"`
	Dimension  Dimension `json:"dimension"`
	WindowType string    `json:"window_type" validate:"required"` // sliding, casement, fixed
	Material   *Material `json:"material"`
	IsOpenable bool      `json:"is_openable"`
}

func (w Window) Identifier() uuid.UUID {
	return w.ID
}

func (w *Window) EnsureIDs() {
	ensureID(&w.ID)
	ensureMaterialID(w.Material)
}

// UnmarshalJSON: окно по умолчанию открывается.
func (w *Window) UnmarshalJSON(data []byte) error {
	type alias Window
	a := alias{IsOpenable: true}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*w = Window(a)
	return nil
}

type Door struct {
	ID             uuid.UUID `json:"id"`
	Position       Position  `json:"position"`
	Dimension      Dimension `json:"dimension"`
	DoorType       string    `json:"door_type" validate:"required"` // hinged, sliding, pocket
	Material       *Material `json:"material"`
	SwingDirection *string   `json:"swing_direction" validate:"omitempty,oneof=inward outward"`
}

func (d Door) Identifier() uuid.UUID {
	return d.ID
}

func (d *Door) EnsureIDs() {
	ensureID(&d.ID)
	ensureMaterialID(d.Material)
}

type Ventilation struct {
	ID              uuid.UUID  `json:"id"`
	VentilationType string     `json:"ventilation_type" validate:"required"` // natural, mechanical, hybrid
	Capacity        *float64   `json:"capacity" validate:"omitempty,gte=0"`  // м³/ч
	Position        *Position  `json:"position"`
	Dimension       *Dimension `json:"dimension"`
	Material        *Material  `json:"material"`
}

func (v Ventilation) Identifier() uuid.UUID {
	return v.ID
}

func (v *Ventilation) EnsureIDs() {
	ensureID(&v.ID)
	ensureMaterialID(v.Material)
}
