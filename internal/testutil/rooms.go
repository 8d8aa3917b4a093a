// Package testutil builds valid sample payloads for tests.
package testutil

import (
	"bathroom-designer/internal/designer/models"

	"github.com/google/uuid"
)

func ptr[T any](v T) *T {
	return &v
}

func Material(name string) models.Material {
	return models.Material{
		ID:          uuid.New(),
		Name:        name,
		Description: name + " finish",
		CostPerUnit: 12.5,
		UnitType:    "square_foot",
		Color:       "White",
	}
}

// Room returns a rectangular room with one wall, one window, one door and
// an empty fixtures collection.
func Room() models.BathRoom {
	return models.BathRoom{
		ID:            uuid.New(),
		Name:          "Master bath",
		Shape:         models.ShapeRectangular,
		Dimension:     models.Dimension{Length: 120, Width: 96, Height: ptr(96.0)},
		CeilingHeight: 96,
		Walls: []models.Wall{
			{
				ID:        uuid.New(),
				Dimension: models.Dimension{Length: 120, Width: 4},
				WallType:  models.WallTile,
				Features: []models.WallFeature{
					{ID: uuid.New(), Name: "Niche", Position: models.Position{X: 10, Y: 0, Z: 40}, Dimension: models.Dimension{Length: 12, Width: 4}},
				},
			},
		},
		FloorType:   Material("Porcelain"),
		CeilingType: Material("Drywall"),
		Fixtures:    []models.Fixture{},
		Windows: []models.Window{
			{ID: uuid.New(), Position: models.Position{X: 60, Y: 0, Z: 48}, Dimension: models.Dimension{Length: 30, Width: 4}, WindowType: "casement", IsOpenable: true},
		},
		Doors: []models.Door{
			{ID: uuid.New(), Position: models.Position{X: 0, Y: 40}, Dimension: models.Dimension{Length: 32, Width: 2}, DoorType: "hinged", SwingDirection: ptr("inward")},
		},
		Ventilation: &models.Ventilation{ID: uuid.New(), VentilationType: "mechanical", Capacity: ptr(80.0)},
	}
}

func Toilet() models.Fixture {
	return models.Fixture{
		ID:                       uuid.New(),
		FixtureType:              models.FixtureToilet,
		Name:                     "Comfort toilet",
		Manufacturer:             "Kohler",
		ModelNumber:              "K-3999",
		Dimension:                models.Dimension{Length: 28, Width: 18, Height: ptr(30.0)},
		Position:                 models.Position{X: 20, Y: 80},
		Style:                    models.StyleModern,
		Material:                 Material("Vitreous china"),
		Color:                    "White",
		InstallationRequirements: map[string]string{},
		Cost:                     450,
		Toilet:                   &models.ToiletDetails{FlushType: "dual", WaterUsage: 1.28, Height: 17, RoughIn: 12},
	}
}

func Sink() models.Fixture {
	return models.Fixture{
		ID:                       uuid.New(),
		FixtureType:              models.FixtureSink,
		Name:                     "Pedestal sink",
		Manufacturer:             "American Standard",
		ModelNumber:              "0236.000",
		Dimension:                models.Dimension{Length: 24, Width: 20},
		Position:                 models.Position{X: 60, Y: 80},
		Style:                    models.StyleTraditional,
		Material:                 Material("Ceramic"),
		Color:                    "White",
		InstallationRequirements: map[string]string{"wall": "blocking"},
		PlumbingRequirements:     map[string]string{"drain": "1.25in"},
		Cost:                     220,
		Sink:                     &models.SinkDetails{MountType: "pedestal", FaucetHoles: 1, DrainType: "pop-up"},
	}
}
