package catalog

import (
	"fmt"

	"bathroom-designer/internal/designer/models"

	"github.com/samber/lo"
)

// ============================================================
// Design Theme Catalog
// ============================================================

// Catalog неизменяемый список тем, заполняется один раз при старте.
type Catalog struct {
	themes []models.DesignTheme
}

// New validates every theme (including max_cost >= min_cost) and assigns
// missing identifiers. Order of themes is kept.
func New(themes []models.DesignTheme) (*Catalog, error) {
	seeded := make([]models.DesignTheme, 0, len(themes))
	for i, t := range themes {
		if err := models.Validate(&t); err != nil {
			return nil, fmt.Errorf("theme %d (%s): %w", i, t.Name, err)
		}
		t.EnsureID()
		seeded = append(seeded, cloneTheme(t))
	}
	return &Catalog{themes: seeded}, nil
}

// Default возвращает каталог с тремя встроенными темами.
func Default() *Catalog {
	c, err := New(defaultThemes())
	if err != nil {
		panic(fmt.Errorf("seed design themes: %w", err))
	}
	return c
}

// ListAll returns a copy so callers cannot mutate the seeded themes.
func (c *Catalog) ListAll() []models.DesignTheme {
	return lo.Map(c.themes, func(t models.DesignTheme, _ int) models.DesignTheme {
		return cloneTheme(t)
	})
}

func cloneTheme(t models.DesignTheme) models.DesignTheme {
	t.ColorScheme = append([]string(nil), t.ColorScheme...)
	t.Materials = append([]string(nil), t.Materials...)
	t.RecommendedFixtures = append([]string(nil), t.RecommendedFixtures...)
	return t
}

func defaultThemes() []models.DesignTheme {
	return []models.DesignTheme{
		{
			Name:                "Modern Minimalist",
			Description:         "Clean lines and minimal decoration",
			Style:               "Modern",
			ColorScheme:         []string{"White", "Gray", "Black"},
			Materials:           []string{"Glass", "Ceramic", "Steel"},
			RecommendedFixtures: []string{"Wall-mounted toilet", "Floating vanity", "Walk-in shower"},
			EstimatedCostRange:  models.CostRange{MinCost: 5000, MaxCost: 15000},
		},
		{
			Name:                "Classic",
			Description:         "Traditional and timeless design",
			Style:               "Traditional",
			ColorScheme:         []string{"Beige", "White", "Brown"},
			Materials:           []string{"Marble", "Wood", "Brass"},
			RecommendedFixtures: []string{"Clawfoot tub", "Pedestal sink", "Classic toilet"},
			EstimatedCostRange:  models.CostRange{MinCost: 8000, MaxCost: 20000},
		},
		{
			Name:                "Contemporary",
			Description:         "Current trends and modern aesthetics",
			Style:               "Contemporary",
			ColorScheme:         []string{"Gray", "Blue", "White"},
			Materials:           []string{"Porcelain", "Chrome", "Glass"},
			RecommendedFixtures: []string{"Smart toilet", "LED mirror", "Rain shower"},
			EstimatedCostRange:  models.CostRange{MinCost: 10000, MaxCost: 25000},
		},
	}
}
