package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bathroom-designer/internal/designer/catalog"
	"bathroom-designer/internal/designer/models"
	"bathroom-designer/internal/designer/render"
	"bathroom-designer/internal/designer/repository"
	"bathroom-designer/internal/designer/service"
	"bathroom-designer/internal/testutil"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	svc := service.New(repository.NewMemoryStore(), catalog.Default())
	app := fiber.New()
	Register(app, NewDesignerHandler(svc, render.NewRenderer()), NewHealthHandler(svc))
	return app
}

func do(t *testing.T, app *fiber.App, method, path string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(data, &out), string(data))
	return out
}

func errorMessage(t *testing.T, data []byte) string {
	t.Helper()
	return decode[map[string]any](t, data)["error"].(string)
}

func createRoom(t *testing.T, app *fiber.App) models.BathRoom {
	t.Helper()
	status, data := do(t, app, http.MethodPost, "/bathroom/", testutil.Room())
	require.Equal(t, http.StatusOK, status, string(data))
	return decode[models.BathRoom](t, data)
}

func TestFixtureScenario(t *testing.T) {
	app := newTestApp(t)
	room := createRoom(t, app)

	toilet := testutil.Toilet()
	status, data := do(t, app, http.MethodPost, "/bathroom/"+room.ID.String()+"/fixtures", toilet)
	require.Equal(t, http.StatusOK, status, string(data))
	assert.Equal(t, toilet, decode[models.Fixture](t, data))

	status, data = do(t, app, http.MethodGet, "/bathroom/"+room.ID.String(), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []models.Fixture{toilet}, decode[models.BathRoom](t, data).Fixtures)

	status, data = do(t, app, http.MethodDelete, "/bathroom/"+room.ID.String()+"/fixture/"+toilet.ID.String(), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]string{"status": "success", "message": "fixture deleted successfully"}, decode[map[string]string](t, data))

	status, data = do(t, app, http.MethodGet, "/bathroom/"+room.ID.String(), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, decode[models.BathRoom](t, data).Fixtures)

	status, data = do(t, app, http.MethodDelete, "/bathroom/"+room.ID.String()+"/fixture/"+toilet.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "fixture not found", errorMessage(t, data))
}

func TestCreateRoundTrip(t *testing.T) {
	app := newTestApp(t)
	room := testutil.Room()

	created := createRoom(t, app)
	assert.Equal(t, room.Name, created.Name)

	status, data := do(t, app, http.MethodGet, "/bathroom/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, created, decode[models.BathRoom](t, data))
}

func TestCreateAssignsServerIDs(t *testing.T) {
	app := newTestApp(t)
	payload := `{
		"name": "Powder room",
		"shape": "l_shaped",
		"dimension": {"length": 60, "width": 48},
		"ceiling_height": 96,
		"walls": [],
		"floor_type": {"name": "Tile", "description": "Porcelain", "cost_per_unit": 4, "unit_type": "square_foot", "color": "Gray"},
		"ceiling_type": {"name": "Drywall", "description": "Painted", "cost_per_unit": 1, "unit_type": "square_foot", "color": "White"},
		"fixtures": [],
		"windows": [{"position": {"x": 1, "y": 0}, "dimension": {"length": 20, "width": 4}, "window_type": "fixed"}],
		"doors": [],
		"ventilation": null
	}`

	status, data := do(t, app, http.MethodPost, "/bathroom/", payload)
	require.Equal(t, http.StatusOK, status, string(data))

	room := decode[models.BathRoom](t, data)
	assert.NotEqual(t, uuid.Nil, room.ID)
	assert.NotEqual(t, uuid.Nil, room.FloorType.ID)
	require.Len(t, room.Windows, 1)
	assert.NotEqual(t, uuid.Nil, room.Windows[0].ID)
	assert.True(t, room.Windows[0].IsOpenable)
	assert.Nil(t, room.Ventilation)
}

func TestCreateValidation(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name   string
		mutate func(r map[string]any)
		field  string
		rule   string
	}{
		{
			name:   "unknown shape",
			mutate: func(r map[string]any) { r["shape"] = "round" },
			field:  "shape",
			rule:   "oneof",
		},
		{
			name:   "missing name",
			mutate: func(r map[string]any) { delete(r, "name") },
			field:  "name",
			rule:   "required",
		},
		{
			name: "non positive wall length",
			mutate: func(r map[string]any) {
				r["walls"].([]any)[0].(map[string]any)["dimension"] = map[string]any{"length": 0, "width": 4}
			},
			field: "walls[0].dimension.length",
			rule:  "gt",
		},
		{
			name:   "string where number expected",
			mutate: func(r map[string]any) { r["ceiling_height"] = "tall" },
			field:  "ceiling_height",
			rule:   "type",
		},
		{
			name:   "malformed id",
			mutate: func(r map[string]any) { r["id"] = "not-a-uuid" },
			field:  "body",
			rule:   "json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(testutil.Room())
			require.NoError(t, err)
			var payload map[string]any
			require.NoError(t, json.Unmarshal(raw, &payload))
			tt.mutate(payload)

			status, data := do(t, app, http.MethodPost, "/bathroom/", payload)
			require.Equal(t, http.StatusUnprocessableEntity, status, string(data))

			body := decode[struct {
				Error  string              `json:"error"`
				Fields []models.FieldError `json:"fields"`
			}](t, data)
			require.NotEmpty(t, body.Fields)
			assert.Equal(t, tt.field, body.Fields[0].Field)
			assert.Equal(t, tt.rule, body.Fields[0].Rule)
		})
	}
}

func TestGetUnknownRoom(t *testing.T) {
	app := newTestApp(t)

	status, data := do(t, app, http.MethodGet, "/bathroom/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Bathroom not found", errorMessage(t, data))

	status, _ = do(t, app, http.MethodGet, "/bathroom/nope", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestAddFixtureUnknownRoom(t *testing.T) {
	app := newTestApp(t)

	status, data := do(t, app, http.MethodPost, "/bathroom/"+uuid.NewString()+"/fixtures", testutil.Toilet())
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Bathroom not found", errorMessage(t, data))
}

func TestAddFixtureVariantMismatch(t *testing.T) {
	app := newTestApp(t)
	room := createRoom(t, app)

	sink := testutil.Sink()
	sink.FixtureType = models.FixtureBathtub

	status, data := do(t, app, http.MethodPost, "/bathroom/"+room.ID.String()+"/fixtures", sink)
	require.Equal(t, http.StatusUnprocessableEntity, status, string(data))
	assert.Contains(t, string(data), "matches_fixture_type")
}

func TestUpdateFixture(t *testing.T) {
	app := newTestApp(t)
	room := createRoom(t, app)
	base := "/bathroom/" + room.ID.String()

	toilet := testutil.Toilet()
	status, _ := do(t, app, http.MethodPost, base+"/fixtures", toilet)
	require.Equal(t, http.StatusOK, status)

	toilet.Color = "Black"
	status, data := do(t, app, http.MethodPut, base+"/fixture/"+toilet.ID.String(), toilet)
	require.Equal(t, http.StatusOK, status, string(data))
	assert.Equal(t, "Black", decode[models.Fixture](t, data).Color)

	status, data = do(t, app, http.MethodPut, base+"/fixture/"+uuid.NewString(), toilet)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Fixture ID mismatch", errorMessage(t, data))

	other := testutil.Sink()
	status, data = do(t, app, http.MethodPut, base+"/fixture/"+other.ID.String(), other)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Fixture not found", errorMessage(t, data))
}

func TestUpdateComponents(t *testing.T) {
	app := newTestApp(t)
	room := createRoom(t, app)
	base := "/bathroom/" + room.ID.String()

	wall := room.Walls[0]
	wall.WallType = models.WallConcrete
	status, data := do(t, app, http.MethodPut, base+"/wall/"+wall.ID.String(), wall)
	require.Equal(t, http.StatusOK, status, string(data))
	assert.Equal(t, wall, decode[models.Wall](t, data))

	window := room.Windows[0]
	window.IsOpenable = false
	status, data = do(t, app, http.MethodPut, base+"/window/"+window.ID.String(), window)
	require.Equal(t, http.StatusOK, status, string(data))
	assert.False(t, decode[models.Window](t, data).IsOpenable)

	door := room.Doors[0]
	door.DoorType = "sliding"
	status, _ = do(t, app, http.MethodPut, base+"/door/"+door.ID.String(), door)
	require.Equal(t, http.StatusOK, status)

	vent := *room.Ventilation
	vent.VentilationType = "natural"
	status, _ = do(t, app, http.MethodPut, base+"/ventilation/"+vent.ID.String(), vent)
	require.Equal(t, http.StatusOK, status)

	status, data = do(t, app, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, status)
	got := decode[models.BathRoom](t, data)
	assert.Equal(t, models.WallConcrete, got.Walls[0].WallType)
	assert.False(t, got.Windows[0].IsOpenable)
	assert.Equal(t, "sliding", got.Doors[0].DoorType)
	assert.Equal(t, "natural", got.Ventilation.VentilationType)

	door.SwingDirection = ptr("sideways")
	status, _ = do(t, app, http.MethodPut, base+"/door/"+door.ID.String(), door)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestDeleteComponentKinds(t *testing.T) {
	app := newTestApp(t)
	room := createRoom(t, app)
	base := "/bathroom/" + room.ID.String()

	status, data := do(t, app, http.MethodDelete, base+"/mirror/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status, string(data))

	status, data = do(t, app, http.MethodDelete, "/bathroom/"+uuid.NewString()+"/wall/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Bathroom not found", errorMessage(t, data))

	status, data = do(t, app, http.MethodDelete, base+"/ventilation/"+room.Ventilation.ID.String(), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ventilation deleted successfully", decode[map[string]string](t, data)["message"])

	status, data = do(t, app, http.MethodDelete, base+"/door/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "door not found", errorMessage(t, data))
}

func TestListDesignThemes(t *testing.T) {
	app := newTestApp(t)
	createRoom(t, app)

	status, data := do(t, app, http.MethodGet, "/design-themes/", nil)
	require.Equal(t, http.StatusOK, status)

	themes := decode[[]models.DesignTheme](t, data)
	require.Len(t, themes, 3)
	assert.Equal(t, "Modern Minimalist", themes[0].Name)
	assert.Equal(t, "Classic", themes[1].Name)
	assert.Equal(t, "Contemporary", themes[2].Name)
	assert.Equal(t, models.CostRange{MinCost: 8000, MaxCost: 20000}, themes[1].EstimatedCostRange)
}

func TestGetPlan(t *testing.T) {
	app := newTestApp(t)
	room := createRoom(t, app)

	req := httptest.NewRequest(http.MethodGet, "/bathroom/"+room.ID.String()+"/plan", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "image/svg+xml")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `id="room-`+room.ID.String()+`"`)
}

func TestHealthAndDocs(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/health/live", "/health/ready", "/health/startup"} {
		status, _ := do(t, app, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, status, path)
	}

	status, data := do(t, app, http.MethodGet, "/docs/openapi.yaml", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(data), "Bathroom Designer API")
	assert.Contains(t, string(data), "single WallFeature")
}

func TestUpdateWallRejectsFeatureBody(t *testing.T) {
	app := newTestApp(t)
	room := createRoom(t, app)

	wall := room.Walls[0]
	feature := wall.Features[0]
	feature.ID = wall.ID

	status, data := do(t, app, http.MethodPut, "/bathroom/"+room.ID.String()+"/wall/"+wall.ID.String(), feature)
	require.Equal(t, http.StatusUnprocessableEntity, status, string(data))
	assert.Contains(t, string(data), "wall_type")

	status, data = do(t, app, http.MethodGet, "/bathroom/"+room.ID.String(), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, wall, decode[models.BathRoom](t, data).Walls[0])
}

func ptr[T any](v T) *T {
	return &v
}
