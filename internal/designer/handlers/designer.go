package handlers

import (
	"context"
	"fmt"
	"log"

	"bathroom-designer/internal/designer/models"
	"bathroom-designer/internal/designer/render"
	"bathroom-designer/internal/designer/service"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// ============================================================
// Designer Handler
// ============================================================

type DesignerHandler struct {
	svc      *service.Service
	renderer *render.Renderer
}

func NewDesignerHandler(svc *service.Service, renderer *render.Renderer) *DesignerHandler {
	return &DesignerHandler{
		svc:      svc,
		renderer: renderer,
	}
}

// CreateBathroom создаёт новую комнату.
func (h *DesignerHandler) CreateBathroom(c fiber.Ctx) error {
	var room models.BathRoom
	if err := models.Decode(c.Body(), &room); err != nil {
		return writeError(c, err)
	}

	created, err := h.svc.CreateRoom(c.Context(), room)
	if err != nil {
		return writeError(c, err)
	}

	log.Printf("[DESIGNER] Bathroom %s created", created.ID)
	return c.JSON(created)
}

// GetBathroom возвращает комнату по id.
func (h *DesignerHandler) GetBathroom(c fiber.Ctx) error {
	roomID, err := pathUUID(c, "bathroom_id")
	if err != nil {
		return writeError(c, err)
	}

	room, err := h.svc.GetRoom(c.Context(), roomID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(room)
}

// GetPlan отдаёт план комнаты в SVG.
func (h *DesignerHandler) GetPlan(c fiber.Ctx) error {
	roomID, err := pathUUID(c, "bathroom_id")
	if err != nil {
		return writeError(c, err)
	}

	room, err := h.svc.GetRoom(c.Context(), roomID)
	if err != nil {
		return writeError(c, err)
	}

	svg, err := h.renderer.Render(&room)
	if err != nil {
		return writeError(c, err)
	}

	c.Set("Content-Type", "image/svg+xml")
	return c.SendString(svg)
}

// AddFixture добавляет сантехнику в комнату.
func (h *DesignerHandler) AddFixture(c fiber.Ctx) error {
	roomID, err := pathUUID(c, "bathroom_id")
	if err != nil {
		return writeError(c, err)
	}

	var fixture models.Fixture
	if err := models.Decode(c.Body(), &fixture); err != nil {
		return writeError(c, err)
	}

	added, err := h.svc.AddFixture(c.Context(), roomID, fixture)
	if err != nil {
		return writeError(c, err)
	}

	log.Printf("[DESIGNER] Fixture %s (%s) added to bathroom %s", added.ID, added.FixtureType, roomID)
	return c.JSON(added)
}

// ListDesignThemes возвращает все темы оформления.
func (h *DesignerHandler) ListDesignThemes(c fiber.Ctx) error {
	return c.JSON(h.svc.DesignThemes())
}

func (h *DesignerHandler) UpdateFixture(c fiber.Ctx) error {
	return update(c, "fixture_id", h.svc.UpdateFixture)
}

func (h *DesignerHandler) UpdateWall(c fiber.Ctx) error {
	return update(c, "wall_id", h.svc.UpdateWall)
}

func (h *DesignerHandler) UpdateWindow(c fiber.Ctx) error {
	return update(c, "window_id", h.svc.UpdateWindow)
}

func (h *DesignerHandler) UpdateDoor(c fiber.Ctx) error {
	return update(c, "door_id", h.svc.UpdateDoor)
}

func (h *DesignerHandler) UpdateVentilation(c fiber.Ctx) error {
	return update(c, "vent_id", h.svc.UpdateVentilation)
}

// DeleteComponent удаляет элемент комнаты по типу и id.
func (h *DesignerHandler) DeleteComponent(c fiber.Ctx) error {
	roomID, err := pathUUID(c, "bathroom_id")
	if err != nil {
		return writeError(c, err)
	}
	componentID, err := pathUUID(c, "component_id")
	if err != nil {
		return writeError(c, err)
	}
	kind := c.Params("component_type")

	if err := h.svc.DeleteComponent(c.Context(), roomID, kind, componentID); err != nil {
		return writeError(c, err)
	}

	log.Printf("[DESIGNER] %s %s deleted from bathroom %s", kind, componentID, roomID)
	return c.JSON(fiber.Map{
		"status":  "success",
		"message": fmt.Sprintf("%s deleted successfully", kind),
	})
}

// update общий PUT: id комнаты и элемента из пути, элемент целиком из тела.
func update[T any](c fiber.Ctx, param string, fn func(context.Context, uuid.UUID, uuid.UUID, T) (T, error)) error {
	roomID, err := pathUUID(c, "bathroom_id")
	if err != nil {
		return writeError(c, err)
	}
	childID, err := pathUUID(c, param)
	if err != nil {
		return writeError(c, err)
	}

	var item T
	if err := models.Decode(c.Body(), &item); err != nil {
		return writeError(c, err)
	}

	updated, err := fn(c.Context(), roomID, childID, item)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(updated)
}
