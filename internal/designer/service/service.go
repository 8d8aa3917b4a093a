package service

import (
	"context"
	"errors"
	"fmt"

	"bathroom-designer/internal/designer/catalog"
	"bathroom-designer/internal/designer/models"
	"bathroom-designer/internal/designer/repository"

	"github.com/google/uuid"
)

// ============================================================
// Designer Service
// ============================================================

type Service struct {
	store   repository.RoomStore
	catalog *catalog.Catalog
}

func New(store repository.RoomStore, themes *catalog.Catalog) *Service {
	return &Service{
		store:   store,
		catalog: themes,
	}
}

// CreateRoom назначает недостающие идентификаторы и сохраняет комнату.
// Комната с тем же id перезаписывается.
func (s *Service) CreateRoom(ctx context.Context, room models.BathRoom) (models.BathRoom, error) {
	room.EnsureIDs()
	return s.store.Create(ctx, room)
}

func (s *Service) GetRoom(ctx context.Context, id uuid.UUID) (models.BathRoom, error) {
	room, err := s.store.Get(ctx, id)
	if err != nil {
		return models.BathRoom{}, mapStoreErr(err)
	}
	return room, nil
}

func (s *Service) AddFixture(ctx context.Context, roomID uuid.UUID, fixture models.Fixture) (models.Fixture, error) {
	fixture.EnsureIDs()
	err := s.store.Mutate(ctx, roomID, func(room *models.BathRoom) error {
		room.Fixtures = append(room.Fixtures, fixture)
		return nil
	})
	if err != nil {
		return models.Fixture{}, mapStoreErr(err)
	}
	return fixture, nil
}

func (s *Service) UpdateFixture(ctx context.Context, roomID, fixtureID uuid.UUID, fixture models.Fixture) (models.Fixture, error) {
	fixture.EnsureIDs()
	return updateComponent(ctx, s.store, roomID, fixtureID, fixture, "Fixture",
		func(r *models.BathRoom, id uuid.UUID, f models.Fixture) bool { return replaceByID(r.Fixtures, id, f) })
}

func (s *Service) UpdateWall(ctx context.Context, roomID, wallID uuid.UUID, wall models.Wall) (models.Wall, error) {
	wall.EnsureIDs()
	return updateComponent(ctx, s.store, roomID, wallID, wall, "Wall",
		func(r *models.BathRoom, id uuid.UUID, w models.Wall) bool { return replaceByID(r.Walls, id, w) })
}

func (s *Service) UpdateWindow(ctx context.Context, roomID, windowID uuid.UUID, window models.Window) (models.Window, error) {
	window.EnsureIDs()
	return updateComponent(ctx, s.store, roomID, windowID, window, "Window",
		func(r *models.BathRoom, id uuid.UUID, w models.Window) bool { return replaceByID(r.Windows, id, w) })
}

func (s *Service) UpdateDoor(ctx context.Context, roomID, doorID uuid.UUID, door models.Door) (models.Door, error) {
	door.EnsureIDs()
	return updateComponent(ctx, s.store, roomID, doorID, door, "Door",
		func(r *models.BathRoom, id uuid.UUID, d models.Door) bool { return replaceByID(r.Doors, id, d) })
}

func (s *Service) UpdateVentilation(ctx context.Context, roomID, ventID uuid.UUID, vent models.Ventilation) (models.Ventilation, error) {
	vent.EnsureIDs()
	return updateComponent(ctx, s.store, roomID, ventID, vent, "Ventilation", replaceVentilation)
}

// DeleteComponent удаляет первый элемент с данным id из коллекции kind.
// Неизвестный kind отклоняется до обращения к хранилищу.
func (s *Service) DeleteComponent(ctx context.Context, roomID uuid.UUID, kind string, componentID uuid.UUID) error {
	k, ok := models.ParseComponentKind(kind)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedKind, kind)
	}
	remove := removers[k]

	err := s.store.Mutate(ctx, roomID, func(room *models.BathRoom) error {
		if !remove(room, componentID) {
			return notFound(string(k))
		}
		return nil
	})
	return mapStoreErr(err)
}

func (s *Service) DesignThemes() []models.DesignTheme {
	return s.catalog.ListAll()
}

func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// updateComponent: комната должна существовать (404), id в теле должен
// совпадать с id в пути (400), элемент должен найтись (404).
func updateComponent[T models.Identified](
	ctx context.Context,
	store repository.RoomStore,
	roomID, id uuid.UUID,
	item T,
	label string,
	replace func(*models.BathRoom, uuid.UUID, T) bool,
) (T, error) {
	err := store.Mutate(ctx, roomID, func(room *models.BathRoom) error {
		if item.Identifier() != id {
			return &ComponentError{Label: label, Err: ErrIDMismatch}
		}
		if !replace(room, id, item) {
			return notFound(label)
		}
		return nil
	})
	if err != nil {
		var zero T
		return zero, mapStoreErr(err)
	}
	return item, nil
}

func mapStoreErr(err error) error {
	if errors.Is(err, repository.ErrRoomNotFound) {
		return notFound("Bathroom")
	}
	return err
}
