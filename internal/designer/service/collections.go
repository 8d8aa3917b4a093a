package service

import (
	"slices"

	"bathroom-designer/internal/designer/models"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// ============================================================
// Collection helpers
// ============================================================

// Сканирование всегда идёт в порядке вставки, берётся первое совпадение.

func indexByID[T models.Identified](items []T, id uuid.UUID) (int, bool) {
	_, i, ok := lo.FindIndexOf(items, func(item T) bool {
		return item.Identifier() == id
	})
	return i, ok
}

// replaceByID заменяет элемент на месте, порядок остальных не меняется.
func replaceByID[T models.Identified](items []T, id uuid.UUID, item T) bool {
	i, ok := indexByID(items, id)
	if !ok {
		return false
	}
	items[i] = item
	return true
}

func removeByID[T models.Identified](items *[]T, id uuid.UUID) bool {
	i, ok := indexByID(*items, id)
	if !ok {
		return false
	}
	*items = slices.Delete(*items, i, i+1)
	return true
}

// Вентиляция: слот на ноль или один элемент.

func replaceVentilation(room *models.BathRoom, id uuid.UUID, v models.Ventilation) bool {
	if room.Ventilation == nil || room.Ventilation.ID != id {
		return false
	}
	room.Ventilation = &v
	return true
}

func removeVentilation(room *models.BathRoom, id uuid.UUID) bool {
	if room.Ventilation == nil || room.Ventilation.ID != id {
		return false
	}
	room.Ventilation = nil
	return true
}

// removers closed mapping from component kind to its collection.
var removers = map[models.ComponentKind]func(*models.BathRoom, uuid.UUID) bool{
	models.KindFixture: func(r *models.BathRoom, id uuid.UUID) bool {
		return removeByID(&r.Fixtures, id)
	},
	models.KindWall: func(r *models.BathRoom, id uuid.UUID) bool {
		return removeByID(&r.Walls, id)
	},
	models.KindWindow: func(r *models.BathRoom, id uuid.UUID) bool {
		return removeByID(&r.Windows, id)
	},
	models.KindDoor: func(r *models.BathRoom, id uuid.UUID) bool {
		return removeByID(&r.Doors, id)
	},
	models.KindVentilation: removeVentilation,
}
