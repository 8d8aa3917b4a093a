package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"bathroom-designer/internal/designer/models"

	"github.com/google/uuid"
)

// ============================================================
// Room Store
// ============================================================

var ErrRoomNotFound = errors.New("room not found")

// RoomStore хранит комнаты по идентификатору.
//
// Mutate держит эксклюзивную блокировку комнаты на всё время
// чтение-изменение-запись. Если fn вернул ошибку, ничего не записывается.
// Операции над разными комнатами друг друга не блокируют.
type RoomStore interface {
	Create(ctx context.Context, room models.BathRoom) (models.BathRoom, error)
	Get(ctx context.Context, id uuid.UUID) (models.BathRoom, error)
	Mutate(ctx context.Context, id uuid.UUID, fn func(room *models.BathRoom) error) error
	Ping(ctx context.Context) error
}

func decodeRoom(data []byte) (models.BathRoom, error) {
	var out models.BathRoom
	if err := json.Unmarshal(data, &out); err != nil {
		return models.BathRoom{}, fmt.Errorf("decode room: %w", err)
	}
	return out, nil
}
