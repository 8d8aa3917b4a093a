package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"bathroom-designer/internal/designer/models"

	"github.com/google/uuid"
)

var _ RoomStore = (*MemoryStore)(nil)

// ============================================================
// Memory Store
// ============================================================

// MemoryStore держит комнаты как JSON-документы в памяти процесса.
type MemoryStore struct {
	mu    sync.RWMutex
	rooms map[uuid.UUID][]byte
	locks *RoomLocks
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms: make(map[uuid.UUID][]byte),
		locks: NewRoomLocks(),
	}
}

// Create inserts the room, silently replacing any room with the same id.
func (s *MemoryStore) Create(_ context.Context, room models.BathRoom) (models.BathRoom, error) {
	if room.ID == uuid.Nil {
		return models.BathRoom{}, errors.New("room id required")
	}

	unlock := s.locks.Lock(room.ID)
	defer unlock()

	data, err := json.Marshal(room)
	if err != nil {
		return models.BathRoom{}, fmt.Errorf("encode room: %w", err)
	}

	s.mu.Lock()
	s.rooms[room.ID] = data
	s.mu.Unlock()

	return decodeRoom(data)
}

func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (models.BathRoom, error) {
	data, ok := s.load(id)
	if !ok {
		return models.BathRoom{}, ErrRoomNotFound
	}
	return decodeRoom(data)
}

func (s *MemoryStore) Mutate(_ context.Context, id uuid.UUID, fn func(room *models.BathRoom) error) error {
	unlock := s.locks.Lock(id)
	defer unlock()

	data, ok := s.load(id)
	if !ok {
		return ErrRoomNotFound
	}

	room, err := decodeRoom(data)
	if err != nil {
		return err
	}
	if err := fn(&room); err != nil {
		return err
	}

	updated, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("encode room: %w", err)
	}

	s.mu.Lock()
	s.rooms[id] = updated
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

func (s *MemoryStore) load(id uuid.UUID) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.rooms[id]
	return data, ok
}
