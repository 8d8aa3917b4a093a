package repository

import (
	"sync"

	"github.com/google/uuid"
)

// ============================================================
// Room Locks
// ============================================================

// RoomLocks выдаёт по одному мьютексу на комнату. Запись живёт, пока её
// держат или ждут; последний unlock удаляет её из карты.
type RoomLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*roomLock
}

type roomLock struct {
	mu   sync.Mutex
	refs int
}

func NewRoomLocks() *RoomLocks {
	return &RoomLocks{
		locks: make(map[uuid.UUID]*roomLock),
	}
}

// Lock blocks until the room's lock is held and returns its unlock func.
// The returned func must be called exactly once.
func (l *RoomLocks) Lock(id uuid.UUID) func() {
	l.mu.Lock()
	entry, ok := l.locks[id]
	if !ok {
		entry = &roomLock{}
		l.locks[id] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}

// Len returns the number of rooms currently locked or waited on.
func (l *RoomLocks) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
