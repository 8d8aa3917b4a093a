package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"bathroom-designer/internal/designer/models"

	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

var _ RoomStore = (*SQLiteStore)(nil)

//go:embed schema.sql
var schemaSQL string

// ============================================================
// SQLite Store
// ============================================================

// SQLiteStore хранит каждую комнату одной строкой с JSON-документом.
type SQLiteStore struct {
	db    *sql.DB
	locks *RoomLocks
}

// NewSQLiteStore применяет схему и возвращает готовое хранилище.
func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLiteStore{db: db, locks: NewRoomLocks()}, nil
}

// Create upserts the room document; an existing room with the same id is replaced.
func (s *SQLiteStore) Create(ctx context.Context, room models.BathRoom) (models.BathRoom, error) {
	if room.ID == uuid.Nil {
		return models.BathRoom{}, errors.New("room id required")
	}

	unlock := s.locks.Lock(room.ID)
	defer unlock()

	data, err := json.Marshal(room)
	if err != nil {
		return models.BathRoom{}, fmt.Errorf("encode room: %w", err)
	}
	if err := s.save(ctx, room.ID, data); err != nil {
		return models.BathRoom{}, err
	}
	return decodeRoom(data)
}

func (s *SQLiteStore) Get(ctx context.Context, id uuid.UUID) (models.BathRoom, error) {
	data, err := s.load(ctx, id)
	if err != nil {
		return models.BathRoom{}, err
	}
	return decodeRoom(data)
}

func (s *SQLiteStore) Mutate(ctx context.Context, id uuid.UUID, fn func(room *models.BathRoom) error) error {
	unlock := s.locks.Lock(id)
	defer unlock()

	data, err := s.load(ctx, id)
	if err != nil {
		return err
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
	return s.save(ctx, id, updated)
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) load(ctx context.Context, id uuid.UUID) ([]byte, error) {
	row := s.db.QueryRowContext(ctx, `SELECT payload FROM bathrooms WHERE id = ?`, id.String())

	var data []byte
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("select room: %w", err)
	}
	return data, nil
}

func (s *SQLiteStore) save(ctx context.Context, id uuid.UUID, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO bathrooms (id, payload) VALUES (?, ?)
        ON CONFLICT(id) DO UPDATE SET
            payload = excluded.payload,
            updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')
    `, id.String(), data)
	if err != nil {
		return fmt.Errorf("save room: %w", err)
	}
	return nil
}

// OpenSQLite открывает sqlite. ":memory:" и "file:" DSN передаются как есть,
// остальное считается путём к файлу базы.
func OpenSQLite(dsn string) (*sql.DB, error) {
	if dsn != ":memory:" && !strings.HasPrefix(dsn, "file:") {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, fmt.Errorf("mkdir db dir: %w", err)
		}
		dsn = fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", dsn)
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	// одно соединение: для :memory: каждое соединение это отдельная база
	db.SetMaxOpenConns(1)
	log.Printf("[STORE] sqlite opened: %s", dsn)
	return db, nil
}
