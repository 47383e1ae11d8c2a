// Package boltdb implements the battle-room store on top of bbolt.
// Rooms are small JSON-encoded records keyed by their shareable code;
// a file-backed bucket keeps them across restarts without touching the
// relational schema.
package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/codequest-ai/codequest/internal/models"
	"github.com/codequest-ai/codequest/internal/server/storage"
)

var bucketRooms = []byte("battle_rooms")

// Storage represents the bbolt battle-room storage
type Storage struct {
	db *bbolt.DB
}

// New creates a new bbolt storage instance.
// dbPath is the path to the bbolt database file.
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db}

	if err := s.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketRooms); err != nil {
			return fmt.Errorf("failed to create rooms bucket: %w", err)
		}
		return nil
	})
}

// CreateRoom stores a new battle room
func (s *Storage) CreateRoom(ctx context.Context, room *models.BattleRoom) error {
	data, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("failed to marshal room: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketRooms).Put([]byte(room.ID), data); err != nil {
			return fmt.Errorf("failed to save room: %w", err)
		}
		return nil
	})
}

// JoinRoom adds the user to the room inside a single write transaction.
// Rejoining is a no-op; the room becomes ready at two or more players.
func (s *Storage) JoinRoom(ctx context.Context, roomID, userID string) (*models.BattleRoom, error) {
	var room *models.BattleRoom

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRooms)

		data := bucket.Get([]byte(roomID))
		if data == nil {
			return storage.ErrRoomNotFound
		}

		room = &models.BattleRoom{}
		if err := json.Unmarshal(data, room); err != nil {
			return fmt.Errorf("failed to unmarshal room: %w", err)
		}

		if !room.HasPlayer(userID) {
			room.Players = append(room.Players, userID)
		}
		if len(room.Players) >= 2 {
			room.Status = models.BattleStatusReady
		}

		updated, err := json.Marshal(room)
		if err != nil {
			return fmt.Errorf("failed to marshal room: %w", err)
		}
		if err := bucket.Put([]byte(roomID), updated); err != nil {
			return fmt.Errorf("failed to save room: %w", err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return room, nil
}

// GetRoom retrieves a battle room by its code
func (s *Storage) GetRoom(ctx context.Context, roomID string) (*models.BattleRoom, error) {
	var room *models.BattleRoom

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketRooms).Get([]byte(roomID))
		if data == nil {
			return storage.ErrRoomNotFound
		}

		room = &models.BattleRoom{}
		if err := json.Unmarshal(data, room); err != nil {
			return fmt.Errorf("failed to unmarshal room: %w", err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return room, nil
}
