package storage

import (
	"context"

	"github.com/codequest-ai/codequest/internal/models"
)

// StoryStorage defines the interface for code story persistence
type StoryStorage interface {
	// SaveStory stores a new story
	SaveStory(ctx context.Context, story *models.Story) error

	// ListStories retrieves all stories of a user, newest first
	ListStories(ctx context.Context, userID string) ([]*models.Story, error)
}

// ResultStorage defines the interface for game result persistence
type ResultStorage interface {
	// SaveResult records one finished game round
	SaveResult(ctx context.Context, result *models.GameResult) error

	// Leaderboard aggregates results per user: total score and games
	// played, highest total first
	Leaderboard(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error)
}

// RoomStorage defines the interface for battle room persistence
type RoomStorage interface {
	// CreateRoom stores a new battle room
	CreateRoom(ctx context.Context, room *models.BattleRoom) error

	// GetRoom retrieves a battle room by its code
	// Returns ErrRoomNotFound if the room doesn't exist
	GetRoom(ctx context.Context, roomID string) (*models.BattleRoom, error)

	// JoinRoom adds the user to the room and returns the updated room.
	// The whole read-modify-write runs in one transaction, so concurrent
	// joins cannot lose each other. Joining a room the user is already in
	// is a no-op; the room becomes ready at two or more players.
	// Returns ErrRoomNotFound if the room doesn't exist.
	JoinRoom(ctx context.Context, roomID, userID string) (*models.BattleRoom, error)
}
