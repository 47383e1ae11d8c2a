package sqlite

import (
	"context"
	"fmt"

	"github.com/codequest-ai/codequest/internal/models"
)

// SaveStory stores a new code story
func (s *Storage) SaveStory(ctx context.Context, story *models.Story) error {
	query := `
		INSERT INTO stories (id, user_id, title, code, story, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		story.ID,
		story.UserID,
		story.Title,
		story.Code,
		story.Story,
		story.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to insert story: %w", err)
	}

	return nil
}

// ListStories retrieves all stories of a user, newest first
func (s *Storage) ListStories(ctx context.Context, userID string) ([]*models.Story, error) {
	query := `
		SELECT id, user_id, title, code, story, created_at
		FROM stories
		WHERE user_id = ?
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query stories: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var stories []*models.Story

	for rows.Next() {
		story := &models.Story{}
		if err := rows.Scan(
			&story.ID,
			&story.UserID,
			&story.Title,
			&story.Code,
			&story.Story,
			&story.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan story: %w", err)
		}
		stories = append(stories, story)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return stories, nil
}

// SaveResult records one finished game round
func (s *Storage) SaveResult(ctx context.Context, result *models.GameResult) error {
	query := `
		INSERT INTO game_results (id, user_id, game, score, correct, total, time_taken_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		result.ID,
		result.UserID,
		result.Game,
		result.Score,
		result.Correct,
		result.Total,
		result.TimeTakenMS,
		result.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to insert game result: %w", err)
	}

	return nil
}

// Leaderboard aggregates results per user: total score and games played,
// highest total first.
func (s *Storage) Leaderboard(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error) {
	query := `
		SELECT u.full_name, SUM(r.score) AS total_score, COUNT(*) AS games_played
		FROM game_results r
		JOIN users u ON u.id = r.user_id
		GROUP BY r.user_id
		ORDER BY total_score DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []*models.LeaderboardEntry

	for rows.Next() {
		entry := &models.LeaderboardEntry{}
		if err := rows.Scan(&entry.Name, &entry.Score, &entry.GamesPlayed); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entries, nil
}
