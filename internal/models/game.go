package models

import "time"

// QuizQuestion is a multiple-choice question. Correct is the index into
// Options.
type QuizQuestion struct {
	ID         int      `json:"id"`
	Question   string   `json:"question"`
	Options    []string `json:"options"`
	Correct    int      `json:"correct"`
	Difficulty string   `json:"difficulty"` // easy, medium, hard
}

// QuizAnswer is a single submitted answer.
type QuizAnswer struct {
	QuestionID     int `json:"question_id"`
	SelectedOption int `json:"selected_option"`
}

// SpeedChallenge is a speed-typing task: reproduce ExpectedCode as fast as
// possible.
type SpeedChallenge struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ExpectedCode string `json:"expected_code"`
	Language     string `json:"language"`
}

// DebugChallenge is a fix-the-bug task.
type DebugChallenge struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	BuggyCode   string `json:"buggy_code"`
	CorrectCode string `json:"correct_code"`
	ErrorType   string `json:"error_type"`
	Hint        string `json:"hint"`
}

// Story is a user-authored "code story": a snippet plus its narrative.
type Story struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Title     string    `json:"title"`
	Code      string    `json:"code"`
	Story     string    `json:"story"`
	CreatedAt time.Time `json:"created_at"`
}

// GameResult records one finished game round for a user.
type GameResult struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Game        string    `json:"game"` // quiz, speed-coding, debugging
	Score       float64   `json:"score"`
	Correct     int       `json:"correct"`
	Total       int       `json:"total"`
	TimeTakenMS int64     `json:"time_taken_ms"`
	CreatedAt   time.Time `json:"created_at"`
}

// LeaderboardEntry is one aggregated leaderboard row.
type LeaderboardEntry struct {
	Name        string  `json:"name"`
	Score       float64 `json:"score"`
	GamesPlayed int     `json:"games_played"`
}

// Battle room statuses.
const (
	BattleStatusWaiting = "waiting"
	BattleStatusReady   = "ready"
)

// BattleRoom is a two-player code battle lobby, identified by a short
// shareable code.
type BattleRoom struct {
	ID        string    `json:"id"` // 8-char room code
	Creator   string    `json:"creator"`
	Players   []string  `json:"players"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// HasPlayer reports whether the given user already joined the room.
func (b *BattleRoom) HasPlayer(userID string) bool {
	for _, p := range b.Players {
		if p == userID {
			return true
		}
	}
	return false
}
