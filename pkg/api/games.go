package api

import "github.com/codequest-ai/codequest/internal/models"

// QuizQuestionsResponse is the shape of GET /api/games/quiz/questions
type QuizQuestionsResponse struct {
	Success   bool                  `json:"success"`
	Questions []models.QuizQuestion `json:"questions"`
}

// QuizSubmitRequest is the body of POST /api/games/quiz/submit
type QuizSubmitRequest struct {
	Answers     []models.QuizAnswer `json:"answers"`
	TimeTakenMS int64               `json:"time_taken"`
}

// QuizSubmitResponse is the result of a quiz submission
type QuizSubmitResponse struct {
	Success     bool    `json:"success"`
	Score       float64 `json:"score"`
	Correct     int     `json:"correct"`
	Total       int     `json:"total"`
	TimeTakenMS int64   `json:"time"`
}

// SpeedChallengesResponse is the shape of GET /api/games/speed-coding/challenges
type SpeedChallengesResponse struct {
	Success    bool                    `json:"success"`
	Challenges []models.SpeedChallenge `json:"challenges"`
}

// CodeSubmitRequest is the body of the speed-coding and debugging submit
// endpoints.
type CodeSubmitRequest struct {
	ChallengeID int    `json:"challenge_id"`
	Code        string `json:"code"`
	TimeTakenMS int64  `json:"time_taken"`
}

// SpeedSubmitResponse is the result of a speed-coding submission
type SpeedSubmitResponse struct {
	Success      bool    `json:"success"`
	Correct      bool    `json:"correct"`
	Score        float64 `json:"score"`
	TimeTakenMS  int64   `json:"time"`
	ExpectedCode string  `json:"expected_code"`
}

// DebugChallengesResponse is the shape of GET /api/games/debugging/challenges
type DebugChallengesResponse struct {
	Success    bool                    `json:"success"`
	Challenges []models.DebugChallenge `json:"challenges"`
}

// DebugSubmitResponse is the result of a debugging submission
type DebugSubmitResponse struct {
	Success     bool    `json:"success"`
	Correct     bool    `json:"correct"`
	Score       float64 `json:"score"`
	TimeTakenMS int64   `json:"time"`
	CorrectCode string  `json:"correct_code"`
	Hint        string  `json:"hint"`
}

// StorySaveRequest is the body of POST /api/games/story/save
type StorySaveRequest struct {
	Title string `json:"title"`
	Code  string `json:"code"`
	Story string `json:"story"`
}

// StorySaveResponse returns the ID of the stored story
type StorySaveResponse struct {
	Success bool   `json:"success"`
	StoryID string `json:"story_id"`
}

// StoryListResponse is the shape of GET /api/games/story/list
type StoryListResponse struct {
	Success bool            `json:"success"`
	Stories []*models.Story `json:"stories"`
}

// BattleCreateResponse returns the code of the created room
type BattleCreateResponse struct {
	Success  bool   `json:"success"`
	BattleID string `json:"battle_id"`
}

// BattleJoinRequest is the body of POST /api/games/battle/join
type BattleJoinRequest struct {
	BattleID string `json:"battle_id"`
}

// BattleJoinResponse returns the room after joining
type BattleJoinResponse struct {
	Success bool               `json:"success"`
	Battle  *models.BattleRoom `json:"battle"`
}

// LeaderboardResponse is the shape of GET /api/games/leaderboard
type LeaderboardResponse struct {
	Success     bool                       `json:"success"`
	Leaderboard []*models.LeaderboardEntry `json:"leaderboard"`
}

// ExecuteRequest is the body of POST /api/execute
type ExecuteRequest struct {
	Code string `json:"code"`
}

// ExecuteResponse is the outcome of a snippet execution
type ExecuteResponse struct {
	Success bool   `json:"success"`
	Output  string `json:"output,omitempty"`
	Error   string `json:"error,omitempty"`
}
