package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/codequest-ai/codequest/internal/games"
	"github.com/codequest-ai/codequest/internal/models"
	"github.com/codequest-ai/codequest/internal/server/storage"
	"github.com/codequest-ai/codequest/pkg/api"
)

// GamesHandler serves the /api/games endpoints.
type GamesHandler struct {
	logger  *slog.Logger
	catalog *games.Catalog
	stories storage.StoryStorage
	results storage.ResultStorage
	rooms   storage.RoomStorage
}

// NewGamesHandler creates a new GamesHandler.
func NewGamesHandler(
	logger *slog.Logger,
	catalog *games.Catalog,
	stories storage.StoryStorage,
	results storage.ResultStorage,
	rooms storage.RoomStorage,
) *GamesHandler {
	return &GamesHandler{
		logger:  logger,
		catalog: catalog,
		stories: stories,
		results: results,
		rooms:   rooms,
	}
}

// QuizQuestions handles GET /api/games/quiz/questions
func (h *GamesHandler) QuizQuestions(w http.ResponseWriter, r *http.Request) {
	difficulty := r.URL.Query().Get("difficulty")
	if difficulty == "" {
		difficulty = "all"
	}

	count := 5
	if v := r.URL.Query().Get("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			sendError(h.logger, w, "count must be a positive number", http.StatusBadRequest)
			return
		}
		count = n
	}

	questions := h.catalog.SelectQuestions(difficulty, count)

	sendJSON(h.logger, w, api.QuizQuestionsResponse{
		Success:   true,
		Questions: questions,
	}, http.StatusOK)
}

// QuizSubmit handles POST /api/games/quiz/submit. The result is persisted
// when the request carries a valid session; anonymous players just get
// their score back.
func (h *GamesHandler) QuizSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.QuizSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	correct, total, score := h.catalog.ScoreQuiz(req.Answers)

	h.recordResult(ctx, "quiz", score, correct, total, req.TimeTakenMS)

	sendJSON(h.logger, w, api.QuizSubmitResponse{
		Success:     true,
		Score:       score,
		Correct:     correct,
		Total:       total,
		TimeTakenMS: req.TimeTakenMS,
	}, http.StatusOK)
}

// SpeedChallenges handles GET /api/games/speed-coding/challenges
func (h *GamesHandler) SpeedChallenges(w http.ResponseWriter, r *http.Request) {
	sendJSON(h.logger, w, api.SpeedChallengesResponse{
		Success:    true,
		Challenges: h.catalog.SpeedChallenges(),
	}, http.StatusOK)
}

// SpeedSubmit handles POST /api/games/speed-coding/submit
func (h *GamesHandler) SpeedSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.CodeSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	challenge := h.catalog.SpeedChallenge(req.ChallengeID)
	if challenge == nil {
		sendError(h.logger, w, "Challenge not found", http.StatusNotFound)
		return
	}

	expected := strings.TrimSpace(challenge.ExpectedCode)
	correct := strings.TrimSpace(req.Code) == expected
	score := games.ScoreSpeed(correct, req.TimeTakenMS)

	h.recordResult(ctx, "speed-coding", score, boolToInt(correct), 1, req.TimeTakenMS)

	sendJSON(h.logger, w, api.SpeedSubmitResponse{
		Success:      true,
		Correct:      correct,
		Score:        score,
		TimeTakenMS:  req.TimeTakenMS,
		ExpectedCode: expected,
	}, http.StatusOK)
}

// DebugChallenges handles GET /api/games/debugging/challenges
func (h *GamesHandler) DebugChallenges(w http.ResponseWriter, r *http.Request) {
	sendJSON(h.logger, w, api.DebugChallengesResponse{
		Success:    true,
		Challenges: h.catalog.DebugChallenges(),
	}, http.StatusOK)
}

// DebugSubmit handles POST /api/games/debugging/submit
func (h *GamesHandler) DebugSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.CodeSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	challenge := h.catalog.DebugChallenge(req.ChallengeID)
	if challenge == nil {
		sendError(h.logger, w, "Challenge not found", http.StatusNotFound)
		return
	}

	correctCode := strings.TrimSpace(challenge.CorrectCode)
	correct := strings.TrimSpace(req.Code) == correctCode
	score := games.ScoreDebug(correct, req.TimeTakenMS)

	h.recordResult(ctx, "debugging", score, boolToInt(correct), 1, req.TimeTakenMS)

	sendJSON(h.logger, w, api.DebugSubmitResponse{
		Success:     true,
		Correct:     correct,
		Score:       score,
		TimeTakenMS: req.TimeTakenMS,
		CorrectCode: correctCode,
		Hint:        challenge.Hint,
	}, http.StatusOK)
}

// StorySave handles POST /api/games/story/save (login required)
func (h *GamesHandler) StorySave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := GetUser(ctx)
	if !ok {
		sendError(h.logger, w, "Please log in", http.StatusUnauthorized)
		return
	}

	var req api.StorySaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		sendError(h.logger, w, "title cannot be empty", http.StatusBadRequest)
		return
	}

	story := &models.Story{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Title:     req.Title,
		Code:      req.Code,
		Story:     req.Story,
		CreatedAt: time.Now(),
	}

	if err := h.stories.SaveStory(ctx, story); err != nil {
		h.logger.ErrorContext(ctx, "failed to save story", slog.Any("error", err))
		sendError(h.logger, w, "Something went wrong, please try again", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.StorySaveResponse{
		Success: true,
		StoryID: story.ID,
	}, http.StatusOK)
}

// StoryList handles GET /api/games/story/list (login required)
func (h *GamesHandler) StoryList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := GetUser(ctx)
	if !ok {
		sendError(h.logger, w, "Please log in", http.StatusUnauthorized)
		return
	}

	stories, err := h.stories.ListStories(ctx, user.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list stories", slog.Any("error", err))
		sendError(h.logger, w, "Something went wrong, please try again", http.StatusInternalServerError)
		return
	}

	if stories == nil {
		stories = []*models.Story{}
	}

	sendJSON(h.logger, w, api.StoryListResponse{
		Success: true,
		Stories: stories,
	}, http.StatusOK)
}

// BattleCreate handles POST /api/games/battle/create (login required)
func (h *GamesHandler) BattleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := GetUser(ctx)
	if !ok {
		sendError(h.logger, w, "Please log in", http.StatusUnauthorized)
		return
	}

	// Short shareable room code
	roomID := uuid.New().String()[:8]

	room := &models.BattleRoom{
		ID:        roomID,
		Creator:   user.ID,
		Players:   []string{user.ID},
		Status:    models.BattleStatusWaiting,
		CreatedAt: time.Now(),
	}

	if err := h.rooms.CreateRoom(ctx, room); err != nil {
		h.logger.ErrorContext(ctx, "failed to create battle room", slog.Any("error", err))
		sendError(h.logger, w, "Something went wrong, please try again", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.BattleCreateResponse{
		Success:  true,
		BattleID: roomID,
	}, http.StatusOK)
}

// BattleJoin handles POST /api/games/battle/join (login required).
// Joining a room the user is already in is a no-op; the room becomes ready
// once two or more players joined.
func (h *GamesHandler) BattleJoin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := GetUser(ctx)
	if !ok {
		sendError(h.logger, w, "Please log in", http.StatusUnauthorized)
		return
	}

	var req api.BattleJoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	room, err := h.rooms.JoinRoom(ctx, req.BattleID, user.ID)
	if err != nil {
		if errors.Is(err, storage.ErrRoomNotFound) {
			sendError(h.logger, w, "Battle room not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to join battle room", slog.Any("error", err))
		sendError(h.logger, w, "Something went wrong, please try again", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.BattleJoinResponse{
		Success: true,
		Battle:  room,
	}, http.StatusOK)
}

// Leaderboard handles GET /api/games/leaderboard
func (h *GamesHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entries, err := h.results.Leaderboard(ctx, 10)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load leaderboard", slog.Any("error", err))
		sendError(h.logger, w, "Something went wrong, please try again", http.StatusInternalServerError)
		return
	}

	if entries == nil {
		entries = []*models.LeaderboardEntry{}
	}

	sendJSON(h.logger, w, api.LeaderboardResponse{
		Success:     true,
		Leaderboard: entries,
	}, http.StatusOK)
}

// recordResult persists a game round for the authenticated user, if any.
// Submissions are open to anonymous players; their rounds are not recorded.
func (h *GamesHandler) recordResult(ctx context.Context, game string, score float64, correct, total int, timeTakenMS int64) {
	user, ok := GetUser(ctx)
	if !ok {
		return
	}

	result := &models.GameResult{
		ID:          uuid.New().String(),
		UserID:      user.ID,
		Game:        game,
		Score:       score,
		Correct:     correct,
		Total:       total,
		TimeTakenMS: timeTakenMS,
		CreatedAt:   time.Now(),
	}

	if err := h.results.SaveResult(ctx, result); err != nil {
		// The player still gets their score; only the record is lost
		h.logger.ErrorContext(ctx, "failed to save game result",
			slog.String("game", game),
			slog.Any("error", err))
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
