// Package games holds the built-in game content and the scoring rules.
package games

import (
	"math/rand"

	"github.com/codequest-ai/codequest/internal/models"
)

// Catalog is the built-in content bank for the quiz, speed-coding, and
// debugging games.
type Catalog struct {
	quiz  []models.QuizQuestion
	speed []models.SpeedChallenge
	debug []models.DebugChallenge
}

// NewCatalog returns the default content bank.
func NewCatalog() *Catalog {
	return &Catalog{
		quiz:  quizQuestions,
		speed: speedChallenges,
		debug: debugChallenges,
	}
}

// SelectQuestions returns up to count questions, shuffled. When difficulty
// is not "all" only questions of that difficulty are considered.
func (c *Catalog) SelectQuestions(difficulty string, count int) []models.QuizQuestion {
	var pool []models.QuizQuestion
	for _, q := range c.quiz {
		if difficulty == "all" || difficulty == "" || q.Difficulty == difficulty {
			pool = append(pool, q)
		}
	}

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if count > 0 && count < len(pool) {
		pool = pool[:count]
	}
	return pool
}

// QuizQuestion returns a question by ID, or nil.
func (c *Catalog) QuizQuestion(id int) *models.QuizQuestion {
	for i := range c.quiz {
		if c.quiz[i].ID == id {
			return &c.quiz[i]
		}
	}
	return nil
}

// SpeedChallenges returns every speed-coding challenge.
func (c *Catalog) SpeedChallenges() []models.SpeedChallenge {
	return c.speed
}

// SpeedChallenge returns a challenge by ID, or nil.
func (c *Catalog) SpeedChallenge(id int) *models.SpeedChallenge {
	for i := range c.speed {
		if c.speed[i].ID == id {
			return &c.speed[i]
		}
	}
	return nil
}

// DebugChallenges returns every debugging challenge.
func (c *Catalog) DebugChallenges() []models.DebugChallenge {
	return c.debug
}

// DebugChallenge returns a challenge by ID, or nil.
func (c *Catalog) DebugChallenge(id int) *models.DebugChallenge {
	for i := range c.debug {
		if c.debug[i].ID == id {
			return &c.debug[i]
		}
	}
	return nil
}

var quizQuestions = []models.QuizQuestion{
	{
		ID:         1,
		Question:   "Which keyword defines a function in Python?",
		Options:    []string{"function", "def", "func", "define"},
		Correct:    1,
		Difficulty: "easy",
	},
	{
		ID:         2,
		Question:   "Which Python data structure is mutable?",
		Options:    []string{"tuple", "string", "list", "int"},
		Correct:    2,
		Difficulty: "easy",
	},
	{
		ID:         3,
		Question:   "What is the result of '3' + '4' in Python?",
		Options:    []string{"7", "'34'", "Error", "'3''4'"},
		Correct:    1,
		Difficulty: "medium",
	},
	{
		ID:         4,
		Question:   "What is the time complexity of bubble sort?",
		Options:    []string{"O(n)", "O(n log n)", "O(n²)", "O(1)"},
		Correct:    2,
		Difficulty: "hard",
	},
	{
		ID:         5,
		Question:   "Which method appends an element to the end of a Python list?",
		Options:    []string{"add()", "append()", "insert()", "push()"},
		Correct:    1,
		Difficulty: "easy",
	},
	{
		ID:         6,
		Question:   "Which keyword catches an exception in Python?",
		Options:    []string{"catch", "except", "error", "handle"},
		Correct:    1,
		Difficulty: "medium",
	},
}

var speedChallenges = []models.SpeedChallenge{
	{
		ID:           1,
		Title:        "Hello World",
		Description:  "Write a program that prints 'Hello, World!'",
		ExpectedCode: "print('Hello, World!')",
		Language:     "python",
	},
	{
		ID:           2,
		Title:        "Sum of two numbers",
		Description:  "Write a function that returns the sum of a and b",
		ExpectedCode: "def add(a, b):\n    return a + b",
		Language:     "python",
	},
	{
		ID:           3,
		Title:        "Even number check",
		Description:  "Write a function that checks whether a number is even",
		ExpectedCode: "def is_even(n):\n    return n % 2 == 0",
		Language:     "python",
	},
}

var debugChallenges = []models.DebugChallenge{
	{
		ID:          1,
		Title:       "Syntax error",
		BuggyCode:   "def hello()\n    print('Hello')",
		CorrectCode: "def hello():\n    print('Hello')",
		ErrorType:   "syntax",
		Hint:        "A colon is missing after the function name",
	},
	{
		ID:          2,
		Title:       "Logic error",
		BuggyCode:   "def factorial(n):\n    result = 0\n    for i in range(1, n+1):\n        result *= i\n    return result",
		CorrectCode: "def factorial(n):\n    result = 1\n    for i in range(1, n+1):\n        result *= i\n    return result",
		ErrorType:   "logic",
		Hint:        "The initial value of result is wrong",
	},
	{
		ID:          3,
		Title:       "Indentation error",
		BuggyCode:   "if True:\nprint('Hello')",
		CorrectCode: "if True:\n    print('Hello')",
		ErrorType:   "indentation",
		Hint:        "Python requires correct indentation",
	},
}
