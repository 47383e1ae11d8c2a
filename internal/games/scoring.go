package games

import (
	"math"

	"github.com/codequest-ai/codequest/internal/models"
)

// ScoreQuiz counts correct answers against the catalog and returns the
// score as a 0-100 percentage rounded to two decimals.
func (c *Catalog) ScoreQuiz(answers []models.QuizAnswer) (correct, total int, score float64) {
	total = len(answers)
	for _, a := range answers {
		q := c.QuizQuestion(a.QuestionID)
		if q != nil && q.Correct == a.SelectedOption {
			correct++
		}
	}
	if total > 0 {
		score = round2(float64(correct) / float64(total) * 100)
	}
	return correct, total, score
}

// ScoreSpeed rates a correct speed-coding solution: faster is better.
// Two points per second are deducted, capped at 50, with a floor of 50.
// Incorrect solutions score zero.
func ScoreSpeed(correct bool, timeTakenMS int64) float64 {
	if !correct {
		return 0
	}
	penalty := math.Min(float64(timeTakenMS)/1000*2, 50)
	return round2(math.Max(100-penalty, 50))
}

// ScoreDebug rates a correct debugging solution: one point per second is
// deducted, capped at 30, with a floor of 70. Incorrect solutions score
// zero.
func ScoreDebug(correct bool, timeTakenMS int64) float64 {
	if !correct {
		return 0
	}
	penalty := math.Min(float64(timeTakenMS)/1000, 30)
	return round2(math.Max(100-penalty, 70))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
