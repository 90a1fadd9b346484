package quiz

import (
	"encoding/json"
	"time"
)

type Quiz struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Question never carries the correct answer; that stays server-side and is
// fetched separately for grading.
type Question struct {
	ID       int64           `json:"id"`
	QuizID   int64           `json:"quiz_id"`
	Question string          `json:"question"`
	Options  json.RawMessage `json:"options,omitempty"`
}

type Details struct {
	Quiz
	Questions []*Question `json:"questions"`
}

type Answer struct {
	QuestionID int64  `json:"question_id"`
	Answer     string `json:"answer"`
}

type Submission struct {
	Answers []Answer `json:"answers"`
}

type Result struct {
	Score          int `json:"score"`
	TotalQuestions int `json:"total_questions"`
}
