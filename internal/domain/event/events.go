package event

import "time"

const (
	TypeUserRegistered  = "user.registered"
	TypeProgressLearned = "progress.learned"
	TypeQuizSubmitted   = "quiz.submitted"
)

type UserRegistered struct {
	Type       string    `json:"type"`
	UserID     int64     `json:"user_id"`
	Nickname   string    `json:"nickname"`
	OccurredAt time.Time `json:"occurred_at"`
}

type ProgressLearned struct {
	Type        string    `json:"type"`
	UserID      int64     `json:"user_id"`
	ContentType string    `json:"content_type"`
	ContentID   int64     `json:"content_id"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type QuizSubmitted struct {
	Type       string    `json:"type"`
	UserID     int64     `json:"user_id"`
	QuizID     int64     `json:"quiz_id"`
	Score      int       `json:"score"`
	Total      int       `json:"total"`
	OccurredAt time.Time `json:"occurred_at"`
}
