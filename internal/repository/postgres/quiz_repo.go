package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hanlingo/hanlingo/internal/domain/quiz"
)

var _ quiz.Repo = (*QuizRepo)(nil)

type QuizRepo struct{ db *DB }

func NewQuizRepo(db *DB) *QuizRepo { return &QuizRepo{db: db} }

const (
	qQList = `
SELECT id, name, description, created_at
FROM quizzes
ORDER BY id;`

	qQByID = `
SELECT id, name, description, created_at
FROM quizzes
WHERE id = $1;`

	qQQuestions = `
SELECT id, quiz_id, question, options
FROM quiz_questions
WHERE quiz_id = $1
ORDER BY id;`

	qQAnswers = `
SELECT id, correct_answer
FROM quiz_questions
WHERE quiz_id = $1;`

	qQSaveResult = `
INSERT INTO quiz_results (user_id, quiz_id, score)
VALUES ($1, $2, $3);`
)

func (r *QuizRepo) List(ctx context.Context) ([]*quiz.Quiz, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Pool.Query(ctx, qQList)
	if err != nil {
		return nil, fmt.Errorf("query quizzes: %w", err)
	}
	defer rows.Close()

	var out []*quiz.Quiz
	for rows.Next() {
		var q quiz.Quiz
		if err := rows.Scan(&q.ID, &q.Name, &q.Description, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan quiz: %w", err)
		}
		out = append(out, &q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

func (r *QuizRepo) GetByID(ctx context.Context, id int64) (*quiz.Quiz, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var q quiz.Quiz
	if err := r.db.Pool.QueryRow(ctx, qQByID, id).
		Scan(&q.ID, &q.Name, &q.Description, &q.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan quiz: %w", err)
	}
	return &q, nil
}

func (r *QuizRepo) ListQuestions(ctx context.Context, quizID int64) ([]*quiz.Question, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Pool.Query(ctx, qQQuestions, quizID)
	if err != nil {
		return nil, fmt.Errorf("query quiz questions: %w", err)
	}
	defer rows.Close()

	var out []*quiz.Question
	for rows.Next() {
		var q quiz.Question
		if err := rows.Scan(&q.ID, &q.QuizID, &q.Question, &q.Options); err != nil {
			return nil, fmt.Errorf("scan quiz question: %w", err)
		}
		out = append(out, &q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

func (r *QuizRepo) CorrectAnswers(ctx context.Context, quizID int64) (map[int64]string, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Pool.Query(ctx, qQAnswers, quizID)
	if err != nil {
		return nil, fmt.Errorf("query quiz answers: %w", err)
	}
	defer rows.Close()

	out := make(map[int64]string)
	for rows.Next() {
		var (
			id     int64
			answer string
		)
		if err := rows.Scan(&id, &answer); err != nil {
			return nil, fmt.Errorf("scan quiz answer: %w", err)
		}
		out[id] = answer
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

func (r *QuizRepo) SaveResult(ctx context.Context, userID, quizID int64, score int) error {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	if _, err := r.db.Pool.Exec(ctx, qQSaveResult, userID, quizID, score); err != nil {
		return fmt.Errorf("insert quiz result: %w", err)
	}
	return nil
}
