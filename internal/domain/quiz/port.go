package quiz

import "context"

type Repo interface {
	List(ctx context.Context) ([]*Quiz, error)
	GetByID(ctx context.Context, id int64) (*Quiz, error)
	ListQuestions(ctx context.Context, quizID int64) ([]*Question, error)

	// CorrectAnswers maps question id to the stored correct answer for one quiz.
	CorrectAnswers(ctx context.Context, quizID int64) (map[int64]string, error)

	SaveResult(ctx context.Context, userID, quizID int64, score int) error
}
