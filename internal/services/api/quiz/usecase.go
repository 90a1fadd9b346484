package quiz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hanlingo/hanlingo/internal/domain/event"
	"github.com/hanlingo/hanlingo/internal/domain/quiz"
	"github.com/hanlingo/hanlingo/internal/obs"
	"github.com/hanlingo/hanlingo/internal/obs/retry"
	pg "github.com/hanlingo/hanlingo/internal/repository/postgres"
)

var ErrNotFound = errors.New("quiz not found")

type Usecase struct {
	repo   quiz.Repo
	events event.Publisher
	log    *zap.Logger
}

func NewUsecase(repo quiz.Repo, events event.Publisher, log *zap.Logger) *Usecase {
	if events == nil {
		events = nopPublisher{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{repo: repo, events: events, log: log}
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, string, any) error { return nil }

func (u *Usecase) List(ctx context.Context) ([]*quiz.Quiz, error) {
	return u.repo.List(ctx)
}

// Details returns a quiz with its questions. Correct answers never leave the
// repository layer here. A quiz without questions is treated as missing.
func (u *Usecase) Details(ctx context.Context, quizID int64) (*quiz.Details, error) {
	q, err := u.repo.GetByID(ctx, quizID)
	if err != nil {
		if errors.Is(err, pg.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	questions, err := u.repo.ListQuestions(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrNotFound
	}
	return &quiz.Details{Quiz: *q, Questions: questions}, nil
}

// Submit grades a submission against the stored answers. Each question scores
// one point for an exact match; unanswered questions score zero. The result
// is persisted before it is returned.
func (u *Usecase) Submit(ctx context.Context, userID, quizID int64, sub quiz.Submission) (*quiz.Result, error) {
	answers, err := u.repo.CorrectAnswers(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if len(answers) == 0 {
		return nil, ErrNotFound
	}

	given := make(map[int64]string, len(sub.Answers))
	for _, a := range sub.Answers {
		given[a.QuestionID] = a.Answer
	}

	score := 0
	for qid, correct := range answers {
		if given[qid] == correct {
			score++
		}
	}

	if err := u.repo.SaveResult(ctx, userID, quizID, score); err != nil {
		return nil, err
	}
	obs.QuizSubmissionsTotal.Inc()

	res := &quiz.Result{Score: score, TotalQuestions: len(answers)}

	evt := event.QuizSubmitted{
		Type:       event.TypeQuizSubmitted,
		UserID:     userID,
		QuizID:     quizID,
		Score:      score,
		Total:      res.TotalQuestions,
		OccurredAt: time.Now().UTC(),
	}
	if err := retry.Do(ctx, func() error {
		return u.events.Publish(ctx, fmt.Sprintf("user:%d", userID), evt)
	}, retry.PublishPolicy(obs.WithTrace(ctx, u.log))); err != nil {
		u.log.Warn("event publish failed", zap.Int64("quiz_id", quizID), zap.Error(err))
	}
	return res, nil
}
