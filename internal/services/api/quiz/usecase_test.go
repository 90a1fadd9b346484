package quiz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanlingo/hanlingo/internal/domain/quiz"
	pg "github.com/hanlingo/hanlingo/internal/repository/postgres"
)

type fakeQuizRepo struct {
	quizzes   map[int64]*quiz.Quiz
	questions map[int64][]*quiz.Question
	answers   map[int64]map[int64]string
	saved     []savedResult
}

type savedResult struct {
	userID, quizID int64
	score          int
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{
		quizzes:   map[int64]*quiz.Quiz{},
		questions: map[int64][]*quiz.Question{},
		answers:   map[int64]map[int64]string{},
	}
}

func (f *fakeQuizRepo) List(context.Context) ([]*quiz.Quiz, error) {
	out := make([]*quiz.Quiz, 0, len(f.quizzes))
	for _, q := range f.quizzes {
		out = append(out, q)
	}
	return out, nil
}

func (f *fakeQuizRepo) GetByID(_ context.Context, id int64) (*quiz.Quiz, error) {
	q, ok := f.quizzes[id]
	if !ok {
		return nil, pg.ErrNotFound
	}
	return q, nil
}

func (f *fakeQuizRepo) ListQuestions(_ context.Context, quizID int64) ([]*quiz.Question, error) {
	return f.questions[quizID], nil
}

func (f *fakeQuizRepo) CorrectAnswers(_ context.Context, quizID int64) (map[int64]string, error) {
	return f.answers[quizID], nil
}

func (f *fakeQuizRepo) SaveResult(_ context.Context, userID, quizID int64, score int) error {
	f.saved = append(f.saved, savedResult{userID: userID, quizID: quizID, score: score})
	return nil
}

func seedQuiz(f *fakeQuizRepo) {
	f.quizzes[1] = &quiz.Quiz{ID: 1, Name: "basics"}
	f.questions[1] = []*quiz.Question{
		{ID: 10, QuizID: 1, Question: "你好 means?"},
		{ID: 11, QuizID: 1, Question: "谢谢 means?"},
		{ID: 12, QuizID: 1, Question: "再见 means?"},
	}
	f.answers[1] = map[int64]string{10: "hello", 11: "thanks", 12: "goodbye"}
}

func TestDetails_HidesAnswersAndMisses(t *testing.T) {
	repo := newFakeQuizRepo()
	seedQuiz(repo)
	repo.quizzes[2] = &quiz.Quiz{ID: 2, Name: "empty"}
	uc := NewUsecase(repo, nil, nil)

	d, err := uc.Details(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, d.Questions, 3)

	_, err = uc.Details(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)

	// quiz row exists but has no questions
	_, err = uc.Details(context.Background(), 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmit_GradesExactMatches(t *testing.T) {
	repo := newFakeQuizRepo()
	seedQuiz(repo)
	uc := NewUsecase(repo, nil, nil)

	res, err := uc.Submit(context.Background(), 7, 1, quiz.Submission{Answers: []quiz.Answer{
		{QuestionID: 10, Answer: "hello"},
		{QuestionID: 11, Answer: "THANKS"}, // case matters
		{QuestionID: 12, Answer: "goodbye"},
	}})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Score)
	assert.Equal(t, 3, res.TotalQuestions)

	require.Len(t, repo.saved, 1)
	assert.Equal(t, savedResult{userID: 7, quizID: 1, score: 2}, repo.saved[0])
}

func TestSubmit_MissingAnswersScoreZero(t *testing.T) {
	repo := newFakeQuizRepo()
	seedQuiz(repo)
	uc := NewUsecase(repo, nil, nil)

	res, err := uc.Submit(context.Background(), 7, 1, quiz.Submission{})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, 3, res.TotalQuestions)
}

func TestSubmit_UnknownQuestionIDsIgnored(t *testing.T) {
	repo := newFakeQuizRepo()
	seedQuiz(repo)
	uc := NewUsecase(repo, nil, nil)

	res, err := uc.Submit(context.Background(), 7, 1, quiz.Submission{Answers: []quiz.Answer{
		{QuestionID: 999, Answer: "hello"},
		{QuestionID: 10, Answer: "hello"},
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Score)
}

func TestSubmit_QuizWithoutQuestions(t *testing.T) {
	repo := newFakeQuizRepo()
	uc := NewUsecase(repo, nil, nil)

	_, err := uc.Submit(context.Background(), 7, 1, quiz.Submission{})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, repo.saved)
}
