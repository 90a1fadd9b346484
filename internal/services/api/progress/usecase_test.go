package progress

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanlingo/hanlingo/internal/domain/progress"
)

type progressKey struct {
	userID    int64
	ct        progress.ContentType
	contentID int64
}

type fakeProgressRepo struct {
	entries map[progressKey]*progress.Entry
	nextID  int64
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{entries: map[progressKey]*progress.Entry{}}
}

func (f *fakeProgressRepo) MarkLearned(_ context.Context, userID int64, ct progress.ContentType, contentID int64) error {
	k := progressKey{userID: userID, ct: ct, contentID: contentID}
	now := time.Now().UTC()
	if e, ok := f.entries[k]; ok {
		e.LearnedAt = &now
		return nil
	}
	f.nextID++
	f.entries[k] = &progress.Entry{
		ID:          f.nextID,
		UserID:      userID,
		ContentType: ct,
		ContentID:   contentID,
		IsLearned:   true,
		LearnedAt:   &now,
	}
	return nil
}

func (f *fakeProgressRepo) ListByUser(_ context.Context, userID int64) ([]*progress.Entry, error) {
	var out []*progress.Entry
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func TestMarkLearned_Upserts(t *testing.T) {
	repo := newFakeProgressRepo()
	uc := NewUsecase(repo, nil, nil)
	ctx := context.Background()

	require.NoError(t, uc.MarkLearned(ctx, 1, progress.TypeHieroglyph, 5))
	require.NoError(t, uc.MarkLearned(ctx, 1, progress.TypeHieroglyph, 5))

	entries, err := uc.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.True(t, entries[0].IsLearned)
}

func TestMarkLearned_RejectsUnknownContentType(t *testing.T) {
	uc := NewUsecase(newFakeProgressRepo(), nil, nil)

	err := uc.MarkLearned(context.Background(), 1, "movie", 5)
	assert.ErrorIs(t, err, ErrValidation)

	err = uc.MarkLearned(context.Background(), 1, progress.TypeWord, 0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestListByUser_ScopedToUser(t *testing.T) {
	repo := newFakeProgressRepo()
	uc := NewUsecase(repo, nil, nil)
	ctx := context.Background()

	require.NoError(t, uc.MarkLearned(ctx, 1, progress.TypeWord, 1))
	require.NoError(t, uc.MarkLearned(ctx, 2, progress.TypeWord, 1))

	mine, err := uc.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
	assert.Equal(t, int64(1), mine[0].UserID)
}
