package content

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanlingo/hanlingo/internal/domain/content"
	pg "github.com/hanlingo/hanlingo/internal/repository/postgres"
)

type fakeContentRepo struct {
	nextID int64
	byID   map[int64]*content.Hieroglyph
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{byID: map[int64]*content.Hieroglyph{}}
}

func (f *fakeContentRepo) Create(_ context.Context, h *content.Hieroglyph) error {
	f.nextID++
	h.ID = f.nextID
	cp := *h
	f.byID[h.ID] = &cp
	return nil
}

func (f *fakeContentRepo) GetByID(_ context.Context, id int64) (*content.Hieroglyph, error) {
	h, ok := f.byID[id]
	if !ok {
		return nil, pg.ErrNotFound
	}
	return h, nil
}

func (f *fakeContentRepo) List(context.Context) ([]*content.Hieroglyph, error) {
	out := make([]*content.Hieroglyph, 0, len(f.byID))
	for _, h := range f.byID {
		out = append(out, h)
	}
	return out, nil
}

func newContentRouter() (*gin.Engine, *fakeContentRepo) {
	gin.SetMode(gin.TestMode)
	repo := newFakeContentRepo()
	ctrl := NewController(NewUsecase(repo), nil)

	r := gin.New()
	r.POST("/api/hieroglyphs", ctrl.Create)
	r.GET("/api/hieroglyphs", ctrl.List)
	r.GET("/api/hieroglyphs/:id", ctrl.Get)
	return r, repo
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateHieroglyph(t *testing.T) {
	r, repo := newContentRouter()

	w := postJSON(t, r, "/api/hieroglyphs", gin.H{
		"character": "水", "pinyin": "shuǐ", "translation": "water",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, repo.byID, 1)

	w = postJSON(t, r, "/api/hieroglyphs", gin.H{"character": "火"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, r, "/api/hieroglyphs", gin.H{
		"character": "  ", "pinyin": "x", "translation": "y",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetHieroglyph(t *testing.T) {
	r, _ := newContentRouter()
	postJSON(t, r, "/api/hieroglyphs", gin.H{
		"character": "水", "pinyin": "shuǐ", "translation": "water",
	})

	req := httptest.NewRequest(http.MethodGet, "/api/hieroglyphs/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var h content.Hieroglyph
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &h))
	assert.Equal(t, "水", h.Character)

	req = httptest.NewRequest(http.MethodGet, "/api/hieroglyphs/99", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/hieroglyphs/abc", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListHieroglyphs_EmptyIsArray(t *testing.T) {
	r, _ := newContentRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/hieroglyphs", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}
