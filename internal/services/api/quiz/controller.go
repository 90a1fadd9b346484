package quiz

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hanlingo/hanlingo/internal/domain/quiz"
	"github.com/hanlingo/hanlingo/internal/obs"
	"github.com/hanlingo/hanlingo/internal/services/api/auth"
)

type Controller struct {
	uc  *Usecase
	log *zap.Logger
}

func NewController(uc *Usecase, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{uc: uc, log: log}
}

func (ct *Controller) List(c *gin.Context) {
	qs, err := ct.uc.List(c.Request.Context())
	if err != nil {
		ct.fail(c, err)
		return
	}
	if qs == nil {
		qs = []*quiz.Quiz{}
	}
	c.JSON(http.StatusOK, qs)
}

func (ct *Controller) Details(c *gin.Context) {
	id, ok := quizID(c)
	if !ok {
		return
	}
	d, err := ct.uc.Details(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "quiz not found"})
			return
		}
		ct.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (ct *Controller) Submit(c *gin.Context) {
	ident, err := auth.IdentityFrom(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, ok := quizID(c)
	if !ok {
		return
	}

	var sub quiz.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "answers are required"})
		return
	}

	res, err := ct.uc.Submit(c.Request.Context(), ident.UserID, id, sub)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "quiz not found"})
			return
		}
		ct.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func quizID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "quiz not found"})
		return 0, false
	}
	return id, true
}

func (ct *Controller) fail(c *gin.Context, err error) {
	obs.WithTrace(c.Request.Context(), ct.log).Error("quiz request failed",
		zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
