package progress

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hanlingo/hanlingo/internal/domain/progress"
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

type learnRequest struct {
	ContentType string `json:"content_type" binding:"required"`
	ContentID   int64  `json:"content_id" binding:"required"`
}

func (ct *Controller) Learn(c *gin.Context) {
	id, err := auth.IdentityFrom(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req learnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content_type and content_id are required"})
		return
	}

	err = ct.uc.MarkLearned(c.Request.Context(), id.UserID, progress.ContentType(req.ContentType), req.ContentID)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown content_type or bad content_id"})
			return
		}
		ct.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (ct *Controller) Me(c *gin.Context) {
	id, err := auth.IdentityFrom(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	entries, err := ct.uc.ListByUser(c.Request.Context(), id.UserID)
	if err != nil {
		ct.fail(c, err)
		return
	}
	if entries == nil {
		entries = []*progress.Entry{}
	}
	c.JSON(http.StatusOK, entries)
}

func (ct *Controller) fail(c *gin.Context, err error) {
	obs.WithTrace(c.Request.Context(), ct.log).Error("progress request failed",
		zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
