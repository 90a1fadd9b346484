package content

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hanlingo/hanlingo/internal/domain/content"
	"github.com/hanlingo/hanlingo/internal/obs"
	pg "github.com/hanlingo/hanlingo/internal/repository/postgres"
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

type createRequest struct {
	Character   string  `json:"character" binding:"required"`
	Pinyin      string  `json:"pinyin" binding:"required"`
	Translation string  `json:"translation" binding:"required"`
	Example     *string `json:"example"`
}

func (ct *Controller) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "character, pinyin and translation are required"})
		return
	}

	h := &content.Hieroglyph{
		Character:   req.Character,
		Pinyin:      req.Pinyin,
		Translation: req.Translation,
		Example:     req.Example,
	}
	if err := ct.uc.Create(c.Request.Context(), h); err != nil {
		if errors.Is(err, ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "character, pinyin and translation are required"})
			return
		}
		ct.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, h)
}

func (ct *Controller) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "hieroglyph not found"})
		return
	}
	h, err := ct.uc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pg.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "hieroglyph not found"})
			return
		}
		ct.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h)
}

func (ct *Controller) List(c *gin.Context) {
	hs, err := ct.uc.List(c.Request.Context())
	if err != nil {
		ct.fail(c, err)
		return
	}
	if hs == nil {
		hs = []*content.Hieroglyph{}
	}
	c.JSON(http.StatusOK, hs)
}

func (ct *Controller) fail(c *gin.Context, err error) {
	obs.WithTrace(c.Request.Context(), ct.log).Error("hieroglyph request failed",
		zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
