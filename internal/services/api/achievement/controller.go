package achievement

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hanlingo/hanlingo/internal/domain/achievement"
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
	as, err := ct.uc.List(c.Request.Context())
	if err != nil {
		ct.fail(c, err)
		return
	}
	if as == nil {
		as = []*achievement.Achievement{}
	}
	c.JSON(http.StatusOK, as)
}

func (ct *Controller) Me(c *gin.Context) {
	id, err := auth.IdentityFrom(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	earned, err := ct.uc.ListEarnedByUser(c.Request.Context(), id.UserID)
	if err != nil {
		ct.fail(c, err)
		return
	}
	if earned == nil {
		earned = []*achievement.Earned{}
	}
	c.JSON(http.StatusOK, earned)
}

func (ct *Controller) fail(c *gin.Context, err error) {
	obs.WithTrace(c.Request.Context(), ct.log).Error("achievement request failed",
		zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
