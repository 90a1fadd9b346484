package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hanlingo/hanlingo/internal/obs"
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

type credentialsRequest struct {
	Nickname string `json:"nickname" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (ct *Controller) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		obs.RegistrationsTotal.WithLabelValues(obs.OutcomeDenied).Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "nickname and password are required"})
		return
	}

	rec, pair, err := ct.uc.Register(c.Request.Context(), req.Nickname, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrNicknameTaken):
			obs.RegistrationsTotal.WithLabelValues(obs.OutcomeConflict).Inc()
			c.JSON(http.StatusConflict, gin.H{"error": "nickname already registered"})
		case errors.Is(err, ErrValidation):
			obs.RegistrationsTotal.WithLabelValues(obs.OutcomeDenied).Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": "nickname and password are required"})
		default:
			obs.RegistrationsTotal.WithLabelValues(obs.OutcomeError).Inc()
			ct.fail(c, err)
		}
		return
	}

	obs.RegistrationsTotal.WithLabelValues(obs.OutcomeOK).Inc()
	c.JSON(http.StatusCreated, gin.H{
		"id":            rec.ID,
		"nickname":      rec.Nickname,
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

func (ct *Controller) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		obs.LoginsTotal.WithLabelValues(obs.OutcomeDenied).Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid nickname or password"})
		return
	}

	_, pair, err := ct.uc.Login(c.Request.Context(), req.Nickname, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			obs.LoginsTotal.WithLabelValues(obs.OutcomeDenied).Inc()
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid nickname or password"})
			return
		}
		obs.LoginsTotal.WithLabelValues(obs.OutcomeError).Inc()
		ct.fail(c, err)
		return
	}

	obs.LoginsTotal.WithLabelValues(obs.OutcomeOK).Inc()
	c.JSON(http.StatusOK, tokenResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

func (ct *Controller) Refresh(c *gin.Context) {
	var req refreshRequest
	_ = c.ShouldBindJSON(&req)

	pair, err := ct.uc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, ErrSessionInvalid) || errors.Is(err, ErrSessionExpired) {
			obs.RefreshesTotal.WithLabelValues(obs.OutcomeDenied).Inc()
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
			return
		}
		obs.RefreshesTotal.WithLabelValues(obs.OutcomeError).Inc()
		ct.fail(c, err)
		return
	}

	obs.RefreshesTotal.WithLabelValues(obs.OutcomeOK).Inc()
	c.JSON(http.StatusOK, tokenResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

func (ct *Controller) Logout(c *gin.Context) {
	var req refreshRequest
	_ = c.ShouldBindJSON(&req)

	if err := ct.uc.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		ct.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (ct *Controller) Me(c *gin.Context) {
	id, err := IdentityFrom(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_id": id.UserID, "role": id.Role})
}

// fail hides internals behind a generic 500 and logs the original error.
func (ct *Controller) fail(c *gin.Context, err error) {
	obs.WithTrace(c.Request.Context(), ct.log).Error("auth request failed",
		zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
