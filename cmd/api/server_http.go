package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	config "github.com/hanlingo/hanlingo/internal/config/api"
	"github.com/hanlingo/hanlingo/internal/domain/event"
	"github.com/hanlingo/hanlingo/internal/domain/user"
	pg "github.com/hanlingo/hanlingo/internal/repository/postgres"
	achievementsvc "github.com/hanlingo/hanlingo/internal/services/api/achievement"
	authsvc "github.com/hanlingo/hanlingo/internal/services/api/auth"
	contentsvc "github.com/hanlingo/hanlingo/internal/services/api/content"
	progresssvc "github.com/hanlingo/hanlingo/internal/services/api/progress"
	quizsvc "github.com/hanlingo/hanlingo/internal/services/api/quiz"
)

func buildHTTPServer(cfg *config.Config, logger *zap.Logger, db *pg.DB, publisher event.Publisher) (*http.Server, error) {
	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	tokens, err := authsvc.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTTL)
	if err != nil {
		return nil, err
	}

	users := pg.NewUserRepo(db)
	sessions := pg.NewRefreshSessionRepo(db)
	hieroglyphs := pg.NewHieroglyphRepo(db)
	progressRepo := pg.NewProgressRepo(db)
	achievements := pg.NewAchievementRepo(db)
	quizzes := pg.NewQuizRepo(db)

	authUC := authsvc.NewUsecase(users, sessions, tokens, publisher,
		authsvc.Config{RefreshTTL: cfg.Auth.RefreshTTL}, logger)
	authCtrl := authsvc.NewController(authUC, logger)
	contentCtrl := contentsvc.NewController(contentsvc.NewUsecase(hieroglyphs), logger)
	progressCtrl := progresssvc.NewController(progresssvc.NewUsecase(progressRepo, publisher, logger), logger)
	achievementCtrl := achievementsvc.NewController(achievementsvc.NewUsecase(achievements), logger)
	quizCtrl := quizsvc.NewController(quizsvc.NewUsecase(quizzes, publisher, logger), logger)

	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.POST("/register", authCtrl.Register)
		api.POST("/login", authCtrl.Login)
		api.POST("/refresh", authCtrl.Refresh)
		api.POST("/logout", authCtrl.Logout)
		api.GET("/me", authsvc.RequireAuth(tokens), authCtrl.Me)

		api.GET("/hieroglyphs", contentCtrl.List)
		api.GET("/hieroglyphs/:id", contentCtrl.Get)
		api.POST("/hieroglyphs",
			authsvc.RequireAuth(tokens), authsvc.RequireRole(user.RoleAdmin), contentCtrl.Create)

		authed := api.Group("", authsvc.RequireAuth(tokens))
		{
			authed.POST("/progress/learn", progressCtrl.Learn)
			authed.GET("/progress/me", progressCtrl.Me)
			authed.GET("/achievements/me", achievementCtrl.Me)
			authed.POST("/quizzes/:id/submit", quizCtrl.Submit)
		}

		api.GET("/achievements", achievementCtrl.List)
		api.GET("/quizzes", quizCtrl.List)
		api.GET("/quizzes/:id", quizCtrl.Details)
	}

	return &http.Server{
		Addr:         cfg.Server.HTTPAddr,
		Handler:      otelhttp.NewHandler(r, "http.api"),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}, nil
}

func serveHTTP(srv *http.Server, logger *zap.Logger) error {
	logger.Info("http listening", zap.String("addr", srv.Addr))
	return srv.ListenAndServe()
}
