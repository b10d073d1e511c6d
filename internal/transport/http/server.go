package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "postboard/internal/app"
	"postboard/internal/bootstrap"
	"postboard/internal/repository"
	"postboard/internal/transport/http/handler"
	"postboard/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	userRepo := repository.NewUserRepository(app.DB)
	postRepo := repository.NewPostRepository(app.DB)
	voteRepo := repository.NewVoteRepository(app.DB)

	authService := appsvc.NewAuthService(
		userRepo,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.JWTExpireMinute)*time.Minute,
	)
	postService := appsvc.NewPostService(postRepo)
	voteService := appsvc.NewVoteService(postRepo, voteRepo)

	userHandler := handler.NewUserHandler(authService)
	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	voteHandler := handler.NewVoteHandler(voteService)
	healthHandler := handler.NewHealthHandler(app)

	router.GET("/healthz", healthHandler.Check)
	router.POST("/login", authHandler.Login)

	users := router.Group("/users")
	users.POST("/", userHandler.Create)
	users.GET("/:id", userHandler.Get)

	requireAuth := middleware.AuthJWT(app.Config.Auth.JWTSecret, authService)

	posts := router.Group("/posts")
	posts.Use(requireAuth)
	posts.GET("/", postHandler.List)
	posts.POST("/", postHandler.Create)
	posts.GET("/:id", postHandler.Get)
	posts.PUT("/:id", postHandler.Update)
	posts.DELETE("/:id", postHandler.Delete)

	vote := router.Group("/vote")
	vote.Use(requireAuth)
	vote.POST("/", voteHandler.Vote)

	return router
}
