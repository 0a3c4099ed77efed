package router

import (
	"time"

	"github.com/codewith-lab/ssrblog/controllers"
	"github.com/codewith-lab/ssrblog/middlewares"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitRouter(h *controllers.Handler) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/api/health", controllers.Health)

	auth := r.Group("/api/auth")
	{
		auth.POST("/login", h.Login)
	}

	api := r.Group("/api")
	api.GET("/articles", h.GetArticles)
	api.GET("/articles/:id", h.GetArticleByID)
	api.GET("/articles/:id/comments", h.GetComments)
	api.POST("/articles/:id/comments", h.CreateComment)
	api.GET("/articles/:id/like", h.GetArticleLikes)

	authed := api.Group("")
	authed.Use(middlewares.Auth(h.DB, h.JWTSecret))
	{
		authed.POST("/articles", h.CreateArticle)
		authed.PUT("/articles/:id", h.UpdateArticle)
		authed.DELETE("/articles/:id", h.DeleteArticle)
		authed.DELETE("/comments/:id", h.DeleteComment)
		authed.POST("/articles/:id/like", h.LikeArticle)
	}

	// Everything outside /api is a page path; hand it to the SSR resolver.
	r.NoRoute(h.RenderPage)

	return r
}
