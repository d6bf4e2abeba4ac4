package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"contenthub-api/config"
	"contenthub-api/controllers"
	"contenthub-api/middleware"
	"contenthub-api/repositories"
	"contenthub-api/services"
)

func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService) {
	// Store handles
	postRepo := repositories.NewPostRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	nodeRepo := repositories.NewNodeRepository(db)
	ratingRepo := repositories.NewRatingRepository(db)

	// Services
	nodeService := services.NewNodeService(nodeRepo)
	postService := services.NewPostService(postRepo, nodeService)
	commentService := services.NewCommentService(commentRepo, postRepo, nodeService)
	ratingService := services.NewRatingService(ratingRepo, postRepo)

	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, emailService)
	postController := controllers.NewPostController(postService)
	commentController := controllers.NewCommentController(commentService)
	ratingController := controllers.NewRatingController(ratingService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		posts := protected.Group("/posts")
		{
			posts.GET("/", postController.GetPosts)
			posts.POST("/", postController.CreatePost)
			posts.GET("/:id", postController.GetPost)
			posts.PUT("/:id", postController.UpdatePost)
			posts.DELETE("/:id", postController.DeletePost)
			posts.DELETE("/", postController.DeleteAllPosts)
			posts.GET("/:id/ratings/count", ratingController.GetRatingCountForPost)
		}

		comments := protected.Group("/comments")
		{
			comments.GET("/", commentController.GetComments)
			comments.POST("/", commentController.CreateComment)
			comments.GET("/:id", commentController.GetComment)
			comments.PUT("/:id", commentController.UpdateComment)
			comments.DELETE("/:id", commentController.DeleteComment)
			comments.DELETE("/", commentController.DeleteAllComments)
		}

		ratings := protected.Group("/ratings")
		{
			ratings.GET("/", ratingController.GetRatings)
			ratings.POST("/", ratingController.CreateRating)
			ratings.GET("/:id", ratingController.GetRating)
			ratings.PUT("/:id", ratingController.UpdateRating)
			ratings.DELETE("/:id", ratingController.DeleteRating)
			ratings.DELETE("/", ratingController.DeleteAllRatings)
		}

		users := protected.Group("/users")
		{
			users.GET("/:id/posts", postController.GetPostsByUser)
			users.GET("/:id/comments", commentController.GetCommentsByUser)
			users.GET("/:id/rated-posts", ratingController.GetRatedPostsByUser)
		}
	}
}
