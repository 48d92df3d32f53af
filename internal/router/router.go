package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/wet-dev/wet/internal/handlers"
	"github.com/wet-dev/wet/internal/types"
)

func NewRouter(users *handlers.UserHandler, restaurants *handlers.RestaurantHandler) *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		userRoutes := api.Group("/users")
		{
			userRoutes.GET("", users.ListUsers)
			userRoutes.GET("/:id", users.GetUser)
			userRoutes.POST("", users.CreateUser)
			userRoutes.PUT("/:id", users.UpdateUser)
			userRoutes.DELETE("/:id", users.DeleteUser)
		}

		restaurantRoutes := api.Group("/restaurants")
		{
			restaurantRoutes.GET("/search", restaurants.Search)
			restaurantRoutes.POST("/like", restaurants.ToggleLike)
			restaurantRoutes.GET("/likes", restaurants.ListLikes)
		}
	}

	return r
}
