package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/wet-dev/wet/db"
	"github.com/wet-dev/wet/internal/config"
	"github.com/wet-dev/wet/internal/handlers"
	"github.com/wet-dev/wet/internal/repository"
	"github.com/wet-dev/wet/internal/router"
	"github.com/wet-dev/wet/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}

	cfg := config.Load()

	database, err := db.Connect(cfg)

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	userRepo := repository.NewUserRepository(database)
	restaurantRepo := repository.NewRestaurantRepository(database)
	likeRepo := repository.NewLikeRepository(database)

	kakao := services.NewKakaoMapClient(cfg.KakaoAPIKey, cfg.KakaoAPIURL)
	userService := services.NewUserService(database, userRepo, likeRepo)
	restaurantService := services.NewRestaurantService(database, userRepo, restaurantRepo, likeRepo)

	r := router.NewRouter(
		handlers.NewUserHandler(userService),
		handlers.NewRestaurantHandler(kakao, restaurantService),
	)

	log.Printf("Listening on :%s", cfg.Port)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
