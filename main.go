package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"photoalbum/config"
	"photoalbum/controller"
	"photoalbum/database"
	"photoalbum/exif"
	"photoalbum/middlewares"
	"photoalbum/repository"
	"photoalbum/route"
	"photoalbum/service"
	"photoalbum/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(err)
	}

	cfg := config.Load()

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	db := client.Database(cfg.MongoDatabase)

	blobs, err := storage.NewS3Store(context.Background(), cfg)
	if err != nil {
		log.Fatal("Failed to initialize object storage:", err)
	}

	userRepo := repository.NewUserRepository(db)
	photoRepo := repository.NewPhotoRepository(db)

	photoService := service.NewPhotoService(photoRepo, blobs, exif.Extract)

	userController := controller.NewUserController(userRepo, cfg.JWTSecret)
	photoController := controller.NewPhotoController(photoService)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost:") ||
				strings.HasPrefix(origin, "http://127.0.0.1:")
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	rateLimit := middlewares.NewRateLimiter(1000, time.Minute)
	router.Use(rateLimit.Middleware())

	route.Protected(router, cfg.JWTSecret, photoController)
	route.Unprotected(router, userController)

	router.Run(":" + cfg.Port)
}
