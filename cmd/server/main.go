package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/Phutanet200102/api-mongoDB/internal/api"
	"github.com/Phutanet200102/api-mongoDB/internal/repository"
	"github.com/Phutanet200102/api-mongoDB/internal/service"
	"github.com/Phutanet200102/api-mongoDB/internal/storage"
	"github.com/Phutanet200102/api-mongoDB/internal/store"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		fmt.Println("No .env file found, reading from environment variables")
	}

	api.SetupGlobalHandler("account-service")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	st := connectStore(ctx)
	defer st.Close(context.Background())

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	disk, err := storage.NewDisk(uploadDir)
	if err != nil {
		log.Fatalf("Failed to prepare upload directory: %v", err)
	}

	accountRepo := repository.NewMongoAccountRepository(st)
	imageRepo := repository.NewMongoImageRepository(st)

	accountService := service.NewAccountService(accountRepo)
	imageService := service.NewImageService(imageRepo, disk)

	accountHandler := api.NewAccountHandler(accountService)
	imageHandler := api.NewImageHandler(imageService)

	app := fiber.New()
	api.SetupRoutes(app, accountHandler, imageHandler, uploadDir)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("Listening account-service on port %s", port)
	log.Fatal(app.Listen(":" + port))
}

func connectStore(ctx context.Context) *store.Store {
	mongoURL := os.Getenv("MONGO_URL")
	if mongoURL == "" {
		mongoURL = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "User"
	}

	st, err := store.Connect(ctx, mongoURL, dbName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Successfully connected to MongoDB.")

	if err := st.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	return st
}
