package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/escbarros/EngSoftware-HausParkApi/internal/config"
	"github.com/escbarros/EngSoftware-HausParkApi/internal/handler"
	"github.com/escbarros/EngSoftware-HausParkApi/internal/models"
	"github.com/escbarros/EngSoftware-HausParkApi/internal/repository"
	"github.com/escbarros/EngSoftware-HausParkApi/internal/service"
	"github.com/escbarros/EngSoftware-HausParkApi/pkg/database"
	"github.com/escbarros/EngSoftware-HausParkApi/pkg/logger"
	"github.com/escbarros/EngSoftware-HausParkApi/pkg/utils"
)

func main() {
	// .env is optional outside development.
	_ = godotenv.Load()

	cfg := config.LoadConfig()

	zapLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer zapLogger.Sync()
	zap.ReplaceGlobals(zapLogger)

	db, err := database.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		zapLogger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.ParkingSpace{},
	); err != nil {
		zapLogger.Fatal("failed to migrate database", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	spaceRepo := repository.NewParkingSpaceRepository(db)

	// Validator
	validator := utils.NewValidator()

	// Services
	userService := service.NewUserService(userRepo, validator)
	spaceService := service.NewParkingSpaceService(spaceRepo, userRepo, validator)

	// Handlers
	userHandler := handler.NewUserHandler(userService)
	spaceHandler := handler.NewParkingSpaceHandler(spaceService)

	// Router
	app := fiber.New()
	app.Use(cors.New())
	app.Use(fiberlogger.New())

	users := app.Group("/users")
	users.Get("/", userHandler.GetAllUsers)
	users.Get("/:id", userHandler.GetUserByID)
	users.Post("/", userHandler.CreateUser)
	users.Put("/:id", userHandler.UpdateUser)
	users.Patch("/:id", userHandler.UpdateUser)
	users.Delete("/:id", userHandler.DeleteUser)

	spaces := app.Group("/parking-spaces")
	spaces.Get("/", spaceHandler.GetAllParkingSpaces)
	spaces.Post("/:hostId", spaceHandler.CreateParkingSpace)

	zapLogger.Info("server starting", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zapLogger.Fatal("server error", zap.Error(err))
	}
}
