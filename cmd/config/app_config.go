package config

import (
	"PantryChef/internal/api/handlers"
	"PantryChef/internal/api/routes"
	"PantryChef/internal/middleware"
	"PantryChef/internal/utils"
	"PantryChef/internal/utils/storage"
	"PantryChef/pkg/cookbook"
	"PantryChef/pkg/grocery"
	"PantryChef/pkg/jwt"
	"PantryChef/pkg/match"
	"PantryChef/pkg/pantry"
	"PantryChef/pkg/recipe"
	"PantryChef/pkg/user"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: utils.GetConfig("APP_ENV") != "production",
		BodyLimit:         10 * 1024 * 1024,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	logFile := utils.GetConfigOrDefault("LOG_FILE", "./logs/app.log")
	if err := os.MkdirAll(filepath.Dir(logFile), os.ModePerm); err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		logFile,
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	pantryRepository := pantry.NewPantryRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	cookbookRepository := cookbook.NewCookbookRepository(db)
	groceryRepository := grocery.NewGroceryRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	pantryService := pantry.NewPantryService(pantryRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, cookbookRepository, s3)
	cookbookService := cookbook.NewCookbookService(cookbookRepository)
	groceryService := grocery.NewGroceryService(groceryRepository, pantryService)
	matchService := match.NewMatchService(pantryRepository, recipeRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	pantryHandler := handlers.NewPantryHandler(pantryService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	cookbookHandler := handlers.NewCookbookHandler(cookbookService, validator)
	groceryHandler := handlers.NewGroceryHandler(groceryService, validator)
	matchHandler := handlers.NewMatchHandler(matchService)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		PantryHandler:   pantryHandler,
		RecipeHandler:   recipeHandler,
		CookbookHandler: cookbookHandler,
		GroceryHandler:  groceryHandler,
		MatchHandler:    matchHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
