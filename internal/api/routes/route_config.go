package routes

import (
	"PantryChef/internal/api/handlers"
	"PantryChef/internal/middleware"
	"PantryChef/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	PantryHandler   handlers.PantryHandler
	RecipeHandler   handlers.RecipeHandler
	CookbookHandler handlers.CookbookHandler
	GroceryHandler  handlers.GroceryHandler
	MatchHandler    handlers.MatchHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.User()
	c.Pantry()
	c.Recipes()
	c.Cookbooks()
	c.Grocery()
	c.Matches()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Pantry() {
	pantry := c.App.Group("/api/v1/pantry", c.Middleware.AuthMiddleware(c.JWTService))

	pantry.Post("", c.PantryHandler.AddPantryItem)
	pantry.Post("/batch", c.PantryHandler.AddPantryItems)
	pantry.Get("", c.PantryHandler.GetPantryItems)
	pantry.Get("/:id", c.PantryHandler.GetPantryItemDetails)
	pantry.Put("/:id", c.PantryHandler.UpdatePantryItem)
	pantry.Delete("/:id", c.PantryHandler.DeletePantryItem)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))

	recipes.Post("", c.RecipeHandler.CreateRecipe)
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
	recipes.Post("/:id/image", c.RecipeHandler.UploadRecipeImage)
	recipes.Post("/:id/cooked", c.RecipeHandler.MarkAsCooked)

	c.App.Get("/api/v1/cooked-meals", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.GetCookedMeals)
}

func (c *Config) Cookbooks() {
	cookbooks := c.App.Group("/api/v1/cookbooks", c.Middleware.AuthMiddleware(c.JWTService))

	cookbooks.Post("", c.CookbookHandler.CreateCookbook)
	cookbooks.Get("", c.CookbookHandler.GetCookbooks)
	cookbooks.Get("/:id", c.CookbookHandler.GetCookbook)
	cookbooks.Delete("/:id", c.CookbookHandler.DeleteCookbook)
}

func (c *Config) Grocery() {
	grocery := c.App.Group("/api/v1/grocery", c.Middleware.AuthMiddleware(c.JWTService))

	grocery.Post("", c.GroceryHandler.AddGroceryItem)
	grocery.Get("", c.GroceryHandler.GetGroceryItems)
	grocery.Delete("/:id", c.GroceryHandler.DeleteGroceryItem)
	grocery.Post("/:id/check", c.GroceryHandler.CheckGroceryItem)
	grocery.Post("/:id/uncheck", c.GroceryHandler.UncheckGroceryItem)
}

func (c *Config) Matches() {
	matches := c.App.Group("/api/v1/matches", c.Middleware.AuthMiddleware(c.JWTService))

	matches.Get("", c.MatchHandler.GetMatches)
	matches.Get("/unlocks", c.MatchHandler.GetUnlockSuggestions)
	matches.Get("/:recipe_id", c.MatchHandler.GetRecipeMatch)
}
