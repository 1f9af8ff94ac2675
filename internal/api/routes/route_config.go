package routes

import (
	"github.com/gofiber/fiber/v2"

	"recipe-catalog-api/internal/api/handlers"
	"recipe-catalog-api/internal/middleware"
	"recipe-catalog-api/pkg/user"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	TagHandler        handlers.AttributeHandler
	IngredientHandler handlers.AttributeHandler
	RecipeHandler     handlers.RecipeHandler
	Middleware        middleware.Middleware
	UserService       user.UserService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Tags()
	c.Ingredients()
	c.Recipes()
	c.GuestRoute()
}

func (c *Config) User() {
	users := c.App.Group("/api/v1/users")
	{
		users.Post("/register", c.UserHandler.Register)
		users.Post("/login", c.UserHandler.Login)
		users.Get("/me", c.Middleware.AuthMiddleware(c.UserService), c.UserHandler.Me)
		users.Patch("/me", c.Middleware.AuthMiddleware(c.UserService), c.UserHandler.UpdateUser)
		users.Post("/forget", c.UserHandler.ForgotPassword)
		users.Post("/reset", c.UserHandler.ResetPassword)
	}
}

func (c *Config) Tags() {
	tags := c.App.Group("/api/v1/tags", c.Middleware.AuthMiddleware(c.UserService))
	tags.Get("", c.TagHandler.List)
	tags.Post("", c.TagHandler.Create)
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/v1/ingredients", c.Middleware.AuthMiddleware(c.UserService))
	ingredients.Get("", c.IngredientHandler.List)
	ingredients.Post("", c.IngredientHandler.Create)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.UserService))
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Post("", c.RecipeHandler.CreateRecipe)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
	recipes.Patch("/:id", c.RecipeHandler.PatchRecipe)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
	recipes.Post("/:id/image", c.RecipeHandler.UploadRecipeImage)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
