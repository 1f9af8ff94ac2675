package domain

import (
	"errors"
	"mime/multipart"
	"time"

	"recipe-catalog-api/entities"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessUploadImage     = "recipe image uploaded successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedUploadImage     = "failed to upload recipe image"

	ErrRecipeNotFound       = errors.New("recipe not found")
	ErrTitleRequired        = errors.New("title must not be empty")
	ErrInvalidTimeInMinutes = errors.New("time_in_minutes must be a positive integer")
	ErrUnknownTagID         = errors.New("one or more tag ids do not exist")
	ErrUnknownIngredientID  = errors.New("one or more ingredient ids do not exist")
	ErrInvalidImageFormat   = errors.New("invalid image format")
)

type (
	// Price is a pointer so a legitimate 0.00 passes the presence
	// check while an absent field still fails validation.
	CreateRecipeRequest struct {
		Title         string          `json:"title" validate:"required"`
		TimeInMinutes int             `json:"time_in_minutes" validate:"required,gt=0"`
		Price         *entities.Price `json:"price" validate:"required"`
		Link          string          `json:"link" validate:"omitempty"`
		TagIDs        []string        `json:"tags" validate:"omitempty,dive,uuid"`
		IngredientIDs []string        `json:"ingredients" validate:"omitempty,dive,uuid"`
	}

	// UpdateRecipeRequest serves both PUT and PATCH. Nil means the
	// field was absent from the payload; the service decides whether
	// absence clears or preserves depending on the update mode.
	UpdateRecipeRequest struct {
		Title         *string         `json:"title"`
		TimeInMinutes *int            `json:"time_in_minutes" validate:"omitempty,gt=0"`
		Price         *entities.Price `json:"price"`
		Link          *string         `json:"link"`
		TagIDs        *[]string       `json:"tags" validate:"omitempty,dive,uuid"`
		IngredientIDs *[]string       `json:"ingredients" validate:"omitempty,dive,uuid"`
	}

	// RecipeResponse is the list row: associations as bare ids.
	RecipeResponse struct {
		ID            string         `json:"id"`
		Title         string         `json:"title"`
		TimeInMinutes int            `json:"time_in_minutes"`
		Price         entities.Price `json:"price"`
		Link          string         `json:"link,omitempty"`
		ImageURL      string         `json:"image_url,omitempty"`
		TagIDs        []string       `json:"tags"`
		IngredientIDs []string       `json:"ingredients"`
		CreatedAt     time.Time      `json:"created_at"`
	}

	// RecipeDetailResponse materializes full tag/ingredient objects.
	RecipeDetailResponse struct {
		ID            string              `json:"id"`
		Title         string              `json:"title"`
		TimeInMinutes int                 `json:"time_in_minutes"`
		Price         entities.Price      `json:"price"`
		Link          string              `json:"link,omitempty"`
		ImageURL      string              `json:"image_url,omitempty"`
		Tags          []AttributeResponse `json:"tags"`
		Ingredients   []AttributeResponse `json:"ingredients"`
		CreatedAt     time.Time           `json:"created_at"`
	}

	UploadRecipeImageRequest struct {
		Image *multipart.FileHeader `json:"image" validate:"required"`
	}
)
