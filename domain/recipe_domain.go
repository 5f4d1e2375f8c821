package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateRecipe = "recipe created successfully"
	MessageSuccessGetRecipes   = "success get recipes"

	MessageFailedCreateRecipe = "failed to create recipe"
	MessageFailedGetRecipes   = "failed to get recipes"

	ErrAuthRequired   = errors.New("sign in required to create a recipe")
	ErrSubmitInFlight = errors.New("a submission is already in progress")
	ErrOwnerRequired  = errors.New("recipe owner is required")
	ErrRecipeNotFound = errors.New("recipe not found")
)

type (
	// RecipeRecord is the insert shape: exactly the client-supplied fields
	// plus the owner resolved from the current session. The store assigns
	// id and created_at.
	RecipeRecord struct {
		Title        string   `json:"title"`
		Description  string   `json:"description"`
		Ingredients  []string `json:"ingredients"`
		Instructions []string `json:"instructions"`
		CookingTime  int      `json:"cooking_time"`
		Servings     int      `json:"servings"`
		ImageURL     string   `json:"image_url,omitempty"`
		OwnerID      string   `json:"user_id"`
	}

	Recipe struct {
		ID           string    `json:"id"`
		Title        string    `json:"title"`
		Description  string    `json:"description"`
		Ingredients  []string  `json:"ingredients"`
		Instructions []string  `json:"instructions"`
		CookingTime  int       `json:"cooking_time"`
		Servings     int       `json:"servings"`
		ImageURL     string    `json:"image_url,omitempty"`
		OwnerID      string    `json:"user_id"`
		CreatedAt    time.Time `json:"created_at"`
	}

	CreateRecipeRequest struct {
		Title        string   `json:"title" validate:"required"`
		Description  string   `json:"description" validate:"required"`
		Ingredients  []string `json:"ingredients"`
		Instructions []string `json:"instructions"`
		CookingTime  int      `json:"cooking_time" validate:"required,min=1"`
		Servings     int      `json:"servings" validate:"required,min=1"`
		ImageURL     string   `json:"image_url,omitempty" validate:"omitempty,url"`
	}

	RecipeListResponse struct {
		Recipes []Recipe `json:"recipes"`
		Total   int      `json:"total"`
	}
)
