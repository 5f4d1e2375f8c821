package handlers

import (
	"RecipeShare-Go/domain"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecipeService struct {
	created []domain.RecipeRecord
	recipes []domain.Recipe
}

func (s *fakeRecipeService) CreateRecipe(ctx context.Context, record domain.RecipeRecord) (domain.Recipe, error) {
	s.created = append(s.created, record)
	return domain.Recipe{ID: "r1", Title: record.Title, OwnerID: record.OwnerID}, nil
}

func (s *fakeRecipeService) RecipesByOwner(ctx context.Context, ownerID string) ([]domain.Recipe, error) {
	var out []domain.Recipe
	for _, r := range s.recipes {
		if r.OwnerID == ownerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func newRecipeTestApp(service *fakeRecipeService, userID string) *fiber.App {
	app := fiber.New()
	handler := NewRecipeHandler(service, validator.New())

	asUser := func(next fiber.Handler) fiber.Handler {
		return func(c *fiber.Ctx) error {
			c.Locals("user_id", userID)
			return next(c)
		}
	}
	app.Post("/api/v1/recipes", asUser(handler.CreateRecipe))
	app.Get("/api/v1/recipes/mine", asUser(handler.GetMyRecipes))
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	require.NoError(t, err)
	return res
}

func TestCreateRecipeTakesOwnerFromToken(t *testing.T) {
	service := &fakeRecipeService{}
	app := newRecipeTestApp(service, "u1")

	res := postJSON(t, app, "/api/v1/recipes", fiber.Map{
		"title":        "Soup",
		"description":  "Warm",
		"ingredients":  []string{"salt"},
		"instructions": []string{"Boil"},
		"cooking_time": 10,
		"servings":     2,
		// a forged owner in the body must be ignored
		"user_id": "u2",
	})

	assert.Equal(t, fiber.StatusCreated, res.StatusCode)
	require.Len(t, service.created, 1)
	assert.Equal(t, "u1", service.created[0].OwnerID)
	assert.Equal(t, "Soup", service.created[0].Title)
}

func TestCreateRecipeValidatesRequest(t *testing.T) {
	service := &fakeRecipeService{}
	app := newRecipeTestApp(service, "u1")

	res := postJSON(t, app, "/api/v1/recipes", fiber.Map{
		"description":  "missing title",
		"cooking_time": 10,
		"servings":     2,
	})

	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
	assert.Empty(t, service.created)
}

func TestCreateRecipeRejectsNonPositiveScalars(t *testing.T) {
	service := &fakeRecipeService{}
	app := newRecipeTestApp(service, "u1")

	res := postJSON(t, app, "/api/v1/recipes", fiber.Map{
		"title":        "Soup",
		"description":  "Warm",
		"cooking_time": 0,
		"servings":     2,
	})

	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
	assert.Empty(t, service.created)
}

func TestGetMyRecipesScopedToUser(t *testing.T) {
	service := &fakeRecipeService{recipes: []domain.Recipe{
		{ID: "r1", Title: "Mine", OwnerID: "u1"},
		{ID: "r2", Title: "Theirs", OwnerID: "u2"},
	}}
	app := newRecipeTestApp(service, "u1")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/mine", nil)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	var body struct {
		Data domain.RecipeListResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	require.Equal(t, 1, body.Data.Total)
	assert.Equal(t, "Mine", body.Data.Recipes[0].Title)
}
