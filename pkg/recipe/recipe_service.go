package recipe

import (
	"RecipeShare-Go/domain"
	"RecipeShare-Go/entities"
	"RecipeShare-Go/internal/utils"
	"context"

	"github.com/google/uuid"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, record domain.RecipeRecord) (domain.Recipe, error)
		RecipesByOwner(ctx context.Context, ownerID string) ([]domain.Recipe, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{recipeRepository: recipeRepository}
}

func (s *recipeService) CreateRecipe(ctx context.Context, record domain.RecipeRecord) (domain.Recipe, error) {
	if record.OwnerID == "" {
		return domain.Recipe{}, domain.ErrOwnerRequired
	}
	ownerUUID, err := uuid.Parse(record.OwnerID)
	if err != nil {
		return domain.Recipe{}, domain.ErrParseUUID
	}

	// The client compacts before submitting; compact again so blank entries
	// never reach the table regardless of the caller.
	recipe := entities.Recipe{
		UserID:       ownerUUID,
		Title:        record.Title,
		Description:  record.Description,
		Ingredients:  utils.CompactStrings(record.Ingredients),
		Instructions: utils.CompactStrings(record.Instructions),
		CookingTime:  record.CookingTime,
		Servings:     record.Servings,
		ImageURL:     record.ImageURL,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, &recipe); err != nil {
		return domain.Recipe{}, err
	}

	return toDomain(&recipe), nil
}

func (s *recipeService) RecipesByOwner(ctx context.Context, ownerID string) ([]domain.Recipe, error) {
	recipes, err := s.recipeRepository.GetRecipesByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		result = append(result, toDomain(r))
	}
	return result, nil
}

func toDomain(r *entities.Recipe) domain.Recipe {
	return domain.Recipe{
		ID:           r.ID.String(),
		Title:        r.Title,
		Description:  r.Description,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		CookingTime:  r.CookingTime,
		Servings:     r.Servings,
		ImageURL:     r.ImageURL,
		OwnerID:      r.UserID.String(),
		CreatedAt:    r.CreatedAt,
	}
}
