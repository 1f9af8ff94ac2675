package recipe

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"recipe-catalog-api/domain"
	"recipe-catalog-api/entities"
	"recipe-catalog-api/internal/logger"
	"recipe-catalog-api/internal/utils/storage"
	"recipe-catalog-api/pkg/attribute"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, userID string, tagIDs, ingredientIDs []string) ([]domain.RecipeResponse, error)
		GetRecipeDetail(ctx context.Context, id string, userID string) (domain.RecipeDetailResponse, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetailResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string, partial bool) (domain.RecipeDetailResponse, error)
		DeleteRecipe(ctx context.Context, id string, userID string) error
		UploadRecipeImage(ctx context.Context, id string, req domain.UploadRecipeImageRequest, userID string) (domain.RecipeDetailResponse, error)
	}

	recipeService struct {
		recipeRepository     RecipeRepository
		tagRepository        attribute.AttributeRepository[entities.Tag]
		ingredientRepository attribute.AttributeRepository[entities.Ingredient]
		s3                   storage.AwsS3
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	tagRepository attribute.AttributeRepository[entities.Tag],
	ingredientRepository attribute.AttributeRepository[entities.Ingredient],
	s3 storage.AwsS3,
) RecipeService {
	return &recipeService{
		recipeRepository:     recipeRepository,
		tagRepository:        tagRepository,
		ingredientRepository: ingredientRepository,
		s3:                   s3,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context, userID string, tagIDs, ingredientIDs []string) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, userID, tagIDs, ingredientIDs)
	if err != nil {
		logger.Log.Errorw("failed to get recipes", "err", err)
		return nil, err
	}

	response := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		response = append(response, toRecipeResponse(r))
	}
	return response, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id string, userID string) (domain.RecipeDetailResponse, error) {
	recipe, err := s.getOwnedRecipe(ctx, id, userID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	return toRecipeDetailResponse(recipe), nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetailResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.RecipeDetailResponse{}, domain.ErrTitleRequired
	}
	if req.TimeInMinutes <= 0 {
		return domain.RecipeDetailResponse{}, domain.ErrInvalidTimeInMinutes
	}
	if req.Price == nil {
		return domain.RecipeDetailResponse{}, entities.ErrInvalidPrice
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeDetailResponse{}, domain.ErrParseUUID
	}

	tags, err := s.resolveTags(ctx, userID, req.TagIDs)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	ingredients, err := s.resolveIngredients(ctx, userID, req.IngredientIDs)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	recipe := &entities.Recipe{
		ID:            uuid.New(),
		UserID:        userUUID,
		Title:         title,
		TimeInMinutes: req.TimeInMinutes,
		Price:         *req.Price,
		Link:          req.Link,
		Tags:          tags,
		Ingredients:   ingredients,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		logger.Log.Errorw("failed to create recipe", "err", err)
		return domain.RecipeDetailResponse{}, err
	}

	return toRecipeDetailResponse(recipe), nil
}

// UpdateRecipe implements both update modes. A partial update merges
// only the provided fields. A full update replaces every mutable
// field: omitted scalars fail validation or fall back to their zero
// value, and omitted association lists clear the association sets.
func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string, partial bool) (domain.RecipeDetailResponse, error) {
	recipe, err := s.getOwnedRecipe(ctx, id, userID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	if !partial {
		if req.Title == nil {
			return domain.RecipeDetailResponse{}, domain.ErrTitleRequired
		}
		if req.TimeInMinutes == nil {
			return domain.RecipeDetailResponse{}, domain.ErrInvalidTimeInMinutes
		}
		if req.Price == nil {
			return domain.RecipeDetailResponse{}, entities.ErrInvalidPrice
		}
		if req.Link == nil {
			recipe.Link = ""
		}
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return domain.RecipeDetailResponse{}, domain.ErrTitleRequired
		}
		recipe.Title = title
	}
	if req.TimeInMinutes != nil {
		if *req.TimeInMinutes <= 0 {
			return domain.RecipeDetailResponse{}, domain.ErrInvalidTimeInMinutes
		}
		recipe.TimeInMinutes = *req.TimeInMinutes
	}
	if req.Price != nil {
		recipe.Price = *req.Price
	}
	if req.Link != nil {
		recipe.Link = *req.Link
	}

	var tags *[]entities.Tag
	var ingredients *[]entities.Ingredient

	if req.TagIDs != nil {
		resolved, err := s.resolveTags(ctx, userID, *req.TagIDs)
		if err != nil {
			return domain.RecipeDetailResponse{}, err
		}
		tags = &resolved
	} else if !partial {
		tags = &[]entities.Tag{}
	}

	if req.IngredientIDs != nil {
		resolved, err := s.resolveIngredients(ctx, userID, *req.IngredientIDs)
		if err != nil {
			return domain.RecipeDetailResponse{}, err
		}
		ingredients = &resolved
	} else if !partial {
		ingredients = &[]entities.Ingredient{}
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe, tags, ingredients); err != nil {
		logger.Log.Errorw("failed to update recipe", "err", err)
		return domain.RecipeDetailResponse{}, err
	}

	updated, err := s.getOwnedRecipe(ctx, id, userID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	return toRecipeDetailResponse(updated), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string, userID string) error {
	recipe, err := s.getOwnedRecipe(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, recipe); err != nil {
		logger.Log.Errorw("failed to delete recipe", "err", err)
		return err
	}

	if recipe.ImageURL != "" {
		if objectKey := s.s3.GetObjectKeyFromLink(recipe.ImageURL); objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}
	return nil
}

// UploadRecipeImage stores the artifact under a fresh random name,
// points the recipe at it and only then releases the previous
// artifact. If the record update fails the new artifact is removed so
// neither side leaks.
func (s *recipeService) UploadRecipeImage(ctx context.Context, id string, req domain.UploadRecipeImageRequest, userID string) (domain.RecipeDetailResponse, error) {
	recipe, err := s.getOwnedRecipe(ctx, id, userID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	fileName := uuid.New().String()
	objectKey, err := s.s3.UploadFile(fileName, req.Image, "recipes", storage.AllowImage...)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidFileType) {
			return domain.RecipeDetailResponse{}, domain.ErrInvalidImageFormat
		}
		logger.Log.Errorw("failed to upload recipe image", "err", err)
		return domain.RecipeDetailResponse{}, err
	}

	previousKey := s.s3.GetObjectKeyFromLink(recipe.ImageURL)
	recipe.ImageURL = s.s3.GetPublicLinkKey(objectKey)

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe, nil, nil); err != nil {
		logger.Log.Errorw("failed to record recipe image", "err", err)
		_ = s.s3.DeleteFile(objectKey)
		return domain.RecipeDetailResponse{}, err
	}

	if previousKey != "" {
		_ = s.s3.DeleteFile(previousKey)
	}

	return toRecipeDetailResponse(recipe), nil
}

func (s *recipeService) getOwnedRecipe(ctx context.Context, id string, userID string) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

// resolveTags maps ids to the caller's tags and fails when any id is
// unknown or owned by another user, so cross-tenant association is
// impossible.
func (s *recipeService) resolveTags(ctx context.Context, userID string, ids []string) ([]entities.Tag, error) {
	ids = dedupe(ids)
	tags, err := s.tagRepository.GetOwnedByIDs(ctx, userID, ids)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(ids) {
		return nil, domain.ErrUnknownTagID
	}
	return tags, nil
}

func (s *recipeService) resolveIngredients(ctx context.Context, userID string, ids []string) ([]entities.Ingredient, error) {
	ids = dedupe(ids)
	ingredients, err := s.ingredientRepository.GetOwnedByIDs(ctx, userID, ids)
	if err != nil {
		return nil, err
	}
	if len(ingredients) != len(ids) {
		return nil, domain.ErrUnknownIngredientID
	}
	return ingredients, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func toRecipeResponse(r *entities.Recipe) domain.RecipeResponse {
	tagIDs := make([]string, 0, len(r.Tags))
	for _, t := range r.Tags {
		tagIDs = append(tagIDs, t.ID.String())
	}
	ingredientIDs := make([]string, 0, len(r.Ingredients))
	for _, i := range r.Ingredients {
		ingredientIDs = append(ingredientIDs, i.ID.String())
	}

	return domain.RecipeResponse{
		ID:            r.ID.String(),
		Title:         r.Title,
		TimeInMinutes: r.TimeInMinutes,
		Price:         r.Price,
		Link:          r.Link,
		ImageURL:      r.ImageURL,
		TagIDs:        tagIDs,
		IngredientIDs: ingredientIDs,
		CreatedAt:     r.CreatedAt,
	}
}

func toRecipeDetailResponse(r *entities.Recipe) domain.RecipeDetailResponse {
	tags := make([]domain.AttributeResponse, 0, len(r.Tags))
	for _, t := range r.Tags {
		tags = append(tags, domain.AttributeResponse{ID: t.ID.String(), Name: t.Name})
	}
	ingredients := make([]domain.AttributeResponse, 0, len(r.Ingredients))
	for _, i := range r.Ingredients {
		ingredients = append(ingredients, domain.AttributeResponse{ID: i.ID.String(), Name: i.Name})
	}

	return domain.RecipeDetailResponse{
		ID:            r.ID.String(),
		Title:         r.Title,
		TimeInMinutes: r.TimeInMinutes,
		Price:         r.Price,
		Link:          r.Link,
		ImageURL:      r.ImageURL,
		Tags:          tags,
		Ingredients:   ingredients,
		CreatedAt:     r.CreatedAt,
	}
}
