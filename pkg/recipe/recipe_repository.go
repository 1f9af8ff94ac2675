package recipe

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"recipe-catalog-api/entities"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, userID, id string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, userID string, tagIDs, ingredientIDs []string) ([]*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe, tags *[]entities.Tag, ingredients *[]entities.Ingredient) error
		DeleteRecipe(ctx context.Context, recipe *entities.Recipe) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// CreateRecipe stores the recipe and its join rows. Associated tags
// and ingredients are referenced, never written.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).
		Omit("Tags.*", "Ingredients.*").
		Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, userID, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("Ingredients").
		Where("id = ? AND user_id = ?", id, userID).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetRecipes applies the caller's filters: OR within a filter list,
// AND across the two lists, deduplicated, newest first.
func (r *recipeRepository) GetRecipes(ctx context.Context, userID string, tagIDs, ingredientIDs []string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe

	q := r.db.WithContext(ctx).Where("recipes.user_id = ?", userID)

	if len(tagIDs) > 0 {
		q = q.Joins("JOIN recipe_tags ON recipe_tags.recipe_id = recipes.id").
			Where("recipe_tags.tag_id IN ?", tagIDs)
	}
	if len(ingredientIDs) > 0 {
		q = q.Joins("JOIN recipe_ingredients ON recipe_ingredients.recipe_id = recipes.id").
			Where("recipe_ingredients.ingredient_id IN ?", ingredientIDs)
	}

	if err := q.Distinct("recipes.*").
		Order("recipes.created_at desc").
		Preload("Tags").
		Preload("Ingredients").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// UpdateRecipe saves the scalar fields and, when a replacement set is
// given, swaps the association rows in the same transaction so a
// reader never observes a half-replaced set. A nil set means the
// associations are left untouched; an empty non-nil set clears them.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe, tags *[]entities.Tag, ingredients *[]entities.Ingredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(recipe).Error; err != nil {
			return err
		}
		if tags != nil {
			if err := tx.Model(recipe).Omit("Tags.*").Association("Tags").Replace(toInterfaces(*tags)...); err != nil {
				return err
			}
		}
		if ingredients != nil {
			if err := tx.Model(recipe).Omit("Ingredients.*").Association("Ingredients").Replace(toInterfaces(*ingredients)...); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteRecipe removes the row and its join rows only; the referenced
// tags and ingredients stay untouched.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(recipe).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Model(recipe).Association("Ingredients").Clear(); err != nil {
			return err
		}
		return tx.Delete(recipe).Error
	})
}

func toInterfaces[T any](items []T) []interface{} {
	out := make([]interface{}, 0, len(items))
	for i := range items {
		out = append(out, &items[i])
	}
	return out
}
