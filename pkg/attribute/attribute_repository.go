package attribute

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"recipe-catalog-api/entities"
)

// Entity covers the two symmetric recipe attributes. Both share the
// same list/create contract, so one repository serves them both.
type Entity interface {
	entities.Tag | entities.Ingredient
}

type (
	AttributeRepository[T Entity] interface {
		Create(ctx context.Context, attr *T) error
		List(ctx context.Context, userID string, assignedOnly bool) ([]T, error)
		GetOwnedByIDs(ctx context.Context, userID string, ids []string) ([]T, error)
	}

	attributeRepository[T Entity] struct {
		db        *gorm.DB
		tableName string
		joinTable string
		joinKey   string
	}
)

func NewTagRepository(db *gorm.DB) AttributeRepository[entities.Tag] {
	return &attributeRepository[entities.Tag]{
		db:        db,
		tableName: "tags",
		joinTable: "recipe_tags",
		joinKey:   "tag_id",
	}
}

func NewIngredientRepository(db *gorm.DB) AttributeRepository[entities.Ingredient] {
	return &attributeRepository[entities.Ingredient]{
		db:        db,
		tableName: "ingredients",
		joinTable: "recipe_ingredients",
		joinKey:   "ingredient_id",
	}
}

func (r *attributeRepository[T]) Create(ctx context.Context, attr *T) error {
	return r.db.WithContext(ctx).Create(attr).Error
}

// List returns the caller's attributes ordered by name descending.
// With assignedOnly, only attributes referenced by at least one
// recipe are returned (inner join, deduplicated).
func (r *attributeRepository[T]) List(ctx context.Context, userID string, assignedOnly bool) ([]T, error) {
	var items []T

	q := r.db.WithContext(ctx).Where(r.tableName+".user_id = ?", userID)
	if assignedOnly {
		q = q.Joins(fmt.Sprintf(
			"JOIN %s ON %s.%s = %s.id",
			r.joinTable, r.joinTable, r.joinKey, r.tableName,
		)).Distinct(r.tableName + ".*")
	}

	if err := q.Order("name desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *attributeRepository[T]) GetOwnedByIDs(ctx context.Context, userID string, ids []string) ([]T, error) {
	var items []T
	if len(ids) == 0 {
		return items, nil
	}
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, ids).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
