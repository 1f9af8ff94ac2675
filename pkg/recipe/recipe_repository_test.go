package recipe_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"recipe-catalog-api/pkg/recipe"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gdb, mock
}

func TestGetRecipes_FilterByTags(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := recipe.NewRecipeRepository(gdb)

	userID := uuid.New()
	tagID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT DISTINCT recipes.* FROM "recipes" JOIN recipe_tags ON recipe_tags.recipe_id = recipes.id WHERE recipes.user_id = $1 AND recipe_tags.tag_id IN ($2) ORDER BY recipes.created_at desc`,
	)).
		WithArgs(userID.String(), tagID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "user_id"}))

	recipes, err := repo.GetRecipes(context.Background(), userID.String(), []string{tagID.String()}, nil)
	require.NoError(t, err)
	assert.Empty(t, recipes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRecipes_FilterByTagsAndIngredients(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := recipe.NewRecipeRepository(gdb)

	userID := uuid.New()
	tagID := uuid.New()
	ingredientID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT DISTINCT recipes.* FROM "recipes" JOIN recipe_tags ON recipe_tags.recipe_id = recipes.id JOIN recipe_ingredients ON recipe_ingredients.recipe_id = recipes.id WHERE recipes.user_id = $1 AND recipe_tags.tag_id IN ($2) AND recipe_ingredients.ingredient_id IN ($3) ORDER BY recipes.created_at desc`,
	)).
		WithArgs(userID.String(), tagID.String(), ingredientID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "user_id"}))

	recipes, err := repo.GetRecipes(context.Background(), userID.String(), []string{tagID.String()}, []string{ingredientID.String()})
	require.NoError(t, err)
	assert.Empty(t, recipes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRecipes_NoFilters(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := recipe.NewRecipeRepository(gdb)

	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT DISTINCT recipes.* FROM "recipes" WHERE recipes.user_id = $1 ORDER BY recipes.created_at desc`,
	)).
		WithArgs(userID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "user_id"}))

	recipes, err := repo.GetRecipes(context.Background(), userID.String(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, recipes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRecipeByID_ScopedToOwner(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := recipe.NewRecipeRepository(gdb)

	userID := uuid.New()
	recipeID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "recipes" WHERE id = \$1 AND user_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "user_id"}))

	_, err := repo.GetRecipeByID(context.Background(), userID.String(), recipeID.String())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
