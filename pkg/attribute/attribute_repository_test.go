package attribute_test

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

	"recipe-catalog-api/pkg/attribute"
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

func TestTagRepositoryList(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := attribute.NewTagRepository(gdb)

	userID := uuid.New()
	tagID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "tags" WHERE tags.user_id = $1 ORDER BY name desc`,
	)).
		WithArgs(userID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "user_id"}).
			AddRow(tagID.String(), "Vegan", userID.String()))

	tags, err := repo.List(context.Background(), userID.String(), false)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "Vegan", tags[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTagRepositoryList_AssignedOnly(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := attribute.NewTagRepository(gdb)

	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT DISTINCT tags.* FROM "tags" JOIN recipe_tags ON recipe_tags.tag_id = tags.id WHERE tags.user_id = $1 ORDER BY name desc`,
	)).
		WithArgs(userID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "user_id"}))

	tags, err := repo.List(context.Background(), userID.String(), true)
	require.NoError(t, err)
	assert.Empty(t, tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIngredientRepositoryList_AssignedOnly(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := attribute.NewIngredientRepository(gdb)

	userID := uuid.New()
	ingredientID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT DISTINCT ingredients.* FROM "ingredients" JOIN recipe_ingredients ON recipe_ingredients.ingredient_id = ingredients.id WHERE ingredients.user_id = $1 ORDER BY name desc`,
	)).
		WithArgs(userID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "user_id"}).
			AddRow(ingredientID.String(), "Salt", userID.String()))

	ingredients, err := repo.List(context.Background(), userID.String(), true)
	require.NoError(t, err)
	require.Len(t, ingredients, 1)
	assert.Equal(t, "Salt", ingredients[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTagRepositoryGetOwnedByIDs(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := attribute.NewTagRepository(gdb)

	userID := uuid.New()
	first := uuid.New()
	second := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "tags" WHERE user_id = $1 AND id IN ($2,$3)`,
	)).
		WithArgs(userID.String(), first.String(), second.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "user_id"}).
			AddRow(first.String(), "Vegan", userID.String()).
			AddRow(second.String(), "Dessert", userID.String()))

	tags, err := repo.GetOwnedByIDs(context.Background(), userID.String(), []string{first.String(), second.String()})
	require.NoError(t, err)
	assert.Len(t, tags, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTagRepositoryGetOwnedByIDs_EmptyInput(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := attribute.NewTagRepository(gdb)

	tags, err := repo.GetOwnedByIDs(context.Background(), uuid.NewString(), nil)
	require.NoError(t, err)
	assert.Empty(t, tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}
