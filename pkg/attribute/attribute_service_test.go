package attribute_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-catalog-api/domain"
	"recipe-catalog-api/entities"
	"recipe-catalog-api/pkg/attribute"
)

type fakeTagRepository struct {
	tags    []entities.Tag
	listErr error
}

func (r *fakeTagRepository) Create(_ context.Context, tag *entities.Tag) error {
	r.tags = append(r.tags, *tag)
	return nil
}

func (r *fakeTagRepository) List(_ context.Context, userID string, assignedOnly bool) ([]entities.Tag, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []entities.Tag
	for _, tag := range r.tags {
		if tag.UserID.String() == userID {
			out = append(out, tag)
		}
	}
	return out, nil
}

func (r *fakeTagRepository) GetOwnedByIDs(_ context.Context, userID string, ids []string) ([]entities.Tag, error) {
	var out []entities.Tag
	for _, tag := range r.tags {
		if tag.UserID.String() != userID {
			continue
		}
		for _, id := range ids {
			if tag.ID.String() == id {
				out = append(out, tag)
			}
		}
	}
	return out, nil
}

func TestAttributeCreate(t *testing.T) {
	repo := &fakeTagRepository{}
	svc := attribute.NewTagService(repo)
	userID := uuid.New()

	res, err := svc.Create(context.Background(), userID.String(), domain.CreateAttributeRequest{Name: "  Vegan  "})
	require.NoError(t, err)

	assert.Equal(t, "Vegan", res.Name)
	assert.NotEmpty(t, res.ID)

	require.Len(t, repo.tags, 1)
	assert.Equal(t, userID, repo.tags[0].UserID)
}

func TestAttributeCreate_EmptyName(t *testing.T) {
	svc := attribute.NewTagService(&fakeTagRepository{})

	_, err := svc.Create(context.Background(), uuid.NewString(), domain.CreateAttributeRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrAttributeNameRequired)
}

func TestAttributeCreate_BadUserID(t *testing.T) {
	svc := attribute.NewTagService(&fakeTagRepository{})

	_, err := svc.Create(context.Background(), "not-a-uuid", domain.CreateAttributeRequest{Name: "Dessert"})
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestAttributeList_ScopedToOwner(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	repo := &fakeTagRepository{tags: []entities.Tag{
		{ID: uuid.New(), UserID: owner, Name: "Vegan"},
		{ID: uuid.New(), UserID: other, Name: "Fruity"},
	}}
	svc := attribute.NewTagService(repo)

	res, err := svc.List(context.Background(), owner.String(), false)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Vegan", res[0].Name)
}

func TestAttributeList_Empty(t *testing.T) {
	svc := attribute.NewIngredientService(&fakeIngredientRepository{})

	res, err := svc.List(context.Background(), uuid.NewString(), false)
	require.NoError(t, err)
	assert.Empty(t, res)
	assert.NotNil(t, res)
}

type fakeIngredientRepository struct {
	ingredients []entities.Ingredient
}

func (r *fakeIngredientRepository) Create(_ context.Context, ingredient *entities.Ingredient) error {
	r.ingredients = append(r.ingredients, *ingredient)
	return nil
}

func (r *fakeIngredientRepository) List(_ context.Context, userID string, _ bool) ([]entities.Ingredient, error) {
	var out []entities.Ingredient
	for _, ingredient := range r.ingredients {
		if ingredient.UserID.String() == userID {
			out = append(out, ingredient)
		}
	}
	return out, nil
}

func (r *fakeIngredientRepository) GetOwnedByIDs(_ context.Context, _ string, _ []string) ([]entities.Ingredient, error) {
	return nil, nil
}
