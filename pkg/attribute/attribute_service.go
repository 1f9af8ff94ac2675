package attribute

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"recipe-catalog-api/domain"
	"recipe-catalog-api/entities"
	"recipe-catalog-api/internal/logger"
)

type (
	AttributeService[T Entity] interface {
		List(ctx context.Context, userID string, assignedOnly bool) ([]domain.AttributeResponse, error)
		Create(ctx context.Context, userID string, req domain.CreateAttributeRequest) (domain.AttributeResponse, error)
	}

	attributeService[T Entity] struct {
		repository AttributeRepository[T]
		newEntity  func(id, userID uuid.UUID, name string) T
		toResponse func(T) domain.AttributeResponse
	}
)

func NewTagService(repository AttributeRepository[entities.Tag]) AttributeService[entities.Tag] {
	return &attributeService[entities.Tag]{
		repository: repository,
		newEntity: func(id, userID uuid.UUID, name string) entities.Tag {
			return entities.Tag{ID: id, UserID: userID, Name: name}
		},
		toResponse: func(t entities.Tag) domain.AttributeResponse {
			return domain.AttributeResponse{ID: t.ID.String(), Name: t.Name}
		},
	}
}

func NewIngredientService(repository AttributeRepository[entities.Ingredient]) AttributeService[entities.Ingredient] {
	return &attributeService[entities.Ingredient]{
		repository: repository,
		newEntity: func(id, userID uuid.UUID, name string) entities.Ingredient {
			return entities.Ingredient{ID: id, UserID: userID, Name: name}
		},
		toResponse: func(i entities.Ingredient) domain.AttributeResponse {
			return domain.AttributeResponse{ID: i.ID.String(), Name: i.Name}
		},
	}
}

func (s *attributeService[T]) List(ctx context.Context, userID string, assignedOnly bool) ([]domain.AttributeResponse, error) {
	items, err := s.repository.List(ctx, userID, assignedOnly)
	if err != nil {
		logger.Log.Errorw("failed to list attributes", "err", err)
		return nil, err
	}

	response := make([]domain.AttributeResponse, 0, len(items))
	for _, item := range items {
		response = append(response, s.toResponse(item))
	}
	return response, nil
}

// Create persists the attribute for the caller. The owner is always
// the authenticated user; any owner in the payload is ignored.
func (s *attributeService[T]) Create(ctx context.Context, userID string, req domain.CreateAttributeRequest) (domain.AttributeResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.AttributeResponse{}, domain.ErrAttributeNameRequired
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.AttributeResponse{}, domain.ErrParseUUID
	}

	entity := s.newEntity(uuid.New(), userUUID, name)
	if err := s.repository.Create(ctx, &entity); err != nil {
		logger.Log.Errorw("failed to create attribute", "err", err)
		return domain.AttributeResponse{}, err
	}

	return s.toResponse(entity), nil
}
