package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"recipe-catalog-api/domain"
	"recipe-catalog-api/entities"
	"recipe-catalog-api/internal/api/presenters"
	"recipe-catalog-api/pkg/attribute"
)

type (
	AttributeHandler interface {
		List(c *fiber.Ctx) error
		Create(c *fiber.Ctx) error
	}

	// attributeHandler serves both tags and ingredients; only the
	// service instance and response messages differ.
	attributeHandler[T attribute.Entity] struct {
		service   attribute.AttributeService[T]
		validator *validator.Validate
		messages  attributeMessages
	}

	attributeMessages struct {
		successList   string
		successCreate string
		failedList    string
		failedCreate  string
	}
)

func NewTagHandler(service attribute.AttributeService[entities.Tag], validator *validator.Validate) AttributeHandler {
	return &attributeHandler[entities.Tag]{
		service:   service,
		validator: validator,
		messages: attributeMessages{
			successList:   domain.MessageSuccessGetTags,
			successCreate: domain.MessageSuccessCreateTag,
			failedList:    domain.MessageFailedGetTags,
			failedCreate:  domain.MessageFailedCreateTag,
		},
	}
}

func NewIngredientHandler(service attribute.AttributeService[entities.Ingredient], validator *validator.Validate) AttributeHandler {
	return &attributeHandler[entities.Ingredient]{
		service:   service,
		validator: validator,
		messages: attributeMessages{
			successList:   domain.MessageSuccessGetIngredients,
			successCreate: domain.MessageSuccessCreateIngredient,
			failedList:    domain.MessageFailedGetIngredients,
			failedCreate:  domain.MessageFailedCreateIngredient,
		},
	}
}

func (h *attributeHandler[T]) List(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	assignedOnly := c.Query("assigned_only") == "1" || c.Query("assigned_only") == "true"

	items, err := h.service.List(c.Context(), userID, assignedOnly)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, h.messages.failedList, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, h.messages.successList)
}

func (h *attributeHandler[T]) Create(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateAttributeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, h.messages.failedCreate, err)
	}

	res, err := h.service.Create(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, h.messages.failedCreate, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, h.messages.successCreate)
}
