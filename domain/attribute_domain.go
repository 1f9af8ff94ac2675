package domain

import (
	"errors"
)

var (
	MessageSuccessGetTags          = "success get tags"
	MessageSuccessCreateTag        = "tag created successfully"
	MessageSuccessGetIngredients   = "success get ingredients"
	MessageSuccessCreateIngredient = "ingredient created successfully"

	MessageFailedGetTags          = "failed to get tags"
	MessageFailedCreateTag        = "failed to create tag"
	MessageFailedGetIngredients   = "failed to get ingredients"
	MessageFailedCreateIngredient = "failed to create ingredient"

	ErrAttributeNameRequired = errors.New("name must not be empty")
)

type (
	CreateAttributeRequest struct {
		Name string `json:"name" validate:"required"`
	}

	AttributeResponse struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
)
