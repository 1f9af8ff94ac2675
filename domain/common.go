package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "invalid or expired token"

	ErrParseUUID       = errors.New("failed to parse UUID")
	ErrTokenNotFound   = errors.New("authentication token not found")
	ErrTokenInvalid    = errors.New("invalid authentication token")
	ErrTokenExpired    = errors.New("authentication token expired")
	ErrUnauthenticated = errors.New("authentication required")
)
