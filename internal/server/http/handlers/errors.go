package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/atelier/internal/domain/errors"
	"github.com/polkiloo/atelier/internal/server/http/dto"
)

type errorMapping struct {
	sentinel error
	status   int
	fallback string
}

var errorMappings = []errorMapping{
	{domainErrors.ErrValidation, http.StatusBadRequest, "Invalid input"},
	{domainErrors.ErrInvalidCredentials, http.StatusBadRequest, "Invalid credentials"},
	{domainErrors.ErrConflict, http.StatusBadRequest, "Request conflicts with current state"},
	{domainErrors.ErrAlreadyExists, http.StatusBadRequest, "Already exists"},
	{domainErrors.ErrUnauthorized, http.StatusUnauthorized, "Not authorized"},
	{domainErrors.ErrForbidden, http.StatusForbidden, "Access denied"},
	{domainErrors.ErrNotFound, http.StatusNotFound, "Not found"},
}

// respondError writes the JSON error body for err. Unexpected errors are
// attached to the context for the request logger and answered generically.
func respondError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.sentinel) {
			msg := domainErrors.Detail(err, m.sentinel)
			if msg == "" {
				msg = m.fallback
			}
			c.JSON(m.status, dto.MessageResponse{Message: msg})
			return
		}
	}

	_ = c.Error(err)
	if errors.Is(err, domainErrors.ErrMisconfigured) {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{
			Message: "Server configuration error: " + domainErrors.Detail(err, domainErrors.ErrMisconfigured),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Server error"})
}

func respondMessage(c *gin.Context, status int, msg string) {
	c.JSON(status, dto.MessageResponse{Message: msg})
}
