package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/energeist/dockerized-climbunity/services"
)

// respondError maps domain errors onto HTTP statuses. Validation problems
// come back to the form, everything else is a terminal failure for the
// request.
func respondError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var notFoundErr *services.NotFoundError
	var credentialsErr *services.InvalidCredentialsError
	var integrityErr *services.IntegrityError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message, "field": validationErr.Field})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &credentialsErr):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
	case errors.As(err, &integrityErr):
		c.JSON(http.StatusConflict, gin.H{"error": "conflicting write, please retry"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
