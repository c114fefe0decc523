package response

import (
	"net/http"

	apperrors "farmpro/errors"

	"github.com/gin-gonic/gin"
)

// Created returns 201 with the persisted record as the body.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Message returns 200 with a confirmation message.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// Error returns an error body with an explicit status.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Unauthorized")
}

// FromError translates a tagged error into its HTTP response. The status is
// chosen from the error code, never from the message text.
func FromError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperrors.CodeOf(err) {
	case apperrors.ErrCodeNotFound:
		status = http.StatusNotFound
	case apperrors.ErrCodeValidation, apperrors.ErrCodeRequiredField, apperrors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case apperrors.ErrCodeUnauthorized, apperrors.ErrCodeInvalidToken:
		status = http.StatusUnauthorized
	}
	Error(c, status, err.Error())
}
