package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the envelope every failed request is translated into.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Success returns the resource as-is with 200.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created returns the resource with 201.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Deleted returns the standard deletion acknowledgement.
func Deleted(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Successfully deleted"})
}

// BadRequest returns a 400 with a bare message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: message})
}

// ValidationError returns a 400 with per-field errors.
func ValidationError(c *gin.Context, fieldErrors map[string]string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Message: "Bad Request",
		Errors:  fieldErrors,
	})
}

// Unauthorized signals a missing or invalid session.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Authentication required"})
}

// Forbidden signals an authenticated user acting on a resource they do not own.
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, ErrorResponse{Message: "Forbidden"})
}

// ForbiddenMessage is Forbidden with a custom message.
func ForbiddenMessage(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, ErrorResponse{Message: message})
}

// NotFound signals an absent resource.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Message: message})
}

// Conflict signals an overlapping booking or a duplicate review.
func Conflict(c *gin.Context, message string, fieldErrors map[string]string) {
	c.JSON(http.StatusConflict, ErrorResponse{
		Message: message,
		Errors:  fieldErrors,
	})
}

// ServerError signals an unexpected failure.
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Server error"})
}
