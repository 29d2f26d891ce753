package handlers

import (
	"errors"
	"net/http"

	"store-pos/internal/ledger"

	"github.com/gin-gonic/gin"
)

// coreError translates the ledger's typed errors into HTTP statuses. The
// core reports failures; presentation is the caller's job.
func coreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ledger.ErrDuplicateKey):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, ledger.ErrEmptyCart),
		errors.Is(err, ledger.ErrInvalidQuantity),
		errors.Is(err, ledger.ErrInsufficientStock),
		errors.Is(err, ledger.ErrConstraintViolation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
	}
}

// actingUserID reads the authenticated user set by the auth middleware.
func actingUserID(c *gin.Context) uint {
	return c.MustGet("userID").(uint)
}
