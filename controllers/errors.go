package controllers

import (
	"errors"
	"log"

	"github.com/azamatleskhan01/fastdelivery/pkg/resp"
	"github.com/azamatleskhan01/fastdelivery/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// fail translates service errors into HTTP responses.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "forbidden")
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidPrice),
		errors.Is(err, services.ErrInvalidName),
		errors.Is(err, services.ErrInvalidCoordinates),
		errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrSelfPurchase),
		errors.Is(err, services.ErrUnavailable),
		errors.Is(err, services.ErrInsufficientFunds),
		errors.Is(err, services.ErrUserExists):
		resp.BadRequest(c, err.Error())
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		resp.ServerError(c, err)
	}
}
