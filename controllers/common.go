package controllers

import (
	"errors"

	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/pkg/resp"
	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/services"

	"github.com/gin-gonic/gin"
)

// fail 把业务错误映射为 HTTP 状态码
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidState):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
