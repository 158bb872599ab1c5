package server

import (
	"errors"
	"net/http"

	bookingdomain "github.com/ecoride/ecoride/internal/booking/domain"
	customerdomain "github.com/ecoride/ecoride/internal/customer/domain"
	driverdomain "github.com/ecoride/ecoride/internal/driver/domain"
	invoicedomain "github.com/ecoride/ecoride/internal/invoice/domain"
	rateplandomain "github.com/ecoride/ecoride/internal/rateplan/domain"
	vehicledomain "github.com/ecoride/ecoride/internal/vehicle/domain"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var ErrInvalidRequest = errors.New("invalid_request")

// ErrorHandlingMiddleware converts domain errors pushed onto the gin context
// into a uniform JSON error body.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	switch {
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: err.Error(),
		}
	case isConflictError(err):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: err.Error(),
		}
	case errors.Is(err, bookingdomain.ErrLeadTimeTooShort):
		return http.StatusUnprocessableEntity, errorPayload{
			Type:    "unprocessable",
			Message: err.Error(),
		}
	case isValidationError(err):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: err.Error(),
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, customerdomain.ErrNotFound),
		errors.Is(err, vehicledomain.ErrNotFound),
		errors.Is(err, driverdomain.ErrNotFound),
		errors.Is(err, bookingdomain.ErrNotFound),
		errors.Is(err, bookingdomain.ErrCustomerNotFound),
		errors.Is(err, invoicedomain.ErrNotFound),
		errors.Is(err, rateplandomain.ErrPlanNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	}
	return false
}

// Conflicts are requests that collide with current state: busy assets,
// terminal bookings, the cancellation lockout, an implausible odometer
// reading awaiting confirmation, and duplicate registrations.
func isConflictError(err error) bool {
	switch {
	case errors.Is(err, vehicledomain.ErrVehicleUnavailable),
		errors.Is(err, vehicledomain.ErrVehicleReserved),
		errors.Is(err, vehicledomain.ErrDuplicatePlate),
		errors.Is(err, driverdomain.ErrDriverUnavailable),
		errors.Is(err, driverdomain.ErrDriverAssigned),
		errors.Is(err, driverdomain.ErrDuplicateLicense),
		errors.Is(err, customerdomain.ErrDuplicate),
		errors.Is(err, bookingdomain.ErrInvalidBookingState),
		errors.Is(err, bookingdomain.ErrCancellationLocked),
		errors.Is(err, bookingdomain.ErrSuspiciousDistance):
		return true
	}
	return false
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, customerdomain.ErrInvalidKind),
		errors.Is(err, customerdomain.ErrInvalidName),
		errors.Is(err, customerdomain.ErrInvalidIdentity),
		errors.Is(err, customerdomain.ErrInvalidID),
		errors.Is(err, vehicledomain.ErrInvalidPlate),
		errors.Is(err, vehicledomain.ErrInvalidModel),
		errors.Is(err, vehicledomain.ErrInvalidStatus),
		errors.Is(err, vehicledomain.ErrInvalidID),
		errors.Is(err, driverdomain.ErrInvalidName),
		errors.Is(err, driverdomain.ErrInvalidLicense),
		errors.Is(err, driverdomain.ErrInvalidStatus),
		errors.Is(err, driverdomain.ErrInvalidID),
		errors.Is(err, rateplandomain.ErrInvalidCode),
		errors.Is(err, rateplandomain.ErrInvalidID),
		errors.Is(err, bookingdomain.ErrInvalidID),
		errors.Is(err, bookingdomain.ErrInvalidBookingDate),
		errors.Is(err, bookingdomain.ErrInvalidRentalDays),
		errors.Is(err, bookingdomain.ErrInvalidDistance),
		errors.Is(err, bookingdomain.ErrInvalidStatus),
		errors.Is(err, invoicedomain.ErrInvalidBookingID):
		return true
	}
	return false
}
