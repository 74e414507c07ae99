package handler

import (
	"strconv"
	"time"

	deliverycontext "floradesk/internal/delivery/context"
	"floradesk/internal/domain/entity"
	domainerrors "floradesk/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// actorFrom extracts the authenticated actor placed on the context by the
// auth middleware.
func actorFrom(c echo.Context) (entity.Actor, error) {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return entity.Actor{}, domainerrors.ErrForbidden.WithDetails("no authenticated actor")
	}

	return actor, nil
}

// idParam parses the :id path parameter.
func idParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("invalid id parameter")
	}

	return id, nil
}

// dateQuery parses an optional date-only query parameter.
func dateQuery(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be formatted as YYYY-MM-DD")
	}

	return &t, nil
}

// parseDate parses a required date-only body field.
func parseDate(raw, field string) (time.Time, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, domainerrors.ErrValidationFailed.WithDetails(field + " must be formatted as YYYY-MM-DD")
	}

	return t, nil
}

// parseOptionalDate parses an optional date-only body field.
func parseOptionalDate(raw, field string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	t, err := parseDate(raw, field)
	if err != nil {
		return nil, err
	}

	return &t, nil
}
