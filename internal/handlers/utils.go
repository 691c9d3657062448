package handlers

import (
	"strconv"

	"customer-records/internal/dto"

	"github.com/labstack/echo/v4"
)

// parseID reads a numeric record id from the named path parameter
func parseID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}

type pageError string

func (e pageError) Error() string { return string(e) }

const (
	errPageNotInteger = pageError("offset and limit must be integers")
	errPageNegative   = pageError("offset and limit must not be negative")
)

// bindPage reads offset and limit from the query string. A missing offset is zero and
// a missing limit is defaultLimit; an explicit limit=0 asks for an empty page.
func bindPage(c echo.Context, defaultLimit int) (dto.PageRequest, error) {
	page := dto.PageRequest{Limit: defaultLimit}
	if err := echo.QueryParamsBinder(c).
		Int("offset", &page.Offset).
		Int("limit", &page.Limit).
		BindError(); err != nil {
		return page, errPageNotInteger
	}

	if page.Offset < 0 || page.Limit < 0 {
		return page, errPageNegative
	}
	return page, nil
}

// optionalQueryParam returns a pointer to the parameter value, or nil when the
// parameter is absent from the query string
func optionalQueryParam(c echo.Context, name string) *string {
	values, ok := c.QueryParams()[name]
	if !ok || len(values) == 0 {
		return nil
	}
	value := values[0]
	return &value
}
