package controllers

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/policymanagementplatform/insurance-core/internal/pkg/apperr"
)

var validate = validator.New()

const dateLayout = "2006-01-02"

// respondErr maps a domain error onto the HTTP error contract. Unknown
// errors become a 500 without leaking internals.
func respondErr(c *fiber.Ctx, err error) error {
	if kind, ok := apperr.KindOf(err); ok {
		switch kind {
		case apperr.KindNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "NOT_FOUND", "message": err.Error()})
		case apperr.KindConflict:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "CONFLICT", "message": err.Error()})
		case apperr.KindInvalidArgument:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "BAD_REQUEST", "message": err.Error()})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "INTERNAL_ERROR", "message": "Unexpected error"})
}

// respondValidationErr renders field-level validation failures.
func respondValidationErr(c *fiber.Ctx, err error) error {
	details := make([]fiber.Map, 0)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			details = append(details, fiber.Map{"field": fe.Field(), "message": fe.Tag()})
		}
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "VALIDATION_ERROR", "details": details})
}

func respondBadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "BAD_REQUEST", "message": message})
}

// parsePaging reads page/size query params with bounds. Pages are zero-based.
func parsePaging(c *fiber.Ctx) (offset, limit int) {
	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 20)
	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = 20
	}
	if size > 200 {
		size = 200
	}
	return page * size, size
}

// pageResponse is the standard list envelope.
func pageResponse(items interface{}, total int64, offset, limit int) fiber.Map {
	return fiber.Map{
		"items": items,
		"total": total,
		"page":  offset / limit,
		"size":  limit,
	}
}

// parseDate parses a required yyyy-mm-dd value.
func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

// parseDatePtr parses an optional yyyy-mm-dd value, returning nil when empty.
func parseDatePtr(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// uintPtr converts a parsed id query param, 0 meaning absent.
func uintPtr(v int) *uint {
	if v <= 0 {
		return nil
	}
	u := uint(v)
	return &u
}

// today returns the current date truncated to midnight UTC, the reference
// date for lifecycle calls that do not carry their own date.
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
