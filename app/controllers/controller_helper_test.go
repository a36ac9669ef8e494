package controllers

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/policymanagementplatform/insurance-core/internal/pkg/apperr"
)

func TestParseDate(t *testing.T) {
	parsed, err := parseDate("2026-08-28")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC), parsed)

	_, err = parseDate("28.08.2026")
	assert.Error(t, err)
}

func TestParseDatePtr(t *testing.T) {
	ptr, err := parseDatePtr("")
	require.NoError(t, err)
	assert.Nil(t, ptr)

	ptr, err = parseDatePtr("2026-08-28")
	require.NoError(t, err)
	require.NotNil(t, ptr)
	assert.Equal(t, time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC), *ptr)
}

func TestUintPtr(t *testing.T) {
	assert.Nil(t, uintPtr(0))
	assert.Nil(t, uintPtr(-5))
	require.NotNil(t, uintPtr(7))
	assert.Equal(t, uint(7), *uintPtr(7))
}

func TestRespondErrStatusMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		expected int
	}{
		{"not found", apperr.NotFound("missing"), fiber.StatusNotFound},
		{"conflict", apperr.Conflict("already there"), fiber.StatusConflict},
		{"invalid argument", apperr.InvalidArgument("bad value"), fiber.StatusBadRequest},
		{"unknown", errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return respondErr(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, resp.StatusCode)
		})
	}
}

func TestParsePagingDefaultsAndBounds(t *testing.T) {
	app := fiber.New()
	var offset, limit int
	app.Get("/", func(c *fiber.Ctx) error {
		offset, limit = parsePaging(c)
		return c.SendStatus(fiber.StatusOK)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 20, limit)

	_, err = app.Test(httptest.NewRequest("GET", "/?page=2&size=50", nil))
	require.NoError(t, err)
	assert.Equal(t, 100, offset)
	assert.Equal(t, 50, limit)

	_, err = app.Test(httptest.NewRequest("GET", "/?page=-1&size=10000", nil))
	require.NoError(t, err)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 200, limit)
}
