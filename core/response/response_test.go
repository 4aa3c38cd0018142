package response_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"bookstore/core/apperror"
	"bookstore/core/response"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"NotFound", apperror.NotFoundf("book not found"), 404, "NOT_FOUND", "book not found"},
		{"Unauthorized", apperror.Unauthorizedf("not your cart item"), 401, "UNAUTHORIZED", "not your cart item"},
		{"Unprocessable", apperror.Unprocessablef("category code already exists"), 422, "UNPROCESSABLE", "category code already exists"},
		{"Internal hides cause", apperror.Internal(errors.New("dial tcp: refused"), "failed"), 500, "INTERNAL", "internal server error"},
		{"Plain error", errors.New("boom"), 500, "INTERNAL", "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return response.Error(c, zap.NewNop(), tt.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body response.ErrorBody
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMsg, body.Error)
		})
	}
}
