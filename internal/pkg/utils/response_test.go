package utils

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourism-directory/internal/pkg/errors"
)

func TestSendError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", errors.ErrBusinessNotFound, 404, "BUSINESS_NOT_FOUND"},
		{"conflict", errors.ErrClaimNotPending, 400, "CLAIM_NOT_PENDING"},
		{"with details", errors.ErrValidation.WithDetails(map[string]interface{}{"errors": []string{"x"}}), 400, "VALIDATION_ERROR"},
		{"unknown", stderrors.New("pq: connection refused"), 500, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return SendError(c, tt.err) })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			body, _ := io.ReadAll(resp.Body)
			var out struct {
				Error struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(body, &out))
			assert.Equal(t, tt.wantCode, out.Error.Code)
			assert.NotContains(t, out.Error.Message, "pq:")
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList(""))
	assert.Equal(t, []string{"wifi", "pool"}, SplitList("wifi, pool,,"))
}
