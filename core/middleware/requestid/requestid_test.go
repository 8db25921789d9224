package requestid_test

import (
	"net/http/httptest"
	"testing"

	"follower-tracker/core/middleware/requestid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(requestid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	t.Run("GeneratesID", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Header.Get(requestid.Header))
	})

	t.Run("PreservesIncomingID", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(requestid.Header, "given-id")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, "given-id", resp.Header.Get(requestid.Header))
	})
}
