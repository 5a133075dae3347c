package consultationValidator

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func scheduleApp() *fiber.App {
	app := fiber.New()
	app.Post("/consultation", Schedule(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	return resp
}

func TestSchedulePassesValidPayload(t *testing.T) {
	app := scheduleApp()

	resp := postJSON(t, app, "/consultation", map[string]string{
		"name":  "Jay Patel",
		"email": "jay@example.com",
		"phone": "9000000000",
		"date":  "2026-09-15",
		"time":  "14:30",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestScheduleRejectsBadDateAndTime(t *testing.T) {
	app := scheduleApp()

	resp := postJSON(t, app, "/consultation", map[string]string{
		"name":  "Jay Patel",
		"email": "jay@example.com",
		"phone": "9000000000",
		"date":  "15-09-2026",
		"time":  "2pm",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	app := fiber.New()
	app.Patch("/consultation/:id", UpdateStatus(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	body, _ := json.Marshal(map[string]string{"status": "done"})
	req := httptest.NewRequest("PATCH", "/consultation/1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	body, _ = json.Marshal(map[string]string{"status": "completed"})
	req = httptest.NewRequest("PATCH", "/consultation/abc", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
