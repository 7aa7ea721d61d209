package paymentValidator_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	paymentValidator "edtech/validators/payment"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, app *fiber.App, path, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestCaptureValidator(t *testing.T) {
	app := fiber.New()
	app.Post("/capture", paymentValidator.Capture(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	assert.Equal(t, fiber.StatusOK, postJSON(t, app, "/capture", `{"courses":[1,2]}`))
	assert.Equal(t, fiber.StatusUnprocessableEntity, postJSON(t, app, "/capture", `{"courses":[]}`))
	assert.Equal(t, fiber.StatusUnprocessableEntity, postJSON(t, app, "/capture", `{}`))
	assert.Equal(t, fiber.StatusUnprocessableEntity, postJSON(t, app, "/capture", `{"courses":[0]}`))
	assert.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/capture", `not json`))
}

func TestConfirmValidator(t *testing.T) {
	app := fiber.New()
	app.Post("/confirm", paymentValidator.Confirm(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	valid := `{"razorpay_order_id":"order_1","razorpay_payment_id":"pay_1","razorpay_signature":"sig","courses":[1]}`
	assert.Equal(t, fiber.StatusOK, postJSON(t, app, "/confirm", valid))

	missingSig := `{"razorpay_order_id":"order_1","razorpay_payment_id":"pay_1","courses":[1]}`
	assert.Equal(t, fiber.StatusUnprocessableEntity, postJSON(t, app, "/confirm", missingSig))

	noCourses := `{"razorpay_order_id":"order_1","razorpay_payment_id":"pay_1","razorpay_signature":"sig","courses":[]}`
	assert.Equal(t, fiber.StatusUnprocessableEntity, postJSON(t, app, "/confirm", noCourses))
}

func TestSuccessEmailValidator(t *testing.T) {
	app := fiber.New()
	app.Post("/email", paymentValidator.SuccessEmail(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	assert.Equal(t, fiber.StatusOK, postJSON(t, app, "/email", `{"orderId":"order_1","paymentId":"pay_1","amount":3000}`))
	assert.Equal(t, fiber.StatusUnprocessableEntity, postJSON(t, app, "/email", `{"orderId":"order_1","paymentId":"pay_1","amount":0}`))
	assert.Equal(t, fiber.StatusUnprocessableEntity, postJSON(t, app, "/email", `{"paymentId":"pay_1","amount":3000}`))
}
