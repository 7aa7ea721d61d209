package paymentValidator

import (
	"edtech/middleware"

	"github.com/gofiber/fiber/v2"
)

// Capture validator middleware
func Capture() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Courses []uint `json:"courses"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.Courses) == 0 {
			errors["courses"] = "Please provide course IDs!"
		}
		for _, id := range reqData.Courses {
			if id == 0 {
				errors["courses"] = "Invalid course id!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCapture", reqData)
		return c.Next()
	}
}

// Confirm validator middleware
func Confirm() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			RazorpayOrderID   string `json:"razorpay_order_id"`
			RazorpayPaymentID string `json:"razorpay_payment_id"`
			RazorpaySignature string `json:"razorpay_signature"`
			Courses           []uint `json:"courses"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.RazorpayOrderID == "" {
			errors["razorpay_order_id"] = "Order id is required!"
		}
		if reqData.RazorpayPaymentID == "" {
			errors["razorpay_payment_id"] = "Payment id is required!"
		}
		if reqData.RazorpaySignature == "" {
			errors["razorpay_signature"] = "Signature is required!"
		}
		if len(reqData.Courses) == 0 {
			errors["courses"] = "Please provide course IDs!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedConfirm", reqData)
		return c.Next()
	}
}

// SuccessEmail validator middleware
func SuccessEmail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			OrderID   string `json:"orderId"`
			PaymentID string `json:"paymentId"`
			Amount    int64  `json:"amount"` // paise
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.OrderID == "" {
			errors["orderId"] = "Order id is required!"
		}
		if reqData.PaymentID == "" {
			errors["paymentId"] = "Payment id is required!"
		}
		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be positive!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSuccessEmail", reqData)
		return c.Next()
	}
}
