package paymentController

import (
	"edtech/database"
	"edtech/middleware"
	"edtech/models"
	"edtech/payment"
	"edtech/utils"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Controller exposes the payment workflow over HTTP. The orchestrator is
// constructed at startup and injected here.
type Controller struct {
	svc *payment.Service
}

func NewController(svc *payment.Service) *Controller {
	return &Controller{svc: svc}
}

// Capture totals the requested courses and opens a provider order
func (ctl *Controller) Capture(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCapture").(*struct {
		Courses []uint `json:"courses"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	order, err := ctl.svc.Initiate(userId, reqData.Courses)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrNoCourses):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide course IDs", nil)
		case errors.Is(err, payment.ErrCourseNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
		case errors.Is(err, payment.ErrAlreadyEnrolled):
			return middleware.JsonResponse(c, fiber.StatusOK, false, "Student has already enrolled for the course", nil)
		case errors.Is(err, payment.ErrInvalidAmount):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Order amount must be positive", nil)
		default:
			log.Printf("Payment capture failed for user %d: %v", userId, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Could not create payment", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment initiated successfully.", order)
}

// webhookPayload mirrors the provider's nested webhook body; only the notes
// are of interest here
type webhookPayload struct {
	Payload struct {
		Payment struct {
			Entity struct {
				Notes struct {
					CourseID string `json:"course_id"`
					UserID   string `json:"userId"`
				} `json:"notes"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// Verify handles the provider's server-to-server confirmation
func (ctl *Controller) Verify(c *fiber.Ctx) error {
	signature := c.Get("x-razorpay-signature")

	if !ctl.svc.VerifyWebhook(c.Body(), signature) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid signature", nil)
	}

	var body webhookPayload
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	notes := body.Payload.Payment.Entity.Notes
	userID, err := strconv.ParseUint(notes.UserID, 10, 64)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid userId in payload notes", nil)
	}

	// The capture step stores one or more course ids in the notes
	var enrolledCourse *models.Course
	for _, raw := range strings.Split(notes.CourseID, ",") {
		courseID, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course_id in payload notes", nil)
		}

		if _, err := ctl.svc.Enroll(uint(userID), uint(courseID)); err != nil {
			if errors.Is(err, payment.ErrCourseNotFound) {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Course not found", nil)
			}
			if errors.Is(err, payment.ErrAlreadyEnrolled) {
				return middleware.JsonResponse(c, fiber.StatusOK, false, "Student has already enrolled for the course", nil)
			}
			log.Printf("Webhook enrollment failed for user %d course %d: %v", userID, courseID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal server error", nil)
		}

		var course models.Course
		if err := database.Database.Db.First(&course, uint(courseID)).Error; err == nil {
			enrolledCourse = &course
		}
	}

	var student models.User
	if err := database.Database.Db.First(&student, uint(userID)).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal server error", nil)
	}
	student.Password = ""

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":         true,
		"message":         "Signature verified, student enrolled successfully",
		"enrolledCourse":  enrolledCourse,
		"enrolledStudent": student,
	})
}

// Confirm handles the client-side confirmation after checkout
func (ctl *Controller) Confirm(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedConfirm").(*struct {
		RazorpayOrderID   string `json:"razorpay_order_id"`
		RazorpayPaymentID string `json:"razorpay_payment_id"`
		RazorpaySignature string `json:"razorpay_signature"`
		Courses           []uint `json:"courses"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	results, err := ctl.svc.Confirm(userId, reqData.Courses, reqData.RazorpayOrderID, reqData.RazorpayPaymentID, reqData.RazorpaySignature)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrSignatureMismatch), errors.Is(err, payment.ErrNoCourses):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment Failed", nil)
		case errors.Is(err, payment.ErrCourseNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", results)
		case errors.Is(err, payment.ErrAlreadyEnrolled):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Student has already enrolled for the course", results)
		default:
			log.Printf("Payment confirmation failed for user %d: %v", userId, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Internal server error", results)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment Successful", results)
}

// SendSuccessEmail mails the payer a receipt for a completed payment
func (ctl *Controller) SendSuccessEmail(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedSuccessEmail").(*struct {
		OrderID   string `json:"orderId"`
		PaymentID string `json:"paymentId"`
		Amount    int64  `json:"amount"` // paise
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide all the details", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if err := utils.SendPaymentSuccessEmail(
		user.Email,
		user.FirstName+" "+user.LastName,
		float64(reqData.Amount)/100,
		reqData.OrderID,
		reqData.PaymentID,
	); err != nil {
		log.Printf("Error sending payment success email to %s: %v", user.Email, err)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Could not send email", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment success email sent.", nil)
}
