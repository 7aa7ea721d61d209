package profileValidator

import (
	"edtech/middleware"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var mobileRe = regexp.MustCompile(`^\d{10}$`)

// UpdateProfile validator middleware
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			DateOfBirth   string `json:"dateOfBirth"`
			About         string `json:"about"`
			Gender        string `json:"gender"`
			ContactNumber string `json:"contactNumber"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Gender) == "" {
			errors["gender"] = "Gender is required!"
		}
		if !mobileRe.MatchString(reqData.ContactNumber) {
			errors["contactNumber"] = "Invalid contact number!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
