package authController

import (
	"edtech/config"
	"edtech/database"
	"edtech/middleware"
	"edtech/models"
	"edtech/utils"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func ResetPasswordToken(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResetToken").(*struct {
		Email string `json:"email"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Your email is not registered", nil)
	}

	token, err := utils.GenerateResetToken()
	if err != nil {
		log.Printf("Error generating reset token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	expires := time.Now().Add(1 * time.Hour)
	user.Token = token
	user.ResetPasswordExpires = &expires
	if err := db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	resetURL := fmt.Sprintf("%s/update-password/%s", config.AppConfig.FrontendURL, token)
	if err := utils.SendResetPasswordEmail(reqData.Email, resetURL); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error in sending email. Please try again later.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Email sent successfully. Please check your inbox for the password reset link.", nil)
}

func ResetPassword(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResetPassword").(*struct {
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
		Token           string `json:"token"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("token = ? AND is_deleted = ?", reqData.Token, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Token is invalid", nil)
	}

	if user.ResetPasswordExpires == nil || user.ResetPasswordExpires.Before(time.Now()) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Token is expired. Please regenerate your token.", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	user.Password = string(hashedPassword)
	user.Token = ""
	user.ResetPasswordExpires = nil
	if err := db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Some error in updating the password", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password reset successful.", nil)
}
